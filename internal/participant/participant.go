// Package participant holds the in-memory user record for OceanGuard.
//
// A Participant accumulates trash and EcoCoin metrics, keeps an optional
// location, a set of acquaintances and an ordered feed of posts. Every
// mutation returns the confirmation text shown to the user.
//
// A Participant is not safe for concurrent use.
package participant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Credit rates.
const (
	// TrashCreditRate is the number of EcoCoins earned per kg of trash.
	TrashCreditRate = 5
	// AdditiveCreditRate is the number of EcoCoins earned per kg of calcium bicarbonate.
	AdditiveCreditRate = 10
	// OffsetRate is the estimated kg of CO2 neutralized per kg of trash.
	OffsetRate = 2
)

// Placeholders rendered by the listing operations when there is nothing to show.
const (
	NoFriendsMessage = "You have no friends yet. Add some!"
	NoPostsMessage   = "No posts yet. Be the first to share!"
	noLocation       = "None"
)

// Participant is a single OceanGuard user.
type Participant struct {
	id   uuid.UUID
	name string

	trashCollected float64
	ecoCredits     float64

	location    string
	hasLocation bool

	// acquaintances are non-owning references, kept in insertion order.
	acquaintances []*Participant
	known         map[uuid.UUID]struct{}

	posts []string
}

// New creates a participant with a fresh identity and zeroed metrics.
func New(name string) *Participant {
	return &Participant{
		id:    uuid.New(),
		name:  name,
		known: make(map[uuid.UUID]struct{}),
	}
}

// ID returns the participant's identity.
func (p *Participant) ID() uuid.UUID { return p.id }

// Name returns the name given at creation.
func (p *Participant) Name() string { return p.name }

// TrashCollected returns the accumulated trash in kg.
func (p *Participant) TrashCollected() float64 { return p.trashCollected }

// EcoCredits returns the accumulated EcoCoins.
func (p *Participant) EcoCredits() float64 { return p.ecoCredits }

// Location returns the current location and whether one was ever set.
func (p *Participant) Location() (string, bool) { return p.location, p.hasLocation }

// Offset returns the estimated kg of CO2 neutralized.
func (p *Participant) Offset() float64 { return p.trashCollected * OffsetRate }

// CollectTrash records amount kg of collected trash and credits
// amount*TrashCreditRate EcoCoins. amount should be positive; the record
// applies whatever it is given.
func (p *Participant) CollectTrash(amount float64) string {
	earned := amount * TrashCreditRate
	p.trashCollected += amount
	p.ecoCredits += earned
	return fmt.Sprintf("🎉 You collected %s kg of trash and earned %s EcoCoins!",
		FormatAmount(amount), FormatAmount(earned))
}

// AddAdditive records amount kg of calcium bicarbonate dosed and credits
// amount*AdditiveCreditRate EcoCoins. Trash is left untouched. amount should
// be positive.
func (p *Participant) AddAdditive(amount float64) string {
	earned := amount * AdditiveCreditRate
	p.ecoCredits += earned
	return fmt.Sprintf("🌊 You added %s kg of calcium bicarbonate and earned %s EcoCoins!",
		FormatAmount(amount), FormatAmount(earned))
}

// SetLocation replaces the location.
func (p *Participant) SetLocation(location string) string {
	p.location = location
	p.hasLocation = true
	return fmt.Sprintf("📍 Location updated to %s.", location)
}

// AddAcquaintance adds other to this participant's friends. Only this side
// of the relation is updated. A nil other is ignored and yields "".
func (p *Participant) AddAcquaintance(other *Participant) string {
	if other == nil {
		return ""
	}
	if p.IsAcquainted(other) {
		return fmt.Sprintf("🤝 You are already friends with %s.", other.name)
	}
	if p.known == nil {
		p.known = make(map[uuid.UUID]struct{})
	}
	p.known[other.id] = struct{}{}
	p.acquaintances = append(p.acquaintances, other)
	return fmt.Sprintf("👋 You are now friends with %s!", other.name)
}

// IsAcquainted reports whether other is already in the friends list.
func (p *Participant) IsAcquainted(other *Participant) bool {
	if other == nil {
		return false
	}
	_, ok := p.known[other.id]
	return ok
}

// Acquaintances returns the friends in the order they were added. The slice
// is a copy; the participants are shared.
func (p *Participant) Acquaintances() []*Participant {
	out := make([]*Participant, len(p.acquaintances))
	copy(out, p.acquaintances)
	return out
}

// Post appends message to the feed.
func (p *Participant) Post(message string) string {
	p.posts = append(p.posts, message)
	return fmt.Sprintf("📝 Posted: %s", message)
}

// Posts returns a copy of the feed, oldest first.
func (p *Participant) Posts() []string {
	out := make([]string, len(p.posts))
	copy(out, p.posts)
	return out
}

// SummarizeImpact reports trash, EcoCoins and the CO2 estimate.
func (p *Participant) SummarizeImpact() string {
	var sb strings.Builder
	sb.WriteString("=== Your Impact ===\n")
	fmt.Fprintf(&sb, "🗑️ Trash Collected: %s kg\n", FormatAmount(p.trashCollected))
	fmt.Fprintf(&sb, "💰 EcoCoins Earned: %s\n", FormatAmount(p.ecoCredits))
	fmt.Fprintf(&sb, "🌍 Estimated CO2 Neutralized: %s kg", FormatAmount(p.Offset()))
	return sb.String()
}

// ListAcquaintances renders each friend with the location they have right
// now, one per line.
func (p *Participant) ListAcquaintances() string {
	if len(p.acquaintances) == 0 {
		return NoFriendsMessage
	}
	lines := make([]string, 0, len(p.acquaintances))
	for _, friend := range p.acquaintances {
		loc, ok := friend.Location()
		if !ok {
			loc = noLocation
		}
		lines = append(lines, fmt.Sprintf("👤 %s - Location: %s", friend.name, loc))
	}
	return "=== Your Friends ===\n" + strings.Join(lines, "\n")
}

// ListPosts renders the feed, newest last.
func (p *Participant) ListPosts() string {
	if len(p.posts) == 0 {
		return NoPostsMessage
	}
	lines := make([]string, 0, len(p.posts))
	for _, post := range p.posts {
		lines = append(lines, "📢 "+post)
	}
	return "=== Community Feed ===\n" + strings.Join(lines, "\n")
}

// FormatAmount renders a quantity with the fewest digits that round-trip,
// so 3 prints as "3" and 2.5 as "2.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
