package session

import (
	"fmt"

	"oceanguard/internal/config"
	"oceanguard/internal/participant"
)

// Directory offers example participants that can be added as friends.
// Each one is created the first time it is looked up and then reused, so
// every holder sees the same record.
type Directory struct {
	seeds   []config.FriendSeed
	members []*participant.Participant
}

// NewDirectory returns a directory over seeds, in order.
func NewDirectory(seeds []config.FriendSeed) *Directory {
	s := make([]config.FriendSeed, len(seeds))
	copy(s, seeds)
	return &Directory{
		seeds:   s,
		members: make([]*participant.Participant, len(s)),
	}
}

// Len returns the number of example participants.
func (d *Directory) Len() int { return len(d.seeds) }

// Choices renders the picker lines, numbered from 1.
func (d *Directory) Choices() []string {
	out := make([]string, len(d.seeds))
	for i, seed := range d.seeds {
		out[i] = fmt.Sprintf("%d. %s", i+1, seed.Name)
	}
	return out
}

// Lookup returns the participant for a 1-based choice.
func (d *Directory) Lookup(choice int) (*participant.Participant, bool) {
	i := choice - 1
	if i < 0 || i >= len(d.seeds) {
		return nil, false
	}
	if d.members[i] == nil {
		p := participant.New(d.seeds[i].Name)
		if d.seeds[i].Location != "" {
			p.SetLocation(d.seeds[i].Location)
		}
		d.members[i] = p
	}
	return d.members[i], true
}
