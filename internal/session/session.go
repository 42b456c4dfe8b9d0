// Package session is the application context for one OceanGuard run.
//
// A Session owns the primary participant and the directory of example
// friends. It is the input boundary: blank or dismissed prompts come back as
// ErrNoInput, quantities outside (0, MaxAmount] as ErrInvalidAmount, and only
// valid input reaches the participant record.
//
// The presentation layer drives a Session from a single goroutine.
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"oceanguard/internal/config"
	"oceanguard/internal/logging"
	"oceanguard/internal/participant"

	"github.com/google/uuid"
)

// Config holds session behaviour switches.
type Config struct {
	// MutualFriends also adds the user to the friend's list.
	MutualFriends bool

	// ExampleFriends seed the friend picker.
	ExampleFriends []config.FriendSeed
}

// DefaultConfig returns the session defaults.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultConfig())
}

// ConfigFrom extracts the session settings from the application config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		MutualFriends:  cfg.Social.MutualFriends,
		ExampleFriends: cfg.Social.ExampleFriends,
	}
}

// Session is one run of the application.
type Session struct {
	id        string
	config    Config
	user      *participant.Participant
	directory *Directory
}

// New creates a session with no participant yet.
func New(cfg Config) *Session {
	return &Session{
		id:        uuid.NewString(),
		config:    cfg,
		directory: NewDirectory(cfg.ExampleFriends),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Started reports whether Start has succeeded.
func (s *Session) Started() bool { return s.user != nil }

// User returns the primary participant, or nil before Start.
func (s *Session) User() *participant.Participant { return s.user }

// Directory returns the example friends directory.
func (s *Session) Directory() *Directory { return s.directory }

// Start creates the primary participant. A blank name returns ErrNoInput
// and leaves the session unstarted.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNoInput
	}
	s.user = participant.New(name)
	logging.Session("Session %s started for %q", s.id, name)
	s.audit(logging.AuditEvent{Type: logging.AuditSessionStart})
	return nil
}

// Greeting returns the menu heading for the current participant.
func (s *Session) Greeting() string {
	if s.user == nil {
		return "Welcome to OceanGuard!"
	}
	return fmt.Sprintf("Hello, %s!", s.user.Name())
}

// LogTrash records collected trash after validating the amount.
func (s *Session) LogTrash(amount float64) (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	if err := validateAmount(amount); err != nil {
		s.reject(err)
		return "", fmt.Errorf("log trash: %w", err)
	}
	msg := s.user.CollectTrash(amount)
	s.audit(logging.AuditEvent{Type: logging.AuditTrashLogged, Amount: amount, Credits: s.user.EcoCredits()})
	return msg, nil
}

// AddAdditive records dosed calcium bicarbonate after validating the amount.
func (s *Session) AddAdditive(amount float64) (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	if err := validateAmount(amount); err != nil {
		s.reject(err)
		return "", fmt.Errorf("add additive: %w", err)
	}
	msg := s.user.AddAdditive(amount)
	s.audit(logging.AuditEvent{Type: logging.AuditAdditiveAdded, Amount: amount, Credits: s.user.EcoCredits()})
	return msg, nil
}

// SetLocation replaces the user's location. Blank text is ErrNoInput.
func (s *Session) SetLocation(location string) (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return "", ErrNoInput
	}
	msg := s.user.SetLocation(location)
	s.audit(logging.AuditEvent{Type: logging.AuditLocationSet, Target: location})
	return msg, nil
}

// FriendChoices returns the numbered example friends for the picker.
func (s *Session) FriendChoices() []string {
	return s.directory.Choices()
}

// AddFriend adds the example friend at the 1-based choice. An unknown
// choice returns InvalidChoiceMessage together with ErrUnknownFriend so the
// caller can still show it.
func (s *Session) AddFriend(choice int) (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	friend, ok := s.directory.Lookup(choice)
	if !ok {
		err := fmt.Errorf("friend %d: %w", choice, ErrUnknownFriend)
		s.reject(err)
		return InvalidChoiceMessage, err
	}
	msg := s.user.AddAcquaintance(friend)
	if s.config.MutualFriends {
		friend.AddAcquaintance(s.user)
	}
	s.audit(logging.AuditEvent{Type: logging.AuditFriendAdded, Target: friend.Name()})
	return msg, nil
}

// Impact returns the user's impact summary.
func (s *Session) Impact() (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	s.audit(logging.AuditEvent{Type: logging.AuditViewed, Target: "impact"})
	return s.user.SummarizeImpact(), nil
}

// Friends returns the user's friends listing.
func (s *Session) Friends() (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	s.audit(logging.AuditEvent{Type: logging.AuditViewed, Target: "friends"})
	return s.user.ListAcquaintances(), nil
}

// Post appends a message to the user's feed. Blank text is ErrNoInput.
func (s *Session) Post(message string) (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", ErrNoInput
	}
	msg := s.user.Post(message)
	s.audit(logging.AuditEvent{Type: logging.AuditPostCreated, Target: message})
	return msg, nil
}

// Feed returns the user's posts.
func (s *Session) Feed() (string, error) {
	if err := s.requireStarted(); err != nil {
		return "", err
	}
	s.audit(logging.AuditEvent{Type: logging.AuditViewed, Target: "feed"})
	return s.user.ListPosts(), nil
}

// =============================================================================
// INPUT BOUNDARY
// =============================================================================

// MaxAmount is the largest quantity, in kg, accepted for a single entry.
// It keeps EcoCoins and the CO2 estimate finite.
const MaxAmount = 1_000_000

// ParseAmount converts prompt text to a quantity. Blank text is ErrNoInput;
// anything that is not a positive number up to MaxAmount is ErrInvalidAmount.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrNoInput
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidAmount)
	}
	if err := validateAmount(v); err != nil {
		return 0, fmt.Errorf("%q: %w", text, err)
	}
	return v, nil
}

// ParseChoice converts prompt text to a friend number. Blank text is
// ErrNoInput; non-integers are ErrUnknownFriend.
func ParseChoice(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrNoInput
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrUnknownFriend)
	}
	return n, nil
}

func validateAmount(v float64) error {
	if math.IsNaN(v) || v <= 0 || v > MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}

func (s *Session) requireStarted() error {
	if s.user == nil {
		return ErrNotStarted
	}
	return nil
}

func (s *Session) reject(err error) {
	logging.SessionWarn("Session %s rejected input: %v", s.id, err)
	s.audit(logging.AuditEvent{Type: logging.AuditRejected, Error: err})
}

func (s *Session) audit(e logging.AuditEvent) {
	e.SessionID = s.id
	if s.user != nil {
		e.Participant = s.user.Name()
	}
	logging.Audit(e)
}
