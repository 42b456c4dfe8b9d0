package config

import (
	"fmt"
	"strings"
)

// FriendSeed describes an example participant offered in the friend picker.
type FriendSeed struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location,omitempty"`
}

// SocialConfig configures friends and the feed.
type SocialConfig struct {
	// MutualFriends also adds the reverse edge when a friend is added.
	MutualFriends bool `yaml:"mutual_friends"`

	// ExampleFriends are offered, in order, by the friend picker.
	ExampleFriends []FriendSeed `yaml:"example_friends"`
}

// Validate checks that example friends have distinct, non-empty names.
func (s *SocialConfig) Validate() error {
	seen := make(map[string]struct{}, len(s.ExampleFriends))
	for i, f := range s.ExampleFriends {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("example friend %d has no name", i+1)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate example friend: %s", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
