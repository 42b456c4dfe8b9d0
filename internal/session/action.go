package session

import (
	"errors"
	"fmt"
	"strings"
)

// Action is one entry of the main menu.
type Action int

const (
	ActionLogTrash Action = iota
	ActionAddAdditive
	ActionSetLocation
	ActionAddFriend
	ActionViewImpact
	ActionViewFriends
	ActionPostUpdate
	ActionViewFeed
	ActionExit
)

// Actions lists the menu in display order.
var Actions = []Action{
	ActionLogTrash,
	ActionAddAdditive,
	ActionSetLocation,
	ActionAddFriend,
	ActionViewImpact,
	ActionViewFriends,
	ActionPostUpdate,
	ActionViewFeed,
	ActionExit,
}

type actionInfo struct {
	name   string // script key
	label  string // menu label
	notice string // notice title
	prompt string // empty when the action takes no input
}

var actionTable = map[Action]actionInfo{
	ActionLogTrash:    {"log_trash", "Log Trash Collected", "Trash Collected", "Enter the amount of trash collected (in kg):"},
	ActionAddAdditive: {"add_additive", "Add Calcium Bicarbonate", "Calcium Bicarbonate Added", "Enter the amount of calcium bicarbonate added (in kg):"},
	ActionSetLocation: {"set_location", "Set Your Location", "Location Updated", "Enter your location (e.g., La Jolla Beach):"},
	ActionAddFriend:   {"add_friend", "Add a Friend", "Add Friend", "Choose a friend to add:"},
	ActionViewImpact:  {"view_impact", "View Your Impact", "Your Impact", ""},
	ActionViewFriends: {"view_friends", "View Your Friends", "Your Friends", ""},
	ActionPostUpdate:  {"post_update", "Post an Update", "Post Update", "Write your post:"},
	ActionViewFeed:    {"view_feed", "View Community Feed", "Community Feed", ""},
	ActionExit:        {"exit", "Exit", "", ""},
}

// String returns the script name of the action.
func (a Action) String() string {
	if info, ok := actionTable[a]; ok {
		return info.name
	}
	return "unknown"
}

// Label is the menu text.
func (a Action) Label() string { return actionTable[a].label }

// NoticeTitle is the title of the notice showing the result.
func (a Action) NoticeTitle() string { return actionTable[a].notice }

// Prompt is the question asked before running the action.
func (a Action) Prompt() string { return actionTable[a].prompt }

// NeedsInput reports whether the action asks a question first.
func (a Action) NeedsInput() bool { return actionTable[a].prompt != "" }

// ParseAction maps a script name (e.g. "log_trash") to an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Actions {
		if actionTable[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAction)
}

// Do runs one action with the raw text the user typed. It is the single
// entry point for both the TUI and scripted runs.
func (s *Session) Do(a Action, input string) (string, error) {
	switch a {
	case ActionLogTrash:
		amount, err := ParseAmount(input)
		if err != nil {
			return "", s.boundaryError(err)
		}
		return s.LogTrash(amount)
	case ActionAddAdditive:
		amount, err := ParseAmount(input)
		if err != nil {
			return "", s.boundaryError(err)
		}
		return s.AddAdditive(amount)
	case ActionSetLocation:
		return s.SetLocation(input)
	case ActionAddFriend:
		choice, err := ParseChoice(input)
		if err != nil {
			if errors.Is(err, ErrUnknownFriend) {
				s.reject(err)
				return InvalidChoiceMessage, err
			}
			return "", err
		}
		return s.AddFriend(choice)
	case ActionViewImpact:
		return s.Impact()
	case ActionViewFriends:
		return s.Friends()
	case ActionPostUpdate:
		return s.Post(input)
	case ActionViewFeed:
		return s.Feed()
	case ActionExit:
		return "", nil
	}
	return "", fmt.Errorf("action %d: %w", int(a), ErrUnknownAction)
}

func (s *Session) boundaryError(err error) error {
	if errors.Is(err, ErrInvalidAmount) {
		s.reject(err)
	}
	return err
}
