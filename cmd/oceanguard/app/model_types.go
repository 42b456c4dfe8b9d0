package app

import (
	"oceanguard/cmd/oceanguard/ui"
	"oceanguard/internal/config"
	"oceanguard/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	noticeHeight  = 12
)

// Screen is the state of the UI. Exactly one screen is active at a time,
// the same way a modal dialog blocks the form behind it.
type Screen int

const (
	ScreenWelcome Screen = iota // Name entry
	ScreenMenu                  // Action list
	ScreenPrompt                // Modal question for the pending action
	ScreenNotice                // Modal result of the last action
	ScreenHelp                  // Keyboard and feature help
)

// String returns the screen name used in logs.
func (s Screen) String() string {
	names := []string{"welcome", "menu", "prompt", "notice", "help"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Notice is the modal shown after an action.
type Notice struct {
	Title   string
	Body    string
	IsError bool
}

// Options configures the model.
type Options struct {
	// Config supplies UI settings. Defaults are used when nil.
	Config *config.Config
}

// Model is the bubbletea model for OceanGuard.
type Model struct {
	// UI Components
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	styles   ui.Styles
	renderer *glamour.TermRenderer

	// Backend
	session *session.Session
	config  *config.Config

	// State
	screen   Screen
	cursor   int
	pending  session.Action
	notice   Notice
	width    int
	height   int
	quitting bool
}
