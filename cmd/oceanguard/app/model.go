// Package app provides the interactive terminal UI for OceanGuard.
//
// Every screen change follows the same path: one key press selects an
// action, an optional prompt collects its input, the session runs it, and
// the returned text is shown in a notice until dismissed.
package app

import (
	"errors"
	"fmt"
	"strings"

	"oceanguard/cmd/oceanguard/ui"
	"oceanguard/internal/config"
	"oceanguard/internal/logging"
	"oceanguard/internal/participant"
	"oceanguard/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// New builds the model around sess. If the session is already started the
// welcome screen is skipped.
func New(sess *session.Session, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))

	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.Prompt = "│ "
	ti.CharLimit = 280
	ti.Width = defaultWidth - 8
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput
	ti.Focus()

	vp := viewport.New(defaultWidth-8, noticeHeight)

	m := Model{
		input:    ti,
		viewport: vp,
		help:     help.New(),
		keys:     defaultKeyMap(),
		styles:   styles,
		session:  sess,
		config:   cfg,
		screen:   ScreenWelcome,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	if cfg.UI.Markdown {
		m.renderer = newRenderer(styles.Theme.IsDark, m.contentWidth())
	}
	if sess.Started() {
		m.screen = ScreenMenu
		m.input.Blur()
	}
	return m
}

// Run starts the program on the alternate screen and blocks until exit.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Screen returns the active screen.
func (m Model) Screen() Screen { return m.screen }

// Notice returns the last notice shown.
func (m Model) Notice() Notice { return m.notice }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.screen == ScreenWelcome {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		switch m.screen {
		case ScreenWelcome:
			return m.updateWelcome(msg)
		case ScreenMenu:
			return m.updateMenu(msg)
		case ScreenPrompt:
			return m.updatePrompt(msg)
		case ScreenNotice:
			return m.updateNotice(msg)
		case ScreenHelp:
			return m.updateHelp(msg)
		}
	}

	if m.screen == ScreenWelcome || m.screen == ScreenPrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	logging.UI("Exiting from %s screen", m.screen)
	return m, tea.Quit
}

// =============================================================================
// SCREEN HANDLERS
// =============================================================================

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.quit()
	case tea.KeyEnter:
		if err := m.session.Start(m.input.Value()); err != nil {
			// Blank name: stay on the welcome screen.
			return m, nil
		}
		logging.UI("Welcome complete for %s", m.session.User().Name())
		m.input.Reset()
		m.input.Blur()
		m.screen = ScreenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := session.Actions
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(actions)) % len(actions)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(actions)
	case key.Matches(msg, m.keys.Select):
		return m.choose(actions[m.cursor])
	case key.Matches(msg, m.keys.Numbers):
		idx := int(msg.Runes[0]-'1')
		if idx < len(actions) {
			m.cursor = idx
			return m.choose(actions[idx])
		}
	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp
		m.viewport.SetContent(m.renderHelpBody())
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Exit):
		return m.quit()
	}
	return m, nil
}

func (m Model) choose(a session.Action) (tea.Model, tea.Cmd) {
	logging.UIDebug("Menu selected %s", a)
	if a == session.ActionExit {
		return m.quit()
	}
	if !a.NeedsInput() {
		return m.run(a, ""), nil
	}
	m.pending = a
	m.screen = ScreenPrompt
	m.input.Reset()
	m.input.Placeholder = placeholderFor(a)
	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// A dismissed dialog does nothing.
		logging.UIDebug("Prompt for %s cancelled", m.pending)
		m.input.Blur()
		m.screen = ScreenMenu
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Blur()
		return m.run(m.pending, value), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back):
		m.screen = ScreenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help):
		m.screen = ScreenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// run performs one action and moves to the notice (or back to the menu
// when the input was empty).
func (m Model) run(a session.Action, input string) Model {
	out, err := m.session.Do(a, input)
	switch {
	case errors.Is(err, session.ErrNoInput):
		m.screen = ScreenMenu
		return m
	case errors.Is(err, session.ErrUnknownFriend):
		return m.showNotice(Notice{Title: a.NoticeTitle(), Body: out})
	case err != nil:
		return m.showNotice(Notice{Title: "Invalid Input", Body: describeError(err), IsError: true})
	}
	return m.showNotice(Notice{Title: a.NoticeTitle(), Body: out})
}

func (m Model) showNotice(n Notice) Model {
	m.notice = n
	m.screen = ScreenNotice
	m.viewport.SetContent(m.renderNoticeBody())
	m.viewport.GotoTop()
	return m
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	w := m.contentWidth()
	m.input.Width = w - 4
	m.viewport.Width = w
	m.viewport.Height = min(noticeHeight, max(3, height-10))
	m.help.Width = width
	if m.renderer != nil {
		m.renderer = newRenderer(m.styles.Theme.IsDark, w)
	}
	if m.screen == ScreenNotice {
		m.viewport.SetContent(m.renderNoticeBody())
	}
}

func (m Model) contentWidth() int {
	w := m.width - 8
	if m.config.UI.Width > 0 && m.config.UI.Width < w {
		w = m.config.UI.Width
	}
	return max(20, w)
}

func placeholderFor(a session.Action) string {
	switch a {
	case session.ActionLogTrash, session.ActionAddAdditive:
		return "kg, e.g. 2.5"
	case session.ActionSetLocation:
		return "La Jolla Beach"
	case session.ActionAddFriend:
		return "1"
	case session.ActionPostUpdate:
		return "What did you do for the ocean today?"
	}
	return ""
}

func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidAmount):
		return fmt.Sprintf("Please enter a positive number of kilograms, up to %s.",
			participant.FormatAmount(session.MaxAmount))
	case errors.Is(err, session.ErrNotStarted):
		return "Enter your name first."
	}
	return strings.TrimSpace(err.Error())
}

func newRenderer(dark bool, width int) *glamour.TermRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.UIDebug("markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}
