package app

import (
	"fmt"
	"strings"

	"oceanguard/cmd/oceanguard/ui"
	"oceanguard/internal/session"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for guarding the ocean! 🌊\n"
	}

	var body, footer string
	switch m.screen {
	case ScreenWelcome:
		body = m.renderWelcome()
		footer = m.help.View(inputHelp{m.keys})
	case ScreenMenu:
		body = m.renderMenu()
		footer = m.help.View(m.keys)
	case ScreenPrompt:
		body = m.renderPrompt()
		footer = m.help.View(inputHelp{m.keys})
	case ScreenNotice:
		body = m.renderNotice()
		footer = m.help.View(noticeHelp{m.keys})
	case ScreenHelp:
		body = m.styles.Notice.Width(m.contentWidth()).Render(m.viewport.View())
		footer = m.help.View(noticeHelp{m.keys})
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.styles.Content.Render(body),
		m.styles.Footer.Render(footer),
	)
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf("%s 🌊", m.config.Name)
	if m.session.Started() {
		title += "  " + m.session.Greeting()
	}
	return m.styles.Header.Render(title)
}

func (m Model) renderWelcome() string {
	var sb strings.Builder
	sb.WriteString(strings.Trim(ui.Logo(m.styles), "\n"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Collect trash. Earn EcoCoins. Share with friends."))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render(m.session.Greeting()))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	return sb.String()
}

func (m Model) renderMenu() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.session.Greeting()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(min(m.contentWidth(), 32)))
	sb.WriteString("\n")
	for i, a := range session.Actions {
		line := fmt.Sprintf("%d. %s", i+1, a.Label())
		if i == m.cursor {
			sb.WriteString(m.styles.MenuSelected.Render(line))
		} else {
			sb.WriteString(m.styles.MenuItem.Render(line))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderPrompt() string {
	var sb strings.Builder
	sb.WriteString(m.styles.NoticeTitle.Render(m.pending.Label()))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render(m.pending.Prompt()))
	sb.WriteString("\n")
	if m.pending == session.ActionAddFriend {
		for _, choice := range m.session.FriendChoices() {
			sb.WriteString(m.styles.Body.Render(choice))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	return m.styles.Notice.Width(m.contentWidth()).Render(sb.String())
}

func (m Model) renderNotice() string {
	box := m.styles.Notice
	title := m.styles.NoticeTitle.Render(m.notice.Title)
	if m.notice.IsError {
		box = m.styles.ErrorNotice
		title = m.styles.Error.Render(m.notice.Title)
	}
	return box.Width(m.contentWidth()).Render(title + "\n\n" + m.viewport.View())
}

func (m Model) renderNoticeBody() string {
	if m.renderer == nil || m.notice.IsError {
		return m.styles.Body.Render(m.notice.Body)
	}
	return strings.Trim(m.safeRenderMarkdown(toMarkdown(m.notice.Body)), "\n")
}

func (m Model) renderHelpBody() string {
	if m.renderer == nil {
		return m.styles.Body.Render(helpText)
	}
	return strings.Trim(m.safeRenderMarkdown(helpText), "\n")
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}
