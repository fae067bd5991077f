package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
)

const (
	title        = "TIC · TAC · TOE"
	footerNote   = "Retro terminal theme • No backend required"
	thinkingText = "Thinking…"
	panelTitle   = "AI Assistant"
	panelWidth   = 52
)

func (m Model) View() string {
	card := CardStyle.Render(m.renderGame())

	if !m.chat.Enabled() || !m.chat.IsOpen() {
		return card + "\n"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, card, " ", m.renderChat()) + "\n"
}

func (m Model) renderGame() string {
	cursor := m.cursor
	if m.chat.IsOpen() {
		cursor = noCursor
	}

	sections := []string{
		TitleStyle.Render(title),
		m.renderStatus(),
		renderBoard(m.game.Board(), cursor, m.game.WinningLine()),
		m.renderHelp(),
		DimStyle.Render(footerNote),
	}

	return strings.Join(sections, "\n\n")
}

func (m Model) renderStatus() string {
	status := m.game.Status()

	switch m.game.State() {
	case tictactoe.StateWon:
		return WinnerStyle.Render(status)
	case tictactoe.StateDrawn:
		return DrawStyle.Render(status)
	default:
		return StatusStyle.Render(status)
	}
}

func (m Model) renderHelp() string {
	bindings := []string{
		m.keys.Place.Help().Key + " " + m.keys.Place.Help().Desc,
		"1-9 cell",
		m.keys.Reset.Help().Key + " " + m.keys.Reset.Help().Desc,
	}

	// The launcher only exists when the chat is enabled.
	if m.chat.Enabled() {
		bindings = append(bindings, m.keys.Chat.Help().Key+" "+m.keys.Chat.Help().Desc)
	}

	bindings = append(bindings, m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc)

	return HelpStyle.Render(strings.Join(bindings, "  "))
}

func (m Model) renderChat() string {
	lines := []string{TitleStyle.Render(panelTitle), ""}

	for _, msg := range m.chat.Messages() {
		lines = append(lines, renderChatMessage(msg))
	}

	if m.chat.Loading() {
		lines = append(lines, AssistantStyle.Render(thinkingText))
	}

	send := DimStyle.Render("[Send]")
	if m.chat.CanSend() {
		send = UserStyle.Render("[Send]")
	}

	lines = append(lines,
		"",
		m.renderInput()+" "+send,
		HelpStyle.Render(m.keys.Send.Help().Key+" "+m.keys.Send.Help().Desc+"  "+m.keys.Close.Help().Key+" "+m.keys.Close.Help().Desc),
	)

	return PanelStyle.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// renderInput draws the hint itself; the text input only renders what was typed.
func (m Model) renderInput() string {
	if m.chat.Config().APIKey == "" {
		return DimStyle.Render(missingKeyPlaceholder)
	}

	if m.input.Value() == "" && !m.chat.Loading() {
		return m.input.Prompt + DimStyle.Render(inputPlaceholder)
	}

	return m.input.View()
}

func renderChatMessage(msg entity.Message) string {
	style := AssistantStyle
	if msg.Role == entity.RoleUser {
		style = UserStyle
	}

	text := lipgloss.NewStyle().Width(panelWidth - 4).Render(msg.Role.Label() + ": " + msg.Content)
	return style.Render(text)
}
