package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-tui/internal/chat"
	"github.com/rocketscienceinc/tictactoe-tui/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/responses"
)

const (
	inputPlaceholder      = "Type your message..."
	missingKeyPlaceholder = "Missing API key (OPENAI_API_KEY)"
	inputWidth            = 36
)

// chatReplyMsg carries the outcome of the request started by a send.
type chatReplyMsg struct {
	reply responses.Reply
	err   error
}

// Model is the app shell: the game card plus the optional chat panel.
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	game *tictactoe.GameController
	chat *chat.Widget

	input  textinput.Model
	keys   keyMap
	cursor int
}

func New(ctx context.Context, logger *slog.Logger, game *tictactoe.GameController, widget *chat.Widget) Model {
	input := textinput.New()
	// Messages have no length limit.
	input.CharLimit = 0
	input.Width = inputWidth

	return Model{
		ctx:    ctx,
		logger: logger.With("component", "ui"),
		game:   game,
		chat:   widget,
		input:  input,
		keys:   defaultKeyMap(),
		cursor: 4,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.chat.Finish(msg.reply, msg.err)
		cmd := m.syncInput()
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}

		if m.chat.IsOpen() {
			return m.updateChat(msg)
		}

		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 1, 0)
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, 0, 1)
	case key.Matches(msg, m.keys.Place):
		m.place(m.cursor)
	case key.Matches(msg, m.keys.Reset):
		m.game.Reset()
		m.logger.Debug("game reset")
	case key.Matches(msg, m.keys.Chat):
		m.chat.Toggle()
		cmd := m.syncInput()
		return m, cmd
	default:
		if cell, ok := cellForKey(msg.String()); ok {
			m.cursor = cell
			m.place(cell)
		}
	}

	return m, nil
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.chat.Close()
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		m.chat.SetInput(m.input.Value())

		pending, ok := m.chat.Begin()
		if !ok {
			return m, nil
		}

		m.input.Reset()
		focus := m.syncInput()
		return m, tea.Batch(focus, m.sendCmd(pending))
	}

	if !m.inputEnabled() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.chat.SetInput(m.input.Value())

	return m, cmd
}

// place ignores rejected moves; they are not user errors.
func (m Model) place(cell int) {
	if m.game.IsOver() {
		m.logger.Debug("move ignored, game is over", "cell", cell, "status", m.game.Status())
		return
	}

	if err := m.game.Place(cell); err != nil {
		m.logger.Debug("move ignored", "cell", cell, "error", err)
		return
	}

	if m.game.IsOver() {
		m.logger.Info("game over", "status", m.game.Status(), "line", m.game.WinningLine())
		return
	}

	m.logger.Debug("move accepted", "cell", cell, "status", m.game.Status())
}

func (m Model) sendCmd(pending chat.Pending) tea.Cmd {
	widget, ctx := m.chat, m.ctx

	return func() tea.Msg {
		reply, err := widget.Run(ctx, pending)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m Model) inputEnabled() bool {
	return m.chat.Config().APIKey != "" && !m.chat.Loading()
}

// syncInput focuses the text input only while the panel is open and typing is allowed.
func (m *Model) syncInput() tea.Cmd {
	if m.chat.IsOpen() && m.inputEnabled() {
		return m.input.Focus()
	}

	m.input.Blur()
	return nil
}
