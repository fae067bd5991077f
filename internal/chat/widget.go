package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/responses"
)

const (
	Greeting     = "Hi! Ask me anything about this Tic Tac Toe game."
	FallbackText = "Sorry, I could not parse the response."
	errorPrefix  = "Error: "
)

var (
	errEmptyInput = errors.New("input is empty")
	errInFlight   = errors.New("a request is already in flight")
)

type completer interface {
	Complete(ctx context.Context, prompt string) (responses.Reply, error)
}

// Pending is the snapshot taken when a send is accepted.
type Pending struct {
	Prompt string
}

// Widget holds the chat log and the single in-flight request guard.
// It is driven from one event loop and is not safe for concurrent use.
type Widget struct {
	logger    *slog.Logger
	conf      Config
	completer completer

	messages []entity.Message
	input    string
	loading  bool
	open     bool
}

func NewWidget(logger *slog.Logger, conf Config, completer completer) *Widget {
	return &Widget{
		logger:    logger.With("component", "chat", "session", uuid.NewString()),
		conf:      conf,
		completer: completer,
		messages:  []entity.Message{entity.NewAssistantMessage(Greeting)},
	}
}

func (that *Widget) Config() Config {
	return that.conf
}

func (that *Widget) Enabled() bool {
	return that.conf.Enabled
}

func (that *Widget) Messages() []entity.Message {
	return append([]entity.Message(nil), that.messages...)
}

func (that *Widget) Input() string {
	return that.input
}

func (that *Widget) SetInput(text string) {
	that.input = text
}

func (that *Widget) Loading() bool {
	return that.loading
}

func (that *Widget) IsOpen() bool {
	return that.open
}

// Toggle opens or closes the panel. A disabled widget stays closed.
func (that *Widget) Toggle() {
	if !that.conf.Enabled {
		return
	}
	that.open = !that.open
}

func (that *Widget) Close() {
	that.open = false
}

// CanSend reports whether Begin would accept the current input.
func (that *Widget) CanSend() bool {
	return that.guard() == nil
}

func (that *Widget) guard() error {
	switch {
	case !that.conf.Enabled:
		return apperror.ErrChatDisabled
	case !that.conf.Ready():
		return apperror.ErrChatNotReady
	case strings.TrimSpace(that.input) == "":
		return errEmptyInput
	case that.loading:
		return errInFlight
	default:
		return nil
	}
}

// Begin appends the user message, clears the input and marks the widget busy.
// It returns false and changes nothing when the send is not allowed.
func (that *Widget) Begin() (Pending, bool) {
	if err := that.guard(); err != nil {
		that.logger.Debug("send ignored", "reason", err)
		return Pending{}, false
	}

	that.messages = append(that.messages, entity.NewUserMessage(strings.TrimSpace(that.input)))
	that.input = ""
	that.loading = true

	return Pending{Prompt: responses.FlattenTranscript(that.messages)}, true
}

// Finish records the outcome of the request started by Begin.
func (that *Widget) Finish(reply responses.Reply, err error) {
	log := that.logger.With("method", "Finish")
	defer func() {
		that.loading = false
	}()

	if err != nil {
		log.Error("completion failed", "error", err)
		that.messages = append(that.messages, entity.NewAssistantMessage(errorPrefix+err.Error()))
		return
	}

	text := ""
	if reply != nil {
		text = reply.Text()
	}

	if text == "" {
		log.Warn("completion had no usable text")
		text = FallbackText
	}

	that.messages = append(that.messages, entity.NewAssistantMessage(text))
}

// Send runs a full request cycle synchronously.
func (that *Widget) Send(ctx context.Context) bool {
	pending, ok := that.Begin()
	if !ok {
		return false
	}

	reply, err := that.completer.Complete(ctx, pending.Prompt)
	that.Finish(reply, err)

	return true
}

// Run performs the network half of a send started by Begin. It does not touch the widget.
func (that *Widget) Run(ctx context.Context, pending Pending) (responses.Reply, error) {
	return that.completer.Complete(ctx, pending.Prompt)
}
