package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/transport/responses"
	"github.com/rocketscienceinc/tictactoe-tui/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConnectionReset = errors.New("connection reset by peer")

type fakeCompleter struct {
	prompts []string
	reply   responses.Reply
	err     error
}

func (that *fakeCompleter) Complete(_ context.Context, prompt string) (responses.Reply, error) {
	that.prompts = append(that.prompts, prompt)
	return that.reply, that.err
}

func newTestWidget(conf Config, completer completer) *Widget {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewWidget(logger, conf, completer)
}

func readyConfig() Config {
	return NewConfig("true", "key", "http://localhost/v1", "gpt-4o-mini")
}

func TestNewWidget(t *testing.T) {
	// When: a widget is created
	widget := newTestWidget(readyConfig(), &fakeCompleter{})

	// Then: the log holds only the greeting and nothing is in flight
	assert.Equal(t, []entity.Message{entity.NewAssistantMessage(Greeting)}, widget.Messages())
	assert.False(t, widget.Loading())
	assert.False(t, widget.IsOpen())
	assert.Empty(t, widget.Input())
}

func TestWidget_Guard(t *testing.T) {
	t.Run("Disabled widget never sends", func(t *testing.T) {
		// Given: a fully configured but disabled widget
		completer := &fakeCompleter{reply: responses.OutputTextReply{Content: "nope"}}
		conf := NewConfig("false", "key", "http://localhost/v1", "m")
		widget := newTestWidget(conf, completer)

		// When: the user tries everything
		widget.Toggle()
		widget.SetInput("hello")
		sent := widget.Send(context.Background())

		// Then: nothing happens
		assert.False(t, sent)
		assert.False(t, widget.IsOpen())
		assert.Empty(t, completer.prompts)
		assert.Len(t, widget.Messages(), 1)
	})

	t.Run("Whitespace input is ignored", func(t *testing.T) {
		// Given: an enabled widget
		completer := &fakeCompleter{}
		widget := newTestWidget(readyConfig(), completer)

		for _, input := range []string{"", "   ", "\t\n"} {
			// When: sending blank input
			widget.SetInput(input)
			sent := widget.Send(context.Background())

			// Then: no request and no log change
			assert.False(t, sent)
			assert.False(t, widget.CanSend())
		}

		assert.Empty(t, completer.prompts)
		assert.Len(t, widget.Messages(), 1)
	})

	t.Run("Missing API key blocks sending", func(t *testing.T) {
		// Given: an enabled widget without key
		completer := &fakeCompleter{}
		widget := newTestWidget(NewConfig("true", "", "", ""), completer)

		// When: sending text
		widget.SetInput("hello")

		// Then: the guard refuses
		assert.False(t, widget.Send(context.Background()))
		assert.Empty(t, completer.prompts)
		assert.Equal(t, "hello", widget.Input())
	})

	t.Run("Second send while loading is blocked", func(t *testing.T) {
		// Given: a widget with a request in flight
		widget := newTestWidget(readyConfig(), &fakeCompleter{})
		widget.SetInput("first")
		_, ok := widget.Begin()
		require.True(t, ok)

		// When: another message is attempted
		widget.SetInput("second")
		_, ok = widget.Begin()

		// Then: it is not queued and the log is unchanged
		assert.False(t, ok)
		assert.Len(t, widget.Messages(), 2)
		assert.Equal(t, "second", widget.Input())
	})
}

func TestWidget_Begin(t *testing.T) {
	// Given: an enabled widget with padded input
	widget := newTestWidget(readyConfig(), &fakeCompleter{})
	widget.SetInput("  Who starts?  ")

	// When: the send begins
	pending, ok := widget.Begin()

	// Then: the trimmed user message is logged, input is cleared and the widget is loading
	require.True(t, ok)
	assert.Equal(t, entity.NewUserMessage("Who starts?"), widget.Messages()[1])
	assert.Empty(t, widget.Input())
	assert.True(t, widget.Loading())
	assert.False(t, widget.CanSend())
	assert.Equal(t, "Assistant: "+Greeting+"\nUser: Who starts?\nAssistant:", pending.Prompt)
}

func TestWidget_Finish(t *testing.T) {
	cases := []struct {
		name  string
		reply responses.Reply
		err   error
		want  string
	}{
		{name: "Output reply", reply: responses.OutputReply{Content: "hi"}, want: "hi"},
		{name: "Choices reply", reply: responses.ChoicesReply{Content: "X starts"}, want: "X starts"},
		{name: "Output text reply", reply: responses.OutputTextReply{Content: "flat"}, want: "flat"},
		{name: "Unrecognized reply", reply: responses.UnrecognizedReply{}, want: FallbackText},
		{name: "Output reply without text", reply: responses.OutputReply{}, want: FallbackText},
		{
			name: "API error",
			err:  &responses.APIError{StatusCode: http.StatusInternalServerError, Body: "server error"},
			want: "Error: API error 500: server error",
		},
		{name: "Network error", err: errConnectionReset, want: "Error: connection reset by peer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a widget with a request in flight
			widget := newTestWidget(readyConfig(), &fakeCompleter{})
			widget.SetInput("hello")
			_, ok := widget.Begin()
			require.True(t, ok)

			// When: the request completes
			widget.Finish(tc.reply, tc.err)

			// Then: one assistant message is appended and loading is cleared
			messages := widget.Messages()
			require.Len(t, messages, 3)
			assert.Equal(t, entity.NewAssistantMessage(tc.want), messages[2])
			assert.False(t, widget.Loading())
		})
	}
}

func TestWidget_SendThroughEndpoint(t *testing.T) {
	t.Run("Output shape reply is appended verbatim", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Respond(http.StatusOK, `{"output":[{"content":[{"text":"hi"}]}]}`)

		conf := NewConfig("true", "key", st.BaseURL()+"/", "")
		client := responses.New(st.Logger, nil, conf.BaseURL, conf.APIKey, conf.Model)
		widget := NewWidget(st.Logger, conf, client)

		// When: the user sends a message
		widget.SetInput("hello")
		sent := widget.Send(ctx)

		// Then: the assistant text is exactly "hi"
		require.True(t, sent)
		messages := widget.Messages()
		require.Len(t, messages, 3)
		assert.Equal(t, "hi", messages[2].Content)
		assert.Equal(t, entity.RoleAssistant, messages[2].Role)

		// Then: the full history went out with the default model
		requests := st.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "/v1/responses", requests[0].Path)
		assert.Equal(t, DefaultModel, requests[0].Model)
		assert.Equal(t, "Assistant: "+Greeting+"\nUser: hello\nAssistant:", requests[0].Input)
	})

	t.Run("HTTP 500 is reported in the chat", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Respond(http.StatusInternalServerError, "server error")

		conf := NewConfig("true", "key", st.BaseURL(), "m")
		client := responses.New(st.Logger, nil, conf.BaseURL, conf.APIKey, conf.Model)
		widget := NewWidget(st.Logger, conf, client)

		// When: the user sends a message
		widget.SetInput("hello")
		widget.Send(ctx)

		// Then: status and body show up and loading is cleared
		last := widget.Messages()[2]
		assert.Equal(t, entity.RoleAssistant, last.Role)
		assert.Contains(t, last.Content, "500")
		assert.Contains(t, last.Content, "server error")
		assert.False(t, widget.Loading())
	})

	t.Run("Second send is blocked while a request is in flight", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Respond(http.StatusOK, `{"output_text":"done"}`)
		st.Hold()

		conf := NewConfig("true", "key", st.BaseURL(), "m")
		client := responses.New(st.Logger, nil, conf.BaseURL, conf.APIKey, conf.Model)
		widget := NewWidget(st.Logger, conf, client)

		// Given: a request that the endpoint holds open
		widget.SetInput("first")
		pending, ok := widget.Begin()
		require.True(t, ok)

		type outcome struct {
			reply responses.Reply
			err   error
		}
		done := make(chan outcome, 1)
		go func() {
			reply, err := widget.Run(ctx, pending)
			done <- outcome{reply: reply, err: err}
		}()

		require.Eventually(t, func() bool { return len(st.Requests()) == 1 }, 5*time.Second, 10*time.Millisecond)

		// When: the user tries to send again
		widget.SetInput("second")
		_, ok = widget.Begin()

		// Then: nothing is queued and the log only has the first message
		assert.False(t, ok)
		assert.True(t, widget.Loading())
		assert.Len(t, widget.Messages(), 2)

		// When: the endpoint answers
		st.Release()
		res := <-done
		widget.Finish(res.reply, res.err)

		// Then: exactly one request went out and the reply is appended
		assert.Len(t, st.Requests(), 1)
		assert.Equal(t, entity.NewAssistantMessage("done"), widget.Messages()[2])
		assert.False(t, widget.Loading())
	})

	t.Run("Disabled widget never reaches the endpoint", func(t *testing.T) {
		ctx, st := suite.New(t)

		conf := NewConfig("", "key", st.BaseURL(), "m")
		client := responses.New(st.Logger, nil, conf.BaseURL, conf.APIKey, conf.Model)
		widget := NewWidget(st.Logger, conf, client)

		// When: the user tries to send several times
		for i := 0; i < 3; i++ {
			widget.Toggle()
			widget.SetInput("hello")
			widget.Send(ctx)
		}

		// Then: no request was ever issued
		assert.Empty(t, st.Requests())
	})
}
