package suite

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

// Request is what the fake endpoint saw for one call.
type Request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Model         string `json:"model"`
	Input         string `json:"input"`
}

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Server impersonates an OpenAI Responses compatible endpoint.
	Server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []Request
	hold     chan struct{}
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st := &Suite{
		T:      t,
		Logger: logger,
		status: http.StatusOK,
		body:   `{"output_text":""}`,
	}

	st.Server = httptest.NewServer(http.HandlerFunc(st.handle))
	t.Cleanup(func() {
		st.Release()
		st.Server.Close()
	})

	return ctx, st
}

// BaseURL is the value to configure as the API base.
func (that *Suite) BaseURL() string {
	return that.Server.URL + "/v1"
}

// Respond scripts the status and raw body of every following answer.
func (that *Suite) Respond(status int, body string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.status = status
	that.body = body
}

// Hold makes the endpoint block until Release is called.
func (that *Suite) Hold() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.hold = make(chan struct{})
}

func (that *Suite) Release() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.hold != nil {
		close(that.hold)
		that.hold = nil
	}
}

func (that *Suite) Requests() []Request {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]Request(nil), that.requests...)
}

func (that *Suite) handle(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.Logger.Error("failed to decode request", "error", err)
	}

	that.mu.Lock()
	that.requests = append(that.requests, req)
	status, body, hold := that.status, that.body, that.hold
	that.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		that.Logger.Error("failed to write response", "error", err)
	}
}
