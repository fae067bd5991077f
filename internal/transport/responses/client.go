package responses

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const endpointPath = "/responses"

// APIError is returned for any non-2xx answer from the endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (that *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", that.StatusCode, that.Body)
}

type request struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type Client struct {
	logger *slog.Logger

	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// New builds a client for an OpenAI Responses compatible endpoint.
// A nil httpClient gets a client without timeout.
func New(logger *slog.Logger, httpClient *http.Client, baseURL, apiKey, model string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		logger:     logger.With("component", "responses"),
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// Complete sends one prompt and decodes the reply. It never retries.
func (that *Client) Complete(ctx context.Context, prompt string) (Reply, error) {
	log := that.logger.With("method", "Complete")

	payload, err := json.Marshal(request{Model: that.model, Input: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+endpointPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+that.apiKey)

	log.Debug("sending completion request", "url", req.URL.String(), "model", that.model)

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("completion request rejected", "status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	reply, err := ParseReply(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	log.Debug("completion received", "shape", reply.Kind())

	return reply, nil
}
