package chat

import "strings"

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// Config is resolved once at startup and never changes afterwards.
type Config struct {
	Enabled bool
	APIKey  string
	BaseURL string
	Model   string
}

// NewConfig normalizes raw settings. Only "true" (any case) enables the chat.
func NewConfig(enabled, apiKey, baseURL, model string) Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if model == "" {
		model = DefaultModel
	}

	return Config{
		Enabled: strings.ToLower(enabled) == "true",
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
	}
}

// Ready reports whether every value needed for a request is present.
func (that Config) Ready() bool {
	return that.APIKey != "" && that.BaseURL != "" && that.Model != ""
}
