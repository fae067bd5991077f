package responses

import (
	"errors"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("response body is not valid JSON")

// Reply is one of the known completion response shapes.
type Reply interface {
	// Text is the assistant text carried by the reply, empty when there is none.
	Text() string
	Kind() string

	reply()
}

// OutputReply is the Responses API shape: {"output":[{"content":[{"text":"..."}]}]}.
type OutputReply struct {
	Content string
}

// ChoicesReply is the chat-completions shape: {"choices":[{"message":{"content":"..."}}]}.
type ChoicesReply struct {
	Content string
}

// OutputTextReply is the flat shape: {"output_text":"..."}.
type OutputTextReply struct {
	Content string
}

// UnrecognizedReply is any valid JSON document matching none of the shapes above.
type UnrecognizedReply struct{}

func (that OutputReply) Text() string     { return that.Content }
func (that ChoicesReply) Text() string    { return that.Content }
func (that OutputTextReply) Text() string { return that.Content }
func (UnrecognizedReply) Text() string    { return "" }

func (OutputReply) Kind() string       { return "output" }
func (ChoicesReply) Kind() string      { return "choices" }
func (OutputTextReply) Kind() string   { return "output_text" }
func (UnrecognizedReply) Kind() string { return "unrecognized" }

func (OutputReply) reply()       {}
func (ChoicesReply) reply()      {}
func (OutputTextReply) reply()   {}
func (UnrecognizedReply) reply() {}

// ParseReply picks the first matching shape in the order output, choices, output_text.
// An "output" array always selects OutputReply, even when it carries no text.
func ParseReply(body []byte) (Reply, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(body)

	if doc.Get("output").IsArray() {
		return OutputReply{Content: stringAt(doc, "output.0.content.0.text")}, nil
	}

	if doc.Get("choices").IsArray() {
		if content := stringAt(doc, "choices.0.message.content"); content != "" {
			return ChoicesReply{Content: content}, nil
		}
	}

	if outputText := doc.Get("output_text"); outputText.Type == gjson.String {
		return OutputTextReply{Content: outputText.Str}, nil
	}

	return UnrecognizedReply{}, nil
}

func stringAt(doc gjson.Result, path string) string {
	value := doc.Get(path)
	if value.Type != gjson.String {
		return ""
	}
	return value.Str
}
