package entity

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single entry of the chat log.
type Message struct {
	Role    Role
	Content string
}

// Label is the prefix used when a message is written into a transcript.
func (that Role) Label() string {
	if that == RoleUser {
		return "User"
	}
	return "Assistant"
}

func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
