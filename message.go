package gemchat

import "time"

// Message is a sealed interface representing a conversation turn.
// The unexported marker method prevents external implementations.
// Role() returns the message's role without requiring a type switch.
// Messages are immutable once appended to a session.
type Message interface {
	isMessage()
	Role() Role
}

// UserMessage represents a turn from the user.
type UserMessage struct {
	Text      string
	Timestamp time.Time
}

func (UserMessage) isMessage() {}

// Role returns RoleUser.
func (UserMessage) Role() Role { return RoleUser }

// AssistantMessage represents a turn from the assistant.
type AssistantMessage struct {
	Text      string
	Model     string
	Usage     Usage
	Timestamp time.Time
}

func (AssistantMessage) isMessage() {}

// Role returns RoleAssistant.
func (AssistantMessage) Role() Role { return RoleAssistant }

// Interface compliance checks.
var (
	_ Message = UserMessage{}
	_ Message = AssistantMessage{}
)
