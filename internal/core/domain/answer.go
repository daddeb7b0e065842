package domain

// Answer is the pipeline's response to a single question.
// It is produced once per query and immutable.
type Answer struct {
	// Text is the answer in the caller's UI language.
	Text string

	// IsFallback is true when the generator declared that the
	// documents do not contain the answer. The decision is made on
	// the untranslated English output, never inferred after
	// translation.
	IsFallback bool
}

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message in a chat session. Turns are owned
// by the presentation shell; the core pipeline is stateless across
// turns and only ever sees the current query.
type ConversationTurn struct {
	// Role is who authored the turn.
	Role Role

	// Content is the message text.
	Content string
}
