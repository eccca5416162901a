package domain

// Speaker roles for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	Role    string
	Content string
}

// Conversation is an append-only, ordered record of turns. It has value
// semantics: Append returns a new log so handlers stay pure and the history
// they were given is never mutated underneath them.
type Conversation []Message

// Append returns a new conversation with the given messages added at the end.
func (c Conversation) Append(msgs ...Message) Conversation {
	out := make(Conversation, 0, len(c)+len(msgs))
	out = append(out, c...)
	out = append(out, msgs...)
	return out
}

// AppendTurn records one completed exchange, user entry before assistant entry.
func (c Conversation) AppendTurn(query, answer string) Conversation {
	return c.Append(
		Message{Role: RoleUser, Content: query},
		Message{Role: RoleAssistant, Content: answer},
	)
}

// Len returns the number of recorded messages.
func (c Conversation) Len() int { return len(c) }
