// Package history persists conversation turns in a durable store and
// reconstructs them in append order. It is the only reader and writer of
// turn data; sequence numbers assigned at write time are the sole ordering
// key, independent of store arrival order.
package history

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a conversation. Seq orders turns
// within a conversation and is never exposed to the language model.
type Turn struct {
	Role    string
	Content string
	Seq     int64
}

// Repository abstracts persistence of conversation turns.
// Append must assign a sequence value greater than all previously written
// turns for the same conversation. Load must return turns in ascending
// sequence order, and an empty slice (not an error) for an unknown
// conversation — a read failure is an error and must never be reported as
// an empty history.
// Implementations must be safe for concurrent use.
type Repository interface {
	Append(ctx context.Context, conversationID, role, content string) error
	Load(ctx context.Context, conversationID string) ([]Turn, error)
}
