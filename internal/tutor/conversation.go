// Package tutor orchestrates the grounded dialogue: conversation state,
// request assembly, and reintegration of model responses.
package tutor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

// Turn is one message in the conversation. Immutable once appended.
type Turn struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// Conversation is an append-only ordered sequence of turns; the only other
// mutation is a full clear.
type Conversation struct {
	mu    sync.Mutex
	turns []Turn
}

func NewConversation() *Conversation {
	return &Conversation{}
}

func (c *Conversation) append(role Role, content string) Turn {
	t := Turn{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	c.mu.Lock()
	c.turns = append(c.turns, t)
	c.mu.Unlock()
	return t
}

// Turns returns the conversation in order.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Clear empties the conversation. The knowledge bank is untouched; session
// reset semantics live with the caller.
func (c *Conversation) Clear() {
	c.mu.Lock()
	c.turns = nil
	c.mu.Unlock()
}
