package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message roles.
const (
	RoleHolly = "holly"
	RoleUser  = "user"
)

// DebounceWindow is how long an identical (role, content) pair is suppressed
// after being recorded. A narrow idempotence guard, not a general dedup cache.
const DebounceWindow = 500 * time.Millisecond

// ConversationMessage is one unit of the transcript.
type ConversationMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the append-only transcript of a session.
type Conversation struct {
	Messages []ConversationMessage `json:"messages"`
	LastKey  string                `json:"lastKey,omitempty"`
	LastAt   time.Time             `json:"lastAt,omitempty"`
}

// Append records a message unless the same (role, content) pair was recorded
// within the debounce window. Reports whether the message was recorded.
func (c *Conversation) Append(role, content string, now time.Time) bool {
	key := fmt.Sprintf("%s:%s", role, content)
	if key == c.LastKey && now.Sub(c.LastAt) < DebounceWindow {
		return false
	}
	c.LastKey = key
	c.LastAt = now

	c.Messages = append(c.Messages, ConversationMessage{
		ID:        fmt.Sprintf("msg-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	return true
}
