// File: services/assistant/session.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

const sessionPrefix = "holly:session:"

// SessionStore persists sessions between utterances.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Set(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps each session as one TTL'd JSON value. A missing key
// yields a fresh default session rather than an error.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// NewSession builds a default session with a fresh id.
func NewSession(now time.Time) *models.Session {
	return &models.Session{
		ID:           uuid.NewString(),
		Generation:   1,
		State:        models.NewBookingState(),
		Conversation: models.Conversation{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	key := sessionPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		session := NewSession(time.Now())
		session.ID = sessionID
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.Session) error {
	key := sessionPrefix + session.ID
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
