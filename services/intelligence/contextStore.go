// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const chatContextPrefix = "chat:ctx:"

// maxHistoryExchanges bounds how much conversation is replayed into prompts.
const maxHistoryExchanges = 8

// Exchange is one user/assistant turn kept for prompt enrichment. It is
// advisory context only; the authoritative dialogue state is client-held.
type Exchange struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	At        time.Time `json:"at"`
}

// ContextStore keeps recent exchanges per user for the cascade's prompt.
type ContextStore interface {
	History(ctx context.Context, userID string) ([]Exchange, error)
	Append(ctx context.Context, userID string, ex Exchange) error
	Clear(ctx context.Context, userID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) History(ctx context.Context, userID string) ([]Exchange, error) {
	key := chatContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []Exchange
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (s *RedisContextStore) Append(ctx context.Context, userID string, ex Exchange) error {
	history, err := s.History(ctx, userID)
	if err != nil {
		return err
	}
	history = append(history, ex)
	if len(history) > maxHistoryExchanges {
		history = history[len(history)-maxHistoryExchanges:]
	}
	b, err := json.Marshal(history)
	if err != nil {
		return err
	}
	key := chatContextPrefix + userID
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, chatContextPrefix+userID).Err()
}
