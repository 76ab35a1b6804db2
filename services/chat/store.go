package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// TriggerWord is the mention that turns a chat message into a plan request.
const TriggerWord = "@ai"

const (
	historyKey = "chat:history"
	maxHistory = 500
)

// Message is one chat transcript entry.
type Message struct {
	Sender string    `json:"sender"`
	Text   string    `json:"message"`
	SentAt time.Time `json:"sentAt"`
}

// WeightedMessage pairs a message with its recency weight. Recent messages
// carry more weight than older ones when extracting preferences.
type WeightedMessage struct {
	Message
	Weight float64 `json:"weight"`
}

// Store keeps the rolling group transcript in redis.
type Store struct {
	client *redis.Client
}

// NewStore wraps the chat cache client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Append records a message and reports whether it mentions the trigger word.
func (s *Store) Append(ctx context.Context, msg Message) (bool, error) {
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now().UTC()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return false, fmt.Errorf("failed to marshal chat message: %w", err)
	}
	if err := s.client.RPush(ctx, historyKey, data).Err(); err != nil {
		return false, fmt.Errorf("failed to append chat message: %w", err)
	}
	// Keep only the newest maxHistory entries.
	if err := s.client.LTrim(ctx, historyKey, -maxHistory, -1).Err(); err != nil {
		return false, fmt.Errorf("failed to trim chat history: %w", err)
	}
	return ContainsTrigger(msg.Text), nil
}

// Recent returns the newest limit messages, oldest first, with Gaussian
// recency weights attached.
func (s *Store) Recent(ctx context.Context, limit int) ([]WeightedMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	raw, err := s.client.LRange(ctx, historyKey, int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	var msgs []Message
	for _, line := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			continue
		}
		msgs = append(msgs, msg)
	}

	weighted := make([]WeightedMessage, 0, len(msgs))
	for i, msg := range msgs {
		weighted = append(weighted, WeightedMessage{
			Message: msg,
			Weight:  GaussianWeight(i, len(msgs)),
		})
	}
	return weighted, nil
}

// ContainsTrigger reports whether text mentions the trigger word.
func ContainsTrigger(text string) bool {
	return strings.Contains(strings.ToLower(text), TriggerWord)
}

// GaussianWeight scores message importance by recency: a Gaussian centered on
// the newest message, so weight decays smoothly toward older entries.
//
// position 0 is the oldest message; total-1 the newest.
func GaussianWeight(position, total int) float64 {
	const sigma = 0.3
	if total <= 1 {
		return 1.0
	}
	normalized := (2*float64(position)/float64(total-1)) - 1
	return math.Exp(-math.Pow(normalized-1, 2) / (2 * sigma * sigma))
}
