package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventStore implements ports.EventStore using Redis SET NX. Stripe retries
// webhook deliveries; the first delivery wins and the rest are dropped.
type EventStore struct {
	client *goredis.Client
	prefix string
}

// NewEventStore creates a new Redis-backed webhook event store.
func NewEventStore(client *goredis.Client) *EventStore {
	return &EventStore{
		client: client,
		prefix: "stripe_event:",
	}
}

// MarkProcessed atomically records the event id. Returns true if this is the
// first delivery, false if the event was already seen.
func (s *EventStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+eventID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis event mark processed: %w", err)
	}
	return result == "OK", nil
}
