package booking

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Store is the date-partitioned list store holding serialized bookings.
// One list per calendar date; a booking's presence in its list is its
// existence.
type Store interface {
	// Append adds a serialized record to the tail of the date's list.
	Append(ctx context.Context, date string, raw []byte) error
	// ListAll returns all serialized records for the date in insertion order.
	ListAll(ctx context.Context, date string) ([]string, error)
	// RemoveOne removes exactly one occurrence of raw from the date's list.
	// Returns ErrNotFound when no occurrence exists.
	RemoveOne(ctx context.Context, date, raw string) error
	// DeleteKey removes the entire partition. Deleting an absent partition
	// is not an error.
	DeleteKey(ctx context.Context, date string) error
}

// RedisStore implements Store on redis lists.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisStore creates a redis-backed booking store.
func NewRedisStore(client *redis.Client, tracer trace.Tracer) *RedisStore {
	if client == nil {
		panic("booking: redis client cannot be nil")
	}
	if tracer == nil {
		tracer = otel.Tracer("heartsafe.internal.booking.store")
	}
	return &RedisStore{redis: client, tracer: tracer}
}

func scheduleKey(date string) string {
	return fmt.Sprintf("schedule:%s", date)
}

// Append pushes a serialized booking onto the date's list.
func (s *RedisStore) Append(ctx context.Context, date string, raw []byte) error {
	ctx, span := s.tracer.Start(ctx, "booking.store.append")
	defer span.End()

	if err := s.redis.RPush(ctx, scheduleKey(date), raw).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("booking: failed to append record for %s: %w", date, err)
	}
	return nil
}

// ListAll returns every serialized booking stored for the date.
func (s *RedisStore) ListAll(ctx context.Context, date string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "booking.store.list_all")
	defer span.End()

	records, err := s.redis.LRange(ctx, scheduleKey(date), 0, -1).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: failed to list records for %s: %w", date, err)
	}
	return records, nil
}

// RemoveOne removes a single occurrence of the exact serialized value.
func (s *RedisStore) RemoveOne(ctx context.Context, date, raw string) error {
	ctx, span := s.tracer.Start(ctx, "booking.store.remove_one")
	defer span.End()

	removed, err := s.redis.LRem(ctx, scheduleKey(date), 1, raw).Result()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("booking: failed to remove record for %s: %w", date, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteKey drops the whole partition for the date.
func (s *RedisStore) DeleteKey(ctx context.Context, date string) error {
	ctx, span := s.tracer.Start(ctx, "booking.store.delete_key")
	defer span.End()

	if err := s.redis.Del(ctx, scheduleKey(date)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("booking: failed to delete partition %s: %w", date, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
