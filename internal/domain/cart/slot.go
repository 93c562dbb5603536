// internal/domain/cart/slot.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amanat-silver/storefront-backend/internal/config"
)

// ErrSlotEmpty is returned by Slot.Load when the slot holds no snapshot.
var ErrSlotEmpty = errors.New("cart: slot is empty")

// Slot is the durable storage slot backing a cart store: a single named
// value read once at hydration and overwritten wholesale on every mutation.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// RedisSlot persists cart snapshots under a single namespaced Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisSlot creates a slot for the given cart ID using the configured
// storage key namespace.
func NewRedisSlot(client *redis.Client, cfg *config.Config, cartID string) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    fmt.Sprintf("%s:%s", cfg.Cart.StorageKey, cartID),
		ttl:    cfg.Cart.TTL,
	}
}

// Load reads the current snapshot, returning ErrSlotEmpty when the key
// does not exist.
func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, ErrSlotEmpty
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot and refreshes its expiration.
func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// MemorySlot is an in-process Slot used in tests and as a fallback when no
// durable backend is available.
type MemorySlot struct {
	mu     sync.Mutex
	data   []byte
	loaded bool
}

// NewMemorySlot creates an empty in-memory slot. A non-nil seed pre-fills
// the slot as if a snapshot had been persisted earlier.
func NewMemorySlot(seed []byte) *MemorySlot {
	return &MemorySlot{
		data:   seed,
		loaded: seed != nil,
	}
}

// Load returns the stored snapshot, or ErrSlotEmpty if nothing was saved.
func (s *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return nil, ErrSlotEmpty
	}

	data := make([]byte, len(s.data))
	copy(data, s.data)
	return data, nil
}

// Save stores a copy of the snapshot.
func (s *MemorySlot) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.loaded = true
	return nil
}
