// internal/domain/cart/manager.go
package cart

import (
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/amanat-silver/storefront-backend/internal/config"
)

// Manager hands out one Store per cart session. Each store is hydrated from
// its Redis slot exactly once, when the session first touches its cart, and
// is reused for the rest of the process lifetime. Separate sessions (and
// separate processes hydrating the same slot) hold independent in-memory
// copies; cross-instance synchronization is not provided.
type Manager struct {
	mu          sync.Mutex
	redisClient *redis.Client
	config      *config.Config
	logger      *logrus.Logger
	stores      map[string]*Store
}

// NewManager creates a new cart manager.
func NewManager(redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Manager {
	return &Manager{
		redisClient: redisClient,
		config:      cfg,
		logger:      logger,
		stores:      make(map[string]*Store),
	}
}

// Store returns the store for the given cart ID, hydrating it on first use.
func (m *Manager) Store(cartID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[cartID]; ok {
		return store
	}

	logger := m.logger.WithField("cart_id", cartID)
	store := NewStore(NewRedisSlot(m.redisClient, m.config, cartID), logger)

	// Every mutation is logged through a regular subscription, the same
	// notification path UI consumers use.
	store.Subscribe(func(items []LineItem) {
		units := 0
		for _, item := range items {
			units += item.Quantity
		}
		logger.WithFields(logrus.Fields{
			"lines": len(items),
			"units": units,
		}).Debug("Cart updated")
	})

	m.stores[cartID] = store
	return store
}
