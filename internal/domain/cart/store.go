// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store owns the authoritative list of line items for one cart, keeps it
// mirrored to a durable slot, and answers derived queries. Consumers never
// mutate the item list directly; all writes go through the store's
// operations.
//
// Operations are serialized: each mutation updates in-memory state, saves
// the full snapshot to the slot, and notifies every subscriber before the
// next mutation can begin. A snapshot save failure is logged and the
// in-memory state remains authoritative for the rest of the session.
type Store struct {
	mu     sync.Mutex
	slot   Slot
	logger logrus.FieldLogger

	items  []LineItem
	subs   map[int]func(items []LineItem)
	nextID int
}

// NewStore creates a store hydrated from the given slot. An absent slot
// yields an empty cart; a corrupt snapshot is treated as a lost cart, not
// an error, so a bad persisted value can never take the application down.
func NewStore(slot Slot, logger logrus.FieldLogger) *Store {
	s := &Store{
		slot:   slot,
		logger: logger,
		items:  []LineItem{},
		subs:   make(map[int]func(items []LineItem)),
	}

	data, err := slot.Load(context.Background())
	if err == ErrSlotEmpty {
		return s
	} else if err != nil {
		s.logger.WithError(err).Warn("Failed to load cart snapshot, starting empty")
		return s
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WithError(err).Warn("Corrupt cart snapshot, starting empty")
		return s
	}
	s.items = items

	return s
}

// AddToCart adds one unit of the given product. If a line item with the
// same resolved identifier already exists its quantity is incremented and
// the stored snapshot is left as-is (first-seen product wins); otherwise a
// new line item is appended with quantity 1.
func (s *Store) AddToCart(product ProductRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	productID := ResolveID(product)

	found := false
	for i := range s.items {
		if ResolveID(s.items[i].Product) == productID {
			s.items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		s.items = append(s.items, LineItem{Product: product, Quantity: 1})
	}

	s.persistAndNotify()
}

// RemoveFromCart removes the line item with the given resolved identifier.
// Removing an absent id is a no-op, but still persists and notifies.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persistAndNotify()
}

// UpdateQuantity sets the quantity of an existing line item. A quantity of
// zero or less removes the item instead of storing a non-positive value.
// Updating an absent id is a no-op; an update never creates a line item.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
	} else {
		for i := range s.items {
			if ResolveID(s.items[i].Product) == productID {
				s.items[i].Quantity = quantity
				break
			}
		}
	}

	s.persistAndNotify()
}

// ClearCart resets the cart to an empty list.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []LineItem{}
	s.persistAndNotify()
}

// GetCartTotal returns the sum of all line item quantities. The store has
// no pricing knowledge; despite the name this is a count of units, kept for
// compatibility with the storefront contract. Currency totals are computed
// by the checkout collaborator over Items().
func (s *Store) GetCartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// GetCartItemsCount returns the sum of all line item quantities, the value
// shown on the navigation badge. Identical to GetCartTotal; both names are
// exposed for call-site clarity.
func (s *Store) GetCartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a consumer to be called synchronously with the new
// item list after every mutation, including no-op mutations. It returns an
// unsubscribe function. Callbacks must not call back into the store.
func (s *Store) Subscribe(fn func(items []LineItem)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) removeLocked(productID string) {
	for i := range s.items {
		if ResolveID(s.items[i].Product) == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) totalLocked() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Store) snapshotLocked() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// persistAndNotify serializes the full line-item list to the slot and makes
// the new state visible to every subscriber before the mutation returns.
// Must be called with the lock held.
func (s *Store) persistAndNotify() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Error("Failed to serialize cart snapshot")
	} else if err := s.slot.Save(context.Background(), data); err != nil {
		s.logger.WithError(err).Warn("Failed to save cart snapshot, keeping in-memory state")
	}

	snapshot := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
