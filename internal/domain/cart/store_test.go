// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore(t *testing.T, slot Slot) *Store {
	t.Helper()
	return NewStore(slot, testLogger())
}

// failingSlot simulates a durable backend that rejects writes, e.g. when
// storage quota is exceeded.
type failingSlot struct {
	MemorySlot
}

func (s *failingSlot) Save(ctx context.Context, data []byte) error {
	return errors.New("quota exceeded")
}

func TestResolveID(t *testing.T) {
	assert.Equal(t, "p1", ResolveID(ProductRef{ID: "p1"}))
	assert.Equal(t, "m1", ResolveID(ProductRef{LegacyID: "m1"}))
	// Legacy CMS id wins when both are present
	assert.Equal(t, "m1", ResolveID(ProductRef{LegacyID: "m1", ID: "p1"}))
	assert.Equal(t, "", ResolveID(ProductRef{}))
}

func TestHydrateFromSnapshot(t *testing.T) {
	slot := NewMemorySlot([]byte(`[{"product":{"id":"p1"},"quantity":2}]`))
	store := newTestStore(t, slot)

	assert.Equal(t, 2, store.GetCartItemsCount())

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", ResolveID(items[0].Product))
}

func TestHydrateFromEmptySlot(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	assert.Equal(t, 0, store.GetCartItemsCount())
	assert.Empty(t, store.Items())
}

func TestHydrateFromCorruptSnapshot(t *testing.T) {
	slot := NewMemorySlot([]byte(`{not json`))
	store := newTestStore(t, slot)

	// A corrupt snapshot is a lost cart, never a failure
	assert.Equal(t, 0, store.GetCartItemsCount())
}

func TestAddMergesByResolvedID(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	store.AddToCart(ProductRef{ID: "p1", Name: "Luna Crescent Ring"})
	store.AddToCart(ProductRef{ID: "p1", Name: "Luna Crescent Ring"})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddTreatsDualIdentifiersAsEqual(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	store.AddToCart(ProductRef{LegacyID: "p1", Name: "Moonlight Pendant"})
	store.AddToCart(ProductRef{ID: "p1", Name: "Moonlight Pendant"})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddKeepsFirstSeenSnapshot(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	store.AddToCart(ProductRef{ID: "p1", Name: "Original Name", Price: 4500})
	store.AddToCart(ProductRef{ID: "p1", Name: "Renamed", Price: 9900})

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Original Name", items[0].Product.Name)
	assert.Equal(t, int64(4500), items[0].Product.Price)
}

func TestUpdateQuantityFloorRemoves(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		store := newTestStore(t, NewMemorySlot(nil))
		store.AddToCart(ProductRef{ID: "p1"})

		store.UpdateQuantity("p1", quantity)

		assert.Empty(t, store.Items())
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))
	store.AddToCart(ProductRef{ID: "p1"})

	store.UpdateQuantity("p1", 7)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantityOnAbsentIDIsNoOp(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	store.UpdateQuantity("p9", 3)

	assert.Empty(t, store.Items())
}

func TestRemoveFromCart(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))
	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p2"})

	store.RemoveFromCart("p1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", ResolveID(items[0].Product))

	// Removing an absent id is a no-op, not an error
	store.RemoveFromCart("p1")
	assert.Len(t, store.Items(), 1)
}

func TestInsertionOrderIsStable(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))
	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p2"})
	store.AddToCart(ProductRef{ID: "p3"})

	// Touching an existing line must not reorder it
	store.AddToCart(ProductRef{ID: "p1"})
	store.UpdateQuantity("p2", 5)

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p1", ResolveID(items[0].Product))
	assert.Equal(t, "p2", ResolveID(items[1].Product))
	assert.Equal(t, "p3", ResolveID(items[2].Product))
}

func TestRoundTripPersistence(t *testing.T) {
	slot := NewMemorySlot(nil)
	store := newTestStore(t, slot)

	store.AddToCart(ProductRef{ID: "p1", Name: "Luna Crescent Ring"})
	store.AddToCart(ProductRef{ID: "p2", Name: "Moonlight Pendant"})
	store.AddToCart(ProductRef{ID: "p1", Name: "Luna Crescent Ring"})
	store.UpdateQuantity("p2", 4)
	store.RemoveFromCart("p3")

	rehydrated := newTestStore(t, slot)
	assert.Equal(t, store.Items(), rehydrated.Items())
}

func TestClearCartEmptiesAndPersists(t *testing.T) {
	slot := NewMemorySlot(nil)
	store := newTestStore(t, slot)
	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p2"})

	store.ClearCart()

	assert.Equal(t, 0, store.GetCartItemsCount())

	rehydrated := newTestStore(t, slot)
	assert.Equal(t, 0, rehydrated.GetCartItemsCount())
}

func TestAggregatesSumQuantities(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))
	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p2"})
	store.UpdateQuantity("p2", 3)
	store.AddToCart(ProductRef{ID: "p3"})

	assert.Equal(t, 6, store.GetCartTotal())
	assert.Equal(t, 6, store.GetCartItemsCount())
}

func TestSubscribersNotifiedOnEveryMutation(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	notifications := 0
	var last []LineItem
	unsubscribe := store.Subscribe(func(items []LineItem) {
		notifications++
		last = items
	})

	store.AddToCart(ProductRef{ID: "p1"})
	assert.Equal(t, 1, notifications)
	require.Len(t, last, 1)

	// No-op mutations still notify; the store does not diff
	store.RemoveFromCart("missing")
	assert.Equal(t, 2, notifications)

	store.ClearCart()
	assert.Equal(t, 3, notifications)
	assert.Empty(t, last)

	unsubscribe()
	store.AddToCart(ProductRef{ID: "p2"})
	assert.Equal(t, 3, notifications)
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	store := newTestStore(t, &failingSlot{})

	store.AddToCart(ProductRef{ID: "p1"})
	store.AddToCart(ProductRef{ID: "p1"})

	// The write failure never surfaces to the caller; memory stays
	// authoritative for the session
	assert.Equal(t, 2, store.GetCartItemsCount())
}

func TestIdentifierlessProductsCollapse(t *testing.T) {
	store := newTestStore(t, NewMemorySlot(nil))

	store.AddToCart(ProductRef{Name: "No ID"})
	store.AddToCart(ProductRef{Name: "Also No ID"})

	// Known degenerate case: products without identifiers share the ""
	// key and collapse into one line
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
