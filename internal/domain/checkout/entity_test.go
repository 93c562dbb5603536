// internal/domain/checkout/entity_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
)

func TestSummarize(t *testing.T) {
	items := []cart.LineItem{
		{Product: cart.ProductRef{ID: "p1", Name: "Luna Crescent Ring", Price: 450000}, Quantity: 2},
		{Product: cart.ProductRef{ID: "p2", Name: "Moonlight Pendant", Price: 380000}, Quantity: 1},
	}

	summary := Summarize(items)

	assert.Equal(t, 2, summary.Lines)
	assert.Equal(t, 3, summary.Units)
	assert.Equal(t, int64(2*450000+380000), summary.Subtotal)
	assert.Equal(t, items, summary.Items)
}

func TestSummarizeEmptyCart(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Lines)
	assert.Equal(t, 0, summary.Units)
	assert.Equal(t, int64(0), summary.Subtotal)
}
