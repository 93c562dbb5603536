// internal/domain/checkout/entity.go
package checkout

import (
	"time"

	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
)

// Order represents a submitted bespoke order request. Every piece is
// crafted to order; the business follows up to finalize pricing and
// completion time, so no payment is captured here.
type Order struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	Reference    string         `gorm:"uniqueIndex;not null;size:36" json:"reference"`
	Name         string         `gorm:"not null;size:100" json:"name"`
	Email        string         `gorm:"not null;size:255" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone"`
	AddressLine1 string         `gorm:"size:255" json:"address_line1"`
	AddressLine2 string         `gorm:"size:255" json:"address_line2"`
	City         string         `gorm:"size:100" json:"city"`
	State        string         `gorm:"size:100" json:"state"`
	PostalCode   string         `gorm:"size:20" json:"postal_code"`
	Notes        string         `gorm:"type:text" json:"notes"`
	ItemsJSON    string         `gorm:"not null;type:text" json:"-"` // Cart snapshot at submission
	Units        int            `gorm:"not null" json:"units"`
	Subtotal     int64          `gorm:"not null" json:"subtotal"` // Indicative, in paise
	RelayID      string         `gorm:"size:100" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// OrderSummary is the pricing view over the cart's line items. The cart
// store itself has no pricing knowledge; currency math lives here.
type OrderSummary struct {
	Lines    int             `json:"lines"`
	Units    int             `json:"units"`
	Subtotal int64           `json:"subtotal"` // In paise
	Items    []cart.LineItem `json:"items"`
}

// Summarize computes the order summary over exposed line items
func Summarize(items []cart.LineItem) OrderSummary {
	summary := OrderSummary{
		Lines: len(items),
		Items: items,
	}
	for _, item := range items {
		summary.Units += item.Quantity
		summary.Subtotal += item.Product.Price * int64(item.Quantity)
	}
	return summary
}
