// internal/domain/cart/entity.go
package cart

// ProductRef is the product snapshot stored against a line item. The store
// treats it as opaque except for its identifiers: catalog records imported
// from the old CMS carry a Mongo-style "_id", records created through the
// admin panel carry "id". Either one may be set; both may be set.
type ProductRef struct {
	LegacyID     string   `json:"_id,omitempty"`
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	Slug         string   `json:"slug,omitempty"`
	CollectionID string   `json:"collectionId,omitempty"`
	Price        int64    `json:"price,omitempty"` // Price in paise at time of adding
	Images       []string `json:"images,omitempty"`
}

// ResolveID returns the identifier the cart keys line items by, preferring
// the legacy CMS id over the primary id. Two product snapshots describe the
// same line item when their resolved identifiers match, regardless of which
// field carried the value.
//
// A product with neither field set resolves to "". All such products would
// collapse into a single line item; callers must guarantee non-empty
// identifiers.
func ResolveID(p ProductRef) string {
	if p.LegacyID != "" {
		return p.LegacyID
	}
	return p.ID
}

// LineItem represents a (product, quantity) pair in the cart.
// Quantity is always >= 1; at most one line item exists per resolved
// product identifier.
type LineItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
}
