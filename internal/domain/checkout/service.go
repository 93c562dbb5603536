// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
	"github.com/amanat-silver/storefront-backend/internal/pkg/validation"
	"github.com/amanat-silver/storefront-backend/internal/pkg/whatsapp"
)

// Service handles checkout submissions. It reads the cart through the
// store's public contract, owns the pricing summary, and clears the cart
// only after its own submission flow has completed.
type Service struct {
	db       *gorm.DB
	whatsapp *whatsapp.Service
	config   *config.Config
	logger   *logrus.Logger
}

// NewService creates a new checkout service
func NewService(db *gorm.DB, wa *whatsapp.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:       db,
		whatsapp: wa,
		config:   cfg,
		logger:   logger,
	}
}

// SubmitRequest represents the checkout form
type SubmitRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Notes        string `json:"notes"`
}

// Submit records an order request for the current cart contents, relays it
// to the business over WhatsApp, and clears the cart.
func (s *Service) Submit(ctx context.Context, store *cart.Store, req *SubmitRequest) (*Order, error) {
	name := validation.SanitizeInput(req.Name)
	email := validation.SanitizeInput(req.Email)

	if !validation.ValidateName(name) {
		return nil, fmt.Errorf("name must be between 2 and 100 characters")
	}
	if !validation.ValidateEmail(email) {
		return nil, fmt.Errorf("a valid email address is required")
	}

	items := store.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	summary := Summarize(items)

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize cart items: %w", err)
	}

	order := Order{
		Reference:    uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        validation.SanitizeInput(req.Phone),
		AddressLine1: validation.SanitizeInput(req.AddressLine1),
		AddressLine2: validation.SanitizeInput(req.AddressLine2),
		City:         validation.SanitizeInput(req.City),
		State:        validation.SanitizeInput(req.State),
		PostalCode:   validation.SanitizeInput(req.PostalCode),
		Notes:        validation.SanitizeInput(req.Notes),
		ItemsJSON:    string(itemsJSON),
		Units:        summary.Units,
		Subtotal:     summary.Subtotal,
	}

	if s.whatsapp.IsConfigured() {
		relayID, err := s.whatsapp.SendText(ctx, s.formatOrderMessage(&order, summary))
		if err != nil {
			s.logger.WithError(err).Warn("Failed to relay order over WhatsApp")
		} else {
			order.RelayID = relayID
		}
	}

	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	// Submission is complete; now empty the cart
	store.ClearCart()

	return &order, nil
}

// ListOrders returns submitted order requests for the admin panel
func (s *Service) ListOrders(limit int) ([]Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var orders []Order
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// formatOrderMessage builds the WhatsApp order notification
func (s *Service) formatOrderMessage(order *Order, summary OrderSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order Request* %s\n\n", order.Reference)
	fmt.Fprintf(&b, "*Name:* %s\n*Email:* %s\n", order.Name, order.Email)
	if order.Phone != "" {
		fmt.Fprintf(&b, "*Phone:* %s\n", order.Phone)
	}
	fmt.Fprintf(&b, "*Ship to:* %s, %s %s\n\n", order.AddressLine1, order.City, order.PostalCode)

	fmt.Fprintf(&b, "*Items (%d units):*\n", summary.Units)
	for _, item := range summary.Items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity, item.Product.Name)
	}
	fmt.Fprintf(&b, "\n*Indicative subtotal:* ₹%.2f\n", float64(summary.Subtotal)/100)
	b.WriteString("\n_Sent via Amanat Silver Website_")

	return b.String()
}
