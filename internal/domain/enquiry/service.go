// internal/domain/enquiry/service.go
package enquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/pkg/validation"
	"github.com/amanat-silver/storefront-backend/internal/pkg/whatsapp"
)

// ErrTooSoon is returned when a client submits again within the cooldown
// window.
var ErrTooSoon = fmt.Errorf("enquiry: submission cooldown active")

// Service handles contact/enquiry submissions
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	whatsapp    *whatsapp.Service
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new enquiry service
func NewService(db *gorm.DB, redisClient *redis.Client, wa *whatsapp.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		whatsapp:    wa,
		config:      cfg,
		logger:      logger,
	}
}

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Message   string  `json:"message" binding:"required"`
	ProductID *string `json:"productId"`
}

// Submit validates and stores an enquiry, then relays it to the business
// over WhatsApp when the relay is configured. Relay failure is logged but
// never fails the submission; the stored enquiry is the source of truth.
func (s *Service) Submit(ctx context.Context, clientKey string, req *SubmitRequest) (*Enquiry, error) {
	name := validation.SanitizeInput(req.Name)
	email := validation.SanitizeInput(req.Email)
	message := validation.SanitizeInput(req.Message)

	if result := validation.ValidateEnquiryForm(name, email, message); !result.Valid {
		return nil, fmt.Errorf("invalid enquiry: %s", strings.Join(result.Errors, "; "))
	}

	if err := s.checkCooldown(ctx, clientKey); err != nil {
		return nil, err
	}

	enq := Enquiry{
		Name:      name,
		Email:     email,
		Message:   message,
		ProductID: req.ProductID,
	}

	if s.whatsapp.IsConfigured() {
		relayID, err := s.whatsapp.SendContactMessage(ctx, &whatsapp.ContactMessage{
			Name:    name,
			Email:   email,
			Message: message,
		})
		if err != nil {
			s.logger.WithError(err).Warn("Failed to relay enquiry over WhatsApp")
		} else {
			enq.RelayID = relayID
		}
	}

	if err := s.db.Create(&enq).Error; err != nil {
		return nil, fmt.Errorf("failed to store enquiry: %w", err)
	}

	return &enq, nil
}

// List returns enquiries for the admin panel, newest first
func (s *Service) List(limit int) ([]Enquiry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var enquiries []Enquiry
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&enquiries).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve enquiries: %w", err)
	}
	return enquiries, nil
}

// checkCooldown enforces one submission per cooldown window per client.
// A Redis outage fails open: a lost rate limit should not block enquiries.
func (s *Service) checkCooldown(ctx context.Context, clientKey string) error {
	key := fmt.Sprintf("enquiry:last:%s", clientKey)

	set, err := s.redisClient.SetNX(ctx, key, time.Now().Unix(), s.config.Security.EnquiryCooldown).Result()
	if err != nil {
		s.logger.WithError(err).Warn("Enquiry cooldown check failed, allowing submission")
		return nil
	}
	if !set {
		return ErrTooSoon
	}
	return nil
}
