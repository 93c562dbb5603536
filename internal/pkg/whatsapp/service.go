// internal/pkg/whatsapp/service.go
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/amanat-silver/storefront-backend/internal/config"
)

// Service sends messages through the WhatsApp Cloud API. The storefront
// uses it to relay contact form submissions and checkout summaries to the
// business number.
type Service struct {
	config *config.Config
	client *http.Client
}

// NewService creates a new WhatsApp service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ContactMessage is the contact form data relayed to the business
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// messageRequest is the Cloud API text message payload
type messageRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             messageText `json:"text"`
}

type messageText struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// messageResponse is the Cloud API response envelope
type messageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// IsConfigured reports whether credentials are present; without them the
// relay is skipped and submissions are only stored locally.
func (s *Service) IsConfigured() bool {
	return s.config.WhatsApp.PhoneNumberID != "" &&
		s.config.WhatsApp.AccessToken != "" &&
		s.config.WhatsApp.BusinessNumber != ""
}

// SendContactMessage relays a contact form submission to the business
// number and returns the provider message ID.
func (s *Service) SendContactMessage(ctx context.Context, data *ContactMessage) (string, error) {
	body := fmt.Sprintf("*New Contact Form Submission*\n\n"+
		"*Name:* %s\n"+
		"*Email:* %s\n\n"+
		"*Message:*\n%s\n\n"+
		"_Sent via Amanat Silver Website_",
		data.Name, data.Email, data.Message)

	return s.SendText(ctx, body)
}

// SendText sends a plain text message to the configured business number.
func (s *Service) SendText(ctx context.Context, body string) (string, error) {
	if !s.IsConfigured() {
		return "", fmt.Errorf("whatsapp service is not configured")
	}

	payload := messageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               normalizeNumber(s.config.WhatsApp.BusinessNumber),
		Type:             "text",
		Text: messageText{
			PreviewURL: false,
			Body:       body,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal WhatsApp request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages",
		s.config.WhatsApp.APIBaseURL,
		s.config.WhatsApp.APIVersion,
		s.config.WhatsApp.PhoneNumberID,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create WhatsApp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.config.WhatsApp.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	var result messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode WhatsApp response: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("WhatsApp API error %d: %s", result.Error.Code, result.Error.Message)
	}

	if len(result.Messages) == 0 {
		return "", fmt.Errorf("no message ID received from WhatsApp API")
	}

	return result.Messages[0].ID, nil
}

// normalizeNumber strips formatting and prefixes the India country code to
// bare 10-digit numbers.
func normalizeNumber(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) == 10 {
		normalized = "91" + normalized
	}
	return normalized
}
