// internal/pkg/whatsapp/service_test.go
package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanat-silver/storefront-backend/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		WhatsApp: config.WhatsAppConfig{
			APIBaseURL:     baseURL,
			APIVersion:     "v18.0",
			PhoneNumberID:  "12345",
			AccessToken:    "test-token",
			BusinessNumber: "+91 98765-43210",
		},
	}
}

func TestSendContactMessage(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"messaging_product": "whatsapp",
			"messages":          []map[string]string{{"id": "wamid.test123"}},
		})
	}))
	defer server.Close()

	service := NewService(testConfig(server.URL))

	messageID, err := service.SendContactMessage(context.Background(), &ContactMessage{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Interested in the Moonlight Pendant.",
	})
	require.NoError(t, err)
	assert.Equal(t, "wamid.test123", messageID)

	assert.Equal(t, "whatsapp", captured["messaging_product"])
	assert.Equal(t, "919876543210", captured["to"])
	body := captured["text"].(map[string]interface{})["body"].(string)
	assert.Contains(t, body, "Asha")
	assert.Contains(t, body, "asha@example.com")
}

func TestSendTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": "Invalid OAuth access token",
				"type":    "OAuthException",
				"code":    190,
			},
		})
	}))
	defer server.Close()

	service := NewService(testConfig(server.URL))

	_, err := service.SendText(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestSendTextUnconfigured(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.WhatsApp.AccessToken = ""
	service := NewService(cfg)

	assert.False(t, service.IsConfigured())
	_, err := service.SendText(context.Background(), "hello")
	assert.Error(t, err)
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "919876543210", normalizeNumber("+91 98765-43210"))
	assert.Equal(t, "919876543210", normalizeNumber("9876543210"))
	assert.Equal(t, "14155552671", normalizeNumber("+1 (415) 555-2671"))
}
