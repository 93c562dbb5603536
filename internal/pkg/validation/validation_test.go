// internal/pkg/validation/validation_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("customer@example.com"))
	assert.True(t, ValidateEmail("first.last@shop.co.in"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@domain"))
	assert.False(t, ValidateEmail("spaces in@example.com"))
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Asha"))
	assert.True(t, ValidateName("  Jo  ")) // trimmed before checking
	assert.False(t, ValidateName("A"))
	assert.False(t, ValidateName(""))
}

func TestValidateMessage(t *testing.T) {
	assert.True(t, ValidateMessage("I would like to know more about this ring."))
	assert.False(t, ValidateMessage("too short"))
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://cdn.amanatsilver.in/artifact-1.webp"))
	assert.True(t, ValidateURL("/artifact-1.webp"))
	assert.False(t, ValidateURL("not a url"))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeInput("  <script>alert(1)</script> "))
}

func TestValidateProductForm(t *testing.T) {
	result := ValidateProductForm("Luna Crescent Ring", "A hand-hammered sterling silver ring.", "Polish gently.", 450000, "c1", []string{"925 Sterling Silver"})
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	result = ValidateProductForm("L", "short", "", 0, "", []string{" "})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 6)
}

func TestValidateCollectionForm(t *testing.T) {
	result := ValidateCollectionForm("Lumina", "Capturing the ethereal glow of moonlight.", "/artifact-1.webp")
	assert.True(t, result.Valid)

	result = ValidateCollectionForm("L", "short", "")
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
}

func TestValidateEnquiryForm(t *testing.T) {
	result := ValidateEnquiryForm("Asha", "asha@example.com", "I am interested in the Moonlight Pendant.")
	assert.True(t, result.Valid)

	result = ValidateEnquiryForm("", "bad", "hi")
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
}
