// internal/pkg/validation/validation.go
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// Form validation shared by the enquiry flow and the admin panel.

const maxPrice = 10000000 * 100 // ₹1,00,00,000 in paise

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result collects validation errors for a form
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateEmail reports whether the string looks like an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateName reports whether a contact name has a sensible length
func ValidateName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= 2 && len(trimmed) <= 100
}

// ValidateMessage reports whether an enquiry message has a sensible length
func ValidateMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	return len(trimmed) >= 10 && len(trimmed) <= 2000
}

// ValidatePrice reports whether a price in paise is within bounds
func ValidatePrice(price int64) bool {
	return price >= 0 && price <= maxPrice
}

// ValidateURL accepts absolute URLs and site-relative paths
func ValidateURL(raw string) bool {
	if strings.HasPrefix(raw, "/") {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// SanitizeInput trims whitespace and strips angle brackets
func SanitizeInput(input string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(input))
}

// ValidateProductForm validates admin product form data
func ValidateProductForm(name, description, careInstructions string, price int64, collectionID string, materials []string) Result {
	var errors []string

	if len(strings.TrimSpace(name)) < 2 {
		errors = append(errors, "Product name must be at least 2 characters")
	}

	if len(strings.TrimSpace(description)) < 10 {
		errors = append(errors, "Description must be at least 10 characters")
	}

	if len(strings.TrimSpace(careInstructions)) < 5 {
		errors = append(errors, "Care instructions must be at least 5 characters")
	}

	if price == 0 || !ValidatePrice(price) {
		errors = append(errors, "Price must be between ₹0 and ₹1,00,00,000")
	}

	if collectionID == "" {
		errors = append(errors, "Please select a collection")
	}

	hasMaterial := false
	for _, m := range materials {
		if strings.TrimSpace(m) != "" {
			hasMaterial = true
			break
		}
	}
	if !hasMaterial {
		errors = append(errors, "Please add at least one material")
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// ValidateCollectionForm validates admin collection form data
func ValidateCollectionForm(name, description, heroImage string) Result {
	var errors []string

	if len(strings.TrimSpace(name)) < 2 {
		errors = append(errors, "Collection name must be at least 2 characters")
	}

	if len(strings.TrimSpace(description)) < 10 {
		errors = append(errors, "Description must be at least 10 characters")
	}

	if heroImage == "" || !ValidateURL(heroImage) {
		errors = append(errors, "Please provide a valid hero image URL")
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}

// ValidateEnquiryForm validates the contact/enquiry form
func ValidateEnquiryForm(name, email, message string) Result {
	var errors []string

	if !ValidateName(name) {
		errors = append(errors, "Name must be between 2 and 100 characters")
	}

	if !ValidateEmail(email) {
		errors = append(errors, "Please provide a valid email address")
	}

	if !ValidateMessage(message) {
		errors = append(errors, "Message must be between 10 and 2000 characters")
	}

	return Result{Valid: len(errors) == 0, Errors: errors}
}
