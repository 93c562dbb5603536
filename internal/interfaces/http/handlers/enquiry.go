// internal/interfaces/http/handlers/enquiry.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/enquiry"
)

// EnquiryHandler handles contact form endpoints
type EnquiryHandler struct {
	enquiryService *enquiry.Service
	config         *config.Config
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService *enquiry.Service, cfg *config.Config) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryService: enquiryService,
		config:         cfg,
	}
}

// Submit handles POST /enquiry
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req enquiry.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	// One enquiry per client IP per cooldown window
	result, err := h.enquiryService.Submit(c.Request.Context(), c.ClientIP(), &req)
	if errors.Is(err, enquiry.ErrTooSoon) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Please wait a moment before sending another enquiry",
		})
		return
	} else if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Enquiry submitted successfully",
		"data":    result,
	})
}

// List handles GET /admin/enquiries
func (h *EnquiryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	enquiries, err := h.enquiryService.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve enquiries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Enquiries retrieved successfully",
		"data":    enquiries,
	})
}
