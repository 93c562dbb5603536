// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
	"github.com/amanat-silver/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles order request endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	carts           *cart.Manager
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, carts *cart.Manager, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		carts:           carts,
		config:          cfg,
	}
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	cartID, err := c.Cookie("cart_id")
	if err != nil || cartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	var req checkout.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	order, err := h.checkoutService.Submit(c.Request.Context(), h.carts.Store(cartID), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order request submitted successfully",
		"data":    order,
	})
}

// ListOrders handles GET /admin/orders
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := h.checkoutService.ListOrders(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}
