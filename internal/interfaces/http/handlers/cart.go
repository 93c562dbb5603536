// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
	"github.com/amanat-silver/storefront-backend/internal/pkg/pdf"
)

// CartHandler handles cart endpoints. Carts belong to anonymous browser
// sessions identified by a cookie; no authentication is involved.
type CartHandler struct {
	carts      *cart.Manager
	pdfService *pdf.Service
	config     *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, cfg *config.Config) *CartHandler {
	return &CartHandler{
		carts:      carts,
		pdfService: pdf.NewService(cfg),
		config:     cfg,
	}
}

// cartResponse is the cart payload shared by all cart endpoints
type cartResponse struct {
	Items []cart.LineItem `json:"items"`
	Count int             `json:"count"`
	Total int             `json:"total"`
}

func newCartResponse(store *cart.Store) cartResponse {
	return cartResponse{
		Items: store.Items(),
		Count: store.GetCartItemsCount(),
		Total: store.GetCartTotal(),
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.store(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartResponse(store),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	store := h.store(c)

	var product cart.ProductRef
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store.AddToCart(product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    newCartResponse(store),
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	store := h.store(c)
	productID := c.Param("id")

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store.UpdateQuantity(productID, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    newCartResponse(store),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	store := h.store(c)
	store.RemoveFromCart(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    newCartResponse(store),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.store(c)
	store.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store := h.store(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.GetCartItemsCount(),
		},
	})
}

// GetCartQuote handles GET /cart/quote - renders the cart as a PDF quote
func (h *CartHandler) GetCartQuote(c *gin.Context) {
	store := h.store(c)

	items := store.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
		return
	}

	buf, err := h.pdfService.GenerateCartQuote(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate quote",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="amanat-silver-quote.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// store resolves the cart store for the current browser session, minting a
// cart id cookie on first contact
func (h *CartHandler) store(c *gin.Context) *cart.Store {
	cartID, err := c.Cookie("cart_id")
	if err != nil || cartID == "" {
		cartID = uuid.New().String()
		maxAge := int(h.config.Cart.TTL.Seconds())
		c.SetCookie("cart_id", cartID, maxAge, "/", "", false, true)
	}

	return h.carts.Store(cartID)
}
