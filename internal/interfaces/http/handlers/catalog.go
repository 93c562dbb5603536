// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles collection, product and homepage endpoints
type CatalogHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(db *gorm.DB, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalog.NewService(db, cfg),
		config:         cfg,
	}
}

// GetProducts handles GET /products?collection_id=...
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogService.GetProducts(c.Query("collection_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProductBySlug handles GET /products/slug/:slug
func (h *CatalogHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.catalogService.GetFeaturedProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve featured products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data":    products,
	})
}

// GetCollections handles GET /collections
func (h *CatalogHandler) GetCollections(c *gin.Context) {
	collections, err := h.catalogService.GetCollections()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve collections",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collections retrieved successfully",
		"data":    collections,
	})
}

// GetCollectionBySlug handles GET /collections/slug/:slug
func (h *CatalogHandler) GetCollectionBySlug(c *gin.Context) {
	collection, err := h.catalogService.GetCollectionBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Collection not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collection retrieved successfully",
		"data":    collection,
	})
}

// GetHomepage handles GET /homepage
func (h *CatalogHandler) GetHomepage(c *gin.Context) {
	content, err := h.catalogService.GetHomepage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve homepage content",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Homepage content retrieved successfully",
		"data":    content,
	})
}

// Admin endpoints

// CreateProduct handles POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req catalog.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req catalog.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Param("id"), &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// CreateCollection handles POST /admin/collections
func (h *CatalogHandler) CreateCollection(c *gin.Context) {
	var req catalog.CollectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	collection, err := h.catalogService.CreateCollection(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Collection created successfully",
		"data":    collection,
	})
}

// UpdateCollection handles PUT /admin/collections/:id
func (h *CatalogHandler) UpdateCollection(c *gin.Context) {
	var req catalog.CollectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	collection, err := h.catalogService.UpdateCollection(c.Param("id"), &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collection updated successfully",
		"data":    collection,
	})
}

// DeleteCollection handles DELETE /admin/collections/:id
func (h *CatalogHandler) DeleteCollection(c *gin.Context) {
	if err := h.catalogService.DeleteCollection(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collection deleted successfully",
	})
}

// UpdateHomepage handles PUT /admin/homepage
func (h *CatalogHandler) UpdateHomepage(c *gin.Context) {
	var req catalog.HomepageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	content, err := h.catalogService.UpdateHomepage(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Homepage content updated successfully",
		"data":    content,
	})
}
