// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/pkg/validation"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductResponse represents a product in the shape the storefront expects:
// materials and images flattened to string lists
type ProductResponse struct {
	ID               string   `json:"id"`
	LegacyID         string   `json:"_id,omitempty"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	CollectionID     string   `json:"collectionId"`
	Description      string   `json:"description"`
	Materials        []string `json:"materials"`
	CareInstructions string   `json:"careInstructions"`
	Price            int64    `json:"price"`
	Featured         bool     `json:"featured"`
	Images           []string `json:"images"`
}

// ProductCreateRequest represents product creation data from the admin panel
type ProductCreateRequest struct {
	Name             string   `json:"name" binding:"required"`
	CollectionID     string   `json:"collectionId" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Materials        []string `json:"materials" binding:"required"`
	CareInstructions string   `json:"careInstructions" binding:"required"`
	Price            int64    `json:"price" binding:"required"`
	Featured         bool     `json:"featured"`
	Images           []string `json:"images"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name             *string  `json:"name"`
	CollectionID     *string  `json:"collectionId"`
	Description      *string  `json:"description"`
	Materials        []string `json:"materials"`
	CareInstructions *string  `json:"careInstructions"`
	Price            *int64   `json:"price"`
	Featured         *bool    `json:"featured"`
	Images           []string `json:"images"`
}

// CollectionCreateRequest represents collection creation data
type CollectionCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	HeroImage   string `json:"heroImage" binding:"required"`
}

// CollectionUpdateRequest represents collection update data
type CollectionUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	HeroImage   *string `json:"heroImage"`
}

// HomepageUpdateRequest represents homepage content update data
type HomepageUpdateRequest struct {
	HeroTitle                *string `json:"heroTitle"`
	HeroSubtitle             *string `json:"heroSubtitle"`
	HeroImage                *string `json:"heroImage"`
	BrandStoryShort          *string `json:"brandStoryShort"`
	CraftsmanshipTitle       *string `json:"craftsmanshipTitle"`
	CraftsmanshipDescription *string `json:"craftsmanshipDescription"`
	CraftsmanshipImage       *string `json:"craftsmanshipImage"`
}

// GetProducts retrieves products, optionally filtered by collection
func (s *Service) GetProducts(collectionID string) ([]ProductResponse, error) {
	var products []Product

	query := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Order("created_at ASC")

	if collectionID != "" {
		query = query.Where("collection_id = ?", collectionID)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return toProductResponses(products), nil
}

// GetProductBySlug retrieves a single product by its slug
func (s *Service) GetProductBySlug(slug string) (*ProductResponse, error) {
	var product Product

	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Where("slug = ?", slug).First(&product).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("product not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// GetFeaturedProducts returns at most one featured product per collection,
// the set shown in the homepage signature grid
func (s *Service) GetFeaturedProducts() ([]ProductResponse, error) {
	var products []Product

	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	}).Where("featured = ?", true).Order("created_at ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured products: %w", err)
	}

	seen := make(map[string]bool)
	featured := make([]Product, 0, len(products))
	for _, product := range products {
		if seen[product.CollectionID] {
			continue
		}
		seen[product.CollectionID] = true
		featured = append(featured, product)
	}

	return toProductResponses(featured), nil
}

// GetCollections retrieves all collections
func (s *Service) GetCollections() ([]Collection, error) {
	var collections []Collection
	if err := s.db.Order("created_at ASC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve collections: %w", err)
	}
	return collections, nil
}

// GetCollectionBySlug retrieves a single collection by its slug
func (s *Service) GetCollectionBySlug(slug string) (*Collection, error) {
	var collection Collection
	err := s.db.Where("slug = ?", slug).First(&collection).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("collection not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve collection: %w", err)
	}
	return &collection, nil
}

// GetHomepage retrieves the homepage content row
func (s *Service) GetHomepage() (*HomepageContent, error) {
	var content HomepageContent
	if err := s.db.First(&content).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve homepage content: %w", err)
	}
	return &content, nil
}

// UpdateHomepage updates the homepage content row
func (s *Service) UpdateHomepage(req *HomepageUpdateRequest) (*HomepageContent, error) {
	content, err := s.GetHomepage()
	if err != nil {
		return nil, err
	}

	if req.HeroTitle != nil {
		content.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		content.HeroSubtitle = *req.HeroSubtitle
	}
	if req.HeroImage != nil {
		content.HeroImage = *req.HeroImage
	}
	if req.BrandStoryShort != nil {
		content.BrandStoryShort = *req.BrandStoryShort
	}
	if req.CraftsmanshipTitle != nil {
		content.CraftsmanshipTitle = *req.CraftsmanshipTitle
	}
	if req.CraftsmanshipDescription != nil {
		content.CraftsmanshipDescription = *req.CraftsmanshipDescription
	}
	if req.CraftsmanshipImage != nil {
		content.CraftsmanshipImage = *req.CraftsmanshipImage
	}

	if err := s.db.Save(content).Error; err != nil {
		return nil, fmt.Errorf("failed to update homepage content: %w", err)
	}

	return content, nil
}

// CreateProduct creates a new product from the admin panel
func (s *Service) CreateProduct(req *ProductCreateRequest) (*ProductResponse, error) {
	if result := validation.ValidateProductForm(req.Name, req.Description, req.CareInstructions, req.Price, req.CollectionID, req.Materials); !result.Valid {
		return nil, fmt.Errorf("invalid product data: %s", strings.Join(result.Errors, "; "))
	}

	// Collection must exist
	var collection Collection
	if err := s.db.Where("id = ?", req.CollectionID).First(&collection).Error; err != nil {
		return nil, fmt.Errorf("collection %s not found", req.CollectionID)
	}

	product := Product{
		Name:             req.Name,
		Slug:             s.generateSlug(req.Name, &Product{}),
		CollectionID:     req.CollectionID,
		Description:      req.Description,
		Materials:        strings.Join(req.Materials, ","),
		CareInstructions: req.CareInstructions,
		Price:            req.Price,
		Featured:         req.Featured,
	}
	for i, url := range req.Images {
		product.Images = append(product.Images, ProductImage{URL: url, SortOrder: i})
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id string, req *ProductUpdateRequest) (*ProductResponse, error) {
	var product Product
	err := s.db.Preload("Images").Where("id = ? OR legacy_id = ?", id, id).First(&product).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("product not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	if req.Name != nil && *req.Name != product.Name {
		product.Name = *req.Name
		product.Slug = s.generateSlug(*req.Name, &Product{})
	}
	if req.CollectionID != nil {
		product.CollectionID = *req.CollectionID
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Materials != nil {
		product.Materials = strings.Join(req.Materials, ",")
	}
	if req.CareInstructions != nil {
		product.CareInstructions = *req.CareInstructions
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if result := validation.ValidateProductForm(product.Name, product.Description, product.CareInstructions, product.Price, product.CollectionID, product.MaterialList()); !result.Valid {
		return nil, fmt.Errorf("invalid product data: %s", strings.Join(result.Errors, "; "))
	}

	if req.Images != nil {
		if err := s.db.Where("product_id = ?", product.ID).Delete(&ProductImage{}).Error; err != nil {
			return nil, fmt.Errorf("failed to replace product images: %w", err)
		}
		product.Images = nil
		for i, url := range req.Images {
			product.Images = append(product.Images, ProductImage{ProductID: product.ID, URL: url, SortOrder: i})
		}
	}

	if err := s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id string) error {
	result := s.db.Where("id = ? OR legacy_id = ?", id, id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// CreateCollection creates a new collection from the admin panel
func (s *Service) CreateCollection(req *CollectionCreateRequest) (*Collection, error) {
	if result := validation.ValidateCollectionForm(req.Name, req.Description, req.HeroImage); !result.Valid {
		return nil, fmt.Errorf("invalid collection data: %s", strings.Join(result.Errors, "; "))
	}

	collection := Collection{
		Name:        req.Name,
		Slug:        s.generateSlug(req.Name, &Collection{}),
		Description: req.Description,
		HeroImage:   req.HeroImage,
	}

	if err := s.db.Create(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return &collection, nil
}

// UpdateCollection updates an existing collection
func (s *Service) UpdateCollection(id string, req *CollectionUpdateRequest) (*Collection, error) {
	var collection Collection
	err := s.db.Where("id = ? OR legacy_id = ?", id, id).First(&collection).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("collection not found")
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve collection: %w", err)
	}

	if req.Name != nil && *req.Name != collection.Name {
		collection.Name = *req.Name
		collection.Slug = s.generateSlug(*req.Name, &Collection{})
	}
	if req.Description != nil {
		collection.Description = *req.Description
	}
	if req.HeroImage != nil {
		collection.HeroImage = *req.HeroImage
	}

	if result := validation.ValidateCollectionForm(collection.Name, collection.Description, collection.HeroImage); !result.Valid {
		return nil, fmt.Errorf("invalid collection data: %s", strings.Join(result.Errors, "; "))
	}

	if err := s.db.Save(&collection).Error; err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return &collection, nil
}

// DeleteCollection deletes a collection with no remaining products
func (s *Service) DeleteCollection(id string) error {
	var count int64
	if err := s.db.Model(&Product{}).Where("collection_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check collection products: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("collection still has %d products", count)
	}

	result := s.db.Where("id = ? OR legacy_id = ?", id, id).Delete(&Collection{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete collection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("collection not found")
	}
	return nil
}

// generateSlug generates a unique URL-friendly slug from a name
func (s *Service) generateSlug(name string, model interface{}) string {
	base := slugify(name)

	slug := base
	for i := 2; ; i++ {
		var count int64
		s.db.Model(model).Unscoped().Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func toProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		LegacyID:         p.LegacyID,
		Name:             p.Name,
		Slug:             p.Slug,
		CollectionID:     p.CollectionID,
		Description:      p.Description,
		Materials:        p.MaterialList(),
		CareInstructions: p.CareInstructions,
		Price:            p.Price,
		Featured:         p.Featured,
		Images:           p.ImageURLs(),
	}
}

func toProductResponses(products []Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}
