// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a jewelry piece. Records imported from the old CMS
// keep their Mongo ObjectID in LegacyID ("_id" on the wire); records
// created through the admin panel get a UUID primary id. The storefront
// cart keys line items on whichever identifier is present.
type Product struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	LegacyID         string         `gorm:"index;size:24" json:"_id,omitempty"`
	Name             string         `gorm:"not null;size:255" json:"name"`
	Slug             string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	CollectionID     string         `gorm:"not null;index;size:36" json:"collectionId"`
	Description      string         `gorm:"type:text" json:"description"`
	Materials        string         `gorm:"size:500" json:"-"` // Comma-separated
	CareInstructions string         `gorm:"type:text" json:"careInstructions"`
	Price            int64          `gorm:"not null;default:0" json:"price"` // Price in paise
	Featured         bool           `gorm:"default:false" json:"featured"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Collection Collection     `gorm:"foreignKey:CollectionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Images     []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// Collection represents a curated group of products
type Collection struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	LegacyID    string         `gorm:"index;size:24" json:"_id,omitempty"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	HeroImage   string         `gorm:"size:500" json:"heroImage"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CollectionID" json:"-"`
}

// ProductImage represents product images
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID string    `gorm:"not null;index;size:36" json:"product_id"`
	URL       string    `gorm:"not null;size:500" json:"url"`
	AltText   string    `gorm:"size:255" json:"alt_text"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HomepageContent is the single row of editable homepage copy
type HomepageContent struct {
	ID                       uint      `gorm:"primaryKey" json:"-"`
	HeroTitle                string    `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle             string    `gorm:"size:255" json:"heroSubtitle"`
	HeroImage                string    `gorm:"size:500" json:"heroImage"`
	BrandStoryShort          string    `gorm:"type:text" json:"brandStoryShort"`
	CraftsmanshipTitle       string    `gorm:"size:255" json:"craftsmanshipTitle"`
	CraftsmanshipDescription string    `gorm:"type:text" json:"craftsmanshipDescription"`
	CraftsmanshipImage       string    `gorm:"size:500" json:"craftsmanshipImage"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TableName overrides
func (Product) TableName() string         { return "products" }
func (Collection) TableName() string      { return "collections" }
func (ProductImage) TableName() string    { return "product_images" }
func (HomepageContent) TableName() string { return "homepage_content" }

// BeforeCreate assigns a UUID to admin-created products
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// BeforeCreate assigns a UUID to admin-created collections
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// MaterialList splits the stored comma-separated materials
func (p *Product) MaterialList() []string {
	if p.Materials == "" {
		return []string{}
	}
	parts := strings.Split(p.Materials, ",")
	materials := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			materials = append(materials, trimmed)
		}
	}
	return materials
}

// ImageURLs returns image URLs in display order
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
