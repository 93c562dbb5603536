// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amanat-silver/storefront-backend/internal/domain/catalog"
	"github.com/amanat-silver/storefront-backend/internal/domain/checkout"
	"github.com/amanat-silver/storefront-backend/internal/domain/enquiry"
	"github.com/amanat-silver/storefront-backend/internal/domain/user"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&user.User{},

		&catalog.Collection{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&catalog.HomepageContent{},

		&enquiry.Enquiry{},

		&checkout.Order{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes not covered by struct tags
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products (featured) WHERE featured = true",
		"CREATE INDEX IF NOT EXISTS idx_enquiries_created_at ON enquiries (created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData seeds the database with initial development data
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return err
	}
	if err := m.seedHomepageContent(); err != nil {
		return err
	}
	if err := m.seedCatalog(); err != nil {
		return err
	}

	log.Println("✅ Initial data seeded")
	return nil
}

func (m *Migration) seedAdminUser() error {
	var count int64
	m.db.Model(&user.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := user.User{
		Email:    "admin@amanatsilver.in",
		Password: string(hash),
		Name:     "Store Admin",
		IsActive: true,
		IsAdmin:  true,
	}

	if err := m.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Println("Seeded admin user admin@amanatsilver.in (change the password)")
	return nil
}

func (m *Migration) seedHomepageContent() error {
	var count int64
	m.db.Model(&catalog.HomepageContent{}).Count(&count)
	if count > 0 {
		return nil
	}

	content := catalog.HomepageContent{
		HeroTitle:                "Timeless Elegance in Silver",
		HeroSubtitle:             "Handcrafted Jewelry & Broches",
		HeroImage:                "/images/hero-main.jpg",
		BrandStoryShort:          "Each piece tells a story of craftsmanship, tradition, and timeless beauty. Our artisans pour their heart into every creation.",
		CraftsmanshipTitle:       "Artisan Craftsmanship",
		CraftsmanshipDescription: "Every piece is meticulously handcrafted by skilled artisans using traditional techniques passed down through generations.",
		CraftsmanshipImage:       "/images/craftsmanship.jpg",
	}

	if err := m.db.Create(&content).Error; err != nil {
		return fmt.Errorf("failed to seed homepage content: %w", err)
	}

	return nil
}

func (m *Migration) seedCatalog() error {
	var count int64
	m.db.Model(&catalog.Collection{}).Count(&count)
	if count > 0 {
		return nil
	}

	// Collections carry the legacy ids of the old CMS export so carts
	// persisted against those ids keep resolving
	collections := []catalog.Collection{
		{
			ID:          uuid.New().String(),
			LegacyID:    "c1",
			Name:        "Lumina",
			Slug:        "lumina",
			Description: "Capturing the ethereal glow of moonlight on polished silver.",
			HeroImage:   "/artifact-1.webp",
		},
		{
			ID:          uuid.New().String(),
			LegacyID:    "c2",
			Name:        "Architectural",
			Slug:        "architectural",
			Description: "Geometric precision meets organic fluidity.",
			HeroImage:   "/artifact-15.webp",
		},
		{
			ID:          uuid.New().String(),
			LegacyID:    "c3",
			Name:        "Ethereal",
			Slug:        "ethereal",
			Description: "Delicate forms that whisper of timeless elegance.",
			HeroImage:   "/artifact-30.webp",
		},
	}

	for i := range collections {
		if err := m.db.Create(&collections[i]).Error; err != nil {
			return fmt.Errorf("failed to seed collection %s: %w", collections[i].Name, err)
		}
	}

	products := []catalog.Product{
		{
			ID:               uuid.New().String(),
			LegacyID:         "p1",
			Name:             "Luna Crescent Ring",
			Slug:             "luna-crescent-ring",
			CollectionID:     collections[0].ID,
			Description:      "A hand-hammered sterling silver ring featuring a soft satin finish that reflects light like a moonlit path. Designed for stacking or solo elegance.",
			Materials:        "925 Sterling Silver,Rhodium Plating",
			CareInstructions: "Clean with a soft polishing cloth. Avoid contact with perfumes and chlorinated water.",
			Price:            450000,
			Featured:         true,
			Images: []catalog.ProductImage{
				{URL: "/artifact-1.webp", SortOrder: 0},
				{URL: "/artifact-2.webp", SortOrder: 1},
			},
		},
		{
			ID:               uuid.New().String(),
			LegacyID:         "p2",
			Name:             "Moonlight Pendant",
			Slug:             "moonlight-pendant",
			CollectionID:     collections[0].ID,
			Description:      "Delicate pendant that captures the essence of moonlight with its luminous silver finish and flowing design.",
			Materials:        "925 Sterling Silver",
			CareInstructions: "Store in an airtight pouch when not in use to prevent oxidation.",
			Price:            380000,
			Featured:         false,
			Images: []catalog.ProductImage{
				{URL: "/artifact-3.webp", SortOrder: 0},
				{URL: "/artifact-4.webp", SortOrder: 1},
			},
		},
		{
			ID:               uuid.New().String(),
			LegacyID:         "p17",
			Name:             "Meridian Cuff",
			Slug:             "meridian-cuff",
			CollectionID:     collections[1].ID,
			Description:      "A bold architectural cuff with clean lines and a brushed finish, cast in solid sterling silver.",
			Materials:        "925 Sterling Silver",
			CareInstructions: "Polish gently with a silver cloth. Remove before bathing.",
			Price:            720000,
			Featured:         true,
			Images: []catalog.ProductImage{
				{URL: "/artifact-15.webp", SortOrder: 0},
			},
		},
		{
			ID:               uuid.New().String(),
			LegacyID:         "p31",
			Name:             "Whisper Drop Earrings",
			Slug:             "whisper-drop-earrings",
			CollectionID:     collections[2].ID,
			Description:      "Featherlight drop earrings that move with you, finished in high-polish silver for an ethereal shimmer.",
			Materials:        "925 Sterling Silver,Freshwater Pearl",
			CareInstructions: "Wipe after wearing. Keep away from cosmetics and hairspray.",
			Price:            290000,
			Featured:         true,
			Images: []catalog.ProductImage{
				{URL: "/artifact-30.webp", SortOrder: 0},
			},
		},
	}

	for i := range products {
		if err := m.db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
	}

	return nil
}

// GetTableInfo logs row counts for the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{"users", "collections", "products", "enquiries", "orders"}

	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			log.Printf("Table %s: error counting rows: %v", table, err)
			continue
		}
		log.Printf("Table %s: %d rows", table, count)
	}
}
