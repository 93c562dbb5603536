// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Luna Crescent Ring", "luna-crescent-ring"},
		{"  Whisper  Drop  Earrings  ", "whisper-drop-earrings"},
		{"925 Sterling / Oxidized", "925-sterling-oxidized"},
		{"Ètoile Pendant", "toile-pendant"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, slugify(tt.name), "slugify(%q)", tt.name)
	}
}

func TestProductResponseFlattensRelations(t *testing.T) {
	p := Product{
		ID:           "u1",
		LegacyID:     "p1",
		Name:         "Luna Crescent Ring",
		Slug:         "luna-crescent-ring",
		CollectionID: "c1",
		Materials:    "925 Sterling Silver,Rhodium Plating",
		Price:        450000,
		Featured:     true,
		Images: []ProductImage{
			{URL: "/artifact-2.webp", SortOrder: 1},
			{URL: "/artifact-1.webp", SortOrder: 0},
		},
	}

	resp := toProductResponse(p)

	assert.Equal(t, []string{"925 Sterling Silver", "Rhodium Plating"}, resp.Materials)
	assert.Len(t, resp.Images, 2)
	assert.Equal(t, "p1", resp.LegacyID)
}

func TestMaterialListEmpty(t *testing.T) {
	p := Product{}
	assert.Empty(t, p.MaterialList())
}
