// internal/domain/enquiry/entity.go
package enquiry

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enquiry represents a contact form submission, optionally tied to a
// product the visitor was viewing
type Enquiry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Email     string    `gorm:"not null;size:255" json:"email"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	ProductID *string   `gorm:"index;size:36" json:"productId,omitempty"`
	RelayID   string    `gorm:"size:100" json:"-"` // WhatsApp message ID when relayed
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the table name
func (Enquiry) TableName() string {
	return "enquiries"
}

// BeforeCreate assigns a UUID
func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
