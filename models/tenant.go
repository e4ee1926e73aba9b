package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant represents an organization in the system.
// Subdomain là định danh duy nhất, dùng làm cache key cho mọi snapshot của tenant.
type Tenant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Subdomain string         `gorm:"uniqueIndex;not null" json:"subdomain"`
	Name      string         `gorm:"not null" json:"name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PrintOptions []PrintOption `gorm:"many2many:tenant_print_options" json:"print_options,omitempty"`
	Applications []Application `gorm:"many2many:tenant_applications" json:"applications,omitempty"`
}

// BeforeCreate hook to generate UUID
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Tenant) TableName() string {
	return "tenants"
}
