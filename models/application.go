package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application là định nghĩa toàn cục của một ứng dụng có thể gán cho tenant
type Application struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"not null" json:"name"`
	URL       string         `json:"url"`
	Position  int            `gorm:"default:0" json:"position"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook to generate UUID
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (Application) TableName() string {
	return "applications"
}

// TenantApplication là bảng gán application cho tenant
type TenantApplication struct {
	TenantID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"application_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name
func (TenantApplication) TableName() string {
	return "tenant_applications"
}
