package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user in the system
// TenantID là nil đối với user cấp hệ thống (super_admin) không thuộc tenant nào
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"` // Hidden from JSON
	FullName  string         `json:"full_name"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	TenantID  *uuid.UUID     `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	RoleID    uint           `gorm:"not null" json:"role_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant *Tenant `json:"tenant,omitempty"`
	Role   Role    `json:"role,omitempty"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// TenantSubdomain trả về subdomain của tenant mà user thuộc về
// Trả về chuỗi rỗng nếu user không thuộc tenant nào (super_admin)
func (u *User) TenantSubdomain() string {
	if u.Tenant == nil {
		return ""
	}
	return u.Tenant.Subdomain
}
