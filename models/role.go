package models

import (
	"time"

	"gorm.io/gorm"
)

// Tên các system roles được seed sẵn khi khởi tạo database
const (
	RoleSuperAdmin = "super_admin" // Quản trị toàn hệ thống, được miễn kiểm tra tenant
	RoleAdmin      = "admin"       // Quản trị trong phạm vi một tenant
	RoleUser       = "user"        // Người dùng thông thường
)

// Role represents a role in the system
type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `json:"description"`
	IsSystem    bool           `gorm:"default:false" json:"is_system"` // System roles cannot be deleted
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Role) TableName() string {
	return "roles"
}
