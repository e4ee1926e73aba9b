package repository

import (
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// RoleRepository handles role database operations
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName lấy role theo name
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	return &role, err
}

// List lấy danh sách tất cả roles
func (r *RoleRepository) List() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Find(&roles).Error
	return roles, err
}

// Create tạo mới role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}
