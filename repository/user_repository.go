package repository

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create tạo mới user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID lấy user theo ID, preload Role và Tenant để derive identity
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("Tenant").Where("id = ?", id).First(&user).Error
	return &user, err
}

// GetByEmail lấy user theo email, preload Role và Tenant
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Preload("Tenant").Where("email = ?", email).First(&user).Error
	return &user, err
}
