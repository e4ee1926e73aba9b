package repository

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// TenantRepository handles tenant database operations
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create tạo mới tenant
// Trả về gorm.ErrDuplicatedKey nếu subdomain đã tồn tại (unique constraint)
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// GetByID lấy tenant theo ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Where("id = ?", id).First(&tenant).Error
	return &tenant, err
}

// GetBySubdomain lấy tenant theo subdomain
// Trả về gorm.ErrRecordNotFound nếu tenant không tồn tại
func (r *TenantRepository) GetBySubdomain(subdomain string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.Where("subdomain = ?", subdomain).First(&tenant).Error
	return &tenant, err
}

// List lấy danh sách tất cả tenants
func (r *TenantRepository) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.db.Order("subdomain ASC").Find(&tenants).Error
	return tenants, err
}

// Update cập nhật tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}
