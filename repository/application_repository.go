package repository

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create tạo mới application definition
// Trả về gorm.ErrDuplicatedKey nếu code đã tồn tại
func (r *ApplicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

// GetByID lấy application theo ID
func (r *ApplicationRepository) GetByID(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("id = ?", id).First(&app).Error
	return &app, err
}

// Update cập nhật application definition
func (r *ApplicationRepository) Update(app *models.Application) error {
	return r.db.Save(app).Error
}

// Deactivate tắt một application mà không xóa definition
func (r *ApplicationRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lấy danh sách tất cả application definitions
func (r *ApplicationRepository) List() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Order("position ASC, code ASC").Find(&apps).Error
	return apps, err
}

// ListAssigned lấy các applications đang active được gán cho tenant,
// sắp xếp theo position tăng dần
func (r *ApplicationRepository) ListAssigned(tenantID uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Joins("JOIN tenant_applications ta ON ta.application_id = applications.id").
		Where("ta.tenant_id = ? AND applications.is_active = ?", tenantID, true).
		Order("applications.position ASC, applications.code ASC").
		Find(&apps).Error
	return apps, err
}

// Assign gán application cho tenant
func (r *ApplicationRepository) Assign(tenantID, appID uuid.UUID) error {
	return r.db.Exec(
		"INSERT INTO tenant_applications (tenant_id, application_id, created_at) VALUES ($1, $2, NOW()) ON CONFLICT (tenant_id, application_id) DO NOTHING",
		tenantID, appID,
	).Error
}

// Unassign gỡ application khỏi tenant
func (r *ApplicationRepository) Unassign(tenantID, appID uuid.UUID) error {
	return r.db.Exec(
		"DELETE FROM tenant_applications WHERE tenant_id = $1 AND application_id = $2",
		tenantID, appID,
	).Error
}
