package repository

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// PrintOptionRepository handles print option database operations
type PrintOptionRepository struct {
	db *gorm.DB
}

// NewPrintOptionRepository creates a new print option repository
func NewPrintOptionRepository(db *gorm.DB) *PrintOptionRepository {
	return &PrintOptionRepository{db: db}
}

// Create tạo mới print option definition
// Trả về gorm.ErrDuplicatedKey nếu code đã tồn tại
func (r *PrintOptionRepository) Create(option *models.PrintOption) error {
	return r.db.Create(option).Error
}

// GetByID lấy print option theo ID
func (r *PrintOptionRepository) GetByID(id uuid.UUID) (*models.PrintOption, error) {
	var option models.PrintOption
	err := r.db.Where("id = ?", id).First(&option).Error
	return &option, err
}

// Update cập nhật print option definition
func (r *PrintOptionRepository) Update(option *models.PrintOption) error {
	return r.db.Save(option).Error
}

// Deactivate tắt một print option mà không xóa definition
// Option đã tắt không còn xuất hiện trong snapshot của bất kỳ tenant nào
func (r *PrintOptionRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.PrintOption{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lấy danh sách tất cả print option definitions
func (r *PrintOptionRepository) List() ([]models.PrintOption, error) {
	var options []models.PrintOption
	err := r.db.Order("position ASC, code ASC").Find(&options).Error
	return options, err
}

// ListAssigned lấy các options đang active được gán cho tenant,
// sắp xếp theo position tăng dần (thứ tự hiển thị)
func (r *PrintOptionRepository) ListAssigned(tenantID uuid.UUID) ([]models.PrintOption, error) {
	var options []models.PrintOption
	err := r.db.
		Joins("JOIN tenant_print_options tpo ON tpo.print_option_id = print_options.id").
		Where("tpo.tenant_id = ? AND print_options.is_active = ?", tenantID, true).
		Order("print_options.position ASC, print_options.code ASC").
		Find(&options).Error
	return options, err
}

// Assign gán print option cho tenant
// Dùng UPSERT (ON CONFLICT DO NOTHING) để gán lặp không gây lỗi
func (r *PrintOptionRepository) Assign(tenantID, optionID uuid.UUID) error {
	return r.db.Exec(
		"INSERT INTO tenant_print_options (tenant_id, print_option_id, created_at) VALUES ($1, $2, NOW()) ON CONFLICT (tenant_id, print_option_id) DO NOTHING",
		tenantID, optionID,
	).Error
}

// Unassign gỡ print option khỏi tenant
func (r *PrintOptionRepository) Unassign(tenantID, optionID uuid.UUID) error {
	return r.db.Exec(
		"DELETE FROM tenant_print_options WHERE tenant_id = $1 AND print_option_id = $2",
		tenantID, optionID,
	).Error
}
