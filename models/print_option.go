package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintOption là định nghĩa toàn cục của một tùy chọn in ấn
// Định nghĩa được chia sẻ giữa các tenants; mỗi tenant chỉ được gán một tập con
// Code là natural key, không được trùng (unique constraint ở database)
type PrintOption struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`
	Label     string         `gorm:"not null" json:"label"`
	Position  int            `gorm:"default:0" json:"position"` // Thứ tự hiển thị, nhỏ hơn đứng trước
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook to generate UUID
func (p *PrintOption) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name
func (PrintOption) TableName() string {
	return "print_options"
}

// TenantPrintOption là bảng gán print option cho tenant (many2many join table)
type TenantPrintOption struct {
	TenantID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	PrintOptionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"print_option_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name
func (TenantPrintOption) TableName() string {
	return "tenant_print_options"
}
