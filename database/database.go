package database

import (
	"github.com/techmaster-vietnam/tenantkit/models"
	"gorm.io/gorm"
)

// Migrate runs database migrations for TenantKit models
// Tạo các bảng tenant, user, role, resource definitions và bảng gán theo tenant
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tenant{},
		&models.Role{},
		&models.User{},
		&models.PrintOption{},
		&models.TenantPrintOption{},
		&models.Application{},
		&models.TenantApplication{},
	)
}
