package core

import (
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/tenantkit/models"
)

// CacheInvalidator định nghĩa interface để invalidate tenant caches
// Cho phép service layer invalidate cache mà không cần biết chi tiết implementation
type CacheInvalidator interface {
	// InvalidateTenant xóa cache entry của một tenant trong một resource family
	InvalidateTenant(family, key string)
	// InvalidateAll xóa toàn bộ cache entries của một resource family
	InvalidateAll(family string)
}

// TenantRepositoryInterface định nghĩa interface cho Tenant Repository
// Cho phép mock repository trong tests
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySubdomain(subdomain string) (*models.Tenant, error)
	List() ([]models.Tenant, error)
	Update(tenant *models.Tenant) error
}

// UserRepositoryInterface định nghĩa interface cho User Repository
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// PrintOptionRepositoryInterface định nghĩa interface cho PrintOption Repository
type PrintOptionRepositoryInterface interface {
	Create(option *models.PrintOption) error
	GetByID(id uuid.UUID) (*models.PrintOption, error)
	Update(option *models.PrintOption) error
	Deactivate(id uuid.UUID) error
	List() ([]models.PrintOption, error)
	// ListAssigned trả về các options đang active được gán cho tenant,
	// sắp xếp theo position tăng dần
	ListAssigned(tenantID uuid.UUID) ([]models.PrintOption, error)
	Assign(tenantID, optionID uuid.UUID) error
	Unassign(tenantID, optionID uuid.UUID) error
}

// ApplicationRepositoryInterface định nghĩa interface cho Application Repository
type ApplicationRepositoryInterface interface {
	Create(app *models.Application) error
	GetByID(id uuid.UUID) (*models.Application, error)
	Update(app *models.Application) error
	Deactivate(id uuid.UUID) error
	List() ([]models.Application, error)
	ListAssigned(tenantID uuid.UUID) ([]models.Application, error)
	Assign(tenantID, appID uuid.UUID) error
	Unassign(tenantID, appID uuid.UUID) error
}
