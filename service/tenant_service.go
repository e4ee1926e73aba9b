package service

import (
	"errors"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/core"
	"github.com/techmaster-vietnam/tenantkit/models"
	"github.com/techmaster-vietnam/tenantkit/utils"
	"gorm.io/gorm"
)

// TenantService handles tenant business logic
type TenantService struct {
	tenantRepo core.TenantRepositoryInterface
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo core.TenantRepositoryInterface) *TenantService {
	return &TenantService{tenantRepo: tenantRepo}
}

// CreateTenantRequest represents create tenant request
type CreateTenantRequest struct {
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
}

// CreateTenant tạo mới tenant. Subdomain trùng trả về lỗi 409.
// Tenant mới chưa có assignment nào nên không cần invalidate cache.
func (s *TenantService) CreateTenant(req CreateTenantRequest) (*models.Tenant, error) {
	if err := utils.ValidateSubdomain(req.Subdomain); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, goerrorkit.NewValidationError("Name là bắt buộc", map[string]interface{}{
			"field": "name",
		})
	}

	tenant := &models.Tenant{
		Subdomain: req.Subdomain,
		Name:      req.Name,
		IsActive:  true,
	}

	if err := s.tenantRepo.Create(tenant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, goerrorkit.NewBusinessError(409, "Subdomain đã tồn tại").WithData(map[string]interface{}{
				"subdomain": req.Subdomain,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo tenant")
	}

	return tenant, nil
}

// GetTenant lấy tenant theo subdomain
func (s *TenantService) GetTenant(subdomain string) (*models.Tenant, error) {
	if err := utils.ValidateSubdomain(subdomain); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetBySubdomain(subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerrorkit.NewBusinessError(404, "Không tìm thấy tenant").WithData(map[string]interface{}{
				"subdomain": subdomain,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy tenant")
	}

	return tenant, nil
}

// ListTenants lấy danh sách tất cả tenants
func (s *TenantService) ListTenants() ([]models.Tenant, error) {
	tenants, err := s.tenantRepo.List()
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách tenants")
	}
	return tenants, nil
}
