package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/cache"
	"github.com/techmaster-vietnam/tenantkit/core"
	"github.com/techmaster-vietnam/tenantkit/models"
	"github.com/techmaster-vietnam/tenantkit/utils"
	"gorm.io/gorm"
)

// ApplicationService handles application business logic.
// Cùng cấu trúc với PrintOptionService nhưng trên family applications,
// với cache instance riêng: invalidate family này không ảnh hưởng family kia.
type ApplicationService struct {
	appRepo     core.ApplicationRepositoryInterface
	tenantRepo  core.TenantRepositoryInterface
	snapshots   *cache.Cache[models.ApplicationSnapshot]
	invalidator core.CacheInvalidator
}

// NewApplicationService creates a new application service
func NewApplicationService(
	appRepo core.ApplicationRepositoryInterface,
	tenantRepo core.TenantRepositoryInterface,
	snapshots *cache.Cache[models.ApplicationSnapshot],
	invalidator core.CacheInvalidator,
) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		tenantRepo:  tenantRepo,
		snapshots:   snapshots,
		invalidator: invalidator,
	}
}

// GetTenantApplications trả về snapshot applications của tenant qua cache
func (s *ApplicationService) GetTenantApplications(subdomain string) (*models.ApplicationSnapshot, error) {
	if err := utils.ValidateSubdomain(subdomain); err != nil {
		return nil, err
	}

	if snapshot, ok := s.snapshots.Get(subdomain); ok {
		return &snapshot, nil
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

	apps, err := s.appRepo.ListAssigned(tenant.ID)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy applications của tenant").WithData(map[string]interface{}{
			"subdomain": subdomain,
		})
	}

	snapshot := buildApplicationSnapshot(subdomain, apps)
	s.snapshots.Set(subdomain, snapshot)

	return &snapshot, nil
}

// CreateApplicationRequest represents create application request
type CreateApplicationRequest struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// CreateApplication tạo mới application definition toàn cục
// Code trùng trả về 409, không invalidate (chưa có mutation nào commit)
func (s *ApplicationService) CreateApplication(req CreateApplicationRequest) (*models.Application, error) {
	if req.Code == "" {
		return nil, goerrorkit.NewValidationError("Code là bắt buộc", map[string]interface{}{
			"field": "code",
		})
	}
	if req.Name == "" {
		return nil, goerrorkit.NewValidationError("Name là bắt buộc", map[string]interface{}{
			"field": "name",
		})
	}

	app := &models.Application{
		Code:     req.Code,
		Name:     req.Name,
		URL:      req.URL,
		Position: req.Position,
		IsActive: true,
	}

	if err := s.appRepo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, goerrorkit.NewBusinessError(409, "Mã application đã tồn tại").WithData(map[string]interface{}{
				"code": req.Code,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo application")
	}

	s.invalidator.InvalidateAll(cache.FamilyApplications)

	return app, nil
}

// UpdateApplicationRequest represents update application request
type UpdateApplicationRequest struct {
	Name     *string `json:"name"`
	URL      *string `json:"url"`
	Position *int    `json:"position"`
}

// UpdateApplication cập nhật definition toàn cục rồi invalidate toàn bộ family
func (s *ApplicationService) UpdateApplication(id uuid.UUID, req UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.appRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerrorkit.NewBusinessError(404, "Không tìm thấy application").WithData(map[string]interface{}{
				"application_id": id,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy application")
	}

	if req.Name != nil {
		app.Name = *req.Name
	}
	if req.URL != nil {
		app.URL = *req.URL
	}
	if req.Position != nil {
		app.Position = *req.Position
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật application")
	}

	s.invalidator.InvalidateAll(cache.FamilyApplications)

	return app, nil
}

// DeactivateApplication tắt một definition toàn cục rồi invalidate toàn bộ family
func (s *ApplicationService) DeactivateApplication(id uuid.UUID) error {
	if err := s.appRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return goerrorkit.NewBusinessError(404, "Không tìm thấy application").WithData(map[string]interface{}{
				"application_id": id,
			})
		}
		return goerrorkit.WrapWithMessage(err, "Lỗi khi tắt application")
	}

	s.invalidator.InvalidateAll(cache.FamilyApplications)

	return nil
}

// ListApplications lấy danh sách tất cả definitions
func (s *ApplicationService) ListApplications() ([]models.Application, error) {
	apps, err := s.appRepo.List()
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách applications")
	}
	return apps, nil
}

// AssignApplication gán application cho tenant rồi invalidate riêng tenant đó
func (s *ApplicationService) AssignApplication(subdomain string, appID uuid.UUID) error {
	tenant, app, err := s.resolveAssignment(subdomain, appID)
	if err != nil {
		return err
	}

	if err := s.appRepo.Assign(tenant.ID, app.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi gán application cho tenant")
	}

	s.invalidator.InvalidateTenant(cache.FamilyApplications, subdomain)

	return nil
}

// UnassignApplication gỡ application khỏi tenant rồi invalidate riêng tenant đó
func (s *ApplicationService) UnassignApplication(subdomain string, appID uuid.UUID) error {
	tenant, app, err := s.resolveAssignment(subdomain, appID)
	if err != nil {
		return err
	}

	if err := s.appRepo.Unassign(tenant.ID, app.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi gỡ application khỏi tenant")
	}

	s.invalidator.InvalidateTenant(cache.FamilyApplications, subdomain)

	return nil
}

func (s *ApplicationService) resolveAssignment(subdomain string, appID uuid.UUID) (*models.Tenant, *models.Application, error) {
	tenant, err := s.tenantRepo.GetBySubdomain(subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerrorkit.NewBusinessError(404, "Không tìm thấy tenant").WithData(map[string]interface{}{
				"subdomain": subdomain,
			})
		}
		return nil, nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy tenant")
	}

	app, err := s.appRepo.GetByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerrorkit.NewBusinessError(404, "Không tìm thấy application").WithData(map[string]interface{}{
				"application_id": appID,
			})
		}
		return nil, nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy application")
	}

	return tenant, app, nil
}

func buildApplicationSnapshot(subdomain string, apps []models.Application) models.ApplicationSnapshot {
	views := make([]models.ApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, models.ApplicationView{
			Code: app.Code,
			Name: app.Name,
			URL:  app.URL,
		})
	}
	return models.ApplicationSnapshot{
		Tenant:       subdomain,
		Applications: views,
		BuiltAt:      time.Now(),
	}
}
