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

// PrintOptionService handles print option business logic.
// Read path đi qua cache (miss thì query database rồi populate);
// write path mutate database xong mới invalidate cache, trước khi trả response.
type PrintOptionService struct {
	optionRepo  core.PrintOptionRepositoryInterface
	tenantRepo  core.TenantRepositoryInterface
	snapshots   *cache.Cache[models.PrintOptionSnapshot]
	invalidator core.CacheInvalidator
}

// NewPrintOptionService creates a new print option service
func NewPrintOptionService(
	optionRepo core.PrintOptionRepositoryInterface,
	tenantRepo core.TenantRepositoryInterface,
	snapshots *cache.Cache[models.PrintOptionSnapshot],
	invalidator core.CacheInvalidator,
) *PrintOptionService {
	return &PrintOptionService{
		optionRepo:  optionRepo,
		tenantRepo:  tenantRepo,
		snapshots:   snapshots,
		invalidator: invalidator,
	}
}

// GetTenantOptions trả về snapshot print options của tenant.
// Cache hit thì trả ngay không chạm database. Cache miss thì verify tenant tồn tại,
// query các options được gán rồi build snapshot mới và populate cache.
// Query lỗi thì propagate, không bao giờ cache snapshot dở dang.
func (s *PrintOptionService) GetTenantOptions(subdomain string) (*models.PrintOptionSnapshot, error) {
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

	options, err := s.optionRepo.ListAssigned(tenant.ID)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy print options của tenant").WithData(map[string]interface{}{
			"subdomain": subdomain,
		})
	}

	snapshot := buildPrintOptionSnapshot(subdomain, options)
	s.snapshots.Set(subdomain, snapshot)

	return &snapshot, nil
}

// CreateOptionRequest represents create print option request
type CreateOptionRequest struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// CreateOption tạo mới print option definition toàn cục.
// Code trùng trả về lỗi 409, cache giữ nguyên (mutation chưa xảy ra nên không invalidate).
// Tạo thành công thì invalidate toàn bộ family vì mọi tenant có thể tham chiếu definition mới.
func (s *PrintOptionService) CreateOption(req CreateOptionRequest) (*models.PrintOption, error) {
	if req.Code == "" {
		return nil, goerrorkit.NewValidationError("Code là bắt buộc", map[string]interface{}{
			"field": "code",
		})
	}
	if req.Label == "" {
		return nil, goerrorkit.NewValidationError("Label là bắt buộc", map[string]interface{}{
			"field": "label",
		})
	}

	option := &models.PrintOption{
		Code:     req.Code,
		Label:    req.Label,
		Position: req.Position,
		IsActive: true,
	}

	if err := s.optionRepo.Create(option); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, goerrorkit.NewBusinessError(409, "Mã print option đã tồn tại").WithData(map[string]interface{}{
				"code": req.Code,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi tạo print option")
	}

	s.invalidator.InvalidateAll(cache.FamilyPrintOptions)

	return option, nil
}

// UpdateOptionRequest represents update print option request
type UpdateOptionRequest struct {
	Label    *string `json:"label"`
	Position *int    `json:"position"`
}

// UpdateOption cập nhật definition toàn cục rồi invalidate toàn bộ family
func (s *PrintOptionService) UpdateOption(id uuid.UUID, req UpdateOptionRequest) (*models.PrintOption, error) {
	option, err := s.optionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, goerrorkit.NewBusinessError(404, "Không tìm thấy print option").WithData(map[string]interface{}{
				"option_id": id,
			})
		}
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy print option")
	}

	if req.Label != nil {
		option.Label = *req.Label
	}
	if req.Position != nil {
		option.Position = *req.Position
	}

	if err := s.optionRepo.Update(option); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi cập nhật print option")
	}

	s.invalidator.InvalidateAll(cache.FamilyPrintOptions)

	return option, nil
}

// DeactivateOption tắt một definition toàn cục rồi invalidate toàn bộ family
func (s *PrintOptionService) DeactivateOption(id uuid.UUID) error {
	if err := s.optionRepo.Deactivate(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return goerrorkit.NewBusinessError(404, "Không tìm thấy print option").WithData(map[string]interface{}{
				"option_id": id,
			})
		}
		return goerrorkit.WrapWithMessage(err, "Lỗi khi tắt print option")
	}

	s.invalidator.InvalidateAll(cache.FamilyPrintOptions)

	return nil
}

// ListOptions lấy danh sách tất cả definitions (đã tắt lẫn đang active)
func (s *PrintOptionService) ListOptions() ([]models.PrintOption, error) {
	options, err := s.optionRepo.List()
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy danh sách print options")
	}
	return options, nil
}

// AssignOption gán print option cho tenant rồi invalidate riêng tenant đó.
// Các tenant khác không bị ảnh hưởng nên giữ nguyên cache của họ.
func (s *PrintOptionService) AssignOption(subdomain string, optionID uuid.UUID) error {
	tenant, option, err := s.resolveAssignment(subdomain, optionID)
	if err != nil {
		return err
	}

	if err := s.optionRepo.Assign(tenant.ID, option.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi gán print option cho tenant")
	}

	s.invalidator.InvalidateTenant(cache.FamilyPrintOptions, subdomain)

	return nil
}

// UnassignOption gỡ print option khỏi tenant rồi invalidate riêng tenant đó
func (s *PrintOptionService) UnassignOption(subdomain string, optionID uuid.UUID) error {
	tenant, option, err := s.resolveAssignment(subdomain, optionID)
	if err != nil {
		return err
	}

	if err := s.optionRepo.Unassign(tenant.ID, option.ID); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi gỡ print option khỏi tenant")
	}

	s.invalidator.InvalidateTenant(cache.FamilyPrintOptions, subdomain)

	return nil
}

func (s *PrintOptionService) resolveAssignment(subdomain string, optionID uuid.UUID) (*models.Tenant, *models.PrintOption, error) {
	tenant, err := s.tenantRepo.GetBySubdomain(subdomain)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerrorkit.NewBusinessError(404, "Không tìm thấy tenant").WithData(map[string]interface{}{
				"subdomain": subdomain,
			})
		}
		return nil, nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy tenant")
	}

	option, err := s.optionRepo.GetByID(optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, goerrorkit.NewBusinessError(404, "Không tìm thấy print option").WithData(map[string]interface{}{
				"option_id": optionID,
			})
		}
		return nil, nil, goerrorkit.WrapWithMessage(err, "Lỗi khi lấy print option")
	}

	return tenant, option, nil
}

// buildPrintOptionSnapshot build snapshot bất biến từ các records đã query.
// Repository trả về options đã sắp xếp theo position, giữ nguyên thứ tự đó.
func buildPrintOptionSnapshot(subdomain string, options []models.PrintOption) models.PrintOptionSnapshot {
	views := make([]models.PrintOptionView, 0, len(options))
	for _, opt := range options {
		views = append(views, models.PrintOptionView{
			Code:     opt.Code,
			Label:    opt.Label,
			Position: opt.Position,
		})
	}
	return models.PrintOptionSnapshot{
		Tenant:  subdomain,
		Options: views,
		BuiltAt: time.Now(),
	}
}
