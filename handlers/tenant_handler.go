package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/service"
)

// TenantHandler handles tenant requests
type TenantHandler struct {
	tenantService *service.TenantService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService *service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// CreateTenant handles create tenant request
// POST /api/tenants
func (h *TenantHandler) CreateTenant(c *fiber.Ctx) error {
	var req service.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	tenant, err := h.tenantService.CreateTenant(req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    tenant,
	})
}

// GetTenant handles get tenant request
// GET /api/tenants/:tenant
func (h *TenantHandler) GetTenant(c *fiber.Ctx) error {
	tenant, err := h.tenantService.GetTenant(c.Params("tenant"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tenant,
	})
}

// ListTenants handles list tenants request
// GET /api/tenants
func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	tenants, err := h.tenantService.ListTenants()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    tenants,
	})
}
