package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/service"
)

// ApplicationHandler handles application requests
type ApplicationHandler struct {
	appService *service.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// GetTenantApplications handles get tenant applications request (read path qua cache)
// GET /api/tenants/:tenant/applications
func (h *ApplicationHandler) GetTenantApplications(c *fiber.Ctx) error {
	snapshot, err := h.appService.GetTenantApplications(c.Params("tenant"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
	})
}

// CreateApplication handles create application request
// POST /api/applications
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var req service.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	app, err := h.appService.CreateApplication(req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    app,
	})
}

// UpdateApplication handles update application request
// PUT /api/applications/:id
func (h *ApplicationHandler) UpdateApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req service.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	app, err := h.appService.UpdateApplication(id, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    app,
	})
}

// DeactivateApplication handles deactivate application request
// DELETE /api/applications/:id
func (h *ApplicationHandler) DeactivateApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.appService.DeactivateApplication(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListApplications handles list applications request
// GET /api/applications
func (h *ApplicationHandler) ListApplications(c *fiber.Ctx) error {
	apps, err := h.appService.ListApplications()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    apps,
	})
}

// AssignApplication handles assign application to tenant request
// POST /api/tenants/:tenant/applications/:id
func (h *ApplicationHandler) AssignApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.appService.AssignApplication(c.Params("tenant"), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// UnassignApplication handles unassign application from tenant request
// DELETE /api/tenants/:tenant/applications/:id
func (h *ApplicationHandler) UnassignApplication(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.appService.UnassignApplication(c.Params("tenant"), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
