package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/tenantkit/service"
)

// PrintOptionHandler handles print option requests
type PrintOptionHandler struct {
	optionService *service.PrintOptionService
}

// NewPrintOptionHandler creates a new print option handler
func NewPrintOptionHandler(optionService *service.PrintOptionService) *PrintOptionHandler {
	return &PrintOptionHandler{optionService: optionService}
}

// GetTenantOptions handles get tenant print options request (read path qua cache)
// GET /api/tenants/:tenant/print-options
func (h *PrintOptionHandler) GetTenantOptions(c *fiber.Ctx) error {
	snapshot, err := h.optionService.GetTenantOptions(c.Params("tenant"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
	})
}

// CreateOption handles create print option request
// POST /api/print-options
func (h *PrintOptionHandler) CreateOption(c *fiber.Ctx) error {
	var req service.CreateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	option, err := h.optionService.CreateOption(req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    option,
	})
}

// UpdateOption handles update print option request
// PUT /api/print-options/:id
func (h *PrintOptionHandler) UpdateOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req service.UpdateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}

	option, err := h.optionService.UpdateOption(id, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    option,
	})
}

// DeactivateOption handles deactivate print option request
// DELETE /api/print-options/:id
func (h *PrintOptionHandler) DeactivateOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.optionService.DeactivateOption(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// ListOptions handles list print options request
// GET /api/print-options
func (h *PrintOptionHandler) ListOptions(c *fiber.Ctx) error {
	options, err := h.optionService.ListOptions()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    options,
	})
}

// AssignOption handles assign print option to tenant request
// POST /api/tenants/:tenant/print-options/:id
func (h *PrintOptionHandler) AssignOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.optionService.AssignOption(c.Params("tenant"), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// UnassignOption handles unassign print option from tenant request
// DELETE /api/tenants/:tenant/print-options/:id
func (h *PrintOptionHandler) UnassignOption(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.optionService.UnassignOption(c.Params("tenant"), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// parseIDParam parse path param :id thành UUID
func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, goerrorkit.NewValidationError("ID không hợp lệ", map[string]interface{}{
			"id": c.Params("id"),
		})
	}
	return id, nil
}
