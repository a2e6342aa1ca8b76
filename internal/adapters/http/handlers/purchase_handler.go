package handlers

import (
	"errors"
	"strconv"

	"mams-backend/internal/core/domain"
	"mams-backend/internal/core/services"
	"mams-backend/internal/pkg/pagination"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PurchaseHandler handles purchase endpoints
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// UpdateStatusRequest represents purchase status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// List lists purchases with pagination
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	purchases, total, err := h.purchaseService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list purchases")
	}

	return response.Paginated(c, "Purchases retrieved successfully",
		fiber.Map{"purchases": purchases}, pagination.GetMeta(params, total))
}

// Create records a new purchase order
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var input services.CreatePurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	purchase, err := h.purchaseService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "All fields are required")
		case errors.Is(err, domain.ErrInvalidQuantity):
			return response.BadRequest(c, "Quantity must be greater than zero")
		default:
			return response.InternalServerError(c, "Failed to create purchase")
		}
	}

	return response.Created(c, "Purchase recorded successfully", fiber.Map{
		"purchase": purchase,
	})
}

// UpdateStatus moves a purchase along its lifecycle
func (h *PurchaseHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid purchase ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	purchase, updateErr := h.purchaseService.UpdateStatus(c.Context(), uint(id), req.Status)
	if updateErr != nil {
		switch {
		case errors.Is(updateErr, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid status")
		case errors.Is(updateErr, domain.ErrStatusRegression):
			return response.BadRequest(c, "Status cannot move backwards")
		case errors.Is(updateErr, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Purchase not found")
		default:
			return response.InternalServerError(c, "Failed to update purchase")
		}
	}

	return response.Success(c, "Purchase updated successfully", fiber.Map{
		"purchase": purchase,
	})
}
