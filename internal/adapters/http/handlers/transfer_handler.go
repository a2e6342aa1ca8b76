package handlers

import (
	"errors"

	"mams-backend/internal/core/domain"
	"mams-backend/internal/core/services"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransferHandler handles transfer endpoints
type TransferHandler struct {
	transferService *services.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *services.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// List lists all transfers, newest first
func (h *TransferHandler) List(c *fiber.Ctx) error {
	transfers, err := h.transferService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list transfers")
	}

	return response.Success(c, "Transfers retrieved successfully", fiber.Map{
		"transfers": transfers,
	})
}

// Create records a new transfer
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var input services.CreateTransferInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	transfer, err := h.transferService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "All fields are required")
		case errors.Is(err, domain.ErrInvalidQuantity):
			return response.BadRequest(c, "Quantity must be greater than zero")
		case errors.Is(err, domain.ErrSameBaseTransfer):
			return response.BadRequest(c, "Source and destination base must differ")
		case errors.Is(err, domain.ErrBaseNotFound):
			return response.BadRequest(c, "Unknown base")
		default:
			return response.InternalServerError(c, "Failed to create transfer")
		}
	}

	return response.Created(c, "Transfer created successfully", fiber.Map{
		"transfer": transfer,
	})
}
