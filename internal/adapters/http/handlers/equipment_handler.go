package handlers

import (
	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EquipmentHandler handles equipment endpoints
type EquipmentHandler struct {
	equipmentRepo repositories.EquipmentRepository
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(equipmentRepo repositories.EquipmentRepository) *EquipmentHandler {
	return &EquipmentHandler{equipmentRepo: equipmentRepo}
}

// CreateEquipmentRequest represents equipment creation request body
type CreateEquipmentRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Base     string `json:"base"`
}

// List lists equipment, optionally filtered by base
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	base := c.Query("base")

	var equipment []*models.Equipment
	var err error

	if base != "" {
		equipment, err = h.equipmentRepo.ListByBase(c.Context(), base)
	} else {
		equipment, err = h.equipmentRepo.List(c.Context())
	}

	if err != nil {
		return response.InternalServerError(c, "Failed to list equipment")
	}

	return response.Success(c, "Equipment retrieved successfully", fiber.Map{
		"equipment": equipment,
	})
}

// Create creates a new equipment record
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var req CreateEquipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Category == "" || req.Base == "" || req.Quantity <= 0 {
		return response.BadRequest(c, "All fields are required")
	}

	equipment := &models.Equipment{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Base:     req.Base,
	}

	if err := h.equipmentRepo.Create(c.Context(), equipment); err != nil {
		return response.InternalServerError(c, "Failed to create equipment")
	}

	return response.Created(c, "Equipment created successfully", fiber.Map{
		"equipment": equipment,
	})
}
