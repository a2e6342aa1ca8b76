package handlers

import (
	"errors"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseHandler handles base endpoints
type BaseHandler struct {
	baseRepo repositories.BaseRepository
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(baseRepo repositories.BaseRepository) *BaseHandler {
	return &BaseHandler{baseRepo: baseRepo}
}

// CreateBaseRequest represents base creation request body
type CreateBaseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// List lists all bases
func (h *BaseHandler) List(c *fiber.Ctx) error {
	bases, err := h.baseRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list bases")
	}

	return response.Success(c, "Bases retrieved successfully", fiber.Map{
		"bases": bases,
	})
}

// Create creates a new base
func (h *BaseHandler) Create(c *fiber.Ctx) error {
	var req CreateBaseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Location == "" || req.Capacity <= 0 {
		return response.BadRequest(c, "All fields are required")
	}

	if _, err := h.baseRepo.GetByName(c.Context(), req.Name); err == nil {
		return response.Conflict(c, "Base already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to create base")
	}

	base := &models.Base{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}

	if err := h.baseRepo.Create(c.Context(), base); err != nil {
		return response.InternalServerError(c, "Failed to create base")
	}

	return response.Created(c, "Base created successfully", fiber.Map{
		"base": base,
	})
}
