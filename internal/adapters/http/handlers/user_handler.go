package handlers

import (
	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/pkg/pagination"
	"mams-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers lists users with pagination. Responses carry sanitized views
// only, same as the auth endpoints.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userRepo.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	views := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		views = append(views, u.ToResponse())
	}

	return response.Paginated(c, "Users retrieved successfully",
		fiber.Map{"users": views}, pagination.GetMeta(params, total))
}
