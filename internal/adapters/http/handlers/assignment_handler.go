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

// AssignmentHandler handles assignment and expenditure endpoints
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// ReturnRequest represents assignment return request body
type ReturnRequest struct {
	Condition string `json:"condition"`
}

// ListAssignments lists assignments with pagination
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	assignments, total, err := h.assignmentService.ListAssignments(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list assignments")
	}

	return response.Paginated(c, "Assignments retrieved successfully",
		fiber.Map{"assignments": assignments}, pagination.GetMeta(params, total))
}

// CreateAssignment issues equipment to a person
func (h *AssignmentHandler) CreateAssignment(c *fiber.Ctx) error {
	var input services.CreateAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	assignment, err := h.assignmentService.CreateAssignment(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "All fields are required")
		default:
			return response.InternalServerError(c, "Failed to create assignment")
		}
	}

	return response.Created(c, "Assignment created successfully", fiber.Map{
		"assignment": assignment,
	})
}

// ReturnAssignment marks an assignment as returned
func (h *AssignmentHandler) ReturnAssignment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid assignment ID")
	}

	var req ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	assignment, returnErr := h.assignmentService.ReturnAssignment(c.Context(), uint(id), req.Condition)
	if returnErr != nil {
		switch {
		case errors.Is(returnErr, services.ErrAlreadyReturned):
			return response.BadRequest(c, "Assignment already returned")
		case errors.Is(returnErr, gorm.ErrRecordNotFound):
			return response.NotFound(c, "Assignment not found")
		default:
			return response.InternalServerError(c, "Failed to return assignment")
		}
	}

	return response.Success(c, "Assignment returned successfully", fiber.Map{
		"assignment": assignment,
	})
}

// ListExpenditures lists expenditures with pagination
func (h *AssignmentHandler) ListExpenditures(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	expenditures, total, err := h.assignmentService.ListExpenditures(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list expenditures")
	}

	return response.Paginated(c, "Expenditures retrieved successfully",
		fiber.Map{"expenditures": expenditures}, pagination.GetMeta(params, total))
}

// CreateExpenditure records consumed assets
func (h *AssignmentHandler) CreateExpenditure(c *fiber.Ctx) error {
	var input services.CreateExpenditureInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	expenditure, err := h.assignmentService.CreateExpenditure(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "All fields are required")
		case errors.Is(err, domain.ErrInvalidQuantity):
			return response.BadRequest(c, "Quantity must be greater than zero")
		default:
			return response.InternalServerError(c, "Failed to create expenditure")
		}
	}

	return response.Created(c, "Expenditure recorded successfully", fiber.Map{
		"expenditure": expenditure,
	})
}
