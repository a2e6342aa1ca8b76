package services

import (
	"context"
	"errors"
	"time"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/core/domain"
)

// Assignment errors
var (
	ErrAlreadyReturned = errors.New("assignment already returned")
)

// AssignmentService handles equipment assignment and expenditure logic
type AssignmentService struct {
	assignmentRepo  repositories.AssignmentRepository
	expenditureRepo repositories.ExpenditureRepository
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignmentRepo repositories.AssignmentRepository,
	expenditureRepo repositories.ExpenditureRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo:  assignmentRepo,
		expenditureRepo: expenditureRepo,
	}
}

// CreateAssignmentInput represents assignment creation input
type CreateAssignmentInput struct {
	EquipmentType string `json:"equipment_type"`
	SerialNumber  string `json:"serial_number"`
	AssignedTo    string `json:"assigned_to"`
	PersonnelID   string `json:"personnel_id"`
	Rank          string `json:"rank"`
	Unit          string `json:"unit"`
	Base          string `json:"base"`
	AssignedBy    string `json:"assigned_by"`
	Notes         string `json:"notes"`
}

// CreateAssignment issues equipment to a person
func (s *AssignmentService) CreateAssignment(ctx context.Context, input *CreateAssignmentInput) (*models.Assignment, error) {
	if input.EquipmentType == "" || input.AssignedTo == "" || input.PersonnelID == "" || input.Base == "" {
		return nil, domain.ErrInvalidInput
	}

	assignment := &models.Assignment{
		AssignmentNo:   newOrderRef("AS"),
		EquipmentType:  input.EquipmentType,
		SerialNumber:   input.SerialNumber,
		AssignedTo:     input.AssignedTo,
		PersonnelID:    input.PersonnelID,
		Rank:           input.Rank,
		Unit:           input.Unit,
		Base:           input.Base,
		AssignmentDate: time.Now(),
		Condition:      "Good",
		Status:         models.AssignmentStatusActive,
		AssignedBy:     input.AssignedBy,
		Notes:          input.Notes,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// ReturnAssignment marks an assignment as returned
func (s *AssignmentService) ReturnAssignment(ctx context.Context, id uint, condition string) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if assignment.Status == models.AssignmentStatusReturned {
		return nil, ErrAlreadyReturned
	}

	now := time.Now()
	assignment.Status = models.AssignmentStatusReturned
	assignment.ReturnDate = &now
	if condition != "" {
		assignment.Condition = condition
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// ListAssignments returns assignments with pagination
func (s *AssignmentService) ListAssignments(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error) {
	return s.assignmentRepo.List(ctx, offset, limit)
}

// CreateExpenditureInput represents expenditure creation input
type CreateExpenditureInput struct {
	EquipmentType string  `json:"equipment_type"`
	Quantity      int     `json:"quantity"`
	ExpendedBy    string  `json:"expended_by"`
	PersonnelID   string  `json:"personnel_id"`
	Base          string  `json:"base"`
	Reason        string  `json:"reason"`
	AuthorizedBy  string  `json:"authorized_by"`
	UnitCost      float64 `json:"unit_cost"`
	Notes         string  `json:"notes"`
}

// CreateExpenditure records consumed assets
func (s *AssignmentService) CreateExpenditure(ctx context.Context, input *CreateExpenditureInput) (*models.Expenditure, error) {
	if input.EquipmentType == "" || input.ExpendedBy == "" || input.Base == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	expenditure := &models.Expenditure{
		ExpenditureNo:   newOrderRef("EX"),
		EquipmentType:   input.EquipmentType,
		Quantity:        input.Quantity,
		ExpendedBy:      input.ExpendedBy,
		PersonnelID:     input.PersonnelID,
		Base:            input.Base,
		ExpenditureDate: time.Now(),
		Reason:          input.Reason,
		AuthorizedBy:    input.AuthorizedBy,
		UnitCost:        input.UnitCost,
		TotalCost:       float64(input.Quantity) * input.UnitCost,
		Notes:           input.Notes,
	}

	if err := s.expenditureRepo.Create(ctx, expenditure); err != nil {
		return nil, err
	}

	return expenditure, nil
}

// ListExpenditures returns expenditures with pagination
func (s *AssignmentService) ListExpenditures(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error) {
	return s.expenditureRepo.List(ctx, offset, limit)
}
