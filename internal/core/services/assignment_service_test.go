package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/core/domain"

	"gorm.io/gorm"
)

type fakeAssignmentRepo struct {
	nextID      uint
	assignments map[uint]*models.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[uint]*models.Assignment)}
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment *models.Assignment) error {
	f.nextID++
	assignment.ID = f.nextID
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id uint) (*models.Assignment, error) {
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return assignment, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, assignment *models.Assignment) error {
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) List(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error) {
	var out []*models.Assignment
	for _, a := range f.assignments {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAssignmentRepo) CountByStatus(ctx context.Context, status, base string) (int64, error) {
	var count int64
	for _, a := range f.assignments {
		if a.Status == status && (base == "" || a.Base == base) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAssignmentRepo) ListRecent(ctx context.Context, base string, limit int) ([]*models.Assignment, error) {
	var out []*models.Assignment
	for _, a := range f.assignments {
		if base == "" || a.Base == base {
			out = append(out, a)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeExpenditureRepo struct {
	nextID       uint
	expenditures []*models.Expenditure
}

func (f *fakeExpenditureRepo) Create(ctx context.Context, expenditure *models.Expenditure) error {
	f.nextID++
	expenditure.ID = f.nextID
	f.expenditures = append(f.expenditures, expenditure)
	return nil
}

func (f *fakeExpenditureRepo) List(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error) {
	return f.expenditures, int64(len(f.expenditures)), nil
}

func (f *fakeExpenditureRepo) SumQuantity(ctx context.Context, base string) (int64, error) {
	var sum int64
	for _, e := range f.expenditures {
		if base == "" || e.Base == base {
			sum += int64(e.Quantity)
		}
	}
	return sum, nil
}

func (f *fakeExpenditureRepo) ListRecent(ctx context.Context, base string, limit int) ([]*models.Expenditure, error) {
	var out []*models.Expenditure
	for _, e := range f.expenditures {
		if base == "" || e.Base == base {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestAssignmentService() (*AssignmentService, *fakeAssignmentRepo, *fakeExpenditureRepo) {
	assignmentRepo := newFakeAssignmentRepo()
	expenditureRepo := &fakeExpenditureRepo{}
	return NewAssignmentService(assignmentRepo, expenditureRepo), assignmentRepo, expenditureRepo
}

func validAssignmentInput() *CreateAssignmentInput {
	return &CreateAssignmentInput{
		EquipmentType: "Rifle",
		SerialNumber:  "RF-1001",
		AssignedTo:    "Sgt. Marsh",
		PersonnelID:   "P-2231",
		Base:          "Base Alpha",
	}
}

func TestCreateAssignment(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAssignmentService()

	assignment, err := svc.CreateAssignment(context.Background(), validAssignmentInput())
	if err != nil {
		t.Fatalf("CreateAssignment error: %v", err)
	}

	if !strings.HasPrefix(assignment.AssignmentNo, "AS-") {
		t.Errorf("assignment no %q missing AS prefix", assignment.AssignmentNo)
	}
	if assignment.Status != models.AssignmentStatusActive {
		t.Errorf("status = %q, want %q", assignment.Status, models.AssignmentStatusActive)
	}
	if assignment.Condition != "Good" {
		t.Errorf("condition = %q, want Good", assignment.Condition)
	}
	if assignment.ReturnDate != nil {
		t.Errorf("new assignment must have no return date")
	}
}

func TestCreateAssignment_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAssignmentService()

	input := validAssignmentInput()
	input.PersonnelID = ""
	if _, err := svc.CreateAssignment(context.Background(), input); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReturnAssignment(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAssignmentService()

	assignment, err := svc.CreateAssignment(context.Background(), validAssignmentInput())
	if err != nil {
		t.Fatalf("CreateAssignment error: %v", err)
	}

	returned, err := svc.ReturnAssignment(context.Background(), assignment.ID, "Fair")
	if err != nil {
		t.Fatalf("ReturnAssignment error: %v", err)
	}
	if returned.Status != models.AssignmentStatusReturned {
		t.Errorf("status = %q, want %q", returned.Status, models.AssignmentStatusReturned)
	}
	if returned.ReturnDate == nil {
		t.Errorf("return date not set")
	}
	if returned.Condition != "Fair" {
		t.Errorf("condition = %q, want Fair", returned.Condition)
	}

	// Returning twice is rejected
	if _, err := svc.ReturnAssignment(context.Background(), assignment.ID, ""); !errors.Is(err, ErrAlreadyReturned) {
		t.Fatalf("expected ErrAlreadyReturned, got %v", err)
	}
}

func TestCreateExpenditure(t *testing.T) {
	t.Parallel()

	svc, _, expenditureRepo := newTestAssignmentService()

	expenditure, err := svc.CreateExpenditure(context.Background(), &CreateExpenditureInput{
		EquipmentType: "Ammunition",
		Quantity:      200,
		ExpendedBy:    "Cpl. Vance",
		Base:          "Base Beta",
		UnitCost:      1.5,
		Reason:        "Training exercise",
	})
	if err != nil {
		t.Fatalf("CreateExpenditure error: %v", err)
	}

	if !strings.HasPrefix(expenditure.ExpenditureNo, "EX-") {
		t.Errorf("expenditure no %q missing EX prefix", expenditure.ExpenditureNo)
	}
	if expenditure.TotalCost != 300 {
		t.Errorf("total cost = %v, want 300", expenditure.TotalCost)
	}
	if len(expenditureRepo.expenditures) != 1 {
		t.Fatalf("expenditure not persisted")
	}

	if _, err := svc.CreateExpenditure(context.Background(), &CreateExpenditureInput{
		EquipmentType: "Ammunition",
		Quantity:      -1,
		ExpendedBy:    "Cpl. Vance",
		Base:          "Base Beta",
	}); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}
