package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type fakeEquipmentRepo struct {
	nextID    uint
	equipment []*models.Equipment
}

func (f *fakeEquipmentRepo) Create(ctx context.Context, e *models.Equipment) error {
	f.nextID++
	e.ID = f.nextID
	f.equipment = append(f.equipment, e)
	return nil
}

func (f *fakeEquipmentRepo) GetByID(ctx context.Context, id uint) (*models.Equipment, error) {
	for _, e := range f.equipment {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEquipmentRepo) List(ctx context.Context) ([]*models.Equipment, error) {
	return f.equipment, nil
}

func (f *fakeEquipmentRepo) ListByBase(ctx context.Context, base string) ([]*models.Equipment, error) {
	var out []*models.Equipment
	for _, e := range f.equipment {
		if e.Base == base {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepo) TotalQuantity(ctx context.Context, base string) (int64, error) {
	var sum int64
	for _, e := range f.equipment {
		if base == "" || e.Base == base {
			sum += int64(e.Quantity)
		}
	}
	return sum, nil
}

// seeds two bases' worth of movements and returns the wired service
func newTestDashboardService(t *testing.T) *DashboardService {
	t.Helper()
	ctx := context.Background()

	equipmentRepo := &fakeEquipmentRepo{}
	purchaseRepo := newFakePurchaseRepo()
	transferRepo := &fakeTransferRepo{}
	assignmentRepo := newFakeAssignmentRepo()
	expenditureRepo := &fakeExpenditureRepo{}

	now := time.Now()
	stamp := func(i int) time.Time { return now.Add(time.Duration(i) * time.Minute) }

	equipment := []*models.Equipment{
		{Name: "Rifle", Category: "Weapon", Quantity: 60, Base: "Base Alpha"},
		{Name: "Helmet", Category: "Gear", Quantity: 40, Base: "Base Alpha"},
		{Name: "Radio", Category: "Comms", Quantity: 25, Base: "Base Beta"},
	}
	for _, e := range equipment {
		if err := equipmentRepo.Create(ctx, e); err != nil {
			t.Fatalf("seed equipment: %v", err)
		}
	}

	purchases := []*models.Purchase{
		{EquipmentType: "Rifle", Quantity: 30, Base: "Base Alpha"},
		{EquipmentType: "Radio", Quantity: 20, Base: "Base Beta"},
	}
	for i, p := range purchases {
		p.CreatedAt = stamp(i)
		if err := purchaseRepo.Create(ctx, p); err != nil {
			t.Fatalf("seed purchase: %v", err)
		}
	}

	transfers := []*models.Transfer{
		{EquipmentType: "Rifle", Quantity: 15, FromBase: "Base Alpha", ToBase: "Base Beta"},
		{EquipmentType: "Helmet", Quantity: 7, FromBase: "Base Beta", ToBase: "Base Alpha"},
	}
	for i, tr := range transfers {
		tr.CreatedAt = stamp(2 + i)
		if err := transferRepo.Create(ctx, tr); err != nil {
			t.Fatalf("seed transfer: %v", err)
		}
	}

	assignments := []*models.Assignment{
		{EquipmentType: "Rifle", AssignedTo: "Sgt. Marsh", Base: "Base Alpha", Status: models.AssignmentStatusActive},
		{EquipmentType: "Rifle", AssignedTo: "Cpl. Vance", Base: "Base Alpha", Status: models.AssignmentStatusActive},
		{EquipmentType: "Radio", AssignedTo: "Lt. Okafor", Base: "Base Alpha", Status: models.AssignmentStatusReturned},
		{EquipmentType: "Radio", AssignedTo: "Pvt. Reyes", Base: "Base Beta", Status: models.AssignmentStatusActive},
	}
	for i, a := range assignments {
		a.CreatedAt = stamp(4 + i)
		if err := assignmentRepo.Create(ctx, a); err != nil {
			t.Fatalf("seed assignment: %v", err)
		}
	}

	expenditures := []*models.Expenditure{
		{EquipmentType: "Ammunition", Quantity: 10, ExpendedBy: "Sgt. Marsh", Base: "Base Alpha"},
		{EquipmentType: "Ammunition", Quantity: 5, ExpendedBy: "Pvt. Reyes", Base: "Base Beta"},
	}
	for i, e := range expenditures {
		e.CreatedAt = stamp(8 + i)
		if err := expenditureRepo.Create(ctx, e); err != nil {
			t.Fatalf("seed expenditure: %v", err)
		}
	}

	return NewDashboardService(equipmentRepo, purchaseRepo, transferRepo, assignmentRepo, expenditureRepo)
}

func TestDashboardMetrics_ByBase(t *testing.T) {
	t.Parallel()

	svc := newTestDashboardService(t)

	metrics, err := svc.GetMetrics(context.Background(), "Base Alpha")
	if err != nil {
		t.Fatalf("GetMetrics error: %v", err)
	}

	if metrics.ClosingBalance != 100 {
		t.Errorf("closing balance = %d, want 100", metrics.ClosingBalance)
	}
	if metrics.Purchases != 30 {
		t.Errorf("purchases = %d, want 30", metrics.Purchases)
	}
	if metrics.ExpendedAssets != 10 {
		t.Errorf("expended = %d, want 10", metrics.ExpendedAssets)
	}
	if metrics.AssignedAssets != 2 {
		t.Errorf("assigned = %d, want 2", metrics.AssignedAssets)
	}
	if metrics.TransfersIn != 7 || metrics.TransfersOut != 15 {
		t.Errorf("transfers in/out = %d/%d, want 7/15", metrics.TransfersIn, metrics.TransfersOut)
	}

	// net = 30 + 7 - 15 - 10, opening = closing - net
	if metrics.NetMovement != 12 {
		t.Errorf("net movement = %d, want 12", metrics.NetMovement)
	}
	if metrics.OpeningBalance != 88 {
		t.Errorf("opening balance = %d, want 88", metrics.OpeningBalance)
	}
}

func TestDashboardActivity_RespectsBaseFilter(t *testing.T) {
	t.Parallel()

	svc := newTestDashboardService(t)

	metrics, err := svc.GetMetrics(context.Background(), "Base Alpha")
	if err != nil {
		t.Fatalf("GetMetrics error: %v", err)
	}

	if len(metrics.RecentActivity) == 0 {
		t.Fatalf("expected activity for Base Alpha")
	}
	for _, item := range metrics.RecentActivity {
		// The Beta-only purchase and expenditure must not leak into a
		// Base Alpha feed; transfers touching Alpha on either end belong
		if item.Type == "purchase" && strings.Contains(item.Description, "Base Beta") {
			t.Errorf("foreign purchase in filtered feed: %+v", item)
		}
		if item.Type == "expenditure" && item.Description == "Ammunition expended by Pvt. Reyes" {
			t.Errorf("foreign expenditure in filtered feed: %+v", item)
		}
		if item.Type == "assignment" && item.Description == "Radio assigned to Pvt. Reyes" {
			t.Errorf("foreign assignment in filtered feed: %+v", item)
		}
	}

	// Newest first
	for i := 1; i < len(metrics.RecentActivity); i++ {
		if metrics.RecentActivity[i].Timestamp.After(metrics.RecentActivity[i-1].Timestamp) {
			t.Fatalf("activity feed not sorted newest first")
		}
	}
}

func TestDashboardMetrics_AllBases(t *testing.T) {
	t.Parallel()

	svc := newTestDashboardService(t)

	metrics, err := svc.GetMetrics(context.Background(), "")
	if err != nil {
		t.Fatalf("GetMetrics error: %v", err)
	}

	if metrics.ClosingBalance != 125 {
		t.Errorf("closing balance = %d, want 125", metrics.ClosingBalance)
	}
	if metrics.Purchases != 50 {
		t.Errorf("purchases = %d, want 50", metrics.Purchases)
	}
	if metrics.AssignedAssets != 3 {
		t.Errorf("assigned = %d, want 3", metrics.AssignedAssets)
	}
	// Unfiltered, every transfer counts on both sides and the movement nets out
	if metrics.TransfersIn != metrics.TransfersOut {
		t.Errorf("unfiltered transfers must balance, got %d/%d", metrics.TransfersIn, metrics.TransfersOut)
	}
}
