package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
)

const recentActivityLimit = 10

// DashboardService aggregates asset movements into the overview
type DashboardService struct {
	equipmentRepo   repositories.EquipmentRepository
	purchaseRepo    repositories.PurchaseRepository
	transferRepo    repositories.TransferRepository
	assignmentRepo  repositories.AssignmentRepository
	expenditureRepo repositories.ExpenditureRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	equipmentRepo repositories.EquipmentRepository,
	purchaseRepo repositories.PurchaseRepository,
	transferRepo repositories.TransferRepository,
	assignmentRepo repositories.AssignmentRepository,
	expenditureRepo repositories.ExpenditureRepository,
) *DashboardService {
	return &DashboardService{
		equipmentRepo:   equipmentRepo,
		purchaseRepo:    purchaseRepo,
		transferRepo:    transferRepo,
		assignmentRepo:  assignmentRepo,
		expenditureRepo: expenditureRepo,
	}
}

// DashboardMetrics represents the asset overview
type DashboardMetrics struct {
	OpeningBalance int64 `json:"opening_balance"`
	ClosingBalance int64 `json:"closing_balance"`
	NetMovement    int64 `json:"net_movement"`
	AssignedAssets int64 `json:"assigned_assets"`
	ExpendedAssets int64 `json:"expended_assets"`
	Purchases      int64 `json:"purchases"`
	TransfersIn    int64 `json:"transfers_in"`
	TransfersOut   int64 `json:"transfers_out"`

	RecentActivity []ActivityItem `json:"recent_activity"`
}

// ActivityItem represents one entry in the recent activity feed
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Timestamp   time.Time `json:"timestamp"`
}

// GetMetrics returns the asset overview, optionally filtered by base.
// The base filter applies to every figure and to the activity feed.
func (s *DashboardService) GetMetrics(ctx context.Context, base string) (*DashboardMetrics, error) {
	data := &DashboardMetrics{}
	var err error

	if data.ClosingBalance, err = s.equipmentRepo.TotalQuantity(ctx, base); err != nil {
		return nil, err
	}
	if data.Purchases, err = s.purchaseRepo.SumQuantity(ctx, base); err != nil {
		return nil, err
	}
	if data.ExpendedAssets, err = s.expenditureRepo.SumQuantity(ctx, base); err != nil {
		return nil, err
	}
	if data.AssignedAssets, err = s.assignmentRepo.CountByStatus(ctx, models.AssignmentStatusActive, base); err != nil {
		return nil, err
	}
	if data.TransfersIn, err = s.transferRepo.SumQuantityByBase(ctx, "to_base", base); err != nil {
		return nil, err
	}
	if data.TransfersOut, err = s.transferRepo.SumQuantityByBase(ctx, "from_base", base); err != nil {
		return nil, err
	}

	data.NetMovement = data.Purchases + data.TransfersIn - data.TransfersOut - data.ExpendedAssets
	data.OpeningBalance = data.ClosingBalance - data.NetMovement

	if data.RecentActivity, err = s.recentActivity(ctx, base); err != nil {
		return nil, err
	}

	return data, nil
}

// recentActivity merges the latest movements into one feed
func (s *DashboardService) recentActivity(ctx context.Context, base string) ([]ActivityItem, error) {
	items := []ActivityItem{}

	purchases, err := s.purchaseRepo.ListRecent(ctx, base, 5)
	if err != nil {
		return nil, err
	}
	for _, p := range purchases {
		items = append(items, ActivityItem{
			Type:        "purchase",
			Description: fmt.Sprintf("%s purchased for %s", p.EquipmentType, p.Base),
			Quantity:    p.Quantity,
			Timestamp:   p.CreatedAt,
		})
	}

	transfers, err := s.transferRepo.ListRecent(ctx, base, 5)
	if err != nil {
		return nil, err
	}
	for _, t := range transfers {
		items = append(items, ActivityItem{
			Type:        "transfer",
			Description: fmt.Sprintf("%s transferred from %s to %s", t.EquipmentType, t.FromBase, t.ToBase),
			Quantity:    t.Quantity,
			Timestamp:   t.CreatedAt,
		})
	}

	assignments, err := s.assignmentRepo.ListRecent(ctx, base, 5)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		items = append(items, ActivityItem{
			Type:        "assignment",
			Description: fmt.Sprintf("%s assigned to %s", a.EquipmentType, a.AssignedTo),
			Quantity:    1,
			Timestamp:   a.CreatedAt,
		})
	}

	expenditures, err := s.expenditureRepo.ListRecent(ctx, base, 5)
	if err != nil {
		return nil, err
	}
	for _, e := range expenditures {
		items = append(items, ActivityItem{
			Type:        "expenditure",
			Description: fmt.Sprintf("%s expended by %s", e.EquipmentType, e.ExpendedBy),
			Quantity:    e.Quantity,
			Timestamp:   e.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	return items, nil
}
