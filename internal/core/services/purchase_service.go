package services

import (
	"context"
	"fmt"
	"time"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/core/domain"

	"github.com/google/uuid"
)

// PurchaseService handles procurement logic
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo}
}

// CreatePurchaseInput represents purchase creation input
type CreatePurchaseInput struct {
	EquipmentType string     `json:"equipment_type"`
	Quantity      int        `json:"quantity"`
	UnitCost      float64    `json:"unit_cost"`
	Vendor        string     `json:"vendor"`
	Base          string     `json:"base"`
	DeliveryDate  *time.Time `json:"delivery_date"`
	ApprovedBy    string     `json:"approved_by"`
	Notes         string     `json:"notes"`
}

// Create records a purchase order in Pending Approval status
func (s *PurchaseService) Create(ctx context.Context, input *CreatePurchaseInput) (*models.Purchase, error) {
	if input.EquipmentType == "" || input.Base == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	purchase := &models.Purchase{
		OrderNo:       newOrderRef("PO"),
		EquipmentType: input.EquipmentType,
		Quantity:      input.Quantity,
		UnitCost:      input.UnitCost,
		TotalCost:     float64(input.Quantity) * input.UnitCost,
		Vendor:        input.Vendor,
		Base:          input.Base,
		PurchaseDate:  time.Now(),
		DeliveryDate:  input.DeliveryDate,
		Status:        models.PurchaseStatusPending,
		ApprovedBy:    input.ApprovedBy,
		Notes:         input.Notes,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// purchaseStatusRank orders the lifecycle; a purchase only moves forward
var purchaseStatusRank = map[string]int{
	models.PurchaseStatusPending:   0,
	models.PurchaseStatusInTransit: 1,
	models.PurchaseStatusDelivered: 2,
}

// UpdateStatus moves a purchase along its lifecycle. Backward transitions
// are rejected; setting the current status again is a no-op update.
func (s *PurchaseService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Purchase, error) {
	rank, ok := purchaseStatusRank[status]
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if rank < purchaseStatusRank[purchase.Status] {
		return nil, domain.ErrStatusRegression
	}

	purchase.Status = status
	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// List returns purchases with pagination
func (s *PurchaseService) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	return s.purchaseRepo.List(ctx, offset, limit)
}

// newOrderRef builds a reference like PO-2026-1a2b3c4d
func newOrderRef(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Year(), uuid.New().String()[:8])
}
