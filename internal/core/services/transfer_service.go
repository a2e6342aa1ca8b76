package services

import (
	"context"
	"errors"
	"time"

	"mams-backend/internal/adapters/persistence/models"
	"mams-backend/internal/adapters/persistence/repositories"
	"mams-backend/internal/core/domain"

	"gorm.io/gorm"
)

// TransferService handles inter-base transfer logic
type TransferService struct {
	transferRepo repositories.TransferRepository
	baseRepo     repositories.BaseRepository
}

// NewTransferService creates a new transfer service
func NewTransferService(
	transferRepo repositories.TransferRepository,
	baseRepo repositories.BaseRepository,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		baseRepo:     baseRepo,
	}
}

// CreateTransferInput represents transfer creation input
type CreateTransferInput struct {
	EquipmentType   string    `json:"equipment_type"`
	Quantity        int       `json:"quantity"`
	FromBase        string    `json:"from_base"`
	ToBase          string    `json:"to_base"`
	Notes           string    `json:"notes"`
	ExpectedArrival time.Time `json:"expected_arrival"`
}

// Create records a transfer between two bases. Both endpoints must be
// registered bases.
func (s *TransferService) Create(ctx context.Context, input *CreateTransferInput) (*models.Transfer, error) {
	if input.EquipmentType == "" || input.FromBase == "" || input.ToBase == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.FromBase == input.ToBase {
		return nil, domain.ErrSameBaseTransfer
	}

	for _, name := range []string{input.FromBase, input.ToBase} {
		if _, err := s.baseRepo.GetByName(ctx, name); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrBaseNotFound
			}
			return nil, err
		}
	}

	transfer := &models.Transfer{
		EquipmentType:   input.EquipmentType,
		Quantity:        input.Quantity,
		FromBase:        input.FromBase,
		ToBase:          input.ToBase,
		Notes:           input.Notes,
		ExpectedArrival: input.ExpectedArrival,
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

// List returns all transfers, newest first
func (s *TransferService) List(ctx context.Context) ([]*models.Transfer, error) {
	return s.transferRepo.List(ctx)
}
