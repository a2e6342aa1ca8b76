package repositories

import (
	"context"
	"fmt"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// transferRepository implements TransferRepository interface
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

// Create creates a new transfer
func (r *transferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	return r.db.WithContext(ctx).Create(transfer).Error
}

// GetByID gets a transfer by ID
func (r *transferRepository) GetByID(ctx context.Context, id uint) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&transfer).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// List lists all transfers, newest first
func (r *transferRepository) List(ctx context.Context) ([]*models.Transfer, error) {
	var transfers []*models.Transfer
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	return transfers, nil
}

// SumQuantityByBase sums transferred quantity where column ("from_base" or
// "to_base") matches the base; an empty base sums every transfer
func (r *transferRepository) SumQuantityByBase(ctx context.Context, column, base string) (int64, error) {
	if column != "from_base" && column != "to_base" {
		return 0, fmt.Errorf("invalid transfer column: %s", column)
	}

	query := r.db.WithContext(ctx).
		Model(&models.Transfer{}).
		Select("COALESCE(SUM(quantity), 0)")
	if base != "" {
		query = query.Where(column+" = ?", base)
	}

	var total int64
	err := query.Scan(&total).Error
	return total, err
}

// ListRecent lists the latest transfers touching a base on either end
func (r *transferRepository) ListRecent(ctx context.Context, base string, limit int) ([]*models.Transfer, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if base != "" {
		query = query.Where("from_base = ? OR to_base = ?", base, base)
	}

	var transfers []*models.Transfer
	if err := query.Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}
