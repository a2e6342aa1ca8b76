package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// expenditureRepository implements ExpenditureRepository interface
type expenditureRepository struct {
	db *gorm.DB
}

// NewExpenditureRepository creates a new expenditure repository
func NewExpenditureRepository(db *gorm.DB) ExpenditureRepository {
	return &expenditureRepository{db: db}
}

// Create creates a new expenditure
func (r *expenditureRepository) Create(ctx context.Context, expenditure *models.Expenditure) error {
	return r.db.WithContext(ctx).Create(expenditure).Error
}

// List lists expenditures with pagination, newest first
func (r *expenditureRepository) List(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error) {
	var expenditures []*models.Expenditure
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Expenditure{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenditures).Error; err != nil {
		return nil, 0, err
	}

	return expenditures, total, nil
}

// SumQuantity sums expended quantity, optionally for one base
func (r *expenditureRepository) SumQuantity(ctx context.Context, base string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Expenditure{}).
		Select("COALESCE(SUM(quantity), 0)")
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var total int64
	err := query.Scan(&total).Error
	return total, err
}

// ListRecent lists the latest expenditures, optionally for one base
func (r *expenditureRepository) ListRecent(ctx context.Context, base string, limit int) ([]*models.Expenditure, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var expenditures []*models.Expenditure
	if err := query.Find(&expenditures).Error; err != nil {
		return nil, err
	}
	return expenditures, nil
}
