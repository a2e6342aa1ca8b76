package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// purchaseRepository implements PurchaseRepository interface
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create creates a new purchase
func (r *purchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// GetByID gets a purchase by ID
func (r *purchaseRepository) GetByID(ctx context.Context, id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// Update updates a purchase
func (r *purchaseRepository) Update(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

// List lists purchases with pagination, newest first
func (r *purchaseRepository) List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error) {
	var purchases []*models.Purchase
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&purchases).Error; err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}

// SumQuantity sums purchased quantity, optionally for one base
func (r *purchaseRepository) SumQuantity(ctx context.Context, base string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Select("COALESCE(SUM(quantity), 0)")
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var total int64
	err := query.Scan(&total).Error
	return total, err
}

// ListRecent lists the latest purchases, optionally for one base
func (r *purchaseRepository) ListRecent(ctx context.Context, base string, limit int) ([]*models.Purchase, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var purchases []*models.Purchase
	if err := query.Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
