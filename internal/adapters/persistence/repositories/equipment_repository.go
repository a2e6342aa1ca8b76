package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// equipmentRepository implements EquipmentRepository interface
type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

// Create creates a new equipment record
func (r *equipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

// GetByID gets an equipment record by ID
func (r *equipmentRepository) GetByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&equipment).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// List lists all equipment
func (r *equipmentRepository) List(ctx context.Context) ([]*models.Equipment, error) {
	var equipment []*models.Equipment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&equipment).Error
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

// ListByBase lists equipment stationed at a base
func (r *equipmentRepository) ListByBase(ctx context.Context, base string) ([]*models.Equipment, error) {
	var equipment []*models.Equipment
	err := r.db.WithContext(ctx).
		Where("base = ?", base).
		Order("created_at DESC").
		Find(&equipment).Error
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

// TotalQuantity sums quantity across equipment rows, optionally for one base
func (r *equipmentRepository) TotalQuantity(ctx context.Context, base string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Equipment{}).
		Select("COALESCE(SUM(quantity), 0)")
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var total int64
	err := query.Scan(&total).Error
	return total, err
}
