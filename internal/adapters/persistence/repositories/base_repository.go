package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// baseRepository implements BaseRepository interface
type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *gorm.DB) BaseRepository {
	return &baseRepository{db: db}
}

// Create creates a new base
func (r *baseRepository) Create(ctx context.Context, base *models.Base) error {
	return r.db.WithContext(ctx).Create(base).Error
}

// GetByID gets a base by ID
func (r *baseRepository) GetByID(ctx context.Context, id uint) (*models.Base, error) {
	var base models.Base
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&base).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// GetByName gets a base by name
func (r *baseRepository) GetByName(ctx context.Context, name string) (*models.Base, error) {
	var base models.Base
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&base).Error
	if err != nil {
		return nil, err
	}
	return &base, nil
}

// List lists all bases
func (r *baseRepository) List(ctx context.Context) ([]*models.Base, error) {
	var bases []*models.Base
	err := r.db.WithContext(ctx).Order("name ASC").Find(&bases).Error
	if err != nil {
		return nil, err
	}
	return bases, nil
}
