package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// assignmentRepository implements AssignmentRepository interface
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create creates a new assignment
func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// GetByID gets an assignment by ID
func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Update updates an assignment
func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

// List lists assignments with pagination, newest first
func (r *assignmentRepository) List(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error) {
	var assignments []*models.Assignment
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Assignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&assignments).Error; err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}

// CountByStatus counts assignments in a given status, optionally for one base
func (r *assignmentRepository) CountByStatus(ctx context.Context, status, base string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Assignment{}).
		Where("status = ?", status)
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ListRecent lists the latest assignments, optionally for one base
func (r *assignmentRepository) ListRecent(ctx context.Context, base string, limit int) ([]*models.Assignment, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if base != "" {
		query = query.Where("base = ?", base)
	}

	var assignments []*models.Assignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
