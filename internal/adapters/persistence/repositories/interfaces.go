package repositories

import (
	"context"

	"mams-backend/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// BaseRepository defines base repository interface
type BaseRepository interface {
	Create(ctx context.Context, base *models.Base) error
	GetByID(ctx context.Context, id uint) (*models.Base, error)
	GetByName(ctx context.Context, name string) (*models.Base, error)
	List(ctx context.Context) ([]*models.Base, error)
}

// EquipmentRepository defines equipment repository interface.
// An empty base means no base filter, here and below.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	GetByID(ctx context.Context, id uint) (*models.Equipment, error)
	List(ctx context.Context) ([]*models.Equipment, error)
	ListByBase(ctx context.Context, base string) ([]*models.Equipment, error)
	TotalQuantity(ctx context.Context, base string) (int64, error)
}

// TransferRepository defines transfer repository interface
type TransferRepository interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	GetByID(ctx context.Context, id uint) (*models.Transfer, error)
	List(ctx context.Context) ([]*models.Transfer, error)
	SumQuantityByBase(ctx context.Context, column, base string) (int64, error)
	ListRecent(ctx context.Context, base string, limit int) ([]*models.Transfer, error)
}

// PurchaseRepository defines purchase repository interface
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	GetByID(ctx context.Context, id uint) (*models.Purchase, error)
	Update(ctx context.Context, purchase *models.Purchase) error
	List(ctx context.Context, offset, limit int) ([]*models.Purchase, int64, error)
	SumQuantity(ctx context.Context, base string) (int64, error)
	ListRecent(ctx context.Context, base string, limit int) ([]*models.Purchase, error)
}

// AssignmentRepository defines assignment repository interface
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uint) (*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	List(ctx context.Context, offset, limit int) ([]*models.Assignment, int64, error)
	CountByStatus(ctx context.Context, status, base string) (int64, error)
	ListRecent(ctx context.Context, base string, limit int) ([]*models.Assignment, error)
}

// ExpenditureRepository defines expenditure repository interface
type ExpenditureRepository interface {
	Create(ctx context.Context, expenditure *models.Expenditure) error
	List(ctx context.Context, offset, limit int) ([]*models.Expenditure, int64, error)
	SumQuantity(ctx context.Context, base string) (int64, error)
	ListRecent(ctx context.Context, base string, limit int) ([]*models.Expenditure, error)
}
