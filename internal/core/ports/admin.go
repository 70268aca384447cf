package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// CreateUserInput carries a new back-office or dealer user.
type CreateUserInput struct {
	Username  string `json:"username"  validate:"required"`
	Password  string `json:"password"  validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	UserType  string `json:"userType"  validate:"required,oneof=admin editor viewer dealer"`
	StoreID   int64  `json:"storeId"`
}

// StockAdjustmentInput records a manual stock change.
type StockAdjustmentInput struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Delta     int    `json:"delta"     validate:"required"`
	Reason    string `json:"reason"    validate:"required"`
}

// AdminGateway binds the /api/admin endpoint family.
type AdminGateway interface {
	Users(ctx context.Context, token string) ([]domain.User, error)
	CreateUser(ctx context.Context, token string, input CreateUserInput) (*domain.User, error)
	SetUserActive(ctx context.Context, token string, id int64, active bool) error
	Stores(ctx context.Context, token string) ([]domain.Store, error)
	UpdateOpenAccountLimit(ctx context.Context, token string, storeID int64, limit float64) error
	Statistics(ctx context.Context, token string) (*domain.DashboardStats, error)
	AdjustStock(ctx context.Context, token string, input StockAdjustmentInput) (*domain.StockAdjustment, error)
}
