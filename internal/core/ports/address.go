package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// AddressInput carries a new or updated delivery address. Title, address and
// city are required before any request is issued.
type AddressInput struct {
	Title      string `json:"title"      validate:"required"`
	Address    string `json:"address"    validate:"required"`
	City       string `json:"city"       validate:"required"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// AddressGateway binds the store-address endpoints.
type AddressGateway interface {
	List(ctx context.Context, token string, storeID int64) ([]domain.StoreAddress, error)
	Create(ctx context.Context, token string, storeID int64, input AddressInput) (*domain.StoreAddress, error)
	Update(ctx context.Context, token string, id int64, input AddressInput) (*domain.StoreAddress, error)
	Delete(ctx context.Context, token string, id int64) error
}
