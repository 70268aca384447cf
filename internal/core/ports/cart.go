package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// CartGateway binds the remote cart endpoint.
type CartGateway interface {
	FetchCart(ctx context.Context, token string) (*domain.Cart, error)
}
