package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// ProductQuery narrows a catalog listing.
type ProductQuery struct {
	Search       string
	CollectionID int64
	Page         int
	Limit        int
}

// ProductPage is one page of products plus pagination metadata.
type ProductPage struct {
	Items      []domain.Product `json:"products"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalCount int              `json:"totalCount"`
}

// CatalogGateway binds the product, collection and price-list endpoints.
type CatalogGateway interface {
	Products(ctx context.Context, token string, q ProductQuery) (*ProductPage, error)
	Collections(ctx context.Context, token string) ([]domain.Collection, error)
	PriceLists(ctx context.Context, token string) ([]domain.PriceList, error)
	PriceList(ctx context.Context, token string, id int64) (*domain.PriceList, error)
}
