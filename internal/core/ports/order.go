package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// CreateOrderLine is one requested product position.
type CreateOrderLine struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"  validate:"required,gt=0"`
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	Lines        []CreateOrderLine `json:"items"     validate:"required,min=1,dive"`
	AddressID    int64             `json:"addressId" validate:"required,gt=0"`
	Installments int               `json:"installments" validate:"gte=0"`
	Note         string            `json:"note"`
}

// ListOrdersFilter narrows an order listing.
type ListOrdersFilter struct {
	Status  domain.OrderStatus
	StoreID int64
	Page    int
	Limit   int
}

// OrderPage is one page of orders plus pagination metadata.
type OrderPage struct {
	Items      []domain.Order `json:"orders"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	TotalCount int            `json:"totalCount"`
}

// OrderGateway binds the remote order endpoints.
type OrderGateway interface {
	Create(ctx context.Context, token string, input CreateOrderInput) (*domain.Order, error)
	List(ctx context.Context, token string, filter ListOrdersFilter) (*OrderPage, error)
	Get(ctx context.Context, token string, id int64) (*domain.Order, error)
	Cancel(ctx context.Context, token string, id int64) error
	UpdateStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) error
	Receipt(ctx context.Context, token string, id int64) (*domain.CargoReceipt, error)
	GenerateQRLabels(ctx context.Context, token string, id int64) ([]domain.QRLabel, error)
	ScanQRLabel(ctx context.Context, token string, code string) (*domain.QRLabel, error)
}
