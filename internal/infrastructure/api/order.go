package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// OrderAPI implements ports.OrderGateway.
type OrderAPI struct {
	c *Client
}

func NewOrderAPI(c *Client) *OrderAPI { return &OrderAPI{c: c} }

func (a *OrderAPI) Create(ctx context.Context, token string, input ports.CreateOrderInput) (*domain.Order, error) {
	var order domain.Order
	_, err := a.c.do(ctx, "orders_create", http.MethodPost, "/api/orders", token, input, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderAPI) List(ctx context.Context, token string, filter ports.ListOrdersFilter) (*ports.OrderPage, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.StoreID > 0 {
		q.Set("storeId", strconv.FormatInt(filter.StoreID, 10))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	path := "/api/orders"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ports.OrderPage
	_, err := a.c.do(ctx, "orders_list", http.MethodGet, path, token, nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *OrderAPI) Get(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var order domain.Order
	_, err := a.c.do(ctx, "orders_get", http.MethodGet, fmt.Sprintf("/api/orders/%d", id), token, nil, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderAPI) Cancel(ctx context.Context, token string, id int64) error {
	_, err := a.c.do(ctx, "orders_cancel", http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", id), token, nil, nil)
	return err
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (a *OrderAPI) UpdateStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) error {
	path := fmt.Sprintf("/api/orders/%d/status", id)
	_, err := a.c.do(ctx, "orders_status", http.MethodPut, path, token, updateStatusRequest{Status: status}, nil)
	return err
}

func (a *OrderAPI) Receipt(ctx context.Context, token string, id int64) (*domain.CargoReceipt, error) {
	var receipt domain.CargoReceipt
	path := fmt.Sprintf("/api/orders/%d/receipt", id)
	_, err := a.c.do(ctx, "orders_receipt", http.MethodGet, path, token, nil, &receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (a *OrderAPI) GenerateQRLabels(ctx context.Context, token string, id int64) ([]domain.QRLabel, error) {
	var labels []domain.QRLabel
	path := fmt.Sprintf("/api/orders/%d/qr", id)
	_, err := a.c.do(ctx, "orders_qr", http.MethodPost, path, token, nil, &labels)
	if err != nil {
		return nil, err
	}
	return labels, nil
}

type scanRequest struct {
	Code string `json:"code"`
}

func (a *OrderAPI) ScanQRLabel(ctx context.Context, token string, code string) (*domain.QRLabel, error) {
	var label domain.QRLabel
	_, err := a.c.do(ctx, "orders_qr_scan", http.MethodPost, "/api/orders/qr/scan", token, scanRequest{Code: code}, &label)
	if err != nil {
		return nil, err
	}
	return &label, nil
}
