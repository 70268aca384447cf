package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// AdminAPI implements ports.AdminGateway.
type AdminAPI struct {
	c *Client
}

func NewAdminAPI(c *Client) *AdminAPI { return &AdminAPI{c: c} }

func (a *AdminAPI) Users(ctx context.Context, token string) ([]domain.User, error) {
	var out []domain.User
	_, err := a.c.do(ctx, "admin_users", http.MethodGet, "/api/admin/users", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) CreateUser(ctx context.Context, token string, input ports.CreateUserInput) (*domain.User, error) {
	var out domain.User
	_, err := a.c.do(ctx, "admin_users_create", http.MethodPost, "/api/admin/users", token, input, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type setActiveRequest struct {
	IsActive bool `json:"isActive"`
}

func (a *AdminAPI) SetUserActive(ctx context.Context, token string, id int64, active bool) error {
	path := fmt.Sprintf("/api/admin/users/%d/active", id)
	_, err := a.c.do(ctx, "admin_users_active", http.MethodPut, path, token, setActiveRequest{IsActive: active}, nil)
	return err
}

func (a *AdminAPI) Stores(ctx context.Context, token string) ([]domain.Store, error) {
	var out []domain.Store
	_, err := a.c.do(ctx, "admin_stores", http.MethodGet, "/api/admin/stores", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type openAccountRequest struct {
	Limit float64 `json:"openAccountLimit"`
}

func (a *AdminAPI) UpdateOpenAccountLimit(ctx context.Context, token string, storeID int64, limit float64) error {
	path := fmt.Sprintf("/api/admin/stores/%d/open-account", storeID)
	_, err := a.c.do(ctx, "admin_open_account", http.MethodPut, path, token, openAccountRequest{Limit: limit}, nil)
	return err
}

func (a *AdminAPI) Statistics(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	_, err := a.c.do(ctx, "admin_statistics", http.MethodGet, "/api/admin/statistics", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminAPI) AdjustStock(ctx context.Context, token string, input ports.StockAdjustmentInput) (*domain.StockAdjustment, error) {
	var out domain.StockAdjustment
	_, err := a.c.do(ctx, "admin_stock", http.MethodPost, "/api/admin/stock-adjustments", token, input, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
