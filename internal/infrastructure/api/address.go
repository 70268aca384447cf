package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// AddressAPI implements ports.AddressGateway.
type AddressAPI struct {
	c *Client
}

func NewAddressAPI(c *Client) *AddressAPI { return &AddressAPI{c: c} }

func (a *AddressAPI) List(ctx context.Context, token string, storeID int64) ([]domain.StoreAddress, error) {
	var out []domain.StoreAddress
	path := fmt.Sprintf("/api/store-addresses?storeId=%d", storeID)
	_, err := a.c.do(ctx, "addresses", http.MethodGet, path, token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type createAddressRequest struct {
	StoreID int64 `json:"storeId"`
	ports.AddressInput
}

func (a *AddressAPI) Create(ctx context.Context, token string, storeID int64, input ports.AddressInput) (*domain.StoreAddress, error) {
	var out domain.StoreAddress
	body := createAddressRequest{StoreID: storeID, AddressInput: input}
	_, err := a.c.do(ctx, "addresses_create", http.MethodPost, "/api/store-addresses", token, body, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AddressAPI) Update(ctx context.Context, token string, id int64, input ports.AddressInput) (*domain.StoreAddress, error) {
	var out domain.StoreAddress
	path := fmt.Sprintf("/api/store-addresses/%d", id)
	_, err := a.c.do(ctx, "addresses_update", http.MethodPut, path, token, input, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AddressAPI) Delete(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/store-addresses/%d", id)
	_, err := a.c.do(ctx, "addresses_delete", http.MethodDelete, path, token, nil, nil)
	return err
}
