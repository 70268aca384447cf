package api

import (
	"context"
	"net/http"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// CartAPI implements ports.CartGateway.
type CartAPI struct {
	c *Client
}

func NewCartAPI(c *Client) *CartAPI { return &CartAPI{c: c} }

func (a *CartAPI) FetchCart(ctx context.Context, token string) (*domain.Cart, error) {
	var cart domain.Cart
	_, err := a.c.do(ctx, "cart", http.MethodGet, "/api/cart", token, nil, &cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
