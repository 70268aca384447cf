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

// CatalogAPI implements ports.CatalogGateway.
type CatalogAPI struct {
	c *Client
}

func NewCatalogAPI(c *Client) *CatalogAPI { return &CatalogAPI{c: c} }

func (a *CatalogAPI) Products(ctx context.Context, token string, query ports.ProductQuery) (*ports.ProductPage, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.CollectionID > 0 {
		q.Set("collectionId", strconv.FormatInt(query.CollectionID, 10))
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	path := "/api/products"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page ports.ProductPage
	_, err := a.c.do(ctx, "products", http.MethodGet, path, token, nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *CatalogAPI) Collections(ctx context.Context, token string) ([]domain.Collection, error) {
	var out []domain.Collection
	_, err := a.c.do(ctx, "collections", http.MethodGet, "/api/collections", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) PriceLists(ctx context.Context, token string) ([]domain.PriceList, error) {
	var out []domain.PriceList
	_, err := a.c.do(ctx, "price_lists", http.MethodGet, "/api/price-lists", token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *CatalogAPI) PriceList(ctx context.Context, token string, id int64) (*domain.PriceList, error) {
	var out domain.PriceList
	_, err := a.c.do(ctx, "price_list", http.MethodGet, fmt.Sprintf("/api/price-lists/%d", id), token, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
