package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// CatalogService exposes product, collection and price-list browsing. Price
// data is withheld from sessions without the price capability.
type CatalogService struct {
	gw      ports.CatalogGateway
	session ports.SessionReader
	log     zerolog.Logger
}

func NewCatalogService(gw ports.CatalogGateway, session ports.SessionReader, log zerolog.Logger) *CatalogService {
	return &CatalogService{gw: gw, session: session, log: log}
}

// Products pages the catalog. When the session may not view prices, price
// fields are blanked before the page is returned.
func (s *CatalogService) Products(ctx context.Context, q ports.ProductQuery) (*ports.ProductPage, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}

	page, err := s.gw.Products(ctx, token, q)
	if err != nil {
		return nil, err
	}

	if !s.canSeePrice() {
		for i := range page.Items {
			page.Items[i].Price = 0
			page.Items[i].Currency = ""
		}
	}
	return page, nil
}

func (s *CatalogService) Collections(ctx context.Context) ([]domain.Collection, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.gw.Collections(ctx, token)
}

// PriceLists is price data through and through, so it requires the price
// capability outright.
func (s *CatalogService) PriceLists(ctx context.Context) ([]domain.PriceList, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if !s.canSeePrice() {
		return nil, domain.ErrForbidden
	}
	return s.gw.PriceLists(ctx, token)
}

func (s *CatalogService) PriceList(ctx context.Context, id int64) (*domain.PriceList, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if !s.canSeePrice() {
		return nil, domain.ErrForbidden
	}
	return s.gw.PriceList(ctx, token, id)
}

func (s *CatalogService) canSeePrice() bool {
	user := s.session.User()
	return user != nil && user.CanSeePrice
}
