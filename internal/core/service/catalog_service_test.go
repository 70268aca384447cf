package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

type stubCatalogGateway struct {
	products   []domain.Product
	priceLists []domain.PriceList
	listCalls  int
}

func (g *stubCatalogGateway) Products(_ context.Context, _ string, q ports.ProductQuery) (*ports.ProductPage, error) {
	items := append([]domain.Product(nil), g.products...)
	return &ports.ProductPage{Items: items, Page: q.Page, TotalPages: 1, TotalCount: len(items)}, nil
}

func (g *stubCatalogGateway) Collections(_ context.Context, _ string) ([]domain.Collection, error) {
	return []domain.Collection{{ID: 1, Name: "Yatak Odası"}}, nil
}

func (g *stubCatalogGateway) PriceLists(_ context.Context, _ string) ([]domain.PriceList, error) {
	g.listCalls++
	return g.priceLists, nil
}

func (g *stubCatalogGateway) PriceList(_ context.Context, _ string, id int64) (*domain.PriceList, error) {
	for i := range g.priceLists {
		if g.priceLists[i].ID == id {
			return &g.priceLists[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func priceCatalog() *stubCatalogGateway {
	return &stubCatalogGateway{
		products: []domain.Product{
			{ID: 1, SKU: "KOLTUK-01", Name: "Koltuk", Price: 12999.90, Currency: "TRY"},
			{ID: 2, SKU: "MASA-02", Name: "Masa", Price: 4599.50, Currency: "TRY"},
		},
		priceLists: []domain.PriceList{{ID: 5, Name: "Bayi 2026", Currency: "TRY"}},
	}
}

func TestCatalogService_ProductsKeepPricesForEntitledSession(t *testing.T) {
	session := &fakeSession{token: "tok-1", user: &domain.User{ID: 1, Role: domain.RoleDealer, CanSeePrice: true}}
	svc := NewCatalogService(priceCatalog(), session, zerolog.Nop())

	page, err := svc.Products(context.Background(), ports.ProductQuery{})
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if page.Items[0].Price == 0 || page.Items[0].Currency == "" {
		t.Fatalf("prices should be visible: %+v", page.Items[0])
	}
}

func TestCatalogService_ProductsBlankPricesWithoutCapability(t *testing.T) {
	session := &fakeSession{token: "tok-1", user: &domain.User{ID: 1, Role: domain.RoleDealer, CanSeePrice: false}}
	svc := NewCatalogService(priceCatalog(), session, zerolog.Nop())

	page, err := svc.Products(context.Background(), ports.ProductQuery{})
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	for _, p := range page.Items {
		if p.Price != 0 || p.Currency != "" {
			t.Fatalf("price fields must be blanked: %+v", p)
		}
	}
}

func TestCatalogService_PriceListsRequireCapability(t *testing.T) {
	gw := priceCatalog()
	session := &fakeSession{token: "tok-1", user: &domain.User{ID: 1, Role: domain.RoleDealer, CanSeePrice: false}}
	svc := NewCatalogService(gw, session, zerolog.Nop())

	if _, err := svc.PriceLists(context.Background()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.PriceList(context.Background(), 5); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if gw.listCalls != 0 {
		t.Fatalf("forbidden request must not reach the gateway")
	}

	session.user.CanSeePrice = true
	lists, err := svc.PriceLists(context.Background())
	if err != nil || len(lists) != 1 {
		t.Fatalf("entitled session should see price lists: %v %v", lists, err)
	}
}
