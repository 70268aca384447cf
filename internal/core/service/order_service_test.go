package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub order gateway
// ---------------------------------------------------------------------------

type stubOrderGateway struct {
	orders      map[int64]*domain.Order
	createCalls int
	statusCalls []int64
	cancelCalls []int64
	statusErrBy map[int64]error
}

func newStubOrderGateway(orders ...*domain.Order) *stubOrderGateway {
	g := &stubOrderGateway{
		orders:      make(map[int64]*domain.Order),
		statusErrBy: make(map[int64]error),
	}
	for _, o := range orders {
		clone := *o
		g.orders[o.ID] = &clone
	}
	return g
}

func (g *stubOrderGateway) Create(_ context.Context, _ string, input ports.CreateOrderInput) (*domain.Order, error) {
	g.createCalls++
	return &domain.Order{ID: 100, Number: "EV-100", Status: domain.OrderPending, Installments: input.Installments}, nil
}

func (g *stubOrderGateway) List(_ context.Context, _ string, filter ports.ListOrdersFilter) (*ports.OrderPage, error) {
	var items []domain.Order
	for _, o := range g.orders {
		if filter.StoreID > 0 && o.StoreID != filter.StoreID {
			continue
		}
		items = append(items, *o)
	}
	return &ports.OrderPage{Items: items, Page: filter.Page, TotalPages: 1, TotalCount: len(items)}, nil
}

func (g *stubOrderGateway) Get(_ context.Context, _ string, id int64) (*domain.Order, error) {
	o, ok := g.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (g *stubOrderGateway) Cancel(_ context.Context, _ string, id int64) error {
	g.cancelCalls = append(g.cancelCalls, id)
	g.orders[id].Status = domain.OrderCancelled
	return nil
}

func (g *stubOrderGateway) UpdateStatus(_ context.Context, _ string, id int64, status domain.OrderStatus) error {
	if err := g.statusErrBy[id]; err != nil {
		return err
	}
	g.statusCalls = append(g.statusCalls, id)
	g.orders[id].Status = status
	return nil
}

func (g *stubOrderGateway) Receipt(_ context.Context, _ string, id int64) (*domain.CargoReceipt, error) {
	return &domain.CargoReceipt{OrderID: id, Carrier: "Aras Kargo", TrackingNo: "AR123"}, nil
}

func (g *stubOrderGateway) GenerateQRLabels(_ context.Context, _ string, id int64) ([]domain.QRLabel, error) {
	return []domain.QRLabel{{Code: "qr-1", OrderID: id, PackageNo: 1}}, nil
}

func (g *stubOrderGateway) ScanQRLabel(_ context.Context, _ string, code string) (*domain.QRLabel, error) {
	return &domain.QRLabel{Code: code, Scanned: true}, nil
}

func dealerSession() *fakeSession {
	return &fakeSession{token: "tok-1", user: &domain.User{
		ID:   1,
		Role: domain.RoleDealer,
		Store: &domain.Store{
			ID:              3,
			MaxInstallments: 6,
		},
	}}
}

func editorSession() *fakeSession {
	return &fakeSession{token: "tok-2", user: &domain.User{ID: 2, Role: domain.RoleEditor}}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOrderService_CreateValidatesBeforeRequest(t *testing.T) {
	gw := newStubOrderGateway()
	svc := NewOrderService(gw, dealerSession(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{AddressID: 1})
	if err == nil {
		t.Fatalf("expected validation error for empty lines")
	}
	if gw.createCalls != 0 {
		t.Fatalf("invalid input must not reach the gateway")
	}
}

func TestOrderService_CreateEnforcesInstallmentLimit(t *testing.T) {
	gw := newStubOrderGateway()
	svc := NewOrderService(gw, dealerSession(), zerolog.Nop())

	input := ports.CreateOrderInput{
		Lines:        []ports.CreateOrderLine{{ProductID: 1, Quantity: 2}},
		AddressID:    1,
		Installments: 12,
	}
	if _, err := svc.Create(context.Background(), input); err == nil {
		t.Fatalf("expected installment limit error")
	}
	if gw.createCalls != 0 {
		t.Fatalf("over-limit installments must not reach the gateway")
	}

	input.Installments = 6
	order, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create at the limit: %v", err)
	}
	if order.ID != 100 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderService_ListScopesDealerToOwnStore(t *testing.T) {
	gw := newStubOrderGateway(
		&domain.Order{ID: 1, StoreID: 3, Status: domain.OrderPending},
		&domain.Order{ID: 2, StoreID: 9, Status: domain.OrderPending},
	)
	svc := NewOrderService(gw, dealerSession(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.ListOrdersFilter{StoreID: 9})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].StoreID != 3 {
		t.Fatalf("dealer must be scoped to its own store, got %+v", page.Items)
	}
}

func TestOrderService_CancelGuardsTransition(t *testing.T) {
	gw := newStubOrderGateway(
		&domain.Order{ID: 1, Status: domain.OrderPending},
		&domain.Order{ID: 2, Status: domain.OrderShipped},
	)
	svc := NewOrderService(gw, dealerSession(), zerolog.Nop())

	if err := svc.Cancel(context.Background(), 1); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	if err := svc.Cancel(context.Background(), 2); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for shipped order, got %v", err)
	}
	if len(gw.cancelCalls) != 1 {
		t.Fatalf("doomed cancel must not reach the gateway")
	}
}

func TestOrderService_UpdateStatusRequiresStaff(t *testing.T) {
	gw := newStubOrderGateway(&domain.Order{ID: 1, Status: domain.OrderPending})
	svc := NewOrderService(gw, dealerSession(), zerolog.Nop())

	if err := svc.UpdateStatus(context.Background(), 1, domain.OrderApproved); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("dealer should not update status, got %v", err)
	}

	svc = NewOrderService(gw, editorSession(), zerolog.Nop())
	if err := svc.UpdateStatus(context.Background(), 1, domain.OrderApproved); err != nil {
		t.Fatalf("editor update: %v", err)
	}
	if gw.orders[1].Status != domain.OrderApproved {
		t.Fatalf("status not applied: %s", gw.orders[1].Status)
	}
}

func TestOrderService_BulkConfirmIsolatesFailures(t *testing.T) {
	gw := newStubOrderGateway(
		&domain.Order{ID: 1, Status: domain.OrderPending},
		&domain.Order{ID: 2, Status: domain.OrderShipped}, // cannot approve
		&domain.Order{ID: 3, Status: domain.OrderPending},
	)
	gw.statusErrBy[3] = &domain.APIError{Status: 500, Message: "Sunucu hatası"}
	svc := NewOrderService(gw, editorSession(), zerolog.Nop())

	result := svc.BulkConfirm(context.Background(), []int64{1, 2, 3, 4})

	if len(result.Succeeded) != 1 || result.Succeeded[0] != 1 {
		t.Fatalf("unexpected successes: %v", result.Succeeded)
	}
	if len(result.Failed) != 3 {
		t.Fatalf("expected 3 failures, got %v", result.Failed)
	}
	for _, f := range result.Failed {
		if f.ID == 3 && f.Message != "Sunucu hatası" {
			t.Fatalf("server message should be surfaced, got %q", f.Message)
		}
	}
	if gw.orders[1].Status != domain.OrderApproved {
		t.Fatalf("order 1 should be approved despite sibling failures")
	}
}

func TestOrderService_RequiresSession(t *testing.T) {
	gw := newStubOrderGateway()
	svc := NewOrderService(gw, &fakeSession{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.ListOrdersFilter{}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := svc.Receipt(context.Background(), 1); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestOrderService_QRLifecycle(t *testing.T) {
	gw := newStubOrderGateway(&domain.Order{ID: 1, Status: domain.OrderPreparing})
	svc := NewOrderService(gw, editorSession(), zerolog.Nop())

	labels, err := svc.GenerateQRLabels(context.Background(), 1)
	if err != nil || len(labels) != 1 {
		t.Fatalf("generate labels: %v %v", labels, err)
	}

	label, err := svc.ScanQRLabel(context.Background(), labels[0].Code)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !label.Scanned {
		t.Fatalf("label should be marked scanned")
	}

	if _, err := svc.ScanQRLabel(context.Background(), ""); err == nil {
		t.Fatalf("empty code should be rejected")
	}
}
