package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/pkg/validate"
)

// BulkFailure records one order that could not be confirmed.
type BulkFailure struct {
	ID      int64
	Message string
}

// BulkResult summarises a bulk confirmation: every unit is attempted
// independently, one failure never aborts the rest.
type BulkResult struct {
	Succeeded []int64
	Failed    []BulkFailure
}

// OrderService drives order placement and fulfillment against the platform.
type OrderService struct {
	gw      ports.OrderGateway
	session ports.SessionReader
	log     zerolog.Logger
}

func NewOrderService(gw ports.OrderGateway, session ports.SessionReader, log zerolog.Logger) *OrderService {
	return &OrderService{gw: gw, session: session, log: log}
}

// Create validates and places a new order. Installments are bounded by the
// store's maximum before the request goes out.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	if user := s.session.User(); user != nil && user.Store != nil {
		if input.Installments > user.Store.MaxInstallments {
			return nil, fmt.Errorf("installments exceed store maximum of %d", user.Store.MaxInstallments)
		}
	}

	order, err := s.gw.Create(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("order_id", order.ID).Str("number", order.Number).Msg("order created")
	return order, nil
}

// List pages orders. Dealer sessions are scoped to their own store
// regardless of the filter they pass.
func (s *OrderService) List(ctx context.Context, filter ports.ListOrdersFilter) (*ports.OrderPage, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	if user := s.session.User(); user != nil && user.Role.IsDealer() && user.Store != nil {
		filter.StoreID = user.Store.ID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	return s.gw.List(ctx, token, filter)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.gw.Get(ctx, token, id)
}

// Cancel verifies the order may still be cancelled before issuing the
// request.
func (s *OrderService) Cancel(ctx context.Context, id int64) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	order, err := s.gw.Get(ctx, token, id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(domain.OrderCancelled) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, domain.OrderCancelled)
	}

	return s.gw.Cancel(ctx, token, id)
}

// UpdateStatus advances an order through its lifecycle. Staff only; the
// transition table is checked client-side so a doomed request never leaves
// the process.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, next domain.OrderStatus) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}
	if user := s.session.User(); user == nil || !user.Role.IsAdminOrEditor() {
		return domain.ErrForbidden
	}

	order, err := s.gw.Get(ctx, token, id)
	if err != nil {
		return err
	}
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	return s.gw.UpdateStatus(ctx, token, id, next)
}

// BulkConfirm approves a batch of pending orders. Successes and failures
// are both accumulated; each unit is attempted independently.
func (s *OrderService) BulkConfirm(ctx context.Context, ids []int64) BulkResult {
	var result BulkResult
	for _, id := range ids {
		if err := s.UpdateStatus(ctx, id, domain.OrderApproved); err != nil {
			msg := err.Error()
			if apiMsg, ok := domain.APIMessage(err); ok {
				msg = apiMsg
			}
			result.Failed = append(result.Failed, BulkFailure{ID: id, Message: msg})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	s.log.Info().Int("succeeded", len(result.Succeeded)).Int("failed", len(result.Failed)).Msg("bulk confirmation finished")
	return result
}

// Receipt fetches the printable cargo receipt for an order.
func (s *OrderService) Receipt(ctx context.Context, id int64) (*domain.CargoReceipt, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.gw.Receipt(ctx, token, id)
}

// GenerateQRLabels requests fulfillment labels for every package of an
// order.
func (s *OrderService) GenerateQRLabels(ctx context.Context, id int64) ([]domain.QRLabel, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.gw.GenerateQRLabels(ctx, token, id)
}

// ScanQRLabel reports a label scan during fulfillment and returns its
// updated state.
func (s *OrderService) ScanQRLabel(ctx context.Context, code string) (*domain.QRLabel, error) {
	token := s.session.Token()
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}
	return s.gw.ScanQRLabel(ctx, token, code)
}
