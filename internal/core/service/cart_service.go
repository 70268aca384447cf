package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// CartService keeps a single integer — the distinct line-item count of the
// remote cart — in sync for display in navigation chrome. Failures are fully
// silent: the worst case is a stale or zero count that self-corrects on the
// next trigger.
type CartService struct {
	gw      ports.CartGateway
	session ports.SessionReader
	log     zerolog.Logger

	mu    sync.Mutex
	count int
}

func NewCartService(gw ports.CartGateway, session ports.SessionReader, log zerolog.Logger) *CartService {
	return &CartService{gw: gw, session: session, log: log}
}

// Refresh recomputes the count from the remote cart. Without a session the
// count is zero and no request is issued.
func (s *CartService) Refresh(ctx context.Context) {
	token := s.session.Token()
	if token == "" {
		s.setCount(0)
		return
	}

	cart, err := s.gw.FetchCart(ctx, token)
	if err != nil {
		s.log.Debug().Err(err).Msg("cart refresh failed, resetting count")
		s.setCount(0)
		return
	}

	s.setCount(cart.ItemCount())
}

// OnSessionChanged reacts to login/logout/expiry. Wire it to
// SessionService.OnSessionChange.
func (s *CartService) OnSessionChanged(u *domain.User) {
	if u == nil {
		s.setCount(0)
		return
	}
	s.Refresh(context.Background())
}

// OnVisible refreshes when the embedding surface regains focus while a
// session exists.
func (s *CartService) OnVisible(ctx context.Context) {
	if s.session.Token() == "" {
		return
	}
	s.Refresh(ctx)
}

// Count returns the last computed distinct line-item count.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *CartService) setCount(n int) {
	s.mu.Lock()
	s.count = n
	s.mu.Unlock()
}
