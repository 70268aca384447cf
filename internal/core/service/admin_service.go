package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/pkg/validate"
)

// AdminService wraps the back-office endpoint family. Capability checks run
// client-side so forbidden requests never leave the process; the platform
// enforces them again server-side.
type AdminService struct {
	gw      ports.AdminGateway
	session ports.SessionReader
	log     zerolog.Logger
}

func NewAdminService(gw ports.AdminGateway, session ports.SessionReader, log zerolog.Logger) *AdminService {
	return &AdminService{gw: gw, session: session, log: log}
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	token, err := s.require(domain.Role.IsAdmin)
	if err != nil {
		return nil, err
	}
	return s.gw.Users(ctx, token)
}

func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	token, err := s.require(domain.Role.IsAdmin)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.gw.CreateUser(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *AdminService) SetUserActive(ctx context.Context, id int64, active bool) error {
	token, err := s.require(domain.Role.IsAdmin)
	if err != nil {
		return err
	}
	return s.gw.SetUserActive(ctx, token, id, active)
}

func (s *AdminService) Stores(ctx context.Context) ([]domain.Store, error) {
	token, err := s.require(domain.Role.IsAdminOrEditor)
	if err != nil {
		return nil, err
	}
	return s.gw.Stores(ctx, token)
}

func (s *AdminService) UpdateOpenAccountLimit(ctx context.Context, storeID int64, limit float64) error {
	token, err := s.require(domain.Role.IsAdmin)
	if err != nil {
		return err
	}
	return s.gw.UpdateOpenAccountLimit(ctx, token, storeID, limit)
}

func (s *AdminService) Statistics(ctx context.Context) (*domain.DashboardStats, error) {
	token, err := s.require(domain.Role.IsAdminOrEditor)
	if err != nil {
		return nil, err
	}
	return s.gw.Statistics(ctx, token)
}

func (s *AdminService) AdjustStock(ctx context.Context, input ports.StockAdjustmentInput) (*domain.StockAdjustment, error) {
	token, err := s.require(domain.Role.IsAdminOrEditor)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	adj, err := s.gw.AdjustStock(ctx, token, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("product_id", adj.ProductID).Int("delta", adj.Delta).Msg("stock adjusted")
	return adj, nil
}

// require resolves the token and checks the capability predicate against the
// session role.
func (s *AdminService) require(capability func(domain.Role) bool) (string, error) {
	token := s.session.Token()
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}
	user := s.session.User()
	if user == nil || !capability(user.Role) {
		return "", domain.ErrForbidden
	}
	return token, nil
}
