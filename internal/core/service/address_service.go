package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/pkg/validate"
)

// AddressService manages the delivery addresses of the session's store.
// Required fields are validated before any request is issued.
type AddressService struct {
	gw      ports.AddressGateway
	session ports.SessionReader
	log     zerolog.Logger
}

func NewAddressService(gw ports.AddressGateway, session ports.SessionReader, log zerolog.Logger) *AddressService {
	return &AddressService{gw: gw, session: session, log: log}
}

func (s *AddressService) List(ctx context.Context) ([]domain.StoreAddress, error) {
	token, storeID, err := s.storeScope()
	if err != nil {
		return nil, err
	}
	return s.gw.List(ctx, token, storeID)
}

func (s *AddressService) Create(ctx context.Context, input ports.AddressInput) (*domain.StoreAddress, error) {
	token, storeID, err := s.storeScope()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	addr, err := s.gw.Create(ctx, token, storeID, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("address_id", addr.ID).Str("title", addr.Title).Msg("address created")
	return addr, nil
}

func (s *AddressService) Update(ctx context.Context, id int64, input ports.AddressInput) (*domain.StoreAddress, error) {
	token, _, err := s.storeScope()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	return s.gw.Update(ctx, token, id, input)
}

func (s *AddressService) Delete(ctx context.Context, id int64) error {
	token, _, err := s.storeScope()
	if err != nil {
		return err
	}
	return s.gw.Delete(ctx, token, id)
}

// storeScope resolves the token and store id of the current session.
func (s *AddressService) storeScope() (token string, storeID int64, err error) {
	token = s.session.Token()
	if token == "" {
		return "", 0, domain.ErrNotAuthenticated
	}
	user := s.session.User()
	if user == nil || user.Store == nil {
		return "", 0, domain.ErrNoStore
	}
	return token, user.Store.ID, nil
}
