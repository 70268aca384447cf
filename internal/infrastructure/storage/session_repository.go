package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
)

// Raw key names shared with the original browser client. The remember marker
// lives only in the durable tier; its presence selects which tier is
// authoritative at load time.
const (
	keyUser     = "user"
	keyToken    = "token"
	keyUserType = "userType"
	keyCurrency = "currency"
	keyRemember = "rememberMe"
)

// SessionRepository implements ports.SessionRepository over two KV tiers.
type SessionRepository struct {
	durable ports.KVStore
	scoped  ports.KVStore
}

func NewSessionRepository(durable, scoped ports.KVStore) *SessionRepository {
	return &SessionRepository{durable: durable, scoped: scoped}
}

func (r *SessionRepository) Save(ctx context.Context, state ports.SessionState) error {
	tier := r.scoped
	if state.Remember {
		tier = r.durable
	}

	raw, err := json.Marshal(state.User)
	if err != nil {
		return fmt.Errorf("session: marshal user: %w", err)
	}

	if err := tier.Set(ctx, keyUser, string(raw)); err != nil {
		return err
	}
	if err := tier.Set(ctx, keyToken, state.Token); err != nil {
		return err
	}
	if err := tier.Set(ctx, keyUserType, string(state.User.Role)); err != nil {
		return err
	}
	if err := tier.Set(ctx, keyCurrency, state.Currency); err != nil {
		return err
	}

	if state.Remember {
		return r.durable.Set(ctx, keyRemember, "true")
	}
	// Remember-me off: the durable marker must not survive, or the next
	// load would look at the wrong tier.
	return r.durable.Delete(ctx, keyRemember)
}

func (r *SessionRepository) Load(ctx context.Context) (*ports.SessionState, error) {
	remember := false
	if v, err := r.durable.Get(ctx, keyRemember); err == nil && v == "true" {
		remember = true
	}

	tier := r.scoped
	if remember {
		tier = r.durable
	}

	rawUser, err := tier.Get(ctx, keyUser)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	token, err := tier.Get(ctx, keyToken)
	if errors.Is(err, domain.ErrKeyNotFound) {
		token = ""
	} else if err != nil {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		// Corrupt payload: wipe everything rather than limp along with a
		// half-restored identity.
		_ = r.Clear(ctx)
		return nil, fmt.Errorf("session: parse user: %w", err)
	}

	currency, err := tier.Get(ctx, keyCurrency)
	if err != nil {
		currency = domain.DefaultCurrency
	}

	return &ports.SessionState{
		User:     user,
		Token:    token,
		Currency: currency,
		Remember: remember,
	}, nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	errDurable := r.durable.Clear(ctx)
	errScoped := r.scoped.Clear(ctx)
	if errDurable != nil {
		return errDurable
	}
	return errScoped
}
