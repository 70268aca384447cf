package ports

import (
	"context"

	"github.com/evamobilya/dealer-client/internal/core/domain"
)

// KVStore is a flat string key-value tier. Implementations back the durable
// ("remember me") tier, the process-scoped tier, and the optional shared
// Redis tier.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error) // domain.ErrKeyNotFound when absent
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SessionState is everything persisted for a signed-in principal.
type SessionState struct {
	User     domain.User
	Token    string
	Currency string
	Remember bool
}

// SessionRepository is the only component that touches the raw session keys.
// All readers and writers of persisted identity go through it.
type SessionRepository interface {
	// Save persists the state into the tier selected by state.Remember and
	// removes the remember marker from the alternate selection.
	Save(ctx context.Context, state SessionState) error
	// Load rehydrates the session from the tier the remember marker points
	// at. A corrupt payload clears both tiers and returns the parse error.
	// An absent session returns (nil, nil).
	Load(ctx context.Context) (*SessionState, error)
	// Clear wipes both tiers.
	Clear(ctx context.Context) error
}

// SessionReader is the view of the session manager the dependent services
// need: current token and identity, nothing more.
type SessionReader interface {
	Token() string
	User() *domain.User
}
