package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/pkg/events"
	"github.com/evamobilya/dealer-client/internal/pkg/metrics"
)

// User-facing messages, matching the platform's locale.
const (
	msgLoginSuccess  = "Giriş başarılı"
	msgLoginFailed   = "Kullanıcı adı veya şifre hatalı"
	msgLogoutSuccess = "Çıkış yapıldı"
	msgConnError     = "Bağlantı hatası, lütfen daha sonra tekrar deneyin"
)

// AuthResult is the outcome of a login or logout attempt, carrying a message
// suitable for direct display.
type AuthResult struct {
	Success bool
	Message string
}

// SessionService is the single source of truth for who is signed in, with
// what role and token. It alone clears session storage wholesale; every
// other component observes it through SessionReader or OnSessionChange.
type SessionService struct {
	auth ports.AuthGateway
	repo ports.SessionRepository
	log  zerolog.Logger

	mu          sync.Mutex
	user        *domain.User
	token       string
	currency    string
	loading     bool
	watchers    map[int]func(*domain.User)
	nextWatcher int
}

// NewSessionService wires the service and subscribes its expiry handler to
// the bus, so any authenticated call that hits a rejected token forces a
// clean local logout.
func NewSessionService(auth ports.AuthGateway, repo ports.SessionRepository, expiry *events.ExpiryBus, log zerolog.Logger) *SessionService {
	s := &SessionService{
		auth:     auth,
		repo:     repo,
		log:      log,
		watchers: make(map[int]func(*domain.User)),
	}
	expiry.Subscribe(s.HandleTokenExpiry)
	return s
}

// Initialize rehydrates a persisted session. Invoked once at startup; the
// loading flag is observable for the duration. A corrupt or expired session
// leaves both tiers empty rather than a half-restored identity.
func (s *SessionService) Initialize(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	state, err := s.repo.Load(ctx)
	if err != nil {
		// Load already cleared both tiers on a parse failure.
		s.log.Warn().Err(err).Msg("session restore failed, starting signed out")
		return
	}
	if state == nil {
		return
	}

	if tokenExpired(state.Token) {
		s.log.Info().Msg("restored token already expired, clearing session")
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear expired session")
		}
		return
	}

	s.mu.Lock()
	user := state.User
	s.user = &user
	s.token = state.Token
	s.currency = state.Currency
	s.mu.Unlock()

	s.notifyWatchers()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("session restored")
}

// Login exchanges credentials for a session and persists it into the tier
// selected by remember. A failed login leaves storage untouched.
func (s *SessionService) Login(ctx context.Context, username, password string, remember bool) AuthResult {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.auth.Login(ctx, username, password)
	if err != nil {
		if msg, ok := domain.APIMessage(err); ok {
			return AuthResult{Success: false, Message: msg}
		}
		s.log.Warn().Err(err).Str("username", username).Msg("login request failed")
		return AuthResult{Success: false, Message: msgConnError}
	}
	if payload.Token == "" {
		return AuthResult{Success: false, Message: msgLoginFailed}
	}

	user := buildUser(payload.User)
	currency := domain.DefaultCurrency
	if user.Store != nil && user.Store.Currency != "" {
		currency = user.Store.Currency
	}

	state := ports.SessionState{
		User:     user,
		Token:    payload.Token,
		Currency: currency,
		Remember: remember,
	}
	if err := s.repo.Save(ctx, state); err != nil {
		// In-memory session still works; persistence catches up on the
		// next login.
		s.log.Error().Err(err).Msg("failed to persist session")
	}

	s.mu.Lock()
	s.user = &user
	s.token = payload.Token
	s.currency = currency
	s.mu.Unlock()

	s.notifyWatchers()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Bool("remember", remember).Msg("logged in")
	return AuthResult{Success: true, Message: msgLoginSuccess}
}

// Logout invalidates the token remotely (best effort) and unconditionally
// clears local state and both storage tiers.
func (s *SessionService) Logout(ctx context.Context) AuthResult {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	result := AuthResult{Success: true, Message: msgLogoutSuccess}
	if token != "" {
		msg, err := s.auth.Logout(ctx, token)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("remote logout failed, clearing local session anyway")
			result = AuthResult{Success: false, Message: msgConnError}
			if apiMsg, ok := domain.APIMessage(err); ok {
				result.Message = apiMsg
			}
		case msg != "":
			result.Message = msg
		}
	}

	s.clearSession(ctx)
	return result
}

// HandleTokenExpiry clears local state and both tiers without calling the
// remote logout endpoint. Safe to invoke with no session present.
func (s *SessionService) HandleTokenExpiry() {
	s.clearSession(context.Background())
	metrics.SessionExpiriesTotal.Inc()
}

func (s *SessionService) clearSession(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.currency = ""
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session storage")
	}
	s.notifyWatchers()
}

// User returns a copy of the current identity, or nil when signed out.
func (s *SessionService) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionService) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// Role returns the current role classifier; the zero Role answers false to
// every capability query.
func (s *SessionService) Role() domain.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// Loading reports whether initialization or an auth call is in flight.
func (s *SessionService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// OnSessionChange registers fn to run whenever the identity changes (login,
// logout, expiry, restore). fn receives the new identity, nil when signed
// out. The returned function removes the registration.
func (s *SessionService) OnSessionChange(fn func(*domain.User)) func() {
	s.mu.Lock()
	id := s.nextWatcher
	s.nextWatcher++
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *SessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *SessionService) notifyWatchers() {
	s.mu.Lock()
	var user *domain.User
	if s.user != nil {
		clone := *s.user
		user = &clone
	}
	fns := make([]func(*domain.User), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}

// buildUser maps the wire payload to a domain identity, applying the
// platform defaults: CanSeePrice is true unless explicitly disabled.
func buildUser(p ports.UserPayload) domain.User {
	canSeePrice := true
	if p.CanSeePrice != nil {
		canSeePrice = *p.CanSeePrice
	}

	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}

	return domain.User{
		ID:           p.ID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		Phone:        p.Phone,
		IsActive:     p.IsActive,
		CreatedAt:    createdAt,
		ProfileImage: p.ProfileImage,
		Role:         domain.ParseRole(p.UserType),
		RoleID:       p.RoleID,
		CanSeePrice:  canSeePrice,
		Store:        p.Store,
	}
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Opaque tokens pass through
// and are rejected reactively on first use.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
