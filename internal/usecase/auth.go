package usecase

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"
)

// AuthGateway is the gateway port for session management. The session itself
// lives in an httpOnly cookie owned by the HTTP client; this layer only sees
// the user profile.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*shared.User, error)
	Register(ctx context.Context, input RegisterInput) (*shared.User, error)
	Me(ctx context.Context) (*shared.User, error)
	Logout(ctx context.Context) error
}

type RegisterInput struct {
	Username    string
	Password    string
	PhoneNumber string
	Address     string
}

type AuthService struct {
	gateway AuthGateway
	logger  *slog.Logger

	mu   sync.RWMutex
	user *shared.User
}

func NewAuthService(gateway AuthGateway, logger *slog.Logger) *AuthService {
	return &AuthService{gateway: gateway, logger: logger}
}

// CurrentUser returns the cached profile; nil when anonymous.
func (s *AuthService) CurrentUser() *shared.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// FetchMe validates the session by loading the profile. A 401 has already
// been retried once after a silent refresh by the gateway; a failure here
// means the visitor is anonymous, not that something is broken.
func (s *AuthService) FetchMe(ctx context.Context) *shared.User {
	user, err := s.gateway.Me(ctx)
	if err != nil {
		s.setUser(nil)
		return nil
	}
	s.setUser(user)
	return user
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*shared.User, error) {
	user, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, errs.Wrap(err, "login failed")
	}
	if user != nil {
		s.setUser(user)
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*shared.User, error) {
	user, err := s.gateway.Register(ctx, input)
	if err != nil {
		return nil, errs.Wrap(err, "registration failed")
	}
	if user != nil {
		s.setUser(user)
	}
	return user, nil
}

// Logout clears the local profile even when the server call fails (the
// session may already be gone).
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.Debug("logout call failed", "error", err)
	}
	s.setUser(nil)
}

func (s *AuthService) setUser(user *shared.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}
