package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/artem13815/resumeboost/pkg/metrics"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Signup(ctx context.Context, email, username, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	// Authenticate resolves the user behind a bearer token. Unknown, revoked
	// and stale tokens all yield ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (User, error)
	Logout(ctx context.Context, token string) error
}

type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type authService struct {
	repo     UserRepository
	sessions SessionStore
	hasher   PasswordHasher
	clock    clockwork.Clock
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, sessions SessionStore, hasher PasswordHasher, clock clockwork.Clock) AuthUseCase {
	if hasher == nil {
		hasher = PlainHasher{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &authService{repo: repo, sessions: sessions, hasher: hasher, clock: clock}
}

func (s *authService) Signup(ctx context.Context, email, username, password string) (AuthResult, error) {
	if err := validateSignup(email, username, password); err != nil {
		return AuthResult{}, err
	}

	// If user exists, fail fast (best-effort check; the unique index is authoritative)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeConflict).Inc()
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeError).Inc()
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		Username:  username,
		Password:  stored,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeConflict).Inc()
			return AuthResult{}, ErrUserAlreadyExists
		}
		metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeError).Inc()
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}
	token, err := s.issue(ctx, user.Email)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeError).Inc()
		return AuthResult{}, err
	}
	metrics.AuthEventsTotal.WithLabelValues("signup", metrics.OutcomeSuccess).Inc()
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthResult{}, ErrInvalidInput("email and password are required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.AuthEventsTotal.WithLabelValues("login", metrics.OutcomeDenied).Inc()
			return AuthResult{}, ErrInvalidCredentials
		}
		metrics.AuthEventsTotal.WithLabelValues("login", metrics.OutcomeError).Inc()
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if !s.hasher.Matches(user.Password, password) {
		metrics.AuthEventsTotal.WithLabelValues("login", metrics.OutcomeDenied).Inc()
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.issue(ctx, user.Email)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("login", metrics.OutcomeError).Inc()
		return AuthResult{}, err
	}
	metrics.AuthEventsTotal.WithLabelValues("login", metrics.OutcomeSuccess).Inc()
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrUnauthorized
	}
	email, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			metrics.AuthEventsTotal.WithLabelValues("authenticate", metrics.OutcomeDenied).Inc()
			return User{}, ErrUnauthorized
		}
		return User{}, fmt.Errorf("resolve session: %w", err)
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// stale token: the user vanished after the token was issued
			metrics.AuthEventsTotal.WithLabelValues("authenticate", metrics.OutcomeDenied).Inc()
			return User{}, ErrUnauthorized
		}
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token != "" {
		if err := s.sessions.Revoke(ctx, token); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}
	metrics.AuthEventsTotal.WithLabelValues("logout", metrics.OutcomeSuccess).Inc()
	s.refreshActiveSessions(ctx)
	return nil
}

func (s *authService) issue(ctx context.Context, email string) (string, error) {
	token, err := s.sessions.Issue(ctx, email)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	s.refreshActiveSessions(ctx)
	return token, nil
}

func (s *authService) refreshActiveSessions(ctx context.Context) {
	if n, err := s.sessions.Count(ctx); err == nil {
		metrics.ActiveSessions.Set(float64(n))
	}
}

func validateSignup(email, username, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(username) == "" || password == "" {
		return ErrInvalidInput("email, username and password are required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidInput("invalid email address")
	}
	return nil
}
