package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeboost/pkg/auth"
	"github.com/artem13815/resumeboost/pkg/repository/memory"
	"github.com/artem13815/resumeboost/pkg/session"
)

type fixture struct {
	svc      auth.AuthUseCase
	users    *memory.UserRepository
	sessions *session.MemoryStore
	clock    *clockwork.FakeClock
}

func newFixture(t *testing.T, hasher auth.PasswordHasher) fixture {
	t.Helper()
	users := memory.NewUserRepository()
	sessions := session.NewMemoryStore()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	return fixture{
		svc:      auth.NewAuthService(users, sessions, hasher, clock),
		users:    users,
		sessions: sessions,
		clock:    clock,
	}
}

func sessionCount(t *testing.T, s *session.MemoryStore) int {
	t.Helper()
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestSignup_IssuesTokenForNewUser(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ann@example.com", res.User.Email)
	assert.Equal(t, "ann", res.User.Username)
	assert.Equal(t, f.clock.Now().UTC(), res.User.CreatedAt)

	me, err := f.svc.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, me.ID)
}

func TestSignup_DistinctEmailsGetDistinctIDs(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		res, err := f.svc.Signup(ctx, email, "user", "pw")
		require.NoError(t, err)
		assert.False(t, seen[res.User.ID])
		seen[res.User.ID] = true

		me, err := f.svc.Authenticate(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, email, me.Email)
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first, err := f.svc.Signup(ctx, "ann@example.com", "ann", "one")
	require.NoError(t, err)

	_, err = f.svc.Signup(ctx, "ann@example.com", "other", "two")
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)

	stored, err := f.users.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, stored.ID)
	assert.Equal(t, "ann", stored.Username)
	assert.Equal(t, "one", stored.Password)
	assert.Equal(t, 1, sessionCount(t, f.sessions))
}

func TestSignup_Validation(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name, email, username, password string
	}{
		{"missing email", "", "ann", "pw"},
		{"missing username", "ann@example.com", " ", "pw"},
		{"missing password", "ann@example.com", "ann", ""},
		{"malformed email", "not-an-email", "ann", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Signup(context.Background(), tt.email, tt.username, tt.password)
			var invalid auth.ErrInvalidInput
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	signup, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)

	login, err := f.svc.Login(ctx, "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)
	assert.NotEqual(t, signup.Token, login.Token)

	// both sessions stay valid
	_, err = f.svc.Authenticate(ctx, signup.Token)
	assert.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, login.Token)
	assert.NoError(t, err)
}

func TestLogin_WrongPasswordIssuesNoToken(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)
	before := sessionCount(t, f.sessions)

	res, err := f.svc.Login(ctx, "ann@example.com", "Secret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, res.Token)
	assert.Equal(t, before, sessionCount(t, f.sessions))
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Login(context.Background(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Zero(t, sessionCount(t, f.sessions))
}

func TestLogout_RevokesOnlyThatToken(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	signup, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)
	login, err := f.svc.Login(ctx, "ann@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, signup.Token))

	_, err = f.svc.Authenticate(ctx, signup.Token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = f.svc.Authenticate(ctx, login.Token)
	assert.NoError(t, err)
}

func TestLogout_UnknownTokenSucceeds(t *testing.T) {
	f := newFixture(t, nil)

	assert.NoError(t, f.svc.Logout(context.Background(), "never-issued"))
	assert.NoError(t, f.svc.Logout(context.Background(), ""))
}

func TestAuthenticate_StaleTokenIsUnauthorized(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)

	f.users.Delete("ann@example.com")

	_, err = f.svc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestAuthenticate_UnknownAndEmptyToken(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Authenticate(context.Background(), "unknown")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	_, err = f.svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestBcryptHasher_StoresHash(t *testing.T) {
	f := newFixture(t, auth.BcryptHasher{Cost: 4})
	ctx := context.Background()

	_, err := f.svc.Signup(ctx, "ann@example.com", "ann", "secret")
	require.NoError(t, err)

	stored, err := f.users.GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.Password)

	_, err = f.svc.Login(ctx, "ann@example.com", "secret")
	assert.NoError(t, err)
	_, err = f.svc.Login(ctx, "ann@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

type failingSessions struct{ session.MemoryStore }

func (*failingSessions) Issue(context.Context, string) (string, error) {
	return "", errors.New("store down")
}

func TestSignup_SessionStoreFailure(t *testing.T) {
	users := memory.NewUserRepository()
	svc := auth.NewAuthService(users, &failingSessions{}, nil, nil)

	_, err := svc.Signup(context.Background(), "ann@example.com", "ann", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUserAlreadyExists)
}
