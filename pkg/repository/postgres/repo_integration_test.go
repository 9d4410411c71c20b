//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/artem13815/resumeboost/pkg/auth"
	"github.com/artem13815/resumeboost/pkg/job"
	"github.com/artem13815/resumeboost/pkg/storage/postgres"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get connection string: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}
	testPool, err = postgres.Connect(ctx, connStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}
	if err := postgres.Migrate(ctx, testPool); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate: %v\n", err)
		testPool.Close()
		_ = container.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate postgres container: %v\n", err)
	}
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE applications, jobs, users`)
	require.NoError(t, err)
}

func TestUserRepository_Lifecycle(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool)

	user := auth.User{ID: "u1", Email: "a@example.com", Username: "a", Password: "pw", CreatedAt: time.Now().UTC().Truncate(time.Microsecond)}
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))

	err = repo.Create(ctx, auth.User{ID: "u2", Email: "a@example.com", Username: "b", Password: "x", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestJobRepository_SeedOrder(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewJobRepository(testPool)

	seed, err := job.SeedJobs()
	require.NoError(t, err)
	require.NoError(t, repo.CreateMany(ctx, seed))
	// re-inserting the same ids is ignored
	require.NoError(t, repo.CreateMany(ctx, seed))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seed), n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, list)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestApplicationRepository_CreateAndList(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	users := NewUserRepository(testPool)
	jobs := NewJobRepository(testPool)
	apps := NewApplicationRepository(testPool)

	seed, err := job.SeedJobs()
	require.NoError(t, err)
	require.NoError(t, jobs.CreateMany(ctx, seed))
	require.NoError(t, users.Create(ctx, auth.User{ID: "u1", Email: "a@example.com", Username: "a", Password: "pw", CreatedAt: time.Now().UTC()}))

	now := time.Now().UTC()
	require.NoError(t, apps.Create(ctx, job.Application{ID: "a1", JobID: "1", UserID: "u1", AppliedAt: now}))
	require.NoError(t, apps.Create(ctx, job.Application{ID: "a2", JobID: "3", UserID: "u1", AppliedAt: now.Add(time.Minute)}))

	list, err := apps.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)
}
