// @title         Resume Boost API
// @version       1.0
// @description   Demo backend for resume scoring, job recommendations and session-based accounts.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Opaque session token. Accepted as "Bearer <token>".
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/logger"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/resumeboost/docs"

	// internal imports
	apihttp "github.com/artem13815/resumeboost/api/http"
	"github.com/artem13815/resumeboost/api/http/handlers"
	"github.com/artem13815/resumeboost/pkg/auth"
	"github.com/artem13815/resumeboost/pkg/config"
	"github.com/artem13815/resumeboost/pkg/health"
	"github.com/artem13815/resumeboost/pkg/health/checkers"
	"github.com/artem13815/resumeboost/pkg/job"
	"github.com/artem13815/resumeboost/pkg/logging"
	"github.com/artem13815/resumeboost/pkg/repository/memory"
	pgrepo "github.com/artem13815/resumeboost/pkg/repository/postgres"
	sqliterepo "github.com/artem13815/resumeboost/pkg/repository/sqlite"
	"github.com/artem13815/resumeboost/pkg/resume"
	"github.com/artem13815/resumeboost/pkg/security/bearer"
	"github.com/artem13815/resumeboost/pkg/session"
	"github.com/artem13815/resumeboost/pkg/storage"
	"github.com/artem13815/resumeboost/pkg/storage/migrations"
	"github.com/artem13815/resumeboost/pkg/storage/postgres"
	"github.com/artem13815/resumeboost/pkg/storage/sqlite"
)

// repositories bundles the storage ports chosen by DATABASE_URL.
type repositories struct {
	users        auth.UserRepository
	jobs         job.Repository
	applications job.ApplicationRepository
	checker      health.Checker
	close        func()
}

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	repos, err := openRepositories(startCtx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer repos.close()

	sessions, sessionChecker, closeSessions, err := openSessions(startCtx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	hasher, err := auth.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		return err
	}

	// Wire dependencies (Clean Architecture)
	authUC := auth.NewAuthService(repos.users, sessions, hasher, nil)
	jobUC := job.NewService(repos.jobs, repos.applications, nil)
	if err := jobUC.EnsureSeeded(startCtx); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	// Health service: compose checkers
	readiness := health.NewService(repos.checker, sessionChecker)

	app := apihttp.NewApp(apihttp.AppConfig{
		BodyLimit:   int(cfg.MaxUploadBytes) + 1<<20,
		CORSOrigins: cfg.CORSOrigins,
	})
	app.Use(logger.New(logger.Config{Output: os.Stdout}))

	apihttp.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewJobsHandler(jobUC),
		handlers.NewResumeHandler(resume.NewScorer(nil), cfg.MaxUploadBytes),
		handlers.NewHealthHandler(readiness),
		bearer.NewAuthMiddleware(authUC),
		bearer.NewOptionalAuthMiddleware(authUC),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	slog.Info("HTTP server listening", "port", cfg.Port, "database", string(driverOf(cfg.DatabaseURL)), "sessions", cfg.SessionBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func driverOf(url string) storage.Driver {
	d, _ := storage.Parse(url)
	return d
}

func openRepositories(ctx context.Context, url string) (repositories, error) {
	driver, dsn := storage.Parse(url)
	switch driver {
	case storage.DriverPostgres:
		pool, err := postgres.Connect(ctx, dsn)
		if err != nil {
			return repositories{}, fmt.Errorf("postgres connect: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return repositories{}, err
		}
		return repositories{
			users:        pgrepo.NewUserRepository(pool),
			jobs:         pgrepo.NewJobRepository(pool),
			applications: pgrepo.NewApplicationRepository(pool),
			checker:      checkers.NewPostgresChecker(pool),
			close:        pool.Close,
		}, nil
	case storage.DriverSQLite:
		db, err := sqlite.Open(ctx, dsn)
		if err != nil {
			return repositories{}, err
		}
		if err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
			_ = db.Close()
			return repositories{}, err
		}
		return repositories{
			users:        sqliterepo.NewUserRepository(db),
			jobs:         sqliterepo.NewJobRepository(db),
			applications: sqliterepo.NewApplicationRepository(db),
			checker:      checkers.NewSQLChecker("sqlite", db),
			close:        func() { _ = db.Close() },
		}, nil
	default:
		slog.Warn("using in-memory storage; data is lost on restart")
		return repositories{
			users:        memory.NewUserRepository(),
			jobs:         memory.NewJobRepository(),
			applications: memory.NewApplicationRepository(),
			close:        func() {},
		}, nil
	}
}

func openSessions(ctx context.Context, cfg config.Config) (auth.SessionStore, health.Checker, func(), error) {
	switch cfg.SessionBackend {
	case "", "memory":
		return session.NewMemoryStore(), nil, func() {}, nil
	case "redis":
		rdb, err := session.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("redis connect: %w", err)
		}
		return session.NewRedisStore(rdb), checkers.NewRedisChecker(rdb), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}
}
