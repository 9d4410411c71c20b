package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/artem13815/resumeboost/api/http/handlers"
	"github.com/artem13815/resumeboost/api/http/presenter"
)

// AppConfig carries the transport settings of the Fiber app.
type AppConfig struct {
	// BodyLimit caps request bodies; uploads need headroom over the file limit.
	BodyLimit   int
	CORSOrigins string
}

// NewApp builds a Fiber app with panic recovery, CORS and JSON error bodies.
func NewApp(cfg AppConfig) *fiber.App {
	fcfg := fiber.Config{
		AppName:      "resumeboost",
		ErrorHandler: errorHandler,
	}
	if cfg.BodyLimit > 0 {
		fcfg.BodyLimit = cfg.BodyLimit
	}
	app := fiber.New(fcfg)
	app.Use(recover.New())

	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		slog.Error("unhandled request error", "path", c.Path(), "error", err)
	}
	return presenter.Error(c, code, message)
}

// Register wires all HTTP routes onto given Fiber app. requireAuth rejects
// requests without a valid bearer token; optionalAuth only annotates them.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	jobs *handlers.JobsHandler,
	resume *handlers.ResumeHandler,
	health *handlers.HealthHandler,
	requireAuth, optionalAuth fiber.Handler,
) {
	app.Get("/", handlers.Root)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	a := app.Group("/auth")
	a.Post("/signup", auth.Signup)
	a.Post("/login", auth.Login)
	a.Post("/logout", auth.Logout)
	a.Get("/me", requireAuth, auth.Me)

	api := app.Group("/api")

	jg := api.Group("/jobs")
	jg.Post("/recommendations", jobs.Recommendations)
	jg.Get("/applications", requireAuth, jobs.Applications)
	jg.Post("/:id/apply", optionalAuth, jobs.Apply)

	rg := api.Group("/resume")
	rg.Post("/analyze", resume.Analyze)
}
