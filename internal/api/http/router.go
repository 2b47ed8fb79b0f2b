package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/role-gate/internal/api/http/gate"
	"github.com/spec-kit/role-gate/internal/api/http/handlers"
	"github.com/spec-kit/role-gate/internal/domain"
	"github.com/spec-kit/role-gate/internal/guard"
	"github.com/spec-kit/role-gate/internal/repository"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Tokens      guard.TokenDecoder
	TokenHeader string
	Accounts    repository.AccountFinder
}

// RegisterRoutes wires HTTP routes and their guard pipelines.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", gate.Gate(guard.ValidateRoleName()), cfg.Auth.Register)
	authGroup.Post("/login", gate.Gate(guard.UsernameExists(cfg.Accounts)), cfg.Auth.Login)

	users := api.Group("/users", gate.Gate(guard.Restricted(cfg.Tokens, cfg.TokenHeader)))
	users.Get("/", cfg.Users.List)
	users.Get("/:username", gate.Gate(guard.Only(domain.ReservedRoleName)), cfg.Users.Get)
}
