package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/pkg/jwt"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Hooks              HookRunner
	Auth               AuthConfig
	DefaultEnvironment entity.EnvKind
	Logger             *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Hooks (protegido: solo la plataforma con su token)
	hooks := api.Group("/hooks", AuthMiddleware(deps.Auth), RequireRole(jwt.RolePlatform))
	hookHandler := NewHookHandler(deps.Hooks, deps.DefaultEnvironment, deps.Logger)
	hooks.Post("/before-load", hookHandler.BeforeLoad)
	hooks.Post("/before-submit", hookHandler.BeforeSubmit)
	hooks.Post("/after-submit", hookHandler.AfterSubmit)
}
