package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boardgames-store/internal/application/auth"
	"github.com/jhoicas/boardgames-store/internal/application/catalog"
	"github.com/jhoicas/boardgames-store/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CatalogUC     *catalog.CatalogUseCase
	Session       config.SessionConfig
	DefaultLocale string
}

// Router registra middlewares y rutas: API JSON bajo /api y páginas
// server-rendered bajo /{locale}. El middleware de locale corre antes que
// cualquier handler y puede redirigir la petición completa.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Session.Secret, deps.Session.CookieName))
	app.Use(LocaleMiddleware(deps.DefaultLocale))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", RequireAuth(), authHandler.Me)

	// Preferencia de tema (cookie única)
	api.Post("/theme/toggle", ToggleTheme)

	// Catálogo (público, solo lectura)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:slug", catalogHandler.GetBySlug)
	api.Get("/categories", catalogHandler.Categories)

	// Páginas localizadas
	pages := NewPageHandler(deps.AuthUC, deps.CatalogUC, deps.Session)
	app.Get("/:locale", pages.Landing)
	app.Get("/:locale/auth/login", pages.LoginPage)
	app.Post("/:locale/auth/login", pages.LoginSubmit)
	app.Get("/:locale/auth/register", pages.RegisterPage)
	app.Post("/:locale/auth/register", pages.RegisterSubmit)
	app.Post("/:locale/auth/logout", pages.Logout)
}
