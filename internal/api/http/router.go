package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-directory/internal/api/http/handlers"
	"github.com/spec-kit/staff-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Gallery        *handlers.GalleryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	protectedAuth := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAccount())
	protectedAuth.Post("/logout", cfg.Auth.Logout)
	protectedAuth.Post("/password/change", cfg.Auth.ChangePassword)

	staff := app.Group("/staff")
	staff.Get("/", cfg.Staff.ListAll)
	// Registered before the category wildcard so "categories" is not
	// interpreted as a category name.
	staff.Get("/categories", cfg.Staff.ListCategories)
	staff.Get("/:category", cfg.Staff.List)

	// Mutations authenticate when a token is present; the directory itself
	// decides whether the caller may edit, so anonymous requests still get
	// the directory's own permission error rather than a transport 401.
	staffMutations := staff.Group("", cfg.AuthMiddleware.OptionalHandle)
	staffMutations.Post("/:category", cfg.Staff.Add)
	staffMutations.Patch("/:category/:id", cfg.Staff.Update)
	staffMutations.Delete("/:category/:id", cfg.Staff.Delete)

	gallery := app.Group("/gallery")
	gallery.Get("/photos", cfg.Gallery.List)

	protectedGallery := gallery.Group("", cfg.AuthMiddleware.Handle, auth.RequireEditor())
	protectedGallery.Post("/photos", cfg.Gallery.Add)
	protectedGallery.Delete("/photos/:id", cfg.Gallery.Delete)
}
