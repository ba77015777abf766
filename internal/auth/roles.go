package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RequireAccount ensures a signed-in account.
func RequireAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

// RequireEditor ensures the caller holds the editor role.
func RequireEditor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Account == nil {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !principal.Account.Editor() {
			return fiber.NewError(http.StatusForbidden, "editor role required")
		}
		return c.Next()
	}
}
