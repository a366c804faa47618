package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boardgames-store/internal/application/dto"
	"github.com/jhoicas/boardgames-store/pkg/session"
)

// Locals key para la identidad de sesión.
const LocalIdentity = "identity"

// SessionMiddleware parsea la cookie de sesión si existe y deja la identidad
// en c.Locals. Cookie ausente o token inválido significan visitante anónimo:
// este middleware nunca corta la petición.
func SessionMiddleware(secret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token != "" {
			if id, err := session.Parse(secret, token); err == nil {
				c.Locals(LocalIdentity, id)
			}
		}
		return c.Next()
	}
}

// RequireAuth corta con 401 si la petición no trae una sesión válida.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Next()
	}
}

// CurrentUser devuelve la identidad de sesión o nil si es un visitante anónimo.
func CurrentUser(c *fiber.Ctx) *session.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*session.Identity)
	return id
}
