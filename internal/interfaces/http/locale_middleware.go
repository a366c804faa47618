package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boardgames-store/internal/i18n"
)

// Locals keys para locale y bundle en Fiber.
const (
	LocalLocale = "locale"
	LocalBundle = "bundle"
)

// LocaleMiddleware resuelve el locale del primer segmento del path.
// Prefijo soportado -> deja locale y bundle en c.Locals y sigue.
// Prefijo regional de un locale soportado (en-US, es-MX) -> redirect al canónico.
// Sin prefijo válido y ruta no excluida -> redirect 307 al mismo path bajo el
// locale por defecto. Corre antes que cualquier lógica de aplicación.
func LocaleMiddleware(defaultLocale string) fiber.Handler {
	if !i18n.IsSupported(defaultLocale) {
		defaultLocale = i18n.DefaultLocale
	}
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if excludedPath(path) {
			return c.Next()
		}
		seg, rest := splitLocale(path)
		if i18n.IsSupported(seg) {
			bundle, err := i18n.Load(seg)
			if err != nil {
				// Falla cerrado: sin bundle no se renderiza nada parcial.
				return fiber.ErrNotFound
			}
			c.Locals(LocalLocale, seg)
			c.Locals(LocalBundle, bundle)
			return c.Next()
		}
		if canonical, ok := i18n.Canonical(seg); ok {
			return c.Redirect("/"+canonical+rest, fiber.StatusTemporaryRedirect)
		}
		return c.Redirect("/"+defaultLocale+path, fiber.StatusTemporaryRedirect)
	}
}

// excludedPath marca las rutas que no se internacionalizan: el namespace de la
// API, los assets estáticos, swagger y cualquier path cuyo último segmento
// tenga extensión. Es un test de prefijo/patrón, no una tabla de ruteo.
func excludedPath(path string) bool {
	for _, prefix := range []string{"/api", "/static", "/docs", "/health"} {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	last := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		last = path[idx+1:]
	}
	return strings.ContainsRune(last, '.')
}

// splitLocale separa el primer segmento del path y devuelve (segmento, resto).
func splitLocale(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx], "/" + trimmed[idx+1:]
	}
	return trimmed, ""
}

// Locale devuelve el locale resuelto por el middleware ("" fuera de rutas localizadas).
func Locale(c *fiber.Ctx) string {
	v := c.Locals(LocalLocale)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Bundle devuelve el bundle de mensajes resuelto por el middleware (nil fuera
// de rutas localizadas).
func Bundle(c *fiber.Ctx) *i18n.Bundle {
	v := c.Locals(LocalBundle)
	if v == nil {
		return nil
	}
	b, _ := v.(*i18n.Bundle)
	return b
}
