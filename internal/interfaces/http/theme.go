package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Preferencia de tema: una única cookie con nombre fijo guarda uno de los tres
// valores. Cookie ausente o con valor desconocido equivale a "system".
const (
	ThemeCookieName = "theme"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

const themeCookieMaxAge = 365 * 24 * 60 * 60 // un año, en segundos

// ResolveTheme lee la preferencia de tema de la cookie.
func ResolveTheme(c *fiber.Ctx) string {
	switch c.Cookies(ThemeCookieName) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// ToggleTheme alterna la preferencia entre light y dark; "system" nunca es
// destino del toggle. Si la preferencia actual es system, el cliente envía en
// el campo "resolved" la apariencia que resolvió y se cambia al valor explícito
// opuesto.
func ToggleTheme(c *fiber.Ctx) error {
	current := ResolveTheme(c)
	if current == ThemeSystem {
		if c.FormValue("resolved") == ThemeDark {
			current = ThemeDark
		} else {
			current = ThemeLight
		}
	}
	next := ThemeLight
	if current == ThemeLight {
		next = ThemeDark
	}
	c.Cookie(&fiber.Cookie{
		Name:     ThemeCookieName,
		Value:    next,
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	// Los formularios de página vuelven a la vista que los envió; la API recibe JSON.
	if ref := c.Get(fiber.HeaderReferer); ref != "" && strings.Contains(c.Get(fiber.HeaderAccept), "text/html") {
		return c.Redirect(ref, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"theme": next})
}
