package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boardgames-store/internal/application/auth"
	"github.com/jhoicas/boardgames-store/internal/application/catalog"
	"github.com/jhoicas/boardgames-store/internal/application/dto"
	"github.com/jhoicas/boardgames-store/internal/domain"
	"github.com/jhoicas/boardgames-store/pkg/config"
)

// PageHandler renderiza las páginas server-side (landing y formularios de auth)
// con los textos del bundle del locale activo.
type PageHandler struct {
	authUC     *auth.AuthUseCase
	catalogUC  *catalog.CatalogUseCase
	sessionCfg config.SessionConfig
}

// NewPageHandler construye el handler de páginas.
func NewPageHandler(authUC *auth.AuthUseCase, catalogUC *catalog.CatalogUseCase, sessionCfg config.SessionConfig) *PageHandler {
	return &PageHandler{authUC: authUC, catalogUC: catalogUC, sessionCfg: sessionCfg}
}

// Landing página principal: hero, categorías y productos destacados.
func (h *PageHandler) Landing(c *fiber.Ctx) error {
	data := h.viewData(c)
	if data == nil {
		return fiber.ErrNotFound
	}
	products, err := h.catalogUC.Featured(8)
	if err != nil {
		return err
	}
	categories, err := h.catalogUC.Categories()
	if err != nil {
		return err
	}
	data["Products"] = products
	data["Categories"] = categories
	return c.Render("landing", data)
}

// LoginPage formulario de login. Honra el indicador ?registered=true que deja
// el registro exitoso: es una señal externa en la URL, no estado propio.
func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	data := h.viewData(c)
	if data == nil {
		return fiber.ErrNotFound
	}
	data["Registered"] = c.Query("registered") == "true"
	return c.Render("login", data)
}

// LoginSubmit verifica credenciales. Cualquier fallo re-renderiza el formulario
// con el mensaje genérico fijo del bundle, nunca el detalle interno.
func (h *PageHandler) LoginSubmit(c *fiber.Ctx) error {
	data := h.viewData(c)
	if data == nil {
		return fiber.ErrNotFound
	}
	b := Bundle(c)
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		data["Error"] = b.T("auth.login.error")
		return c.Status(fiber.StatusBadRequest).Render("login", data)
	}
	data["Email"] = in.Email
	// La validación local siempre termina antes de tocar el verificador.
	if err := validateStruct(in); err != nil {
		data["Error"] = b.T("auth.login.error")
		return c.Status(fiber.StatusUnprocessableEntity).Render("login", data)
	}
	out, err := h.authUC.Verify(in)
	if err != nil {
		data["Error"] = b.T("auth.login.error")
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).Render("login", data)
		}
		return c.Status(fiber.StatusInternalServerError).Render("login", data)
	}
	h.setSessionCookie(c, out.Token)
	return c.Redirect("/"+Locale(c)+"/", fiber.StatusSeeOther)
}

// RegisterPage formulario de registro.
func (h *PageHandler) RegisterPage(c *fiber.Ctx) error {
	data := h.viewData(c)
	if data == nil {
		return fiber.ErrNotFound
	}
	return c.Render("register", data)
}

// RegisterSubmit registra un usuario. El mismatch de password/confirmación se
// rechaza antes de cualquier acceso a la DB; el registro exitoso redirige al
// login con el indicador registered=true, sin iniciar sesión.
func (h *PageHandler) RegisterSubmit(c *fiber.Ctx) error {
	data := h.viewData(c)
	if data == nil {
		return fiber.ErrNotFound
	}
	b := Bundle(c)
	var in dto.RegisterForm
	if err := c.BodyParser(&in); err != nil {
		data["Error"] = b.T("auth.register.error.generic")
		return c.Status(fiber.StatusBadRequest).Render("register", data)
	}
	data["FirstName"] = in.FirstName
	data["LastName"] = in.LastName
	data["Email"] = in.Email
	if in.Password != in.ConfirmPassword {
		data["Error"] = b.T("auth.register.error.passwords_dont_match")
		return c.Status(fiber.StatusUnprocessableEntity).Render("register", data)
	}
	if err := validateStruct(in); err != nil {
		data["Error"] = err.Error()
		return c.Status(fiber.StatusUnprocessableEntity).Render("register", data)
	}
	if _, err := h.authUC.Register(in.RegisterRequest); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			data["Error"] = b.T("auth.register.error.email_exists")
			return c.Status(fiber.StatusConflict).Render("register", data)
		}
		data["Error"] = b.T("auth.register.error.generic")
		return c.Status(fiber.StatusInternalServerError).Render("register", data)
	}
	return c.Redirect("/"+Locale(c)+"/auth/login?registered=true", fiber.StatusSeeOther)
}

// Logout cierra la sesión y vuelve a la landing del locale activo.
func (h *PageHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/"+Locale(c)+"/", fiber.StatusSeeOther)
}

// viewData arma los datos comunes de toda vista: bundle, locale, tema y sesión.
// Devuelve nil si la ruta llegó sin pasar por el middleware de locale.
func (h *PageHandler) viewData(c *fiber.Ctx) fiber.Map {
	b := Bundle(c)
	locale := Locale(c)
	if b == nil || locale == "" {
		return nil
	}
	theme := ResolveTheme(c)
	themeClass := ""
	if theme != ThemeSystem {
		// Con preferencia explícita el tema sale del servidor; con "system" el
		// markup es neutro y la fase dos del render aplica el tema en cliente.
		themeClass = theme
	}
	return fiber.Map{
		"B":          b,
		"Locale":     locale,
		"Theme":      theme,
		"ThemeClass": themeClass,
		"User":       CurrentUser(c),
		"PathRest":   strings.TrimPrefix(c.Path(), "/"+locale),
		// Defaults vacíos: las plantillas los interpolan siempre.
		"Error":      "",
		"Registered": false,
		"Email":      "",
		"FirstName":  "",
		"LastName":   "",
	}
}

func (h *PageHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.sessionCfg.ExpMinutes * 60,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
