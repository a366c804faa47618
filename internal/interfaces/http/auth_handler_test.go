package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgames-store/pkg/session"
)

func postJSON(t *testing.T, deps *testDeps, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := deps.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const registerBody = `{"email":"ana@example.com","password":"secreta123","firstName":"Ana","lastName":"Gómez"}`

func registerAna(t *testing.T, deps *testDeps) {
	t.Helper()
	resp := postJSON(t, deps, "/api/auth/register", registerBody)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioSinIniciarSesion(t *testing.T) {
	deps := buildStoreApp()

	resp := postJSON(t, deps, "/api/auth/register", registerBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, deps.users.count())

	// El registro no setea cookie de sesión
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, testSessionCfg.CookieName, c.Name,
			"registrar no debe iniciar sesión")
	}

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, "customer", body["role"])
	assert.Contains(t, body, "createdAt", "el cuerpo usa camelCase en todos los campos")
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestRegister_EmailDuplicado_Retorna409(t *testing.T) {
	deps := buildStoreApp()
	registerAna(t, deps)

	resp := postJSON(t, deps, "/api/auth/register", registerBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "EMAIL_EXISTS")
	assert.Equal(t, 1, deps.users.count(), "el duplicado no debe crear otro usuario")
}

func TestRegister_PasswordCorta_Retorna400(t *testing.T) {
	deps := buildStoreApp()

	resp := postJSON(t, deps, "/api/auth/register",
		`{"email":"ana@example.com","password":"corta","firstName":"Ana","lastName":"Gómez"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, deps.users.count(), "la validación debe cortar antes del repo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Correcto_SeteaCookieDeSesion(t *testing.T) {
	deps := buildStoreApp()
	registerAna(t, deps)

	resp := postJSON(t, deps, "/api/auth/login",
		`{"email":"ana@example.com","password":"secreta123"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == testSessionCfg.CookieName {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie, "el login debe setear la cookie de sesión")

	id, err := session.Parse(testSessionSecret, cookie)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", id.Email)
	assert.Equal(t, "customer", id.Role)
}

// Email desconocido y password incorrecto responden exactamente igual.
func TestLogin_CredencialesInvalidas_RespuestaIndistinguible(t *testing.T) {
	deps := buildStoreApp()
	registerAna(t, deps)

	respDesconocido := postJSON(t, deps, "/api/auth/login",
		`{"email":"nadie@example.com","password":"secreta123"}`)
	defer respDesconocido.Body.Close()

	respPasswordMala := postJSON(t, deps, "/api/auth/login",
		`{"email":"ana@example.com","password":"incorrecta1"}`)
	defer respPasswordMala.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respDesconocido.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respPasswordMala.StatusCode)
	assert.Equal(t, readBody(t, respDesconocido), readBody(t, respPasswordMala),
		"ambos fallos deben ser indistinguibles para el caller")
}

// El email guardado en el registro debe sobrevivir a requests posteriores con
// cuerpos distintos: fasthttp reutiliza el buffer de la petición y un repo que
// retenga strings sin copiar vería sus bytes sobreescritos.
func TestRegister_RequestsPosteriores_NoCorrompenElUsuario(t *testing.T) {
	deps := buildStoreApp()
	registerAna(t, deps)

	// Petición intermedia con un cuerpo más largo y sin relación
	otro := postJSON(t, deps, "/api/auth/login",
		`{"email":"zzzzzzzzzzzz@dominio-larguisimo-para-pisar-el-buffer.example.com","password":"xxxxxxxxxxxxxxxxxxxxxxxx"}`)
	otro.Body.Close()

	stored, err := deps.users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored, "el usuario registrado debe seguir indexado por su email")
	assert.Equal(t, "ana@example.com", stored.Email)

	resp := postJSON(t, deps, "/api/auth/login",
		`{"email":"ana@example.com","password":"secreta123"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el login debe funcionar después de peticiones intermedias")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión: /me y logout
// ──────────────────────────────────────────────────────────────────────────────

func TestMe_SinSesion_Retorna401(t *testing.T) {
	deps := buildStoreApp()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := deps.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_ConSesion_DevuelveIdentidad(t *testing.T) {
	deps := buildStoreApp()
	registerAna(t, deps)

	tok, err := session.Issue(testSessionSecret, session.Identity{
		UserID: "u1", Email: "ana@example.com", Role: "customer",
	}, testSessionCfg.Issuer, testSessionCfg.ExpMinutes)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCfg.CookieName, Value: tok})
	resp, err := deps.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, "customer", body["role"])
}

func TestMe_CookieInvalida_Retorna401(t *testing.T) {
	deps := buildStoreApp()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: testSessionCfg.CookieName, Value: "token.invalido.aqui"})
	resp, err := deps.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_BorraLaCookie(t *testing.T) {
	deps := buildStoreApp()

	resp := postJSON(t, deps, "/api/auth/logout", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == testSessionCfg.CookieName {
			found = true
			assert.Empty(t, c.Value)
			assert.True(t, c.Expires.Before(time.Now()), "la cookie debe expirar en el pasado")
		}
	}
	assert.True(t, found, "logout debe expirar la cookie de sesión")
}
