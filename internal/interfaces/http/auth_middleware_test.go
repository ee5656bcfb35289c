package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - Authorize con la política por defecto sobre resource
//   - Handlers dummy que devuelven 200 si pasan los middlewares
func buildTestApp(resource string) *fiber.App {
	app := fiber.New()
	g := app.Group("/r", apphttp.AuthMiddleware(testJWTSecret), apphttp.Authorize(auth.DefaultPolicy(), resource))
	ok := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
	}
	g.Get("/x", ok)
	g.Post("/x", ok)
	g.Put("/x", ok)
	g.Delete("/x", ok)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{UserID: testUserID, Username: "tester", Role: role}, testExpMin, time.Now())
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza method /r/x y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, "/r/x", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_TablaPorRolYMetodo(t *testing.T) {
	cases := []struct {
		name     string
		resource string
		role     string
		method   string
		want     int
	}{
		{"staff lee ítems", auth.ResourceItems, "Staff", http.MethodGet, http.StatusOK},
		{"staff no crea ítems", auth.ResourceItems, "Staff", http.MethodPost, http.StatusForbidden},
		{"manager no borra categorías", auth.ResourceCategories, "Manager", http.MethodDelete, http.StatusForbidden},
		{"admin crea ítems", auth.ResourceItems, "Admin", http.MethodPost, http.StatusOK},
		{"superadmin actualiza subcategorías", auth.ResourceSubCategories, "SuperAdmin", http.MethodPut, http.StatusOK},
		{"manager lee reportes", auth.ResourceReports, "Manager", http.MethodGet, http.StatusOK},
		{"staff no lee reportes", auth.ResourceReports, "Staff", http.MethodGet, http.StatusForbidden},
		{"rol desconocido", auth.ResourceItems, "bodeguero", http.MethodGet, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(tc.resource)
			resp := doRequest(t, app, tc.method, tokenForRole(t, tc.role))
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestAuthorize_DenegadoIncluyeCodigoForbidden(t *testing.T) {
	app := buildTestApp(auth.ResourceCategories)
	resp := doRequest(t, app, http.MethodPost, tokenForRole(t, "Staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Token sin claim de rol → HTTP 401.
func TestAuthorize_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(auth.ResourceItems)
	resp := doRequest(t, app, http.MethodGet, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token sin rol debe retornar 401")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestAuthorize_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(auth.ResourceItems)
	resp := doRequest(t, app, http.MethodGet, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthorize_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(auth.ResourceItems)
	resp := doRequest(t, app, http.MethodGet, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorize_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(auth.ResourceItems)
	tok, _, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{UserID: testUserID, Role: "Admin"}, 60, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorize_FormatoSinBearer_Retorna401(t *testing.T) {
	app := buildTestApp(auth.ResourceItems)
	resp := doRequest(t, app, http.MethodGet, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"role":     apphttp.GetRole(c),
			"username": apphttp.GetClaims(c).Username,
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "Admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "Admin", body["role"])
	assert.Equal(t, "tester", body["username"])
}
