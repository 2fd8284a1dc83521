package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	apphttp "github.com/jhoicas/Suministros-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Suministros-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "suministros-test"
	testExpMin    = 60
)

// fakeResolver identidades "en DB" indexadas por id.
type fakeResolver map[int64]lifecycle.Actor

func (f fakeResolver) ResolveIdentity(_ context.Context, id int64) (lifecycle.Actor, error) {
	a, ok := f[id]
	if !ok {
		return lifecycle.Actor{}, domain.ErrUnauthorized
	}
	return a, nil
}

var identities = fakeResolver{
	1: {UserID: 1, Role: entity.RoleSuperAdmin, Area: "Sistemas"},
	2: {UserID: 2, Role: entity.RoleAdmin, Area: "Compras"},
	3: {UserID: 3, Role: entity.RoleUser, Area: "Logistica"},
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y resolver la identidad
//   - RequireCapability para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(capability access.Capability) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, identities),
		apphttp.RequireCapability(capability),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el usuario indicado.
func tokenFor(t *testing.T, id int64, role entity.Role) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{UserID: id, Role: string(role)}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCapability_AdminCambiaStatus(t *testing.T) {
	app := buildTestApp(access.ChangeStatus)
	resp := doRequest(t, app, tokenFor(t, 2, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireCapability_AdminNoAdministraUsuarios(t *testing.T) {
	app := buildTestApp(access.ManageUsers)
	resp := doRequest(t, app, tokenFor(t, 2, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireCapability_SuperadminAdministraUsuarios(t *testing.T) {
	app := buildTestApp(access.ManageUsers)
	resp := doRequest(t, app, tokenFor(t, 1, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El rol sale de la DB: un token que dice superadmin no eleva a un usuario normal.
func TestRequireCapability_RolDelTokenNoSeConfia(t *testing.T) {
	app := buildTestApp(access.ViewAllRequests)
	resp := doRequest(t, app, tokenFor(t, 3, entity.RoleSuperAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireCapability_SinIdentidad_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.RequireCapability(access.ChangeStatus), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(access.ChangeStatus), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(access.ChangeStatus), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearer_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(access.ChangeStatus), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioEliminado_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(access.ChangeStatus), tokenFor(t, 99, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, identities), func(c *fiber.Ctx) error {
		a := apphttp.ActorFrom(c)
		return c.JSON(fiber.Map{"user_id": a.UserID, "role": a.Role, "area": a.Area})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, 3, entity.RoleUser))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
		Area   string `json:"area"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.UserID)
	assert.Equal(t, "user", body.Role)
	assert.Equal(t, "Logistica", body.Area)
}
