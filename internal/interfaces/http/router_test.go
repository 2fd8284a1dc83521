package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/Suministros-api/internal/application/analytics"
	"github.com/jhoicas/Suministros-api/internal/application/auth"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/application/usecase"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/memory"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Suministros-api/internal/interfaces/http"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

var routerNow = time.Date(2025, time.April, 8, 11, 0, 0, 0, time.UTC)

type api struct {
	app     *fiber.App
	store   *memory.Store
	tokens  map[string]string
	userIDs map[string]int64
}

func newAPI(t *testing.T) *api {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	a := &api{store: store, tokens: map[string]string{}, userIDs: map[string]int64{}}
	for _, u := range []entity.User{
		{Username: "root", Role: entity.RoleSuperAdmin, Area: "Sistemas"},
		{Username: "ana", Role: entity.RoleAdmin, Area: "Compras"},
		{Username: "lucia", Role: entity.RoleUser, Area: "Logistica"},
		{Username: "victor", Role: entity.RoleUser, Area: "Ventas"},
	} {
		u.PasswordHash = string(hash)
		u.Confirmed = true
		u.ProfileColor = entity.DefaultProfileColor
		require.NoError(t, userRepo.Create(context.Background(), &u))
		a.userIDs[u.Username] = u.ID
		a.tokens[u.Username] = tokenFor(t, u.ID, u.Role)
	}

	solicitudUC := solicitud.NewUseCase(
		memory.NewSolicitudRepository(store), memory.NewTxRunner(store),
		pdf.NewMarotoVoucherGenerator(time.UTC), logger.Nop(),
		solicitud.Config{Location: time.UTC, FolioBackoff: time.Millisecond},
	).WithClock(func() time.Time { return routerNow })

	app := fiber.New()
	app.Use(apphttp.RequestLogging(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:      usecase.NewUserUseCase(userRepo),
		SolicitudUC: solicitudUC,
		DashboardUC: appanalytics.NewDashboardUseCase(memory.NewAnalyticsRepository(store), time.UTC).WithClock(func() time.Time { return routerNow }),
		ProductUC:   usecase.NewProductUseCase(memory.NewProductRepository(store)),
		UnitUC:      usecase.NewUnitUseCase(memory.NewUnitRepository(store)),
		JWTSecret:   testJWTSecret,
	})
	a.app = app
	return a
}

func (a *api) do(t *testing.T, method, path, user string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", a.tokens[user])
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (a *api) createSolicitud(t *testing.T, user string) dto.SolicitudResponse {
	t.Helper()
	resp, body := a.do(t, http.MethodPost, "/api/solicitudes", user, map[string]any{
		"prioridad":   "alto",
		"suministros": []map[string]any{{"cantidad": 4, "nombre": "Toner", "unidad": "pieza"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var env dto.SolicitudEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.NotNil(t, env.Solicitud)
	return *env.Solicitud
}

func TestLogin(t *testing.T) {
	a := newAPI(t)

	resp, body := a.do(t, http.MethodPost, "/api/usuarios/login", "", dto.LoginRequest{User: "lucia", Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Logistica", out.Area)
	assert.NotEmpty(t, out.Token)

	resp, _ = a.do(t, http.MethodPost, "/api/usuarios/login", "", dto.LoginRequest{User: "lucia", Password: "otra"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPost, "/api/usuarios/login", "", dto.LoginRequest{User: "nadie", Password: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPost, "/api/usuarios/login", "", map[string]string{"user": "lucia"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCrearSolicitud_SuministrosComoString(t *testing.T) {
	a := newAPI(t)

	resp, body := a.do(t, http.MethodPost, "/api/solicitudes", "lucia",
		`{"prioridad":"muy alto","comentarioUser":"urgente","suministros":"[{\"cantidad\":2,\"nombre\":\"Hojas carta\",\"unidad\":\"paquete\"}]"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var env dto.SolicitudEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.NotEmpty(t, env.Msg)
	assert.Equal(t, "L2500001", env.Solicitud.Folio)
	assert.Equal(t, "pendiente autorizacion", env.Solicitud.Status)
	require.Len(t, env.Solicitud.Suministros, 1)
	assert.Equal(t, 2, env.Solicitud.Suministros[0].Cantidad)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestCrearSolicitud_Validaciones(t *testing.T) {
	a := newAPI(t)

	cases := map[string]string{
		"sin suministros":    `{"prioridad":"alto"}`,
		"cantidad cero":      `{"suministros":[{"cantidad":0,"nombre":"Toner","unidad":"pieza"}]}`,
		"prioridad inválida": `{"prioridad":"urgente","suministros":[{"cantidad":1,"nombre":"Toner","unidad":"pieza"}]}`,
		"string malformado":  `{"suministros":"[{oops"}`,
		"cantidad excesiva":  `{"suministros":[{"cantidad":3000000000,"nombre":"Toner","unidad":"pieza"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp, out := a.do(t, http.MethodPost, "/api/solicitudes", "lucia", body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(out))
		})
	}

	resp, _ := a.do(t, http.MethodPost, "/api/solicitudes", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSolicitud_VisibilidadYPermisos(t *testing.T) {
	a := newAPI(t)
	s := a.createSolicitud(t, "lucia")
	path := "/api/solicitudes/" + itoa(s.ID)

	resp, _ := a.do(t, http.MethodGet, path, "victor", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "otro usuario no ve la solicitud")

	resp, _ = a.do(t, http.MethodGet, path, "ana", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/api/solicitudes", "lucia", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := a.do(t, http.MethodGet, "/api/solicitudes/usuario", "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.SolicitudListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Solicitudes, 1)

	resp, _ = a.do(t, http.MethodPut, path+"/status", "lucia", dto.ChangeStatusRequest{Status: "autorizada"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, "/api/solicitudes/abc", "lucia", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSolicitud_StatusYEntregas(t *testing.T) {
	a := newAPI(t)
	s := a.createSolicitud(t, "lucia")
	path := "/api/solicitudes/" + itoa(s.ID)

	resp, _ := a.do(t, http.MethodPut, path+"/status", "ana", dto.ChangeStatusRequest{Status: "abierta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := a.do(t, http.MethodPut, path+"/status", "ana", dto.ChangeStatusRequest{Status: "autorizada"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	entregas := "/api/suministros-parciales/" + itoa(s.ID)
	resp, body = a.do(t, http.MethodPost, entregas, "ana", map[string]any{
		"suministrosParciales": []map[string]any{{"cantidad": 9, "nombre": "Toner", "unidad": "pieza"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var env dto.SolicitudEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "entrega parcial", env.Solicitud.Status)

	// alias con la clave de los suministros
	resp, body = a.do(t, http.MethodPost, entregas, "ana", map[string]any{
		"suministros": []map[string]any{{"cantidad": 1, "nombre": "Hojas", "unidad": "paquete"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = a.do(t, http.MethodPost, entregas, "ana", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPost, entregas, "ana",
		`{"suministrosParciales":[{"cantidad":3000000000,"nombre":"Toner","unidad":"pieza"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = a.do(t, http.MethodGet, entregas, "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parciales dto.ParcialListResponse
	require.NoError(t, json.Unmarshal(body, &parciales))
	require.Len(t, parciales.SuministrosParciales, 2)
	assert.Equal(t, "Hojas", parciales.SuministrosParciales[0].Nombre, "más reciente primero")

	resp, _ = a.do(t, http.MethodDelete, "/api/suministros-parciales/"+itoa(parciales.SuministrosParciales[0].ID), "lucia", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = a.do(t, http.MethodDelete, "/api/suministros-parciales/"+itoa(parciales.SuministrosParciales[0].ID), "ana", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSolicitud_EliminarYPDF(t *testing.T) {
	a := newAPI(t)
	s := a.createSolicitud(t, "lucia")
	path := "/api/solicitudes/" + itoa(s.ID)

	resp, body := a.do(t, http.MethodGet, path+"/pdf", "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), s.Folio)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = a.do(t, http.MethodDelete, path, "victor", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = a.do(t, http.MethodDelete, path, "ana", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "un admin tampoco elimina solicitudes ajenas")

	resp, _ = a.do(t, http.MethodDelete, path, "lucia", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = a.do(t, http.MethodGet, path, "lucia", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	a := newAPI(t)
	a.createSolicitud(t, "lucia")
	a.createSolicitud(t, "victor")

	resp, body := a.do(t, http.MethodGet, "/api/dashboard/usuario", "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var dash dto.DashboardDTO
	require.NoError(t, json.Unmarshal(body, &dash))
	assert.Equal(t, 1, dash.Metricas.TotalSolicitudes)
	assert.Equal(t, 1, dash.Metricas.SolicitudesPendientes)
	assert.Equal(t, 1, dash.Metricas.SolicitudesDelMes)
	assert.EqualValues(t, 0, dash.Metricas.TasaAprobacion)
	require.Len(t, dash.SolicitudesPorMes, 1)
	assert.Equal(t, "2025-04", dash.SolicitudesPorMes[0].Mes)
}

func TestUsuarios_AdministracionSoloSuperadmin(t *testing.T) {
	a := newAPI(t)
	nuevo := dto.CreateUserRequest{User: "marta", Password: "secreto123", Area: "Almacen"}

	resp, _ := a.do(t, http.MethodPost, "/api/usuarios/registro", "ana", nuevo)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := a.do(t, http.MethodPost, "/api/usuarios/registro", "root", nuevo)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = a.do(t, http.MethodPost, "/api/usuarios/registro", "root", nuevo)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	largo := dto.CreateUserRequest{User: "rosa", Password: strings.Repeat("a", 80), Area: "Almacen"}
	resp, _ = a.do(t, http.MethodPost, "/api/usuarios/registro", "root", largo)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, http.MethodDelete, "/api/usuarios/usuarios/"+itoa(a.userIDs["root"]), "root", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "no puede eliminarse a sí mismo")

	resp, body = a.do(t, http.MethodGet, "/api/usuarios/perfil", "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(body), "password")

	resp, _ = a.do(t, http.MethodPut, "/api/usuarios/color-perfil", "lucia", dto.ProfileColorRequest{ColorPerfil: "text-blue-500"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPut, "/api/usuarios/color-perfil", "lucia", dto.ProfileColorRequest{ColorPerfil: "rojo"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogos(t *testing.T) {
	a := newAPI(t)

	resp, _ := a.do(t, http.MethodPost, "/api/productos", "lucia", dto.ProductRequest{Nombre: "Toner", Unidad: "pieza"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := a.do(t, http.MethodPost, "/api/productos", "root", dto.ProductRequest{Nombre: "  Toner ", Unidad: "pieza"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "Toner", p.Nombre)

	resp, _ = a.do(t, http.MethodPost, "/api/productos", "root", dto.ProductRequest{Nombre: "Toner", Unidad: "caja"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = a.do(t, http.MethodGet, "/api/productos", "lucia", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Toner")

	resp, _ = a.do(t, http.MethodGet, "/api/productos/999", "lucia", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = a.do(t, http.MethodPost, "/api/unidades-medida", "root", dto.UnitRequest{Nombre: "pieza"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = a.do(t, http.MethodPost, "/api/unidades-medida", "root", dto.UnitRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
