//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/Suministros-api/internal/application/analytics"
	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("suministros_test"),
		tcpostgres.WithUsername("suministros"),
		tcpostgres.WithPassword("suministros"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgC) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL:    dsn,
		MaxConns:       5,
		ConnectTimeout: 10 * time.Second,
		RetryInterval:  time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, name, area string, role entity.Role) lifecycle.Actor {
	t.Helper()
	u := &entity.User{Username: name, PasswordHash: "x", Role: role, Area: area, ProfileColor: entity.DefaultProfileColor, Confirmed: true}
	require.NoError(t, postgres.NewUserRepository(pool).Create(context.Background(), u))
	return lifecycle.Actor{UserID: u.ID, Role: role, Area: area}
}

func TestIntegration_SolicitudesYDashboard(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	now := time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)

	owner := seedUser(t, pool, "lucia", "Logistica", entity.RoleUser)
	admin := seedUser(t, pool, "ana", "Sistemas", entity.RoleAdmin)

	uc := solicitud.NewUseCase(postgres.NewSolicitudRepository(pool), postgres.NewTxRunner(pool), nil, logger.Nop(), solicitud.Config{
		Location:     time.UTC,
		FolioBackoff: time.Millisecond,
	}).WithClock(func() time.Time { return now })

	items := dto.ItemList{
		{Cantidad: 5, Nombre: "Toner", Unidad: "pieza"},
		{Cantidad: 2, Nombre: "Hojas carta", Unidad: "paquete"},
	}
	first, err := uc.Create(ctx, owner, dto.CreateSolicitudRequest{Suministros: items})
	require.NoError(t, err)
	second, err := uc.Create(ctx, owner, dto.CreateSolicitudRequest{Suministros: items[:1]})
	require.NoError(t, err)

	assert.Equal(t, "L2500001", first.Folio)
	assert.Equal(t, "L2500002", second.Folio)
	assert.Equal(t, string(entity.StatusPendienteAutorizacion), first.Status)
	require.Len(t, first.Suministros, 2)
	assert.Equal(t, "Toner", first.Suministros[0].Nombre)
	require.NotNil(t, first.Usuario)
	assert.Equal(t, "lucia", first.Usuario.User)

	_, err = uc.ChangeStatus(ctx, admin, first.ID, dto.ChangeStatusRequest{Status: string(entity.StatusAutorizada)})
	require.NoError(t, err)

	got, err := uc.RecordDelivery(ctx, admin, first.ID, dto.CreateParcialRequest{
		Suministros: dto.ItemList{{Cantidad: 3, Nombre: "Toner", Unidad: "pieza"}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusEntregaParcial), got.Status)
	require.Len(t, got.Parciales, 1)

	dash, err := analytics.NewDashboardUseCase(postgres.NewAnalyticsRepository(pool), time.UTC).
		WithClock(func() time.Time { return now }).
		GetUserDashboard(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, dash.Metricas.TotalSolicitudes)
	assert.Equal(t, 1, dash.Metricas.SolicitudesPendientes)
	assert.EqualValues(t, 50, dash.Metricas.TasaAprobacion)
	require.NotEmpty(t, dash.ProductosMasSolicitados)
	assert.Equal(t, "Toner", dash.ProductosMasSolicitados[0].Nombre)
	assert.Equal(t, 2, dash.ProductosMasSolicitados[0].VecesSolicitado)

	require.NoError(t, uc.Delete(ctx, admin, first.ID))
	_, err = uc.Get(ctx, admin, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIntegration_FolioDuplicadoSeMapea(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	owner := seedUser(t, pool, "victor", "Ventas", entity.RoleUser)
	repo := postgres.NewSolicitudRepository(pool)

	mk := func() *entity.Solicitud {
		return &entity.Solicitud{
			Folio: "V2500001", SolicitanteID: owner.UserID, Area: owner.Area,
			FechaHora: time.Now(), Prioridad: entity.PriorityModerado, Status: entity.StatusPendienteAutorizacion,
		}
	}
	require.NoError(t, repo.Create(ctx, mk()))
	err := repo.Create(ctx, mk())
	assert.ErrorIs(t, err, domain.ErrDuplicateFolio)

	last, err := repo.LastFolioWithPrefix(ctx, "V25")
	require.NoError(t, err)
	assert.Equal(t, "V2500001", last)
}

func TestIntegration_UsuarioDuplicado(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	seedUser(t, pool, "ana", "Sistemas", entity.RoleAdmin)

	err := postgres.NewUserRepository(pool).Create(ctx, &entity.User{Username: "ana", PasswordHash: "x", Role: entity.RoleUser, Area: "Ventas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	missing, err := postgres.NewUserRepository(pool).GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
