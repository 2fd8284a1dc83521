package solicitud_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
	"github.com/jhoicas/Suministros-api/internal/infrastructure/memory"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

type fakeVoucher struct{ folio string }

func (f *fakeVoucher) GenerateSolicitudVoucher(s *entity.Solicitud) ([]byte, error) {
	f.folio = s.Folio
	return []byte("%PDF-1.4"), nil
}

type fixture struct {
	store   *memory.Store
	tx      *memory.TxRunner
	uc      *solicitud.UseCase
	voucher *fakeVoucher
	owner   lifecycle.Actor
	other   lifecycle.Actor
	admin   lifecycle.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	mk := func(name string, role entity.Role, area string) lifecycle.Actor {
		u := &entity.User{Username: name, Role: role, Area: area, Confirmed: true, ProfileColor: entity.DefaultProfileColor}
		require.NoError(t, users.Create(context.Background(), u))
		return lifecycle.Actor{UserID: u.ID, Role: role, Area: area}
	}
	f := &fixture{store: store, tx: memory.NewTxRunner(store), voucher: &fakeVoucher{}}
	f.owner = mk("lucia", entity.RoleUser, "Logistica")
	f.other = mk("victor", entity.RoleUser, "Ventas")
	f.admin = mk("ana", entity.RoleAdmin, "Sistemas")
	f.uc = solicitud.NewUseCase(memory.NewSolicitudRepository(store), f.tx, f.voucher, logger.Nop(), solicitud.Config{
		FolioBackoff: time.Millisecond,
	}).WithClock(func() time.Time { return fixedNow })
	return f
}

func items(n ...int) dto.ItemList {
	out := dto.ItemList{}
	for _, c := range n {
		out = append(out, dto.ItemRequest{Cantidad: c, Nombre: "Hojas carta", Unidad: "paquete"})
	}
	return out
}

func (f *fixture) create(t *testing.T, a lifecycle.Actor) *dto.SolicitudResponse {
	t.Helper()
	out, err := f.uc.Create(context.Background(), a, dto.CreateSolicitudRequest{Suministros: items(2)})
	require.NoError(t, err)
	return out
}

func TestCreate_FoliosConsecutivosPorPrefijo(t *testing.T) {
	f := newFixture(t)

	first := f.create(t, f.owner)
	second := f.create(t, f.owner)
	ventas := f.create(t, f.other)

	assert.Equal(t, "L2500001", first.Folio)
	assert.Equal(t, "L2500002", second.Folio)
	assert.Equal(t, "V2500001", ventas.Folio)

	assert.Equal(t, string(entity.StatusPendienteAutorizacion), first.Status)
	assert.Equal(t, string(entity.PriorityModerado), first.Prioridad)
	assert.Equal(t, "Logistica", first.Area)
	require.NotNil(t, first.Usuario)
	assert.Equal(t, "lucia", first.Usuario.User)
	require.Len(t, first.Suministros, 1)
}

type failingItems struct {
	repository.SolicitudRepository
}

func (failingItems) CreateSuministros(context.Context, int64, []entity.Suministro) error {
	return errors.New("disco lleno")
}

func TestCreate_AtomicaSiFallanLosSuministros(t *testing.T) {
	f := newFixture(t)
	f.tx.Wrap = func(r repository.SolicitudRepository) repository.SolicitudRepository {
		return failingItems{r}
	}

	_, err := f.uc.Create(context.Background(), f.owner, dto.CreateSolicitudRequest{Suministros: items(1, 2)})
	require.Error(t, err)

	sols, sums, _ := f.store.Counts()
	assert.Zero(t, sols)
	assert.Zero(t, sums)
}

// staleFolio simula una lectura desactualizada del último folio durante stale llamadas.
type staleFolio struct {
	repository.SolicitudRepository
	stale *int
}

func (s staleFolio) LastFolioWithPrefix(ctx context.Context, prefix string) (string, error) {
	if *s.stale > 0 {
		*s.stale--
		return "", nil
	}
	return s.SolicitudRepository.LastFolioWithPrefix(ctx, prefix)
}

func TestCreate_ReintentaAnteColisionDeFolio(t *testing.T) {
	f := newFixture(t)
	f.create(t, f.owner)

	stale := 1
	f.tx.Wrap = func(r repository.SolicitudRepository) repository.SolicitudRepository {
		return staleFolio{SolicitudRepository: r, stale: &stale}
	}

	out, err := f.uc.Create(context.Background(), f.owner, dto.CreateSolicitudRequest{Suministros: items(3)})
	require.NoError(t, err)
	assert.Equal(t, "L2500002", out.Folio)

	sols, sums, _ := f.store.Counts()
	assert.Equal(t, 2, sols)
	assert.Equal(t, 2, sums)
}

func TestCreate_ColisionPersistenteAgotaIntentos(t *testing.T) {
	f := newFixture(t)
	f.create(t, f.owner)

	stale := 100
	f.tx.Wrap = func(r repository.SolicitudRepository) repository.SolicitudRepository {
		return staleFolio{SolicitudRepository: r, stale: &stale}
	}

	_, err := f.uc.Create(context.Background(), f.owner, dto.CreateSolicitudRequest{Suministros: items(3)})
	assert.ErrorIs(t, err, domain.ErrDuplicateFolio)
	assert.Equal(t, 97, stale, "tres intentos")
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), f.owner, dto.CreateSolicitudRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), f.owner, dto.CreateSolicitudRequest{Prioridad: "urgente", Suministros: items(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sinArea := lifecycle.Actor{UserID: f.owner.UserID, Role: entity.RoleUser, Area: "1er piso"}
	_, err = f.uc.Create(context.Background(), sinArea, dto.CreateSolicitudRequest{Suministros: items(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sols, _, _ := f.store.Counts()
	assert.Zero(t, sols)
}

func TestOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)

	prio := "alto"
	_, err := f.uc.Update(ctx, f.other, s.ID, dto.UpdateSolicitudRequest{Prioridad: &prio})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.Update(ctx, f.admin, s.ID, dto.UpdateSolicitudRequest{Prioridad: &prio})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, f.other, s.ID), domain.ErrNotFound)

	_, err = f.uc.Get(ctx, f.other, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	got, err := f.uc.Get(ctx, f.admin, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Folio, got.Folio)

	got, err = f.uc.Get(ctx, f.owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "moderado", got.Prioridad)
}

func TestUpdate_ReemplazaSuministros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)

	comentario := "para el lunes"
	out, err := f.uc.Update(ctx, f.owner, s.ID, dto.UpdateSolicitudRequest{
		ComentarioUser: &comentario,
		Suministros:    items(4, 5, 6),
	})
	require.NoError(t, err)
	assert.Len(t, out.Suministros, 3)
	assert.Equal(t, "para el lunes", *out.ComentarioUser)
	assert.Equal(t, s.Folio, out.Folio)

	// sin suministros en el cuerpo no se tocan las líneas
	prio := "muy alto"
	out, err = f.uc.Update(ctx, f.owner, s.ID, dto.UpdateSolicitudRequest{Prioridad: &prio})
	require.NoError(t, err)
	assert.Len(t, out.Suministros, 3)
	assert.Equal(t, "muy alto", out.Prioridad)
}

func TestChangeStatus_FueraDeEnumeracionNoModifica(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)

	_, err := f.uc.ChangeStatus(ctx, f.admin, s.ID, dto.ChangeStatusRequest{Status: "en proceso"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.uc.Get(ctx, f.owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusPendienteAutorizacion), got.Status)

	_, err = f.uc.ChangeStatus(ctx, f.owner, s.ID, dto.ChangeStatusRequest{Status: "autorizada"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.ChangeStatus(ctx, f.admin, 9999, dto.ChangeStatusRequest{Status: "autorizada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	comentario := "aprobada por compras"
	out, err := f.uc.ChangeStatus(ctx, f.admin, s.ID, dto.ChangeStatusRequest{Status: "autorizada", ComentarioAdmin: &comentario})
	require.NoError(t, err)
	assert.Equal(t, "autorizada", out.Status)
	assert.Equal(t, comentario, *out.ComentarioAdmin)
}

func TestRecordDelivery_SobreEntregaQuedaParcial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)

	out, err := f.uc.RecordDelivery(ctx, f.admin, s.ID, dto.CreateParcialRequest{Suministros: items(1000)})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusEntregaParcial), out.Status)
	require.Len(t, out.Parciales, 1)
	assert.Equal(t, 1000, out.Parciales[0].Cantidad)
	assert.Equal(t, fixedNow, out.Parciales[0].FechaEntrega)

	list, err := f.uc.ListDeliveries(ctx, f.owner, s.ID)
	require.NoError(t, err)
	assert.Len(t, list.SuministrosParciales, 1)

	_, err = f.uc.ListDeliveries(ctx, f.other, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.RecordDelivery(ctx, f.admin, 9999, dto.CreateParcialRequest{Suministros: items(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.RecordDelivery(ctx, f.owner, s.ID, dto.CreateParcialRequest{Suministros: items(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)
	out, err := f.uc.RecordDelivery(ctx, f.admin, s.ID, dto.CreateParcialRequest{Suministros: items(1)})
	require.NoError(t, err)
	parcialID := out.Parciales[0].ID

	assert.ErrorIs(t, f.uc.DeleteDelivery(ctx, f.owner, parcialID), domain.ErrForbidden)
	require.NoError(t, f.uc.DeleteDelivery(ctx, f.admin, parcialID))
	assert.ErrorIs(t, f.uc.DeleteDelivery(ctx, f.admin, parcialID), domain.ErrNotFound)
}

func TestDelete_CascadaEnUnaTransaccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)
	_, err := f.uc.RecordDelivery(ctx, f.admin, s.ID, dto.CreateParcialRequest{Suministros: items(1, 1)})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, f.owner, s.ID))

	sols, sums, parciales := f.store.Counts()
	assert.Zero(t, sols)
	assert.Zero(t, sums)
	assert.Zero(t, parciales)

	_, err = f.uc.Get(ctx, f.owner, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.create(t, f.owner)
	f.create(t, f.other)

	all, err := f.uc.List(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, all.Solicitudes, 2)

	_, err = f.uc.List(ctx, f.owner)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	mine, err := f.uc.ListMine(ctx, f.owner)
	require.NoError(t, err)
	require.Len(t, mine.Solicitudes, 1)
	assert.Equal(t, "L2500001", mine.Solicitudes[0].Folio)
}

func TestVoucherPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.create(t, f.owner)

	pdf, folio, err := f.uc.VoucherPDF(ctx, f.owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Folio, folio)
	assert.Equal(t, s.Folio, f.voucher.folio)
	assert.NotEmpty(t, pdf)

	_, _, err = f.uc.VoucherPDF(ctx, f.other, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
