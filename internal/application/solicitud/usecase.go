// Package solicitud orquesta el ciclo de vida de las solicitudes: abre la transacción,
// carga el estado, delega la decisión en el paquete lifecycle y persiste los efectos.
package solicitud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/folio"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

const (
	defaultFolioAttempts = 3
	defaultFolioBackoff  = 50 * time.Millisecond
)

// Config parámetros del caso de uso.
type Config struct {
	Location      *time.Location // zona horaria de negocio para el año del folio
	FolioAttempts int            // intentos totales ante colisión de folio
	FolioBackoff  time.Duration  // espera constante entre intentos
}

// UseCase casos de uso de solicitudes y entregas parciales.
type UseCase struct {
	repo    repository.SolicitudRepository // lecturas fuera de tx
	tx      TxRunner
	voucher VoucherGenerator
	log     *logger.Logger
	cfg     Config
	now     func() time.Time
}

// NewUseCase construye el caso de uso. Valores cero de cfg toman los defaults.
func NewUseCase(repo repository.SolicitudRepository, tx TxRunner, voucher VoucherGenerator, log *logger.Logger, cfg Config) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.FolioAttempts <= 0 {
		cfg.FolioAttempts = defaultFolioAttempts
	}
	if cfg.FolioBackoff <= 0 {
		cfg.FolioBackoff = defaultFolioBackoff
	}
	return &UseCase{repo: repo, tx: tx, voucher: voucher, log: log, cfg: cfg, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Create genera el folio y persiste solicitud y suministros en una sola transacción.
// Una colisión de folio reintenta la transacción completa con un folio nuevo.
func (uc *UseCase) Create(ctx context.Context, a lifecycle.Actor, in dto.CreateSolicitudRequest) (*dto.SolicitudResponse, error) {
	cin := lifecycle.CreateInput{
		Prioridad:      entity.Priority(in.Prioridad),
		ComentarioUser: in.ComentarioUser,
		Suministros:    toItemInputs(in.Suministros),
	}
	if err := lifecycle.ValidateCreate(a, cin); err != nil {
		return nil, err
	}

	var id int64
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(uc.cfg.FolioAttempts-1), retry.NewConstant(uc.cfg.FolioBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
			now := uc.now().In(uc.cfg.Location)
			f, err := folio.Generate(ctx, repo, a.Area, now)
			if err != nil {
				return err
			}
			_, effects, err := lifecycle.Create(a, cin, f, now)
			if err != nil {
				return err
			}
			id, err = applyEffects(ctx, repo, effects)
			return err
		})
		if errors.Is(err, domain.ErrDuplicateFolio) {
			uc.log.Warn().Int("attempt", attempt).Str("area", a.Area).Msg("colisión de folio, reintentando")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.load(ctx, id)
}

// List devuelve todas las solicitudes (requiere ver todas).
func (uc *UseCase) List(ctx context.Context, a lifecycle.Actor) (*dto.SolicitudListResponse, error) {
	if err := access.Require(a.Role, access.ViewAllRequests); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SolicitudListResponse{Solicitudes: toResponses(list)}, nil
}

// ListMine devuelve las solicitudes del caller.
func (uc *UseCase) ListMine(ctx context.Context, a lifecycle.Actor) (*dto.SolicitudListResponse, error) {
	if a.UserID == 0 {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListBySolicitante(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.SolicitudListResponse{Solicitudes: toResponses(list)}, nil
}

// Get devuelve una solicitud visible para el actor; ErrNotFound en otro caso.
func (uc *UseCase) Get(ctx context.Context, a lifecycle.Actor, id int64) (*dto.SolicitudResponse, error) {
	s, err := uc.visible(ctx, a, id)
	if err != nil {
		return nil, err
	}
	return ToResponse(s), nil
}

// Update edita prioridad, comentario y suministros. Sólo el dueño.
func (uc *UseCase) Update(ctx context.Context, a lifecycle.Actor, id int64, in dto.UpdateSolicitudRequest) (*dto.SolicitudResponse, error) {
	ein := lifecycle.EditInput{
		ComentarioUser: in.ComentarioUser,
		Suministros:    toItemInputs(in.Suministros),
		ReplaceItems:   in.Suministros != nil,
	}
	if in.Prioridad != nil {
		p := entity.Priority(*in.Prioridad)
		ein.Prioridad = &p
	}
	err := uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
		cur, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		_, effects, err := lifecycle.Edit(a, *cur, ein)
		if err != nil {
			return err
		}
		_, err = applyEffects(ctx, repo, effects)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.load(ctx, id)
}

// ChangeStatus cambia el status (y opcionalmente el comentario del administrador).
// El status destino se valida antes de abrir la transacción.
func (uc *UseCase) ChangeStatus(ctx context.Context, a lifecycle.Actor, id int64, in dto.ChangeStatusRequest) (*dto.SolicitudResponse, error) {
	sin := lifecycle.StatusInput{Status: entity.Status(in.Status), ComentarioAdmin: in.ComentarioAdmin}
	if err := lifecycle.CheckStatusChange(a, sin); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
		cur, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		_, effects, err := lifecycle.ChangeStatus(a, *cur, sin)
		if err != nil {
			return err
		}
		_, err = applyEffects(ctx, repo, effects)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("solicitud_id", id).Str("status", in.Status).Int64("user_id", a.UserID).Msg("status actualizado")
	return uc.load(ctx, id)
}

// Delete elimina la solicitud con sus entregas parciales y suministros. Sólo el dueño.
func (uc *UseCase) Delete(ctx context.Context, a lifecycle.Actor, id int64) error {
	return uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
		cur, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		effects, err := lifecycle.Delete(a, *cur)
		if err != nil {
			return err
		}
		_, err = applyEffects(ctx, repo, effects)
		return err
	})
}

// VoucherPDF genera el comprobante PDF. Misma regla de visibilidad que Get.
func (uc *UseCase) VoucherPDF(ctx context.Context, a lifecycle.Actor, id int64) ([]byte, string, error) {
	s, err := uc.visible(ctx, a, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.voucher.GenerateSolicitudVoucher(s)
	if err != nil {
		return nil, "", fmt.Errorf("generar comprobante %s: %w", s.Folio, err)
	}
	return pdf, s.Folio, nil
}

func (uc *UseCase) visible(ctx context.Context, a lifecycle.Actor, id int64) (*entity.Solicitud, error) {
	if a.UserID == 0 {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || !lifecycle.CanView(a, *s) {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (uc *UseCase) load(ctx context.Context, id int64) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToResponse(s), nil
}
