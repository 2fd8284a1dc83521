package solicitud

import (
	"context"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/internal/domain/repository"
)

// RecordDelivery registra las entregas parciales y deja la solicitud en "entrega parcial",
// todo en una transacción.
func (uc *UseCase) RecordDelivery(ctx context.Context, a lifecycle.Actor, solicitudID int64, in dto.CreateParcialRequest) (*dto.SolicitudResponse, error) {
	items := toItemInputs(in.Items())
	if err := lifecycle.CheckDelivery(a, items); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
		cur, err := repo.GetForUpdate(ctx, solicitudID)
		if err != nil {
			return err
		}
		if cur == nil {
			return domain.ErrNotFound
		}
		_, effects, err := lifecycle.RecordDelivery(a, *cur, items, uc.now().In(uc.cfg.Location))
		if err != nil {
			return err
		}
		_, err = applyEffects(ctx, repo, effects)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("solicitud_id", solicitudID).Int("entregas", len(items)).Msg("entrega parcial registrada")
	return uc.load(ctx, solicitudID)
}

// ListDeliveries lista las entregas parciales de una solicitud visible para el actor.
func (uc *UseCase) ListDeliveries(ctx context.Context, a lifecycle.Actor, solicitudID int64) (*dto.ParcialListResponse, error) {
	if _, err := uc.visible(ctx, a, solicitudID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListParciales(ctx, solicitudID)
	if err != nil {
		return nil, err
	}
	return &dto.ParcialListResponse{SuministrosParciales: ToParcialResponses(list)}, nil
}

// DeleteDelivery elimina una entrega parcial. No revierte el status de la solicitud.
func (uc *UseCase) DeleteDelivery(ctx context.Context, a lifecycle.Actor, id int64) error {
	if err := access.Require(a.Role, access.DeleteDelivery); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(repo repository.SolicitudRepository) error {
		p, err := repo.GetParcial(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return repo.DeleteParcial(ctx, id)
	})
}
