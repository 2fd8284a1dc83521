package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
)

// ParcialHandler maneja las entregas parciales.
type ParcialHandler struct {
	uc *solicitud.UseCase
}

func NewParcialHandler(uc *solicitud.UseCase) *ParcialHandler {
	return &ParcialHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrega parcial (admin)
// @Description  La solicitud queda en "entrega parcial" sin importar las cantidades entregadas.
// @Tags         suministros-parciales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        solicitudId  path  int                       true  "ID de la solicitud"
// @Param        body         body  dto.CreateParcialRequest  true  "Suministros entregados"
// @Success      201          {object}  dto.SolicitudEnvelope
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      403          {object}  dto.ErrorResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/suministros-parciales/{solicitudId} [post]
func (h *ParcialHandler) Create(c *fiber.Ctx) error {
	id, err := paramID(c, "solicitudId")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CreateParcialRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordDelivery(c.UserContext(), ActorFrom(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SolicitudEnvelope{Msg: "Entrega parcial registrada", Solicitud: out})
}

// List godoc
// @Summary      Entregas parciales de una solicitud
// @Tags         suministros-parciales
// @Security     Bearer
// @Produce      json
// @Param        solicitudId  path  int  true  "ID de la solicitud"
// @Success      200          {object}  dto.ParcialListResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/suministros-parciales/{solicitudId} [get]
func (h *ParcialHandler) List(c *fiber.Ctx) error {
	id, err := paramID(c, "solicitudId")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListDeliveries(c.UserContext(), ActorFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrega parcial (admin)
// @Tags         suministros-parciales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suministros-parciales/{id} [delete]
func (h *ParcialHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteDelivery(c.UserContext(), ActorFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Entrega parcial eliminada"})
}
