package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/solicitud"
)

// SolicitudHandler maneja el ciclo de vida de las solicitudes (protegido).
type SolicitudHandler struct {
	uc *solicitud.UseCase
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *solicitud.UseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud
// @Description  Asigna el folio del área y año en curso. suministros acepta un arreglo o un string JSON con el arreglo.
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitudRequest  true  "Prioridad, comentario y suministros"
// @Success      201   {object}  dto.SolicitudEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SolicitudEnvelope{Msg: "Solicitud creada correctamente", Solicitud: out})
}

// List godoc
// @Summary      Listar todas las solicitudes (admin)
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SolicitudListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar mis solicitudes
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SolicitudListResponse
// @Router       /api/solicitudes/usuario [get]
func (h *SolicitudHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), ActorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener solicitud
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), ActorFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SolicitudEnvelope{Solicitud: out})
}

// Update godoc
// @Summary      Editar solicitud propia
// @Description  Si viene suministros, reemplaza la lista completa.
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID de la solicitud"
// @Param        body  body  dto.UpdateSolicitudRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SolicitudEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [put]
func (h *SolicitudHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UpdateSolicitudRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), ActorFrom(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SolicitudEnvelope{Msg: "Solicitud actualizada correctamente", Solicitud: out})
}

// ChangeStatus godoc
// @Summary      Cambiar status (admin)
// @Tags         solicitudes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID de la solicitud"
// @Param        body  body  dto.ChangeStatusRequest  true  "Nuevo status y comentario"
// @Success      200   {object}  dto.SolicitudEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/status [put]
func (h *SolicitudHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ChangeStatusRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), ActorFrom(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SolicitudEnvelope{Msg: "Status actualizado correctamente", Solicitud: out})
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Description  Sólo el dueño; otro usuario recibe 404. Elimina también suministros y entregas parciales.
// @Tags         solicitudes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id} [delete]
func (h *SolicitudHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), ActorFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Solicitud eliminada correctamente"})
}

// Voucher godoc
// @Summary      Comprobante PDF de la solicitud
// @Tags         solicitudes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la solicitud"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitudes/{id}/pdf [get]
func (h *SolicitudHandler) Voucher(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, folio, err := h.uc.VoucherPDF(c.UserContext(), ActorFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="solicitud-`+folio+`.pdf"`)
	return c.Send(pdf)
}
