package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/application/usecase"
)

// UnitHandler maneja el catálogo de unidades de medida.
type UnitHandler struct {
	uc *usecase.UnitUseCase
}

func NewUnitHandler(uc *usecase.UnitUseCase) *UnitHandler {
	return &UnitHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad de medida
// @Tags         unidades-medida
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnitRequest  true  "Nombre"
// @Success      201   {object}  dto.UnitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/unidades-medida [post]
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), ActorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad de medida
// @Tags         unidades-medida
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.UnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/unidades-medida/{id} [get]
func (h *UnitHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades de medida
// @Tags         unidades-medida
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnitListResponse
// @Router       /api/unidades-medida [get]
func (h *UnitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UnitListResponse{Unidades: out})
}

// Update godoc
// @Summary      Actualizar unidad de medida
// @Tags         unidades-medida
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID"
// @Param        body  body  dto.UnitRequest  true  "Nombre"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/unidades-medida/{id} [put]
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.UnitRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), ActorFrom(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad de medida
// @Tags         unidades-medida
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/unidades-medida/{id} [delete]
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), ActorFrom(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Msg: "Unidad de medida eliminada correctamente"})
}
