package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindAndValidate parsea el body JSON y ejecuta los tags de go-playground/validator.
// Devuelve false y escribe la respuesta de error si falla; el caller debe retornar de inmediato.
func bindAndValidate(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return false, writeError(c, err)
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "campos inválidos: " + strings.Join(fields, ", "),
			})
		}
		return false, writeError(c, err)
	}
	return true, nil
}

// paramID lee un parámetro de ruta numérico positivo.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s debe ser un entero positivo", domain.ErrInvalidInput, name)
	}
	return int64(id), nil
}
