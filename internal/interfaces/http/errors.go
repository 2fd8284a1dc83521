package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrDuplicateFolio antes que ErrDuplicate.
var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrSelfDelete, fiber.StatusBadRequest, "SELF_DELETE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotConfirmed, fiber.StatusForbidden, "NOT_CONFIRMED"},
	{domain.ErrWrongPassword, fiber.StatusForbidden, "WRONG_PASSWORD"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrDuplicateFolio, fiber.StatusConflict, "DUPLICATE_FOLIO"},
	{domain.ErrFolioExhausted, fiber.StatusConflict, "FOLIO_EXHAUSTED"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// writeError traduce un error de dominio a status HTTP + dto.ErrorResponse.
// Los errores no mapeados responden 500 y se registran con el logger del request.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	RequestLogger(c).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
