package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain/access"
)

// RequireCapability devuelve un middleware Fiber que verifica que el rol del caller posea la
// capacidad. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
//   - 401 si no hay rol en el contexto.
//   - 403 si el rol no posee la capacidad.
//
// Los casos de uso vuelven a verificar la capacidad; el middleware corta antes de leer el body.
func RequireCapability(c access.Capability) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := GetRole(ctx)
		if role == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el contexto",
			})
		}
		if !access.Can(role, c) {
			return ctx.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "no tienes permiso para esta acción (" + string(c) + ")",
			})
		}
		return ctx.Next()
	}
}
