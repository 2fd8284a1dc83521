package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suministros-api/internal/application/dto"
	"github.com/jhoicas/Suministros-api/internal/domain"
	"github.com/jhoicas/Suministros-api/internal/domain/entity"
	"github.com/jhoicas/Suministros-api/internal/domain/lifecycle"
	"github.com/jhoicas/Suministros-api/pkg/jwt"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalArea   = "area"
)

// identityResolver confirma que el usuario del token sigue existiendo y devuelve su rol y área actuales.
// Lo implementa *usecase.UserUseCase.
type identityResolver interface {
	ResolveIdentity(ctx context.Context, id int64) (lifecycle.Actor, error)
}

// AuthMiddleware valida el Bearer Token JWT, resuelve la identidad contra la DB y la deja en c.Locals.
func AuthMiddleware(jwtSecret string, resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || id.UserID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		actor, err := resolver.ResolveIdentity(c.UserContext(), id.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "el usuario del token ya no existe"})
			}
			return writeError(c, err)
		}
		c.Locals(LocalUserID, actor.UserID)
		c.Locals(LocalRole, actor.Role)
		c.Locals(LocalArea, actor.Area)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth). 0 si no hay identidad.
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) entity.Role {
	v, _ := c.Locals(LocalRole).(entity.Role)
	return v
}

// GetArea devuelve el área del contexto.
func GetArea(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalArea).(string)
	return v
}

// ActorFrom arma el actor de dominio con la identidad del request.
func ActorFrom(c *fiber.Ctx) lifecycle.Actor {
	return lifecycle.Actor{UserID: GetUserID(c), Role: GetRole(c), Area: GetArea(c)}
}
