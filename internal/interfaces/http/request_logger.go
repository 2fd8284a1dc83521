package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Suministros-api/pkg/logger"
)

const (
	headerRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// RequestLogging asigna un request id (o respeta el recibido), lo devuelve en X-Request-ID y
// registra método, ruta, status y latencia con zerolog.
func RequestLogging(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(headerRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)
		reqLog := log.Child(log.With().Str("request_id", rid))
		c.Locals(localLogger, reqLog)

		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de fiber escriba la respuesta antes de loguear el status.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

// RequestLogger devuelve el logger del request (con request_id) o uno nulo si no hay middleware.
func RequestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
