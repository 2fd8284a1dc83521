package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Suministros-api/internal/application/analytics"
)

// DashboardHandler maneja el dashboard del usuario.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetUserDashboard devuelve las estadísticas de las solicitudes del caller.
// GET /api/dashboard/usuario
//
// Respuesta: DashboardDTO (estadoSolicitudes, solicitudesPorMes de los últimos 6 meses,
// solicitudesPorPrioridad, productosMasSolicitados[10], metricas).
// Sólo lectura; dos llamadas seguidas sin escrituras devuelven lo mismo.
//
// @Summary      Dashboard del usuario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/usuario [get]
func (h *DashboardHandler) GetUserDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetUserDashboard(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
