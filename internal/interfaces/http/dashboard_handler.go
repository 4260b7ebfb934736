package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/scope3-api/internal/application/analytics"
)

// DashboardHandler maneja el tablero y la vista de análisis.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del tablero
// @Description  KPIs, desglose por categoría y registros enviados por el usuario.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Security     BearerAuth
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetAnalysis godoc
// @Summary      Análisis de emisiones
// @Description  Categorías, tendencia mensual contra la meta, riesgo por proveedor y hallazgos.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AnalysisDTO
// @Security     BearerAuth
// @Router       /api/analysis [get]
func (h *DashboardHandler) GetAnalysis(c *fiber.Ctx) error {
	out, err := h.uc.GetAnalysis(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
