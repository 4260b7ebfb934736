package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/report"
)

// ReportHandler genera los reportes PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Templates godoc
// @Summary      Tipos de reporte y períodos
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportOptionsDTO
// @Security     BearerAuth
// @Router       /api/reports/templates [get]
func (h *ReportHandler) Templates(c *fiber.Ctx) error {
	return c.JSON(h.uc.Options())
}

// Generate godoc
// @Summary      Generar reporte PDF
// @Description  Tipo y período obligatorios; el aviso de éxito viaja en el header X-Notice.
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.GenerateReportRequest  true  "tipo y período"
// @Success      200
// @Failure      422  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set("X-Notice", url.QueryEscape(out.Notice.Description))
	return c.Send(out.Content)
}
