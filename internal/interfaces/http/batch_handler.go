package http

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ingest"
)

// TemplateFormat formato descargable de la plantilla de carga.
type TemplateFormat struct {
	ContentType string
	Write       func(w io.Writer) error
}

// BatchHandler expone la carga por lotes con vista previa.
type BatchHandler struct {
	svc       *ingest.Service
	templates map[string]TemplateFormat // por extensión: csv, xlsx
}

// NewBatchHandler construye el handler.
func NewBatchHandler(svc *ingest.Service, templates map[string]TemplateFormat) *BatchHandler {
	return &BatchHandler{svc: svc, templates: templates}
}

// Create godoc
// @Summary      Abrir sesión de carga
// @Tags         batches
// @Produce      json
// @Success      201  {object}  dto.BatchResponse
// @Security     BearerAuth
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.svc.Create(GetUserID(c)))
}

// Get godoc
// @Summary      Estado de la carga
// @Description  Incluye resumen, muestra de 3 registros y cuántos quedan fuera (solo en vista previa).
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "ID de la sesión"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir archivo
// @Description  CSV con encabezado. PDF/JPG/PNG responden 400 BACKEND_REQUIRED; mientras otro archivo se procesa, 409.
// @Tags         batches
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID de la sesión"
// @Param        file  formData  file    true  "archivo"
// @Success      200   {object}  dto.BatchActionResponse
// @Failure      400   {object}  dto.BatchActionResponse
// @Failure      409   {object}  dto.BatchActionResponse
// @Security     BearerAuth
// @Router       /api/batches/{id}/file [post]
func (h *BatchHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := h.svc.Upload(GetUserID(c), c.Params("id"), fh.Filename, f)
	if out == nil {
		return writeError(c, err)
	}
	if err != nil {
		return writeStateError(c, err, out)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar y enviar el lote
// @Description  Envía todos los registros de la vista previa (no solo la muestra).
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "ID de la sesión"
// @Success      200  {object}  dto.BatchActionResponse
// @Failure      409  {object}  dto.BatchActionResponse
// @Failure      502  {object}  dto.BatchActionResponse
// @Security     BearerAuth
// @Router       /api/batches/{id}/confirm [post]
func (h *BatchHandler) Confirm(c *fiber.Ctx) error {
	out, err := h.svc.Confirm(c.UserContext(), GetUserID(c), c.Params("id"))
	if out == nil {
		return writeError(c, err)
	}
	if err != nil {
		return writeStateError(c, err, out)
	}
	return c.JSON(out)
}

// Reupload godoc
// @Summary      Descartar la vista previa
// @Tags         batches
// @Produce      json
// @Param        id   path      string  true  "ID de la sesión"
// @Success      200  {object}  dto.BatchResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/batches/{id}/reupload [post]
func (h *BatchHandler) Reupload(c *fiber.Ctx) error {
	out, err := h.svc.Reupload(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Cerrar la sesión de carga
// @Tags         batches
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Security     BearerAuth
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Template godoc
// @Summary      Descargar plantilla
// @Tags         batches
// @Produce      octet-stream
// @Param        format  query  string  false  "csv (por defecto) o xlsx"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/batches/template [get]
func (h *BatchHandler) Template(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", "csv"))
	tf, ok := h.templates[format]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato no soportado: " + format})
	}
	var buf bytes.Buffer
	if err := tf.Write(&buf); err != nil {
		return writeError(c, err)
	}
	c.Attachment(ingest.TemplateBaseName + "." + format)
	c.Set(fiber.HeaderContentType, tf.ContentType)
	return c.Send(buf.Bytes())
}
