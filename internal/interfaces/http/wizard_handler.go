package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/feedback"
	"github.com/jhoicas/scope3-api/internal/application/wizard"
)

// WizardHandler expone el formulario paso a paso.
type WizardHandler struct {
	svc *wizard.Service
}

// NewWizardHandler construye el handler.
func NewWizardHandler(svc *wizard.Service) *WizardHandler {
	return &WizardHandler{svc: svc}
}

// Create godoc
// @Summary      Abrir formulario de captura
// @Tags         wizard
// @Produce      json
// @Success      201  {object}  dto.WizardResponse
// @Security     BearerAuth
// @Router       /api/wizard [post]
func (h *WizardHandler) Create(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.svc.Create(GetUserID(c)))
}

// Get godoc
// @Summary      Estado del formulario
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.WizardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id} [get]
func (h *WizardHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateDraft godoc
// @Summary      Actualizar campos del borrador
// @Description  Solo cambia los campos presentes; limpia el error de cada campo tocado.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID del formulario"
// @Param        body  body      dto.UpdateWizardDraftRequest  true  "campos"
// @Success      200   {object}  dto.WizardResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id}/draft [patch]
func (h *WizardHandler) UpdateDraft(c *fiber.Ctx) error {
	var in dto.UpdateWizardDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Next godoc
// @Summary      Avanzar al siguiente paso
// @Description  Valida los campos del paso actual; con errores responde 422 con el estado y los errores por campo.
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.WizardActionResponse
// @Failure      422  {object}  dto.WizardActionResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *fiber.Ctx) error {
	out, err := h.svc.Advance(GetUserID(c), c.Params("id"))
	if out == nil {
		return writeError(c, err)
	}
	if err != nil {
		n := feedback.FromError(err)
		return writeStateError(c, err, dto.WizardActionResponse{Wizard: *out, Notice: &n})
	}
	return c.JSON(dto.WizardActionResponse{Wizard: *out})
}

// Back godoc
// @Summary      Volver al paso anterior
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.WizardActionResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id}/back [post]
func (h *WizardHandler) Back(c *fiber.Ctx) error {
	out, err := h.svc.Retreat(GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.WizardActionResponse{Wizard: *out})
}

// Submit godoc
// @Summary      Enviar el registro
// @Description  Solo en el paso de revisión. Ante un fallo del destino el borrador se conserva (502).
// @Tags         wizard
// @Produce      json
// @Param        id   path      string  true  "ID del formulario"
// @Success      200  {object}  dto.WizardSubmitResponse
// @Failure      409  {object}  dto.WizardActionResponse
// @Failure      502  {object}  dto.WizardActionResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	ok, state, err := h.svc.Submit(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		if state == nil {
			return writeError(c, err)
		}
		n := feedback.FromError(err)
		return writeStateError(c, err, dto.WizardActionResponse{Wizard: *state, Notice: &n})
	}
	return c.JSON(ok)
}

// Delete godoc
// @Summary      Descartar el formulario
// @Tags         wizard
// @Param        id   path  string  true  "ID del formulario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/wizard/{id} [delete]
func (h *WizardHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
