package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/taxdraft"
)

// TaxHandler calculadora fiscal y borradores de la sesión.
type TaxHandler struct {
	uc *taxdraft.UseCase
}

// NewTaxHandler construye el handler.
func NewTaxHandler(uc *taxdraft.UseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular impuestos
// @Description  Evalúa ISR, IVA, IEPS y PTU sin modificar el estado de la sesión.
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TaxCalculationRequest  true  "perfil y datos financieros (montos como texto)"
// @Success      200   {object}  entity.TaxResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax/calculate [post]
func (h *TaxHandler) Calculate(c *fiber.Ctx) error {
	var in dto.TaxCalculationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Calculate(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// NewDraft godoc
// @Summary      Nuevo borrador
// @Description  Reinicia el borrador activo con la plantilla vacía.
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.TaxDraftResponse
// @Router       /api/drafts [post]
func (h *TaxHandler) NewDraft(c *fiber.Ctx) error {
	out, err := h.uc.CreateDraft(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetActive godoc
// @Summary      Borrador activo
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaxDraftResponse
// @Router       /api/drafts/active [get]
func (h *TaxHandler) GetActive(c *fiber.Ctx) error {
	out, err := h.uc.GetActive(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateActive godoc
// @Summary      Editar borrador activo
// @Description  Solo se modifican los campos presentes en el cuerpo.
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateDraftRequest  true  "campos a modificar"
// @Success      200   {object}  dto.TaxDraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/drafts/active [put]
func (h *TaxHandler) UpdateActive(c *fiber.Ctx) error {
	var in dto.UpdateDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateActive(c.Context(), GetSessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CalculateActive godoc
// @Summary      Calcular borrador activo
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaxDraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/drafts/active/calculate [post]
func (h *TaxHandler) CalculateActive(c *fiber.Ctx) error {
	out, err := h.uc.CalculateActive(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveActive godoc
// @Summary      Guardar borrador activo
// @Description  Reemplaza el borrador guardado con el mismo id o lo agrega con un id nuevo.
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TaxDraftResponse
// @Router       /api/drafts/active/save [post]
func (h *TaxHandler) SaveActive(c *fiber.Ctx) error {
	out, err := h.uc.SaveDraft(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportJSON godoc
// @Summary      Exportar cálculo para declaración (JSON)
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DeclarationExport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/drafts/active/export/json [get]
func (h *TaxHandler) ExportJSON(c *fiber.Ctx) error {
	f, err := h.uc.ExportDeclaration(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// ExportPDF godoc
// @Summary      Exportar resumen del cálculo (PDF)
// @Tags         drafts
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/drafts/active/export/pdf [get]
func (h *TaxHandler) ExportPDF(c *fiber.Ctx) error {
	f, err := h.uc.ExportPDF(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// List godoc
// @Summary      Listar borradores guardados
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        limit   query     int  false  "máximo 100"
// @Param        offset  query     int  false  "desplazamiento"
// @Success      200     {object}  dto.TaxDraftListResponse
// @Router       /api/drafts [get]
func (h *TaxHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListDrafts(c.Context(), GetSessionID(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener borrador guardado
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id del borrador"
// @Success      200  {object}  dto.TaxDraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [get]
func (h *TaxHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.Context(), GetSessionID(c), utils.CopyString(c.Params("id")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Load godoc
// @Summary      Cargar borrador guardado en edición
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "id del borrador"
// @Success      200  {object}  dto.TaxDraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id}/load [post]
func (h *TaxHandler) Load(c *fiber.Ctx) error {
	out, err := h.uc.LoadDraft(c.Context(), GetSessionID(c), utils.CopyString(c.Params("id")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar borrador guardado
// @Tags         drafts
// @Security     Bearer
// @Param        id   path  string  true  "id del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drafts/{id} [delete]
func (h *TaxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteDraft(c.Context(), GetSessionID(c), utils.CopyString(c.Params("id"))); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
