package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/smartax-ai/smartax-api/internal/application/cfdi"
	"github.com/smartax-ai/smartax-api/internal/application/dto"
)

// maxXMLFiles comprobantes XML aceptados por carga.
const maxXMLFiles = 50

// CFDIHandler validador simulado de CFDI.
type CFDIHandler struct {
	uc *cfdi.UseCase
}

// NewCFDIHandler construye el handler.
func NewCFDIHandler(uc *cfdi.UseCase) *CFDIHandler {
	return &CFDIHandler{uc: uc}
}

// Template godoc
// @Summary      Plantilla CSV de carga
// @Tags         cfdi
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/cfdi/template [get]
func (h *CFDIHandler) Template(c *fiber.Ctx) error {
	return sendFile(c, h.uc.Template())
}

// Get godoc
// @Summary      Lote CFDI de la sesión
// @Tags         cfdi
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CFDIBatchResponse
// @Router       /api/cfdi [get]
func (h *CFDIHandler) Get(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.Get(c.Context(), sid)
	})
}

// AddRecord godoc
// @Summary      Agregar CFDI al lote
// @Tags         cfdi
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddCFDIRequest  true  "uuid, rfc y monto"
// @Success      201   {object}  dto.CFDIBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cfdi/records [post]
func (h *CFDIHandler) AddRecord(c *fiber.Ctx) error {
	var in dto.AddCFDIRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddRecord(c.Context(), GetSessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveRecord godoc
// @Summary      Quitar CFDI pendiente del lote
// @Tags         cfdi
// @Security     Bearer
// @Produce      json
// @Param        index  path      int  true  "posición en el lote (desde 0)"
// @Success      200    {object}  dto.CFDIBatchResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/cfdi/records/{index} [delete]
func (h *CFDIHandler) RemoveRecord(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.RemoveRecord(c.Context(), sid, index)
	})
}

// UploadCSV godoc
// @Summary      Cargar lote desde CSV
// @Description  Reemplaza el lote con los registros del archivo (formato de la plantilla, UTF-8 o Windows-1252).
// @Tags         cfdi
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo CSV"
// @Success      200   {object}  dto.CFDIBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cfdi/upload/csv [post]
func (h *CFDIHandler) UploadCSV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo file requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.UploadCSV(c.Context(), sid, f)
	})
}

// UploadXML godoc
// @Summary      Agregar CFDI desde XML
// @Description  Extrae UUID, RFC emisor y total de uno o varios comprobantes CFDI 4.0 timbrados.
// @Tags         cfdi
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "comprobantes XML"
// @Success      200    {object}  dto.CFDIBatchResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/cfdi/upload/xml [post]
func (h *CFDIHandler) UploadXML(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formulario multipart requerido"})
	}
	headers := form.File["files"]
	if len(headers) == 0 || len(headers) > maxXMLFiles {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requieren entre 1 y 50 archivos en el campo files"})
	}
	readers := make([]io.Reader, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return writeError(c, err)
		}
		defer f.Close()
		readers = append(readers, f)
	}
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.UploadXML(c.Context(), sid, readers...)
	})
}

// ValidateAll godoc
// @Summary      Validar lote
// @Description  Valida en orden los registros pendientes; una validación concurrente de la misma sesión responde 409.
// @Tags         cfdi
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CFDIBatchResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cfdi/validate [post]
func (h *CFDIHandler) ValidateAll(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.ValidateAll(c.Context(), sid)
	})
}

// ValidateSingle godoc
// @Summary      Validar un CFDI
// @Tags         cfdi
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ValidateSingleRequest  true  "uuid obligatorio; rfc y monto opcionales"
// @Success      200   {object}  dto.CFDIBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cfdi/validate-single [post]
func (h *CFDIHandler) ValidateSingle(c *fiber.Ctx) error {
	var in dto.ValidateSingleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.ValidateSingle(c.Context(), sid, in)
	})
}

// Export godoc
// @Summary      Exportar resultados (CSV)
// @Tags         cfdi
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/cfdi/export [get]
func (h *CFDIHandler) Export(c *fiber.Ctx) error {
	f, err := h.uc.ExportResults(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// Reset godoc
// @Summary      Vaciar lote
// @Tags         cfdi
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CFDIBatchResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cfdi/reset [post]
func (h *CFDIHandler) Reset(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.CFDIBatchResponse, error) {
		return h.uc.Reset(c.Context(), sid)
	})
}

func (h *CFDIHandler) reply(c *fiber.Ctx, fn func(sessionID string) (*dto.CFDIBatchResponse, error)) error {
	out, err := fn(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
