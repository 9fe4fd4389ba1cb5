package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartax-ai/smartax-api/internal/application/session"
)

// SessionHandler apertura y cierre de sesiones anónimas.
type SessionHandler struct {
	uc *session.UseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.UseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir sesión anónima
// @Description  Devuelve el token Bearer que aísla borradores, simulador y lote CFDI.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// End godoc
// @Summary      Cerrar sesión
// @Tags         sessions
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sessions [delete]
func (h *SessionHandler) End(c *fiber.Ctx) error {
	h.uc.End(c.Context(), GetSessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
