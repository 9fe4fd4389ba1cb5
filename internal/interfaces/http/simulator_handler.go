package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/simulator"
)

// SimulatorHandler asistente de simulación de 4 pasos.
type SimulatorHandler struct {
	uc *simulator.UseCase
}

// NewSimulatorHandler construye el handler.
func NewSimulatorHandler(uc *simulator.UseCase) *SimulatorHandler {
	return &SimulatorHandler{uc: uc}
}

// Strategies godoc
// @Summary      Optimizaciones disponibles en el simulador
// @Tags         simulator
// @Produce      json
// @Success      200  {array}  dto.SimulatorStrategyDTO
// @Router       /api/simulator/strategies [get]
func (h *SimulatorHandler) Strategies(c *fiber.Ctx) error {
	return c.JSON(h.uc.Strategies())
}

// Get godoc
// @Summary      Estado del simulador
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScenarioResponse
// @Router       /api/simulator [get]
func (h *SimulatorHandler) Get(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Get(c.Context(), sid)
	})
}

// UpdateSituation godoc
// @Summary      Capturar situación actual (paso 1)
// @Tags         simulator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateSituationRequest  true  "situación y nombre opcional"
// @Success      200   {object}  dto.ScenarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/simulator/situation [put]
func (h *SimulatorHandler) UpdateSituation(c *fiber.Ctx) error {
	var in dto.UpdateSituationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.UpdateSituation(c.Context(), sid, in)
	})
}

// Rename godoc
// @Summary      Renombrar escenario
// @Tags         simulator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RenameScenarioRequest  true  "nombre"
// @Success      200   {object}  dto.ScenarioResponse
// @Router       /api/simulator/name [put]
func (h *SimulatorHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameScenarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Rename(c.Context(), sid, in.Name)
	})
}

// SetOptimization godoc
// @Summary      Activar o desactivar optimización (paso 2)
// @Tags         simulator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path      string                      true  "clave de la optimización"
// @Param        body  body      dto.SetOptimizationRequest  true  "enabled"
// @Success      200   {object}  dto.ScenarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/simulator/optimizations/{key} [put]
func (h *SimulatorHandler) SetOptimization(c *fiber.Ctx) error {
	var in dto.SetOptimizationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.SetOptimization(c.Context(), sid, utils.CopyString(c.Params("key")), in.Enabled)
	})
}

// ToggleOptimization godoc
// @Summary      Alternar optimización (paso 2)
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Param        key  path      string  true  "clave de la optimización"
// @Success      200  {object}  dto.ScenarioResponse
// @Router       /api/simulator/optimizations/{key}/toggle [post]
func (h *SimulatorHandler) ToggleOptimization(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.ToggleOptimization(c.Context(), sid, utils.CopyString(c.Params("key")))
	})
}

// Advance godoc
// @Summary      Avanzar al siguiente paso
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScenarioResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/simulator/advance [post]
func (h *SimulatorHandler) Advance(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Advance(c.Context(), sid)
	})
}

// Back godoc
// @Summary      Regresar al paso 1
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScenarioResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/simulator/back [post]
func (h *SimulatorHandler) Back(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Back(c.Context(), sid)
	})
}

// Analyze godoc
// @Summary      Ejecutar análisis (paso 3 → 4)
// @Description  Espera el retardo simulado y calcula resultados y recomendaciones.
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScenarioResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/simulator/analyze [post]
func (h *SimulatorHandler) Analyze(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Analyze(c.Context(), sid)
	})
}

// Reset godoc
// @Summary      Reiniciar simulador
// @Tags         simulator
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScenarioResponse
// @Router       /api/simulator/reset [post]
func (h *SimulatorHandler) Reset(c *fiber.Ctx) error {
	return h.reply(c, func(sid string) (*dto.ScenarioResponse, error) {
		return h.uc.Reset(c.Context(), sid)
	})
}

func (h *SimulatorHandler) reply(c *fiber.Ctx, fn func(sessionID string) (*dto.ScenarioResponse, error)) error {
	out, err := fn(GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
