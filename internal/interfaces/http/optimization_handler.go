package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/optimization"
)

// OptimizationHandler catálogo de estrategias, análisis avanzado (público) y comparación por sesión.
type OptimizationHandler struct {
	uc *optimization.UseCase
}

// NewOptimizationHandler construye el handler.
func NewOptimizationHandler(uc *optimization.UseCase) *OptimizationHandler {
	return &OptimizationHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo de estrategias de optimización
// @Tags         optimization
// @Produce      json
// @Success      200  {array}  optimization.Strategy
// @Router       /api/optimization/strategies [get]
func (h *OptimizationHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog())
}

// Industries godoc
// @Summary      Industrias y multiplicadores sectoriales
// @Tags         optimization
// @Produce      json
// @Success      200  {array}  sat.Industry
// @Router       /api/optimization/industries [get]
func (h *OptimizationHandler) Industries(c *fiber.Ctx) error {
	return c.JSON(h.uc.Industries())
}

// Analyze godoc
// @Summary      Análisis avanzado de optimización
// @Description  Estrategias aplicables al perfil ordenadas por ahorro, proyecciones, nivel de riesgo y resultado base del escenario.
// @Tags         optimization
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OptimizationAnalysisRequest  true  "perfil (montos como texto)"
// @Success      200   {object}  optimization.Analysis
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/optimization/analyze [post]
func (h *OptimizationHandler) Analyze(c *fiber.Ctx) error {
	var in dto.OptimizationAnalysisRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Analyze(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddToComparison godoc
// @Summary      Agregar escenario a la comparación
// @Description  Evalúa el escenario y lo agrega a la lista de la sesión; sin ingresos no hay resultados y se rechaza.
// @Tags         optimization
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AddComparisonRequest  true  "escenario (montos como texto)"
// @Success      201   {object}  dto.ComparisonListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/optimization/comparison [post]
func (h *OptimizationHandler) AddToComparison(c *fiber.Ctx) error {
	var in dto.AddComparisonRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddToComparison(c.Context(), GetSessionID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListComparison godoc
// @Summary      Escenarios en comparación
// @Tags         optimization
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComparisonListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/optimization/comparison [get]
func (h *OptimizationHandler) ListComparison(c *fiber.Ctx) error {
	out, err := h.uc.ListComparison(c.Context(), GetSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ClearComparison godoc
// @Summary      Vaciar la comparación
// @Tags         optimization
// @Security     Bearer
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/optimization/comparison [delete]
func (h *OptimizationHandler) ClearComparison(c *fiber.Ctx) error {
	h.uc.ClearComparison(c.Context(), GetSessionID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
