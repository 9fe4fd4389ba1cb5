package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcfdi "github.com/smartax-ai/smartax-api/internal/application/cfdi"
	"github.com/smartax-ai/smartax-api/internal/application/dto"
	appopt "github.com/smartax-ai/smartax-api/internal/application/optimization"
	"github.com/smartax-ai/smartax-api/internal/application/session"
	"github.com/smartax-ai/smartax-api/internal/application/simulator"
	"github.com/smartax-ai/smartax-api/internal/application/taxdraft"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	cfdiinfra "github.com/smartax-ai/smartax-api/internal/infrastructure/cfdi"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/memory"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/metrics"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/pdf"
	apphttp "github.com/smartax-ai/smartax-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "smartax-test"
	testTTL    = time.Hour
)

// buildTestApp arma la API completa sobre almacenes en memoria y sin retardos simulados.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zerolog.Nop()
	prom := metrics.NewPrometheus()

	sessions := memory.NewSessionRepository(testTTL)
	drafts := memory.NewTaxDraftRepository(testTTL)
	scenarios := memory.NewScenarioRepository(testTTL)
	batches := memory.NewCFDIBatchRepository(testTTL)
	comparisons := memory.NewComparisonRepository(testTTL)
	t.Cleanup(func() {
		sessions.Close()
		drafts.Close()
		scenarios.Close()
		batches.Close()
		comparisons.Close()
	})

	verifier := cfdiinfra.NewSimulatedVerifier(cfdiinfra.NewSequenceSource(), 0, 0)

	sessionUC := session.NewUseCase(sessions, prom, log, testSecret, testIssuer, testTTL,
		drafts, scenarios, batches, comparisons)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC:      sessionUC,
		TaxUC:          taxdraft.NewUseCase(drafts, pdf.NewMarotoTaxReportGenerator(), prom, log),
		SimulatorUC:    simulator.NewUseCase(scenarios, prom, log, 0),
		CFDIUC:         appcfdi.NewUseCase(batches, verifier, cfdiinfra.NewCodec(), prom, log),
		OptimizationUC: appopt.NewUseCase(comparisons, log),
	})
	return app
}

// do lanza la petición y devuelve la respuesta.
func do(t *testing.T, app *fiber.App, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// doJSON serializa in como cuerpo JSON.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, in any) *http.Response {
	t.Helper()
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return do(t, app, method, path, token, body, fiber.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// openSession crea una sesión y devuelve su token.
func openSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/sessions", "", nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.SessionResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, resp).Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesiones
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/drafts/active", "", nil, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestSessionMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/drafts/active", nil)
	req.Header.Set("Authorization", "Basic abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestSessionMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/drafts/active", "token.invalido.aqui", nil, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SESSION_NOT_FOUND", errorCode(t, resp))
}

func TestSession_CerradaYaNoAutoriza(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := do(t, app, http.MethodDelete, "/api/sessions", token, nil, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/simulator", token, nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo fiscal y borradores
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxCalculate_Publico(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/tax/calculate", "", dto.TaxCalculationRequest{
		EntityType:       "moral",
		Regime:           "general",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Income: "5,000,000", Expenses: "3000000", Period: "annual"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[map[string]any](t, resp)
	assert.Equal(t, "600000", out["isr"])
}

func TestTaxCalculate_CuerpoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodPost, "/api/tax/calculate", "", strings.NewReader("{"), fiber.MIMEApplicationJSON)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

func TestTaxCalculate_Validacion_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/tax/calculate", "", dto.TaxCalculationRequest{
		EntityType: "cooperativa",
		Regime:     "general",
		BasicData:  entity.BasicData{Income: "1000", Period: "annual"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestTaxCalculate_MontoExponencial_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/tax/calculate", "", dto.TaxCalculationRequest{
		EntityType:       "moral",
		Regime:           "general",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Income: "1e20000000", Period: "annual"},
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestDrafts_GuardarCargarExportar(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/drafts/active", token, dto.UpdateDraftRequest{
		BasicData: &entity.BasicData{
			Income:     "5000000",
			Expenses:   "3000000",
			Deductions: "500000",
			Period:     "annual",
		},
		AdvancedData: &entity.AdvancedData{Employees: "25"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Exportar sin resultado no es posible.
	resp = do(t, app, http.MethodGet, "/api/drafts/active/export/json", token, nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/drafts/active/calculate", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	calculated := decode[map[string]any](t, resp)
	result, ok := calculated["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1400000", result["totalTax"])

	resp = do(t, app, http.MethodPost, "/api/drafts/active/save", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[dto.TaxDraftResponse](t, resp)
	require.NotEmpty(t, saved.ID)

	resp = do(t, app, http.MethodGet, "/api/drafts?limit=10", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.TaxDraftListResponse](t, resp)
	assert.Equal(t, 1, list.Page.Total)

	resp = do(t, app, http.MethodGet, "/api/drafts/active/export/json", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "calculo_fiscal_")

	resp = do(t, app, http.MethodGet, "/api/drafts/active/export/pdf", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	// Nuevo borrador y luego recuperar el guardado.
	resp = do(t, app, http.MethodPost, "/api/drafts", token, nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	fresh := decode[dto.TaxDraftResponse](t, resp)
	assert.Empty(t, fresh.ID)
	assert.Nil(t, fresh.Result)

	resp = do(t, app, http.MethodPost, "/api/drafts/"+saved.ID+"/load", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loaded := decode[dto.TaxDraftResponse](t, resp)
	assert.Equal(t, saved.ID, loaded.ID)
	require.NotNil(t, loaded.Result)
	assert.Equal(t, "1400000", loaded.Result.TotalTax.String())

	resp = do(t, app, http.MethodDelete, "/api/drafts/"+saved.ID, token, nil, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/drafts/"+saved.ID, token, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestDrafts_AisladosPorSesion(t *testing.T) {
	app := buildTestApp(t)
	a := openSession(t, app)
	b := openSession(t, app)

	name := "Solo A"
	resp := doJSON(t, app, http.MethodPut, "/api/drafts/active", a, dto.UpdateDraftRequest{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/drafts/active", b, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, name, decode[dto.TaxDraftResponse](t, resp).Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Simulador
// ──────────────────────────────────────────────────────────────────────────────

func TestSimulator_AvanzarSinDatos_Retorna422(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := do(t, app, http.MethodPost, "/api/simulator/advance", token, nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "GUARD_REJECTED", errorCode(t, resp))
}

func TestSimulator_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/simulator/situation", token, dto.UpdateSituationRequest{
		Situation: entity.Situation{Income: "2500000", Expenses: "1000000", CurrentTax: "300000", Industry: "technology"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ScenarioResponse](t, resp).CanAdvance)

	resp = do(t, app, http.MethodPost, "/api/simulator/advance", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/simulator/optimizations/"+entity.OptAcceleratedDepreciation, token,
		dto.SetOptimizationRequest{Enabled: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/simulator/optimizations/"+entity.OptTrainingDeductions+"/toggle", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/simulator/advance", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.StepAnalyzing, decode[dto.ScenarioResponse](t, resp).Step)

	resp = do(t, app, http.MethodPost, "/api/simulator/analyze", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.EqualValues(t, entity.StepResults, out["step"])
	results, ok := out["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "325000", results["totalSavings"])

	resp = do(t, app, http.MethodPost, "/api/simulator/reset", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.StepInput, decode[dto.ScenarioResponse](t, resp).Step)
}

func TestSimulator_SeleccionSobreviveAPeticionesPosteriores(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := doJSON(t, app, http.MethodPut, "/api/simulator/situation", token, dto.UpdateSituationRequest{
		Situation: entity.Situation{Income: "2500000", CurrentTax: "300000"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodPost, "/api/simulator/advance", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/simulator/optimizations/"+entity.OptAcceleratedDepreciation, token,
		dto.SetOptimizationRequest{Enabled: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, app, http.MethodPost, "/api/simulator/optimizations/"+entity.OptCharityDeductions+"/toggle", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Peticiones intermedias reutilizan los buffers de Fiber.
	for i := 0; i < 3; i++ {
		resp = do(t, app, http.MethodGet, "/api/simulator/strategies?relleno=xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp = do(t, app, http.MethodGet, "/api/drafts/00000000-aaaa-bbbb-cccc-000000000000", token, nil, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	resp = do(t, app, http.MethodGet, "/api/simulator", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.ScenarioResponse](t, resp)
	assert.True(t, got.Optimizations[entity.OptAcceleratedDepreciation])
	assert.True(t, got.Optimizations[entity.OptCharityDeductions])
	for key := range got.Optimizations {
		assert.Contains(t, []string{
			entity.OptAcceleratedDepreciation, entity.OptTrainingDeductions, entity.OptResearchCredits,
			entity.OptEnergyEfficiency, entity.OptCharityDeductions,
		}, key)
	}
}

func TestSimulator_EstrategiasPublicas(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/simulator/strategies", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.SimulatorStrategyDTO](t, resp), 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// Optimización
// ──────────────────────────────────────────────────────────────────────────────

func TestOptimization_Catalogos(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/optimization/strategies", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode[[]map[string]any](t, resp))

	resp = do(t, app, http.MethodGet, "/api/optimization/industries", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode[[]map[string]any](t, resp))
}

func TestOptimization_AnalisisIncluyeEscenarioConDeducciones(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/optimization/analyze", "", dto.OptimizationAnalysisRequest{
		Income:     "1000000",
		Expenses:   "400000",
		Deductions: "100000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	sc, ok := out["scenario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "500000", sc["taxableIncome"])
	assert.Equal(t, "150000", sc["baseTax"])
	assert.Equal(t, "850000", sc["netIncome"])
	assert.Equal(t, "15", sc["effectiveRate"])
	assert.NotEmpty(t, sc["timestamp"])
}

func TestOptimization_ComparacionPorSesion(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)
	other := openSession(t, app)

	resp := do(t, app, http.MethodGet, "/api/optimization/comparison", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/optimization/comparison", token, dto.AddComparisonRequest{Name: "Vacío"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "sin ingresos no hay resultados")

	for _, name := range []string{"Base", "Con deducciones"} {
		resp = doJSON(t, app, http.MethodPost, "/api/optimization/comparison", token, dto.AddComparisonRequest{
			OptimizationAnalysisRequest: dto.OptimizationAnalysisRequest{Income: "1000000", Expenses: "400000", Deductions: "100000"},
			Name:                        name,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = do(t, app, http.MethodGet, "/api/optimization/comparison", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ComparisonListResponse](t, resp)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Base", list.Items[0].Name)
	assert.Equal(t, "Con deducciones", list.Items[1].Name)
	assert.NotEqual(t, list.Items[0].ID, list.Items[1].ID)
	assert.Equal(t, "150000", list.Items[0].Results.BaseTax.String())

	resp = do(t, app, http.MethodGet, "/api/optimization/comparison", other, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decode[dto.ComparisonListResponse](t, resp).Total)

	resp = do(t, app, http.MethodDelete, "/api/optimization/comparison", token, nil, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, app, http.MethodGet, "/api/optimization/comparison", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.ComparisonListResponse](t, resp).Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// CFDI
// ──────────────────────────────────────────────────────────────────────────────

func multipartBody(t *testing.T, field string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCFDI_PlantillaPublica(t *testing.T) {
	app := buildTestApp(t)
	resp := do(t, app, http.MethodGet, "/api/cfdi/template", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, cfdiinfra.TemplateCSV, string(body))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), cfdiinfra.TemplateFilename)
}

func TestCFDI_CargarValidarExportar(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	body, ct := multipartBody(t, "file", map[string]string{"lote.csv": cfdiinfra.TemplateCSV})
	resp := do(t, app, http.MethodPost, "/api/cfdi/upload/csv", token, body, ct)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	uploaded := decode[dto.CFDIBatchResponse](t, resp)
	assert.Equal(t, 2, uploaded.Summary.Pending)

	resp = do(t, app, http.MethodPost, "/api/cfdi/validate", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	validated := decode[dto.CFDIBatchResponse](t, resp)
	assert.False(t, validated.Processing)
	assert.Equal(t, entity.CFDISummary{Total: 2, Valid: 2}, validated.Summary)

	resp = do(t, app, http.MethodGet, "/api/cfdi/export", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	csvOut, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvOut), `"UUID","RFC_Emisor","Monto","Estado","Error","Fecha_Validacion"`))
	assert.Contains(t, string(csvOut), cfdiinfra.LabelValid)

	// Los registros resueltos no se pueden quitar.
	resp = do(t, app, http.MethodDelete, "/api/cfdi/records/0", token, nil, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/cfdi/records/9", token, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/cfdi/reset", token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.CFDIBatchResponse](t, resp).Records)
}

func TestCFDI_CargaSinArchivo_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	body, ct := multipartBody(t, "otro", map[string]string{"lote.csv": cfdiinfra.TemplateCSV})
	resp := do(t, app, http.MethodPost, "/api/cfdi/upload/csv", token, body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCFDI_ValidacionIndividual(t *testing.T) {
	app := buildTestApp(t)
	token := openSession(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/cfdi/validate-single", token, dto.ValidateSingleRequest{
		UUID: "12345678-1234-1234-1234-123456789abc",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.CFDIBatchResponse](t, resp)
	assert.Equal(t, entity.CFDIModeSingle, out.Mode)
	require.Len(t, out.Records, 1)
	assert.Equal(t, entity.CFDIStatusValid, out.Records[0].Status)
	assert.Equal(t, appcfdi.NotSpecifiedRFC, out.Records[0].RFC)
}
