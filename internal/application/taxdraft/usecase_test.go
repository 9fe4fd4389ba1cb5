package taxdraft_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/application/taxdraft"
	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/memory"
)

const sid = "sess-1"

type fakeReports struct {
	calls int
	last  *entity.TaxDraft
}

func (f *fakeReports) GenerateTaxReport(_ context.Context, d *entity.TaxDraft) ([]byte, error) {
	f.calls++
	f.last = d
	return []byte("%PDF-1.4"), nil
}

type countingMetrics struct {
	ports.NopMetrics
	calculated int
}

func (m *countingMetrics) TaxCalculated(string, string) { m.calculated++ }

var fixedNow = time.Date(2024, 11, 28, 10, 30, 0, 0, time.UTC)

func newUseCase(t *testing.T) (*taxdraft.UseCase, *fakeReports, *countingMetrics) {
	t.Helper()
	repo := memory.NewTaxDraftRepository(time.Hour)
	t.Cleanup(repo.Close)
	reports := &fakeReports{}
	metrics := &countingMetrics{}
	uc := taxdraft.NewUseCase(repo, reports, metrics, zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })
	return uc, reports, metrics
}

func ptr[T any](v T) *T { return &v }

func referenceUpdate() dto.UpdateDraftRequest {
	return dto.UpdateDraftRequest{
		BasicData: &entity.BasicData{
			Income:     "5000000",
			Expenses:   "3000000",
			Deductions: "500000",
			Period:     "annual",
		},
		AdvancedData: &entity.AdvancedData{Employees: "25"},
	}
}

func TestCalculate_SinEstado(t *testing.T) {
	uc, _, metrics := newUseCase(t)

	res, err := uc.Calculate(context.Background(), dto.TaxCalculationRequest{
		EntityType:       "moral",
		Regime:           "general",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Income: "5,000,000", Expenses: "3000000", Period: "annual"},
	})
	require.NoError(t, err)
	assert.Equal(t, "600000", res.ISR.String())
	assert.Equal(t, 1, metrics.calculated)
}

func TestCalculate_EntradaInvalida(t *testing.T) {
	uc, _, metrics := newUseCase(t)

	_, err := uc.Calculate(context.Background(), dto.TaxCalculationRequest{
		EntityType:       "moral",
		Regime:           "general",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Income: "-1", Period: "annual"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Calculate(context.Background(), dto.TaxCalculationRequest{
		EntityType:       "moral",
		Regime:           "incorporacion",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Period: "annual"},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, metrics.calculated)
}

func TestGetActive_CreaPlantilla(t *testing.T) {
	uc, _, _ := newUseCase(t)

	d, err := uc.GetActive(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, d.ID)
	assert.Equal(t, "moral", d.EntityType)
	assert.Equal(t, "general", d.Regime)
	assert.Equal(t, "2024", d.FiscalYear)
	assert.Equal(t, "general", d.BusinessActivity)
	assert.Equal(t, "monthly", d.BasicData.Period)
	assert.Nil(t, d.Result)
}

func TestUpdateActive_Validacion(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{FiscalYear: ptr("24")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{EntityType: ptr("cooperativa")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{SelectedOptimizationIDs: []string{"nope"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	d, err := uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{
		Name:                    ptr("  Mi cálculo  "),
		SelectedOptimizationIDs: []string{"accelerated_depreciation"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mi cálculo", d.Name)
	assert.Equal(t, []string{"accelerated_depreciation"}, d.SelectedOptimizationIDs)
	assert.Equal(t, "2024", d.FiscalYear)
}

func TestCalculateActive_GuardaResultado(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateActive(ctx, sid, referenceUpdate())
	require.NoError(t, err)

	d, err := uc.CalculateActive(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, d.Result)
	assert.Equal(t, "1400000", d.Result.TotalTax.String())

	again, err := uc.GetActive(ctx, sid)
	require.NoError(t, err)
	require.NotNil(t, again.Result)
	assert.True(t, again.Result.TotalTax.Equal(d.Result.TotalTax))
}

func TestSaveDraft_InsertaYLuegoReemplaza(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	first, err := uc.SaveDraft(ctx, sid)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, "Cálculo 28/11/2024", first.Name)

	_, err = uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{Notes: ptr("revisado")})
	require.NoError(t, err)
	second, err := uc.SaveDraft(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := uc.ListDrafts(ctx, sid, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "revisado", list.Items[0].Notes)
	assert.Equal(t, 1, list.Page.Total)
}

func TestSaveDraft_GuardarYCargar(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateActive(ctx, sid, referenceUpdate())
	require.NoError(t, err)
	_, err = uc.CalculateActive(ctx, sid)
	require.NoError(t, err)
	saved, err := uc.SaveDraft(ctx, sid)
	require.NoError(t, err)

	_, err = uc.CreateDraft(ctx, sid)
	require.NoError(t, err)
	blank, err := uc.GetActive(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, blank.ID)
	assert.Empty(t, blank.BasicData.Income)

	loaded, err := uc.LoadDraft(ctx, sid, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, loaded.ID)
	assert.Equal(t, "5000000", loaded.BasicData.Income)
	assert.Equal(t, "25", loaded.AdvancedData.Employees)
	require.NotNil(t, loaded.Result)
	assert.Equal(t, "1400000", loaded.Result.TotalTax.String())

	_, err = uc.LoadDraft(ctx, sid, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSaveDraft_OrdenYPaginacion(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		_, err := uc.CreateDraft(ctx, sid)
		require.NoError(t, err)
		_, err = uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{Name: ptr(name)})
		require.NoError(t, err)
		d, err := uc.SaveDraft(ctx, sid)
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}

	page, err := uc.ListDrafts(ctx, sid, dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, ids[1], page.Items[0].ID)
	assert.Equal(t, ids[2], page.Items[1].ID)
	assert.Equal(t, 3, page.Page.Total)

	other, err := uc.ListDrafts(ctx, "other-session", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestDeleteDraft_ReiniciaActivo(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{Notes: ptr("x")})
	require.NoError(t, err)
	saved, err := uc.SaveDraft(ctx, sid)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDraft(ctx, sid, saved.ID))

	active, err := uc.GetActive(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, active.ID)
	assert.Empty(t, active.Notes)

	_, err = uc.GetDraft(ctx, sid, saved.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = uc.DeleteDraft(ctx, sid, saved.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExportDeclaration_RequiereCalculo(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.ExportDeclaration(ctx, sid)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.UpdateActive(ctx, sid, referenceUpdate())
	require.NoError(t, err)
	_, err = uc.CalculateActive(ctx, sid)
	require.NoError(t, err)

	file, err := uc.ExportDeclaration(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "calculo_fiscal_2024_1732789800000.json", file.Filename)
	assert.Equal(t, "application/json", file.ContentType)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(file.Content, &doc))
	assert.Equal(t, "moral", doc["entityType"])
	assert.Equal(t, "2024", doc["fiscalYear"])
	assert.Equal(t, "2024-11-28T10:30:00.000Z", doc["exportedAt"])
	calc := doc["calculations"].(map[string]any)
	assert.Equal(t, "1400000", calc["totalTax"])
	src := doc["sourceData"].(map[string]any)
	assert.Equal(t, "5000000", src["income"])
	assert.Equal(t, "25", src["employees"])
	assert.Contains(t, string(file.Content), "\n  \"regime\"")
}

func TestExportPDF_RequiereCalculo(t *testing.T) {
	uc, reports, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.ExportPDF(ctx, sid)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, reports.calls)

	_, err = uc.UpdateActive(ctx, sid, referenceUpdate())
	require.NoError(t, err)
	_, err = uc.CalculateActive(ctx, sid)
	require.NoError(t, err)

	file, err := uc.ExportPDF(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "calculo_fiscal_2024_1732789800000.pdf", file.Filename)
	assert.Equal(t, 1, reports.calls)
	require.NotNil(t, reports.last.Result)
}

func TestSaveDraft_ConcurrenteGuardaUnaSolaVez(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := uc.SaveDraft(ctx, sid)
			if assert.NoError(t, err) {
				ids[i] = d.ID
			}
		}(i)
	}
	wg.Wait()

	list, err := uc.ListDrafts(ctx, sid, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "el borrador activo se guarda una sola vez")
	for _, id := range ids {
		assert.Equal(t, list.Items[0].ID, id)
	}
}

func TestUpdateActive_ConcurrenteConCalculoNoPierdeCambios(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.UpdateActive(ctx, sid, referenceUpdate())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.CalculateActive(ctx, sid)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.UpdateActive(ctx, sid, dto.UpdateDraftRequest{Notes: ptr("revisado")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	d, err := uc.GetActive(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, "revisado", d.Notes)
	require.NotNil(t, d.Result)
	assert.Equal(t, "1400000", d.Result.TotalTax.String())
}
