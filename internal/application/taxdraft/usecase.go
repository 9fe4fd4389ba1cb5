// Package taxdraft orquesta la calculadora fiscal y los borradores de cálculo de una sesión:
// borrador activo en edición, guardado, carga, eliminación y exportaciones.
package taxdraft

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/optimization"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// exportTimeLayout ISO-8601 en UTC con milisegundos.
const exportTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// UseCase casos de uso de la calculadora fiscal.
type UseCase struct {
	repo    repository.TaxDraftRepository
	reports ports.TaxReportGenerator
	metrics ports.Metrics
	log     zerolog.Logger
	now     func() time.Time
}

// NewUseCase construye el caso de uso. reports puede ser nil si no se exporta PDF.
func NewUseCase(
	repo repository.TaxDraftRepository,
	reports ports.TaxReportGenerator,
	metrics ports.Metrics,
	log zerolog.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{repo: repo, reports: reports, metrics: metrics, log: log, now: time.Now}
}

// WithClock reemplaza el reloj (pruebas).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// NewTemplate borrador vacío: persona moral, régimen general, ejercicio actual, actividad general, mensual.
func NewTemplate(now time.Time) *entity.TaxDraft {
	return &entity.TaxDraft{
		EntityType:       sat.EntityMoral,
		Regime:           sat.RegimeGeneral,
		FiscalYear:       strconv.Itoa(now.Year()),
		BusinessActivity: sat.ActivityGeneral,
		BasicData:        entity.BasicData{Period: sat.PeriodMonthly},
		CreatedAt:        now,
		UpdatedAt:        now,
		Tags:             []string{},
	}
}

// Calculate evalúa las fórmulas sin tocar el estado de la sesión.
func (uc *UseCase) Calculate(_ context.Context, req dto.TaxCalculationRequest) (*entity.TaxResult, error) {
	res, err := uc.evaluate(req.EntityType, req.Regime, req.BusinessActivity, req.BasicData, req.AdvancedData)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (uc *UseCase) evaluate(entityType, regime, activity string, basic entity.BasicData, adv entity.AdvancedData) (entity.TaxResult, error) {
	if err := tax.ValidateProfile(entityType, regime, activity, basic.Period); err != nil {
		return entity.TaxResult{}, err
	}
	in, err := tax.ParseInput(basic, adv)
	if err != nil {
		return entity.TaxResult{}, err
	}
	res := tax.Calculate(tax.Params{
		Input:      in,
		EntityType: entityType,
		Regime:     regime,
		Activity:   activity,
		Period:     basic.Period,
	})
	uc.metrics.TaxCalculated(entityType, regime)
	return res, nil
}

// CreateDraft reinicia el borrador activo con la plantilla vacía.
func (uc *UseCase) CreateDraft(_ context.Context, sessionID string) (*dto.TaxDraftResponse, error) {
	d := NewTemplate(uc.now())
	if err := uc.repo.SetActive(sessionID, d); err != nil {
		return nil, fmt.Errorf("nuevo borrador: %w", err)
	}
	return toResponse(d), nil
}

// GetActive devuelve el borrador en edición; si la sesión no tiene uno lo crea.
func (uc *UseCase) GetActive(ctx context.Context, sessionID string) (*dto.TaxDraftResponse, error) {
	d, err := uc.active(sessionID)
	if err != nil {
		return nil, err
	}
	return toResponse(d), nil
}

func (uc *UseCase) active(sessionID string) (*entity.TaxDraft, error) {
	d, err := uc.repo.GetActive(sessionID)
	if err != nil {
		return nil, fmt.Errorf("borrador activo: %w", err)
	}
	if d != nil {
		return d, nil
	}
	d, err = uc.repo.UpdateActive(sessionID, func(cur *entity.TaxDraft) (*entity.TaxDraft, error) {
		if cur == nil {
			cur = NewTemplate(uc.now())
		}
		return cur, nil
	})
	if err != nil {
		return nil, fmt.Errorf("borrador activo: %w", err)
	}
	return d, nil
}

// modifyActive aplica fn al borrador activo en una sola operación del almacén;
// sin borrador activo fn recibe la plantilla vacía.
func (uc *UseCase) modifyActive(sessionID string, fn func(d *entity.TaxDraft) error) (*entity.TaxDraft, error) {
	return uc.repo.UpdateActive(sessionID, func(d *entity.TaxDraft) (*entity.TaxDraft, error) {
		if d == nil {
			d = NewTemplate(uc.now())
		}
		if err := fn(d); err != nil {
			return nil, err
		}
		return d, nil
	})
}

// UpdateActive aplica los campos presentes en la solicitud al borrador activo.
func (uc *UseCase) UpdateActive(_ context.Context, sessionID string, req dto.UpdateDraftRequest) (*dto.TaxDraftResponse, error) {
	d, err := uc.modifyActive(sessionID, func(d *entity.TaxDraft) error {
		applyUpdate(d, req)
		if err := validateDraft(d); err != nil {
			return err
		}
		d.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("actualizar borrador: %w", err)
	}
	return toResponse(d), nil
}

func applyUpdate(d *entity.TaxDraft, req dto.UpdateDraftRequest) {
	if req.Name != nil {
		d.Name = strings.TrimSpace(*req.Name)
	}
	if req.EntityType != nil {
		d.EntityType = *req.EntityType
	}
	if req.Regime != nil {
		d.Regime = *req.Regime
	}
	if req.FiscalYear != nil {
		d.FiscalYear = strings.TrimSpace(*req.FiscalYear)
	}
	if req.BusinessActivity != nil {
		d.BusinessActivity = *req.BusinessActivity
	}
	if req.BasicData != nil {
		d.BasicData = *req.BasicData
	}
	if req.AdvancedData != nil {
		d.AdvancedData = *req.AdvancedData
	}
	if req.SelectedOptimizationIDs != nil {
		d.SelectedOptimizationIDs = req.SelectedOptimizationIDs
	}
	if req.Tags != nil {
		d.Tags = req.Tags
	}
	if req.Notes != nil {
		d.Notes = *req.Notes
	}
	if req.ForDeclaration != nil {
		d.ForDeclaration = *req.ForDeclaration
	}
}

func validateDraft(d *entity.TaxDraft) error {
	if err := tax.ValidateProfile(d.EntityType, d.Regime, d.BusinessActivity, d.BasicData.Period); err != nil {
		return err
	}
	if y, err := strconv.Atoi(d.FiscalYear); err != nil || len(d.FiscalYear) != 4 || y < 1900 {
		return fmt.Errorf("%w: ejercicio fiscal %q inválido", domain.ErrInvalidInput, d.FiscalYear)
	}
	for _, id := range d.SelectedOptimizationIDs {
		if _, ok := optimization.Lookup(id); !ok {
			return fmt.Errorf("%w: optimización %q desconocida", domain.ErrInvalidInput, id)
		}
	}
	return nil
}

// CalculateActive calcula el borrador activo y guarda el resultado en él.
func (uc *UseCase) CalculateActive(_ context.Context, sessionID string) (*dto.TaxDraftResponse, error) {
	d, err := uc.modifyActive(sessionID, func(d *entity.TaxDraft) error {
		res, err := uc.evaluate(d.EntityType, d.Regime, d.BusinessActivity, d.BasicData, d.AdvancedData)
		if err != nil {
			return err
		}
		d.Result = &res
		d.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("calcular borrador: %w", err)
	}
	uc.log.Debug().
		Str("session_id", sessionID).
		Str("entity_type", d.EntityType).
		Str("regime", d.Regime).
		Str("total_tax", d.Result.TotalTax.StringFixed(2)).
		Msg("cálculo fiscal realizado")
	return toResponse(d), nil
}

// SaveDraft guarda el borrador activo: si su id ya está guardado lo reemplaza en su lugar;
// si no, le asigna un id nuevo, un nombre por defecto si no tiene y lo agrega al final.
func (uc *UseCase) SaveDraft(_ context.Context, sessionID string) (*dto.TaxDraftResponse, error) {
	d, replaced, err := uc.repo.SaveActive(sessionID, func(d *entity.TaxDraft, stored bool) (*entity.TaxDraft, error) {
		now := uc.now()
		if d == nil {
			d = NewTemplate(now)
		}
		if d.Name == "" {
			d.Name = "Cálculo " + now.Format("02/01/2006")
		}
		d.UpdatedAt = now
		if !stored {
			d.ID = uuid.New().String()
		}
		return d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("draft_id", d.ID).
		Bool("replaced", replaced).
		Msg("borrador guardado")
	return toResponse(d), nil
}

// GetDraft devuelve un borrador guardado.
func (uc *UseCase) GetDraft(_ context.Context, sessionID, id string) (*dto.TaxDraftResponse, error) {
	d, err := uc.repo.GetByID(sessionID, id)
	if err != nil {
		return nil, fmt.Errorf("obtener borrador: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(d), nil
}

// LoadDraft copia un borrador guardado al espacio de edición.
func (uc *UseCase) LoadDraft(_ context.Context, sessionID, id string) (*dto.TaxDraftResponse, error) {
	d, err := uc.repo.GetByID(sessionID, id)
	if err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetActive(sessionID, d); err != nil {
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	return toResponse(d), nil
}

// DeleteDraft elimina un borrador; si era el activo, el activo vuelve a la plantilla vacía.
func (uc *UseCase) DeleteDraft(_ context.Context, sessionID, id string) error {
	if err := uc.repo.Delete(sessionID, id); err != nil {
		return fmt.Errorf("eliminar borrador: %w", err)
	}
	if _, err := uc.repo.UpdateActive(sessionID, func(active *entity.TaxDraft) (*entity.TaxDraft, error) {
		if active == nil || active.ID == id {
			return NewTemplate(uc.now()), nil
		}
		return active, nil
	}); err != nil {
		return fmt.Errorf("eliminar borrador: %w", err)
	}
	uc.log.Info().Str("session_id", sessionID).Str("draft_id", id).Msg("borrador eliminado")
	return nil
}

// ListDrafts lista los borradores guardados en orden de inserción, paginados.
func (uc *UseCase) ListDrafts(_ context.Context, sessionID string, page dto.PageRequest) (*dto.TaxDraftListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(sessionID)
	if err != nil {
		return nil, fmt.Errorf("listar borradores: %w", err)
	}
	out := &dto.TaxDraftListResponse{
		Items: []dto.TaxDraftResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(list)},
	}
	for i := page.Offset; i < len(list) && i < page.Offset+page.Limit; i++ {
		out.Items = append(out.Items, *toResponse(list[i]))
	}
	return out, nil
}

// ExportDeclaration genera el JSON para la declaración a partir del borrador activo.
// Requiere que el borrador tenga resultado.
func (uc *UseCase) ExportDeclaration(_ context.Context, sessionID string) (*dto.FileResponse, error) {
	d, err := uc.activeWithResult(sessionID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	doc := dto.DeclarationExport{
		EntityType:   d.EntityType,
		Regime:       d.Regime,
		FiscalYear:   d.FiscalYear,
		Calculations: *d.Result,
		SourceData:   dto.NewSourceData(d.BasicData, d.AdvancedData),
		ExportedAt:   now.UTC().Format(exportTimeLayout),
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exportar declaración: %w", err)
	}
	return &dto.FileResponse{
		Filename:    fmt.Sprintf("calculo_fiscal_%s_%d.json", d.FiscalYear, now.UnixMilli()),
		ContentType: "application/json",
		Content:     body,
	}, nil
}

// ExportPDF genera el resumen PDF del borrador activo.
func (uc *UseCase) ExportPDF(ctx context.Context, sessionID string) (*dto.FileResponse, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("exportar pdf: generador no configurado")
	}
	d, err := uc.activeWithResult(sessionID)
	if err != nil {
		return nil, err
	}
	body, err := uc.reports.GenerateTaxReport(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("exportar pdf: %w", err)
	}
	return &dto.FileResponse{
		Filename:    fmt.Sprintf("calculo_fiscal_%s_%d.pdf", d.FiscalYear, uc.now().UnixMilli()),
		ContentType: "application/pdf",
		Content:     body,
	}, nil
}

func (uc *UseCase) activeWithResult(sessionID string) (*entity.TaxDraft, error) {
	d, err := uc.active(sessionID)
	if err != nil {
		return nil, err
	}
	if d.Result == nil {
		return nil, fmt.Errorf("%w: el borrador no tiene cálculo", domain.ErrInvalidInput)
	}
	return d, nil
}

func toResponse(d *entity.TaxDraft) *dto.TaxDraftResponse {
	r := dto.NewTaxDraftResponse(d)
	return &r
}
