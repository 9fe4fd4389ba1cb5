package dto

import (
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// TaxCalculationRequest body para POST /api/tax/calculate.
// Los montos viajan como texto, tal como se capturan en el formulario.
type TaxCalculationRequest struct {
	EntityType       string              `json:"entityType"`
	Regime           string              `json:"regime"`
	FiscalYear       string              `json:"fiscalYear"`
	BusinessActivity string              `json:"businessActivity"`
	BasicData        entity.BasicData    `json:"basicData"`
	AdvancedData     entity.AdvancedData `json:"advancedData"`
}

// UpdateDraftRequest body para PUT /api/drafts/active. Campos nulos no se modifican.
type UpdateDraftRequest struct {
	Name                    *string              `json:"name,omitempty"`
	EntityType              *string              `json:"entityType,omitempty"`
	Regime                  *string              `json:"regime,omitempty"`
	FiscalYear              *string              `json:"fiscalYear,omitempty"`
	BusinessActivity        *string              `json:"businessActivity,omitempty"`
	BasicData               *entity.BasicData    `json:"basicData,omitempty"`
	AdvancedData            *entity.AdvancedData `json:"advancedData,omitempty"`
	SelectedOptimizationIDs []string             `json:"selectedOptimizationIds,omitempty"`
	Tags                    []string             `json:"tags,omitempty"`
	Notes                   *string              `json:"notes,omitempty"`
	ForDeclaration          *bool                `json:"isForDeclaration,omitempty"`
}

// TaxDraftResponse borrador en respuestas.
type TaxDraftResponse struct {
	ID                      string              `json:"id"`
	Name                    string              `json:"name"`
	EntityType              string              `json:"entityType"`
	Regime                  string              `json:"regime"`
	FiscalYear              string              `json:"fiscalYear"`
	BusinessActivity        string              `json:"businessActivity"`
	BasicData               entity.BasicData    `json:"basicData"`
	AdvancedData            entity.AdvancedData `json:"advancedData"`
	SelectedOptimizationIDs []string            `json:"selectedOptimizationIds"`
	Result                  *entity.TaxResult   `json:"result"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
	Tags                    []string            `json:"tags"`
	Notes                   string              `json:"notes"`
	ForDeclaration          bool                `json:"isForDeclaration"`
}

// NewTaxDraftResponse mapea la entidad a la respuesta.
func NewTaxDraftResponse(d *entity.TaxDraft) TaxDraftResponse {
	out := TaxDraftResponse{
		ID:                      d.ID,
		Name:                    d.Name,
		EntityType:              d.EntityType,
		Regime:                  d.Regime,
		FiscalYear:              d.FiscalYear,
		BusinessActivity:        d.BusinessActivity,
		BasicData:               d.BasicData,
		AdvancedData:            d.AdvancedData,
		SelectedOptimizationIDs: d.SelectedOptimizationIDs,
		Result:                  d.Result,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
		Tags:                    d.Tags,
		Notes:                   d.Notes,
		ForDeclaration:          d.ForDeclaration,
	}
	if out.SelectedOptimizationIDs == nil {
		out.SelectedOptimizationIDs = []string{}
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out
}

// TaxDraftListResponse listado paginado de borradores.
type TaxDraftListResponse struct {
	Items []TaxDraftResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SourceData campos básicos y avanzados combinados, tal como se capturaron.
type SourceData struct {
	Income              string `json:"income"`
	Expenses            string `json:"expenses"`
	Deductions          string `json:"deductions"`
	Period              string `json:"period"`
	Assets              string `json:"assets"`
	Depreciation        string `json:"depreciation"`
	InventoryStart      string `json:"inventoryStart"`
	InventoryEnd        string `json:"inventoryEnd"`
	ProvisionalPayments string `json:"provisionalPayments"`
	Retentions          string `json:"retentions"`
	Employees           string `json:"employees"`
	PTUPaid             string `json:"ptuPaid"`
	ForeignIncome       string `json:"foreignIncome"`
	ExemptIncome        string `json:"exemptIncome"`
}

// NewSourceData combina los datos básicos y avanzados.
func NewSourceData(b entity.BasicData, a entity.AdvancedData) SourceData {
	return SourceData{
		Income:              b.Income,
		Expenses:            b.Expenses,
		Deductions:          b.Deductions,
		Period:              b.Period,
		Assets:              a.Assets,
		Depreciation:        a.Depreciation,
		InventoryStart:      a.InventoryStart,
		InventoryEnd:        a.InventoryEnd,
		ProvisionalPayments: a.ProvisionalPayments,
		Retentions:          a.Retentions,
		Employees:           a.Employees,
		PTUPaid:             a.PTUPaid,
		ForeignIncome:       a.ForeignIncome,
		ExemptIncome:        a.ExemptIncome,
	}
}

// DeclarationExport documento JSON exportado para la declaración.
type DeclarationExport struct {
	EntityType   string           `json:"entityType"`
	Regime       string           `json:"regime"`
	FiscalYear   string           `json:"fiscalYear"`
	Calculations entity.TaxResult `json:"calculations"`
	SourceData   SourceData       `json:"sourceData"`
	ExportedAt   string           `json:"exportedAt"`
}

// FileResponse archivo generado listo para descarga.
type FileResponse struct {
	Filename    string
	ContentType string
	Content     []byte
}
