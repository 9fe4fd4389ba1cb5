package entity

import "time"

// BasicData campos básicos del formulario, tal como los captura el usuario.
type BasicData struct {
	Income     string `json:"income"`
	Expenses   string `json:"expenses"`
	Deductions string `json:"deductions"`
	Period     string `json:"period"`
}

// AdvancedData campos avanzados del formulario, tal como los captura el usuario.
type AdvancedData struct {
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

// TaxDraft borrador de cálculo fiscal guardado en la sesión.
// ID vacío significa borrador nuevo, aún no guardado.
type TaxDraft struct {
	ID                      string
	Name                    string
	EntityType              string
	Regime                  string
	FiscalYear              string
	BusinessActivity        string
	BasicData               BasicData
	AdvancedData            AdvancedData
	SelectedOptimizationIDs []string
	Result                  *TaxResult
	CreatedAt               time.Time
	UpdatedAt               time.Time
	Tags                    []string
	Notes                   string
	ForDeclaration          bool
}

// Clone copia profunda; los stores nunca comparten punteros con el llamador.
func (d *TaxDraft) Clone() *TaxDraft {
	if d == nil {
		return nil
	}
	out := *d
	out.SelectedOptimizationIDs = append([]string(nil), d.SelectedOptimizationIDs...)
	out.Tags = append([]string(nil), d.Tags...)
	out.Result = d.Result.Clone()
	return &out
}
