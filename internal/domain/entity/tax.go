package entity

import "github.com/shopspring/decimal"

// FinancialInput datos financieros del contribuyente para el cálculo.
// Todos los montos son no negativos; un campo ausente equivale a cero.
type FinancialInput struct {
	Income              decimal.Decimal
	Expenses            decimal.Decimal
	Deductions          decimal.Decimal
	Assets              decimal.Decimal
	Depreciation        decimal.Decimal
	InventoryStart      decimal.Decimal
	InventoryEnd        decimal.Decimal
	ProvisionalPayments decimal.Decimal
	Retentions          decimal.Decimal
	Employees           int
	PTUPaid             decimal.Decimal
	ForeignIncome       decimal.Decimal
	ExemptIncome        decimal.Decimal
}

// TaxResult resultado de la estimación fiscal.
// Invariantes: TotalTax = ISR + IVA + IEPS + PTU; NetIncome = Income - TotalTax.
type TaxResult struct {
	ISR             decimal.Decimal `json:"isr"`
	IVA             decimal.Decimal `json:"iva"`
	IEPS            decimal.Decimal `json:"ieps"`
	PTU             decimal.Decimal `json:"ptu"`
	TotalTax        decimal.Decimal `json:"totalTax"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"`
	ProvisionalISR  decimal.Decimal `json:"provisionalISR"`
	AnnualISR       decimal.Decimal `json:"annualISR"`
	RefundDue       decimal.Decimal `json:"refundDue"`
	Recommendations []string        `json:"recommendations"`

	// Auxiliares (no forman parte de la exportación original).
	TaxableIncome   decimal.Decimal `json:"-"`
	CostOfGoodsSold decimal.Decimal `json:"-"`
}

// Clone copia profunda del resultado.
func (r *TaxResult) Clone() *TaxResult {
	if r == nil {
		return nil
	}
	out := *r
	out.Recommendations = append([]string(nil), r.Recommendations...)
	return &out
}
