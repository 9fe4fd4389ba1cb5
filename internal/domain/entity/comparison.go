package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComparisonResults resultado base de un escenario del análisis avanzado.
type ComparisonResults struct {
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	BaseTax       decimal.Decimal `json:"baseTax"`
	NetIncome     decimal.Decimal `json:"netIncome"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ComparisonScenario escenario analizado que el usuario guardó para comparar.
// Los montos se conservan tal como se capturaron.
type ComparisonScenario struct {
	ID         string
	Name       string
	EntityType string
	Regime     string
	Industry   string
	Income     string
	Expenses   string
	Deductions string
	Assets     string
	Employees  string
	Results    ComparisonResults
	AddedAt    time.Time
}

// Clone copia; no hay campos con referencias compartidas.
func (c *ComparisonScenario) Clone() *ComparisonScenario {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
