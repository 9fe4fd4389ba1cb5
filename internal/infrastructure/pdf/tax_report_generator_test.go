package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/pdf"
)

func TestGenerateTaxReport_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoTaxReportGenerator()
	draft := &entity.TaxDraft{
		Name:             "Cálculo 28/11/2024",
		EntityType:       "moral",
		Regime:           "general",
		FiscalYear:       "2024",
		BusinessActivity: "general",
		BasicData:        entity.BasicData{Income: "5,000,000", Expenses: "3000000", Period: "annual"},
		Result: &entity.TaxResult{
			ISR:             decimal.NewFromInt(450000),
			IVA:             decimal.NewFromInt(800000),
			PTU:             decimal.NewFromInt(150000),
			TotalTax:        decimal.NewFromInt(1400000),
			NetIncome:       decimal.NewFromInt(3600000),
			EffectiveRate:   decimal.NewFromInt(28),
			Recommendations: []string{"Considera deducir IVA acreditable"},
		},
	}

	out, err := g.GenerateTaxReport(context.Background(), draft)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateTaxReport_RequiereResultado(t *testing.T) {
	g := pdf.NewMarotoTaxReportGenerator()

	_, err := g.GenerateTaxReport(context.Background(), &entity.TaxDraft{})
	assert.Error(t, err)
}
