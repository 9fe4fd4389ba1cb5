package tax_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: esperado %s, obtenido %s", msg, want, got.String())
}

func assertInvariants(t *testing.T, in entity.FinancialInput, r entity.TaxResult) {
	t.Helper()
	sum := r.ISR.Add(r.IVA).Add(r.IEPS).Add(r.PTU)
	assert.True(t, r.TotalTax.Equal(sum), "totalTax debe ser isr+iva+ieps+ptu")
	assert.True(t, r.NetIncome.Equal(in.Income.Sub(r.TotalTax)), "netIncome debe ser income-totalTax")
	assert.False(t, r.EffectiveRate.IsNegative(), "effectiveRate nunca negativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso de referencia: persona moral, régimen general, 25 empleados, anual.
// taxable = 5,000,000 - 3,000,000 - 500,000 = 1,500,000
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_MoralGeneralCasoReferencia(t *testing.T) {
	in := entity.FinancialInput{
		Income:     d("5000000"),
		Expenses:   d("3000000"),
		Deductions: d("500000"),
		Employees:  25,
	}
	r := tax.Calculate(tax.Params{
		Input:      in,
		EntityType: sat.EntityMoral,
		Regime:     sat.RegimeGeneral,
		Activity:   sat.ActivityGeneral,
		Period:     sat.PeriodAnnual,
	})

	assertDec(t, "1500000", r.TaxableIncome, "base gravable")
	assertDec(t, "450000", r.ISR, "isr")
	assertDec(t, "150000", r.PTU, "ptu")
	assertDec(t, "800000", r.IVA, "iva")
	assertDec(t, "0", r.IEPS, "ieps")
	assertDec(t, "1400000", r.TotalTax, "total")
	assertDec(t, "3600000", r.NetIncome, "ingreso neto")
	assertDec(t, "28", r.EffectiveRate, "tasa efectiva")
	assertDec(t, "37500", r.ProvisionalISR, "isr provisional")
	assertDec(t, "450000", r.AnnualISR, "isr anual")
	assertInvariants(t, in, r)

	require.Len(t, r.Recommendations, 2)
	assert.True(t, strings.HasPrefix(r.Recommendations[0], "PTU estimado: $"))
	assert.True(t, strings.HasSuffix(r.Recommendations[0], " para 25 empleados"))
	assert.Equal(t, tax.RecIVA, r.Recommendations[1])
}

func TestCalculate_PeriodoMensualDivideDespuesDePTU(t *testing.T) {
	in := entity.FinancialInput{
		Income:              d("5000000"),
		Expenses:            d("3000000"),
		Deductions:          d("500000"),
		Employees:           25,
		ProvisionalPayments: d("500000"),
	}
	r := tax.Calculate(tax.Params{
		Input:      in,
		EntityType: sat.EntityMoral,
		Regime:     sat.RegimeGeneral,
		Activity:   sat.ActivityGeneral,
		Period:     sat.PeriodMonthly,
	})

	assertDec(t, "37500", r.ISR, "isr mensual")
	assertDec(t, "12500", r.PTU, "ptu mensual")
	assertDec(t, "450000", r.AnnualISR, "el isr anual no se ajusta")
	assertDec(t, "50000", r.RefundDue, "saldo a favor contra isr anual")
	assertInvariants(t, in, r)

	require.Len(t, r.Recommendations, 3)
	assert.True(t, strings.HasPrefix(r.Recommendations[2], "Saldo a favor disponible: $"))
}

func TestCalculate_IngresoCeroTasaEfectivaCero(t *testing.T) {
	for _, entityType := range []string{sat.EntityMoral, sat.EntityFisica} {
		in := entity.FinancialInput{Expenses: d("1000"), Employees: 3}
		r := tax.Calculate(tax.Params{
			Input:      in,
			EntityType: entityType,
			Regime:     sat.RegimeGeneral,
			Activity:   sat.ActivityFuels,
			Period:     sat.PeriodAnnual,
		})
		assert.True(t, r.EffectiveRate.IsZero(), entityType)
		assertDec(t, "0", r.TaxableIncome, "base gravable acotada a cero")
		assertDec(t, "0", r.PTU, "sin base no hay PTU")
		assertInvariants(t, in, r)
	}
}

func TestCalculate_ResicoSinIVA(t *testing.T) {
	for _, entityType := range []string{sat.EntityMoral, sat.EntityFisica} {
		for _, income := range []string{"0", "100000", "99000000"} {
			in := entity.FinancialInput{Income: d(income)}
			r := tax.Calculate(tax.Params{
				Input:      in,
				EntityType: entityType,
				Regime:     sat.RegimeResico,
				Activity:   sat.ActivityGeneral,
				Period:     sat.PeriodAnnual,
			})
			assert.True(t, r.IVA.IsZero(), "resico: iva = 0 (%s, %s)", entityType, income)
			assert.NotContains(t, r.Recommendations, tax.RecIVA)
			assertInvariants(t, in, r)
		}
	}
}

func TestCalculate_MoralResicoTopeISR(t *testing.T) {
	in := entity.FinancialInput{Income: d("5000000")}
	r := tax.Calculate(tax.Params{Input: in, EntityType: sat.EntityMoral, Regime: sat.RegimeResico, Activity: sat.ActivityGeneral, Period: sat.PeriodAnnual})
	assertDec(t, "20000", r.ISR, "isr resico topado")

	in = entity.FinancialInput{Income: d("1000000")}
	r = tax.Calculate(tax.Params{Input: in, EntityType: sat.EntityMoral, Regime: sat.RegimeResico, Activity: sat.ActivityGeneral, Period: sat.PeriodAnnual})
	assertDec(t, "10000", r.ISR, "isr resico 1%")
}

func TestCalculate_PTUSoloMoralConEmpleadosYBase(t *testing.T) {
	cases := []struct {
		name       string
		entityType string
		employees  int
		income     string
		wantPTU    bool
	}{
		{"moral con empleados y base", sat.EntityMoral, 5, "100000", true},
		{"moral sin empleados", sat.EntityMoral, 0, "100000", false},
		{"moral sin base", sat.EntityMoral, 5, "0", false},
		{"física con empleados", sat.EntityFisica, 5, "100000", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tax.Calculate(tax.Params{
				Input:      entity.FinancialInput{Income: d(tc.income), Employees: tc.employees},
				EntityType: tc.entityType,
				Regime:     sat.RegimeGeneral,
				Activity:   sat.ActivityGeneral,
				Period:     sat.PeriodAnnual,
			})
			assert.Equal(t, tc.wantPTU, r.PTU.IsPositive())
			hasRec := len(r.Recommendations) > 0 && strings.HasPrefix(r.Recommendations[0], "PTU estimado")
			assert.Equal(t, tc.wantPTU, hasRec)
		})
	}
}

func TestISR_FisicaContinuidadEnTramo(t *testing.T) {
	limit := d("125900")
	below := tax.ISR(sat.EntityFisica, sat.RegimeGeneral, limit)
	above := tax.ISR(sat.EntityFisica, sat.RegimeGeneral, limit.Add(d("0.01")))

	assertDec(t, "2417.28", below, "tramo 1 en el límite")
	a, _ := below.Float64()
	b, _ := above.Float64()
	assert.InDelta(t, a, b, 1.0, "los tramos deben coincidir dentro del redondeo")
}

func TestISR_FisicaTramos(t *testing.T) {
	assertDec(t, "1920", tax.ISR(sat.EntityFisica, sat.RegimeActividades, d("100000")), "tramo 1")
	assertDec(t, "8824.16", tax.ISR(sat.EntityFisica, sat.RegimeGeneral, d("226000")), "tramo 2")
	assertDec(t, "700000", tax.ISR(sat.EntityFisica, sat.RegimeIncorporacion, d("2000000")), "tramo 3")
}

func TestCalculate_IEPSPorActividad(t *testing.T) {
	for act, want := range map[string]bool{
		sat.ActivityBeverages: true,
		sat.ActivityTobacco:   true,
		sat.ActivityFuels:     true,
		sat.ActivityCommerce:  false,
		sat.ActivityGeneral:   false,
	} {
		r := tax.Calculate(tax.Params{
			Input:      entity.FinancialInput{Income: d("1000000")},
			EntityType: sat.EntityMoral,
			Regime:     sat.RegimeGeneral,
			Activity:   act,
			Period:     sat.PeriodAnnual,
		})
		if want {
			assertDec(t, "80000", r.IEPS, act)
			assert.Contains(t, r.Recommendations, tax.RecIEPS)
		} else {
			assert.True(t, r.IEPS.IsZero(), act)
		}
	}
}

func TestCalculate_OrdenDeRecomendaciones(t *testing.T) {
	in := entity.FinancialInput{
		Income:              d("1000000"),
		Assets:              d("2000000"),
		Depreciation:        d("10000"),
		ForeignIncome:       d("1"),
		ExemptIncome:        d("1"),
		ProvisionalPayments: d("9000000"),
		Employees:           2,
	}
	r := tax.Calculate(tax.Params{
		Input:      in,
		EntityType: sat.EntityMoral,
		Regime:     sat.RegimeGeneral,
		Activity:   sat.ActivityTobacco,
		Period:     sat.PeriodMonthly,
	})

	require.Len(t, r.Recommendations, 7)
	assert.True(t, strings.HasPrefix(r.Recommendations[0], "PTU estimado"))
	assert.Equal(t, tax.RecIVA, r.Recommendations[1])
	assert.Equal(t, tax.RecIEPS, r.Recommendations[2])
	assert.True(t, strings.HasPrefix(r.Recommendations[3], "Saldo a favor"))
	assert.Equal(t, tax.RecDepreciation, r.Recommendations[4])
	assert.Equal(t, tax.RecForeign, r.Recommendations[5])
	assert.Equal(t, tax.RecExempt, r.Recommendations[6])
	assertInvariants(t, in, r)
}

func TestCalculate_CostoDeVentasMayorQueGastos(t *testing.T) {
	in := entity.FinancialInput{
		Income:         d("1000000"),
		Expenses:       d("300000"),
		InventoryStart: d("200000"),
		InventoryEnd:   d("50000"),
	}
	r := tax.Calculate(tax.Params{Input: in, EntityType: sat.EntityMoral, Regime: sat.RegimeGeneral, Activity: sat.ActivityGeneral, Period: sat.PeriodAnnual})
	assertDec(t, "450000", r.CostOfGoodsSold, "costo de ventas")
	assertDec(t, "550000", r.TaxableIncome, "base con costo de ventas")
}

// ── ParseInput ────────────────────────────────────────────────────────────────

func TestParseInput_CamposVaciosSonCero(t *testing.T) {
	in, err := tax.ParseInput(entity.BasicData{Income: "1,500.50"}, entity.AdvancedData{Employees: " 4 "})
	require.NoError(t, err)
	assertDec(t, "1500.50", in.Income, "ingresos")
	assert.True(t, in.Expenses.IsZero())
	assert.Equal(t, 4, in.Employees)
}

func TestParseInput_RechazaNegativosYTexto(t *testing.T) {
	_, err := tax.ParseInput(
		entity.BasicData{Income: "abc", Expenses: "-1"},
		entity.AdvancedData{Employees: "2.5"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "income")
	assert.Contains(t, err.Error(), "expenses")
	assert.Contains(t, err.Error(), "employees")
}

func TestParseAmount_LimitesDeTamano(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"exponente", "1e20000000", false},
		{"exponente mayúscula", "5E3", false},
		{"exponente negativo", "1e-9", false},
		{"en el tope", "999,999,999,999,999.99", true},
		{"igual al tope", "1000000000000000", false},
		{"demasiados dígitos", strings.Repeat("9", 40), false},
		{"demasiados decimales", "1." + strings.Repeat("1", 7), false},
		{"seis decimales", "1.123456", true},
		{"vacío", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tax.ParseAmount(tc.raw)
			if tc.ok {
				assert.NoError(t, err)
				assert.True(t, d.LessThan(tax.MaxAmount))
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, d.IsZero())
		})
	}
}

func TestParseInput_RechazaExponenteEnIngresos(t *testing.T) {
	_, err := tax.ParseInput(entity.BasicData{Income: "1e20000000"}, entity.AdvancedData{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "income")
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, tax.ValidateProfile(sat.EntityFisica, sat.RegimeIncorporacion, sat.ActivityServices, sat.PeriodMonthly))

	err := tax.ValidateProfile(sat.EntityMoral, sat.RegimeIncorporacion, "casino", "weekly")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "incorporacion")
	assert.Contains(t, err.Error(), "casino")
	assert.Contains(t, err.Error(), "weekly")
}
