// Package optimization contiene el catálogo estático de estrategias de optimización fiscal.
// Cada estrategia estima su ahorro con una función pura de (ingresos, métrica secundaria)
// y declara un predicado de aplicabilidad sobre el perfil del contribuyente.
package optimization

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// Niveles de impacto.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// DefaultTopN estrategias que se muestran por defecto.
const DefaultTopN = 5

// Profile datos del contribuyente contra los que se evalúa la aplicabilidad.
type Profile struct {
	Income     decimal.Decimal
	Expenses   decimal.Decimal
	Deductions decimal.Decimal
	Assets     decimal.Decimal
	Employees  int
	Industry   string
}

// Secondary métrica secundaria: activos si son positivos, si no número de empleados.
func (p Profile) Secondary() decimal.Decimal {
	if p.Assets.IsPositive() {
		return p.Assets
	}
	return decimal.NewFromInt(int64(p.Employees))
}

// Strategy entrada inmutable del catálogo.
type Strategy struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Impact       string   `json:"impact"`
	Complexity   string   `json:"complexity"`
	Requirements []string `json:"requirements"`

	saving  func(income, secondary decimal.Decimal) decimal.Decimal
	applies func(Profile) bool
}

// Saving estima el ahorro de la estrategia.
func (s Strategy) Saving(income, secondary decimal.Decimal) decimal.Decimal {
	return s.saving(income, secondary)
}

// Applies indica si la estrategia aplica al perfil.
func (s Strategy) Applies(p Profile) bool {
	if s.applies == nil {
		return true
	}
	return s.applies(p)
}

func (s Strategy) clone() Strategy {
	s.Requirements = append([]string(nil), s.Requirements...)
	return s
}

// Estimate estrategia aplicable con su ahorro estimado.
type Estimate struct {
	Strategy
	EstimatedSaving decimal.Decimal `json:"estimatedSaving"`
}

var (
	pct3  = decimal.RequireFromString("0.03")
	pct5  = decimal.RequireFromString("0.05")
	pct7  = decimal.RequireFromString("0.07")
	pct8  = decimal.RequireFromString("0.08")
	pct15 = decimal.RequireFromString("0.15")
	pct25 = decimal.RequireFromString("0.25")

	trainingPerEmployee = decimal.NewFromInt(8000)
	charityCap          = decimal.NewFromInt(500000)
	energyMinAssets     = decimal.NewFromInt(1000000)
)

var catalog = []Strategy{
	{
		ID:           "accelerated_depreciation",
		Name:         "Depreciación Acelerada",
		Description:  "Aplicar depreciación acelerada a activos fijos para reducir la base gravable",
		Impact:       ImpactHigh,
		Complexity:   "medio",
		Requirements: []string{"Activos adquiridos en el ejercicio", "Registro contable adecuado"},
		saving: func(income, secondary decimal.Decimal) decimal.Decimal {
			return decimal.Min(secondary.Mul(pct15), income.Mul(pct5))
		},
	},
	{
		ID:           "training_deductions",
		Name:         "Deducciones de Capacitación",
		Description:  "Maximizar deducciones por programas de capacitación del personal",
		Impact:       ImpactMedium,
		Complexity:   "facil",
		Requirements: []string{"Programas certificados", "Constancias de participación"},
		saving: func(_, secondary decimal.Decimal) decimal.Decimal {
			return secondary.Mul(trainingPerEmployee)
		},
		applies: func(p Profile) bool { return p.Employees > 0 },
	},
	{
		ID:           "research_credits",
		Name:         "Créditos por Investigación",
		Description:  "Aprovechamiento de créditos fiscales por actividades de I+D",
		Impact:       ImpactHigh,
		Complexity:   "alto",
		Requirements: []string{"Proyectos de investigación", "Documentación técnica"},
		saving: func(income, _ decimal.Decimal) decimal.Decimal {
			return income.Mul(pct3)
		},
		applies: func(p Profile) bool { return p.Industry == sat.IndustryTechnology },
	},
	{
		ID:           "charity_deductions",
		Name:         "Donativos Deducibles",
		Description:  "Optimización fiscal a través de donativos a instituciones autorizadas",
		Impact:       ImpactMedium,
		Complexity:   "facil",
		Requirements: []string{"Donatarias autorizadas", "Recibos deducibles"},
		saving: func(income, _ decimal.Decimal) decimal.Decimal {
			return decimal.Min(income.Mul(pct7), charityCap)
		},
	},
	{
		ID:           "energy_efficiency",
		Name:         "Inversiones en Eficiencia Energética",
		Description:  "Deducciones especiales por inversiones en tecnología verde",
		Impact:       ImpactHigh,
		Complexity:   "medio",
		Requirements: []string{"Certificaciones ambientales", "Equipos calificados"},
		saving: func(income, secondary decimal.Decimal) decimal.Decimal {
			return decimal.Min(secondary.Mul(pct25), income.Mul(pct8))
		},
		applies: func(p Profile) bool { return p.Assets.GreaterThanOrEqual(energyMinAssets) },
	},
}

// All devuelve una copia del catálogo en orden declarado.
func All() []Strategy {
	out := make([]Strategy, len(catalog))
	for i, s := range catalog {
		out[i] = s.clone()
	}
	return out
}

// Lookup busca una estrategia por id.
func Lookup(id string) (Strategy, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return Strategy{}, false
}

// Applicable devuelve las estrategias que aplican al perfil con su ahorro estimado,
// ordenadas de mayor a menor ahorro (empates en orden de catálogo) y truncadas a topN.
// topN <= 0 devuelve todas.
func Applicable(p Profile, topN int) []Estimate {
	secondary := p.Secondary()
	out := make([]Estimate, 0, len(catalog))
	for _, s := range catalog {
		if !s.Applies(p) {
			continue
		}
		out = append(out, Estimate{Strategy: s.clone(), EstimatedSaving: s.Saving(p.Income, secondary)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedSaving.GreaterThan(out[j].EstimatedSaving)
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
