package optimization

import (
	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// QuickStrategy estrategia del simulador rápido; su ahorro solo depende de los ingresos.
type QuickStrategy struct {
	Key          string
	Name         string
	Description  string
	Impact       string // Alto | Medio
	Requirements []string

	saving func(income decimal.Decimal) decimal.Decimal
}

// Saving estima el ahorro contra los ingresos.
func (q QuickStrategy) Saving(income decimal.Decimal) decimal.Decimal {
	return q.saving(income)
}

var (
	pct6  = decimal.RequireFromString("0.06")
	pct12 = decimal.RequireFromString("0.12")

	trainingCap = decimal.NewFromInt(200000)
)

var simulatorCatalog = map[string]QuickStrategy{
	entity.OptAcceleratedDepreciation: {
		Key:          entity.OptAcceleratedDepreciation,
		Name:         "Depreciación Acelerada",
		Description:  "Acelerar la depreciación de activos fijos para reducir la base gravable",
		Impact:       "Alto",
		Requirements: []string{"Activos adquiridos en el ejercicio", "Documentación contable completa"},
		saving:       func(income decimal.Decimal) decimal.Decimal { return income.Mul(pct8) },
	},
	entity.OptTrainingDeductions: {
		Key:          entity.OptTrainingDeductions,
		Name:         "Deducciones de Capacitación",
		Description:  "Maximizar deducciones por programas de capacitación del personal",
		Impact:       "Medio",
		Requirements: []string{"Programas certificados", "Constancias de participación"},
		saving: func(income decimal.Decimal) decimal.Decimal {
			return decimal.Min(income.Mul(pct5), trainingCap)
		},
	},
	entity.OptResearchCredits: {
		Key:          entity.OptResearchCredits,
		Name:         "Créditos por I+D",
		Description:  "Aprovechamiento de créditos fiscales por investigación y desarrollo",
		Impact:       "Alto",
		Requirements: []string{"Proyectos de investigación", "Documentación técnica"},
		saving:       func(income decimal.Decimal) decimal.Decimal { return income.Mul(pct12) },
	},
	entity.OptEnergyEfficiency: {
		Key:          entity.OptEnergyEfficiency,
		Name:         "Inversiones Verdes",
		Description:  "Deducciones especiales por inversiones en eficiencia energética",
		Impact:       "Alto",
		Requirements: []string{"Certificaciones ambientales", "Equipos calificados"},
		saving:       func(income decimal.Decimal) decimal.Decimal { return income.Mul(pct6) },
	},
	entity.OptCharityDeductions: {
		Key:          entity.OptCharityDeductions,
		Name:         "Donativos Deducibles",
		Description:  "Optimización fiscal a través de donativos autorizados",
		Impact:       "Medio",
		Requirements: []string{"Donatarias autorizadas", "Recibos deducibles"},
		saving: func(income decimal.Decimal) decimal.Decimal {
			return decimal.Min(income.Mul(pct7), charityCap)
		},
	},
}

// SimulatorCatalog estrategias del simulador en el orden en que se aplican.
func SimulatorCatalog() []QuickStrategy {
	out := make([]QuickStrategy, 0, len(entity.SimulatorOptimizationKeys))
	for _, k := range entity.SimulatorOptimizationKeys {
		q := simulatorCatalog[k]
		q.Requirements = append([]string(nil), q.Requirements...)
		out = append(out, q)
	}
	return out
}

// LookupQuick busca una estrategia del simulador por clave.
func LookupQuick(key string) (QuickStrategy, bool) {
	q, ok := simulatorCatalog[key]
	if ok {
		q.Requirements = append([]string(nil), q.Requirements...)
	}
	return q, ok
}
