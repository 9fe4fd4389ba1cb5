// Package sat contiene catálogos y reglas de formato del SAT (México) usados por el
// motor de estimación fiscal: tipos de persona, regímenes, actividades y periodos.
package sat

// =============================================================================
// Tipo de persona (contribuyente)
// =============================================================================

const (
	EntityMoral  = "moral"  // Persona moral
	EntityFisica = "fisica" // Persona física
)

// =============================================================================
// Regímenes fiscales soportados por la calculadora
// =============================================================================

const (
	RegimeGeneral       = "general"       // Régimen general de ley
	RegimeResico        = "resico"        // Régimen Simplificado de Confianza
	RegimeIncorporacion = "incorporacion" // Régimen de Incorporación Fiscal (solo personas físicas)
	RegimeActividades   = "actividades"   // Actividades empresariales y profesionales (solo personas físicas)
)

// regimesByEntity subconjunto válido de regímenes por tipo de persona.
var regimesByEntity = map[string]map[string]bool{
	EntityMoral: {
		RegimeGeneral: true,
		RegimeResico:  true,
	},
	EntityFisica: {
		RegimeGeneral:       true,
		RegimeResico:        true,
		RegimeIncorporacion: true,
		RegimeActividades:   true,
	},
}

// IsValidEntityType indica si el tipo de persona existe en el catálogo.
func IsValidEntityType(entityType string) bool {
	_, ok := regimesByEntity[entityType]
	return ok
}

// IsValidRegime indica si el régimen es aplicable al tipo de persona.
func IsValidRegime(entityType, regime string) bool {
	return regimesByEntity[entityType][regime]
}

// =============================================================================
// Actividad empresarial (determina IEPS)
// =============================================================================

const (
	ActivityGeneral       = "general"
	ActivityCommerce      = "commerce"
	ActivityServices      = "services"
	ActivityManufacturing = "manufacturing"
	ActivityBeverages     = "beverages"
	ActivityTobacco       = "tobacco"
	ActivityFuels         = "fuels"
)

// ValidActivities actividades reconocidas por la calculadora.
var ValidActivities = map[string]bool{
	ActivityGeneral:       true,
	ActivityCommerce:      true,
	ActivityServices:      true,
	ActivityManufacturing: true,
	ActivityBeverages:     true,
	ActivityTobacco:       true,
	ActivityFuels:         true,
}

// IEPSActivities actividades gravadas con IEPS.
var IEPSActivities = map[string]bool{
	ActivityBeverages: true,
	ActivityTobacco:   true,
	ActivityFuels:     true,
}

// =============================================================================
// Periodo del cálculo
// =============================================================================

const (
	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

// IsValidPeriod indica si el periodo existe en el catálogo.
func IsValidPeriod(period string) bool {
	return period == PeriodMonthly || period == PeriodAnnual
}
