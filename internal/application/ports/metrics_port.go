package ports

// Metrics define el puerto de salida para métricas de negocio.
// El adaptador Prometheus vive en infrastructure/metrics; las pruebas usan NopMetrics.
type Metrics interface {
	TaxCalculated(entityType, regime string)
	CFDIResolved(status string)
	ScenarioAnalyzed()
	SessionsActive(n int)
}

// NopMetrics descarta todas las mediciones.
type NopMetrics struct{}

func (NopMetrics) TaxCalculated(string, string) {}
func (NopMetrics) CFDIResolved(string)          {}
func (NopMetrics) ScenarioAnalyzed()            {}
func (NopMetrics) SessionsActive(int)           {}
