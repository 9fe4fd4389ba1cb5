// Package metrics implementa ports.Metrics con contadores Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/smartax-ai/smartax-api/internal/application/ports"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus métricas de negocio registradas en un registro propio.
type Prometheus struct {
	// Registry se expone para servir /metrics.
	Registry *prometheus.Registry

	taxCalculations  *prometheus.CounterVec
	cfdiValidations  *prometheus.CounterVec
	scenarioAnalyses prometheus.Counter
	activeSessions   prometheus.Gauge
}

// NewPrometheus crea un registro dedicado con las métricas de la aplicación
// y los colectores de proceso y runtime de Go. Un registro por instancia permite
// crear varias en pruebas sin colisiones.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		Registry: reg,
		taxCalculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartax_tax_calculations_total",
				Help: "Cálculos fiscales realizados.",
			},
			[]string{"entity_type", "regime"},
		),
		cfdiValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartax_cfdi_validations_total",
				Help: "CFDI resueltos por estado.",
			},
			[]string{"status"},
		),
		scenarioAnalyses: factory.NewCounter(prometheus.CounterOpts{
			Name: "smartax_scenario_analyses_total",
			Help: "Análisis de escenarios completados.",
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "smartax_active_sessions",
			Help: "Sesiones anónimas vigentes.",
		}),
	}
}

func (p *Prometheus) TaxCalculated(entityType, regime string) {
	p.taxCalculations.WithLabelValues(entityType, regime).Inc()
}

func (p *Prometheus) CFDIResolved(status string) {
	p.cfdiValidations.WithLabelValues(status).Inc()
}

func (p *Prometheus) ScenarioAnalyzed() { p.scenarioAnalyses.Inc() }

func (p *Prometheus) SessionsActive(n int) { p.activeSessions.Set(float64(n)) }
