package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/internal/infrastructure/metrics"
)

func TestPrometheus_Contadores(t *testing.T) {
	p := metrics.NewPrometheus()

	p.TaxCalculated("moral", "general")
	p.TaxCalculated("moral", "general")
	p.TaxCalculated("fisica", "resico")
	p.CFDIResolved("valid")
	p.ScenarioAnalyzed()
	p.SessionsActive(3)

	expected := `
# HELP smartax_tax_calculations_total Cálculos fiscales realizados.
# TYPE smartax_tax_calculations_total counter
smartax_tax_calculations_total{entity_type="fisica",regime="resico"} 1
smartax_tax_calculations_total{entity_type="moral",regime="general"} 2
# HELP smartax_active_sessions Sesiones anónimas vigentes.
# TYPE smartax_active_sessions gauge
smartax_active_sessions 3
`
	require.NoError(t, testutil.GatherAndCompare(p.Registry, strings.NewReader(expected),
		"smartax_tax_calculations_total", "smartax_active_sessions"))
}

func TestPrometheus_RegistrosIndependientes(t *testing.T) {
	a := metrics.NewPrometheus()
	b := metrics.NewPrometheus()

	a.ScenarioAnalyzed()
	n, err := testutil.GatherAndCount(b.Registry, "smartax_scenario_analyses_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = testutil.GatherAndCount(a.Registry, "smartax_cfdi_validations_total")
	require.NoError(t, err)
	assert.Zero(t, n)
}
