package sat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartax-ai/smartax-api/pkg/sat"
)

func TestValidateRFCFormat_MoralYFisica(t *testing.T) {
	assert.NoError(t, sat.ValidateRFCFormat("ABC010101AB1"), "RFC de persona moral (12)")
	assert.NoError(t, sat.ValidateRFCFormat("xaxx010101000"), "RFC genérico en minúsculas se normaliza")
	assert.NoError(t, sat.ValidateRFCFormat(" GODE-561231-GR8 "), "RFC de persona física con guiones")
}

func TestValidateRFCFormat_Invalidos(t *testing.T) {
	assert.Error(t, sat.ValidateRFCFormat(""), "vacío")
	assert.Error(t, sat.ValidateRFCFormat("CLIENTE001ABC"), "13 caracteres sin fecha")
	assert.Error(t, sat.ValidateRFCFormat("AB1010101AB1"), "dígito en la parte alfabética")
}

func TestIsValidRegime_SubconjuntoPorPersona(t *testing.T) {
	assert.True(t, sat.IsValidRegime(sat.EntityMoral, sat.RegimeGeneral))
	assert.True(t, sat.IsValidRegime(sat.EntityMoral, sat.RegimeResico))
	assert.False(t, sat.IsValidRegime(sat.EntityMoral, sat.RegimeIncorporacion),
		"incorporación solo aplica a personas físicas")
	assert.True(t, sat.IsValidRegime(sat.EntityFisica, sat.RegimeActividades))
	assert.False(t, sat.IsValidRegime("otro", sat.RegimeGeneral))
}

func TestIndustries_CatalogoEmbebido(t *testing.T) {
	list := sat.Industries()
	require.Len(t, list, 7)
	assert.Equal(t, sat.IndustryGeneral, list[0].Key)

	tech, ok := sat.LookupIndustry(sat.IndustryTechnology)
	require.True(t, ok)
	assert.True(t, tech.Multiplier.Equal(decimal.RequireFromString("1.15")))

	assert.True(t, sat.IndustryMultiplier("desconocida").Equal(decimal.NewFromInt(1)),
		"industria desconocida usa multiplicador 1.0")
}

func TestFormatAmount_PrefijoPeso(t *testing.T) {
	s := sat.FormatAmount(decimal.NewFromInt(150000))
	assert.Equal(t, "$", s[:1])
	assert.Contains(t, s, "150")
}
