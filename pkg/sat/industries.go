package sat

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// IndustryGeneral clave de la industria por defecto.
const IndustryGeneral = "general"

// IndustryTechnology habilita los créditos por investigación y desarrollo.
const IndustryTechnology = "technology"

//go:embed industries.yaml
var industriesYAML []byte

// Industry entrada del catálogo sectorial.
type Industry struct {
	Key        string          `yaml:"key" json:"key"`
	Name       string          `yaml:"name" json:"name"`
	Multiplier decimal.Decimal `yaml:"-" json:"multiplier"`
	RawMult    string          `yaml:"multiplier" json:"-"`
}

var industries = mustLoadIndustries(industriesYAML)

func mustLoadIndustries(raw []byte) []Industry {
	list, err := parseIndustries(raw)
	if err != nil {
		panic("sat: catálogo de industrias: " + err.Error())
	}
	return list
}

func parseIndustries(raw []byte) ([]Industry, error) {
	var doc struct {
		Industries []Industry `yaml:"industries"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar yaml: %w", err)
	}
	for i := range doc.Industries {
		m, err := decimal.NewFromString(doc.Industries[i].RawMult)
		if err != nil {
			return nil, fmt.Errorf("multiplicador de %q: %w", doc.Industries[i].Key, err)
		}
		doc.Industries[i].Multiplier = m
	}
	return doc.Industries, nil
}

// Industries devuelve una copia del catálogo en el orden declarado.
func Industries() []Industry {
	out := make([]Industry, len(industries))
	copy(out, industries)
	return out
}

// LookupIndustry busca una industria por clave.
func LookupIndustry(key string) (Industry, bool) {
	for _, ind := range industries {
		if ind.Key == key {
			return ind, true
		}
	}
	return Industry{}, false
}

// IndustryMultiplier devuelve el multiplicador sectorial; 1.0 si la clave no existe.
func IndustryMultiplier(key string) decimal.Decimal {
	if ind, ok := LookupIndustry(key); ok {
		return ind.Multiplier
	}
	return decimal.NewFromInt(1)
}
