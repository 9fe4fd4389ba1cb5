package sat

import (
	"fmt"
	"regexp"
	"strings"
)

// Formato del RFC: 3 letras (moral) o 4 letras (física), fecha AAMMDD y homoclave de 3 caracteres.
var (
	rfcMoralPattern  = regexp.MustCompile(`^[A-ZÑ&]{3}[0-9]{6}[A-Z0-9]{3}$`)
	rfcFisicaPattern = regexp.MustCompile(`^[A-ZÑ&]{4}[0-9]{6}[A-Z0-9]{3}$`)
)

// RFCs genéricos publicados por el SAT.
const (
	RFCGenericNational = "XAXX010101000" // Público en general
	RFCGenericForeign  = "XEXX010101000" // Residentes en el extranjero
)

// NormalizeRFC quita espacios y guiones y pasa a mayúsculas.
func NormalizeRFC(rfc string) string {
	r := strings.ToUpper(strings.TrimSpace(rfc))
	r = strings.ReplaceAll(r, "-", "")
	return strings.ReplaceAll(r, " ", "")
}

// ValidateRFCFormat valida solo la estructura del RFC (no consulta al SAT).
func ValidateRFCFormat(rfc string) error {
	r := NormalizeRFC(rfc)
	switch len([]rune(r)) {
	case 12:
		if rfcMoralPattern.MatchString(r) {
			return nil
		}
	case 13:
		if rfcFisicaPattern.MatchString(r) {
			return nil
		}
	default:
		return fmt.Errorf("sat: RFC debe tener 12 o 13 caracteres, se recibieron %d", len([]rune(r)))
	}
	return fmt.Errorf("sat: RFC con formato inválido: %s", r)
}
