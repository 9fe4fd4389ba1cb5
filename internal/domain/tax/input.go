package tax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// ParseInput convierte los campos capturados (texto) a FinancialInput.
// Campo vacío equivale a cero; montos negativos o no numéricos se rechazan.
func ParseInput(basic entity.BasicData, adv entity.AdvancedData) (entity.FinancialInput, error) {
	var (
		in   entity.FinancialInput
		errs []error
	)
	amount := func(field, raw string) decimal.Decimal {
		d, err := ParseAmount(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return d
	}

	in.Income = amount("income", basic.Income)
	in.Expenses = amount("expenses", basic.Expenses)
	in.Deductions = amount("deductions", basic.Deductions)
	in.Assets = amount("assets", adv.Assets)
	in.Depreciation = amount("depreciation", adv.Depreciation)
	in.InventoryStart = amount("inventoryStart", adv.InventoryStart)
	in.InventoryEnd = amount("inventoryEnd", adv.InventoryEnd)
	in.ProvisionalPayments = amount("provisionalPayments", adv.ProvisionalPayments)
	in.Retentions = amount("retentions", adv.Retentions)
	in.PTUPaid = amount("ptuPaid", adv.PTUPaid)
	in.ForeignIncome = amount("foreignIncome", adv.ForeignIncome)
	in.ExemptIncome = amount("exemptIncome", adv.ExemptIncome)

	if s := strings.TrimSpace(adv.Employees); s != "" {
		n, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("employees: %w: %q no es entero", domain.ErrInvalidInput, s))
		case n < 0:
			errs = append(errs, fmt.Errorf("employees: %w: no puede ser negativo", domain.ErrInvalidInput))
		default:
			in.Employees = n
		}
	}

	if err := errors.Join(errs...); err != nil {
		return entity.FinancialInput{}, err
	}
	return in, nil
}

// Límites de un monto capturado.
const (
	// MaxAmountDigits dígitos enteros admitidos: hasta 999,999,999,999,999.
	MaxAmountDigits = 15
	// MaxAmountDecimals decimales admitidos.
	MaxAmountDecimals = 6
)

// MaxAmount primer monto fuera de rango (1e15).
var MaxAmount = decimal.New(1, MaxAmountDigits)

// ParseAmount interpreta un monto capturado. Acepta separadores de miles con coma;
// rechaza notación exponencial, negativos y montos fuera de rango.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q no es un monto", domain.ErrInvalidInput, raw)
	}
	if whole, frac, _ := strings.Cut(strings.TrimLeft(s, "+-"), "."); len(whole) > MaxAmountDigits+1 || len(frac) > MaxAmountDecimals {
		return decimal.Zero, fmt.Errorf("%w: %q excede %d dígitos enteros o %d decimales",
			domain.ErrInvalidInput, raw, MaxAmountDigits, MaxAmountDecimals)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un monto", domain.ErrInvalidInput, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: monto negativo", domain.ErrInvalidInput)
	}
	if d.GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: monto mayor o igual a %s", domain.ErrInvalidInput, MaxAmount.String())
	}
	return d, nil
}

// ValidateProfile comprueba tipo de persona, régimen, actividad y periodo contra los catálogos.
func ValidateProfile(entityType, regime, activity, period string) error {
	var errs []error
	if !sat.IsValidEntityType(entityType) {
		errs = append(errs, fmt.Errorf("%w: tipo de persona %q desconocido", domain.ErrInvalidInput, entityType))
	} else if !sat.IsValidRegime(entityType, regime) {
		errs = append(errs, fmt.Errorf("%w: régimen %q no aplica a persona %s", domain.ErrInvalidInput, regime, entityType))
	}
	if !sat.ValidActivities[activity] {
		errs = append(errs, fmt.Errorf("%w: actividad %q desconocida", domain.ErrInvalidInput, activity))
	}
	if !sat.IsValidPeriod(period) {
		errs = append(errs, fmt.Errorf("%w: periodo %q desconocido", domain.ErrInvalidInput, period))
	}
	return errors.Join(errs...)
}
