package entity

import "github.com/shopspring/decimal"

// Estados de validación de un CFDI. valid e invalid son terminales.
const (
	CFDIStatusPending    = "pending"
	CFDIStatusValidating = "validating"
	CFDIStatusValid      = "valid"
	CFDIStatusInvalid    = "invalid"
)

// Modos de captura del lote.
const (
	CFDIModeSingle = "single"
	CFDIModeBatch  = "batch"
)

// CFDIRecord comprobante a validar.
type CFDIRecord struct {
	UUID   string          `json:"uuid"`
	RFC    string          `json:"rfc"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Issuer string          `json:"issuer,omitempty"`
	Date   string          `json:"date,omitempty"` // YYYY-MM-DD
}

// IsTerminal indica si el registro ya fue resuelto.
func (r CFDIRecord) IsTerminal() bool {
	return r.Status == CFDIStatusValid || r.Status == CFDIStatusInvalid
}

// CFDIBatch lista ordenada de registros de la sesión.
type CFDIBatch struct {
	Mode       string
	Records    []CFDIRecord
	Processing bool
}

// Clone copia profunda del lote.
func (b *CFDIBatch) Clone() *CFDIBatch {
	if b == nil {
		return nil
	}
	out := *b
	out.Records = append([]CFDIRecord(nil), b.Records...)
	return &out
}

// CFDISummary contadores del lote (pendientes incluye los que están en validación).
type CFDISummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Pending int `json:"pending"`
}

// Summary calcula los contadores del lote.
func (b *CFDIBatch) Summary() CFDISummary {
	s := CFDISummary{}
	if b == nil {
		return s
	}
	s.Total = len(b.Records)
	for _, r := range b.Records {
		switch r.Status {
		case CFDIStatusValid:
			s.Valid++
		case CFDIStatusInvalid:
			s.Invalid++
		default:
			s.Pending++
		}
	}
	return s
}
