package dto

import "github.com/smartax-ai/smartax-api/internal/domain/entity"

// AddCFDIRequest body para POST /api/cfdi/records (captura manual en lote).
type AddCFDIRequest struct {
	UUID   string `json:"uuid"`
	RFC    string `json:"rfc"`
	Amount string `json:"amount"`
}

// ValidateSingleRequest body para POST /api/cfdi/validate-single.
type ValidateSingleRequest struct {
	UUID   string `json:"uuid"`
	RFC    string `json:"rfc,omitempty"`
	Amount string `json:"amount,omitempty"`
}

// CFDIBatchResponse lote de la sesión con contadores.
type CFDIBatchResponse struct {
	Mode       string              `json:"mode"`
	Processing bool                `json:"processing"`
	Records    []entity.CFDIRecord `json:"records"`
	Summary    entity.CFDISummary  `json:"summary"`
}

// NewCFDIBatchResponse mapea el lote a la respuesta.
func NewCFDIBatchResponse(b *entity.CFDIBatch) CFDIBatchResponse {
	records := b.Records
	if records == nil {
		records = []entity.CFDIRecord{}
	}
	return CFDIBatchResponse{
		Mode:       b.Mode,
		Processing: b.Processing,
		Records:    records,
		Summary:    b.Summary(),
	}
}
