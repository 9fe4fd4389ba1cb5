package cfdi

import (
	"io"
	"time"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
)

// Codec agrupa los formatos de archivo CFDI (CSV y XML) detrás de un solo adaptador.
type Codec struct{}

// NewCodec construye el adaptador de archivos.
func NewCodec() Codec { return Codec{} }

// ParseCSV lee un archivo de carga masiva (UUID,RFC,Monto) en registros pendientes.
func (Codec) ParseCSV(r io.Reader) ([]entity.CFDIRecord, error) { return ParseUpload(r) }

// ParseXML extrae UUID, RFC del emisor y total de un CFDI 4.0 timbrado.
func (Codec) ParseXML(r io.Reader) (entity.CFDIRecord, error) { return ReadXML(r) }

// WriteResults escribe el CSV de resultados del lote; today sustituye la fecha faltante de un registro.
func (Codec) WriteResults(w io.Writer, records []entity.CFDIRecord, today string) error {
	return WriteResults(w, records, today)
}

// ResultsFilename nombre del CSV de resultados con marca de tiempo en milisegundos.
func (Codec) ResultsFilename(now time.Time) string { return ResultsFilename(now) }

// Template devuelve el nombre y contenido de la plantilla de carga.
func (Codec) Template() (string, []byte) { return TemplateFilename, []byte(TemplateCSV) }
