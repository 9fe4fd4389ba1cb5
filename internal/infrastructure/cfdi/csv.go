// Package cfdi contiene los adaptadores de archivos CFDI (plantilla y resultados CSV,
// lectura de XML CFDI 4.0) y el verificador simulado.
package cfdi

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
)

// TemplateCSV plantilla de carga masiva (sin salto de línea final).
const TemplateCSV = "UUID,RFC_Emisor,Monto\n" +
	"12345678-1234-1234-1234-123456789ABC,XAXX010101000,15000.00\n" +
	"87654321-4321-4321-4321-CBA987654321,YBYY020202000,8500.50"

// TemplateFilename nombre de descarga de la plantilla.
const TemplateFilename = "plantilla_cfdi.csv"

// Encabezados del archivo de resultados.
var resultHeaders = []string{"UUID", "RFC_Emisor", "Monto", "Estado", "Error", "Fecha_Validacion"}

// Etiquetas de estado en el archivo de resultados.
const (
	LabelValid   = "VÁLIDO"
	LabelInvalid = "INVÁLIDO"
	LabelPending = "PENDIENTE"
)

// ResultsFilename nombre de descarga de los resultados.
func ResultsFilename(now time.Time) string {
	return fmt.Sprintf("cfdi_resultados_%d.csv", now.UnixMilli())
}

func statusLabel(status string) string {
	switch status {
	case entity.CFDIStatusValid:
		return LabelValid
	case entity.CFDIStatusInvalid:
		return LabelInvalid
	default:
		return LabelPending
	}
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// WriteResults escribe el CSV de resultados: todos los campos entre comillas dobles,
// filas separadas por "\n" y sin salto final. today se usa cuando el registro no tiene fecha.
func WriteResults(w io.Writer, records []entity.CFDIRecord, today string) error {
	rows := make([]string, 0, len(records)+1)

	head := make([]string, len(resultHeaders))
	for i, h := range resultHeaders {
		head[i] = quote(h)
	}
	rows = append(rows, strings.Join(head, ","))

	for _, r := range records {
		date := r.Date
		if date == "" {
			date = today
		}
		fields := []string{r.UUID, r.RFC, r.Amount.String(), statusLabel(r.Status), r.Error, date}
		for i := range fields {
			fields[i] = quote(fields[i])
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	if _, err := io.WriteString(w, strings.Join(rows, "\n")); err != nil {
		return fmt.Errorf("cfdi: escribir resultados: %w", err)
	}
	return nil
}

// WriteUpload escribe registros con el formato de la plantilla de carga (UUID,RFC_Emisor,Monto).
func WriteUpload(w io.Writer, records []entity.CFDIRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"UUID", "RFC_Emisor", "Monto"}); err != nil {
		return fmt.Errorf("cfdi: escribir plantilla: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.UUID, r.RFC, r.Amount.StringFixed(2)}); err != nil {
			return fmt.Errorf("cfdi: escribir plantilla: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cfdi: escribir plantilla: %w", err)
	}
	return nil
}

// ParseUpload lee un CSV con el formato de la plantilla (UTF-8 o Windows-1252).
// El encabezado es obligatorio; columnas adicionales se ignoran. Los registros quedan pendientes.
func ParseUpload(r io.Reader) ([]entity.CFDIRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cfdi: leer archivo: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("cfdi: decodificar Windows-1252: %w", err)
		}
		raw = decoded
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: encabezado: %v", domain.ErrInvalidInput, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var (
		records []entity.CFDIRecord
		errs    []error
		line    = 1
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Errorf("fila %d: %w: %v", line, domain.ErrInvalidInput, err))
			continue
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			errs = append(errs, fmt.Errorf("fila %d: %w", line, err))
			continue
		}
		records = append(records, rec)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: el archivo no contiene registros", domain.ErrInvalidInput)
	}
	return records, nil
}

type columns struct{ uuid, rfc, amount int }

func columnIndex(header []string) (columns, error) {
	c := columns{-1, -1, -1}
	for i, h := range header {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "UUID":
			c.uuid = i
		case "RFC_EMISOR":
			c.rfc = i
		case "MONTO":
			c.amount = i
		}
	}
	if c.uuid < 0 || c.rfc < 0 || c.amount < 0 {
		return c, fmt.Errorf("%w: el encabezado debe contener UUID,RFC_Emisor,Monto", domain.ErrInvalidInput)
	}
	return c, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRow(row []string, c columns) (entity.CFDIRecord, error) {
	rec := entity.CFDIRecord{
		UUID:   strings.ToUpper(cell(row, c.uuid)),
		RFC:    strings.ToUpper(cell(row, c.rfc)),
		Status: entity.CFDIStatusPending,
	}
	var errs []error
	if rec.UUID == "" {
		errs = append(errs, fmt.Errorf("%w: UUID requerido", domain.ErrInvalidInput))
	}
	if rec.RFC == "" {
		errs = append(errs, fmt.Errorf("%w: RFC_Emisor requerido", domain.ErrInvalidInput))
	}
	if raw := cell(row, c.amount); raw == "" {
		errs = append(errs, fmt.Errorf("%w: Monto requerido", domain.ErrInvalidInput))
	} else if amount, err := tax.ParseAmount(raw); err != nil {
		errs = append(errs, fmt.Errorf("Monto: %w", err))
	} else {
		rec.Amount = amount
	}
	return rec, errors.Join(errs...)
}
