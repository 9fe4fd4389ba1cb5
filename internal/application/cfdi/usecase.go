// Package cfdi valida comprobantes fiscales (CFDI) de forma simulada: captura manual,
// carga CSV o XML, validación secuencial del lote y exportación de resultados.
package cfdi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartax-ai/smartax-api/internal/application/dto"
	"github.com/smartax-ai/smartax-api/internal/application/ports"
	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/repository"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
)

// NotSpecifiedRFC RFC asignado en validación individual cuando no se captura.
const NotSpecifiedRFC = "No especificado"

// UseCase casos de uso del validador de CFDI.
type UseCase struct {
	repo     repository.CFDIBatchRepository
	verifier Verifier
	codec    FileCodec
	metrics  ports.Metrics
	log      zerolog.Logger
	observer Observer
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.CFDIBatchRepository,
	verifier Verifier,
	codec FileCodec,
	metrics ports.Metrics,
	log zerolog.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		repo:     repo,
		verifier: verifier,
		codec:    codec,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// WithObserver registra un observador adicional de transiciones.
func (uc *UseCase) WithObserver(o Observer) *UseCase {
	uc.observer = o
	return uc
}

// WithClock reemplaza el reloj (pruebas).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

func (uc *UseCase) notify(sessionID string, index int, rec entity.CFDIRecord) {
	if rec.IsTerminal() {
		uc.metrics.CFDIResolved(rec.Status)
		uc.log.Info().
			Str("session_id", sessionID).
			Str("uuid", rec.UUID).
			Str("status", rec.Status).
			Msg("cfdi validado")
	}
	if uc.observer != nil {
		uc.observer(sessionID, index, rec)
	}
}

func response(b *entity.CFDIBatch) *dto.CFDIBatchResponse {
	r := dto.NewCFDIBatchResponse(b)
	return &r
}

// update aplica fn rechazando cambios mientras hay una validación en curso.
func (uc *UseCase) update(sessionID, action string, fn func(b *entity.CFDIBatch) error) (*dto.CFDIBatchResponse, error) {
	b, err := uc.repo.Update(sessionID, func(b *entity.CFDIBatch) error {
		if b.Processing {
			return fmt.Errorf("%w: validación en curso", domain.ErrConflict)
		}
		return fn(b)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	return response(b), nil
}

// Get devuelve el lote de la sesión con sus contadores.
func (uc *UseCase) Get(_ context.Context, sessionID string) (*dto.CFDIBatchResponse, error) {
	b, err := uc.repo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("obtener lote: %w", err)
	}
	return response(b), nil
}

// AddRecord agrega un registro pendiente al lote; UUID, RFC y monto son obligatorios.
func (uc *UseCase) AddRecord(_ context.Context, sessionID string, req dto.AddCFDIRequest) (*dto.CFDIBatchResponse, error) {
	rec := entity.CFDIRecord{
		UUID:   strings.ToUpper(strings.TrimSpace(req.UUID)),
		RFC:    strings.ToUpper(strings.TrimSpace(req.RFC)),
		Status: entity.CFDIStatusPending,
	}
	var errs []error
	if rec.UUID == "" {
		errs = append(errs, fmt.Errorf("%w: uuid requerido", domain.ErrInvalidInput))
	}
	if rec.RFC == "" {
		errs = append(errs, fmt.Errorf("%w: rfc requerido", domain.ErrInvalidInput))
	}
	if strings.TrimSpace(req.Amount) == "" {
		errs = append(errs, fmt.Errorf("%w: monto requerido", domain.ErrInvalidInput))
	} else if amount, err := tax.ParseAmount(req.Amount); err != nil {
		errs = append(errs, fmt.Errorf("monto: %w", err))
	} else {
		rec.Amount = amount
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return uc.update(sessionID, "agregar cfdi", func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeBatch
		b.Records = append(b.Records, rec)
		return nil
	})
}

// RemoveRecord elimina el registro en la posición index; solo mientras está pendiente.
func (uc *UseCase) RemoveRecord(_ context.Context, sessionID string, index int) (*dto.CFDIBatchResponse, error) {
	return uc.update(sessionID, "eliminar cfdi", func(b *entity.CFDIBatch) error {
		if index < 0 || index >= len(b.Records) {
			return fmt.Errorf("registro %d: %w", index, domain.ErrNotFound)
		}
		if b.Records[index].Status != entity.CFDIStatusPending {
			return fmt.Errorf("%w: el registro %d ya fue procesado", domain.ErrConflict, index)
		}
		b.Records = append(b.Records[:index], b.Records[index+1:]...)
		return nil
	})
}

// UploadCSV reemplaza el lote con los registros del archivo.
func (uc *UseCase) UploadCSV(_ context.Context, sessionID string, r io.Reader) (*dto.CFDIBatchResponse, error) {
	records, err := uc.codec.ParseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("cargar csv: %w", err)
	}
	resp, err := uc.update(sessionID, "cargar csv", func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeBatch
		b.Records = records
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", sessionID).Int("records", len(records)).Msg("lote cfdi cargado")
	return resp, nil
}

// UploadXML extrae los datos de uno o varios comprobantes XML y los agrega al lote.
func (uc *UseCase) UploadXML(_ context.Context, sessionID string, files ...io.Reader) (*dto.CFDIBatchResponse, error) {
	records := make([]entity.CFDIRecord, 0, len(files))
	var errs []error
	for i, f := range files {
		rec, err := uc.codec.ParseXML(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("archivo %d: %w", i+1, err))
			continue
		}
		records = append(records, rec)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("cargar xml: %w", err)
	}
	return uc.update(sessionID, "cargar xml", func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeBatch
		b.Records = append(b.Records, records...)
		return nil
	})
}

// ValidateAll valida en orden los registros no resueltos del lote, uno a la vez.
// Una segunda validación concurrente en la misma sesión devuelve ErrConflict.
// Si ctx se cancela, el registro en curso vuelve a pendiente y los ya resueltos se conservan.
func (uc *UseCase) ValidateAll(ctx context.Context, sessionID string) (*dto.CFDIBatchResponse, error) {
	batch, err := uc.begin(sessionID, func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeBatch
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("validar lote: %w", err)
	}
	defer uc.finish(sessionID)

	start := time.Now()
	for i, rec := range batch.Records {
		if rec.IsTerminal() {
			continue
		}
		if err := uc.resolve(ctx, sessionID, i, rec, entity.CFDIModeBatch); err != nil {
			return nil, fmt.Errorf("validar lote: %w", err)
		}
	}

	out, err := uc.finish(sessionID)
	if err != nil {
		return nil, fmt.Errorf("validar lote: %w", err)
	}
	uc.log.Info().
		Str("session_id", sessionID).
		Int("valid", out.Summary.Valid).
		Int("invalid", out.Summary.Invalid).
		Dur("elapsed", time.Since(start)).
		Msg("lote cfdi validado")
	return out, nil
}

// ValidateSingle valida un solo comprobante; el lote queda con ese único registro.
func (uc *UseCase) ValidateSingle(ctx context.Context, sessionID string, req dto.ValidateSingleRequest) (*dto.CFDIBatchResponse, error) {
	rec := entity.CFDIRecord{
		UUID:   strings.ToUpper(strings.TrimSpace(req.UUID)),
		RFC:    strings.ToUpper(strings.TrimSpace(req.RFC)),
		Status: entity.CFDIStatusPending,
	}
	if rec.UUID == "" {
		return nil, fmt.Errorf("%w: uuid requerido", domain.ErrInvalidInput)
	}
	if rec.RFC == "" {
		rec.RFC = NotSpecifiedRFC
	}
	amount, err := tax.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("monto: %w", err)
	}
	rec.Amount = amount

	if _, err := uc.begin(sessionID, func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeSingle
		b.Records = []entity.CFDIRecord{rec}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("validar cfdi: %w", err)
	}
	defer uc.finish(sessionID)

	if err := uc.resolve(ctx, sessionID, 0, rec, entity.CFDIModeSingle); err != nil {
		return nil, fmt.Errorf("validar cfdi: %w", err)
	}
	out, err := uc.finish(sessionID)
	if err != nil {
		return nil, fmt.Errorf("validar cfdi: %w", err)
	}
	return out, nil
}

// begin marca el lote como en proceso tras aplicar prepare.
func (uc *UseCase) begin(sessionID string, prepare func(b *entity.CFDIBatch) error) (*entity.CFDIBatch, error) {
	return uc.repo.Update(sessionID, func(b *entity.CFDIBatch) error {
		if b.Processing {
			return fmt.Errorf("%w: validación en curso", domain.ErrConflict)
		}
		if err := prepare(b); err != nil {
			return err
		}
		b.Processing = true
		return nil
	})
}

// finish libera la marca de proceso; es idempotente.
func (uc *UseCase) finish(sessionID string) (*dto.CFDIBatchResponse, error) {
	b, err := uc.repo.Update(sessionID, func(b *entity.CFDIBatch) error {
		b.Processing = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response(b), nil
}

// resolve valida el registro index: validating → valid|invalid, persistiendo cada transición.
func (uc *UseCase) resolve(ctx context.Context, sessionID string, index int, rec entity.CFDIRecord, mode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec.Status = entity.CFDIStatusValidating
	if err := uc.store(sessionID, index, rec); err != nil {
		return err
	}
	uc.notify(sessionID, index, rec)

	resolved, err := uc.verifier.Verify(ctx, rec, mode)
	if err != nil {
		rec.Status = entity.CFDIStatusPending
		if serr := uc.store(sessionID, index, rec); serr != nil {
			return errors.Join(err, serr)
		}
		uc.notify(sessionID, index, rec)
		return err
	}
	if err := uc.store(sessionID, index, resolved); err != nil {
		return err
	}
	uc.notify(sessionID, index, resolved)
	return nil
}

func (uc *UseCase) store(sessionID string, index int, rec entity.CFDIRecord) error {
	_, err := uc.repo.Update(sessionID, func(b *entity.CFDIBatch) error {
		if index >= len(b.Records) || b.Records[index].UUID != rec.UUID {
			return fmt.Errorf("%w: el lote cambió durante la validación", domain.ErrConflict)
		}
		b.Records[index] = rec
		return nil
	})
	return err
}

// ExportResults genera el CSV de resultados del lote.
func (uc *UseCase) ExportResults(_ context.Context, sessionID string) (*dto.FileResponse, error) {
	b, err := uc.repo.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("exportar resultados: %w", err)
	}
	now := uc.now()
	var buf bytes.Buffer
	if err := uc.codec.WriteResults(&buf, b.Records, now.Format("2006-01-02")); err != nil {
		return nil, fmt.Errorf("exportar resultados: %w", err)
	}
	return &dto.FileResponse{
		Filename:    uc.codec.ResultsFilename(now),
		ContentType: "text/csv; charset=utf-8",
		Content:     buf.Bytes(),
	}, nil
}

// Template devuelve la plantilla CSV de carga.
func (uc *UseCase) Template() *dto.FileResponse {
	name, content := uc.codec.Template()
	return &dto.FileResponse{Filename: name, ContentType: "text/csv; charset=utf-8", Content: content}
}

// Reset vacía el lote de la sesión.
func (uc *UseCase) Reset(_ context.Context, sessionID string) (*dto.CFDIBatchResponse, error) {
	return uc.update(sessionID, "reiniciar lote", func(b *entity.CFDIBatch) error {
		b.Mode = entity.CFDIModeBatch
		b.Records = []entity.CFDIRecord{}
		return nil
	})
}
