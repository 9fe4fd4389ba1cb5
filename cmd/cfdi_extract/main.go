// cfdi_extract genera el CSV de carga masiva del validador a partir de comprobantes CFDI 4.0 en XML.
//
// Uso: go run ./cmd/cfdi_extract [directorio|archivo.xml ...]
// Por defecto recorre el directorio actual. Los directorios se recorren de forma recursiva.
// Escribe: cfdi_carga.csv en el directorio actual.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/cfdi"
)

const outPath = "cfdi_carga.csv"

func main() {
	if err := run(os.Args[1:], outPath, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run extrae los comprobantes de roots y escribe el CSV en out.
// Los archivos ilegibles o con UUID repetido se reportan en stderr y se omiten.
func run(roots []string, out string, stdout, stderr io.Writer) error {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	files, err := collectXML(roots)
	if err != nil {
		return fmt.Errorf("recorrer rutas: %w", err)
	}
	if len(files) == 0 {
		return errors.New("no se encontraron archivos .xml")
	}

	seen := make(map[string]bool)
	var records []entity.CFDIRecord
	skipped := 0
	for _, path := range files {
		rec, err := readFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Omitido %s: %v\n", path, err)
			skipped++
			continue
		}
		if seen[rec.UUID] {
			fmt.Fprintf(stderr, "Omitido %s: UUID %s duplicado\n", path, rec.UUID)
			skipped++
			continue
		}
		seen[rec.UUID] = true
		records = append(records, rec)
	}

	if err := writeFile(out, func(w io.Writer) error { return cfdi.WriteUpload(w, records) }); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Generado %s: %d comprobantes, %d omitidos\n", out, len(records), skipped)
	return nil
}

// writeFile crea path y escribe en él con write. Si algo falla el archivo parcial se elimina.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cerrar archivo: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("escribir CSV: %w", err)
	}
	return nil
}

func readFile(path string) (entity.CFDIRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.CFDIRecord{}, err
	}
	defer f.Close()
	return cfdi.ReadXML(f)
}

// collectXML devuelve las rutas .xml ordenadas para una salida estable.
func collectXML(roots []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
