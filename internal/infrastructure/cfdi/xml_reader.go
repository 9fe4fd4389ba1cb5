package cfdi

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/smartax-ai/smartax-api/internal/domain"
	"github.com/smartax-ai/smartax-api/internal/domain/entity"
	"github.com/smartax-ai/smartax-api/internal/domain/tax"
	"github.com/smartax-ai/smartax-api/pkg/sat"
)

// charsetReader acepta UTF-8 e ISO-8859-1/Windows-1252, comunes en CFDI generados por sistemas antiguos.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "", "UTF-8", "UTF8":
		return input, nil
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", charset)
	}
}

// ReadXML extrae UUID (TimbreFiscalDigital), RFC del emisor y total de un CFDI 4.0.
// Solo lee el documento; no valida sello ni certificado.
func ReadXML(r io.Reader) (entity.CFDIRecord, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return entity.CFDIRecord{}, fmt.Errorf("%w: XML ilegible: %v", domain.ErrInvalidInput, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "Comprobante" {
		return entity.CFDIRecord{}, fmt.Errorf("%w: la raíz no es cfdi:Comprobante", domain.ErrInvalidInput)
	}

	rec := entity.CFDIRecord{Status: entity.CFDIStatusPending}
	var errs []error

	if tfd := root.FindElement("./Complemento/TimbreFiscalDigital"); tfd != nil {
		rec.UUID = strings.ToUpper(strings.TrimSpace(tfd.SelectAttrValue("UUID", "")))
	}
	if rec.UUID == "" {
		errs = append(errs, fmt.Errorf("%w: sin TimbreFiscalDigital/UUID", domain.ErrInvalidInput))
	}

	if emisor := root.FindElement("./Emisor"); emisor != nil {
		rec.RFC = sat.NormalizeRFC(emisor.SelectAttrValue("Rfc", ""))
	}
	if err := sat.ValidateRFCFormat(rec.RFC); err != nil {
		errs = append(errs, fmt.Errorf("%w: emisor: %v", domain.ErrInvalidInput, err))
	}

	rawTotal := strings.TrimSpace(root.SelectAttrValue("Total", ""))
	total, err := tax.ParseAmount(rawTotal)
	if rawTotal == "" || err != nil {
		errs = append(errs, fmt.Errorf("%w: atributo Total inválido", domain.ErrInvalidInput))
	} else {
		rec.Amount = total
	}

	if err := errors.Join(errs...); err != nil {
		return entity.CFDIRecord{}, err
	}
	return rec, nil
}
