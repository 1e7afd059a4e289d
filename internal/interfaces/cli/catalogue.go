package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/dealership-api/internal/application/dto"
	"github.com/jhoicas/dealership-api/internal/domain"
	"github.com/jhoicas/dealership-api/internal/domain/entity"
)

// Columnas reconocidas en el catálogo del proveedor (cabecera obligatoria, orden libre).
var catalogueColumns = []string{
	"part_name", "part_number", "quantity_available", "reorder_level", "location",
	"supplier_name", "unit_price", "part_category", "compatibility_info",
}

var requiredColumns = []string{
	"part_name", "part_number", "quantity_available", "reorder_level", "unit_price", "part_category",
}

// RowError fila del CSV que no se pudo convertir o crear.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// ImportReport resultado de una importación.
type ImportReport struct {
	Created []string // part_id generados
	Skipped []RowError
}

// partCreator lo implementa *usecase.PartUseCase.
type partCreator interface {
	Create(ctx context.Context, in *dto.CreatePartRequest) (*entity.Part, error)
}

// decodeCharset envuelve r para decodificar a UTF-8. Acepta utf-8, iso-8859-1/latin1 y windows-1252.
func decodeCharset(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// ImportParts lee el catálogo y crea cada repuesto con el caso de uso.
// Filas inválidas o duplicadas se reportan y se omiten; cualquier otro error corta la importación.
func ImportParts(ctx context.Context, parts partCreator, r io.Reader, charset string, comma rune) (*ImportReport, error) {
	in, err := decodeCharset(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(in)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	index := headerIndex(header)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("cabecera sin columna %s", col)
		}
	}

	report := &ImportReport{}
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report, fmt.Errorf("leer línea %d: %w", line, err)
		}
		req, err := rowToRequest(row, index)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Line: line, Err: err})
			continue
		}
		out, err := parts.Create(ctx, req)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrDuplicate) {
				report.Skipped = append(report.Skipped, RowError{Line: line, Err: err})
				continue
			}
			return report, fmt.Errorf("crear repuesto (línea %d): %w", line, err)
		}
		report.Created = append(report.Created, out.PartID)
	}
	return report, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		// El BOM de UTF-8 llega pegado a la primera columna.
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, col := range catalogueColumns {
			if name == col {
				index[col] = i
			}
		}
	}
	return index
}

// rowToRequest convierte una fila. Una celda numérica vacía queda ausente y el caso de uso la rechaza.
func rowToRequest(row []string, index map[string]int) (*dto.CreatePartRequest, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	atoi := func(col string) (*int, error) {
		v := get(col)
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s no es entero: %q", domain.ErrInvalidInput, col, v)
		}
		return &n, nil
	}

	qty, err := atoi("quantity_available")
	if err != nil {
		return nil, err
	}
	reorder, err := atoi("reorder_level")
	if err != nil {
		return nil, err
	}
	var price *decimal.Decimal
	if v := get("unit_price"); v != "" {
		// Catálogos con coma decimal: "12,50".
		d, err := decimal.NewFromString(strings.Replace(v, ",", ".", 1))
		if err != nil {
			return nil, fmt.Errorf("%w: unit_price inválido: %q", domain.ErrInvalidInput, v)
		}
		price = &d
	}
	return &dto.CreatePartRequest{
		PartName:          get("part_name"),
		PartNumber:        get("part_number"),
		QuantityAvailable: qty,
		ReorderLevel:      reorder,
		Location:          get("location"),
		SupplierName:      get("supplier_name"),
		UnitPrice:         price,
		PartCategory:      get("part_category"),
		CompatibilityInfo: get("compatibility_info"),
	}, nil
}
