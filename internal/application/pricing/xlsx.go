package pricing

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
)

// ParseXLSX lee un .xlsx con (SKU, precio) en las columnas A y B de la primera
// hoja. Si la primera fila no tiene precio numérico se trata como encabezado.
// Devuelve los items parseados y los SKU de filas con precio ilegible (que el
// import reporta como no resueltos). Filas con SKU vacío se ignoran.
func ParseXLSX(r io.Reader) ([]dto.PriceListItemInput, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, domain.ErrEmptyImport
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}

	var items []dto.PriceListItemInput
	malformed := []string{}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		sku := strings.TrimSpace(row[0])
		if sku == "" {
			continue
		}
		rawPrice := ""
		if len(row) > 1 {
			rawPrice = strings.TrimSpace(row[1])
		}
		price, err := parsePrice(rawPrice)
		if err != nil {
			// Primera fila sin precio numérico: encabezado, no un error.
			if i == 0 {
				continue
			}
			malformed = append(malformed, sku)
			continue
		}
		items = append(items, dto.PriceListItemInput{SKU: sku, Price: price})
	}
	return items, malformed, nil
}

// parsePrice acepta separador decimal con punto o coma ("1234.50" y "1234,50").
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("precio vacío")
	}
	normalized := strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(normalized)
}
