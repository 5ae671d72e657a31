package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// StockSummaryRepository es el puerto de la proyección de lectura del stock:
// una fila por producto con el total disponible sumado sobre sus lotes.
type StockSummaryRepository interface {
	Summarize(organizationID string, filter entity.StockSummaryFilter) ([]*entity.StockSummaryRow, error)
}
