package usecase

import (
	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// StockSummaryUseCase proyección de lectura del stock: una fila por producto
// con el total disponible sumado sobre todos sus lotes y los nombres de
// categoría y proveedor resueltos.
type StockSummaryUseCase struct {
	repo repository.StockSummaryRepository
}

// NewStockSummaryUseCase construye el caso de uso.
func NewStockSummaryUseCase(repo repository.StockSummaryRepository) *StockSummaryUseCase {
	return &StockSummaryUseCase{repo: repo}
}

// Summarize devuelve el resumen filtrado (filtros conjuntivos), ordenado por
// nombre de producto ascendente. TotalStock es 0 para productos sin lotes.
func (uc *StockSummaryUseCase) Summarize(organizationID string, filter entity.StockSummaryFilter) (*dto.StockSummaryResponse, error) {
	rows, err := uc.repo.Summarize(organizationID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockSummaryRowResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StockSummaryRowResponse{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			Name:         r.Name,
			Brand:        r.Brand,
			Unit:         r.Unit,
			CategoryName: r.CategoryName,
			SupplierName: r.SupplierName,
			IsActive:     r.IsActive,
			TotalStock:   r.TotalStock,
			LowStock:     r.LowStock,
		})
	}
	return &dto.StockSummaryResponse{Items: items}, nil
}
