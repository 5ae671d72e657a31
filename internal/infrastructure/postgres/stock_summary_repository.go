package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.StockSummaryRepository = (*StockSummaryRepo)(nil)

// StockSummaryRepo proyección de lectura del stock sobre PostgreSQL.
// Agrega product_lots por producto; el producto sin lotes aparece con total 0.
type StockSummaryRepo struct {
	q Querier
}

// NewStockSummaryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockSummaryRepository(q Querier) *StockSummaryRepo {
	return &StockSummaryRepo{q: q}
}

// Summarize devuelve una fila por producto con su stock total, aplicando los
// filtros de forma conjuntiva. Orden alfabético por nombre de producto.
func (r *StockSummaryRepo) Summarize(organizationID string, filter entity.StockSummaryFilter) ([]*entity.StockSummaryRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.brand, p.unit,
		       COALESCE(c.name, ''), COALESCE(s.name, ''), p.is_active,
		       COALESCE(SUM(pl.quantity_available), 0) AS total_stock
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN product_lots pl ON pl.product_id = p.id AND pl.organization_id = p.organization_id
		WHERE p.organization_id = $1
		  AND ($2 = '' OR p.sku ILIKE '%' || $2 || '%' OR p.name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR p.brand = $3)
		  AND ($4 = '' OR p.supplier_id::text = $4)
		  AND ($5 = '' OR p.category_id::text = $5)
		  AND ($6::boolean IS NULL OR p.is_active = $6)
		GROUP BY p.id, p.sku, p.name, p.brand, p.unit, c.name, s.name, p.is_active
		ORDER BY p.name ASC`

	rows, err := r.q.Query(context.Background(), query,
		organizationID, filter.Query, filter.Brand, filter.SupplierID, filter.CategoryID, filter.IsActive)
	if err != nil {
		return nil, fmt.Errorf("summarize stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockSummaryRow
	for rows.Next() {
		var row entity.StockSummaryRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Brand, &row.Unit,
			&row.CategoryName, &row.SupplierName, &row.IsActive, &row.TotalStock); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		row.LowStock = row.TotalStock.LessThanOrEqual(decimal.Zero)
		list = append(list, &row)
	}
	return list, rows.Err()
}
