package entity

import "github.com/shopspring/decimal"

// StockSummaryRow es la proyección de lectura del stock por producto:
// cantidad total sumada sobre todos sus lotes, con nombres de categoría y
// proveedor ya resueltos (left join). Una fila por producto.
type StockSummaryRow struct {
	ProductID    string
	SKU          string
	Name         string
	Brand        string
	Unit         string
	CategoryName string // vacío si no tiene categoría
	SupplierName string // vacío si no tiene proveedor
	IsActive     bool
	TotalStock   decimal.Decimal // 0 si el producto no tiene lotes
	LowStock     bool            // TotalStock <= 0
}

// StockSummaryFilter filtros conjuntivos (AND) para el resumen de stock.
type StockSummaryFilter struct {
	Query      string // busca en SKU y nombre
	Brand      string
	SupplierID string
	CategoryID string
	IsActive   *bool // nil = todos
}
