package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductLot representa un lote/partida de un producto con su propia cantidad disponible.
// Un producto puede tener varios lotes; cuando la cantidad llega a cero el lote
// queda agotado pero no se borra.
type ProductLot struct {
	ID             string
	OrganizationID string
	ProductID      string
	LotNumber      string
	ExpirationDate *time.Time // nil = sin vencimiento
	Quantity       decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
