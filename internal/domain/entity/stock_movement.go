package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeINBOUND    = "INBOUND"    // entrada
	MovementTypeOUTBOUND   = "OUTBOUND"   // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste a valor absoluto
	MovementTypeTRANSFER   = "TRANSFER"   // traslado (efecto de salida sobre el lote)
)

// StockMovement representa un movimiento auditado sobre un lote.
// Registro inmutable: PreviousStock y NewStock son la foto del lote antes y
// después de aplicar el movimiento, y NewStock debe coincidir con la cantidad
// del lote inmediatamente después del commit.
type StockMovement struct {
	ID             string
	OrganizationID string
	LotID          string
	ProductID      string
	Type           string          // INBOUND, OUTBOUND, ADJUSTMENT, TRANSFER
	Quantity       decimal.Decimal // cantidad del movimiento, siempre positiva salvo ADJUSTMENT (delta firmado)
	PreviousStock  decimal.Decimal
	NewStock       decimal.Decimal
	Reason         string
	CreatedAt      time.Time
	CreatedBy      string // UserID
}
