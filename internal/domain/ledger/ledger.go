// Package ledger contiene las funciones puras de la contabilidad de stock y
// de la conciliación de cuentas (servicios de dominio, sin dependencias de
// persistencia).
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// Estados derivados de un lote (presentación, no se persisten).
const (
	LotStatusDepleted     = "depleted"
	LotStatusExpired      = "expired"
	LotStatusExpiringSoon = "expiring_soon"
	LotStatusValid        = "valid"
)

// Días de anticipación con que un lote se marca como próximo a vencer.
const expirationWarningDays = 30

// MovementDelta devuelve el delta firmado que un movimiento aplica sobre la
// cantidad previa del lote: INBOUND suma, OUTBOUND y TRANSFER restan,
// ADJUSTMENT lleva la cantidad a un valor absoluto (delta = nuevo - previo).
func MovementDelta(movType string, previous, quantity decimal.Decimal) decimal.Decimal {
	switch movType {
	case entity.MovementTypeINBOUND:
		return quantity
	case entity.MovementTypeOUTBOUND, entity.MovementTypeTRANSFER:
		return quantity.Neg()
	case entity.MovementTypeADJUSTMENT:
		return quantity.Sub(previous)
	}
	return decimal.Zero
}

// LotStatus deriva el estado de un lote según cantidad y vencimiento.
// Agotado pesa más que vencido: un lote en cero es "depleted" aunque haya vencido.
func LotStatus(quantity decimal.Decimal, expiration *time.Time, now time.Time) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return LotStatusDepleted
	}
	if expiration == nil {
		return LotStatusValid
	}
	if now.After(*expiration) {
		return LotStatusExpired
	}
	if expiration.Sub(now) <= expirationWarningDays*24*time.Hour {
		return LotStatusExpiringSoon
	}
	return LotStatusValid
}

// DeriveStatus es la función de estado de una cuenta, idéntica para cobrar y
// pagar: pending <= 0 => PAID; 0 < pending < total => PARTIAL; pending == total => PENDING.
func DeriveStatus(total, pending decimal.Decimal) string {
	if pending.LessThanOrEqual(decimal.Zero) {
		return entity.AccountStatusPaid
	}
	if pending.LessThan(total) {
		return entity.AccountStatusPartial
	}
	return entity.AccountStatusPending
}

// StatusLabel traduce el estado derivado a la etiqueta persistida según el tipo
// de cuenta: las cuentas por cobrar guardan PARTIALLY_PAID para el estado parcial.
func StatusLabel(kind, status string) string {
	if kind == entity.AccountKindReceivable && status == entity.AccountStatusPartial {
		return entity.AccountStatusPartiallyPaid
	}
	return status
}
