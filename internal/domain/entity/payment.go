package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medios de pago soportados (etiquetas persistidas tal cual).
const (
	PaymentMethodEfectivo      = "efectivo"
	PaymentMethodTransferencia = "transferencia"
	PaymentMethodCheque        = "cheque"
	PaymentMethodTarjetaCred   = "tarjeta_de_credito"
	PaymentMethodTarjetaDeb    = "tarjeta_de_debito"
)

// ValidPaymentMethod indica si el medio de pago es uno de los soportados.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodEfectivo, PaymentMethodTransferencia, PaymentMethodCheque,
		PaymentMethodTarjetaCred, PaymentMethodTarjetaDeb:
		return true
	}
	return false
}

// Payment representa un pago aplicado a una cuenta (1:N con Account).
// Registrar un pago descuenta PendingBalance de la cuenta en la misma transacción.
type Payment struct {
	ID             string
	OrganizationID string
	AccountID      string
	Amount         decimal.Decimal
	Method         string // ver constantes PaymentMethod*
	Date           time.Time
	Reference      string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string // UserID
}
