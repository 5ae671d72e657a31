package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuenta.
const (
	AccountKindReceivable = "receivable" // cuenta por cobrar (cliente)
	AccountKindPayable    = "payable"    // cuenta por pagar (proveedor)
)

// Estados de cuenta. Las cuentas por cobrar persisten PARTIALLY_PAID como
// etiqueta del estado parcial; las cuentas por pagar persisten PARTIAL.
const (
	AccountStatusPending       = "PENDING"
	AccountStatusPartial       = "PARTIAL"
	AccountStatusPartiallyPaid = "PARTIALLY_PAID"
	AccountStatusPaid          = "PAID"
)

// Account representa una cuenta por cobrar o por pagar.
// TotalAmount queda fijo en la creación; PendingBalance solo baja vía pagos
// (sube únicamente al editar un pago existente). Invariante: 0 <= pending <= total.
type Account struct {
	ID             string
	OrganizationID string
	Kind           string // receivable, payable
	CounterpartyID string // CustomerID o SupplierID según Kind
	Description    string
	TotalAmount    decimal.Decimal
	PendingBalance decimal.Decimal
	DueDate        *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
