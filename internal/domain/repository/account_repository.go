package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para cuentas por cobrar o
// por pagar. La misma interfaz se implementa dos veces, una por tabla
// (accounts_receivable, accounts_payable).
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(organizationID, id string) (*entity.Account, error)
	// GetForUpdate obtiene la cuenta bloqueando la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(organizationID, id string) (*entity.Account, error)
	UpdateBalance(organizationID, id string, pending decimal.Decimal, status string) error
	ListByOrganization(organizationID, status string, limit, offset int) ([]*entity.Account, error)
}

// PaymentRepository define el puerto de persistencia para pagos de cuentas.
// Dos implementaciones: receivable_payments y payable_payments.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(organizationID, id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	ListByAccount(organizationID, accountID string, limit, offset int) ([]*entity.Payment, error)
}
