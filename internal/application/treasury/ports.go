package treasury

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de cuentas y pagos atados a esa tx. Hay un método por tabla
// porque cobrar y pagar persisten en tablas distintas.
type TxRunner interface {
	RunReceivable(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		payments repository.PaymentRepository,
	) error) error
	RunPayable(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		payments repository.PaymentRepository,
	) error) error
}
