package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/Distribuidora-api/internal/application/pricing"
	"github.com/jhoicas/Distribuidora-api/internal/application/treasury"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de cada caso de uso.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ treasury.TxRunner = (*TxRunner)(nil)
var _ pricing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del libro de stock (lotes y
// movimientos) atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	movRepo repository.MovementRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewLotRepository(q), NewMovementRepository(q))
	})
}

// RunReceivable inicia una transacción con los repos de cuentas por cobrar.
func (r *TxRunner) RunReceivable(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	payments repository.PaymentRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewReceivableRepository(q), NewReceivablePaymentRepository(q))
	})
}

// RunPayable inicia una transacción con los repos de cuentas por pagar.
func (r *TxRunner) RunPayable(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	payments repository.PaymentRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewPayableRepository(q), NewPayablePaymentRepository(q))
	})
}

// RunPricing inicia una transacción con los repos de listas de precios y productos.
func (r *TxRunner) RunPricing(ctx context.Context, fn func(
	listRepo repository.PriceListRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewPriceListRepository(q), NewProductRepository(q))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
