package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL, parametrizada
// por tabla (receivable_payments o payable_payments).
type PaymentRepo struct {
	q     Querier
	table string
}

// NewReceivablePaymentRepository construye el adaptador de pagos de cuentas por cobrar.
func NewReceivablePaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q, table: "receivable_payments"}
}

// NewPayablePaymentRepository construye el adaptador de pagos de cuentas por pagar.
func NewPayablePaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q, table: "payable_payments"}
}

const paymentColumns = `id, organization_id, account_id, amount, method, payment_date, reference, notes, created_at, updated_at, created_by`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO ` + r.table + ` (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.OrganizationID, payment.AccountID, payment.Amount,
		payment.Method, payment.Date, payment.Reference, payment.Notes,
		payment.CreatedAt, payment.UpdatedAt, payment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID dentro de la organización.
func (r *PaymentRepo) GetByID(organizationID, id string) (*entity.Payment, error) {
	query := `
		SELECT id, organization_id, account_id, amount, method, payment_date, reference, notes,
		       created_at, updated_at, COALESCE(created_by::text, '')
		FROM ` + r.table + ` WHERE organization_id = $1 AND id = $2`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, organizationID, id).Scan(
		&p.ID, &p.OrganizationID, &p.AccountID, &p.Amount, &p.Method,
		&p.Date, &p.Reference, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update persiste los campos editables de un pago (monto, medio, fecha, referencia, notas).
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE ` + r.table + `
		SET amount = $3, method = $4, payment_date = $5, reference = $6, notes = $7, updated_at = now()
		WHERE organization_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		payment.OrganizationID, payment.ID, payment.Amount, payment.Method,
		payment.Date, payment.Reference, payment.Notes,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// ListByAccount lista los pagos de una cuenta, del más reciente al más antiguo.
func (r *PaymentRepo) ListByAccount(organizationID, accountID string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, organization_id, account_id, amount, method, payment_date, reference, notes,
		       created_at, updated_at, COALESCE(created_by::text, '')
		FROM ` + r.table + `
		WHERE organization_id = $1 AND account_id = $2
		ORDER BY payment_date DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, organizationID, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.AccountID, &p.Amount, &p.Method,
			&p.Date, &p.Reference, &p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
