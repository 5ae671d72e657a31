package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository sobre PostgreSQL. La misma
// implementación sirve a accounts_receivable y accounts_payable: cambia la
// tabla y el tipo de cuenta que se materializa en la entidad.
type AccountRepo struct {
	q     Querier
	table string
	kind  string
}

// NewReceivableRepository construye el adaptador de cuentas por cobrar. Pasar pool o tx (Querier).
func NewReceivableRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q, table: "accounts_receivable", kind: entity.AccountKindReceivable}
}

// NewPayableRepository construye el adaptador de cuentas por pagar. Pasar pool o tx (Querier).
func NewPayableRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q, table: "accounts_payable", kind: entity.AccountKindPayable}
}

const accountColumns = `id, organization_id, counterparty_id, description, total_amount, pending_balance, due_date, status, created_at, updated_at`

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO ` + r.table + ` (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.OrganizationID, account.CounterpartyID, account.Description,
		account.TotalAmount, account.PendingBalance, account.DueDate, account.Status,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert %s account: %w", r.kind, err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID dentro de la organización.
func (r *AccountRepo) GetByID(organizationID, id string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM ` + r.table + ` WHERE organization_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, id))
}

// GetForUpdate obtiene la cuenta y bloquea la fila (SELECT FOR UPDATE) para
// que dos pagos concurrentes no lean el mismo saldo pendiente.
func (r *AccountRepo) GetForUpdate(organizationID, id string) (*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM ` + r.table + ` WHERE organization_id = $1 AND id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, id))
}

// UpdateBalance persiste el nuevo saldo pendiente y el estado recalculado.
func (r *AccountRepo) UpdateBalance(organizationID, id string, pending decimal.Decimal, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE `+r.table+` SET pending_balance = $3, status = $4, updated_at = now() WHERE organization_id = $1 AND id = $2`,
		organizationID, id, pending, status,
	)
	if err != nil {
		return fmt.Errorf("update %s balance: %w", r.kind, err)
	}
	return nil
}

// ListByOrganization lista cuentas por organización; status vacío lista todas.
func (r *AccountRepo) ListByOrganization(organizationID, status string, limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM ` + r.table + `
		WHERE organization_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY due_date ASC NULLS LAST, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, organizationID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s accounts: %w", r.kind, err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.OrganizationID, &a.CounterpartyID, &a.Description,
			&a.TotalAmount, &a.PendingBalance, &a.DueDate, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s account: %w", r.kind, err)
		}
		a.Kind = r.kind
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AccountRepo) scanOne(row pgx.Row) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.OrganizationID, &a.CounterpartyID, &a.Description,
		&a.TotalAmount, &a.PendingBalance, &a.DueDate, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s account: %w", r.kind, err)
	}
	a.Kind = r.kind
	return &a, nil
}
