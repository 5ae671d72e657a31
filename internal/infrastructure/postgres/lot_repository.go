package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, organization_id, product_id, lot_number, expiration_date, quantity_available, created_at, updated_at`

// Create persiste un nuevo lote. (Producto, número de lote) es único por organización.
func (r *LotRepo) Create(lot *entity.ProductLot) error {
	query := `
		INSERT INTO product_lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.OrganizationID, lot.ProductID, lot.LotNumber, lot.ExpirationDate,
		lot.Quantity, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID dentro de la organización.
func (r *LotRepo) GetByID(organizationID, id string) (*entity.ProductLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM product_lots WHERE organization_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, id))
}

// GetForUpdate obtiene el lote y bloquea la fila para update (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(organizationID, id string) (*entity.ProductLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM product_lots WHERE organization_id = $1 AND id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, id))
}

// UpdateQuantity persiste la nueva cantidad disponible del lote.
func (r *LotRepo) UpdateQuantity(lot *entity.ProductLot) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_lots SET quantity_available = $3, updated_at = $4 WHERE organization_id = $1 AND id = $2`,
		lot.OrganizationID, lot.ID, lot.Quantity, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// ListByProduct lista los lotes de un producto, más reciente primero.
func (r *LotRepo) ListByProduct(organizationID, productID string, limit, offset int) ([]*entity.ProductLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM product_lots WHERE organization_id = $1 AND product_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, organizationID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductLot
	for rows.Next() {
		var l entity.ProductLot
		if err := rows.Scan(&l.ID, &l.OrganizationID, &l.ProductID, &l.LotNumber,
			&l.ExpirationDate, &l.Quantity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *LotRepo) scanOne(row pgx.Row) (*entity.ProductLot, error) {
	var l entity.ProductLot
	err := row.Scan(&l.ID, &l.OrganizationID, &l.ProductID, &l.LotNumber,
		&l.ExpirationDate, &l.Quantity, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}
