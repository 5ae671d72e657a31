package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
// Los movimientos son inmutables: no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, organization_id, lot_id, product_id, type, quantity, previous_stock, new_stock, reason, created_at, created_by`

// Create persiste un movimiento de stock con sus fotos previous/new.
func (r *MovementRepo) Create(mov *entity.StockMovement) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''))`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.OrganizationID, mov.LotID, mov.ProductID, mov.Type,
		mov.Quantity, mov.PreviousStock, mov.NewStock, mov.Reason,
		mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByLot lista los movimientos de un lote, más reciente primero.
func (r *MovementRepo) ListByLot(organizationID, lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE organization_id = $1 AND lot_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, organizationID, lotID, limit, offset)
}

// ListByOrganization lista todos los movimientos de la organización, más reciente primero.
func (r *MovementRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE organization_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, organizationID, limit, offset)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.LotID, &m.ProductID, &m.Type,
			&m.Quantity, &m.PreviousStock, &m.NewStock, &m.Reason, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
