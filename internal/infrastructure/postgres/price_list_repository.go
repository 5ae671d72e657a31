package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.PriceListRepository = (*PriceListRepo)(nil)

// PriceListRepo implementación de PriceListRepository sobre PostgreSQL.
type PriceListRepo struct {
	q Querier
}

// NewPriceListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceListRepository(q Querier) *PriceListRepo {
	return &PriceListRepo{q: q}
}

const priceListColumns = `id, organization_id, supplier_id, name, valid_from, valid_until, created_at, updated_at`

// Lecturas con el nombre del proveedor resuelto por JOIN.
const priceListReadColumns = `pl.id, pl.organization_id, pl.supplier_id, COALESCE(s.name, ''),
	pl.name, pl.valid_from, pl.valid_until, pl.created_at, pl.updated_at`

// Create persiste una nueva lista de precios.
func (r *PriceListRepo) Create(list *entity.PriceList) error {
	query := `
		INSERT INTO price_lists (` + priceListColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		list.ID, list.OrganizationID, list.SupplierID, list.Name,
		list.ValidFrom, list.ValidUntil, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista de precios por ID dentro de la organización.
func (r *PriceListRepo) GetByID(organizationID, id string) (*entity.PriceList, error) {
	query := `
		SELECT ` + priceListReadColumns + `
		FROM price_lists pl
		LEFT JOIN suppliers s ON s.id = pl.supplier_id
		WHERE pl.organization_id = $1 AND pl.id = $2`
	var l entity.PriceList
	err := r.q.QueryRow(context.Background(), query, organizationID, id).Scan(
		&l.ID, &l.OrganizationID, &l.SupplierID, &l.SupplierName, &l.Name,
		&l.ValidFrom, &l.ValidUntil, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list: %w", err)
	}
	return &l, nil
}

// ListByOrganization lista las listas de precios, la más reciente primero.
func (r *PriceListRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.PriceList, error) {
	query := `
		SELECT ` + priceListReadColumns + `
		FROM price_lists pl
		LEFT JOIN suppliers s ON s.id = pl.supplier_id
		WHERE pl.organization_id = $1
		ORDER BY pl.valid_from DESC, pl.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price lists: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceList
	for rows.Next() {
		var l entity.PriceList
		if err := rows.Scan(&l.ID, &l.OrganizationID, &l.SupplierID, &l.SupplierName, &l.Name,
			&l.ValidFrom, &l.ValidUntil, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpsertItem inserta o actualiza el precio de un producto en la lista
// (ON CONFLICT sobre price_list_id + product_id).
func (r *PriceListRepo) UpsertItem(item *entity.PriceListItem) error {
	query := `
		INSERT INTO price_list_items (id, price_list_id, product_id, sku, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (price_list_id, product_id)
		DO UPDATE SET price = EXCLUDED.price, sku = EXCLUDED.sku, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PriceListID, item.ProductID, item.SKU,
		item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert price list item: %w", err)
	}
	return nil
}

// ListItems lista los ítems de una lista de precios ordenados por SKU.
func (r *PriceListRepo) ListItems(priceListID string) ([]*entity.PriceListItem, error) {
	query := `
		SELECT id, price_list_id, product_id, sku, price, created_at, updated_at
		FROM price_list_items
		WHERE price_list_id = $1
		ORDER BY sku ASC`
	rows, err := r.q.Query(context.Background(), query, priceListID)
	if err != nil {
		return nil, fmt.Errorf("list price list items: %w", err)
	}
	defer rows.Close()
	var items []*entity.PriceListItem
	for rows.Next() {
		var it entity.PriceListItem
		if err := rows.Scan(&it.ID, &it.PriceListID, &it.ProductID, &it.SKU,
			&it.Price, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price list item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
