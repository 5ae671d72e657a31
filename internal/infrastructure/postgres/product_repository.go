package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, organization_id, sku, name, brand, category_id, supplier_id,
	cost, price, unit, units_per_box, boxes_per_pallet, is_active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.OrganizationID, product.SKU, product.Name, product.Brand,
		product.CategoryID, product.SupplierID, product.Cost, product.Price, product.Unit,
		product.UnitsPerBox, product.BoxesPerPallet, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro de la organización.
func (r *ProductRepo) GetByID(organizationID, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE organization_id = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, id))
}

// GetBySKU obtiene un producto por SKU dentro de la organización.
func (r *ProductRepo) GetBySKU(organizationID, sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE organization_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, organizationID, sku))
}

// Update actualiza un producto existente. El SKU no se modifica.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, brand = $4, category_id = NULLIF($5, ''), supplier_id = NULLIF($6, ''),
		    cost = $7, price = $8, unit = $9, units_per_box = $10, boxes_per_pallet = $11, updated_at = $12
		WHERE organization_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.OrganizationID, product.ID, product.Name, product.Brand,
		product.CategoryID, product.SupplierID, product.Cost, product.Price, product.Unit,
		product.UnitsPerBox, product.BoxesPerPallet, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateCost actualiza solo el costo del producto (usado por el import de listas de precios).
func (r *ProductRepo) UpdateCost(organizationID, productID string, cost decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET cost = $3, updated_at = now() WHERE organization_id = $1 AND id = $2`,
		organizationID, productID, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	return nil
}

// SetActive activa o desactiva un producto (baja lógica).
func (r *ProductRepo) SetActive(organizationID, productID string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = $3, updated_at = now() WHERE organization_id = $1 AND id = $2`,
		organizationID, productID, active,
	)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return nil
}

// ListByOrganization lista productos por organización con paginación.
func (r *ProductRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE organization_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// scanProduct lee una fila de products; category_id/supplier_id pueden ser NULL.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID, supplierID *string
	err := row.Scan(&p.ID, &p.OrganizationID, &p.SKU, &p.Name, &p.Brand,
		&categoryID, &supplierID, &p.Cost, &p.Price, &p.Unit,
		&p.UnitsPerBox, &p.BoxesPerPallet, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}
