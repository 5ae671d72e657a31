package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(organizationID, id string) (*entity.Product, error)
	GetBySKU(organizationID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(organizationID, productID string, cost decimal.Decimal) error
	SetActive(organizationID, productID string, active bool) error
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error)
}
