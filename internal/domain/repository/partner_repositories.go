package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(organizationID, id string) (*entity.Category, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Category, error)
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(organizationID, id string) (*entity.Supplier, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Supplier, error)
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(organizationID, id string) (*entity.Customer, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Customer, error)
}
