package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para ProductLot.
type LotRepository interface {
	Create(lot *entity.ProductLot) error
	GetByID(organizationID, id string) (*entity.ProductLot, error)
	// GetForUpdate obtiene el lote bloqueando la fila (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetForUpdate(organizationID, id string) (*entity.ProductLot, error)
	UpdateQuantity(lot *entity.ProductLot) error
	ListByProduct(organizationID, productID string, limit, offset int) ([]*entity.ProductLot, error)
}

// MovementRepository define el puerto de persistencia para StockMovement.
// Los movimientos son inmutables: solo inserción y lectura.
type MovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByLot(organizationID, lotID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.StockMovement, error)
}
