package repository

import "github.com/jhoicas/Distribuidora-api/internal/domain/entity"

// PriceListRepository define el puerto de persistencia para listas de precios.
type PriceListRepository interface {
	Create(list *entity.PriceList) error
	GetByID(organizationID, id string) (*entity.PriceList, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.PriceList, error)
	UpsertItem(item *entity.PriceListItem) error
	ListItems(priceListID string) ([]*entity.PriceListItem, error)
}
