package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// PriceListUseCase importa y consulta listas de precios de proveedores.
// El import empareja cada (SKU, precio) contra el catálogo de la organización;
// los SKU no resueltos se reportan, no abortan la importación.
type PriceListUseCase struct {
	txRunner     TxRunner
	listRepo     repository.PriceListRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPriceListUseCase construye el caso de uso.
func NewPriceListUseCase(
	txRunner TxRunner,
	listRepo repository.PriceListRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PriceListUseCase {
	return &PriceListUseCase{
		txRunner:     txRunner,
		listRepo:     listRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// ImportInput entrada para importar una lista de precios.
type ImportInput struct {
	OrganizationID string
	SupplierID     string
	Name           string
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	UpdateCosts    bool
	Items          []dto.PriceListItemInput
}

// ImportResult resultado del import: el éxito parcial (algunos SKU sin
// resolver) no es error, se reporta.
type ImportResult struct {
	PriceListID   string
	ImportedCount int
	MissingSKUs   []string
}

// Import resuelve cada SKU contra el catálogo y persiste lista + items en una
// transacción. Cero items resolubles rechaza la importación completa sin
// persistir nada.
func (uc *PriceListUseCase) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if input.SupplierID == "" || input.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(input.OrganizationID, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	// Resolución de SKUs (solo lectura, fuera de la transacción).
	type resolved struct {
		productID string
		sku       string
		price     decimal.Decimal
	}
	var matches []resolved
	missing := []string{}
	for _, item := range input.Items {
		if item.SKU == "" {
			continue
		}
		if !item.Price.GreaterThan(decimal.Zero) {
			missing = append(missing, item.SKU)
			continue
		}
		product, err := uc.productRepo.GetBySKU(input.OrganizationID, item.SKU)
		if err != nil {
			return nil, err
		}
		if product == nil {
			missing = append(missing, item.SKU)
			continue
		}
		matches = append(matches, resolved{productID: product.ID, sku: item.SKU, price: item.Price})
	}
	if len(matches) == 0 {
		return nil, domain.ErrEmptyImport
	}

	now := time.Now()
	validFrom := now
	if input.ValidFrom != nil {
		validFrom = *input.ValidFrom
	}
	list := &entity.PriceList{
		ID:             uuid.New().String(),
		OrganizationID: input.OrganizationID,
		SupplierID:     input.SupplierID,
		Name:           input.Name,
		ValidFrom:      validFrom,
		ValidUntil:     input.ValidUntil,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.RunPricing(ctx, func(
		listRepo repository.PriceListRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := listRepo.Create(list); err != nil {
			return err
		}
		for _, m := range matches {
			item := &entity.PriceListItem{
				ID:          uuid.New().String(),
				PriceListID: list.ID,
				ProductID:   m.productID,
				SKU:         m.sku,
				Price:       m.price,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := listRepo.UpsertItem(item); err != nil {
				return err
			}
			if input.UpdateCosts {
				if err := productRepo.UpdateCost(input.OrganizationID, m.productID, m.price); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		PriceListID:   list.ID,
		ImportedCount: len(matches),
		MissingSKUs:   missing,
	}, nil
}

// Get devuelve una lista con sus items (nil si no existe).
func (uc *PriceListUseCase) Get(ctx context.Context, organizationID, id string) (*entity.PriceList, []*entity.PriceListItem, error) {
	list, err := uc.listRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, nil, err
	}
	if list == nil {
		return nil, nil, nil
	}
	items, err := uc.listRepo.ListItems(list.ID)
	if err != nil {
		return nil, nil, err
	}
	return list, items, nil
}

// List lista las listas de precios de la organización.
func (uc *PriceListUseCase) List(ctx context.Context, organizationID string, limit, offset int) ([]*entity.PriceList, error) {
	return uc.listRepo.ListByOrganization(organizationID, limit, offset)
}
