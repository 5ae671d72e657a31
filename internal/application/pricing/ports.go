package pricing

import (
	"context"

	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// TxRunner ejecuta la importación completa de una lista de precios dentro de
// una transacción: alta de la lista, upsert de items y actualización opcional
// de costos de producto se confirman juntas o ninguna.
type TxRunner interface {
	RunPricing(ctx context.Context, fn func(
		listRepo repository.PriceListRepository,
		productRepo repository.ProductRepository,
	) error) error
}
