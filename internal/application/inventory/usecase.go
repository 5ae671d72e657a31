package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/ledger"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

// StockUseCase administra lotes y movimientos de stock de forma transaccional
// (INBOUND, OUTBOUND, ADJUSTMENT, TRANSFER) con bloqueo de fila (SELECT FOR UPDATE)
// y Commit/Rollback.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	movRepo     repository.MovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	movRepo repository.MovementRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		lotRepo:     lotRepo,
		movRepo:     movRepo,
	}
}

// CreateLotInput entrada para crear un lote.
type CreateLotInput struct {
	OrganizationID  string
	UserID          string
	ProductID       string
	LotNumber       string
	ExpirationDate  *time.Time
	InitialQuantity decimal.Decimal
}

// MovementInput entrada para aplicar un movimiento sobre un lote.
// Para ADJUSTMENT, Quantity es la nueva cantidad absoluta del lote.
type MovementInput struct {
	OrganizationID string
	UserID         string
	LotID          string
	Type           string
	Quantity       decimal.Decimal
	Reason         string
}

// CreateLot crea un lote y, si la cantidad inicial es mayor a cero, registra el
// movimiento INBOUND correspondiente (previous_stock=0) en la misma transacción,
// de modo que la suma de movimientos del lote siempre iguala su cantidad.
func (uc *StockUseCase) CreateLot(ctx context.Context, input CreateLotInput) (*entity.ProductLot, error) {
	if input.ProductID == "" || input.LotNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.InitialQuantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.OrganizationID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	lot := &entity.ProductLot{
		ID:             uuid.New().String(),
		OrganizationID: input.OrganizationID,
		ProductID:      input.ProductID,
		LotNumber:      input.LotNumber,
		ExpirationDate: input.ExpirationDate,
		Quantity:       input.InitialQuantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := lotRepo.Create(lot); err != nil {
			return err
		}
		if input.InitialQuantity.GreaterThan(decimal.Zero) {
			mov := &entity.StockMovement{
				ID:             uuid.New().String(),
				OrganizationID: input.OrganizationID,
				LotID:          lot.ID,
				ProductID:      input.ProductID,
				Type:           entity.MovementTypeINBOUND,
				Quantity:       input.InitialQuantity,
				PreviousStock:  decimal.Zero,
				NewStock:       input.InitialQuantity,
				Reason:         "alta de lote",
				CreatedAt:      now,
				CreatedBy:      input.UserID,
			}
			return movRepo.Create(mov)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lot, nil
}

// ApplyMovement bloquea la fila del lote (SELECT FOR UPDATE), calcula el delta
// según el tipo, rechaza resultados negativos y persiste movimiento + nueva
// cantidad del lote en una sola transacción.
func (uc *StockUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	switch input.Type {
	case entity.MovementTypeINBOUND, entity.MovementTypeOUTBOUND, entity.MovementTypeTRANSFER:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.LotID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var mov *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		movRepo repository.MovementRepository,
	) error {
		lot, err := lotRepo.GetForUpdate(input.OrganizationID, input.LotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}

		previous := lot.Quantity
		delta := ledger.MovementDelta(input.Type, previous, input.Quantity)
		newStock := previous.Add(delta)
		if newStock.LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}

		mov = &entity.StockMovement{
			ID:             uuid.New().String(),
			OrganizationID: input.OrganizationID,
			LotID:          lot.ID,
			ProductID:      lot.ProductID,
			Type:           input.Type,
			Quantity:       input.Quantity,
			PreviousStock:  previous,
			NewStock:       newStock,
			Reason:         input.Reason,
			CreatedAt:      now,
			CreatedBy:      input.UserID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		lot.Quantity = newStock
		lot.UpdatedAt = now
		return lotRepo.UpdateQuantity(lot)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// GetLot devuelve un lote por ID (nil si no existe o no es de la organización).
func (uc *StockUseCase) GetLot(ctx context.Context, organizationID, lotID string) (*entity.ProductLot, error) {
	return uc.lotRepo.GetByID(organizationID, lotID)
}

// ListLots lista los lotes de un producto.
func (uc *StockUseCase) ListLots(ctx context.Context, organizationID, productID string, limit, offset int) ([]*entity.ProductLot, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.lotRepo.ListByProduct(organizationID, productID, limit, offset)
}

// ListMovements lista los movimientos de un lote, más reciente primero.
func (uc *StockUseCase) ListMovements(ctx context.Context, organizationID, lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	if lotID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByLot(organizationID, lotID, limit, offset)
}

// ListOrganizationMovements lista los movimientos de toda la organización
// (auditoría cruzada de lotes), más reciente primero.
func (uc *StockUseCase) ListOrganizationMovements(ctx context.Context, organizationID string, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByOrganization(organizationID, limit, offset)
}
