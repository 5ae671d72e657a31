package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

const (
	testOrgID     = "org-1"
	testUserID    = "user-1"
	testProductID = "prod-1"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeLotRepo struct {
	lots map[string]*entity.ProductLot
}

func newFakeLotRepo() *fakeLotRepo {
	return &fakeLotRepo{lots: map[string]*entity.ProductLot{}}
}

func (r *fakeLotRepo) Create(lot *entity.ProductLot) error {
	cp := *lot
	r.lots[lot.ID] = &cp
	return nil
}

func (r *fakeLotRepo) GetByID(organizationID, id string) (*entity.ProductLot, error) {
	lot, ok := r.lots[id]
	if !ok || lot.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *lot
	return &cp, nil
}

func (r *fakeLotRepo) GetForUpdate(organizationID, id string) (*entity.ProductLot, error) {
	return r.GetByID(organizationID, id)
}

func (r *fakeLotRepo) UpdateQuantity(lot *entity.ProductLot) error {
	stored, ok := r.lots[lot.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Quantity = lot.Quantity
	stored.UpdatedAt = lot.UpdatedAt
	return nil
}

func (r *fakeLotRepo) ListByProduct(organizationID, productID string, limit, offset int) ([]*entity.ProductLot, error) {
	var out []*entity.ProductLot
	for _, lot := range r.lots {
		if lot.OrganizationID == organizationID && lot.ProductID == productID {
			cp := *lot
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	cp := *mov
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByLot(organizationID, lotID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, mov := range r.movements {
		if mov.OrganizationID == organizationID && mov.LotID == lotID {
			out = append(out, mov)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(organizationID, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.OrganizationID != organizationID {
		return nil, nil
	}
	return p, nil
}
func (r *fakeProductRepo) GetBySKU(organizationID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.OrganizationID == organizationID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (r *fakeProductRepo) UpdateCost(organizationID, productID string, cost decimal.Decimal) error {
	return nil
}
func (r *fakeProductRepo) SetActive(organizationID, productID string, active bool) error { return nil }
func (r *fakeProductRepo) ListByOrganization(organizationID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción real.
type fakeTxRunner struct {
	lotRepo *fakeLotRepo
	movRepo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	lotRepo repository.LotRepository,
	movRepo repository.MovementRepository,
) error) error {
	return fn(r.lotRepo, r.movRepo)
}

func buildStockUseCase() (*inventory.StockUseCase, *fakeLotRepo, *fakeMovementRepo) {
	lotRepo := newFakeLotRepo()
	movRepo := &fakeMovementRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {
			ID:             testProductID,
			OrganizationID: testOrgID,
			SKU:            "SKU-001",
			Name:           "Harina 000 x 1kg",
			Unit:           entity.UnitUN,
			IsActive:       true,
		},
	}}
	txRunner := &fakeTxRunner{lotRepo: lotRepo, movRepo: movRepo}
	uc := inventory.NewStockUseCase(txRunner, productRepo, lotRepo, movRepo)
	return uc, lotRepo, movRepo
}

func createLot(t *testing.T, uc *inventory.StockUseCase, initial string) *entity.ProductLot {
	t.Helper()
	lot, err := uc.CreateLot(context.Background(), inventory.CreateLotInput{
		OrganizationID:  testOrgID,
		UserID:          testUserID,
		ProductID:       testProductID,
		LotNumber:       "L-2026-001",
		InitialQuantity: dec(initial),
	})
	require.NoError(t, err)
	require.NotNil(t, lot)
	return lot
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateLot
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateLot_ConCantidadInicialRegistraInbound(t *testing.T) {
	uc, _, movRepo := buildStockUseCase()

	lot := createLot(t, uc, "50")

	assert.True(t, lot.Quantity.Equal(dec("50")))
	require.Len(t, movRepo.movements, 1, "la cantidad inicial debe generar exactamente un movimiento")

	mov := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeINBOUND, mov.Type)
	assert.Equal(t, lot.ID, mov.LotID)
	assert.True(t, mov.PreviousStock.IsZero(), "la foto previa del alta debe ser 0")
	assert.True(t, mov.NewStock.Equal(dec("50")), "la foto nueva debe ser la cantidad inicial")
	assert.Equal(t, testUserID, mov.CreatedBy)
}

func TestCreateLot_CantidadCeroNoGeneraMovimiento(t *testing.T) {
	uc, _, movRepo := buildStockUseCase()

	lot := createLot(t, uc, "0")

	assert.True(t, lot.Quantity.IsZero())
	assert.Empty(t, movRepo.movements, "un lote vacío no debe generar movimientos")
}

func TestCreateLot_CantidadNegativaRechazada(t *testing.T) {
	uc, _, _ := buildStockUseCase()

	_, err := uc.CreateLot(context.Background(), inventory.CreateLotInput{
		OrganizationID:  testOrgID,
		ProductID:       testProductID,
		LotNumber:       "L-NEG",
		InitialQuantity: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateLot_ProductoInexistenteRechazado(t *testing.T) {
	uc, _, _ := buildStockUseCase()

	_, err := uc.CreateLot(context.Background(), inventory.CreateLotInput{
		OrganizationID:  testOrgID,
		ProductID:       "prod-fantasma",
		LotNumber:       "L-X",
		InitialQuantity: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement
// ──────────────────────────────────────────────────────────────────────────────

// Escenario base: lote con 50, salida de 20 deja 30 con fotos (50, 30).
func TestApplyMovement_OutboundDescuentaYFotografia(t *testing.T) {
	uc, lotRepo, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	mov, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		UserID:         testUserID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeOUTBOUND,
		Quantity:       dec("20"),
		Reason:         "venta mostrador",
	})
	require.NoError(t, err)

	assert.True(t, mov.PreviousStock.Equal(dec("50")))
	assert.True(t, mov.NewStock.Equal(dec("30")))

	stored, err := lotRepo.GetByID(testOrgID, lot.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(dec("30")), "la cantidad del lote debe quedar en 30")
}

// Una salida mayor al disponible se rechaza y el lote no cambia.
func TestApplyMovement_OutboundMayorAlStockRechazado(t *testing.T) {
	uc, lotRepo, movRepo := buildStockUseCase()
	lot := createLot(t, uc, "50")

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeOUTBOUND,
		Quantity:       dec("40"),
	})
	require.NoError(t, err)

	_, err = uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeOUTBOUND,
		Quantity:       dec("40"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, _ := lotRepo.GetByID(testOrgID, lot.ID)
	assert.True(t, stored.Quantity.Equal(dec("10")), "el rechazo no debe alterar la cantidad")
	assert.Len(t, movRepo.movements, 2, "el movimiento rechazado no debe persistirse (alta + primera salida)")
}

func TestApplyMovement_AdjustmentEsValorAbsoluto(t *testing.T) {
	uc, lotRepo, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	mov, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeADJUSTMENT,
		Quantity:       dec("35"),
		Reason:         "conteo físico",
	})
	require.NoError(t, err)

	assert.True(t, mov.PreviousStock.Equal(dec("50")))
	assert.True(t, mov.NewStock.Equal(dec("35")), "ADJUSTMENT lleva el lote al valor indicado")

	stored, _ := lotRepo.GetByID(testOrgID, lot.ID)
	assert.True(t, stored.Quantity.Equal(dec("35")))
}

func TestApplyMovement_AdjustmentACeroVaciaElLote(t *testing.T) {
	uc, lotRepo, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeADJUSTMENT,
		Quantity:       dec("0"),
	})
	require.NoError(t, err)

	stored, _ := lotRepo.GetByID(testOrgID, lot.ID)
	assert.True(t, stored.Quantity.IsZero())
}

func TestApplyMovement_TransferDescuentaComoOutbound(t *testing.T) {
	uc, lotRepo, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           entity.MovementTypeTRANSFER,
		Quantity:       dec("50"),
	})
	require.NoError(t, err)

	stored, _ := lotRepo.GetByID(testOrgID, lot.ID)
	assert.True(t, stored.Quantity.IsZero(), "TRANSFER del total debe dejar el lote en cero")
}

func TestApplyMovement_CantidadNoPositivaRechazada(t *testing.T) {
	uc, _, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	for _, q := range []string{"0", "-5"} {
		_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
			OrganizationID: testOrgID,
			LotID:          lot.ID,
			Type:           entity.MovementTypeOUTBOUND,
			Quantity:       dec(q),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %s debe rechazarse", q)
	}
}

func TestApplyMovement_TipoInvalidoRechazado(t *testing.T) {
	uc, _, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: testOrgID,
		LotID:          lot.ID,
		Type:           "MERMA",
		Quantity:       dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_LoteDeOtraOrganizacionNoVisible(t *testing.T) {
	uc, _, _ := buildStockUseCase()
	lot := createLot(t, uc, "50")

	_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
		OrganizationID: "org-ajena",
		LotID:          lot.ID,
		Type:           entity.MovementTypeOUTBOUND,
		Quantity:       dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un lote de otra organización debe ser invisible")
}

// La suma de movimientos reproduce la cantidad final del lote.
func TestApplyMovement_SumaDeMovimientosIgualaCantidad(t *testing.T) {
	uc, lotRepo, movRepo := buildStockUseCase()
	lot := createLot(t, uc, "100")

	steps := []struct {
		typ string
		qty string
	}{
		{entity.MovementTypeOUTBOUND, "30"},
		{entity.MovementTypeINBOUND, "15"},
		{entity.MovementTypeADJUSTMENT, "60"},
		{entity.MovementTypeTRANSFER, "10"},
	}
	for _, s := range steps {
		_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
			OrganizationID: testOrgID,
			LotID:          lot.ID,
			Type:           s.typ,
			Quantity:       dec(s.qty),
		})
		require.NoError(t, err)
	}

	total := decimal.Zero
	for _, mov := range movRepo.movements {
		total = total.Add(mov.NewStock.Sub(mov.PreviousStock))
	}
	stored, _ := lotRepo.GetByID(testOrgID, lot.ID)
	assert.True(t, total.Equal(stored.Quantity),
		"la suma de deltas (%s) debe igualar la cantidad del lote (%s)", total, stored.Quantity)
	assert.True(t, stored.Quantity.Equal(dec("50")))
}

// Las fotos de movimientos consecutivos encadenan: NewStock de uno es
// PreviousStock del siguiente.
func TestApplyMovement_FotosEncadenadas(t *testing.T) {
	uc, _, movRepo := buildStockUseCase()
	lot := createLot(t, uc, "100")

	for _, qty := range []string{"10", "20", "30"} {
		_, err := uc.ApplyMovement(context.Background(), inventory.MovementInput{
			OrganizationID: testOrgID,
			LotID:          lot.ID,
			Type:           entity.MovementTypeOUTBOUND,
			Quantity:       dec(qty),
		})
		require.NoError(t, err)
	}

	require.Len(t, movRepo.movements, 4)
	for i := 1; i < len(movRepo.movements); i++ {
		prev, cur := movRepo.movements[i-1], movRepo.movements[i]
		assert.True(t, prev.NewStock.Equal(cur.PreviousStock),
			"movimiento %d: fotos desencadenadas", i)
	}
}

func TestListLots_RequiereProducto(t *testing.T) {
	uc, _, _ := buildStockUseCase()
	_, err := uc.ListLots(context.Background(), testOrgID, "", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetLot_InexistenteDevuelveNil(t *testing.T) {
	uc, _, _ := buildStockUseCase()
	lot, err := uc.GetLot(context.Background(), testOrgID, "lote-fantasma")
	require.NoError(t, err)
	assert.Nil(t, lot)
}
