package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/pricing"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Distribuidora-api/internal/interfaces/http"
)

const (
	testSupplierID   = "00000000-0000-0000-0000-000000000010"
	testSupplierName = "Distribuidora El Trigal"
	testListID       = "00000000-0000-0000-0000-000000000020"
)

// fakePriceListStore guarda listas en memoria y resuelve el nombre del
// proveedor en lectura, como hace el JOIN del adaptador de PostgreSQL.
type fakePriceListStore struct {
	lists         map[string]*entity.PriceList
	items         map[string][]*entity.PriceListItem
	supplierNames map[string]string
}

func newFakePriceListStore() *fakePriceListStore {
	return &fakePriceListStore{
		lists:         map[string]*entity.PriceList{},
		items:         map[string][]*entity.PriceListItem{},
		supplierNames: map[string]string{testSupplierID: testSupplierName},
	}
}

func (f *fakePriceListStore) Create(list *entity.PriceList) error {
	cp := *list
	f.lists[list.ID] = &cp
	return nil
}

func (f *fakePriceListStore) GetByID(organizationID, id string) (*entity.PriceList, error) {
	list, ok := f.lists[id]
	if !ok || list.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *list
	cp.SupplierName = f.supplierNames[cp.SupplierID]
	return &cp, nil
}

func (f *fakePriceListStore) ListByOrganization(organizationID string, limit, offset int) ([]*entity.PriceList, error) {
	var out []*entity.PriceList
	for _, list := range f.lists {
		if list.OrganizationID != organizationID {
			continue
		}
		cp := *list
		cp.SupplierName = f.supplierNames[cp.SupplierID]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakePriceListStore) UpsertItem(item *entity.PriceListItem) error {
	cp := *item
	f.items[item.PriceListID] = append(f.items[item.PriceListID], &cp)
	return nil
}

func (f *fakePriceListStore) ListItems(priceListID string) ([]*entity.PriceListItem, error) {
	return f.items[priceListID], nil
}

type fakeCatalog struct{}

func (f *fakeCatalog) Create(*entity.Product) error                        { return nil }
func (f *fakeCatalog) GetByID(string, string) (*entity.Product, error)     { return nil, nil }
func (f *fakeCatalog) GetBySKU(string, string) (*entity.Product, error)    { return nil, nil }
func (f *fakeCatalog) Update(*entity.Product) error                        { return nil }
func (f *fakeCatalog) UpdateCost(string, string, decimal.Decimal) error    { return nil }
func (f *fakeCatalog) SetActive(string, string, bool) error                { return nil }
func (f *fakeCatalog) ListByOrganization(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeSupplierDir struct{}

func (f *fakeSupplierDir) Create(*entity.Supplier) error { return nil }
func (f *fakeSupplierDir) GetByID(organizationID, id string) (*entity.Supplier, error) {
	if id != testSupplierID {
		return nil, nil
	}
	return &entity.Supplier{ID: id, OrganizationID: organizationID, Name: testSupplierName}, nil
}
func (f *fakeSupplierDir) ListByOrganization(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}

type fakePricingTx struct {
	listRepo    repository.PriceListRepository
	productRepo repository.ProductRepository
}

func (f *fakePricingTx) RunPricing(_ context.Context, fn func(
	listRepo repository.PriceListRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.listRepo, f.productRepo)
}

// buildPriceListApp arma una app con el handler de listas de precios y un
// middleware que inyecta la organización, sin pasar por el JWT.
func buildPriceListApp(t *testing.T, store *fakePriceListStore) *fiber.App {
	t.Helper()
	catalog := &fakeCatalog{}
	uc := pricing.NewPriceListUseCase(
		&fakePricingTx{listRepo: store, productRepo: catalog}, store, catalog, &fakeSupplierDir{},
	)
	handler := apphttp.NewPriceListHandler(uc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalOrganizationID, testOrgID)
		return c.Next()
	})
	app.Get("/api/price-lists", handler.List)
	app.Get("/api/price-lists/:id", handler.GetByID)
	return app
}

func seedPriceList(store *fakePriceListStore) {
	now := time.Now()
	store.lists[testListID] = &entity.PriceList{
		ID:             testListID,
		OrganizationID: testOrgID,
		SupplierID:     testSupplierID,
		Name:           "Lista mayorista agosto",
		ValidFrom:      now.Add(-24 * time.Hour),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	store.items[testListID] = []*entity.PriceListItem{
		{ID: "item-1", PriceListID: testListID, ProductID: "prod-a", SKU: "SKU-001", Price: decimal.NewFromFloat(150.50)},
	}
}

func TestPriceListHandler_GetByIDIncluyeProveedor(t *testing.T) {
	store := newFakePriceListStore()
	seedPriceList(store)
	app := buildPriceListApp(t, store)

	req := httptest.NewRequest("GET", "/api/price-lists/"+testListID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.PriceListDetailResponse
	require.NoError(t, json.Unmarshal(body, &out))

	assert.Equal(t, testListID, out.ID)
	assert.Equal(t, testSupplierID, out.SupplierID)
	assert.Equal(t, testSupplierName, out.SupplierName)
	assert.Equal(t, entity.PriceListStatusActive, out.Status)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SKU-001", out.Items[0].SKU)
}

func TestPriceListHandler_ListIncluyeProveedor(t *testing.T) {
	store := newFakePriceListStore()
	seedPriceList(store)
	app := buildPriceListApp(t, store)

	req := httptest.NewRequest("GET", "/api/price-lists", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.PriceListListResponse
	require.NoError(t, json.Unmarshal(body, &out))

	require.Len(t, out.Items, 1)
	assert.Equal(t, testSupplierName, out.Items[0].SupplierName)
}

func TestPriceListHandler_GetByIDNoEncontrada(t *testing.T) {
	store := newFakePriceListStore()
	app := buildPriceListApp(t, store)

	req := httptest.NewRequest("GET", "/api/price-lists/"+testListID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
