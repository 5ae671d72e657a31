package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/auth"
	"github.com/jhoicas/Distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/Distribuidora-api/internal/application/pricing"
	"github.com/jhoicas/Distribuidora-api/internal/application/treasury"
	"github.com/jhoicas/Distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	StockUC        *inventory.StockUseCase
	SummaryUC      *usecase.StockSummaryUseCase
	TreasuryUC     *treasury.TreasuryUseCase
	PriceListUC    *pricing.PriceListUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Organizations (público; el alta de organización precede a cualquier login)
	organizations := api.Group("/organizations")
	organizationHandler := NewOrganizationHandler(deps.OrganizationUC)
	organizations.Get("/", organizationHandler.List)
	organizations.Post("/", organizationHandler.Create)
	organizations.Get("/slug/:slug", organizationHandler.ResolveSlug)
	organizations.Get("/:id", organizationHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escrituras de catálogo y stock: admin o deposito. Tesorería: admin o
	// vendedor. Las lecturas quedan abiertas a cualquier usuario autenticado.
	stockWrite := RequireRole(entity.RoleAdmin, entity.RoleDeposito)
	treasuryWrite := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", stockWrite, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", stockWrite, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Deactivate)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", stockWrite, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", stockWrite, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", treasuryWrite, customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Inventory: lotes, movimientos y resumen (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.SummaryUC)
	inv.Post("/lots", stockWrite, inventoryHandler.CreateLot)
	inv.Get("/lots", inventoryHandler.ListLots)
	inv.Get("/lots/:id", inventoryHandler.GetLot)
	inv.Get("/lots/:id/movements", inventoryHandler.ListMovements)
	inv.Post("/movements", stockWrite, inventoryHandler.RegisterMovement)
	inv.Get("/movements", inventoryHandler.ListOrganizationMovements)
	inv.Get("/summary", inventoryHandler.StockSummary)

	// Treasury: cuentas por cobrar y por pagar (protegido)
	treasuryHandler := NewTreasuryHandler(deps.TreasuryUC)
	receivables := protected.Group("/receivables")
	receivables.Post("/", treasuryWrite, treasuryHandler.CreateAccount(entity.AccountKindReceivable))
	receivables.Get("/", treasuryHandler.ListAccounts(entity.AccountKindReceivable))
	receivables.Get("/:id", treasuryHandler.GetAccount(entity.AccountKindReceivable))
	receivables.Post("/:id/payments", treasuryWrite, treasuryHandler.RegisterPayment(entity.AccountKindReceivable))
	receivables.Get("/:id/payments", treasuryHandler.ListPayments(entity.AccountKindReceivable))

	payables := protected.Group("/payables")
	payables.Post("/", treasuryWrite, treasuryHandler.CreateAccount(entity.AccountKindPayable))
	payables.Get("/", treasuryHandler.ListAccounts(entity.AccountKindPayable))
	payables.Get("/:id", treasuryHandler.GetAccount(entity.AccountKindPayable))
	payables.Post("/:id/payments", treasuryWrite, treasuryHandler.RegisterPayment(entity.AccountKindPayable))
	payables.Get("/:id/payments", treasuryHandler.ListPayments(entity.AccountKindPayable))

	protected.Put("/payments/:id", treasuryWrite, treasuryHandler.UpdatePayment)

	// Price lists (protegido)
	priceLists := protected.Group("/price-lists")
	priceListHandler := NewPriceListHandler(deps.PriceListUC)
	priceLists.Post("/import", adminOnly, priceListHandler.Import)
	priceLists.Post("/import/xlsx", adminOnly, priceListHandler.ImportXLSX)
	priceLists.Get("/", priceListHandler.List)
	priceLists.Get("/:id", priceListHandler.GetByID)
}
