package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/Distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/ledger"
)

// InventoryHandler maneja lotes, movimientos y el resumen de stock (protegido).
type InventoryHandler struct {
	stockUC   *inventory.StockUseCase
	summaryUC *usecase.StockSummaryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockUC *inventory.StockUseCase, summaryUC *usecase.StockSummaryUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, summaryUC: summaryUC}
}

// CreateLot godoc
// @Summary      Crear lote de producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "product_id, lot_number, initial_quantity"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/lots [post]
func (h *InventoryHandler) CreateLot(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lot, err := h.stockUC.CreateLot(c.Context(), inventory.CreateLotInput{
		OrganizationID:  organizationID,
		UserID:          GetUserID(c),
		ProductID:       in.ProductID,
		LotNumber:       in.LotNumber,
		ExpirationDate:  in.ExpirationDate,
		InitialQuantity: in.InitialQuantity,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, lot_number y cantidad inicial >= 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "lot_number ya existe para este producto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toLotResponse(lot))
}

// GetLot godoc
// @Summary      Obtener lote por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/lots/{id} [get]
func (h *InventoryHandler) GetLot(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	lot, err := h.stockUC.GetLot(c.Context(), organizationID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if lot == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(toLotResponse(lot))
}

// ListLots godoc
// @Summary      Listar lotes de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "ID del producto"
// @Success      200  {object}  dto.LotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/lots [get]
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	limit, offset := pageParams(c)
	lots, err := h.stockUC.ListLots(c.Context(), organizationID, productID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.LotListResponse{
		Items: make([]dto.LotResponse, 0, len(lots)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, lot := range lots {
		out.Items = append(out.Items, toLotResponse(lot))
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock sobre un lote
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "lot_id, type, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.stockUC.ApplyMovement(c.Context(), inventory.MovementInput{
		OrganizationID: organizationID,
		UserID:         GetUserID(c),
		LotID:          in.LotID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		Reason:         in.Reason,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o cantidad inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en el lote"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Listar movimientos de un lote
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/lots/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	lotID := c.Params("id")
	if lotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del lote es requerido"})
	}
	limit, offset := pageParams(c)
	movs, err := h.stockUC.ListMovements(c.Context(), organizationID, lotID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(movs)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, mov := range movs {
		out.Items = append(out.Items, toMovementResponse(mov))
	}
	return c.JSON(out)
}

// ListOrganizationMovements godoc
// @Summary      Listar movimientos de toda la organización
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListOrganizationMovements(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	limit, offset := pageParams(c)
	movs, err := h.stockUC.ListOrganizationMovements(c.Context(), organizationID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(movs)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, mov := range movs {
		out.Items = append(out.Items, toMovementResponse(mov))
	}
	return c.JSON(out)
}

// StockSummary godoc
// @Summary      Resumen de stock por producto (suma sobre lotes)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Busca en SKU y nombre"
// @Param        brand        query  string  false  "Marca exacta"
// @Param        supplier_id  query  string  false  "ID del proveedor"
// @Param        category_id  query  string  false  "ID de la categoría"
// @Param        is_active    query  bool    false  "Solo activos / inactivos"
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) StockSummary(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	filter := entity.StockSummaryFilter{
		Query:      c.Query("q"),
		Brand:      c.Query("brand"),
		SupplierID: c.Query("supplier_id"),
		CategoryID: c.Query("category_id"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active := raw == "true" || raw == "1"
		filter.IsActive = &active
	}
	out, err := h.summaryUC.Summarize(organizationID, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func toLotResponse(lot *entity.ProductLot) dto.LotResponse {
	return dto.LotResponse{
		ID:             lot.ID,
		ProductID:      lot.ProductID,
		LotNumber:      lot.LotNumber,
		ExpirationDate: lot.ExpirationDate,
		Quantity:       lot.Quantity,
		Status:         ledger.LotStatus(lot.Quantity, lot.ExpirationDate, time.Now()),
		CreatedAt:      lot.CreatedAt,
		UpdatedAt:      lot.UpdatedAt,
	}
}

func toMovementResponse(mov *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            mov.ID,
		LotID:         mov.LotID,
		ProductID:     mov.ProductID,
		Type:          mov.Type,
		Quantity:      mov.Quantity,
		PreviousStock: mov.PreviousStock,
		NewStock:      mov.NewStock,
		Reason:        mov.Reason,
		CreatedAt:     mov.CreatedAt,
		CreatedBy:     mov.CreatedBy,
	}
}
