package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/pricing"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// PriceListHandler maneja importación y consulta de listas de precios (protegido).
type PriceListHandler struct {
	uc *pricing.PriceListUseCase
}

// NewPriceListHandler construye el handler.
func NewPriceListHandler(uc *pricing.PriceListUseCase) *PriceListHandler {
	return &PriceListHandler{uc: uc}
}

// Import godoc
// @Summary      Importar lista de precios (JSON)
// @Tags         price-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportPriceListRequest  true  "supplier_id, name, items"
// @Success      201   {object}  dto.ImportPriceListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/price-lists/import [post]
func (h *PriceListHandler) Import(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	var in dto.ImportPriceListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.runImport(c, organizationID, in)
}

// ImportXLSX godoc
// @Summary      Importar lista de precios desde archivo XLSX (multipart)
// @Tags         price-lists
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Archivo .xlsx (columna A: SKU, columna B: precio)"
// @Param        supplier_id  formData  string  true   "ID del proveedor"
// @Param        name         formData  string  true   "Nombre de la lista"
// @Param        update_costs formData  bool    false  "Actualizar costo de productos"
// @Success      201  {object}  dto.ImportPriceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/price-lists/import/xlsx [post]
func (h *PriceListHandler) ImportXLSX(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	if organizationID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo xlsx requerido en el campo file"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	items, unparseable, err := pricing.ParseXLSX(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo xlsx inválido"})
	}

	in := dto.ImportPriceListRequest{
		SupplierID:  c.FormValue("supplier_id"),
		Name:        c.FormValue("name"),
		UpdateCosts: c.FormValue("update_costs") == "true",
		Items:       items,
	}
	if raw := c.FormValue("valid_from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			in.ValidFrom = &t
		}
	}
	if raw := c.FormValue("valid_until"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			in.ValidUntil = &t
		}
	}
	return h.runImport(c, organizationID, in, unparseable...)
}

// runImport ejecuta el caso de uso y arma la respuesta; extraMissing son SKUs
// con precio no parseable del XLSX, se suman al reporte de no resueltos.
func (h *PriceListHandler) runImport(c *fiber.Ctx, organizationID string, in dto.ImportPriceListRequest, extraMissing ...string) error {
	result, err := h.uc.Import(c.Context(), pricing.ImportInput{
		OrganizationID: organizationID,
		SupplierID:     in.SupplierID,
		Name:           in.Name,
		ValidFrom:      in.ValidFrom,
		ValidUntil:     in.ValidUntil,
		UpdateCosts:    in.UpdateCosts,
		Items:          in.Items,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "supplier_id y name son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		case domain.ErrEmptyImport:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_IMPORT", Message: "ningún SKU de la lista se pudo resolver contra el catálogo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	missing := append(result.MissingSKUs, extraMissing...)
	return c.Status(fiber.StatusCreated).JSON(dto.ImportPriceListResponse{
		PriceListID:   result.PriceListID,
		ImportedCount: result.ImportedCount,
		MissingSKUs:   missing,
	})
}

// GetByID godoc
// @Summary      Obtener lista de precios con sus items
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la lista"
// @Success      200  {object}  dto.PriceListDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/price-lists/{id} [get]
func (h *PriceListHandler) GetByID(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	list, items, err := h.uc.Get(c.Context(), organizationID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if list == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista de precios no encontrada"})
	}
	out := dto.PriceListDetailResponse{
		PriceListResponse: toPriceListResponse(list),
		Items:             make([]dto.PriceListItemResponse, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.PriceListItemResponse{
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Price:     item.Price,
		})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar listas de precios
// @Tags         price-lists
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PriceListListResponse
// @Router       /api/price-lists [get]
func (h *PriceListHandler) List(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	limit, offset := pageParams(c)
	lists, err := h.uc.List(c.Context(), organizationID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.PriceListListResponse{
		Items: make([]dto.PriceListResponse, 0, len(lists)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, list := range lists {
		out.Items = append(out.Items, toPriceListResponse(list))
	}
	return c.JSON(out)
}

func toPriceListResponse(list *entity.PriceList) dto.PriceListResponse {
	return dto.PriceListResponse{
		ID:           list.ID,
		SupplierID:   list.SupplierID,
		SupplierName: list.SupplierName,
		Name:         list.Name,
		ValidFrom:    list.ValidFrom,
		ValidUntil:   list.ValidUntil,
		Status:       list.Status(time.Now()),
		CreatedAt:    list.CreatedAt,
	}
}
