package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribuidora-api/internal/application/dto"
	"github.com/jhoicas/Distribuidora-api/internal/application/treasury"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
)

// TreasuryHandler maneja cuentas por cobrar, cuentas por pagar y sus pagos
// (protegido). El mismo handler sirve ambos tipos; el router fija el kind.
type TreasuryHandler struct {
	uc *treasury.TreasuryUseCase
}

// NewTreasuryHandler construye el handler.
func NewTreasuryHandler(uc *treasury.TreasuryUseCase) *TreasuryHandler {
	return &TreasuryHandler{uc: uc}
}

// CreateAccount devuelve el handler de alta de cuenta para el kind dado.
//
// @Summary      Crear cuenta por cobrar o por pagar
// @Tags         treasury
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "counterparty_id, total_amount"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receivables [post]
func (h *TreasuryHandler) CreateAccount(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		if organizationID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
		}
		var in dto.CreateAccountRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		account, err := h.uc.CreateAccount(c.Context(), treasury.CreateAccountInput{
			OrganizationID: organizationID,
			Kind:           kind,
			CounterpartyID: in.CounterpartyID,
			Description:    in.Description,
			TotalAmount:    in.TotalAmount,
			DueDate:        in.DueDate,
		})
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "counterparty_id y total_amount > 0 son requeridos"})
			}
			if err == domain.ErrNotFound {
				msg := "cliente no encontrado"
				if kind == entity.AccountKindPayable {
					msg = "proveedor no encontrado"
				}
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(toAccountResponse(account))
	}
}

// GetAccount devuelve el handler de consulta de cuenta para el kind dado.
//
// @Summary      Obtener cuenta por ID
// @Tags         treasury
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receivables/{id} [get]
func (h *TreasuryHandler) GetAccount(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		}
		account, err := h.uc.GetAccount(c.Context(), organizationID, kind, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if account == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.JSON(toAccountResponse(account))
	}
}

// ListAccounts devuelve el handler de listado de cuentas para el kind dado.
//
// @Summary      Listar cuentas
// @Tags         treasury
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (PENDING, PARTIAL, PARTIALLY_PAID, PAID)"
// @Success      200     {object}  dto.AccountListResponse
// @Router       /api/receivables [get]
func (h *TreasuryHandler) ListAccounts(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		limit, offset := pageParams(c)
		accounts, err := h.uc.ListAccounts(c.Context(), organizationID, kind, c.Query("status"), limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out := dto.AccountListResponse{
			Items: make([]dto.AccountResponse, 0, len(accounts)),
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		}
		for _, account := range accounts {
			out.Items = append(out.Items, toAccountResponse(account))
		}
		return c.JSON(out)
	}
}

// RegisterPayment devuelve el handler de registro de pago para el kind dado.
//
// @Summary      Registrar pago sobre una cuenta
// @Tags         treasury
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.RegisterPaymentRequest  true  "amount, method"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/receivables/{id}/payments [post]
func (h *TreasuryHandler) RegisterPayment(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		accountID := c.Params("id")
		if accountID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de la cuenta es requerido"})
		}
		var in dto.RegisterPaymentRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		payment, err := h.uc.RegisterPayment(c.Context(), treasury.RegisterPaymentInput{
			OrganizationID: organizationID,
			UserID:         GetUserID(c),
			Kind:           kind,
			AccountID:      accountID,
			Amount:         in.Amount,
			Method:         in.Method,
			Date:           in.Date,
			Reference:      in.Reference,
			Notes:          in.Notes,
		})
		if err != nil {
			return paymentError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(payment))
	}
}

// ListPayments devuelve el handler de listado de pagos para el kind dado.
//
// @Summary      Listar pagos de una cuenta
// @Tags         treasury
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.PaymentListResponse
// @Router       /api/receivables/{id}/payments [get]
func (h *TreasuryHandler) ListPayments(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		organizationID := GetOrganizationID(c)
		accountID := c.Params("id")
		if accountID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de la cuenta es requerido"})
		}
		limit, offset := pageParams(c)
		payments, err := h.uc.ListPayments(c.Context(), organizationID, kind, accountID, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out := dto.PaymentListResponse{
			Items: make([]dto.PaymentResponse, 0, len(payments)),
			Page:  dto.PageResponse{Limit: limit, Offset: offset},
		}
		for _, payment := range payments {
			out.Items = append(out.Items, toPaymentResponse(payment))
		}
		return c.JSON(out)
	}
}

// UpdatePayment godoc
// @Summary      Editar un pago existente (reversa y reaplica el monto)
// @Tags         treasury
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "kind y campos a editar"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *TreasuryHandler) UpdatePayment(c *fiber.Ctx) error {
	organizationID := GetOrganizationID(c)
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id del pago es requerido"})
	}
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Kind != entity.AccountKindReceivable && in.Kind != entity.AccountKindPayable {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser receivable o payable"})
	}
	payment, err := h.uc.UpdatePayment(c.Context(), treasury.UpdatePaymentInput{
		OrganizationID: organizationID,
		Kind:           in.Kind,
		PaymentID:      id,
		Amount:         in.Amount,
		Method:         in.Method,
		Date:           in.Date,
		Reference:      in.Reference,
		Notes:          in.Notes,
	})
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(toPaymentResponse(payment))
}

// paymentError mapea errores de dominio de pagos a HTTP.
func paymentError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "monto > 0 y medio de pago válido son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta o pago no encontrado"})
	case domain.ErrAmountExceedsPending:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "AMOUNT_EXCEEDS_PENDING", Message: "el monto excede el saldo pendiente de la cuenta"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:             a.ID,
		Kind:           a.Kind,
		CounterpartyID: a.CounterpartyID,
		Description:    a.Description,
		TotalAmount:    a.TotalAmount,
		PendingBalance: a.PendingBalance,
		DueDate:        a.DueDate,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID,
		AccountID: p.AccountID,
		Amount:    p.Amount,
		Method:    p.Method,
		Date:      p.Date,
		Reference: p.Reference,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}
