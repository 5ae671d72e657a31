package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest body para crear una cuenta por cobrar o por pagar.
// CounterpartyID es el cliente (receivable) o el proveedor (payable).
type CreateAccountRequest struct {
	CounterpartyID string          `json:"counterparty_id" validate:"required,uuid"`
	Description    string          `json:"description"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
}

// RegisterPaymentRequest body para registrar un pago sobre una cuenta.
type RegisterPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" validate:"required,oneof=efectivo transferencia cheque tarjeta_de_credito tarjeta_de_debito"`
	Date      *time.Time      `json:"date,omitempty"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// UpdatePaymentRequest body para editar un pago existente. Kind indica la
// tabla del pago (receivable o payable).
type UpdatePaymentRequest struct {
	Kind      string           `json:"kind" validate:"required,oneof=receivable payable"`
	Amount    *decimal.Decimal `json:"amount"`
	Method    *string          `json:"method" validate:"omitempty,oneof=efectivo transferencia cheque tarjeta_de_credito tarjeta_de_debito"`
	Date      *time.Time       `json:"date,omitempty"`
	Reference *string          `json:"reference"`
	Notes     *string          `json:"notes"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID             string          `json:"id"`
	Kind           string          `json:"kind"`
	CounterpartyID string          `json:"counterparty_id"`
	Description    string          `json:"description,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountListResponse lista paginada de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PaymentListResponse lista de pagos de una cuenta.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
