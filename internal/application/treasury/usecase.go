package treasury

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

// TreasuryUseCase administra cuentas por cobrar y por pagar: alta de cuentas,
// registro de pagos y edición de pagos con reversa completa del monto anterior.
// Cada mutación pago+cuenta corre dentro de una transacción con la fila de la
// cuenta bloqueada (SELECT FOR UPDATE).
type TreasuryUseCase struct {
	txRunner           TxRunner
	receivableAccounts repository.AccountRepository
	payableAccounts    repository.AccountRepository
	receivablePayments repository.PaymentRepository
	payablePayments    repository.PaymentRepository
	customerRepo       repository.CustomerRepository
	supplierRepo       repository.SupplierRepository
}

// NewTreasuryUseCase construye el caso de uso. Los repos de cuentas/pagos se
// usan solo para lecturas; las escrituras pasan por el TxRunner.
func NewTreasuryUseCase(
	txRunner TxRunner,
	receivableAccounts, payableAccounts repository.AccountRepository,
	receivablePayments, payablePayments repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
) *TreasuryUseCase {
	return &TreasuryUseCase{
		txRunner:           txRunner,
		receivableAccounts: receivableAccounts,
		payableAccounts:    payableAccounts,
		receivablePayments: receivablePayments,
		payablePayments:    payablePayments,
		customerRepo:       customerRepo,
		supplierRepo:       supplierRepo,
	}
}

// CreateAccountInput entrada para crear una cuenta.
type CreateAccountInput struct {
	OrganizationID string
	Kind           string // receivable | payable
	CounterpartyID string
	Description    string
	TotalAmount    decimal.Decimal
	DueDate        *time.Time
}

// RegisterPaymentInput entrada para registrar un pago.
type RegisterPaymentInput struct {
	OrganizationID string
	UserID         string
	Kind           string
	AccountID      string
	Amount         decimal.Decimal
	Method         string
	Date           *time.Time
	Reference      string
	Notes          string
}

// UpdatePaymentInput entrada para editar un pago existente. Solo los campos
// no nulos se modifican.
type UpdatePaymentInput struct {
	OrganizationID string
	Kind           string
	PaymentID      string
	Amount         *decimal.Decimal
	Method         *string
	Date           *time.Time
	Reference      *string
	Notes          *string
}

// CreateAccount crea una cuenta con pending = total y estado PENDING.
func (uc *TreasuryUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.Account, error) {
	if input.CounterpartyID == "" || !input.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	switch input.Kind {
	case entity.AccountKindReceivable:
		customer, err := uc.customerRepo.GetByID(input.OrganizationID, input.CounterpartyID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	case entity.AccountKindPayable:
		supplier, err := uc.supplierRepo.GetByID(input.OrganizationID, input.CounterpartyID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	account := &entity.Account{
		ID:             uuid.New().String(),
		OrganizationID: input.OrganizationID,
		Kind:           input.Kind,
		CounterpartyID: input.CounterpartyID,
		Description:    input.Description,
		TotalAmount:    input.TotalAmount,
		PendingBalance: input.TotalAmount,
		DueDate:        input.DueDate,
		Status:         entity.AccountStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.accountsFor(input.Kind).Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// RegisterPayment valida monto > 0 y monto <= pendiente, inserta el pago,
// descuenta el saldo y recalcula el estado, todo dentro de una transacción.
func (uc *TreasuryUseCase) RegisterPayment(ctx context.Context, input RegisterPaymentInput) (*entity.Payment, error) {
	if input.AccountID == "" || !input.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(input.Method) {
		return nil, domain.ErrInvalidInput
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	now := time.Now()
	var payment *entity.Payment

	err := uc.runFor(ctx, input.Kind, func(
		accounts repository.AccountRepository,
		payments repository.PaymentRepository,
	) error {
		account, err := accounts.GetForUpdate(input.OrganizationID, input.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}
		if input.Amount.GreaterThan(account.PendingBalance) {
			return domain.ErrAmountExceedsPending
		}

		newPending := account.PendingBalance.Sub(input.Amount)
		if newPending.LessThan(decimal.Zero) {
			newPending = decimal.Zero
		}
		status := ledger.StatusLabel(input.Kind, ledger.DeriveStatus(account.TotalAmount, newPending))

		payment = &entity.Payment{
			ID:             uuid.New().String(),
			OrganizationID: input.OrganizationID,
			AccountID:      account.ID,
			Amount:         input.Amount,
			Method:         input.Method,
			Date:           date,
			Reference:      input.Reference,
			Notes:          input.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
			CreatedBy:      input.UserID,
		}
		if err := payments.Create(payment); err != nil {
			return err
		}
		return accounts.UpdateBalance(input.OrganizationID, account.ID, newPending, status)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment edita un pago revirtiendo primero el efecto del monto anterior:
// maxAllowed = pendiente + monto_viejo, y el nuevo pendiente es
// max(0, pendiente + monto_viejo - monto_nuevo). Nunca se aplica el delta a secas,
// el camino reversa-y-reaplica es el único correcto ante ediciones concurrentes.
func (uc *TreasuryUseCase) UpdatePayment(ctx context.Context, input UpdatePaymentInput) (*entity.Payment, error) {
	if input.PaymentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Method != nil && !entity.ValidPaymentMethod(*input.Method) {
		return nil, domain.ErrInvalidInput
	}
	if input.Amount != nil && !input.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Payment

	err := uc.runFor(ctx, input.Kind, func(
		accounts repository.AccountRepository,
		payments repository.PaymentRepository,
	) error {
		payment, err := payments.GetByID(input.OrganizationID, input.PaymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.ErrNotFound
		}

		account, err := accounts.GetForUpdate(input.OrganizationID, payment.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrNotFound
		}

		newAmount := payment.Amount
		if input.Amount != nil {
			newAmount = *input.Amount
		}

		// Reversa completa: el tope es el pendiente con el pago viejo deshecho.
		maxAllowed := account.PendingBalance.Add(payment.Amount)
		if newAmount.GreaterThan(maxAllowed) {
			return domain.ErrAmountExceedsPending
		}

		newPending := account.PendingBalance.Add(payment.Amount).Sub(newAmount)
		if newPending.LessThan(decimal.Zero) {
			newPending = decimal.Zero
		}
		status := ledger.StatusLabel(input.Kind, ledger.DeriveStatus(account.TotalAmount, newPending))

		payment.Amount = newAmount
		if input.Method != nil {
			payment.Method = *input.Method
		}
		if input.Date != nil {
			payment.Date = *input.Date
		}
		if input.Reference != nil {
			payment.Reference = *input.Reference
		}
		if input.Notes != nil {
			payment.Notes = *input.Notes
		}
		payment.UpdatedAt = now

		if err := payments.Update(payment); err != nil {
			return err
		}
		if err := accounts.UpdateBalance(input.OrganizationID, account.ID, newPending, status); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetAccount devuelve una cuenta (nil si no existe o no es de la organización).
func (uc *TreasuryUseCase) GetAccount(ctx context.Context, organizationID, kind, id string) (*entity.Account, error) {
	if !validKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	return uc.accountsFor(kind).GetByID(organizationID, id)
}

// ListAccounts lista cuentas por organización, con filtro opcional de estado.
func (uc *TreasuryUseCase) ListAccounts(ctx context.Context, organizationID, kind, status string, limit, offset int) ([]*entity.Account, error) {
	if !validKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	return uc.accountsFor(kind).ListByOrganization(organizationID, status, limit, offset)
}

// ListPayments lista los pagos de una cuenta.
func (uc *TreasuryUseCase) ListPayments(ctx context.Context, organizationID, kind, accountID string, limit, offset int) ([]*entity.Payment, error) {
	if !validKind(kind) || accountID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.paymentsFor(kind).ListByAccount(organizationID, accountID, limit, offset)
}

func (uc *TreasuryUseCase) accountsFor(kind string) repository.AccountRepository {
	if kind == entity.AccountKindPayable {
		return uc.payableAccounts
	}
	return uc.receivableAccounts
}

func (uc *TreasuryUseCase) paymentsFor(kind string) repository.PaymentRepository {
	if kind == entity.AccountKindPayable {
		return uc.payablePayments
	}
	return uc.receivablePayments
}

func (uc *TreasuryUseCase) runFor(ctx context.Context, kind string, fn func(
	accounts repository.AccountRepository,
	payments repository.PaymentRepository,
) error) error {
	switch kind {
	case entity.AccountKindReceivable:
		return uc.txRunner.RunReceivable(ctx, fn)
	case entity.AccountKindPayable:
		return uc.txRunner.RunPayable(ctx, fn)
	}
	return domain.ErrInvalidInput
}

func validKind(kind string) bool {
	return kind == entity.AccountKindReceivable || kind == entity.AccountKindPayable
}
