package treasury_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribuidora-api/internal/application/treasury"
	"github.com/jhoicas/Distribuidora-api/internal/domain"
	"github.com/jhoicas/Distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/Distribuidora-api/internal/domain/repository"
)

const (
	testOrgID      = "org-1"
	testCustomerID = "cust-1"
	testSupplierID = "supp-1"
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

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*entity.Account{}}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(organizationID, id string) (*entity.Account, error) {
	a, ok := r.accounts[id]
	if !ok || a.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetForUpdate(organizationID, id string) (*entity.Account, error) {
	return r.GetByID(organizationID, id)
}

func (r *fakeAccountRepo) UpdateBalance(organizationID, id string, pending decimal.Decimal, status string) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.PendingBalance = pending
	a.Status = status
	return nil
}

func (r *fakeAccountRepo) ListByOrganization(organizationID, status string, limit, offset int) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.OrganizationID == organizationID && (status == "" || a.Status == status) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(organizationID, id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok || p.OrganizationID != organizationID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(p *entity.Payment) error {
	stored, ok := r.payments[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	*stored = *p
	return nil
}

func (r *fakePaymentRepo) ListByAccount(organizationID, accountID string, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.OrganizationID == organizationID && p.AccountID == accountID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (fakeCustomerRepo) GetByID(organizationID, id string) (*entity.Customer, error) {
	if organizationID == testOrgID && id == testCustomerID {
		return &entity.Customer{ID: id, OrganizationID: organizationID, Name: "Kiosco La Esquina"}, nil
	}
	return nil, nil
}
func (fakeCustomerRepo) ListByOrganization(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeSupplierRepo struct{}

func (fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (fakeSupplierRepo) GetByID(organizationID, id string) (*entity.Supplier, error) {
	if organizationID == testOrgID && id == testSupplierID {
		return &entity.Supplier{ID: id, OrganizationID: organizationID, Name: "Molinos del Sur"}, nil
	}
	return nil, nil
}
func (fakeSupplierRepo) ListByOrganization(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}

// fakeTxRunner despacha el callback al par de repos del kind correspondiente.
type fakeTxRunner struct {
	receivables *fakeAccountRepo
	payables    *fakeAccountRepo
	recPayments *fakePaymentRepo
	payPayments *fakePaymentRepo
}

func (r *fakeTxRunner) RunReceivable(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	payments repository.PaymentRepository,
) error) error {
	return fn(r.receivables, r.recPayments)
}

func (r *fakeTxRunner) RunPayable(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	payments repository.PaymentRepository,
) error) error {
	return fn(r.payables, r.payPayments)
}

func buildTreasuryUseCase() (*treasury.TreasuryUseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		receivables: newFakeAccountRepo(),
		payables:    newFakeAccountRepo(),
		recPayments: newFakePaymentRepo(),
		payPayments: newFakePaymentRepo(),
	}
	uc := treasury.NewTreasuryUseCase(
		runner,
		runner.receivables, runner.payables,
		runner.recPayments, runner.payPayments,
		fakeCustomerRepo{}, fakeSupplierRepo{},
	)
	return uc, runner
}

func createReceivable(t *testing.T, uc *treasury.TreasuryUseCase, total string) *entity.Account {
	t.Helper()
	account, err := uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		CounterpartyID: testCustomerID,
		Description:    "Remito 0001-00012345",
		TotalAmount:    dec(total),
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	return account
}

func pay(t *testing.T, uc *treasury.TreasuryUseCase, kind, accountID, amount string) *entity.Payment {
	t.Helper()
	payment, err := uc.RegisterPayment(context.Background(), treasury.RegisterPaymentInput{
		OrganizationID: testOrgID,
		Kind:           kind,
		AccountID:      accountID,
		Amount:         dec(amount),
		Method:         entity.PaymentMethodTransferencia,
	})
	require.NoError(t, err)
	return payment
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateAccount
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateAccount_NaceConPendienteIgualAlTotal(t *testing.T) {
	uc, _ := buildTreasuryUseCase()

	account := createReceivable(t, uc, "1000")

	assert.True(t, account.PendingBalance.Equal(account.TotalAmount))
	assert.Equal(t, entity.AccountStatusPending, account.Status)
	assert.Equal(t, entity.AccountKindReceivable, account.Kind)
}

func TestCreateAccount_MontoNoPositivoRechazado(t *testing.T) {
	uc, _ := buildTreasuryUseCase()

	for _, total := range []string{"0", "-100"} {
		_, err := uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
			OrganizationID: testOrgID,
			Kind:           entity.AccountKindReceivable,
			CounterpartyID: testCustomerID,
			TotalAmount:    dec(total),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "total %s debe rechazarse", total)
	}
}

func TestCreateAccount_ContraparteInexistenteRechazada(t *testing.T) {
	uc, _ := buildTreasuryUseCase()

	_, err := uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		CounterpartyID: "cliente-fantasma",
		TotalAmount:    dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateAccount_PayableValidaProveedor(t *testing.T) {
	uc, _ := buildTreasuryUseCase()

	account, err := uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindPayable,
		CounterpartyID: testSupplierID,
		TotalAmount:    dec("5000"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountKindPayable, account.Kind)

	_, err = uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindPayable,
		CounterpartyID: testCustomerID, // cliente, no proveedor
		TotalAmount:    dec("5000"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterPayment
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo sobre una cuenta de 1000: pago de 300 deja 700 y PARTIALLY_PAID
// (etiqueta de cobrar), pago de 700 deja 0 y PAID, y un pago más se rechaza.
func TestRegisterPayment_CicloCompletoReceivable(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")

	pay(t, uc, entity.AccountKindReceivable, account.ID, "300")
	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.Equal(dec("700")))
	assert.Equal(t, entity.AccountStatusPartiallyPaid, stored.Status,
		"las cuentas por cobrar persisten PARTIALLY_PAID en el estado parcial")

	pay(t, uc, entity.AccountKindReceivable, account.ID, "700")
	stored = runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.IsZero())
	assert.Equal(t, entity.AccountStatusPaid, stored.Status)

	_, err := uc.RegisterPayment(context.Background(), treasury.RegisterPaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		AccountID:      account.ID,
		Amount:         dec("1"),
		Method:         entity.PaymentMethodEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrAmountExceedsPending,
		"una cuenta saldada no admite más pagos")
}

func TestRegisterPayment_PayablePersisteEtiquetaPartial(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account, err := uc.CreateAccount(context.Background(), treasury.CreateAccountInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindPayable,
		CounterpartyID: testSupplierID,
		TotalAmount:    dec("1000"),
	})
	require.NoError(t, err)

	pay(t, uc, entity.AccountKindPayable, account.ID, "400")
	stored := runner.payables.accounts[account.ID]
	assert.Equal(t, entity.AccountStatusPartial, stored.Status,
		"las cuentas por pagar persisten PARTIAL, no PARTIALLY_PAID")
}

func TestRegisterPayment_MontoMayorAlPendienteRechazado(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")

	_, err := uc.RegisterPayment(context.Background(), treasury.RegisterPaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		AccountID:      account.ID,
		Amount:         dec("1000.01"),
		Method:         entity.PaymentMethodEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrAmountExceedsPending)

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.Equal(dec("1000")), "el rechazo no debe tocar el saldo")
	assert.Empty(t, runner.recPayments.payments, "el pago rechazado no debe persistirse")
}

func TestRegisterPayment_MedioDePagoInvalidoRechazado(t *testing.T) {
	uc, _ := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")

	_, err := uc.RegisterPayment(context.Background(), treasury.RegisterPaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		AccountID:      account.ID,
		Amount:         dec("100"),
		Method:         "criptomoneda",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterPayment_PagoExactoSaldaLaCuenta(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")

	pay(t, uc, entity.AccountKindReceivable, account.ID, "1000")

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.IsZero())
	assert.Equal(t, entity.AccountStatusPaid, stored.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePayment — reversa completa del monto anterior
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePayment_SubirElMontoDescuentaLaDiferencia(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")
	payment := pay(t, uc, entity.AccountKindReceivable, account.ID, "300")

	newAmount := dec("500")
	updated, err := uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      payment.ID,
		Amount:         &newAmount,
	})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(dec("500")))

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.Equal(dec("500")),
		"pendiente = 1000 - 500 tras reversa y reaplicación")
}

func TestUpdatePayment_BajarElMontoDevuelveSaldo(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")
	payment := pay(t, uc, entity.AccountKindReceivable, account.ID, "800")

	newAmount := dec("200")
	_, err := uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      payment.ID,
		Amount:         &newAmount,
	})
	require.NoError(t, err)

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.Equal(dec("800")))
	assert.Equal(t, entity.AccountStatusPartiallyPaid, stored.Status)
}

// El tope para el nuevo monto es pendiente + monto viejo, no el pendiente a secas.
func TestUpdatePayment_TopeEsPendienteMasMontoViejo(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")
	payment := pay(t, uc, entity.AccountKindReceivable, account.ID, "600")

	// pendiente 400 + viejo 600 = 1000: editar a 1000 es válido.
	okAmount := dec("1000")
	_, err := uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      payment.ID,
		Amount:         &okAmount,
	})
	require.NoError(t, err)

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.IsZero())
	assert.Equal(t, entity.AccountStatusPaid, stored.Status)

	// 1000.01 excede el tope.
	tooMuch := dec("1000.01")
	_, err = uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      payment.ID,
		Amount:         &tooMuch,
	})
	assert.ErrorIs(t, err, domain.ErrAmountExceedsPending)
}

func TestUpdatePayment_SoloCamposNoNulosCambian(t *testing.T) {
	uc, runner := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")
	payment := pay(t, uc, entity.AccountKindReceivable, account.ID, "300")

	newNotes := "pago confirmado por el banco"
	updated, err := uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      payment.ID,
		Notes:          &newNotes,
	})
	require.NoError(t, err)

	assert.True(t, updated.Amount.Equal(dec("300")), "el monto no debe cambiar")
	assert.Equal(t, entity.PaymentMethodTransferencia, updated.Method)
	assert.Equal(t, newNotes, updated.Notes)

	stored := runner.receivables.accounts[account.ID]
	assert.True(t, stored.PendingBalance.Equal(dec("700")), "el saldo no debe moverse")
}

func TestUpdatePayment_PagoInexistenteRechazado(t *testing.T) {
	uc, _ := buildTreasuryUseCase()
	createReceivable(t, uc, "1000")

	amount := dec("100")
	_, err := uc.UpdatePayment(context.Background(), treasury.UpdatePaymentInput{
		OrganizationID: testOrgID,
		Kind:           entity.AccountKindReceivable,
		PaymentID:      "pago-fantasma",
		Amount:         &amount,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListAccounts_FiltraPorEstado(t *testing.T) {
	uc, _ := buildTreasuryUseCase()
	a1 := createReceivable(t, uc, "1000")
	createReceivable(t, uc, "500")
	pay(t, uc, entity.AccountKindReceivable, a1.ID, "1000")

	paid, err := uc.ListAccounts(context.Background(), testOrgID, entity.AccountKindReceivable, entity.AccountStatusPaid, 20, 0)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, a1.ID, paid[0].ID)

	all, err := uc.ListAccounts(context.Background(), testOrgID, entity.AccountKindReceivable, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListAccounts_KindInvalidoRechazado(t *testing.T) {
	uc, _ := buildTreasuryUseCase()
	_, err := uc.ListAccounts(context.Background(), testOrgID, "prestamos", "", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListPayments_DevuelveLosPagosDeLaCuenta(t *testing.T) {
	uc, _ := buildTreasuryUseCase()
	account := createReceivable(t, uc, "1000")
	pay(t, uc, entity.AccountKindReceivable, account.ID, "300")
	pay(t, uc, entity.AccountKindReceivable, account.ID, "200")

	payments, err := uc.ListPayments(context.Background(), testOrgID, entity.AccountKindReceivable, account.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}
