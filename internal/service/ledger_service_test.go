package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/consorcio/internal/idgen"
	"github.com/mmynk/consorcio/internal/ledger"
	"github.com/mmynk/consorcio/internal/metrics"
	"github.com/mmynk/consorcio/internal/models"
	"github.com/mmynk/consorcio/internal/storage"
	"github.com/mmynk/consorcio/internal/storage/jsonfile"
)

// failingStore loads from the wrapped store but refuses to save.
type failingStore struct {
	storage.Store
}

func (failingStore) Save(context.Context, *models.Snapshot) error {
	return errors.New("disk full")
}

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	store, err := jsonfile.New(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	return store
}

func newTestService(t *testing.T) *LedgerService {
	t.Helper()
	return NewLedgerService(newTestStore(t), &idgen.Sequence{Prefix: "id"}, metrics.New(), nil)
}

func seedParticipants(t *testing.T, svc *LedgerService, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := svc.CreateParticipant(context.Background(), models.Participant{
			ID:     id,
			Name:   "Owner " + id,
			Email:  "owner" + id + "@example.com",
			Unit:   id + "A",
			Active: true,
		})
		require.NoError(t, err)
	}
}

func newExpense(amount int64, paidBy string, splitAmong ...string) models.Expense {
	return models.Expense{
		Description: "Elevator repair",
		Amount:      decimal.NewFromInt(amount),
		Date:        "2024-05-10",
		Category:    "maintenance",
		PaidBy:      paidBy,
		SplitAmong:  splitAmong,
	}
}

func newPayment(amount int64, debtor, creditor string) models.Payment {
	return models.Payment{
		Description: "Bank transfer",
		Amount:      decimal.NewFromInt(amount),
		Date:        "2024-05-12",
		DebtorID:    debtor,
		CreditorID:  creditor,
	}
}

func TestParticipantLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateParticipant(ctx, models.Participant{Name: "Maria", Unit: "3B", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID, "empty id is generated")

	got, err := svc.GetParticipant(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	created.Phone = "555-0101"
	updated, err := svc.UpdateParticipant(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "555-0101", updated.Phone)

	list, err := svc.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Participant{updated}, list)

	require.NoError(t, svc.DeleteParticipant(ctx, created.ID))
	_, err = svc.GetParticipant(ctx, created.ID)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
}

func TestStatePersistsAcrossServices(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := NewLedgerService(store, nil, nil, nil)
	seedParticipants(t, first, "1", "2")
	_, err := first.CreateExpense(ctx, newExpense(90, "1", "1", "2"))
	require.NoError(t, err)

	second := NewLedgerService(store, nil, nil, nil)
	expenses, err := second.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.NotEmpty(t, expenses[0].ID)
	assert.True(t, decimal.NewFromInt(90).Equal(expenses[0].Amount))
}

func TestDeleteGuardedParticipant(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1", "2")

	_, err := svc.CreatePayment(ctx, newPayment(50, "2", "1"))
	require.NoError(t, err)

	err = svc.DeleteParticipant(ctx, "2")
	assert.True(t, ledger.IsKind(err, ledger.KindConflict))

	list, err := svc.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2, "failed delete leaves the store unchanged")
}

func TestRejectedMutationIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1")

	_, err := svc.CreateExpense(ctx, newExpense(100, "1", "1", "ghost"))
	assert.True(t, ledger.IsKind(err, ledger.KindValidation))

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestSaveFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedParticipants(t, NewLedgerService(store, nil, nil, nil), "1")

	svc := NewLedgerService(failingStore{store}, nil, nil, nil)
	_, err := svc.CreateExpense(ctx, newExpense(10, "1", "1"))
	require.Error(t, err)
	assert.Equal(t, ledger.Kind(0), ledger.KindOf(err))
	assert.Contains(t, err.Error(), "disk full")

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseAndPaymentCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1", "2", "3")

	e, err := svc.CreateExpense(ctx, newExpense(300, "1", "1", "2", "3"))
	require.NoError(t, err)

	e.Category = "repairs"
	e, err = svc.UpdateExpense(ctx, e.ID, e)
	require.NoError(t, err)
	got, err := svc.GetExpense(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "repairs", got.Category)

	p, err := svc.CreatePayment(ctx, newPayment(100, "2", "1"))
	require.NoError(t, err)
	p.Receipt = "1700000000_transfer.pdf"
	_, err = svc.UpdatePayment(ctx, p.ID, p)
	require.NoError(t, err)
	gotPayment, err := svc.GetPayment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "1700000000_transfer.pdf", gotPayment.Receipt)

	byThree, err := svc.ParticipantExpenses(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, byThree, 1)

	paymentsOfThree, err := svc.ParticipantPayments(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, paymentsOfThree)

	_, err = svc.ParticipantExpenses(ctx, "9")
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))

	require.NoError(t, svc.DeletePayment(ctx, p.ID))
	require.NoError(t, svc.DeleteExpense(ctx, e.ID))
	assert.True(t, ledger.IsKind(svc.DeleteExpense(ctx, e.ID), ledger.KindNotFound))

	payments, err := svc.ListPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestBalancesAndDebts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1", "2", "3")

	_, err := svc.CreateExpense(ctx, newExpense(300, "1", "1", "2", "3"))
	require.NoError(t, err)
	_, err = svc.CreatePayment(ctx, newPayment(100, "2", "1"))
	require.NoError(t, err)

	balances, err := svc.Balances(ctx)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	want := map[string]int64{"1": 100, "2": 0, "3": -100}
	for _, b := range balances {
		assert.Truef(t, decimal.NewFromInt(want[b.ParticipantID]).Equal(b.NetBalance),
			"participant %s: got %s", b.ParticipantID, b.NetBalance)
	}

	one, err := svc.ParticipantBalance(ctx, "3")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-100).Equal(one.Balance))

	_, err = svc.ParticipantBalance(ctx, "9")
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))

	debts, err := svc.Debts(ctx)
	require.NoError(t, err)
	require.Len(t, debts, 1)
	assert.Equal(t, "3", debts[0].From)
	assert.Equal(t, "1", debts[0].To)
	assert.True(t, decimal.NewFromInt(100).Equal(debts[0].Amount))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ExpenseCount)
	assert.True(t, decimal.NewFromInt(300).Equal(summary.TotalExpenses))
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1")

	_, err := svc.GetCurrentUser(ctx)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))

	cu, err := svc.SetCurrentUserFromParticipant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Owner 1", cu.Name)

	got, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, cu, got)

	_, err = svc.SetCurrentUser(ctx, models.CurrentUser{ID: "ghost", Name: "Ghost"})
	assert.True(t, ledger.IsKind(err, ledger.KindValidation))

	_, err = svc.SetCurrentUserFromParticipant(ctx, "ghost")
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))

	require.NoError(t, svc.ClearCurrentUser(ctx))
	require.NoError(t, svc.ClearCurrentUser(ctx))
	_, err = svc.GetCurrentUser(ctx)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
}

func TestUpdateKeepsStoredAuthor(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedParticipants(t, svc, "1", "2")

	e := newExpense(40, "1", "1", "2")
	e.CreatedBy = "1"
	e, err := svc.CreateExpense(ctx, e)
	require.NoError(t, err)

	e.CreatedBy = ""
	e.Description = "Elevator repair, second visit"
	updated, err := svc.UpdateExpense(ctx, e.ID, e)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.CreatedBy)

	e.CreatedBy = "2"
	updated, err = svc.UpdateExpense(ctx, e.ID, e)
	require.NoError(t, err)
	assert.Equal(t, "2", updated.CreatedBy, "an explicit author is stored")

	p := newPayment(20, "2", "1")
	p.CreatedBy = "2"
	p, err = svc.CreatePayment(ctx, p)
	require.NoError(t, err)

	p.CreatedBy = ""
	updatedPayment, err := svc.UpdatePayment(ctx, p.ID, p)
	require.NoError(t, err)
	assert.Equal(t, "2", updatedPayment.CreatedBy)

	_, err = svc.UpdatePayment(ctx, "missing", p)
	assert.True(t, ledger.IsKind(err, ledger.KindNotFound))
}
