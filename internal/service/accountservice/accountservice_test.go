package accountservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/pkg/auth"
	"github.com/dkarpov/teller/pkg/idgen"
)

func newTestService(t *testing.T) (*Service, *domain.User) {
	t.Helper()
	hashService, err := auth.NewHashService(bcrypt.MinCost)
	require.NoError(t, err)
	b := bank.New("Bank of Money", idgen.New(0), hashService)
	user, err := b.RegisterUser("Jane", "Doe", "1234")
	require.NoError(t, err)
	return New(b), user
}

func TestList(t *testing.T) {
	service, user := newTestService(t)

	accounts, err := service.List(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, domain.Checking, accounts[0].Type())

	_, err = service.List(context.Background(), 10000+(user.ID-10000+1)%90000)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestOpen(t *testing.T) {
	service, user := newTestService(t)

	account, err := service.Open(context.Background(), user.ID, "Savings")
	require.NoError(t, err)
	assert.Equal(t, domain.Savings, account.Type())
	assert.Len(t, user.Accounts, 2)

	_, err = service.Open(context.Background(), user.ID, "Credit")
	assert.ErrorIs(t, err, domain.ErrUnknownAccountType)
}

func TestDepositAndWithdraw(t *testing.T) {
	service, user := newTestService(t)
	number := user.Accounts[0]

	balance, err := service.Deposit(context.Background(), user.ID, number, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance)

	balance, err = service.Withdraw(context.Background(), user.ID, number, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), balance)

	transactions, err := service.Transactions(context.Background(), user.ID, number)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "ATM", transactions[0].Location)
	assert.Equal(t, "Deposit", transactions[0].Memo)
	assert.Equal(t, int64(10000), transactions[0].Amount)
	assert.Equal(t, "Withdraw", transactions[1].Memo)
	assert.Equal(t, int64(-2500), transactions[1].Amount)
}

func TestDepositRejectsNonPositive(t *testing.T) {
	service, user := newTestService(t)

	_, err := service.Deposit(context.Background(), user.ID, user.Accounts[0], 0)
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	_, err = service.Withdraw(context.Background(), user.ID, user.Accounts[0], -5)
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
}

func TestDepositForeignAccount(t *testing.T) {
	hashService, err := auth.NewHashService(bcrypt.MinCost)
	require.NoError(t, err)
	b := bank.New("Bank of Money", idgen.New(0), hashService)
	owner, err := b.RegisterUser("Jane", "Doe", "1234")
	require.NoError(t, err)
	other, err := b.RegisterUser("John", "Smith", "4321")
	require.NoError(t, err)
	service := New(b)

	_, err = service.Deposit(context.Background(), other.ID, owner.Accounts[0], 100)

	assert.ErrorIs(t, err, domain.ErrAccountNotOwned)
}

func TestRemove(t *testing.T) {
	service, user := newTestService(t)
	number := user.Accounts[0]

	_, err := service.Deposit(context.Background(), user.ID, number, 100)
	require.NoError(t, err)
	assert.ErrorIs(t, service.Remove(context.Background(), user.ID, number), domain.ErrNonZeroBalance)

	_, err = service.Withdraw(context.Background(), user.ID, number, 100)
	require.NoError(t, err)
	require.NoError(t, service.Remove(context.Background(), user.ID, number))

	_, err = service.Transactions(context.Background(), user.ID, number)
	assert.ErrorIs(t, err, domain.ErrAccountNotOwned)
}

func TestAddEntry(t *testing.T) {
	service, user := newTestService(t)
	number := user.Accounts[0]

	err := service.AddEntry(context.Background(), user.ID, number, "Grocery Store", -1299, "weekly shop")
	require.NoError(t, err)

	transactions, err := service.Transactions(context.Background(), user.ID, number)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Grocery Store", transactions[0].Location)
	assert.Equal(t, int64(-1299), transactions[0].Amount)

	// Manual entries never move the balance.
	accounts, err := service.List(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), accounts[0].Balance())
}
