package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/teller/internal/domain"
)

func TestCreditDebitRoundTrip(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	balance, err := account.Credit(10050, "ATM", "Deposit")
	require.NoError(t, err)
	assert.Equal(t, int64(10050), balance)

	balance, err = account.Debit(10050, "ATM", "Withdraw")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	transactions := account.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(10050), transactions[0].Amount)
	assert.Equal(t, int64(-10050), transactions[1].Amount)
}

func TestCreditRejectsNonPositive(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	for _, amount := range []int64{0, -100} {
		_, err := account.Credit(amount, "ATM", "Deposit")
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	}
	assert.Equal(t, int64(0), account.Balance())
	assert.Empty(t, account.Transactions())
}

func TestDebitRejectsNonPositive(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	for _, amount := range []int64{0, -100} {
		_, err := account.Debit(amount, "ATM", "Withdraw")
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	}
	assert.Equal(t, int64(0), account.Balance())
	assert.Empty(t, account.Transactions())
}

func TestDebitAllowsOverdraft(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	balance, err := account.Debit(5000, "ATM", "Withdraw")
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), balance)
}

func TestAddEntryDoesNotMoveBalance(t *testing.T) {
	account := NewAccount(domain.Savings, "765-4321")

	account.AddEntry("Grocery Store", -1299, "weekly shop")

	assert.Equal(t, int64(0), account.Balance())
	transactions := account.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "Grocery Store", transactions[0].Location)
	assert.Equal(t, int64(-1299), transactions[0].Amount)
	assert.Equal(t, "weekly shop", transactions[0].Memo)
	assert.False(t, transactions[0].Date.IsZero())
}

func TestBalanceEqualsSumOfTransactions(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	amounts := []int64{10000, 3, 1, 999999, 250}
	for i, amount := range amounts {
		if i%2 == 0 {
			_, err := account.Credit(amount, "ATM", "Deposit")
			require.NoError(t, err)
		} else {
			_, err := account.Debit(amount, "ATM", "Withdraw")
			require.NoError(t, err)
		}
	}

	var sum int64
	for _, tx := range account.Transactions() {
		sum += tx.Amount
	}
	assert.Equal(t, account.Balance(), sum)
}

func TestClose(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	_, err := account.Credit(100, "ATM", "Deposit")
	require.NoError(t, err)
	assert.ErrorIs(t, account.Close(), domain.ErrNonZeroBalance)

	_, err = account.Debit(100, "ATM", "Withdraw")
	require.NoError(t, err)
	assert.NoError(t, account.Close())
}

func TestTransactionsReturnsCopy(t *testing.T) {
	account := NewAccount(domain.Checking, "123-4567")

	_, err := account.Credit(100, "ATM", "Deposit")
	require.NoError(t, err)

	snapshot := account.Transactions()
	snapshot[0].Amount = 0

	assert.Equal(t, int64(100), account.Transactions()[0].Amount)
}
