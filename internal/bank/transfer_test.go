package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dkarpov/teller/internal/domain"
)

func newTestTransfer(t *testing.T) (*Bank, *TransferCoordinator, *Account, *Account) {
	t.Helper()
	b := newTestBank(t)
	user, err := b.RegisterUser("Jane", "Doe", "1234")
	require.NoError(t, err)
	checking, err := b.Account(user.Accounts[0])
	require.NoError(t, err)
	savings, err := b.AddAccount(user, domain.Savings)
	require.NoError(t, err)
	return b, NewTransferCoordinator(b), checking, savings
}

func TestTransfer(t *testing.T) {
	_, coordinator, checking, savings := newTestTransfer(t)
	_, err := checking.Credit(10000, "ATM", "Deposit")
	require.NoError(t, err)

	srcBalance, dstBalance, err := coordinator.Transfer(checking.Number(), savings.Number(), 4000)

	require.NoError(t, err)
	assert.Equal(t, int64(6000), srcBalance)
	assert.Equal(t, int64(4000), dstBalance)
	assert.Equal(t, int64(6000), checking.Balance())
	assert.Equal(t, int64(4000), savings.Balance())

	srcTxs := checking.Transactions()
	require.Len(t, srcTxs, 2)
	assert.Equal(t, int64(-4000), srcTxs[1].Amount)
	assert.Equal(t, "Transfer", srcTxs[1].Location)
	assert.Equal(t, "Transfer to "+savings.Number(), srcTxs[1].Memo)

	dstTxs := savings.Transactions()
	require.Len(t, dstTxs, 1)
	assert.Equal(t, int64(4000), dstTxs[0].Amount)
	assert.Equal(t, "Transfer from "+checking.Number(), dstTxs[0].Memo)
}

func TestTransferSameAccount(t *testing.T) {
	_, coordinator, checking, _ := newTestTransfer(t)

	// Rejected regardless of amount or balance, before any other check.
	for _, amount := range []int64{4000, 0, -1} {
		_, _, err := coordinator.Transfer(checking.Number(), checking.Number(), amount)
		assert.ErrorIs(t, err, domain.ErrSameAccount)
	}
	assert.Empty(t, checking.Transactions())
}

func TestTransferNonPositiveAmount(t *testing.T) {
	_, coordinator, checking, savings := newTestTransfer(t)
	_, err := checking.Credit(10000, "ATM", "Deposit")
	require.NoError(t, err)

	for _, amount := range []int64{0, -4000} {
		_, _, err := coordinator.Transfer(checking.Number(), savings.Number(), amount)
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	}
	assert.Equal(t, int64(10000), checking.Balance())
}

func TestTransferInsufficientFunds(t *testing.T) {
	_, coordinator, checking, savings := newTestTransfer(t)
	_, err := checking.Credit(100, "ATM", "Deposit")
	require.NoError(t, err)

	_, _, err = coordinator.Transfer(checking.Number(), savings.Number(), 101)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(100), checking.Balance())
	assert.Equal(t, int64(0), savings.Balance())
	assert.Len(t, checking.Transactions(), 1)
	assert.Empty(t, savings.Transactions())
}

func TestTransferUnknownAccount(t *testing.T) {
	_, coordinator, checking, _ := newTestTransfer(t)
	_, err := checking.Credit(10000, "ATM", "Deposit")
	require.NoError(t, err)

	_, _, err = coordinator.Transfer(checking.Number(), "000-0000", 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, _, err = coordinator.Transfer("000-0000", checking.Number(), 100)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	assert.Equal(t, int64(10000), checking.Balance())
}

// Opposing concurrent transfers must neither deadlock nor lose money.
func TestTransferConcurrentOpposing(t *testing.T) {
	_, coordinator, checking, savings := newTestTransfer(t)
	_, err := checking.Credit(100000, "ATM", "Deposit")
	require.NoError(t, err)
	_, err = savings.Credit(100000, "ATM", "Deposit")
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			for j := 0; j < 20; j++ {
				_, _, err := coordinator.Transfer(checking.Number(), savings.Number(), 7)
				if err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for j := 0; j < 20; j++ {
				_, _, err := coordinator.Transfer(savings.Number(), checking.Number(), 7)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(200000), checking.Balance()+savings.Balance())
	assert.Equal(t, int64(100000), checking.Balance())
	assert.Equal(t, int64(100000), savings.Balance())
}

// The full customer journey: register, deposit, open savings, transfer.
func TestEndToEndScenario(t *testing.T) {
	b := newTestBank(t)
	coordinator := NewTransferCoordinator(b)

	jane, err := b.RegisterUser("Jane", "Doe", "1234")
	require.NoError(t, err)
	require.Len(t, jane.Accounts, 1)

	checking, err := b.Account(jane.Accounts[0])
	require.NoError(t, err)
	assert.Equal(t, domain.Checking, checking.Type())
	assert.Equal(t, int64(0), checking.Balance())

	balance, err := checking.Credit(10000, "ATM", "Deposit")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance)
	require.Len(t, checking.Transactions(), 1)
	assert.Equal(t, int64(10000), checking.Transactions()[0].Amount)

	savings, err := b.AddAccount(jane, domain.Savings)
	require.NoError(t, err)

	srcBalance, dstBalance, err := coordinator.Transfer(checking.Number(), savings.Number(), 4000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), srcBalance)
	assert.Equal(t, int64(4000), dstBalance)

	require.Len(t, checking.Transactions(), 2)
	assert.Equal(t, int64(10000), checking.Transactions()[0].Amount)
	assert.Equal(t, int64(-4000), checking.Transactions()[1].Amount)
	require.Len(t, savings.Transactions(), 1)
	assert.Equal(t, int64(4000), savings.Transactions()[0].Amount)

	assert.Same(t, jane, b.Authenticate(jane.ID, "1234"))
	assert.Nil(t, b.Authenticate(jane.ID, "0000"))
}
