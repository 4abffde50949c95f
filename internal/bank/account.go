package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/dkarpov/teller/internal/domain"
)

// Account is a balance-bearing ledger. The balance and the transaction log
// mutate together under one per-account mutex, so the invariant
// balance == sum of applied credit/debit amounts holds at every observable
// point. Amounts are int64 minor units (cents).
//
// The balance is signed and has no enforced minimum: Debit may drive it
// negative. Overdraft policy, if any, belongs to the caller.
type Account struct {
	mu           sync.Mutex
	accType      domain.AccountType
	number       string
	balance      int64
	transactions []domain.Transaction
}

// NewAccount builds an empty account. Accounts normally come from
// Bank.RegisterUser or Bank.AddAccount, which also register them.
func NewAccount(accType domain.AccountType, number string) *Account {
	return &Account{
		accType: accType,
		number:  number,
	}
}

func (a *Account) Type() domain.AccountType {
	return a.accType
}

func (a *Account) Number() string {
	return a.number
}

func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Transactions returns a copy of the ordered ledger, oldest first.
func (a *Account) Transactions() []domain.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Credit adds amount to the balance and logs a transaction with the same
// positive amount. Returns the new balance.
func (a *Account) Credit(amount int64, location, memo string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit %s: %w", a.number, domain.ErrNonPositiveAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit(amount, location, memo)
	return a.balance, nil
}

// Debit subtracts amount from the balance and logs a transaction with the
// negated amount. The balance may go negative.
func (a *Account) Debit(amount int64, location, memo string) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit %s: %w", a.number, domain.ErrNonPositiveAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.debit(amount, location, memo)
	return a.balance, nil
}

// AddEntry appends a manual ledger entry without touching the balance.
// The amount may carry either sign.
func (a *Account) AddEntry(location string, amount int64, memo string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.append(location, amount, memo)
}

// Close succeeds only on an exactly zero balance. Removal from the bank
// registries is the Bank's job; see Bank.RemoveAccount.
func (a *Account) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closeLocked()
}

// credit, debit, append and closeLocked assume a.mu is held.

func (a *Account) credit(amount int64, location, memo string) {
	a.balance += amount
	a.append(location, amount, memo)
}

func (a *Account) debit(amount int64, location, memo string) {
	a.balance -= amount
	a.append(location, -amount, memo)
}

func (a *Account) append(location string, amount int64, memo string) {
	a.transactions = append(a.transactions, domain.Transaction{
		Location: location,
		Amount:   amount,
		Date:     time.Now(),
		Memo:     memo,
	})
}

func (a *Account) closeLocked() error {
	if a.balance != 0 {
		return fmt.Errorf("close account %s: %w", a.number, domain.ErrNonZeroBalance)
	}
	return nil
}
