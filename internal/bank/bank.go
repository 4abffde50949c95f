// Package bank holds the core ledger model: the Bank aggregate root owning
// the user and account registries, the per-account ledger, and the transfer
// coordinator. All state is memory-resident for the process lifetime; the
// registries are the storage layer.
//
// Locking contract: registry mutation and lookup are serialized by the Bank
// mutex; balance and log mutation by a per-account mutex. Whenever both
// levels are held the Bank mutex is taken first, and multiple account locks
// are taken in ascending account-number order.
package bank

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/pkg/auth"
	"github.com/dkarpov/teller/pkg/idgen"
)

type Bank struct {
	mu       sync.Mutex
	name     string
	users    map[int]*domain.User
	accounts map[string]*Account

	ids    *idgen.Generator
	hasher auth.HashServiceInterface
}

func New(name string, ids *idgen.Generator, hasher auth.HashServiceInterface) *Bank {
	return &Bank{
		name:     name,
		users:    make(map[int]*domain.User),
		accounts: make(map[string]*Account),
		ids:      ids,
		hasher:   hasher,
	}
}

func (b *Bank) Name() string {
	return b.name
}

// RegisterUser allocates a 5-digit user ID, digests the PIN, opens a default
// Checking account and registers both. Fails only when the PIN cannot be
// hashed or an identifier space is saturated.
func (b *Bank) RegisterUser(firstName, lastName, pin string) (*domain.User, error) {
	pinHash, err := b.hasher.HashPIN(pin)
	if err != nil {
		zap.L().Error("can't hash pin", zap.Error(err))
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id, err := b.ids.UserID(func(id int) bool {
		_, taken := b.users[id]
		return taken
	})
	if err != nil {
		return nil, err
	}

	account, err := b.openAccountLocked(domain.Checking)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		PINHash:   pinHash,
		Accounts:  []string{account.Number()},
	}
	b.users[id] = user

	zap.L().Info("user registered",
		zap.Int("user_id", id),
		zap.String("account", account.Number()))
	return user, nil
}

// Authenticate returns the user on an ID+PIN match and nil otherwise. An
// unknown ID and a wrong PIN are indistinguishable to the caller.
func (b *Bank) Authenticate(userID int, pin string) *domain.User {
	b.mu.Lock()
	user, ok := b.users[userID]
	b.mu.Unlock()
	if !ok {
		return nil
	}
	if !b.hasher.ComparePIN(user.PINHash, pin) {
		return nil
	}
	return user
}

// User looks up a registered user by ID.
func (b *Bank) User(userID int) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	user, ok := b.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrUserNotFound)
	}
	return user, nil
}

// Account looks up any account by number.
func (b *Bank) Account(number string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accountLocked(number)
}

// OwnedAccount looks up an account and requires it to belong to user.
func (b *Bank) OwnedAccount(user *domain.User, number string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ownsLocked(user, number) {
		return nil, fmt.Errorf("account %s: %w", number, domain.ErrAccountNotOwned)
	}
	return b.accountLocked(number)
}

// UserAccounts returns the user's accounts in the order they were opened.
func (b *Bank) UserAccounts(user *domain.User) []*Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Account, 0, len(user.Accounts))
	for _, number := range user.Accounts {
		if account, ok := b.accounts[number]; ok {
			out = append(out, account)
		}
	}
	return out
}

// AddAccount opens an account of the given type and registers it with the
// bank and the owning user.
func (b *Bank) AddAccount(user *domain.User, accType domain.AccountType) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, err := b.openAccountLocked(accType)
	if err != nil {
		return nil, err
	}
	user.Accounts = append(user.Accounts, account.Number())

	zap.L().Info("account opened",
		zap.Int("user_id", user.ID),
		zap.String("account", account.Number()),
		zap.String("type", string(accType)))
	return account, nil
}

// RemoveAccount deletes an account from both registries. The account must
// belong to user and must close cleanly (zero balance).
func (b *Bank) RemoveAccount(user *domain.User, number string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ownsLocked(user, number) {
		return fmt.Errorf("account %s: %w", number, domain.ErrAccountNotOwned)
	}
	account, err := b.accountLocked(number)
	if err != nil {
		return err
	}
	if err := account.Close(); err != nil {
		return err
	}

	delete(b.accounts, number)
	for i, n := range user.Accounts {
		if n == number {
			user.Accounts = append(user.Accounts[:i], user.Accounts[i+1:]...)
			break
		}
	}

	zap.L().Info("account closed",
		zap.Int("user_id", user.ID),
		zap.String("account", number))
	return nil
}

// openAccountLocked and the helpers below assume b.mu is held.

func (b *Bank) openAccountLocked(accType domain.AccountType) (*Account, error) {
	number, err := b.ids.AccountNumber(func(number string) bool {
		_, taken := b.accounts[number]
		return taken
	})
	if err != nil {
		return nil, err
	}
	account := NewAccount(accType, number)
	b.accounts[number] = account
	return account, nil
}

func (b *Bank) accountLocked(number string) (*Account, error) {
	account, ok := b.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, domain.ErrAccountNotFound)
	}
	return account, nil
}

func (b *Bank) ownsLocked(user *domain.User, number string) bool {
	for _, n := range user.Accounts {
		if n == number {
			return true
		}
	}
	return false
}
