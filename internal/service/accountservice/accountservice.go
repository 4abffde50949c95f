package accountservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/domain"
)

// Deposits and withdrawals are terminal operations, logged the way the ATM
// always has: location "ATM", memo naming the operation.
const (
	terminalLocation = "ATM"
	depositMemo      = "Deposit"
	withdrawMemo     = "Withdraw"
)

type Service struct {
	bank *bank.Bank
}

func New(b *bank.Bank) *Service {
	return &Service{bank: b}
}

// List returns the user's accounts in opening order.
func (s *Service) List(ctx context.Context, userID int) ([]*bank.Account, error) {
	user, err := s.bank.User(userID)
	if err != nil {
		return nil, err
	}
	return s.bank.UserAccounts(user), nil
}

// Open creates an additional account of the requested type.
func (s *Service) Open(ctx context.Context, userID int, accType string) (*bank.Account, error) {
	user, err := s.bank.User(userID)
	if err != nil {
		return nil, err
	}
	parsed, err := domain.ParseAccountType(accType)
	if err != nil {
		return nil, err
	}
	return s.bank.AddAccount(user, parsed)
}

// Remove closes and deregisters an account; only a zero-balance account owned
// by the user can go.
func (s *Service) Remove(ctx context.Context, userID int, number string) error {
	user, err := s.bank.User(userID)
	if err != nil {
		return err
	}
	return s.bank.RemoveAccount(user, number)
}

// Deposit credits the account and returns the new balance.
func (s *Service) Deposit(ctx context.Context, userID int, number string, amount int64) (int64, error) {
	account, err := s.ownedAccount(userID, number)
	if err != nil {
		return 0, err
	}
	balance, err := account.Credit(amount, terminalLocation, depositMemo)
	if err != nil {
		return 0, err
	}
	zap.L().Info("deposit", zap.String("account", number), zap.Int64("amount", amount))
	return balance, nil
}

// Withdraw debits the account and returns the new balance. Overdraft is
// permitted; this layer imposes no limit.
func (s *Service) Withdraw(ctx context.Context, userID int, number string, amount int64) (int64, error) {
	account, err := s.ownedAccount(userID, number)
	if err != nil {
		return 0, err
	}
	balance, err := account.Debit(amount, terminalLocation, withdrawMemo)
	if err != nil {
		return 0, err
	}
	zap.L().Info("withdrawal", zap.String("account", number), zap.Int64("amount", amount))
	return balance, nil
}

// Transactions returns the account's ordered ledger.
func (s *Service) Transactions(ctx context.Context, userID int, number string) ([]domain.Transaction, error) {
	account, err := s.ownedAccount(userID, number)
	if err != nil {
		return nil, err
	}
	return account.Transactions(), nil
}

// AddEntry appends a manual ledger entry without moving the balance.
func (s *Service) AddEntry(ctx context.Context, userID int, number, location string, amount int64, memo string) error {
	account, err := s.ownedAccount(userID, number)
	if err != nil {
		return err
	}
	account.AddEntry(location, amount, memo)
	return nil
}

func (s *Service) ownedAccount(userID int, number string) (*bank.Account, error) {
	user, err := s.bank.User(userID)
	if err != nil {
		return nil, err
	}
	return s.bank.OwnedAccount(user, number)
}
