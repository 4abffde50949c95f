package bank

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/domain"
)

// TransferCoordinator moves funds between two accounts of one bank as a
// single atomic step: no observer ever sees the source debited without the
// destination credited.
type TransferCoordinator struct {
	bank *Bank
}

func NewTransferCoordinator(bank *Bank) *TransferCoordinator {
	return &TransferCoordinator{bank: bank}
}

// Transfer debits srcNumber and credits dstNumber by amount, cross-
// referencing the counterpart account in each memo. Returns the post-transfer
// balances of both accounts.
//
// Check order: same-account first (regardless of balance), then amount sign,
// then existence, then funds. Both account locks are taken in ascending
// account-number order while the registry lock is still held, so opposing
// concurrent transfers cannot deadlock and cannot observe a half-applied
// state.
func (c *TransferCoordinator) Transfer(srcNumber, dstNumber string, amount int64) (srcBalance, dstBalance int64, err error) {
	if srcNumber == dstNumber {
		return 0, 0, fmt.Errorf("transfer to %s: %w", dstNumber, domain.ErrSameAccount)
	}
	if amount <= 0 {
		return 0, 0, fmt.Errorf("transfer: %w", domain.ErrNonPositiveAmount)
	}

	c.bank.mu.Lock()
	src, err := c.bank.accountLocked(srcNumber)
	if err != nil {
		c.bank.mu.Unlock()
		return 0, 0, err
	}
	dst, err := c.bank.accountLocked(dstNumber)
	if err != nil {
		c.bank.mu.Unlock()
		return 0, 0, err
	}

	first, second := src, dst
	if dstNumber < srcNumber {
		first, second = dst, src
	}
	first.mu.Lock()
	second.mu.Lock()
	c.bank.mu.Unlock()
	defer first.mu.Unlock()
	defer second.mu.Unlock()

	if src.balance < amount {
		return 0, 0, fmt.Errorf("transfer %s -> %s: %w", srcNumber, dstNumber, domain.ErrInsufficientFunds)
	}

	src.debit(amount, "Transfer", "Transfer to "+dstNumber)
	dst.credit(amount, "Transfer", "Transfer from "+srcNumber)

	zap.L().Info("transfer completed",
		zap.String("from", srcNumber),
		zap.String("to", dstNumber),
		zap.Int64("amount", amount))
	return src.balance, dst.balance, nil
}
