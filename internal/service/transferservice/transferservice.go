package transferservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/bank"
)

type Service struct {
	bank        *bank.Bank
	coordinator *bank.TransferCoordinator
}

func New(b *bank.Bank, coordinator *bank.TransferCoordinator) *Service {
	return &Service{
		bank:        b,
		coordinator: coordinator,
	}
}

// Transfer moves amount from one of the user's accounts to any account of
// the bank. The source must belong to the user; the destination only has to
// exist. Returns the post-transfer balances of both sides.
func (s *Service) Transfer(ctx context.Context, userID int, from, to string, amount int64) (fromBalance, toBalance int64, err error) {
	user, err := s.bank.User(userID)
	if err != nil {
		return 0, 0, err
	}
	if _, err := s.bank.OwnedAccount(user, from); err != nil {
		return 0, 0, err
	}

	fromBalance, toBalance, err = s.coordinator.Transfer(from, to, amount)
	if err != nil {
		zap.L().Info("transfer rejected",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err))
		return 0, 0, err
	}
	return fromBalance, toBalance, nil
}
