package authservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/internal/session"
	"github.com/dkarpov/teller/pkg/auth"
)

type Service struct {
	bank       *bank.Bank
	session    *session.Session
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
}

func New(b *bank.Bank, s *session.Session, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		bank:       b,
		session:    s,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

// Register creates a customer with a default Checking account and makes the
// new user the active session user.
func (s *Service) Register(ctx context.Context, firstName, lastName, pin string) (*domain.User, error) {
	user, err := s.bank.RegisterUser(firstName, lastName, pin)
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return nil, err
	}
	if _, err := s.session.Login(s.bank, user.ID, pin); err != nil {
		// The PIN just registered must authenticate; a failure here is a bug.
		zap.L().Error("post-register login failed", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, userID int, pin string) (*domain.User, error) {
	user, err := s.session.Login(s.bank, userID, pin)
	if err != nil {
		zap.L().Info("authentication failed", zap.Int("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context) {
	s.session.Logout()
	zap.L().Info("session closed")
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
