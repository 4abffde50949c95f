package service

import (
	"time"

	accountshandlers "github.com/dkarpov/teller/internal/handlers/accounts"
	authhandlers "github.com/dkarpov/teller/internal/handlers/auth"
	transferhandlers "github.com/dkarpov/teller/internal/handlers/transfer"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/service/accountservice"
	"github.com/dkarpov/teller/internal/service/authservice"
	"github.com/dkarpov/teller/internal/service/transferservice"
	"github.com/dkarpov/teller/internal/session"
	pkgauth "github.com/dkarpov/teller/pkg/auth"
)

type Services struct {
	AuthService     authhandlers.Service
	AccountService  accountshandlers.Service
	TransferService transferhandlers.Service
}

func New(b *bank.Bank, sess *session.Session, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	coordinator := bank.NewTransferCoordinator(b)

	return &Services{
		AuthService:     authservice.New(b, sess, jwtService, tokenTTL),
		AccountService:  accountservice.New(b),
		TransferService: transferservice.New(b, coordinator),
	}
}
