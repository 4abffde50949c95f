package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	accountshandlers "github.com/dkarpov/teller/internal/handlers/accounts"
	authhandlers "github.com/dkarpov/teller/internal/handlers/auth"
	transferhandlers "github.com/dkarpov/teller/internal/handlers/transfer"
	"github.com/dkarpov/teller/internal/service"
	"github.com/dkarpov/teller/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Open(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	AddEntry(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Transfer(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	AccountHandler  AccountHandler
	TransferHandler TransferHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		AccountHandler:  accountshandlers.New(s.AccountService),
		TransferHandler: transferhandlers.New(s.TransferService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Post("/logout", h.AuthHandler.Logout)
			r.Route("/accounts", func(r chi.Router) {
				r.Get("/", h.AccountHandler.List)
				r.Post("/", h.AccountHandler.Open)
				r.Route("/{number}", func(r chi.Router) {
					r.Delete("/", h.AccountHandler.Remove)
					r.Get("/transactions", h.AccountHandler.Transactions)
					r.Post("/deposit", h.AccountHandler.Deposit)
					r.Post("/withdraw", h.AccountHandler.Withdraw)
					r.Post("/memo", h.AccountHandler.AddEntry)
				})
			})
			r.Post("/transfer", h.TransferHandler.Transfer)
		})
	})

	return r
}
