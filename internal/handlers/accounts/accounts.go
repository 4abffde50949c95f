package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkarpov/teller/internal/bank"
	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/internal/dto"
	"github.com/dkarpov/teller/pkg/auth"
	"github.com/dkarpov/teller/pkg/idgen"
	"github.com/dkarpov/teller/pkg/money"
	"github.com/dkarpov/teller/pkg/utils"
)

//go:generate mockgen -source=accounts.go -destination=mocks.go -package=accounts

type Service interface {
	List(ctx context.Context, userID int) ([]*bank.Account, error)
	Open(ctx context.Context, userID int, accType string) (*bank.Account, error)
	Remove(ctx context.Context, userID int, number string) error
	Deposit(ctx context.Context, userID int, number string, amount int64) (int64, error)
	Withdraw(ctx context.Context, userID int, number string, amount int64) (int64, error)
	Transactions(ctx context.Context, userID int, number string) ([]domain.Transaction, error)
	AddEntry(ctx context.Context, userID int, number, location string, amount int64, memo string) error
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// List godoc
//
//	@Summary		List the customer's accounts
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/accounts [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	accounts, err := h.accountService.List(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i, account := range accounts {
		response[i] = dto.AccountResponseDTO{
			Type:    string(account.Type()),
			Number:  account.Number(),
			Balance: money.FromCents(account.Balance()),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Open godoc
//
//	@Summary		Open an additional account
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenAccountRequestDTO	true	"Account type: Checking or Savings"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown account type"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/user/accounts [post]
func (h *AccountHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.OpenAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.accountService.Open(r.Context(), userID, req.Type)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		Type:    string(account.Type()),
		Number:  account.Number(),
		Balance: money.FromCents(account.Balance()),
	})
}

// Remove godoc
//
//	@Summary		Close and delete an account
//	@Description	Only an account with an exactly zero balance can be deleted
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string	true	"Account number"
//	@Success		200		{object}	utils.Response	"Account deleted"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"Account balance is not zero"
//	@Router			/api/user/accounts/{number} [delete]
func (h *AccountHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	number := chi.URLParam(r, "number")

	if err := h.accountService.Remove(r.Context(), userID, number); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Account deleted"})
}

// Transactions godoc
//
//	@Summary		Get the account's transaction history
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string	true	"Account number"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Router			/api/user/accounts/{number}/transactions [get]
func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	number := chi.URLParam(r, "number")

	transactions, err := h.accountService.Transactions(r.Context(), userID, number)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Location: tx.Location,
			Amount:   money.FromCents(tx.Amount),
			Date:     tx.Date,
			Memo:     tx.Memo,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			number	path		string					true	"Account number"
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount to deposit"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Router			/api/user/accounts/{number}/deposit [post]
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.mutateBalance(w, r, h.accountService.Deposit)
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	The balance may go negative; no overdraft limit is enforced
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			number	path		string					true	"Account number"
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount to withdraw"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Router			/api/user/accounts/{number}/withdraw [post]
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.mutateBalance(w, r, h.accountService.Withdraw)
}

// AddEntry godoc
//
//	@Summary		Append a manual ledger entry
//	@Description	Records a transaction without moving the balance
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			number	path		string					true	"Account number"
//	@Param			request	body		dto.AddEntryRequestDTO	true	"Ledger entry"
//	@Success		200		{object}	utils.Response	"Entry recorded"
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Router			/api/user/accounts/{number}/memo [post]
func (h *AccountHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	number := chi.URLParam(r, "number")

	var req dto.AddEntryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToCents(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	if err := h.accountService.AddEntry(r.Context(), userID, number, req.Location, amount, req.Memo); err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Entry recorded"})
}

func (h *AccountHandler) mutateBalance(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID int, number string, amount int64) (int64, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	number := chi.URLParam(r, "number")

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToCents(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	balance, err := op(r.Context(), userID, number, amount)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Number:  number,
		Balance: money.FromCents(balance),
	})
}

func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrAccountNotOwned):
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, domain.ErrNonZeroBalance):
		utils.RespondWithError(w, http.StatusConflict, "Account balance is not zero")
	case errors.Is(err, domain.ErrNonPositiveAmount):
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be greater than zero")
	case errors.Is(err, domain.ErrUnknownAccountType):
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown account type")
	case errors.Is(err, idgen.ErrSpaceExhausted):
		utils.RespondWithError(w, http.StatusInternalServerError, "No free identifiers")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
