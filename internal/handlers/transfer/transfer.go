package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/internal/dto"
	"github.com/dkarpov/teller/pkg/auth"
	"github.com/dkarpov/teller/pkg/money"
	"github.com/dkarpov/teller/pkg/utils"
)

//go:generate mockgen -source=transfer.go -destination=mocks.go -package=transfer

type Service interface {
	Transfer(ctx context.Context, userID int, from, to string, amount int64) (fromBalance, toBalance int64, err error)
}

type TransferHandler struct {
	transferService Service
}

func New(transferService Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Transfer godoc
//
//	@Summary		Transfer funds between accounts
//	@Description	Atomically debit the source and credit the destination; the source must belong to the authenticated customer
//	@Tags			Transfer
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO	"Post-transfer balances"
//	@Failure		400		{object}	utils.Response	"Same account or invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transfer [post]
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToCents(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	fromBalance, toBalance, err := h.transferService.Transfer(r.Context(), userID, req.From, req.To, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSameAccount):
			utils.RespondWithError(w, http.StatusBadRequest, "Source and destination accounts are the same")
		case errors.Is(err, domain.ErrNonPositiveAmount):
			utils.RespondWithError(w, http.StatusBadRequest, "Amount must be greater than zero")
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
		case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrAccountNotOwned):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, domain.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "User not authorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		FromBalance: money.FromCents(fromBalance),
		ToBalance:   money.FromCents(toBalance),
	})
}
