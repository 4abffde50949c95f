package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/dkarpov/teller/internal/domain"
	"github.com/dkarpov/teller/internal/dto"
	"github.com/dkarpov/teller/pkg/idgen"
	"github.com/dkarpov/teller/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=mocks.go -package=auth

type Service interface {
	Register(ctx context.Context, firstName, lastName, pin string) (*domain.User, error)
	Login(ctx context.Context, userID int, pin string) (*domain.User, error)
	Logout(ctx context.Context)
	GenerateToken(userID int) (string, error)
}

// The PIN contract with the terminal: exactly four digits.
var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new customer
//	@Description	Create a customer with a four-digit PIN; a default Checking account is opened
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or PIN"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "First and last name are required")
		return
	}
	if !pinPattern.MatchString(req.PIN) {
		utils.RespondWithError(w, http.StatusBadRequest, "PIN must be exactly 4 digits")
		return
	}
	user, err := h.authService.Register(r.Context(), req.FirstName, req.LastName, req.PIN)
	if err != nil {
		if errors.Is(err, idgen.ErrSpaceExhausted) {
			utils.RespondWithError(w, http.StatusInternalServerError, "No free identifiers")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		UserID:  user.ID,
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate customer
//	@Description	Log in with user ID and PIN and get a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Login(r.Context(), req.UserID, req.PIN)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Welcome! " + user.Name(),
	})
}

// Logout godoc
//
//	@Summary		End the active session
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Logged out"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Logged out"})
}
