package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"go-laundry/middleware"
	"go-laundry/models"
	"go-laundry/repositories"
	"go-laundry/utils"
)

// AuthController handles account registration and login.
type AuthController struct {
	Accounts repositories.AccountRepository
	Tokens   *utils.TokenManager
}

func NewAuthController(accounts repositories.AccountRepository, tokens *utils.TokenManager) *AuthController {
	return &AuthController{
		Accounts: accounts,
		Tokens:   tokens,
	}
}

// tokenResponse is the body returned by both register and login.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 72)),
	)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Register creates a new account and returns a bearer token for it.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if ac.Accounts == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	var payload registerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	_, err := ac.Accounts.FindByEmail(r.Context(), payload.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("register: account lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	account := models.Account{
		Name:           payload.Name,
		Email:          payload.Email,
		HashedPassword: hashed,
		Role:           "owner",
		IsActive:       true,
	}
	id, err := ac.Accounts.Insert(r.Context(), &account)
	if err != nil {
		log.Printf("register: insert failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := ac.Tokens.Issue(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login authenticates an account and returns a bearer token. Unknown email
// and wrong password produce the exact same response so callers can't probe
// which addresses are registered.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.Accounts == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := payload.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	account, err := ac.Accounts.FindByEmail(r.Context(), payload.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("login: account lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if !utils.CheckPassword(payload.Password, account.HashedPassword) {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := ac.Tokens.Issue(account.ID.Hex())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the account behind the presented bearer token.
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	if ac.Accounts == nil {
		writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}

	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	account, err := ac.Accounts.FindByID(r.Context(), subject)
	if errors.Is(err, repositories.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "Account no longer exists")
		return
	}
	if err != nil {
		log.Printf("me: account lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, account)
}
