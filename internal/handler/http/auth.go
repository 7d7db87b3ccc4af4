package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-reviews/internal/logger"
	"github.com/MKhiriev/go-book-reviews/internal/service"
	"github.com/MKhiriev/go-book-reviews/internal/store"
	"github.com/MKhiriev/go-book-reviews/internal/utils"
	"github.com/MKhiriev/go-book-reviews/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, http.StatusBadRequest, "Username and password are required", nil)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Str("username", user.Username).Msg("username already taken")
			writeFailure(w, http.StatusConflict, "User already exists", nil)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeFailure(w, http.StatusInternalServerError, "Error registering user", err)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		User:    registeredUser.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, http.StatusBadRequest, "Invalid JSON was passed", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeFailure(w, http.StatusBadRequest, "Username and password are required", nil)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// one message for both unknown user and wrong password
			log.Err(err).Msg("invalid credentials")
			writeFailure(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeFailure(w, http.StatusInternalServerError, "Error during login", err)
			return
		}
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeFailure(w, http.StatusInternalServerError, "Error during login", err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token.SignedString,
		User: models.PublicProfile{
			Username: foundUser.Username,
			Email:    foundUser.Email,
		},
	}, http.StatusOK)
}
