package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/internal/utils"
	"github.com/sparkkhoj/spark-khoj/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			utils.WriteJSONError(w, msgMissingFields, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidRole):
			log.Err(err).Msg("invalid role provided")
			utils.WriteJSONError(w, msgInvalidRole, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSONError(w, msgEmailTaken, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: msgRegistered,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		// Not-found and wrong-password answers stay distinguishable.
		// The original service exposed the difference and the client
		// copy depends on it.
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid login data provided")
			utils.WriteJSONError(w, msgMissingCredentials, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSONError(w, msgUserNotFound, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSONError(w, msgPasswordIncorrect, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  foundUser,
	}, http.StatusOK)
}
