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

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("profile owner no longer exists")
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during profile lookup")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("id", userID).Msg("invalid profile update provided")
			utils.WriteJSONError(w, msgInvalidUpdate, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("profile owner no longer exists")
			utils.WriteJSONError(w, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during profile update")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
