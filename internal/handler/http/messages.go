package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/store"
	"github.com/sparkkhoj/spark-khoj/internal/utils"
	"github.com/sparkkhoj/spark-khoj/models"
)

// getMessages serves both messaging reads: with a `with` query parameter it
// returns the full conversation with that user, oldest first; without it,
// the caller's inbox (latest message per correspondent).
func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	rawWith := r.URL.Query().Get("with")
	if rawWith == "" {
		conversations, err := h.services.MessageService.GetConversations(ctx, userID)
		if err != nil {
			log.Err(err).Int64("user", userID).Msg("unexpected error occurred during conversations lookup")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}

		if conversations == nil {
			conversations = []models.Conversation{}
		}
		utils.WriteJSON(w, conversations, http.StatusOK)
		return
	}

	correspondentID, err := strconv.ParseInt(rawWith, 10, 64)
	if err != nil {
		log.Err(err).Str("with", rawWith).Msg("invalid correspondent id")
		utils.WriteJSONError(w, msgInvalidMessage, http.StatusBadRequest)
		return
	}

	messages, err := h.services.MessageService.GetConversation(ctx, userID, correspondentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("with", correspondentID).Msg("invalid conversation request")
			utils.WriteJSONError(w, msgInvalidMessage, http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user", userID).Msg("unexpected error occurred during conversation lookup")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	if messages == nil {
		messages = []models.Message{}
	}
	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	sent, err := h.services.MessageService.SendMessage(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Int64("sender", userID).Msg("invalid message provided")
			utils.WriteJSONError(w, msgInvalidMessage, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrRecipientNotFound):
			log.Err(err).Int64("recipient", req.RecipientID).Msg("recipient not found")
			utils.WriteJSONError(w, msgRecipientNotFound, http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("sender", userID).Msg("unexpected error occurred during message send")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, sent, http.StatusCreated)
}
