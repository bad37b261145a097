package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/internal/service"
	"github.com/sparkkhoj/spark-khoj/internal/utils"
	"github.com/sparkkhoj/spark-khoj/models"
)

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.LeaderboardFilter{
		Role:  models.Role(r.URL.Query().Get("role")),
		Sport: r.URL.Query().Get("sport"),
	}

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil || limit == 0 {
			log.Error().Str("limit", rawLimit).Msg("invalid leaderboard limit")
			utils.WriteJSONError(w, msgInvalidLeaderboard, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.services.LeaderboardService.GetLeaderboard(ctx, filter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			log.Err(err).Msg("invalid leaderboard role filter")
			utils.WriteJSONError(w, msgInvalidLeaderboard, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during leaderboard query")
			utils.WriteJSONError(w, msgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	// an empty board serialises as [] rather than null
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
