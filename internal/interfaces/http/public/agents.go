package public

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
)

func (h *Handler) agentListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		roster, err := h.listings.Agents(ctx)
		if err != nil {
			h.fail(w, err, "failed to load agents", nil)
			return
		}

		items := make([]agentSummaryResponse, 0, len(roster))
		for _, entry := range roster {
			items = append(items, agentSummaryResponse{
				agentResponse: toAgentResponse(entry.Agent),
				ListingCount:  entry.ListingCount,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) agentDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		profile, err := h.listings.Agent(ctx, id)
		if err != nil {
			if errors.Is(err, catalogapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "agent not found")
				return
			}
			h.fail(w, err, "failed to load agent", logrus.Fields{"id": id})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, agentProfileResponse{
			Agent:    toAgentResponse(profile.Agent),
			Listings: toPropertyResponses(profile.Listings),
		})
	}
}
