package public

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/domain"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
)

func (h *Handler) propertyListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		query := r.URL.Query()
		criteria, err := parseCriteria(query)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		properties, err := h.listings.List(ctx, criteria)
		if err != nil {
			h.fail(w, err, "failed to search listings", logrus.Fields{"query": r.URL.RawQuery})
			return
		}

		total := len(properties)
		page, limit, paged := parsePaging(query, total)
		if paged {
			start, end := common.Paginate(total, page, limit)
			properties = properties[start:end]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, propertyListResponse{
			Items: toPropertyResponses(properties),
			Total: total,
			Page:  page,
			Limit: limit,
		})
	}
}

func (h *Handler) propertyFeaturedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		properties, err := h.listings.Featured(ctx)
		if err != nil {
			h.fail(w, err, "failed to load featured listings", nil)
			return
		}
		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(properties) {
			properties = properties[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": toPropertyResponses(properties),
		})
	}
}

func (h *Handler) propertyNearbyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		query := r.URL.Query()
		lat, err := common.ParseCoordinate("lat", query.Get("lat"), 90)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		lng, err := common.ParseCoordinate("lng", firstValue(query, "lng", "lon"), 180)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}
		radius := common.DefaultNearbyRadiusMiles
		if parsed, err := common.ParseOptionalFloat("radius", query.Get("radius")); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		} else if parsed != nil {
			radius = *parsed
		}

		results, err := h.listings.Nearby(ctx, lat, lng, radius)
		if err != nil {
			h.fail(w, err, "failed to search nearby listings", logrus.Fields{"lat": lat, "lng": lng})
			return
		}

		items := make([]nearbyPropertyResponse, 0, len(results))
		for _, result := range results {
			items = append(items, nearbyPropertyResponse{
				propertyResponse: toPropertyResponse(result.Property),
				DistanceMiles:    result.DistanceMiles,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items":       items,
			"radiusMiles": radius,
		})
	}
}

func (h *Handler) propertyDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		detail, err := h.listings.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, catalogapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "property not found")
				return
			}
			h.fail(w, err, "failed to load listing", logrus.Fields{"id": id})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, toDetailResponse(*detail))
	}
}

func (h *Handler) propertySimilarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		limit, _ := common.ParsePositiveInt(r.URL.Query().Get("limit"), catalogapp.SimilarLimit)
		properties, err := h.listings.Similar(ctx, id, limit)
		if err != nil {
			if errors.Is(err, catalogapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "property not found")
				return
			}
			h.fail(w, err, "failed to load similar listings", logrus.Fields{"id": id})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": toPropertyResponses(properties),
		})
	}
}

func (h *Handler) taxonomyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types := domain.PropertyTypes()
		options := make([]propertyTypeOption, 0, len(types))
		for _, t := range types {
			options = append(options, propertyTypeOption{Value: t.String(), Label: t.Label()})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, taxonomyResponse{
			Amenities:     fixture.Amenities(),
			PropertyTypes: options,
		})
	}
}
