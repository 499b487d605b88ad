package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
)

func (h *Handler) inquiryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		var req inquiryRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxInquiryRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		result, err := h.inquiries.Submit(ctx, req.toCommand())
		if err != nil {
			if errors.Is(err, inquiryapp.ErrValidation) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.fail(w, err, "failed to submit inquiry", logrus.Fields{"kind": req.Kind})
			return
		}

		h.logger.WithFields(logrus.Fields{
			"inquiry_id": result.Inquiry.ID,
			"kind":       result.Inquiry.Kind,
		}).Info("inquiry received")

		common.WriteJSON(h.logger, w, http.StatusCreated, inquiryCreatedResponse{
			ID:        result.Inquiry.ID,
			Kind:      string(result.Inquiry.Kind),
			Status:    string(result.Inquiry.Status),
			Receipt:   result.Receipt,
			CreatedAt: result.Inquiry.CreatedAt,
		})
	}
}

func (h *Handler) inquiryStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		receipt := strings.TrimSpace(r.URL.Query().Get("receipt"))
		if receipt == "" {
			receipt = strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		}
		if receipt == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "receipt is required")
			return
		}

		inquiry, err := h.inquiries.Status(ctx, receipt)
		if err != nil {
			switch {
			case errors.Is(err, inquiryapp.ErrInvalidReceipt):
				common.WriteError(h.logger, w, http.StatusUnauthorized, "invalid receipt")
			case errors.Is(err, inquiryapp.ErrNotFound):
				common.WriteError(h.logger, w, http.StatusNotFound, "inquiry not found")
			default:
				h.fail(w, err, "failed to load inquiry status", nil)
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, toInquiryStatusResponse(*inquiry))
	}
}
