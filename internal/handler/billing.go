package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adriagold/billnotice/internal/handler/dto"
	"github.com/adriagold/billnotice/internal/middleware"
	"github.com/adriagold/billnotice/internal/service"
)

// Error codes for the billing endpoint. The taxonomy is part of the API
// contract; messages may change, codes may not.
const (
	CodeInvalidArgument    = "invalid-argument"
	CodeNotFound           = "not-found"
	CodeFailedPrecondition = "failed-precondition"
	CodeInternal           = "internal"
)

// BillingHandler handles HTTP requests for billing notices.
type BillingHandler struct {
	svc    *service.NoticeService
	logger *slog.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(svc *service.NoticeService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		svc:    svc,
		logger: logger,
	}
}

// SendNotice handles POST /api/v1/billing/notices.
func (h *BillingHandler) SendNotice(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body.")
		return
	}

	result, err := h.svc.SendNotice(r.Context(), req.UserID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SendNoticeResponse{
		Success: result.Sent,
		Message: result.Message,
	})
}

// handleServiceError maps service errors to the error code taxonomy.
func (h *BillingHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrMissingUserID):
		writeError(w, http.StatusBadRequest, CodeInvalidArgument, "User ID is required.")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "User not found.")
	case errors.Is(err, service.ErrNotConfigured):
		writeError(w, http.StatusPreconditionFailed, CodeFailedPrecondition,
			"Email delivery is not configured on the server. Contact the administrator.")
	default:
		h.logger.Error("billing notice request failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, CodeInternal, "Failed to send the billing notice.")
	}
}
