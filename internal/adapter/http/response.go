package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"

	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
)

// writeJSON encodes v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail maps a usecase error to a status code. Invalid input is 400, an
// unknown campaign 404 and a billing schedule that does not reconcile 422.
// Anything else is logged and reported as 500 without details.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var mismatch *pacing.BillingMismatchError
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	case errors.As(err, &mismatch):
		h.writeJSON(w, http.StatusUnprocessableEntity, mismatchResp{
			Error:       mismatch.Error(),
			ManualTotal: mismatch.ManualTotal.StringFixed(2),
			BookedTotal: mismatch.BookedTotal.StringFixed(2),
		})
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type mismatchResp struct {
	Error       string `json:"error"`
	ManualTotal string `json:"manualTotal"`
	BookedTotal string `json:"bookedTotal"`
}
