package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"mesa-pacing/internal/core/port"
)

// handleBilling returns the month-bucketed billing schedule of a campaign.
func (h *Handler) handleBilling(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.svc.BillingSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "billing schedule", err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedule)
}

type manualBillingBody struct {
	Months map[string]decimal.Decimal `json:"months"`
}

// handleManualBilling validates a hand-entered month to amount schedule.
// Amounts may be JSON numbers or strings. A schedule whose total differs
// from the booked total is rejected with HTTP 422 and never adjusted.
func (h *Handler) handleManualBilling(w http.ResponseWriter, r *http.Request) {
	var body manualBillingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	schedule, err := h.svc.ApplyManualBilling(r.Context(), port.ManualBillingReq{
		CampaignID: chi.URLParam(r, "id"),
		Months:     body.Months,
	})
	if err != nil {
		h.fail(w, r, "manual billing", err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedule)
}
