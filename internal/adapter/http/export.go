package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-pacing/internal/adapter/csvexport"
)

// handleSeriesCSV exports the daily series of every line item and of the
// container as CSV.
func (h *Handler) handleSeriesCSV(w http.ResponseWriter, r *http.Request) {
	req, ok := campaignPacingReq(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.CampaignPacing(r.Context(), req)
	if err != nil {
		h.fail(w, r, "series export", err)
		return
	}
	writeCSV(w, h.logger, csvexport.Filename(req.CampaignID, "series"), csvexport.PacingSeries(resp.Items, resp.Container))
}

// handleDeliveryCSV exports the campaign's normalised delivery rows.
func (h *Handler) handleDeliveryCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rows, err := h.svc.CampaignDelivery(r.Context(), id)
	if err != nil {
		h.fail(w, r, "delivery export", err)
		return
	}
	writeCSV(w, h.logger, csvexport.Filename(id, "delivery"), csvexport.DeliveryRows(rows))
}

// handleBillingCSV exports the billing schedule, one month per line.
func (h *Handler) handleBillingCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	schedule, err := h.svc.BillingSchedule(r.Context(), id)
	if err != nil {
		h.fail(w, r, "billing export", err)
		return
	}
	writeCSV(w, h.logger, csvexport.Filename(id, "billing"), csvexport.BillingRows(*schedule))
}

func writeCSV[T any](w http.ResponseWriter, logger *slog.Logger, filename string, rows []T) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := csvexport.Write(w, rows); err != nil {
		logger.Error("encode csv error", slog.Any("error", err))
	}
}
