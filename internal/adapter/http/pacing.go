package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
)

// handleComputePacing runs the engine over raw line items and delivery rows
// posted in the body. Numbers in the body keep their exact decimal text.
// Invalid JSON results in HTTP 400.
func (h *Handler) handleComputePacing(w http.ResponseWriter, r *http.Request) {
	var req port.ComputePacingReq
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.ComputePacing(r.Context(), req)
	if err != nil {
		h.fail(w, r, "compute pacing", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleCampaignPacing returns per-item and container pacing for a stored
// campaign. The optional as_of query parameter fixes the cutoff date.
func (h *Handler) handleCampaignPacing(w http.ResponseWriter, r *http.Request) {
	req, ok := campaignPacingReq(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.CampaignPacing(r.Context(), req)
	if err != nil {
		h.fail(w, r, "campaign pacing", err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func campaignPacingReq(w http.ResponseWriter, r *http.Request) (port.CampaignPacingReq, bool) {
	req := port.CampaignPacingReq{CampaignID: chi.URLParam(r, "id")}
	if s := r.URL.Query().Get("as_of"); s != "" {
		asOf, err := domain.ParseDate(s)
		if err != nil {
			http.Error(w, "invalid 'as_of' date", http.StatusBadRequest)
			return req, false
		}
		req.AsOf = &asOf
	}
	return req, true
}
