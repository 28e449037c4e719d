package httpadapter

import (
	"net/http"

	"adkpi/internal/core/domain"
	"adkpi/internal/core/port"
)

// handleListDatasets returns the catalog.
func (h *Handler) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListDatasets(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, list)
}

// handleOverview returns the dashboard tab of a dataset or period.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context(), port.OverviewReq{Scope: scopeOf(r)})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, ov)
}

// handleCountries returns the country summary. The optional `threshold`
// query parameter overrides the configured spend threshold.
func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	threshold, err := thresholdParam(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	groups, err := h.svc.Countries(r.Context(), port.CountriesReq{Scope: scopeOf(r), Threshold: threshold})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, groups)
}

// handleGroups runs the ranking pipeline. It accepts `countries`, `mode`,
// `field` and `top` query parameters.
func (h *Handler) handleGroups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.RankReq{Scope: scopeOf(r), Countries: countriesParam(q)}
	var err error
	if req.Mode, err = modeParam(q, req.Countries); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Field, err = domain.ParseGroupField(q.Get("field")); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.TopN, err = topParam(q); err != nil {
		h.writeError(w, r, err)
		return
	}
	ranking, err := h.svc.RankGroups(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, ranking)
}

// handleFunnel joins a period's groups with its sales file.
func (h *Handler) handleFunnel(w http.ResponseWriter, r *http.Request) {
	top, err := topParam(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	f, err := h.svc.Funnel(r.Context(), port.FunnelReq{Period: scopeOf(r).Period, TopN: top})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, f)
}

// handleCompare lines up two periods given by the `from` and `to` query
// parameters.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	field, err := domain.ParseGroupField(q.Get("field"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	deltas, err := h.svc.Compare(r.Context(), port.CompareReq{
		From:  q.Get("from"),
		To:    q.Get("to"),
		Field: field,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, deltas)
}
