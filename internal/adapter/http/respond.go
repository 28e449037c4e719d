package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adkpi/internal/core/domain"
)

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Contract violations
// answer 400 with the message, missing datasets 404, anything else is
// logged and answered with a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnknownDataset), errors.Is(err, domain.ErrSourceNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("report error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
