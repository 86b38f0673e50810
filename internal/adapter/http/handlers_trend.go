package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"bmicalc/internal/app"
)

func (s *Server) handleTrendDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	days := intQuery(r, "days", 90)
	unit := r.URL.Query().Get("unit")
	if unit == "" {
		unit = "kg"
	}

	points, err := s.trend.GetDaily(r.Context(), userFromContext(r).ID, days, unit)
	if errors.Is(err, app.ErrValidation) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  len(points),
		"unit":  unit,
		"today": localDayString(time.Now()),
		"items": points,
	})
}
