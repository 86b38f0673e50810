package adapthttp

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"bmicalc/internal/app"
)

func (s *Server) handleAssessmentCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var in app.Input
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user := userFromContext(r)
	rec, a, err := s.assess.Record(r.Context(), user.ID, in)
	if err != nil {
		s.writeAssessError(w, err)
		return
	}

	s.log.Debug("assessment recorded",
		zap.Int64("user_id", user.ID),
		zap.Int64("id", rec.ID),
		zap.Float64("bmi", rec.BMI),
	)
	writeJSON(w, http.StatusCreated, map[string]any{
		"today":      localDayString(time.Now()),
		"entry":      rec,
		"assessment": app.NewReport(a),
	})
}

func (s *Server) handleAssessmentToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	today := localDayString(time.Now())
	entry, err := s.assess.Latest(r.Context(), userFromContext(r).ID, today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "entry": entry})
}

func (s *Server) handleAssessmentRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", app.DefaultRecentLimit)
	items, err := s.assess.ListRecent(r.Context(), userFromContext(r).ID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleAssessmentUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	deleted, entry, today, err := s.assess.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted, "today": today, "entry": entry})
}
