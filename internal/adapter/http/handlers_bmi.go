package adapthttp

import (
	"net/http"

	"bmicalc/internal/app"
	"bmicalc/internal/domain"
)

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var in app.Input
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := s.assess.Assess(in)
	if err != nil {
		s.writeAssessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app.NewReport(a))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": domain.Categories()})
}
