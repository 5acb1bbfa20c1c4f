package stats

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the stats API onto the given router.
func (s *Store) RegisterRoutes(r chi.Router) {
	r.Get("/api/stats", s.handleSummary)
}

func (s *Store) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.Summarize(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
