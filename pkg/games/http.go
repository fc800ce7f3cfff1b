package games

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/MrSolution07/SquidGame/pkg/domain"
	"github.com/MrSolution07/SquidGame/pkg/storage"
)

// RunGameHttp plays a game configured by the JSON request body. Fields
// missing from the body keep their defaults, an empty body runs the
// classic setup.
func (s *Service) RunGameHttp(w http.ResponseWriter, r *http.Request) {
	cfg := domain.DefaultConfig()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid config body: "+err.Error(), http.StatusBadRequest)
		return
	}

	report, err := s.Run(cfg)
	if errors.Is(err, domain.ErrInvalidConfig) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Err(err).Msg("failed to run game")
		http.Error(w, "failed to run game", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, report)
}

// ListReportsHttp lists stored report summaries.
func (s *Service) ListReportsHttp(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.Summaries()
	if err != nil {
		log.Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetReportHttp returns one full stored report.
func (s *Service) GetReportHttp(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := s.Report(id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Err(err).Str("report", id).Msg("failed to get report")
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}
