// internal/httpserver/routes_roster.go
//
// Read-only roster lookups and the seed search:
//   - GET  /characters?mode= → names eligible under mode (autocomplete list)
//   - GET  /resolve?name=    → canonical name for typed input or 404
//   - POST /seed/find        → a seed whose target is the named character

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/faustdle/internal/selector"
)

func (s *Server) mountRoster(r chi.Router) {
	r.Get("/characters", s.handleCharacters)
	r.Get("/resolve", s.handleResolve)
	r.Post("/seed/find", s.handleFindSeed)
}

type charactersRes struct {
	Mode  selector.Mode `json:"mode"`
	Names []string      `json:"names"`
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	mode := selector.ParseMode(r.URL.Query().Get("mode"))
	eligible := selector.ListEligible(s.roster, mode)
	names := make([]string, 0, len(eligible))
	for _, e := range eligible {
		names = append(names, e.Name)
	}
	writeJSON(w, http.StatusOK, charactersRes{Mode: mode, Names: names})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	name, ok := s.roster.Resolve(r.URL.Query().Get("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_character")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

type findSeedReq struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}
type findSeedRes struct {
	Name string        `json:"name"`
	Mode selector.Mode `json:"mode"`
	Seed string        `json:"seed"`
}

// handleFindSeed searches for a seed that selects the named character.
// The search is bounded by SEED_SEARCH_ATTEMPTS and the request context.
func (s *Server) handleFindSeed(w http.ResponseWriter, r *http.Request) {
	var req findSeedReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	name, ok := s.roster.Resolve(req.Name)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_character")
		return
	}
	mode := selector.ParseMode(req.Mode)

	start := time.Now()
	seed, err := selector.FindSeed(r.Context(), s.roster, name, mode, s.cfg.SeedSearchAttempts)
	seedSearchDuration.Observe(time.Since(start).Seconds())
	switch {
	case err == nil:
		seedSearches.WithLabelValues("found").Inc()
	case errors.Is(err, selector.ErrSeedNotFound):
		seedSearches.WithLabelValues("not_found").Inc()
	default:
		seedSearches.WithLabelValues("error").Inc()
	}
	if err != nil {
		hlog.FromRequest(r).Info().Err(err).Str("name", name).Str("mode", string(mode)).Msg("seed search failed")
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, findSeedRes{Name: name, Mode: mode, Seed: seed})
}
