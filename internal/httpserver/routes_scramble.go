// internal/httpserver/routes_scramble.go
//
// Scramble mode: the player sees five decoy rows already compared against a
// hidden target and gets exactly one guess.
//   - POST /scramble/new   → start a scramble game, returns the decoy rows
//   - POST /scramble/guess → submit the single guess

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/selector"
)

func (s *Server) mountScramble(r chi.Router) {
	r.Route("/scramble", func(r chi.Router) {
		r.Post("/new", s.handleScrambleNew)
		r.Post("/guess", s.handleScrambleGuess)
	})
}

type scrambleRes struct {
	GameID   string        `json:"gameId"`
	Mode     selector.Mode `json:"mode"`
	Seed     string        `json:"seed"`
	Rows     []game.Guess  `json:"rows"`
	StreakID string        `json:"streakId,omitempty"`
}

func scrambleResOf(g *game.Game) scrambleRes {
	return scrambleRes{GameID: g.ID, Mode: g.Mode, Seed: g.Seed, Rows: g.Decoys, StreakID: g.StreakID}
}

// handleScrambleNew builds a variant set for the requested mode and seed.
func (s *Server) handleScrambleNew(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	mode := selector.ParseMode(req.Mode)
	seed := req.Seed
	if seed == "" {
		seed = selector.RandomSeed()
	}

	g, err := game.NewScramble(s.roster, mode, seed)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	gamesStarted.WithLabelValues("scramble", string(mode)).Inc()
	writeJSON(w, http.StatusOK, scrambleResOf(g))
}

type scrambleGuessRes struct {
	Correct bool          `json:"correct"`
	Name    string        `json:"name"`
	Results []game.Result `json:"results"`
	Answer  string        `json:"answer"`
	Summary string        `json:"summary"`
	Streak  *game.Streak  `json:"streak,omitempty"`
}

// handleScrambleGuess applies the one allowed guess and reveals the answer.
func (s *Server) handleScrambleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	defer s.locks.lock(gameKey(req.GameID))()
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	if !g.Scramble {
		writeError(w, http.StatusBadRequest, "not_scramble")
		return
	}
	guess, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	st, err := s.finish(r, g)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scrambleGuessRes{
		Correct: state == game.StateWon,
		Name:    guess.Name,
		Results: guess.Results,
		Answer:  g.Target.Name,
		Summary: g.Summary(),
		Streak:  st,
	})
}
