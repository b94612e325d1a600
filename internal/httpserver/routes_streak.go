// internal/httpserver/routes_streak.go
//
// Streak mode chains games until the first loss:
//   - POST /streak/new  → create a streak and its first round
//   - POST /streak/next → start the next round after a win
//   - GET  /streak/{id} → current count, points and status
//
// Rounds are ordinary (or scramble) games tagged with the streak ID; their
// outcome is folded into the streak when /game/guess, /game/skip or
// /scramble/guess finishes them.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/selector"
)

func (s *Server) mountStreak(r chi.Router) {
	r.Route("/streak", func(r chi.Router) {
		r.Post("/new", s.handleStreakNew)
		r.Post("/next", s.handleStreakNext)
		r.Get("/{id}", s.handleStreakGet)
	})
}

type streakNewReq struct {
	Difficulty string `json:"difficulty"`
	Scramble   bool   `json:"scramble"`
}
type streakNextReq struct {
	StreakID string `json:"streakId"`
}

// streakRes carries the streak and exactly one of Game or Scramble.
type streakRes struct {
	Streak   *game.Streak `json:"streak"`
	Game     *newGameRes  `json:"game,omitempty"`
	Scramble *scrambleRes `json:"scramble,omitempty"`
}

func (s *Server) handleStreakNew(w http.ResponseWriter, r *http.Request) {
	var req streakNewReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	st := game.NewStreak(selector.ParseMode(req.Difficulty), req.Scramble)
	s.startRound(w, r, st)
}

func (s *Server) handleStreakNext(w http.ResponseWriter, r *http.Request) {
	var req streakNextReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.StreakID == "" {
		writeError(w, http.StatusBadRequest, "missing_streak_id")
		return
	}
	defer s.locks.lock(streakKey(req.StreakID))()
	st, err := s.store.GetStreak(r.Context(), req.StreakID)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	s.startRound(w, r, st)
}

func (s *Server) handleStreakGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	defer s.locks.lock(streakKey(id))()
	st, err := s.store.GetStreak(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, streakRes{Streak: st})
}

// startRound creates the next game of st and stores both.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, st *game.Streak) {
	g, err := st.NextRound(s.roster)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.SaveStreak(r.Context(), st); err != nil {
		writeErr(w, r, err)
		return
	}

	res := streakRes{Streak: st}
	if g.Scramble {
		sr := scrambleResOf(g)
		res.Scramble = &sr
		gamesStarted.WithLabelValues("scramble", string(g.Mode)).Inc()
	} else {
		gr := newGameResOf(g)
		res.Game = &gr
		gamesStarted.WithLabelValues("classic", string(g.Mode)).Inc()
	}
	writeJSON(w, http.StatusOK, res)
}
