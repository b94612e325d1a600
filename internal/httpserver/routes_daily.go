// internal/httpserver/routes_daily.go
//
// HTTP routes for the Daily Challenge.
// Exposes two endpoints under /daily:
//   - GET  /daily     → today's date, puzzle number and seed
//   - POST /daily/new → start a daily game (mode "daily", seeded by date)
//
// Every player gets the same target on the same UTC day because the seed is
// derived from the date alone. Daily games cannot be skipped; guesses go
// through POST /game/guess like any other game.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/faustdle/internal/daily"
	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/selector"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

// today returns the challenge for the current UTC day.
func (s *Server) today() daily.Challenge {
	return daily.For(s.now(), s.epoch)
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.today())
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	newGameRes
	Date   string `json:"date"`
	Number int    `json:"number"`
}

// handleDailyNew creates a fresh session for today's challenge.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	c := s.today()
	g, err := game.New(s.roster, selector.ModeDaily, c.Seed, 0)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	gamesStarted.WithLabelValues("classic", string(selector.ModeDaily)).Inc()
	writeJSON(w, http.StatusOK, dailyNewRes{newGameRes: newGameResOf(g), Date: c.Date, Number: c.Number})
}
