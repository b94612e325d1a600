// internal/httpserver/server.go
//
// HTTP server wiring for the faustdle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Classic game endpoints: POST /game/new, /game/guess, /game/skip.
//   - Roster lookups, scramble, daily, streak and seed routes (routes_*.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled for the configured client.
//   - All session state lives in the injected store; handlers hold no state.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/faustdle/internal/config"
	"github.com/robalobadob/faustdle/internal/daily"
	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
	"github.com/robalobadob/faustdle/internal/store"
)

// endpoints is advertised by GET /.
var endpoints = []string{
	"/health", "/metrics", "/characters", "/resolve",
	"POST /game/new", "POST /game/guess", "POST /game/skip",
	"POST /scramble/new", "POST /scramble/guess",
	"/daily", "POST /daily/new",
	"POST /streak/new", "POST /streak/next", "/streak/{id}",
	"POST /seed/find",
}

// Server bundles router, roster, session store and settings.
type Server struct {
	r      *chi.Mux
	store  store.Store
	roster *roster.Roster
	cfg    config.Config
	epoch  time.Time
	now    func() time.Time
	locks  *keyedLocks // serializes updates per game and streak ID
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, rs *roster.Roster, st store.Store) (*Server, error) {
	epoch, err := daily.ParseEpoch(cfg.DailyEpoch)
	if err != nil {
		return nil, err
	}
	s := &Server{
		r:      chi.NewRouter(),
		store:  st,
		roster: rs,
		cfg:    cfg,
		epoch:  epoch,
		now:    time.Now,
		locks:  newKeyedLocks(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"service": "faustdle-go", "endpoints": endpoints})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		games, streaks := s.store.Len()
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": games, "streaks": streaks})
	})
	s.r.Handle("/metrics", promhttp.Handler())

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/skip", s.handleSkip)

	s.mountRoster(s.r)
	s.mountScramble(s.r)
	s.mountDaily(s.r)
	s.mountStreak(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// statusClientClosedRequest is the non-standard code nginx logs when the
// client goes away before the response is written.
const statusClientClosedRequest = 499

// writeErr maps domain errors to status codes and stable error codes.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrUnknownName):
		writeError(w, http.StatusBadRequest, "unknown_character")
	case errors.Is(err, game.ErrFinished):
		writeError(w, http.StatusConflict, "game_finished")
	case errors.Is(err, game.ErrNoSkip):
		writeError(w, http.StatusConflict, "no_skip")
	case errors.Is(err, game.ErrStreakOver):
		writeError(w, http.StatusConflict, "streak_over")
	case errors.Is(err, game.ErrRoundPending):
		writeError(w, http.StatusConflict, "round_pending")
	case errors.Is(err, game.ErrForeignGame):
		writeError(w, http.StatusConflict, "foreign_game")
	case errors.Is(err, selector.ErrInsufficientCandidates):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_candidates")
	case errors.Is(err, selector.ErrSeedNotFound):
		writeError(w, http.StatusNotFound, "seed_not_found")
	case errors.Is(err, context.DeadlineExceeded):
		hlog.FromRequest(r).Warn().Err(err).Msg("request timed out")
		writeError(w, http.StatusGatewayTimeout, "timeout")
	case errors.Is(err, context.Canceled):
		hlog.FromRequest(r).Info().Err(err).Msg("request canceled")
		writeError(w, statusClientClosedRequest, "canceled")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// loadGame fetches a game, writing the error response on failure.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_game_id")
		return nil, false
	}
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return nil, false
	}
	return g, true
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "normal" | "hard" | "filler" | ...
	Seed string `json:"seed"` // optional; random when empty
}
type newGameRes struct {
	GameID   string        `json:"gameId"`
	Mode     selector.Mode `json:"mode"`
	Seed     string        `json:"seed"`
	Limit    int           `json:"limit,omitempty"`
	StreakID string        `json:"streakId,omitempty"`
}

func newGameResOf(g *game.Game) newGameRes {
	return newGameRes{GameID: g.ID, Mode: g.Mode, Seed: g.Seed, Limit: g.Limit, StreakID: g.StreakID}
}

// handleNewGame selects a target and stores a fresh session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	mode := selector.ParseMode(req.Mode)
	seed := req.Seed
	switch {
	case mode == selector.ModeDaily:
		seed = daily.Seed(s.now())
	case seed == "":
		seed = selector.RandomSeed()
	}

	g, err := game.New(s.roster, mode, seed, 0)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	gamesStarted.WithLabelValues("classic", string(mode)).Inc()
	hlog.FromRequest(r).Debug().Str("gameId", g.ID).Str("mode", string(mode)).Msg("game started")
	writeJSON(w, http.StatusOK, newGameResOf(g))
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Name    string        `json:"name"`
	Results []game.Result `json:"results"`
	State   string        `json:"state"` // "playing" | "won" | "lost"
	Guesses int           `json:"guesses"`
	Answer  string        `json:"answer,omitempty"`
	Summary string        `json:"summary,omitempty"`
	Streak  *game.Streak  `json:"streak,omitempty"`
}

// handleGuess applies a guess to a stored game. Finished games reveal the
// answer and summary, and streak rounds are folded into their streak.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
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
	guess, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		if errors.Is(err, game.ErrUnknownName) {
			guessesTotal.WithLabelValues("unknown").Inc()
		}
		writeErr(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeErr(w, r, err)
		return
	}
	if state == game.StateWon {
		guessesTotal.WithLabelValues("hit").Inc()
	} else {
		guessesTotal.WithLabelValues("miss").Inc()
	}

	res := guessRes{Name: guess.Name, Results: guess.Results, State: state, Guesses: len(g.History)}
	if g.Finished {
		st, err := s.finish(r, g)
		if err != nil {
			writeErr(w, r, err)
			return
		}
		res.Answer, res.Summary, res.Streak = g.Target.Name, g.Summary(), st
	}
	writeJSON(w, http.StatusOK, res)
}

// skipReq/Res payloads for POST /game/skip.
type skipReq struct {
	GameID string `json:"gameId"`
}
type skipRes struct {
	Answer  string       `json:"answer"`
	State   string       `json:"state"`
	Summary string       `json:"summary"`
	Streak  *game.Streak `json:"streak,omitempty"`
}

// handleSkip gives up a game and reveals the answer.
func (s *Server) handleSkip(w http.ResponseWriter, r *http.Request) {
	var req skipReq
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	defer s.locks.lock(gameKey(req.GameID))()
	g, ok := s.loadGame(w, r, req.GameID)
	if !ok {
		return
	}
	if err := g.GiveUp(); err != nil {
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
	writeJSON(w, http.StatusOK, skipRes{Answer: g.Target.Name, State: g.State(), Summary: g.Summary(), Streak: st})
}

// finish records a finished game in metrics and, for streak rounds, in its
// streak. It returns the updated streak or nil.
func (s *Server) finish(r *http.Request, g *game.Game) (*game.Streak, error) {
	gamesFinished.WithLabelValues(kindOf(g), g.State()).Inc()
	if g.StreakID == "" {
		return nil, nil
	}
	defer s.locks.lock(streakKey(g.StreakID))()
	st, err := s.store.GetStreak(r.Context(), g.StreakID)
	if err != nil {
		return nil, err
	}
	if err := st.Record(g); err != nil {
		return nil, err
	}
	if err := s.store.SaveStreak(r.Context(), st); err != nil {
		return nil, err
	}
	// The response is encoded after the lock is released.
	snapshot := *st
	return &snapshot, nil
}

func kindOf(g *game.Game) string {
	if g.Scramble {
		return "scramble"
	}
	return "classic"
}
