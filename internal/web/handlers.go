package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"scoundrel/internal/game"
	"scoundrel/internal/report"
	"scoundrel/internal/session"

	"go.uber.org/zap"
)

// Table is one live game plus the lock that serializes requests on it.
type Table struct {
	mu   sync.Mutex
	Game *game.Game
}

type Server struct {
	Store   session.Store[*Table]
	NewGame func() *game.Game
	Log     *zap.Logger
}

const maxBodyBytes = 1 << 12

var errBadBody = errors.New("bad request body")

func (s *Server) Routes() http.Handler {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/games", s.handleCreate)
	mux.HandleFunc("GET /api/games/{id}", s.handleGet)
	mux.HandleFunc("DELETE /api/games/{id}", s.handleDelete)
	mux.HandleFunc("POST /api/games/{id}/{action}", s.handleAction)
	mux.HandleFunc("GET /api/games/{id}/log.pdf", s.handleLog)
	return mux
}

// POST /api/games
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	g := s.NewGame()
	g.Start()

	id := s.Store.NewID()
	if err := s.Store.Put(ctx, id, &Table{Game: g}); err != nil {
		s.fail(w, "save game", err)
		return
	}
	s.Log.Info("game created", zap.String("game_id", id), zap.Int("deck", g.DeckLen()))
	writeJSON(w, http.StatusCreated, makeView(id, g, game.OutcomeNone))
}

// GET /api/games/{id}
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, ok := s.table(r.Context(), w, id)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	writeJSON(w, http.StatusOK, makeView(id, t.Game, game.OutcomeNone))
}

// DELETE /api/games/{id}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")
	if _, ok := s.table(ctx, w, id); !ok {
		return
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		s.fail(w, "delete game", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type playRequest struct {
	Slot *int `json:"slot"`
}

type weaponRequest struct {
	Use *bool `json:"use"`
}

// POST /api/games/{id}/{action}
//
// Rule violations are not HTTP errors: the game refuses softly and the
// response carries its guidance message.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	action := r.PathValue("action")

	var apply func(g *game.Game) game.Outcome
	switch action {
	case "face":
		apply = func(g *game.Game) game.Outcome { g.FaceRoom(); return game.OutcomeNone }
	case "skip":
		apply = func(g *game.Game) game.Outcome { g.SkipRoom(); return game.OutcomeNone }
	case "continue":
		apply = func(g *game.Game) game.Outcome { g.Continue(); return game.OutcomeNone }
	case "restart":
		apply = func(g *game.Game) game.Outcome { g.Restart(); return game.OutcomeNone }
	case "play":
		var req playRequest
		if err := decode(r, &req); err != nil || req.Slot == nil {
			writeError(w, http.StatusBadRequest, "body must be {\"slot\": 0..3}")
			return
		}
		slot := *req.Slot
		apply = func(g *game.Game) game.Outcome { return g.PlayCard(slot) }
	case "weapon":
		var req weaponRequest
		if err := decode(r, &req); err != nil || req.Use == nil {
			writeError(w, http.StatusBadRequest, "body must be {\"use\": true|false}")
			return
		}
		use := *req.Use
		apply = func(g *game.Game) game.Outcome { return g.AnswerWeaponPrompt(use) }
	default:
		http.NotFound(w, r)
		return
	}

	t, ok := s.table(r.Context(), w, id)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	out := apply(t.Game)
	s.Log.Debug("game action",
		zap.String("game_id", id),
		zap.String("action", action),
		zap.String("state", string(t.Game.State())),
		zap.Int("health", t.Game.Health()),
	)
	if t.Game.Over() && action != "restart" {
		s.Log.Info("game over",
			zap.String("game_id", id),
			zap.Bool("survived", t.Game.Survived()),
			zap.Int("score", t.Game.FinalScore()),
		)
	}
	writeJSON(w, http.StatusOK, makeView(id, t.Game, out))
}

// GET /api/games/{id}/log.pdf
func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	t, ok := s.table(r.Context(), w, id)
	if !ok {
		return
	}
	t.mu.Lock()
	pdf, err := report.Generate(t.Game, "Game "+id)
	t.mu.Unlock()
	if err != nil {
		s.fail(w, "render log", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="dungeon-log.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.Log.Warn("write log", zap.String("game_id", id), zap.Error(err))
	}
}

// table loads a game or writes 404.
func (s *Server) table(ctx context.Context, w http.ResponseWriter, id string) (*Table, bool) {
	t, ok, err := s.Store.Get(ctx, id)
	if err != nil {
		s.fail(w, "load game", err)
		return nil, false
	}
	if !ok || t == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return nil, false
	}
	return t, true
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	s.Log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, op+" failed")
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errBadBody, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
