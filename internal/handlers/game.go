package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/hlog"

	"wordgame/internal/game"
	"wordgame/internal/viewmodel"
	"wordgame/views/components"
	"wordgame/views/pages"
)

// maxKeysLen bounds one key batch. The page script splits longer input.
const maxKeysLen = 256

type GameHandler struct {
	store    *game.Store
	upgrader websocket.Upgrader
}

func NewGameHandler(store *game.Store) *GameHandler {
	return &GameHandler{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.gamePage)
		r.Get("/state", h.state)
		r.Get("/round", h.roundFragment)
		r.Post("/keys", h.keys)
		r.Post("/check", h.check)
		r.Get("/stream", h.stream)
		r.Get("/ws", h.socket)
	})
}

func (h *GameHandler) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	sess, ok := h.store.GetSession(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}
	h.store.EnsureLoop(sess.ID)
	return sess, true
}

func (h *GameHandler) gamePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	render(w, r, pages.GamePage(viewmodel.GamePage{
		Title:  "Word Game",
		Config: viewmodel.GameConfig{ID: sess.ID, MaxKeys: maxKeysLen},
		Round:  viewmodel.FromSnapshot(sess.Snapshot()),
	}))
}

func (h *GameHandler) state(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewmodel.FromSnapshot(sess.Snapshot()))
}

func (h *GameHandler) roundFragment(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	render(w, r, components.RoundFragment(viewmodel.FromSnapshot(sess.Snapshot())))
}

type keysResponse struct {
	Results []game.ScoreResult      `json:"results"`
	Round   viewmodel.RoundFragment `json:"round"`
}

func (h *GameHandler) keys(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	input := r.FormValue("keys")
	if input == "" || len(input) > maxKeysLen {
		writeError(w, http.StatusBadRequest, "keys required")
		return
	}
	results, err := sess.HandleKeys(input)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	h.store.Wake(sess.ID)
	writeJSON(w, http.StatusOK, keysResponse{
		Results: results,
		Round:   viewmodel.FromSnapshot(sess.Snapshot()),
	})
}

func (h *GameHandler) check(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	word := r.FormValue("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word required")
		return
	}
	res, err := sess.CheckWord(word)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	h.store.Wake(sess.ID)
	writeJSON(w, http.StatusOK, res)
}

func (h *GameHandler) writeGameError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, game.ErrNotActive), errors.Is(err, game.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrPrecondition):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("game request")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *GameHandler) stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub, cancel, ok := h.store.Subscribe(sess.ID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	defer cancel()

	sendRound := func() {
		html := renderToString(r, components.RoundFragment(viewmodel.FromSnapshot(sess.Snapshot())))
		writeSSE(w, "round", html)
		flusher.Flush()
	}
	sendRound()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, open := <-sub:
			if !open {
				return
			}
			// One render covers every event queued so far.
			for len(sub) > 0 {
				<-sub
			}
			sendRound()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

func (h *GameHandler) socket(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	logger := hlog.FromRequest(r).With().Str("session", sess.ID).Logger()
	logger.Info().Msg("websocket connected")

	client := newSocketClient(conn, sess, h.store, logger)
	client.run()
	logger.Info().Msg("websocket disconnected")
}
