package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"wordgame/internal/game"
	"wordgame/views/pages"
)

type HomeHandler struct {
	store *game.Store
}

func NewHomeHandler(store *game.Store) *HomeHandler {
	return &HomeHandler{store: store}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/health", h.health)
	r.Post("/games", h.createGame)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.HomePage())
}

func (h *HomeHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HomeHandler) createGame(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.CreateSession()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create session")
		http.Error(w, "could not start game", http.StatusInternalServerError)
		return
	}
	h.store.EnsureLoop(sess.ID)
	hlog.FromRequest(r).Info().Str("session", sess.ID).Msg("game created")

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, map[string]string{"id": sess.ID})
		return
	}
	http.Redirect(w, r, "/game/"+sess.ID, http.StatusSeeOther)
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json"
}
