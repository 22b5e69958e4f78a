package handlers

import (
	"net/http"

	"github.com/dom/gameshelf/internal/api/middleware"
	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/web"
)

type ProfileHandler struct {
	gameService  *service.GameService
	view         *View
	gamesEnabled bool
}

func NewProfileHandler(gameService *service.GameService, view *View, gamesEnabled bool) *ProfileHandler {
	return &ProfileHandler{gameService: gameService, view: view, gamesEnabled: gamesEnabled}
}

// Show renders the current user and, when the games feature is on, the
// games they own.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var games []*domain.Game
	if h.gamesEnabled {
		var err error
		games, err = h.gameService.ListGames(r.Context(), user.ID)
		if err != nil {
			h.view.ServerError(w, r, "list games failed", err)
			return
		}
	}

	h.view.Render(w, r, http.StatusOK, web.PageProfile, web.PageData{
		User:  user,
		Games: games,
	})
}
