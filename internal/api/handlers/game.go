package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/gameshelf/internal/api/middleware"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/web"
)

type GameHandler struct {
	gameService *service.GameService
	view        *View
}

func NewGameHandler(gameService *service.GameService, view *View) *GameHandler {
	return &GameHandler{gameService: gameService, view: view}
}

func (h *GameHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, web.PageAddGame, web.PageData{})
}

func (h *GameHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	input := service.AddGameInput{
		Title:  r.PostFormValue("title"),
		Genre:  r.PostFormValue("genre"),
		Status: r.PostFormValue("status"),
	}

	if _, err := h.gameService.AddGame(r.Context(), user.ID, input); err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.view.RenderFormError(w, r, http.StatusOK, web.PageAddGame, err, map[string]string{
				"title":  input.Title,
				"genre":  input.Genre,
				"status": input.Status,
			})
			return
		}
		h.view.ServerError(w, r, "add game failed", err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
