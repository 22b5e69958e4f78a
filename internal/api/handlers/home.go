package handlers

import (
	"net/http"

	"github.com/dom/gameshelf/internal/web"
)

type HomeHandler struct {
	view *View
}

func NewHomeHandler(view *View) *HomeHandler {
	return &HomeHandler{view: view}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, web.PageIndex, web.PageData{})
}
