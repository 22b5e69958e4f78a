package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/session"
	"github.com/dom/gameshelf/internal/web"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	view        *View
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, view *View, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, view: view, logger: logger}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, web.PageRegister, web.PageData{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	form := map[string]string{"username": username}

	_, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: username,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, domain.ErrUsernameTaken) {
			h.view.RenderFormError(w, r, http.StatusOK, web.PageRegister, err, form)
			return
		}
		h.view.ServerError(w, r, "register failed", err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, r, http.StatusOK, web.PageLogin, web.PageData{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Username: username,
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.view.RenderFormError(w, r, http.StatusBadRequest, web.PageLogin, err, map[string]string{"username": username})
			return
		}
		h.view.ServerError(w, r, "login failed", err)
		return
	}

	http.SetCookie(w, result.Cookie)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// Logout always clears the cookie, even if the server-side session could
// not be deleted.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if c, err := r.Cookie(session.CookieName); err == nil {
		token = c.Value
	}

	expired, err := h.authService.Logout(r.Context(), token)
	if err != nil {
		h.logger.Warn("session revocation failed",
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.Error(err))
	}

	http.SetCookie(w, expired)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
