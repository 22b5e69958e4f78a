package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/gameshelf/internal/api/middleware"
	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/i18n"
	"github.com/dom/gameshelf/internal/service"
	"github.com/dom/gameshelf/internal/web"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// View renders pages in the request's language and owns the generic error
// responses.
type View struct {
	renderer     *web.Renderer
	translator   *i18n.Translator
	logger       *zap.Logger
	gamesEnabled bool
}

func NewView(renderer *web.Renderer, translator *i18n.Translator, logger *zap.Logger, gamesEnabled bool) *View {
	return &View{
		renderer:     renderer,
		translator:   translator,
		logger:       logger,
		gamesEnabled: gamesEnabled,
	}
}

func (v *View) localizer(r *http.Request) *i18n.Localizer {
	return v.translator.For(r.Header.Get("Accept-Language"))
}

// Render fills in the per-request fields of data and writes page.
func (v *View) Render(w http.ResponseWriter, r *http.Request, status int, page string, data web.PageData) {
	loc := v.localizer(r)
	data.Lang = loc.Lang()
	data.T = loc.T
	data.GamesEnabled = v.gamesEnabled
	if data.User == nil {
		data.User, _ = middleware.GetUser(r.Context())
	}

	if err := v.renderer.Render(w, status, page, data); err != nil {
		v.logger.Error("render failed",
			zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
			zap.String("page", page),
			zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// RenderFormError re-renders page with the localized message for err.
func (v *View) RenderFormError(w http.ResponseWriter, r *http.Request, status int, page string, err error, form map[string]string) {
	v.Render(w, r, status, page, web.PageData{
		Error: v.message(r, err),
		Form:  form,
	})
}

// ServerError logs err and answers with a generic 500 page.
func (v *View) ServerError(w http.ResponseWriter, r *http.Request, where string, err error) {
	v.logger.Error(where,
		zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
		zap.Error(err))
	v.Render(w, r, http.StatusInternalServerError, web.PageError, web.PageData{
		Error: v.localizer(r).T("error.internal"),
	})
}

func (v *View) NotFound(w http.ResponseWriter, r *http.Request) {
	v.Render(w, r, http.StatusNotFound, web.PageError, web.PageData{
		Error: v.localizer(r).T("error.not_found"),
	})
}

func (v *View) message(r *http.Request, err error) string {
	loc := v.localizer(r)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		if verr.Limit > 0 {
			return loc.T("error."+verr.Code, verr.Limit)
		}
		return loc.T("error." + verr.Code)
	case errors.Is(err, domain.ErrUsernameTaken):
		return loc.T("error.username_taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		return loc.T("error.invalid_credentials")
	default:
		return loc.T("error.internal")
	}
}
