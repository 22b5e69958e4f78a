package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/session"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// SessionResolver maps a session cookie value to its user.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*domain.User, error)
}

// Auth guards protected routes. Anonymous requests are sent to /login with
// 303 See Other before the wrapped handler runs.
func Auth(resolver SessionResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolve(r, resolver)
			if err != nil {
				if errors.Is(err, session.ErrInvalidSession) {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
					return
				}
				logger.Error("session lookup failed",
					zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
					zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalUser attaches the current user when there is one and otherwise
// lets the request through anonymously.
func OptionalUser(resolver SessionResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolve(r, resolver)
			if err != nil {
				if !errors.Is(err, session.ErrInvalidSession) {
					logger.Warn("session lookup failed",
						zap.String("request_id", chiMiddleware.GetReqID(r.Context())),
						zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func resolve(r *http.Request, resolver SessionResolver) (*domain.User, error) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, session.ErrInvalidSession
	}
	return resolver.ResolveSession(r.Context(), cookie.Value)
}

func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok && user != nil
}
