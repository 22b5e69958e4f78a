package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dom/gameshelf/internal/api/middleware"
	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubResolver struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (s *stubResolver) ResolveSession(_ context.Context, token string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, session.ErrInvalidSession
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		w.Write([]byte("anonymous"))
		return
	}
	w.Write([]byte(user.Username))
}

func TestAuth(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice"}

	tests := []struct {
		name         string
		cookie       *http.Cookie
		resolverErr  error
		wantStatus   int
		wantLocation string
		wantBody     string
		wantCalls    int
	}{
		{
			name:       "valid session",
			cookie:     &http.Cookie{Name: session.CookieName, Value: "good"},
			wantStatus: http.StatusOK,
			wantBody:   "alice",
			wantCalls:  1,
		},
		{
			name:         "no cookie",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "empty cookie",
			cookie:       &http.Cookie{Name: session.CookieName, Value: ""},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:         "unknown token",
			cookie:       &http.Cookie{Name: session.CookieName, Value: "forged"},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
			wantCalls:    1,
		},
		{
			name:        "store failure",
			cookie:      &http.Cookie{Name: session.CookieName, Value: "good"},
			resolverErr: errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubResolver{users: map[string]*domain.User{"good": alice}, err: tt.resolverErr}
			handler := middleware.Auth(resolver, zap.NewNop())(http.HandlerFunc(echoUser))

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, resolver.calls)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestOptionalUser(t *testing.T) {
	alice := &domain.User{ID: 1, Username: "alice"}

	tests := []struct {
		name        string
		cookie      string
		resolverErr error
		wantBody    string
	}{
		{name: "authenticated", cookie: "good", wantBody: "alice"},
		{name: "anonymous", wantBody: "anonymous"},
		{name: "invalid token", cookie: "forged", wantBody: "anonymous"},
		{name: "store failure degrades to anonymous", cookie: "good", resolverErr: errors.New("boom"), wantBody: "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &stubResolver{users: map[string]*domain.User{"good": alice}, err: tt.resolverErr}
			handler := middleware.OptionalUser(resolver, zap.NewNop())(http.HandlerFunc(echoUser))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetUser_Empty(t *testing.T) {
	_, ok := middleware.GetUser(context.Background())
	assert.False(t, ok)

	_, ok = middleware.GetUser(middleware.WithUser(context.Background(), nil))
	assert.False(t, ok)
}
