// Package session binds a successful login to the user_id cookie.
//
// The cookie value is an HS256-signed JWT whose jti names a server-side
// session record and whose sub names the user. A cookie resolves only when
// the signature verifies, the record still exists, belongs to the same user
// and has not expired, so deleting the record logs the browser out.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie. Despite the name its value is a signed
// token, never a raw user id.
const CookieName = "user_id"

// ErrInvalidSession means the request is anonymous: no cookie, a forged or
// expired token, or a revoked session.
var ErrInvalidSession = errors.New("invalid session")

type Options struct {
	Secret []byte
	// TTL bounds the server-side session. Zero means sessions live until
	// logout.
	TTL    time.Duration
	Secure bool
}

type Issuer struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	opts     Options
	now      func() time.Time
}

func NewIssuer(sessions repository.SessionRepository, users repository.UserRepository, opts Options) *Issuer {
	return &Issuer{
		sessions: sessions,
		users:    users,
		opts:     opts,
		now:      time.Now,
	}
}

type claims struct {
	jwt.RegisteredClaims
}

// Issue creates a session for user and returns the cookie carrying it.
func (i *Issuer) Issue(ctx context.Context, user *domain.User) (*http.Cookie, error) {
	now := i.now()

	sess := &domain.UserSession{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
	}
	if i.opts.TTL > 0 {
		sess.ExpiresAt = now.Add(i.opts.TTL)
	}

	if err := i.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sess.ID.String(),
			Subject:  strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if !sess.ExpiresAt.IsZero() {
		c.ExpiresAt = jwt.NewNumericDate(sess.ExpiresAt)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.opts.Secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return i.cookie(token), nil
}

// Resolve returns the user a cookie value belongs to. Anonymous requests get
// ErrInvalidSession; store failures are returned as-is.
func (i *Issuer) Resolve(ctx context.Context, value string) (*domain.User, error) {
	sessionID, userID, err := i.parse(value, true)
	if err != nil {
		return nil, err
	}

	sess, err := i.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess.UserID != userID {
		return nil, ErrInvalidSession
	}
	if sess.Expired(i.now()) {
		_ = i.sessions.Delete(ctx, sess.ID)
		return nil, ErrInvalidSession
	}

	user, err := i.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("load session user: %w", err)
	}
	return user, nil
}

// Revoke deletes the session behind value, if the token is genuine, and
// returns the cookie that clears it from the browser. Expired tokens are
// still honoured so their records get removed.
func (i *Issuer) Revoke(ctx context.Context, value string) (*http.Cookie, error) {
	sessionID, _, err := i.parse(value, false)
	if err != nil {
		return i.ClearCookie(), nil
	}

	if err := i.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return i.ClearCookie(), fmt.Errorf("delete session: %w", err)
	}
	return i.ClearCookie(), nil
}

// RevokeAll deletes every session belonging to userID.
func (i *Issuer) RevokeAll(ctx context.Context, userID uint) error {
	if err := i.sessions.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete sessions of user %d: %w", userID, err)
	}
	return nil
}

// ClearCookie returns a cookie instructing the browser to drop the session.
func (i *Issuer) ClearCookie() *http.Cookie {
	c := i.cookie("")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}

func (i *Issuer) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   i.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (i *Issuer) parse(value string, validateClaims bool) (uuid.UUID, uint, error) {
	if value == "" {
		return uuid.Nil, 0, ErrInvalidSession
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	var c claims
	_, err := jwt.ParseWithClaims(value, &c, func(*jwt.Token) (interface{}, error) {
		return i.opts.Secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	sessionID, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, 0, fmt.Errorf("%w: bad session id", ErrInvalidSession)
	}
	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || userID == 0 {
		return uuid.Nil, 0, fmt.Errorf("%w: bad subject", ErrInvalidSession)
	}

	return sessionID, uint(userID), nil
}
