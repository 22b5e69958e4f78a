package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"unicode/utf8"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/metrics"
	"github.com/dom/gameshelf/internal/password"
	"github.com/dom/gameshelf/internal/repository"
	"github.com/dom/gameshelf/internal/session"
	"go.uber.org/zap"
)

// MaxUsernameLength matches the width of the users.username column.
const MaxUsernameLength = 50

// CredentialPolicy bounds usernames and passwords at registration. Lengths
// are counted in characters; anything below 1 still rejects empty input.
// The upper bound on passwords comes from the hasher, in bytes.
type CredentialPolicy struct {
	MinUsernameLength int
	MinPasswordLength int
}

type AuthService struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	issuer   *session.Issuer
	policy   CredentialPolicy
	logger   *zap.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

func NewAuthService(userRepo repository.UserRepository, hasher password.Hasher, issuer *session.Issuer, policy CredentialPolicy, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		policy:   policy,
		logger:   logger,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	User   *domain.User
	Cookie *http.Cookie
}

func (s *AuthService) validate(input RegisterInput) error {
	minUser := max(s.policy.MinUsernameLength, 1)
	minPass := max(s.policy.MinPasswordLength, 1)

	if n := utf8.RuneCountInString(input.Username); n < minUser {
		return &ValidationError{Field: "username", Code: CodeUsernameTooShort, Limit: minUser}
	} else if n > MaxUsernameLength {
		return &ValidationError{Field: "username", Code: CodeUsernameTooLong, Limit: MaxUsernameLength}
	}
	if utf8.RuneCountInString(input.Password) < minPass {
		return &ValidationError{Field: "password", Code: CodePasswordTooShort, Limit: minPass}
	}
	if limit := s.hasher.MaxPasswordBytes(); limit > 0 && len(input.Password) > limit {
		return &ValidationError{Field: "password", Code: CodePasswordTooLong, Limit: limit}
	}
	return nil
}

// Register creates a user. Uniqueness is left entirely to the store: a
// concurrent duplicate surfaces as domain.ErrUsernameTaken from Create.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := s.validate(input); err != nil {
		metrics.Registrations.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		metrics.Registrations.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: digest,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.Registrations.WithLabelValues(metrics.OutcomeConflict).Inc()
			return nil, domain.ErrUsernameTaken
		}
		metrics.Registrations.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a session cookie. Unknown usernames
// and wrong passwords both return ErrInvalidCredentials, and both pay for a
// full hash verification.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.burnVerification(input.Password)
			metrics.Logins.WithLabelValues(metrics.OutcomeRejected).Inc()
			return nil, ErrInvalidCredentials
		}
		metrics.Logins.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		s.logger.Warn("stored password digest is unreadable", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	if !ok {
		metrics.Logins.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrInvalidCredentials
	}

	s.rehashIfNeeded(ctx, user, input.Password)

	cookie, err := s.issuer.Issue(ctx, user)
	if err != nil {
		metrics.Logins.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	metrics.Logins.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return &AuthResult{User: user, Cookie: cookie}, nil
}

// ResolveSession maps a cookie value to its user. Anonymous requests get
// session.ErrInvalidSession.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.User, error) {
	return s.issuer.Resolve(ctx, token)
}

// Logout revokes the session behind token and returns the cookie that
// clears it. The cookie is returned even when revocation fails.
func (s *AuthService) Logout(ctx context.Context, token string) (*http.Cookie, error) {
	return s.issuer.Revoke(ctx, token)
}

// RevokeSessions ends every session of the named user. It returns
// domain.ErrUserNotFound for unknown usernames.
func (s *AuthService) RevokeSessions(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.issuer.RevokeAll(ctx, user.ID); err != nil {
		return err
	}
	s.logger.Info("all sessions revoked", zap.Uint("user_id", user.ID))
	return nil
}

func (s *AuthService) rehashIfNeeded(ctx context.Context, user *domain.User, plaintext string) {
	if !s.hasher.NeedsRehash(user.PasswordHash) {
		return
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		s.logger.Warn("password rehash failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, digest); err != nil {
		s.logger.Warn("storing rehashed password failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return
	}

	user.PasswordHash = digest
	metrics.PasswordRehashes.Inc()
	s.logger.Info("password digest upgraded", zap.Uint("user_id", user.ID))
}

// burnVerification spends one verification against a digest of the
// configured scheme. Users still on a legacy digest verify at that scheme's
// cost until their next login upgrades them, so their timing can differ from
// an unknown user's by the gap between the two schemes.
func (s *AuthService) burnVerification(plaintext string) {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash("gameshelf-timing-equaliser")
		if err != nil {
			s.logger.Error("dummy digest unavailable", zap.Error(err))
			return
		}
		s.dummyDigest = digest
	})
	if s.dummyDigest != "" {
		_, _ = s.hasher.Verify(plaintext, s.dummyDigest)
	}
}
