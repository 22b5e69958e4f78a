package service

import (
	"fmt"

	"github.com/dom/gameshelf/internal/config"
	"github.com/dom/gameshelf/internal/password"
	"github.com/dom/gameshelf/internal/repository"
	"github.com/dom/gameshelf/internal/session"
	"go.uber.org/zap"
)

type Services struct {
	Auth *AuthService
	Game *GameService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	hasher, err := password.New(password.Scheme(cfg.HashScheme), password.Options{
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	issuer := session.NewIssuer(repos.Session, repos.User, session.Options{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})

	policy := CredentialPolicy{
		MinUsernameLength: cfg.MinUsernameLength,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	return &Services{
		Auth: NewAuthService(repos.User, hasher, issuer, policy, logger.Named("auth")),
		Game: NewGameService(repos.Game),
	}, nil
}
