package repository

import (
	"context"
	"time"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/google/uuid"
)

// UserRepository is the credential store. Create is the only uniqueness
// check: it returns domain.ErrUsernameTaken when the store rejects a
// duplicate username.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uint, passwordHash string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	ListByUserID(ctx context.Context, userID uint) ([]*domain.Game, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Game    GameRepository
}
