// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	_ repository.UserRepository    = (*UserRepository)(nil)
	_ repository.SessionRepository = (*SessionRepository)(nil)
	_ repository.GameRepository    = (*GameRepository)(nil)
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdatePasswordHash(ctx context.Context, id uint, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.UserSession)
	return session, args.Error(1)
}

func (m *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type GameRepository struct {
	mock.Mock
}

func (m *GameRepository) Create(ctx context.Context, game *domain.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *GameRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.Game, error) {
	args := m.Called(ctx, userID)
	games, _ := args.Get(0).([]*domain.Game)
	return games, args.Error(1)
}
