package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/repository"
)

type GameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

type AddGameInput struct {
	Title  string
	Genre  string
	Status string
}

func (s *GameService) AddGame(ctx context.Context, userID uint, input AddGameInput) (*domain.Game, error) {
	game := &domain.Game{
		UserID: userID,
		Title:  strings.TrimSpace(input.Title),
		Genre:  strings.TrimSpace(input.Genre),
		Status: strings.TrimSpace(input.Status),
	}

	fields := []struct{ name, value string }{
		{"title", game.Title},
		{"genre", game.Genre},
		{"status", game.Status},
	}
	for _, f := range fields {
		if f.value == "" {
			return nil, &ValidationError{Field: f.name, Code: CodeGameFieldRequired}
		}
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context, userID uint) ([]*domain.Game, error) {
	return s.gameRepo.ListByUserID(ctx, userID)
}
