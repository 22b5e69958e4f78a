package postgres

import (
	"context"

	"github.com/dom/gameshelf/internal/domain"
	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *gameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.Game, error) {
	var games []*domain.Game
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
