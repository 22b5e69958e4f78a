package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/repository/mocks"
	"github.com/dom/gameshelf/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameService_AddGame(t *testing.T) {
	tests := []struct {
		name      string
		input     service.AddGameInput
		storeErr  error
		wantField string
		wantErr   bool
	}{
		{
			name:  "valid game",
			input: service.AddGameInput{Title: "  Hades ", Genre: "Roguelike", Status: "playing"},
		},
		{
			name:      "missing title",
			input:     service.AddGameInput{Genre: "Roguelike", Status: "playing"},
			wantField: "title",
		},
		{
			name:      "blank genre",
			input:     service.AddGameInput{Title: "Hades", Genre: "   ", Status: "playing"},
			wantField: "genre",
		},
		{
			name:      "missing status",
			input:     service.AddGameInput{Title: "Hades", Genre: "Roguelike"},
			wantField: "status",
		},
		{
			name:     "store failure",
			input:    service.AddGameInput{Title: "Hades", Genre: "Roguelike", Status: "playing"},
			storeErr: errors.New("db down"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := &mocks.GameRepository{}
			games.On("Create", mock.Anything, mock.AnythingOfType("*domain.Game")).Return(tt.storeErr).Maybe()
			svc := service.NewGameService(games)

			game, err := svc.AddGame(context.Background(), 42, tt.input)

			switch {
			case tt.wantField != "":
				var verr *service.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.ErrorIs(t, err, service.ErrGameFieldRequired)
				games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			case tt.wantErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrValidation)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(42), game.UserID)
				assert.Equal(t, "Hades", game.Title)
			}
		})
	}
}

func TestGameService_ListGames(t *testing.T) {
	games := &mocks.GameRepository{}
	want := []*domain.Game{{ID: 1, UserID: 5, Title: "Celeste"}}
	games.On("ListByUserID", mock.Anything, uint(5)).Return(want, nil)

	got, err := service.NewGameService(games).ListGames(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
