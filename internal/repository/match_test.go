package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/testing/suite"
)

func TestMatchRepository(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	matchRepo := NewMatchRepository(st.Connection)

	finished := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	// Given: two finished matches of one player and one without them
	matches := []*entity.Match{
		{GameID: "g1", Type: entity.WithBotType, Rows: []int{2, 3, 2}, LineLength: 1, Player1ID: "p1", Player2ID: "bot:g1", Score1: 4, Score2: 2, Winner: entity.Player1, Moves: 12, FinishedAt: finished},
		{GameID: "g2", Type: entity.PrivateType, Rows: []int{3, 4, 3}, LineLength: 2, Player1ID: "p2", Player2ID: "p1", Score1: 5, Score2: 5, Winner: entity.NoPlayer, Moves: 19, FinishedAt: finished.Add(time.Hour)},
		{GameID: "g3", Type: entity.PrivateType, Rows: []int{2, 3}, LineLength: 1, Player1ID: "p2", Player2ID: "p3", FinishedAt: finished},
	}

	for _, match := range matches {
		require.NoError(t, matchRepo.Save(ctx, match))
	}

	t.Run("Finds the player's matches newest first", func(t *testing.T) {
		found, err := matchRepo.FindByPlayer(ctx, "p1", 10)

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, matches[1], found[0])
		assert.Equal(t, matches[0], found[1])
	})

	t.Run("Respects the limit", func(t *testing.T) {
		found, err := matchRepo.FindByPlayer(ctx, "p1", 1)

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "g2", found[0].GameID)
	})

	t.Run("Saving a game again replaces its record", func(t *testing.T) {
		updated := *matches[0]
		updated.Score2 = 6
		updated.Winner = entity.Player2
		require.NoError(t, matchRepo.Save(ctx, &updated))

		found, err := matchRepo.FindByPlayer(ctx, "bot:g1", 10)

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, entity.Player2, found[0].Winner)
	})

	t.Run("Unknown player has no matches", func(t *testing.T) {
		found, err := matchRepo.FindByPlayer(ctx, "nobody", 10)

		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
