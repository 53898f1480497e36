package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

func TestPosition_Play(t *testing.T) {
	t.Run("Closing a triangle keeps the turn under score-again", func(t *testing.T) {
		// Given: The left triangle misses only its shared line
		game := newGame(t, entity.PrivateType, lengthOneSettings(true), map[string]entity.Mark{
			leftOuter:  entity.Player2,
			leftBottom: entity.Player2,
		})
		pos, err := loadPosition(game)
		require.NoError(t, err)

		// When: Player1 draws the shared line
		outcome, err := pos.play(game, validMove(t, game, dot(0, 0), dot(1, 1)), entity.Player1)

		// Then: Player1 scores and moves again
		require.NoError(t, err)
		assert.Equal(t, 1, outcome.Score)
		assert.Equal(t, 1, game.Score1)
		assert.Equal(t, entity.Player1, game.Turn)
		assert.Len(t, game.Moves, 1)
		assert.True(t, game.Lines[leftShared].Drawn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Closing a triangle passes the turn without score-again", func(t *testing.T) {
		// Given: The same position with score-again off
		game := newGame(t, entity.PrivateType, lengthOneSettings(false), map[string]entity.Mark{
			leftOuter:  entity.Player2,
			leftBottom: entity.Player2,
		})
		pos, err := loadPosition(game)
		require.NoError(t, err)

		// When: Player1 draws the shared line
		_, err = pos.play(game, validMove(t, game, dot(0, 0), dot(1, 1)), entity.Player1)

		// Then: The point counts but the turn passes
		require.NoError(t, err)
		assert.Equal(t, 1, game.Score1)
		assert.Equal(t, entity.Player2, game.Turn)
	})

	t.Run("Drawing the last line finishes the game", func(t *testing.T) {
		// Given: Every line but the right outer one is drawn
		game := newGame(t, entity.PrivateType, lengthOneSettings(true), map[string]entity.Mark{
			leftOuter:   entity.Player1,
			leftBottom:  entity.Player2,
			leftShared:  entity.Player1,
			middleTop:   entity.Player2,
			middleRight: entity.Player1,
			rightBottom: entity.Player2,
		})
		game.Score1 = 2
		pos, err := loadPosition(game)
		require.NoError(t, err)

		// When: Player2 closes the right triangle
		_, err = pos.play(game, validMove(t, game, dot(0, 1), dot(1, 2)), entity.Player2)

		// Then: The game is over and Player1 wins two to one
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.Player1, game.Winner)
		assert.Equal(t, 1, game.Score2)
	})

	t.Run("Unknown segment is rejected", func(t *testing.T) {
		// Given: A move referring to a line outside the lattice
		game := newGame(t, entity.PrivateType, lengthOneSettings(true), nil)
		pos, err := loadPosition(game)
		require.NoError(t, err)

		// When: Playing it
		_, err = pos.play(game, entity.Move{Segments: []string{"5,5_5,6"}}, entity.Player1)

		// Then: It is an invalid move and the game is untouched
		require.ErrorIs(t, err, rules.ErrInvalidMove)
		assert.Empty(t, game.Moves)
	})
}
