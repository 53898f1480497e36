package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

// Line keys of the two-row lattice [2,3]. Left and middle triangles share leftShared.
const (
	leftOuter   = "0,0_1,0"
	leftBottom  = "1,0_1,1"
	leftShared  = "0,0_1,1"
	middleTop   = "0,0_0,1"
	middleRight = "0,1_1,1"
	rightBottom = "1,1_1,2"
	rightOuter  = "0,1_1,2"
)

var twoRows = []int{2, 3}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func dot(row, col int) entity.Dot {
	return entity.Dot{Row: row, Col: col}
}

// newGame - an ongoing game with the given lines already drawn. Triangles they close are
// credited to Player1.
func newGame(t *testing.T, gameType string, settings entity.Settings, drawn map[string]entity.Mark) *entity.Game {
	t.Helper()

	grid, err := lattice.New(settings.Rows)
	require.NoError(t, err)

	board := lattice.NewBoard(grid)
	for key, mark := range drawn {
		index, ok := grid.LineIndex(key)
		require.True(t, ok, "line %s", key)
		require.True(t, board.Draw(index, mark), "line %s", key)
	}

	for index := range grid.Triangles() {
		if board.Closed(index) {
			board.Fill(index, entity.Player1)
		}
	}

	game := entity.NewGame("game1", gameType, settings)
	game.Status = entity.StatusOngoing
	game.Lines = board.LineStates()
	game.Triangles = board.TriangleStates()

	return game
}

func lengthOneSettings(scoreAgain bool) entity.Settings {
	return entity.Settings{
		Rows:               twoRows,
		RequiredLineLength: 1,
		ScoreAgain:         scoreAgain,
	}
}

// validMove - resolves the line between two dots on the game's current board.
func validMove(t *testing.T, game *entity.Game, from, to entity.Dot) entity.Move {
	t.Helper()

	pos, err := loadPosition(game)
	require.NoError(t, err)

	move, ok := pos.generator.Validate(from, to, pos.board)
	require.True(t, ok)

	return move
}
