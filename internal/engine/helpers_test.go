package engine

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

func newBoard(t *testing.T, rows []int) *lattice.Board {
	t.Helper()

	grid, err := lattice.New(rows)
	require.NoError(t, err)

	return lattice.NewBoard(grid)
}

func draw(t *testing.T, board *lattice.Board, mark entity.Mark, keys ...string) {
	t.Helper()

	for _, key := range keys {
		index, ok := board.Grid().LineIndex(key)
		require.True(t, ok, "line %s", key)
		require.True(t, board.Draw(index, mark), "line %s", key)
	}
}

func lineIndex(t *testing.T, board *lattice.Board, key string) int {
	t.Helper()

	index, ok := board.Grid().LineIndex(key)
	require.True(t, ok, "line %s", key)

	return index
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
