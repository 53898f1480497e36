package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

// importedBoards - the hexagon with two lines of its last triangle drawn, imported once with every
// triangle and once with only the first two.
func importedBoards(t *testing.T) (*lattice.Board, *lattice.Board) {
	t.Helper()

	board := newBoard(t, []int{2, 3, 2})
	last := board.Grid().TriangleCount() - 1
	keys := board.Grid().TriangleKeys(last)
	draw(t, board, entity.Player1, keys[0], keys[1])

	lines := board.LineStates()
	triangles := board.TriangleStates()

	_, full, err := lattice.FromState(board.Grid().Layout(), lines, triangles)
	require.NoError(t, err)

	_, reduced, err := lattice.FromState(board.Grid().Layout(), lines, triangles[:2])
	require.NoError(t, err)

	return full, reduced
}

func TestSearchContext_Fingerprint(t *testing.T) {
	sc := searchContext{weights: entity.DefaultWeights(), requiredLength: 1}

	t.Run("Covers the triangle topology", func(t *testing.T) {
		full, reduced := importedBoards(t)

		assert.NotEqual(t, sc.fingerprint(full.Grid()), sc.fingerprint(reduced.Grid()))
	})

	t.Run("Covers dot coordinates", func(t *testing.T) {
		board := newBoard(t, []int{2, 3})

		layout := board.Grid().Layout()
		layout[1][2].X += 10

		moved, _, err := lattice.FromState(layout, board.LineStates(), board.TriangleStates())
		require.NoError(t, err)

		assert.NotEqual(t, sc.fingerprint(board.Grid()), sc.fingerprint(moved))
	})

	t.Run("Is stable for the same grid", func(t *testing.T) {
		board := newBoard(t, []int{2, 3, 2})

		grid, err := lattice.New([]int{2, 3, 2})
		require.NoError(t, err)

		assert.Equal(t, sc.fingerprint(board.Grid()), sc.fingerprint(grid))
	})
}

func TestSearcher_CacheIsScopedToTheGrid(t *testing.T) {
	ctx := context.Background()

	// Given: two imported boards that differ only in their triangles, and one shared table
	full, reduced := importedBoards(t)
	sc := searchContext{weights: entity.DefaultWeights(), requiredLength: 1}
	opts := rules.Options{RequiredLength: 1}

	cache, err := NewCache(PolicyLRU, 0)
	require.NoError(t, err)

	// When: the full board warms the table before the reduced board is searched
	fullValue, err := newSearcher(ctx, rules.NewGenerator(full.Grid(), opts), sc, cache, true).
		search(full, 1, false, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)

	want, err := newSearcher(ctx, rules.NewGenerator(reduced.Grid(), opts), sc, nil, true).
		search(reduced, 1, false, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)

	warm := newSearcher(ctx, rules.NewGenerator(reduced.Grid(), opts), sc, cache, true)
	got, err := warm.search(reduced, 1, false, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)

	// Then: the reduced board ignores the entries of the full one
	assert.Less(t, fullValue, want, "player 1 closes the last triangle only on the full board")
	assert.InDelta(t, want, got, 1e-9)
	assert.Zero(t, warm.stats.CacheHits)
}

func TestHasher_Key(t *testing.T) {
	board := newBoard(t, []int{2, 3})
	keys := newHasher(1)

	empty := keys.key(board, true)
	assert.NotEqual(t, empty, keys.key(board, false), "side to move")

	draw(t, board, entity.Player1, leftOuter)
	player1 := keys.key(board, true)
	assert.NotEqual(t, empty, player1)

	other := newBoard(t, []int{2, 3})
	draw(t, other, entity.Player2, leftOuter)
	assert.NotEqual(t, player1, keys.key(other, true), "line owner")

	assert.NotEqual(t, player1, newHasher(2).key(board, true), "search context")
}
