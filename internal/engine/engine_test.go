package engine

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

func TestEngine_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("Takes an open triangle", func(t *testing.T) {
		for _, player := range []entity.Mark{entity.Player1, entity.Player2} {
			// Given: the left triangle misses one line
			board := newBoard(t, []int{2, 3})
			draw(t, board, entity.Player1, leftOuter, leftBottom)

			engine := New(discardLogger(), Config{Depth: 2, Seed: 7}, nil)

			// When: a move is selected
			decision, err := engine.Select(ctx, Request{Board: board, Player: player, RequiredLength: 1})

			// Then: the closing line is chosen
			require.NoError(t, err)
			require.True(t, decision.Found)
			assert.Equal(t, []string{leftShared}, decision.Move.Segments, "player %d", player)
			assert.Equal(t, 5, decision.Candidates)
		}
	})

	t.Run("Reports a full board as no legal move", func(t *testing.T) {
		board := newBoard(t, []int{2, 3})
		draw(t, board, entity.Player1, leftOuter, leftBottom, leftShared, middleTop, middleRight, rightBottom, rightOuter)

		engine := New(discardLogger(), Config{Depth: 3}, nil)

		for _, strategy := range []Strategy{StrategyMinimax, StrategyGreedy} {
			decision, err := engine.Select(ctx, Request{Board: board, Player: entity.Player2, RequiredLength: 1, Strategy: strategy})

			require.NoError(t, err)
			assert.False(t, decision.Found, "strategy %s", strategy)
		}
	})

	t.Run("Never scores first on edge disjoint triangles", func(t *testing.T) {
		// Given: three triangles of the hexagon that share no line
		layout, err := lattice.New([]int{2, 3, 2})
		require.NoError(t, err)

		lines := map[string]entity.LineState{}
		for _, key := range []string{
			"0,0_1,0", "1,0_1,1", "0,0_1,1",
			"0,1_1,1", "1,1_1,2", "0,1_1,2",
			"1,1_2,0", "2,0_2,1", "1,1_2,1",
		} {
			lines[key] = entity.LineState{}
		}

		grid, board, err := lattice.FromState(layout.Layout(), lines, nil)
		require.NoError(t, err)
		require.Equal(t, 3, grid.TriangleCount())

		// Then: no first move completes a triangle
		generator := rules.NewGenerator(grid, rules.Options{RequiredLength: 1})
		for _, move := range generator.Legal(board) {
			outcome, ok := rules.Simulate(move, board, entity.Player1)
			require.True(t, ok)
			assert.Equal(t, 0, outcome.Score)
		}

		engine := New(discardLogger(), Config{Depth: 2}, nil)
		for _, player := range []entity.Mark{entity.Player1, entity.Player2} {
			decision, err := engine.Select(ctx, Request{Board: board, Player: player, RequiredLength: 1})
			require.NoError(t, err)
			require.True(t, decision.Found)

			outcome, ok := rules.Simulate(decision.Move, board, player)
			require.True(t, ok)
			assert.Equal(t, 0, outcome.Score)
		}
	})

	t.Run("Rejects invalid requests", func(t *testing.T) {
		board := newBoard(t, []int{2, 3})

		_, err := New(discardLogger(), Config{}, nil).Select(ctx, Request{Board: board, Player: entity.NoPlayer, RequiredLength: 1})
		assert.ErrorIs(t, err, ErrInvalidPlayer)

		_, err = New(discardLogger(), Config{Depth: -1}, nil).Select(ctx, Request{Board: board, Player: entity.Player1, RequiredLength: 1})
		assert.ErrorIs(t, err, ErrInvalidDepth)

		_, err = New(discardLogger(), Config{}, nil).Select(ctx, Request{Board: board, Player: entity.Player1, RequiredLength: 1, Strategy: "random"})
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		rows, err := lattice.Preset("medium")
		require.NoError(t, err)
		board := newBoard(t, rows)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = New(discardLogger(), Config{Depth: 4}, nil).Select(cancelled, Request{Board: board, Player: entity.Player1, RequiredLength: 1})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEngine_PruningMatchesFullWidth(t *testing.T) {
	for _, scoreAgain := range []bool{false, true} {
		// Given: a partly played hexagon
		board := newBoard(t, []int{2, 3, 2})
		draw(t, board, entity.Player1, leftOuter, middleRight)
		draw(t, board, entity.Player2, leftBottom)

		req := Request{Board: board, Player: entity.Player2, RequiredLength: 1, ScoreAgain: scoreAgain}

		// When: the same decision is searched with and without pruning
		pruned, err := New(discardLogger(), Config{Depth: 3, Seed: 1}, nil).Select(context.Background(), req)
		require.NoError(t, err)

		full, err := New(discardLogger(), Config{Depth: 3, Seed: 1, DisablePruning: true}, nil).Select(context.Background(), req)
		require.NoError(t, err)

		// Then: both agree on the value and pruning visits fewer nodes
		assert.InDelta(t, full.Value, pruned.Value, 1e-9, "score again %v", scoreAgain)
		assert.LessOrEqual(t, pruned.Stats.Nodes, full.Stats.Nodes)
	}
}

func TestEngine_CacheDoesNotChangeValue(t *testing.T) {
	for _, policy := range []string{PolicyLRU, PolicyReset} {
		t.Run(policy, func(t *testing.T) {
			// Given: single segment moves without extra turns, so a position is always reached
			// with the same remaining depth
			board := newBoard(t, []int{2, 3, 2})
			draw(t, board, entity.Player1, leftOuter)
			draw(t, board, entity.Player2, middleTop)

			req := Request{Board: board, Player: entity.Player1, RequiredLength: 1, Strategy: StrategyWinning}

			cache, err := NewCache(policy, 0)
			require.NoError(t, err)

			cached := New(discardLogger(), Config{Depth: 4, Seed: 3}, cache)
			uncached := New(discardLogger(), Config{Depth: 4, Seed: 3}, nil)

			// When: the decision is searched with and without the table, twice with it
			want, err := uncached.Select(context.Background(), req)
			require.NoError(t, err)

			first, err := cached.Select(context.Background(), req)
			require.NoError(t, err)

			second, err := cached.Select(context.Background(), req)
			require.NoError(t, err)

			// Then: the values agree and the warm table is used
			assert.InDelta(t, want.Value, first.Value, 1e-9)
			assert.InDelta(t, want.Value, second.Value, 1e-9)
			assert.Positive(t, cached.CacheLen())
			assert.Positive(t, second.Stats.CacheHits)
			assert.Less(t, second.Stats.Nodes, first.Stats.Nodes)
		})
	}
}

func TestEngine_SeededSelectionIsDeterministic(t *testing.T) {
	board := newBoard(t, []int{3, 4, 3})
	req := Request{Board: board, Player: entity.Player1, RequiredLength: 1}

	first, err := New(discardLogger(), Config{Depth: 1, Seed: 42}, nil).Select(context.Background(), req)
	require.NoError(t, err)

	second, err := New(discardLogger(), Config{Depth: 1, Seed: 42}, nil).Select(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Move.Segments, second.Move.Segments)
}

func TestEngine_WeightOverrides(t *testing.T) {
	// Given: a weight set that rewards player 1 for exposing threats
	board := newBoard(t, []int{2, 3})
	reward := 1000.0
	req := Request{
		Board:          board,
		Player:         entity.Player1,
		RequiredLength: 1,
		Weights:        &entity.WeightOverrides{P1ThreatVal: &reward},
	}

	// When: a one-ply decision is made
	decision, err := New(discardLogger(), Config{Depth: 1, Seed: 5}, nil).Select(context.Background(), req)

	// Then: the override is part of the evaluation
	require.NoError(t, err)
	assert.True(t, decision.Found)
	assert.InDelta(t, 0, decision.Value, 1e-9, "a single line on an empty board creates no threat")
}

func TestSearcher_ExtraTurn(t *testing.T) {
	board := newBoard(t, []int{2, 3})
	generator := rules.NewGenerator(board.Grid(), rules.Options{RequiredLength: 1})

	scoring := rules.Outcome{Score: 1}
	quiet := rules.Outcome{Score: 0}

	t.Run("A scoring move keeps the side and depth", func(t *testing.T) {
		search := newSearcher(context.Background(), generator, searchContext{scoreAgain: true}, nil, true)

		depth, maximizing := search.advance(3, true, scoring)
		assert.Equal(t, 3, depth)
		assert.True(t, maximizing)

		depth, maximizing = search.advance(3, true, quiet)
		assert.Equal(t, 2, depth)
		assert.False(t, maximizing)
	})

	t.Run("Without score again the turn always passes", func(t *testing.T) {
		search := newSearcher(context.Background(), generator, searchContext{}, nil, true)

		depth, maximizing := search.advance(3, false, scoring)
		assert.Equal(t, 2, depth)
		assert.True(t, maximizing)
	})
}

func TestEngine_Greedy(t *testing.T) {
	t.Run("Takes the biggest capture", func(t *testing.T) {
		// Given: one line closes two triangles
		board := newBoard(t, []int{2, 3})
		draw(t, board, entity.Player1, leftOuter, leftBottom, middleTop, middleRight)

		decision, err := New(discardLogger(), Config{}, nil).Select(context.Background(), Request{
			Board: board, Player: entity.Player2, RequiredLength: 1, Strategy: StrategyGreedy,
		})

		require.NoError(t, err)
		require.True(t, decision.Found)
		assert.Equal(t, []string{leftShared}, decision.Move.Segments)
		assert.InDelta(t, 2, decision.Value, 1e-9)
	})

	t.Run("Avoids handing over a triangle", func(t *testing.T) {
		// Given: only lines of the right triangle leave the opponent without a capture
		board := newBoard(t, []int{2, 3})
		draw(t, board, entity.Player1, leftOuter, middleTop)

		for range 10 {
			decision, err := New(discardLogger(), Config{}, nil).Select(context.Background(), Request{
				Board: board, Player: entity.Player2, RequiredLength: 1, Strategy: StrategyGreedy,
			})

			require.NoError(t, err)
			require.True(t, decision.Found)

			outcome, ok := rules.Simulate(decision.Move, board, entity.Player2)
			require.True(t, ok)
			assert.Equal(t, 0, Analyze(outcome.Board).P1Threats+Analyze(outcome.Board).P2Threats)
		}
	})
}

func TestAdaptiveDepth(t *testing.T) {
	testCases := []struct {
		undrawn int
		length  int
		depth   int
	}{
		{undrawn: 40, length: 2, depth: 3},
		{undrawn: 29, length: 2, depth: 4},
		{undrawn: 14, length: 2, depth: 5},
		{undrawn: 9, length: 2, depth: 7},
		{undrawn: 9, length: 1, depth: 4},
		{undrawn: 40, length: 1, depth: 3},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.depth, AdaptiveDepth(tc.undrawn, tc.length), "undrawn %d length %d", tc.undrawn, tc.length)
	}
}

func TestEngine_Fallback(t *testing.T) {
	// Given: moves generated before leftOuter was drawn
	board := newBoard(t, []int{2, 3})
	generator := rules.NewGenerator(board.Grid(), rules.Options{RequiredLength: 1})

	bySegment := map[string]entity.Move{}
	for _, move := range generator.Legal(board) {
		bySegment[move.Segments[0]] = move
	}
	stale, fresh := bySegment[leftOuter], bySegment[middleTop]

	draw(t, board, entity.Player1, leftOuter)

	selector := New(discardLogger(), Config{}, nil).(*engine)
	req := Request{Board: board, Player: entity.Player2, RequiredLength: 1}

	t.Run("Skips moves that no longer validate", func(t *testing.T) {
		require.False(t, selector.playable(generator, stale, req))

		move, ok := selector.fallback(generator, []entity.Move{stale, fresh}, req)

		require.True(t, ok)
		assert.Equal(t, []string{middleTop}, move.Segments)
	})

	t.Run("Reports no move when nothing validates", func(t *testing.T) {
		_, ok := selector.fallback(generator, []entity.Move{stale}, req)

		assert.False(t, ok)
	})
}

func TestEngine_MaxBranch(t *testing.T) {
	// Given: the left triangle of the hexagon misses one line
	board := newBoard(t, []int{2, 3, 2})
	draw(t, board, entity.Player1, leftOuter, leftBottom)
	req := Request{Board: board, Player: entity.Player2, RequiredLength: 1}

	// When: the decision is searched with one move per interior node and with all of them
	limited, err := New(discardLogger(), Config{Depth: 3, Seed: 1, MaxBranch: 1}, nil).Select(context.Background(), req)
	require.NoError(t, err)

	full, err := New(discardLogger(), Config{Depth: 3, Seed: 1}, nil).Select(context.Background(), req)
	require.NoError(t, err)

	// Then: every root move is still scored, the capture is taken and fewer nodes are visited
	require.True(t, limited.Found)
	assert.Equal(t, []string{leftShared}, limited.Move.Segments)
	assert.Equal(t, full.Candidates, limited.Candidates)
	assert.Less(t, limited.Stats.Nodes, full.Stats.Nodes)
}

func TestEngine_Timeout(t *testing.T) {
	// Given: an expired deadline and a full width search on the medium board, so the
	// deadline is noticed in the middle of the root moves
	rows, err := lattice.Preset("medium")
	require.NoError(t, err)
	board := newBoard(t, rows)

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	selector := New(discardLogger(), Config{Depth: 2, Seed: 1, DisablePruning: true}, nil)

	// When: a move is selected
	decision, err := selector.Select(expired, Request{Board: board, Player: entity.Player1, RequiredLength: 1})

	// Then: the moves scored so far still produce a decision
	require.NoError(t, err)
	assert.True(t, decision.Partial)
	assert.True(t, decision.Found)
	assert.Positive(t, decision.Candidates)
	assert.Less(t, decision.Candidates, board.Grid().LineCount())
}

func TestEngine_Logging(t *testing.T) {
	// Given: an engine built from a plain debug logger
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	board := newBoard(t, []int{2, 3})

	// When: a move is selected
	_, err := New(logger, Config{Depth: 1, Seed: 1}, nil).Select(context.Background(), Request{Board: board, Player: entity.Player1, RequiredLength: 1})
	require.NoError(t, err)

	// Then: the decision record names the component once
	records := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, records, 1)
	assert.Equal(t, 1, strings.Count(records[0], `"component":`))
	assert.Contains(t, records[0], `"component":"engine"`)
	assert.Contains(t, records[0], `"method":"Select"`)
}
