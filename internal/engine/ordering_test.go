package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

func TestPriority(t *testing.T) {
	// Given: the left triangle has two of its lines drawn
	board := newBoard(t, []int{2, 3})
	draw(t, board, entity.Player1, leftOuter, leftBottom)

	move := func(key string) entity.Move {
		return entity.Move{Segments: []string{key}, Lines: []int{lineIndex(t, board, key)}}
	}

	// Then: closing it ranks first, touching a one-edge triangle ranks last
	assert.Equal(t, capturePriority, Priority(move(leftShared), board))
	assert.Equal(t, 0, Priority(move(middleTop), board))
	assert.Equal(t, 0, Priority(move(rightOuter), board))

	draw(t, board, entity.Player2, rightBottom)
	assert.Equal(t, exposePriority, Priority(move(rightOuter), board))
}

func TestOrder(t *testing.T) {
	// Given: a board where exactly one move closes a triangle
	board := newBoard(t, []int{2, 3})
	draw(t, board, entity.Player1, leftOuter, leftBottom)

	generator := rules.NewGenerator(board.Grid(), rules.Options{RequiredLength: 1})
	moves := generator.Legal(board)
	require.Len(t, moves, 5)

	// When: the moves are ordered
	ordered := Order(moves, board)

	// Then: the capture leads, the rest keep their relative order by priority
	require.Len(t, ordered, len(moves))
	assert.Equal(t, []string{leftShared}, ordered[0].Segments)

	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, Priority(ordered[i-1], board), Priority(ordered[i], board))
	}

	var neutral []string
	for _, move := range moves {
		if Priority(move, board) == 0 {
			neutral = append(neutral, move.Segments[0])
		}
	}

	var orderedNeutral []string
	for _, move := range ordered {
		if Priority(move, board) == 0 {
			orderedNeutral = append(orderedNeutral, move.Segments[0])
		}
	}

	assert.Equal(t, neutral, orderedNeutral)
}
