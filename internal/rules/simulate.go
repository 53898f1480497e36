package rules

import (
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

// Outcome - the snapshot produced by a move and the number of triangles it completed.
type Outcome struct {
	Board *lattice.Board
	Score int
}

// ExtraTurn - a scoring player keeps the turn when score-again is on.
func (that Outcome) ExtraTurn(scoreAgain bool) bool {
	return scoreAgain && that.Score > 0
}

// Resolve - fills the lattice indices of a move known only by its segment keys.
func Resolve(grid *lattice.Grid, move entity.Move) (entity.Move, error) {
	lines := make([]int, len(move.Segments))
	for i, key := range move.Segments {
		index, ok := grid.LineIndex(key)
		if !ok {
			return entity.Move{}, fmt.Errorf("%w: %s", lattice.ErrUnknownLine, key)
		}
		lines[i] = index
	}

	move.Lines = lines

	return move, nil
}

// Simulate - applies move for player on a copy of board. It reports false when no segment was
// newly drawn; the input board is never modified.
func Simulate(move entity.Move, board *lattice.Board, player entity.Mark) (Outcome, bool) {
	if len(move.Lines) != len(move.Segments) {
		resolved, err := Resolve(board.Grid(), move)
		if err != nil {
			panic(fmt.Errorf("simulate unresolved move: %w", err))
		}
		move = resolved
	}

	next := board.Clone()

	drawn := false
	for _, line := range move.Lines {
		if next.Draw(line, player) {
			drawn = true
			continue
		}
		next.Share(line, player)
	}

	if !drawn {
		return Outcome{}, false
	}

	score := 0
	for t := range next.Grid().Triangles() {
		if next.Triangle(t).Filled || !next.Closed(t) {
			continue
		}

		next.Fill(t, player)
		score++
	}

	return Outcome{Board: next, Score: score}, true
}
