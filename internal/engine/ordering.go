package engine

import (
	"slices"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

const (
	capturePriority = 100
	exposePriority  = -10
)

// Priority - ranks a move for search order: completing a triangle first, handing the opponent a
// two-edge triangle last.
func Priority(move entity.Move, board *lattice.Board) int {
	completes, exposes := false, false

	for i, tri := range board.Grid().Triangles() {
		if board.Triangle(i).Filled {
			continue
		}

		touched, others := false, 0
		for _, index := range tri.Lines {
			if slices.Contains(move.Lines, index) {
				touched = true
			} else if board.Line(index).Drawn {
				others++
			}
		}

		if !touched {
			continue
		}

		switch others {
		case 2:
			completes = true
		case 1:
			exposes = true
		}
	}

	switch {
	case completes:
		return capturePriority
	case exposes:
		return exposePriority
	default:
		return 0
	}
}

// Order - stable sort by descending priority. Moves of equal priority keep their input order.
func Order(moves []entity.Move, board *lattice.Board) []entity.Move {
	type ranked struct {
		move     entity.Move
		priority int
	}

	ranking := make([]ranked, len(moves))
	for i, move := range moves {
		ranking[i] = ranked{move: move, priority: Priority(move, board)}
	}

	slices.SortStableFunc(ranking, func(a, b ranked) int {
		return b.priority - a.priority
	})

	ordered := make([]entity.Move, len(ranking))
	for i, r := range ranking {
		ordered[i] = r.move
	}

	return ordered
}
