package engine

import (
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

// greedy - takes the biggest capture, otherwise a random move after which the opponent cannot
// capture, otherwise any random move.
func (that *engine) greedy(generator *rules.Generator, req Request) (Decision, error) {
	moves := generator.Legal(req.Board)
	if len(moves) == 0 {
		return Decision{}, nil
	}

	var (
		best      entity.Move
		bestScore int
		safe      []entity.Move
		unsafe    []entity.Move
	)

	for _, move := range moves {
		outcome, ok := rules.Simulate(move, req.Board, req.Player)
		if !ok {
			continue
		}

		if outcome.Score > bestScore {
			best, bestScore = move, outcome.Score
			continue
		}

		if canCapture(generator, outcome.Board, req.Player.Opponent()) {
			unsafe = append(unsafe, move)
		} else {
			safe = append(safe, move)
		}
	}

	decision := Decision{Candidates: len(moves), Value: float64(bestScore)}

	switch {
	case bestScore > 0:
		decision.Move, decision.Found = best, true
	case len(safe) > 0:
		decision.Move, decision.Found = safe[that.intn(len(safe))], true
	case len(unsafe) > 0:
		decision.Move, decision.Found = unsafe[that.intn(len(unsafe))], true
	}

	return decision, nil
}

func canCapture(generator *rules.Generator, board *lattice.Board, player entity.Mark) bool {
	for _, move := range generator.Legal(board) {
		if outcome, ok := rules.Simulate(move, board, player); ok && outcome.Score > 0 {
			return true
		}
	}
	return false
}
