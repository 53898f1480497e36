package main

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

// side - one seat of a match: the engine playing it and the strategy it plays.
type side struct {
	engine   engine.Engine
	strategy engine.Strategy
}

type matchRules struct {
	rows           []int
	requiredLength int
	allowShorter   bool
	scoreAgain     bool
}

type result struct {
	score1 int
	score2 int
	moves  int
}

func (that result) winner() entity.Mark {
	switch {
	case that.score1 > that.score2:
		return entity.Player1
	case that.score2 > that.score1:
		return entity.Player2
	default:
		return entity.NoPlayer
	}
}

// playMatch - plays one game to the end. Player1 moves first.
func playMatch(ctx context.Context, mr matchRules, player1, player2 side) (result, error) {
	grid, err := lattice.New(mr.rows)
	if err != nil {
		return result{}, fmt.Errorf("failed to build board: %w", err)
	}

	board := lattice.NewBoard(grid)
	seats := map[entity.Mark]side{entity.Player1: player1, entity.Player2: player2}

	var res result
	turn := entity.Player1
	for !board.Full() {
		seat := seats[turn]

		decision, err := seat.engine.Select(ctx, engine.Request{
			Board:          board,
			Player:         turn,
			RequiredLength: mr.requiredLength,
			AllowShorter:   mr.allowShorter,
			ScoreAgain:     mr.scoreAgain,
			Strategy:       seat.strategy,
		})
		if err != nil {
			return result{}, fmt.Errorf("player %d failed to select: %w", turn, err)
		}

		if !decision.Found {
			break
		}

		outcome, ok := rules.Simulate(decision.Move, board, turn)
		if !ok {
			return result{}, fmt.Errorf("%w: player %d chose a drawn line", rules.ErrInvalidMove, turn)
		}

		board = outcome.Board
		res.moves++
		if turn == entity.Player1 {
			res.score1 += outcome.Score
		} else {
			res.score2 += outcome.Score
		}

		if !outcome.ExtraTurn(mr.scoreAgain) {
			turn = turn.Opponent()
		}
	}

	return res, nil
}
