package service

import (
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

// position - the live board of a stored game and the move generator for its rules.
type position struct {
	generator *rules.Generator
	board     *lattice.Board
}

func loadPosition(game *entity.Game) (*position, error) {
	grid, err := lattice.New(game.Settings.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	board, err := lattice.BoardFromState(grid, game.Lines, game.Triangles)
	if err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	return &position{
		generator: rules.NewGenerator(grid, rules.Options{
			RequiredLength: game.Settings.RequiredLineLength,
			AllowShorter:   game.Settings.AllowShorterLines,
		}),
		board: board,
	}, nil
}

// play - applies move for mark and advances the game: running score, extra turn under
// score-again, and the end of the game once the board is full or no legal move is left.
func (that *position) play(game *entity.Game, move entity.Move, mark entity.Mark) (rules.Outcome, error) {
	move, err := rules.Resolve(that.board.Grid(), move)
	if err != nil {
		return rules.Outcome{}, fmt.Errorf("%w: %w", rules.ErrInvalidMove, err)
	}

	outcome, ok := rules.Simulate(move, that.board, mark)
	if !ok {
		return rules.Outcome{}, fmt.Errorf("%w: nothing left to draw", rules.ErrInvalidMove)
	}

	that.board = outcome.Board

	game.Lines = outcome.Board.LineStates()
	game.Triangles = outcome.Board.TriangleStates()
	game.AddScore(mark, outcome.Score)
	game.Moves = append(game.Moves, move)

	if outcome.Board.Full() || len(that.generator.Legal(outcome.Board)) == 0 {
		game.Finish()
		return outcome, nil
	}

	if !outcome.ExtraTurn(game.Settings.ScoreAgain) {
		game.Turn = mark.Opponent()
	}

	return outcome, nil
}
