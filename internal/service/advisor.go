package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
)

// AdviceRequest - a complete position sent by a client that keeps its own game state.
type AdviceRequest struct {
	Dots               [][]entity.Dot
	Lines              map[string]entity.LineState
	Triangles          []entity.TriangleState
	Player             entity.Mark
	RequiredLineLength int
	AllowShorterLines  bool
	ScoreAgain         bool
	Strategy           string
	Weights            *entity.WeightOverrides
}

type AdvisorService interface {
	// SuggestMove - the best move for the player, nil when no legal move is left.
	SuggestMove(ctx context.Context, req AdviceRequest) (*entity.Move, error)
}

type advisorService struct {
	engine moveEngine
}

func NewAdvisorService(moveEngine moveEngine) AdvisorService {
	return &advisorService{
		engine: moveEngine,
	}
}

func (that *advisorService) SuggestMove(ctx context.Context, req AdviceRequest) (*entity.Move, error) {
	if !req.Player.IsPlayer() {
		return nil, fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidRequest, req.Player)
	}

	strategy, err := engine.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	_, board, err := lattice.FromState(req.Dots, req.Lines, req.Triangles)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
	}

	decision, err := that.engine.Select(ctx, engine.Request{
		Board:          board,
		Player:         req.Player,
		RequiredLength: req.RequiredLineLength,
		AllowShorter:   req.AllowShorterLines,
		ScoreAgain:     req.ScoreAgain,
		Strategy:       strategy,
		Weights:        req.Weights,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select move: %w", err)
	}

	if !decision.Found {
		return nil, nil //nolint:nilnil // no move is a valid answer
	}

	return &decision.Move, nil
}
