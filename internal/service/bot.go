package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type moveEngine interface {
	Select(ctx context.Context, req engine.Request) (engine.Decision, error)
}

type botService struct {
	logger   *slog.Logger
	engine   moveEngine
	strategy engine.Strategy
}

func NewBotService(logger *slog.Logger, moveEngine moveEngine, strategy engine.Strategy) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		engine:   moveEngine,
		strategy: strategy,
	}
}

// MakeTurn - plays for the bot until the turn passes to the opponent or the game ends.
// Under score-again a single call may draw several lines.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	pos, err := loadPosition(game)
	if err != nil {
		return err
	}

	for game.IsOngoing() && game.Turn == botPlayer.Mark {
		decision, err := that.decide(ctx, game, pos, botPlayer.Mark)
		if err != nil {
			return fmt.Errorf("bot failed to pick a move: %w", err)
		}

		if !decision.Found {
			log.Info("bot has no legal move, finishing game")
			game.Finish()
			return nil
		}

		outcome, err := pos.play(game, decision.Move, botPlayer.Mark)
		if err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved",
			"line", entity.LineKey(decision.Move.From, decision.Move.To),
			"scored", outcome.Score,
			"depth", decision.Depth,
			"partial", decision.Partial,
		)
	}

	return nil
}

func (that *botService) decide(ctx context.Context, game *entity.Game, pos *position, mark entity.Mark) (engine.Decision, error) {
	req := engine.Request{
		Board:          pos.board,
		Player:         mark,
		RequiredLength: game.Settings.RequiredLineLength,
		AllowShorter:   game.Settings.AllowShorterLines,
		ScoreAgain:     game.Settings.ScoreAgain,
		Strategy:       that.strategy,
	}

	decision, err := that.engine.Select(ctx, req)
	if err == nil || !errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return decision, err
	}

	that.logger.Warn("search timed out before any move was scored, falling back to greedy", "gameID", game.ID)

	req.Strategy = engine.StrategyGreedy
	return that.engine.Select(ctx, req)
}
