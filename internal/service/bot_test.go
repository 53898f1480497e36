package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/triangles-backend/internal/engine"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	mockedService "github.com/rocketscienceinc/triangles-backend/mocks/service"
)

func botGame(t *testing.T, scoreAgain bool, drawn map[string]entity.Mark) *entity.Game {
	t.Helper()

	game := newGame(t, entity.WithBotType, lengthOneSettings(scoreAgain), drawn)
	game.Players = []*entity.Player{
		{ID: "p1", GameID: game.ID, Mark: entity.Player1},
		entity.NewBotPlayer(game.ID, entity.Player2),
	}
	game.Turn = entity.Player2

	return game
}

func undrawn(count int) interface{} {
	return mock.MatchedBy(func(req engine.Request) bool {
		return req.Board.UndrawnCount() == count
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Keeps moving while it scores under score-again", func(t *testing.T) {
		// Given: The left triangle misses its shared line and the bot is to move
		game := botGame(t, true, map[string]entity.Mark{
			leftOuter:  entity.Player1,
			leftBottom: entity.Player1,
		})
		closing := validMove(t, game, dot(0, 0), dot(1, 1))
		quiet := validMove(t, game, dot(1, 1), dot(1, 2))

		mockEngine := mockedService.NewMockmoveEngine(t)
		mockEngine.EXPECT().
			Select(mock.Anything, undrawn(5)).
			Return(engine.Decision{Move: closing, Found: true}, nil).
			Once()
		mockEngine.EXPECT().
			Select(mock.Anything, undrawn(4)).
			Return(engine.Decision{Move: quiet, Found: true}, nil).
			Once()

		bot := NewBotService(discardLogger(), mockEngine, engine.StrategyMinimax)

		// When: The bot takes its turn
		err := bot.MakeTurn(ctx, game)

		// Then: It scored, moved again and handed the turn back
		require.NoError(t, err)
		assert.Equal(t, 1, game.Score2)
		assert.Len(t, game.Moves, 2)
		assert.Equal(t, entity.Player1, game.Turn)
	})

	t.Run("Finishes the game when no move is found", func(t *testing.T) {
		// Given: An engine with nothing to play
		game := botGame(t, true, nil)

		mockEngine := mockedService.NewMockmoveEngine(t)
		mockEngine.EXPECT().
			Select(mock.Anything, mock.Anything).
			Return(engine.Decision{}, nil).
			Once()

		bot := NewBotService(discardLogger(), mockEngine, engine.StrategyMinimax)

		// When: The bot takes its turn
		err := bot.MakeTurn(ctx, game)

		// Then: The game is closed as a tie
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.NoPlayer, game.Winner)
	})

	t.Run("Falls back to greedy when the search times out", func(t *testing.T) {
		// Given: A search that runs out of time before scoring any move
		game := botGame(t, false, nil)
		quiet := validMove(t, game, dot(1, 1), dot(1, 2))

		mockEngine := mockedService.NewMockmoveEngine(t)
		mockEngine.EXPECT().
			Select(mock.Anything, mock.MatchedBy(func(req engine.Request) bool {
				return req.Strategy == engine.StrategyMinimax
			})).
			Return(engine.Decision{}, context.DeadlineExceeded).
			Once()
		mockEngine.EXPECT().
			Select(mock.Anything, mock.MatchedBy(func(req engine.Request) bool {
				return req.Strategy == engine.StrategyGreedy
			})).
			Return(engine.Decision{Move: quiet, Found: true}, nil).
			Once()

		bot := NewBotService(discardLogger(), mockEngine, engine.StrategyMinimax)

		// When: The bot takes its turn
		err := bot.MakeTurn(ctx, game)

		// Then: The greedy move is played
		require.NoError(t, err)
		assert.True(t, game.Lines[rightBottom].Drawn)
		assert.Equal(t, entity.Player1, game.Turn)
	})

	t.Run("Returns error when the game has no bot", func(t *testing.T) {
		// Given: A game between two people
		game := newGame(t, entity.PrivateType, lengthOneSettings(true), nil)
		bot := NewBotService(discardLogger(), mockedService.NewMockmoveEngine(t), engine.StrategyMinimax)

		// When: Asking the bot to move
		err := bot.MakeTurn(ctx, game)

		// Then: There is no bot seat
		require.ErrorIs(t, err, ErrBotNotFound)
	})
}
