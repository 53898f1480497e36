package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
	"github.com/rocketscienceinc/triangles-backend/internal/service"
)

var errMissingPlayer = errors.New("player is missing in payload")

// decodePayload - the request payload of msg; the player is required by every action.
func (that *Server) decodePayload(c *client, msg *Message) (*RequestPayload, error) {
	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		that.sendErrorResponse(c, msg.Action, "malformed payload")
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		that.sendErrorResponse(c, msg.Action, "Player is required")
		return nil, errMissingPlayer
	}

	return &payloadReq, nil
}

func (that *Server) handleConnect(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := that.decodePayload(c, msg)
	if err != nil {
		return err
	}

	player, err := that.gamePlay.GetOrCreatePlayer(ctx, payloadReq.Player.ID)
	if err != nil {
		that.sendErrorResponse(c, msg.Action, "failed to create a new player")
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	that.register(player.ID, c)

	payloadResp := ResponsePayload{Player: player}

	if player.GameID != "" {
		game, err := that.gamePlay.GetGameByPlayerID(ctx, player.ID)
		if err != nil {
			log.Warn("failed to restore game", "gameID", player.GameID, "error", err)
		} else {
			payloadResp.Game = maskGameDetails(game)
		}
	}

	if err = c.sendMessage(msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, c *client, msg *Message) error {
	payloadReq, err := that.decodePayload(c, msg)
	if err != nil {
		return err
	}

	opts := service.GameOptions{}
	if req := payloadReq.Game; req != nil {
		opts = service.GameOptions{
			Type:               req.Type,
			Preset:             req.Preset,
			Rows:               req.Rows,
			RequiredLineLength: req.RequiredLineLength,
			ScoreAgain:         req.ScoreAgain,
			AllowShorterLines:  req.AllowShorterLines,
		}
	}

	that.register(payloadReq.Player.ID, c)

	game, err := that.gamePlay.GetOrCreateGame(ctx, payloadReq.Player.ID, opts)
	if err != nil {
		that.sendErrorResponse(c, msg.Action, errorText(err, "failed to create a new game"))
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	that.broadcast(msg.Action, game, "")

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, c *client, msg *Message) error {
	payloadReq, err := that.decodePayload(c, msg)
	if err != nil {
		return err
	}

	if payloadReq.Game == nil || payloadReq.Game.ID == "" {
		that.sendErrorResponse(c, msg.Action, "Game is required")
		return nil
	}

	that.register(payloadReq.Player.ID, c)

	game, err := that.gamePlay.JoinGameByID(ctx, payloadReq.Game.ID, payloadReq.Player.ID)
	if err != nil {
		that.sendErrorResponse(c, msg.Action, fmt.Sprintf("game %s: %s", payloadReq.Game.ID, errorText(err, "failed to join")))
		return fmt.Errorf("failed to join game: %w", err)
	}

	that.broadcast(msg.Action, game, "")

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, msg *Message) error {
	payloadReq, err := that.decodePayload(c, msg)
	if err != nil {
		return err
	}

	if payloadReq.From == nil || payloadReq.To == nil {
		that.sendErrorResponse(c, msg.Action, "Both dots are required")
		return nil
	}

	that.register(payloadReq.Player.ID, c)

	game, err := that.gamePlay.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.From, *payloadReq.To)
	if err != nil {
		that.sendErrorResponse(c, msg.Action, errorText(err, "failed to make turn"))
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.broadcast(msg.Action, game, "")

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, c *client, msg *Message) error {
	payloadReq, err := that.decodePayload(c, msg)
	if err != nil {
		return err
	}

	that.register(payloadReq.Player.ID, c)

	game, err := that.gamePlay.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		that.sendErrorResponse(c, msg.Action, "game doesn't exist")
		return fmt.Errorf("failed to find game: %w", err)
	}

	if err = that.gamePlay.EndGame(ctx, payloadReq.Player.ID); err != nil {
		that.sendErrorResponse(c, msg.Action, "failed to leave the game")
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.broadcast(actionGameLeave, game, gameStatusLeave)

	return nil
}

// handleOpponentOut - closes the game of a player who never came back and tells the others.
func (that *Server) handleOpponentOut(ctx context.Context, playerID string) {
	log := that.logger.With("method", "handleOpponentOut", "playerID", playerID)

	game, err := that.gamePlay.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		if !errors.Is(err, apperror.ErrNoActiveGames) {
			log.Error("failed to get game by player ID", "error", err)
		}
		return
	}

	if game.IsFinished() {
		return
	}

	if err = that.gamePlay.EndGame(ctx, playerID); err != nil {
		log.Error("failed to finish game", "gameID", game.ID, "error", err)
		return
	}

	that.broadcast(actionGameLeave, game, gameStatusOpponentOut)

	log.Info("handled opponent out", "gameID", game.ID)
}

// broadcast - sends the game to every connected human seated in it. A non-empty status
// overrides the game status shown to them.
func (that *Server) broadcast(action string, game *entity.Game, status string) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	masked := maskGameDetails(game)
	if status != "" {
		masked.Status = status
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		if err := conn.sendMessage(action, ResponsePayload{Player: player, Game: masked}); err != nil {
			log.Error("failed to send game update", "playerID", player.ID, "error", err)
		}
	}
}

func (that *Server) sendErrorResponse(c *client, action, errorMsg string) {
	if err := c.sendMessage(action, ResponsePayload{Error: errorMsg}); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}

// errorText - the error as shown to players; unexpected errors get the fallback text.
func errorText(err error, fallback string) string {
	for _, known := range []error{
		apperror.ErrNotYourTurn,
		apperror.ErrGameFinished,
		apperror.ErrGameIsNotStarted,
		apperror.ErrGameIsFull,
		apperror.ErrNotInGame,
		apperror.ErrNoActiveGames,
		apperror.ErrInvalidRequest,
		rules.ErrInvalidMove,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallback
}
