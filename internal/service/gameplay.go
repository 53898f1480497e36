package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
	"github.com/rocketscienceinc/triangles-backend/internal/entity"
	"github.com/rocketscienceinc/triangles-backend/internal/lattice"
	"github.com/rocketscienceinc/triangles-backend/internal/rules"
)

const defaultHistoryLimit = 20

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID string, opts GameOptions) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, from, to entity.Dot) (*entity.Game, error)
	EndGame(ctx context.Context, playerID string) error

	History(ctx context.Context, playerID string, limit int) ([]*entity.Match, error)
}

// GameOptions - what a client may choose when opening a game. Zero values fall back to the
// server defaults.
type GameOptions struct {
	Type string
	// Preset - a named board shape, used when Rows is empty.
	Preset             string
	Rows               []int
	RequiredLineLength int
	ScoreAgain         *bool
	AllowShorterLines  *bool
}

type matchRecorder interface {
	Save(ctx context.Context, match *entity.Match) error
	FindByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Match, error)
}

type gamePlayService struct {
	logger *slog.Logger

	defaults entity.Settings

	playerService PlayerService
	gameService   GameService
	botService    BotService
	matches       matchRecorder
}

func NewGamePlayService(
	logger *slog.Logger,
	defaults entity.Settings,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	matches matchRecorder,
) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		defaults:      defaults,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		matches:       matches,
	}
}

func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	return player, nil
}

// GetOrCreateGame - returns the player's unfinished game or opens a new one.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, playerID string, opts GameOptions) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err == nil && !game.IsFinished() {
			return game, nil
		}
	}

	game, err := that.createGame(ctx, player, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) settings(opts GameOptions) (entity.Settings, error) {
	settings := that.defaults

	switch {
	case len(opts.Rows) > 0:
		settings.Rows = opts.Rows
	case opts.Preset != "":
		rows, err := lattice.Preset(opts.Preset)
		if err != nil {
			return entity.Settings{}, fmt.Errorf("%w: %w", apperror.ErrInvalidRequest, err)
		}
		settings.Rows = rows
	}

	if opts.RequiredLineLength > 0 {
		settings.RequiredLineLength = opts.RequiredLineLength
	}
	if opts.ScoreAgain != nil {
		settings.ScoreAgain = *opts.ScoreAgain
	}
	if opts.AllowShorterLines != nil {
		settings.AllowShorterLines = *opts.AllowShorterLines
	}

	return settings, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, opts GameOptions) (*entity.Game, error) {
	gameType := opts.Type
	switch gameType {
	case "":
		gameType = entity.WithBotType
	case entity.WithBotType, entity.PrivateType:
	default:
		return nil, fmt.Errorf("%w: unknown game type %s", apperror.ErrInvalidRequest, gameType)
	}

	settings, err := that.settings(opts)
	if err != nil {
		return nil, err
	}

	game, err := that.gameService.CreateGame(ctx, player, gameType, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	}

	return game, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID, entity.NoPlayer)

	playerMark, botMark := game.GetRandomMarks()
	for _, player := range game.Players {
		player.Mark = playerMark
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
	}
	botPlayer.Mark = botMark

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if err := that.botService.MakeTurn(ctx, game); err != nil {
		return fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return that.saveGame(ctx, game)
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if _, ok := game.PlayerByID(player.ID); ok {
		return game, nil
	}

	if len(game.Players) >= 2 || !game.IsWaiting() {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, gameID)
	}

	player.GameID = game.ID
	player.Mark = entity.Player2
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGameByID(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	return that.GetGameByID(ctx, player.GameID)
}

// MakeTurn - draws the line between two dots for the player, then lets the bot answer.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, from, to entity.Dot) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	seat, ok := game.PlayerByID(player.ID)
	if !ok {
		return game, apperror.ErrNotInGame
	}

	if game.Turn != seat.Mark {
		return game, apperror.ErrNotYourTurn
	}

	pos, err := loadPosition(game)
	if err != nil {
		return nil, err
	}

	move, ok := pos.generator.Validate(from, to, pos.board)
	if !ok {
		return game, fmt.Errorf("%w: %s", rules.ErrInvalidMove, entity.LineKey(from, to))
	}

	if _, err = pos.play(game, move, seat.Mark); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsWithBot() && game.IsOngoing() {
		if err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// EndGame - the player leaves; an unfinished game is closed as it stands.
func (that *gamePlayService) EndGame(ctx context.Context, playerID string) error {
	game, err := that.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return err
	}

	if !game.IsFinished() {
		game.Finish()
		if err = that.saveGame(ctx, game); err != nil {
			return err
		}
	}

	that.releasePlayers(ctx, game)

	return nil
}

func (that *gamePlayService) History(ctx context.Context, playerID string, limit int) ([]*entity.Match, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	matches, err := that.matches.FindByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find matches: %w", err)
	}

	return matches, nil
}

// saveGame - persists the game and records it in the match history once it is finished.
func (that *gamePlayService) saveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if !game.IsFinished() {
		return nil
	}

	if err := that.matches.Save(ctx, entity.NewMatch(game, time.Now())); err != nil {
		that.logger.Error("failed to record match", "gameID", game.ID, "error", err)
	}

	return nil
}

func (that *gamePlayService) releasePlayers(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "releasePlayers", "gameID", game.ID)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		stored, err := that.playerService.GetPlayerByID(ctx, player.ID)
		if err != nil {
			log.Error("failed to get player", "player", player.ID, "error", err)
			continue
		}

		if stored.GameID != game.ID {
			continue
		}

		stored.GameID = ""
		stored.Mark = entity.NoPlayer
		if err = that.playerService.UpdatePlayer(ctx, stored); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}
}
