package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGames    = errors.New("no active games")
	ErrNotInGame        = errors.New("player is not in this game")
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrGameIsFull     = errors.New("game is full")
)
