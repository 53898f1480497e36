package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

const (
	actionConnect   = "connect"
	actionGameNew   = "game:new"
	actionGameJoin  = "game:join"
	actionGameTurn  = "game:turn"
	actionGameLeave = "game:leave"
	actionError     = "error"
)

const (
	gameStatusLeave       = "leave"
	gameStatusOpponentOut = "opponent_out"
)

// Message - the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type PlayerRequest struct {
	ID string `json:"id"`
}

type GameRequest struct {
	ID                 string `json:"id,omitempty"`
	Type               string `json:"type,omitempty"`
	Preset             string `json:"preset,omitempty"`
	Rows               []int  `json:"rows,omitempty"`
	RequiredLineLength int    `json:"requiredLineLength,omitempty"`
	ScoreAgain         *bool  `json:"scoreAgain,omitempty"`
	AllowShorterLines  *bool  `json:"allowShorterLines,omitempty"`
}

type RequestPayload struct {
	Player *PlayerRequest `json:"player,omitempty"`
	Game   *GameRequest   `json:"game,omitempty"`
	From   *entity.Dot    `json:"from,omitempty"`
	To     *entity.Dot    `json:"to,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// maskGameDetails - a copy of the game without the seats, which carry session ids.
func maskGameDetails(game *entity.Game) *entity.Game {
	masked := *game
	masked.Players = nil
	return &masked
}
