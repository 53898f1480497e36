package entity

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/triangles-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	WithBotType = "bot"
	PrivateType = "private"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Settings - the rules a game session is played with.
type Settings struct {
	Rows               []int `json:"rows"`
	RequiredLineLength int   `json:"requiredLineLength"`
	ScoreAgain         bool  `json:"isScoreAndGoAgain"`
	AllowShorterLines  bool  `json:"allowShorterLines"`
}

type Game struct {
	ID        string               `json:"id"`
	Type      string               `json:"type,omitempty"`
	Settings  Settings             `json:"settings"`
	Dots      [][]Dot              `json:"dots"`
	Lines     map[string]LineState `json:"lines"`
	Triangles []TriangleState      `json:"triangles"`
	Turn      Mark                 `json:"player_turn"`
	Score1    int                  `json:"p1Score"`
	Score2    int                  `json:"p2Score"`
	Winner    Mark                 `json:"winner"`
	Status    string               `json:"status"`
	Moves     []Move               `json:"moves,omitempty"`
	Players   []*Player            `json:"players,omitempty"`
}

func NewGame(id, gameType string, settings Settings) *Game {
	return &Game{
		ID:       id,
		Type:     gameType,
		Settings: settings,
		Turn:     Player1,
		Status:   StatusWaiting,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) Score(mark Mark) int {
	switch mark {
	case Player1:
		return that.Score1
	case Player2:
		return that.Score2
	default:
		return 0
	}
}

func (that *Game) AddScore(mark Mark, points int) {
	switch mark {
	case Player1:
		that.Score1 += points
	case Player2:
		that.Score2 += points
	}
}

// Finish - closes the game and decides the winner from the running score, NoPlayer on a tie.
func (that *Game) Finish() {
	that.Status = StatusFinished
	that.Turn = NoPlayer

	switch {
	case that.Score1 > that.Score2:
		that.Winner = Player1
	case that.Score2 > that.Score1:
		that.Winner = Player2
	default:
		that.Winner = NoPlayer
	}
}

func (that *Game) PlayerByID(id string) (*Player, bool) {
	for _, player := range that.Players {
		if player.ID == id {
			return player, true
		}
	}
	return nil, false
}

func (that *Game) PlayerByMark(mark Mark) (*Player, bool) {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player, true
		}
	}
	return nil, false
}

func (that *Game) GetRandomMarks() (Mark, Mark) {
	if frand.Intn(2) == 0 {
		return Player1, Player2
	}
	return Player2, Player1
}
