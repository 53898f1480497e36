package entity

import "time"

// Match - the record kept for a finished game.
type Match struct {
	GameID     string    `json:"gameId"`
	Type       string    `json:"type"`
	Rows       []int     `json:"rows"`
	LineLength int       `json:"requiredLineLength"`
	Player1ID  string    `json:"player1Id"`
	Player2ID  string    `json:"player2Id"`
	Score1     int       `json:"p1Score"`
	Score2     int       `json:"p2Score"`
	Winner     Mark      `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finishedAt"`
}

// NewMatch - summarizes a finished game.
func NewMatch(game *Game, finishedAt time.Time) *Match {
	match := &Match{
		GameID:     game.ID,
		Type:       game.Type,
		Rows:       game.Settings.Rows,
		LineLength: game.Settings.RequiredLineLength,
		Score1:     game.Score1,
		Score2:     game.Score2,
		Winner:     game.Winner,
		Moves:      len(game.Moves),
		FinishedAt: finishedAt,
	}

	if player, ok := game.PlayerByMark(Player1); ok {
		match.Player1ID = player.ID
	}
	if player, ok := game.PlayerByMark(Player2); ok {
		match.Player2ID = player.ID
	}

	return match
}
