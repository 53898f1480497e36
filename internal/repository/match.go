package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/triangles-backend/internal/entity"
)

type MatchRepository interface {
	Save(ctx context.Context, match *entity.Match) error
	FindByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Match, error)
}

type matchRepository struct {
	conn *sql.DB
}

func NewMatchRepository(conn *sql.DB) MatchRepository {
	return &matchRepository{
		conn: conn,
	}
}

func (that *matchRepository) Save(ctx context.Context, match *entity.Match) error {
	query := `INSERT OR REPLACE INTO matches
		(game_id, game_type, board_rows, line_length, player1_id, player2_id, p1_score, p2_score, winner, moves, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	rows, err := json.Marshal(match.Rows)
	if err != nil {
		return fmt.Errorf("can't marshal board rows: %w", err)
	}

	_, err = that.conn.ExecContext(ctx, query,
		match.GameID, match.Type, string(rows), match.LineLength,
		match.Player1ID, match.Player2ID, match.Score1, match.Score2,
		int(match.Winner), match.Moves, match.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("can't save match: %w", err)
	}

	return nil
}

// FindByPlayer - the most recent matches the player took part in.
func (that *matchRepository) FindByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.Match, error) {
	query := `SELECT game_id, game_type, board_rows, line_length, player1_id, player2_id, p1_score, p2_score, winner, moves, finished_at
		FROM matches WHERE player1_id = ? OR player2_id = ?
		ORDER BY finished_at DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, playerID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("can't find matches: %w", err)
	}
	defer rows.Close()

	var matches []*entity.Match
	for rows.Next() {
		var (
			match      entity.Match
			boardRows  string
			winner     int
			finishedAt string
		)

		if err = rows.Scan(
			&match.GameID, &match.Type, &boardRows, &match.LineLength,
			&match.Player1ID, &match.Player2ID, &match.Score1, &match.Score2,
			&winner, &match.Moves, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan match: %w", err)
		}

		if err = json.Unmarshal([]byte(boardRows), &match.Rows); err != nil {
			return nil, fmt.Errorf("can't unmarshal board rows: %w", err)
		}

		match.Winner = entity.Mark(winner)

		if match.FinishedAt, err = time.Parse(time.RFC3339, finishedAt); err != nil {
			return nil, fmt.Errorf("can't parse finish time: %w", err)
		}

		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read matches: %w", err)
	}

	return matches, nil
}
