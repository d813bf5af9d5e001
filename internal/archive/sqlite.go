package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"winey/internal/game"
	"winey/internal/models"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no archived game matches the id.
var ErrNotFound = errors.New("archived game not found")

const schema = `
CREATE TABLE IF NOT EXISTS finished_games (
    game_id      TEXT PRIMARY KEY,
    game_json    BLOB NOT NULL,
    board_json   BLOB NOT NULL,
    steps_json   BLOB NOT NULL,
    finished_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_finished_games_finished_at ON finished_games (finished_at);
`

// Record is one archived game: the final snapshot plus the derived summaries
// the results page serves.
type Record struct {
	Game        *models.Game            `json:"game"`
	Leaderboard []game.LeaderboardEntry `json:"leaderboard"`
	Timeline    []models.TimelineStep   `json:"timeline"`
	FinishedAt  time.Time               `json:"finishedAt"`
}

// Store provides SQLite-backed persistence for finished games.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and initializes the archive database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("archive path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveFinishedGame upserts the archived record for a finished game.
func (s *Store) SaveFinishedGame(ctx context.Context, rec Record) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("archive is not configured")
	}
	if rec.Game == nil || rec.Game.ID == "" {
		return fmt.Errorf("game record is required")
	}
	if rec.Game.Status != models.StatusFinal {
		return fmt.Errorf("only finished games can be archived, status is %s", rec.Game.Status)
	}
	if rec.FinishedAt.IsZero() {
		rec.FinishedAt = time.Now().UTC()
	}

	gameJSON, err := json.Marshal(rec.Game)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	boardJSON, err := json.Marshal(rec.Leaderboard)
	if err != nil {
		return fmt.Errorf("marshal leaderboard: %w", err)
	}
	stepsJSON, err := json.Marshal(rec.Timeline)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO finished_games (game_id, game_json, board_json, steps_json, finished_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   game_json = excluded.game_json,
		   board_json = excluded.board_json,
		   steps_json = excluded.steps_json,
		   finished_at = excluded.finished_at`,
		rec.Game.ID,
		gameJSON,
		boardJSON,
		stepsJSON,
		rec.FinishedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save finished game: %w", err)
	}
	return nil
}

// GetFinishedGame loads the archived record for a game id.
func (s *Store) GetFinishedGame(ctx context.Context, gameID string) (Record, error) {
	if s == nil || s.sqlDB == nil {
		return Record{}, fmt.Errorf("archive is not configured")
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return Record{}, fmt.Errorf("game id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT game_json, board_json, steps_json, finished_at
		 FROM finished_games
		 WHERE game_id = ?`,
		gameID,
	)

	var gameJSON, boardJSON, stepsJSON []byte
	var finishedAt int64
	if err := row.Scan(&gameJSON, &boardJSON, &stepsJSON, &finishedAt); err != nil {
		if err == sql.ErrNoRows {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get finished game: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(gameJSON, &rec.Game); err != nil {
		return Record{}, fmt.Errorf("unmarshal game: %w", err)
	}
	if err := json.Unmarshal(boardJSON, &rec.Leaderboard); err != nil {
		return Record{}, fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	if err := json.Unmarshal(stepsJSON, &rec.Timeline); err != nil {
		return Record{}, fmt.Errorf("unmarshal timeline: %w", err)
	}
	rec.FinishedAt = time.UnixMilli(finishedAt).UTC()
	return rec, nil
}

// ListFinishedGameIDs returns archived game ids, most recent first.
func (s *Store) ListFinishedGameIDs(ctx context.Context) ([]string, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("archive is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT game_id FROM finished_games ORDER BY finished_at DESC, game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list finished games: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan finished game id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate finished game ids: %w", err)
	}
	return ids, nil
}
