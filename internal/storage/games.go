package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/puzzle"
)

// ErrGameNotFound is returned when a stored game ID does not exist.
var ErrGameNotFound = errors.New("storage: game not found")

// GameRecord is one finished game.
type GameRecord struct {
	ID           string
	Mode         string
	Score        int
	LevelsPlayed int
	MaxStreak    int
	TotalTime    float64
	Player       string
	CreatedAt    time.Time
}

// RecordFromSummary builds a record from an end-of-game summary.
func RecordFromSummary(sum puzzle.Summary, player string) GameRecord {
	return GameRecord{
		Mode:         sum.Mode.ID(),
		Score:        sum.TotalScore,
		LevelsPlayed: sum.LevelsPlayed,
		MaxStreak:    sum.MaxStreak,
		TotalTime:    sum.TotalTime,
		Player:       player,
	}
}

// storedTile is the JSON form of a puzzle.TileRecord.
type storedTile struct {
	R       float64 `json:"r"`
	G       float64 `json:"g"`
	B       float64 `json:"b"`
	A       float64 `json:"a"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Correct bool    `json:"correct,omitempty"`
}

// SaveGame stores a finished game and its rounds in one transaction.
// A random ID is assigned when rec.ID is empty. Returns the game ID.
func (s *Store) SaveGame(rec GameRecord, rounds []puzzle.LevelHistoryEntry) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`INSERT INTO games (id, mode, score, levels_played, max_streak, total_time, player)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Mode, rec.Score, rec.LevelsPlayed, rec.MaxStreak, rec.TotalTime, rec.Player,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO rounds (game_id, idx, click_x, click_y, correct_index, scored, tile_size, tiles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare round insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rounds {
		tiles, err := encodeTiles(r.Tiles)
		if err != nil {
			return "", fmt.Errorf("storage: cannot encode round %d: %w", i, err)
		}
		if _, err := stmt.Exec(rec.ID, i, r.Click.X, r.Click.Y, r.CorrectIndex, r.Scored, r.TileSize, tiles); err != nil {
			return "", fmt.Errorf("storage: cannot save round %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return rec.ID, nil
}

// RecentGames returns the most recently stored games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, levels_played, max_streak, total_time, player, created_at
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// GameByID returns one stored game.
func (s *Store) GameByID(id string) (GameRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, mode, score, levels_played, max_streak, total_time, player, created_at
		 FROM games WHERE id = ?`,
		id,
	)
	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, err
}

// GameRounds returns the round history of a stored game in play order.
func (s *Store) GameRounds(gameID string) ([]puzzle.LevelHistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT click_x, click_y, correct_index, scored, tile_size, tiles
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY idx ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []puzzle.LevelHistoryEntry
	for rows.Next() {
		var e puzzle.LevelHistoryEntry
		var tiles string
		if err := rows.Scan(&e.Click.X, &e.Click.Y, &e.CorrectIndex, &e.Scored, &e.TileSize, &tiles); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		if e.Tiles, err = decodeTiles(tiles); err != nil {
			return nil, fmt.Errorf("storage: cannot decode round tiles: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (GameRecord, error) {
	var g GameRecord
	var createdAt any
	err := row.Scan(&g.ID, &g.Mode, &g.Score, &g.LevelsPlayed, &g.MaxStreak, &g.TotalTime, &g.Player, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return g, err
	}
	if err != nil {
		return g, fmt.Errorf("storage: cannot scan game: %w", err)
	}
	g.CreatedAt = parseTime(createdAt)
	return g, nil
}

func encodeTiles(tiles []puzzle.TileRecord) (string, error) {
	out := make([]storedTile, len(tiles))
	for i, t := range tiles {
		out[i] = storedTile{
			R: t.Color.R, G: t.Color.G, B: t.Color.B, A: t.Color.A,
			X: t.Pos.X, Y: t.Pos.Y,
			Correct: t.Correct,
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTiles(data string) ([]puzzle.TileRecord, error) {
	var stored []storedTile
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, err
	}
	tiles := make([]puzzle.TileRecord, len(stored))
	for i, t := range stored {
		tiles[i] = puzzle.TileRecord{
			Color:   core.Color{R: t.R, G: t.G, B: t.B, A: t.A},
			Pos:     core.Point{X: t.X, Y: t.Y},
			Correct: t.Correct,
		}
	}
	return tiles, nil
}
