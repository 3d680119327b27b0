package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Note is one freeform annotation on a player or team.
type Note struct {
	ID        string
	Subject   string // player id or canonical team key
	Body      string
	CreatedAt time.Time
}

// HistoryEntry is one cached ladder game fetched from the Eugen backend.
type HistoryEntry struct {
	GameID   string
	PlayerID string
	Result   string
	Score    float64
	PlayedAt time.Time
}

// AddPlayerNote stores a note against a player id and returns its id.
func (db *DB) AddPlayerNote(playerID, body string) (string, error) {
	return db.addNote("player_notes", "player_id", playerID, body)
}

// ListPlayerNotes returns a player's notes, oldest first.
func (db *DB) ListPlayerNotes(playerID string) ([]Note, error) {
	return db.listNotes("player_notes", "player_id", playerID)
}

// DeletePlayerNote removes a note by id. Deleting an unknown id is an error.
func (db *DB) DeletePlayerNote(id string) error {
	return db.deleteNote("player_notes", id)
}

// AddTeamNote stores a note against a canonical team key and returns its id.
func (db *DB) AddTeamNote(teamKey, body string) (string, error) {
	return db.addNote("team_notes", "team_key", teamKey, body)
}

// ListTeamNotes returns a team's notes, oldest first.
func (db *DB) ListTeamNotes(teamKey string) ([]Note, error) {
	return db.listNotes("team_notes", "team_key", teamKey)
}

// DeleteTeamNote removes a note by id. Deleting an unknown id is an error.
func (db *DB) DeleteTeamNote(id string) error {
	return db.deleteNote("team_notes", id)
}

func (db *DB) addNote(table, column, subject, body string) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		fmt.Sprintf("INSERT INTO %s(id, %s, body, created_at) VALUES (?, ?, ?, ?)", table, column),
		id, subject, body, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}
	return id, nil
}

func (db *DB) listNotes(table, column, subject string) ([]Note, error) {
	rows, err := db.conn.Query(
		fmt.Sprintf("SELECT id, %s, body, created_at FROM %s WHERE %s = ? ORDER BY created_at, id", column, table, column),
		subject,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		var created string
		if err := rows.Scan(&n.ID, &n.Subject, &n.Body, &created); err != nil {
			return nil, err
		}
		n.CreatedAt, _ = time.Parse(time.RFC3339, created)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (db *DB) deleteNote(table, id string) error {
	res, err := db.conn.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no note with id %s", id)
	}
	return nil
}

// UpsertGameHistory caches fetched ladder games. Re-fetching the same game is
// idempotent.
func (db *DB) UpsertGameHistory(entries []HistoryEntry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO game_history(game_id, player_id, result, score, played_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(e.GameID, e.PlayerID, e.Result, e.Score, e.PlayedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("insert game_history %s: %w", e.GameID, err)
		}
	}
	return tx.Commit()
}

// ListGameHistory returns a player's cached ladder games, newest first.
func (db *DB) ListGameHistory(playerID string) ([]HistoryEntry, error) {
	rows, err := db.conn.Query(`
		SELECT game_id, player_id, result, score, played_at
		FROM game_history WHERE player_id = ? ORDER BY played_at DESC, game_id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var played string
		if err := rows.Scan(&e.GameID, &e.PlayerID, &e.Result, &e.Score, &played); err != nil {
			return nil, err
		}
		e.PlayedAt, _ = time.Parse(time.RFC3339, played)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
