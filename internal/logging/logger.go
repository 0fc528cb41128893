package logging

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// BrewRecord is one persisted brew: the day, what went into the cauldron and
// how it resolved (an outcome key on days 1-3, an ending id on day 4).
type BrewRecord struct {
	ID          int       `json:"id"`
	SessionID   string    `json:"session_id"`
	Timestamp   time.Time `json:"timestamp"`
	Day         int       `json:"day"`
	Ingredients string    `json:"ingredients"`
	Outcome     string    `json:"outcome"`
}

// SessionLogger persists the dialogue transcript and every brew of a playthrough
// to a local sqlite database. Each process run gets a fresh session id so
// playthroughs can be told apart afterwards.
type SessionLogger struct {
	db        *sql.DB
	sessionID string
}

func NewSessionLogger() (*SessionLogger, error) {
	db, err := sql.Open("sqlite3", "./sessions.db")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &SessionLogger{
		db:        db,
		sessionID: uuid.NewString(),
	}
	if err := logger.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (sl *SessionLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		speaker TEXT NOT NULL,
		text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS brews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		day INTEGER NOT NULL,
		ingredients TEXT NOT NULL,
		outcome TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_lines_session ON lines(session_id);
	CREATE INDEX IF NOT EXISTS idx_brews_session ON brews(session_id);
	`

	_, err := sl.db.Exec(schema)
	return err
}

// SessionID returns the id assigned to this playthrough.
func (sl *SessionLogger) SessionID() string {
	return sl.sessionID
}

// RecordLine appends one fully-read dialogue line to the transcript. Storage
// failures are swallowed: the game must never stall on its own bookkeeping.
func (sl *SessionLogger) RecordLine(speaker, text string) {
	_, _ = sl.db.Exec(`
		INSERT INTO lines (session_id, speaker, text)
		VALUES (?, ?, ?)
	`, sl.sessionID, speaker, text)
}

// RecordBrew appends one brew and its resolution.
func (sl *SessionLogger) RecordBrew(day int, ingredients []string, outcome string) {
	_, _ = sl.db.Exec(`
		INSERT INTO brews (session_id, day, ingredients, outcome)
		VALUES (?, ?, ?, ?)
	`, sl.sessionID, day, strings.Join(ingredients, "+"), outcome)
}

// RecentBrews returns the most recent brews across all sessions, newest first.
func (sl *SessionLogger) RecentBrews(limit int) ([]BrewRecord, error) {
	rows, err := sl.db.Query(`
		SELECT id, session_id, timestamp, day, ingredients, outcome
		FROM brews
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query brews: %w", err)
	}
	defer rows.Close()

	var records []BrewRecord
	for rows.Next() {
		var r BrewRecord
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Timestamp, &r.Day, &r.Ingredients, &r.Outcome); err != nil {
			return nil, fmt.Errorf("failed to scan brew row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (sl *SessionLogger) Close() error {
	return sl.db.Close()
}
