package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hc12r/filipeX/internal/domain"
	"github.com/hc12r/filipeX/internal/ports"
)

// SQLiteStore persists REPL history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path. An empty path
// defaults to ~/.filipec/history/history.db. When the database cannot be
// opened the store degrades to a jsonl file next to it.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(userHome(), ".filipec", "history", "history.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS repl_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		session TEXT,
		source TEXT,
		result TEXT,
		is_error INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO repl_entries
		(timestamp, session, source, result, is_error)
		VALUES (?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Session,
		record.Source,
		record.Result,
		boolToInt(record.IsError),
	)
	return err
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStore) Recent(limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback().Recent(limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT timestamp, session, source, result, is_error
		FROM repl_entries ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var stamp string
		var isError int
		if err := rows.Scan(&stamp, &rec.Session, &rec.Source, &rec.Result, &isError); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339, stamp); err == nil {
			rec.Timestamp = parsed
		}
		rec.IsError = isError != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, ".db") + ".jsonl"}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
