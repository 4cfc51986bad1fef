package catalog

import (
	"database/sql"
	"fmt"
	"sync"

	"FundPicker/internal/model"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps a catalog in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// OpenSQLite opens (or creates) the database at dbPath and runs migrations.
func OpenSQLite(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, path: dbPath, log: log.With().Str("component", "catalog_sqlite").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s.log.Info().Str("path", dbPath).Msg("sqlite catalog opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS funds (
			position   INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL,
			yearly_roi REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_funds_category ON funds(category)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) Name() string { return "sqlite:" + s.path }

// Load returns the stored funds in insertion order.
func (s *SQLiteStore) Load() ([]model.Fund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT name, category, yearly_roi FROM funds ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query funds: %w", err)
	}
	defer rows.Close()

	var funds []model.Fund
	for rows.Next() {
		var (
			f   model.Fund
			cat string
		)
		if err := rows.Scan(&f.Name, &cat, &f.YearlyROI); err != nil {
			return nil, fmt.Errorf("scan fund: %w", err)
		}
		f.Category = model.Category(cat)
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

// Replace swaps the stored catalog for funds in a single transaction.
func (s *SQLiteStore) Replace(funds []model.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM funds`); err != nil {
		return fmt.Errorf("clear funds: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO funds (position, name, category, yearly_roi) VALUES (?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range funds {
		if _, err := stmt.Exec(i, f.Name, string(f.Category), f.YearlyROI); err != nil {
			return fmt.Errorf("insert %q: %w", f.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Info().Int("funds", len(funds)).Msg("catalog replaced")
	return nil
}

func (s *SQLiteStore) Close() error {
	s.log.Debug().Msg("closing sqlite catalog")
	return s.db.Close()
}
