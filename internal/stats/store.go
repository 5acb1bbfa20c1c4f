package stats

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store records usage events (category views and searches) in a SQLite
// database. It is entirely off the rendering path; recording failures
// are reported to the caller and never affect a response.
type Store struct {
	db *sql.DB
}

// Open creates or opens the stats database at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating stats directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening stats database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging stats database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running stats migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory stats database (useful for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory stats database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running stats migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS usage_events (
    id TEXT PRIMARY KEY,
    timestamp DATETIME NOT NULL DEFAULT (datetime('now')),
    kind TEXT NOT NULL CHECK(kind IN ('view','search')),
    category TEXT NOT NULL DEFAULT '',
    term TEXT NOT NULL DEFAULT '',
    results INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_usage_kind ON usage_events(kind);
CREATE INDEX IF NOT EXISTS idx_usage_timestamp ON usage_events(timestamp);
`

// RecordView logs one category view.
func (s *Store) RecordView(ctx context.Context, category string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_events (id, kind, category) VALUES (?, 'view', ?)`,
		uuid.New().String(), category)
	if err != nil {
		return fmt.Errorf("inserting view event: %w", err)
	}
	return nil
}

// RecordSearch logs one search with its result count.
func (s *Store) RecordSearch(ctx context.Context, term string, results int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_events (id, kind, term, results) VALUES (?, 'search', ?, ?)`,
		uuid.New().String(), term, results)
	if err != nil {
		return fmt.Errorf("inserting search event: %w", err)
	}
	return nil
}

// CategoryCount is one row of the per-category view tally.
type CategoryCount struct {
	Category string `json:"category"`
	Views    int    `json:"views"`
}

// TermCount is one row of the search-term tally.
type TermCount struct {
	Term     string `json:"term"`
	Searches int    `json:"searches"`
}

// Summary aggregates recorded usage.
type Summary struct {
	TotalViews    int             `json:"total_views"`
	TotalSearches int             `json:"total_searches"`
	TopCategories []CategoryCount `json:"top_categories"`
	TopTerms      []TermCount     `json:"top_terms"`
}

// Summarize computes the usage summary, limiting each tally to the top
// ten entries.
func (s *Store) Summarize(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM usage_events WHERE kind = 'view'`)
	if err := row.Scan(&sum.TotalViews); err != nil {
		return nil, fmt.Errorf("counting views: %w", err)
	}

	row = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM usage_events WHERE kind = 'search'`)
	if err := row.Scan(&sum.TotalSearches); err != nil {
		return nil, fmt.Errorf("counting searches: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) AS n FROM usage_events
		WHERE kind = 'view' GROUP BY category ORDER BY n DESC, category LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("querying top categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cc CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Views); err != nil {
			return nil, fmt.Errorf("scanning category tally: %w", err)
		}
		sum.TopCategories = append(sum.TopCategories, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	termRows, err := s.db.QueryContext(ctx, `
		SELECT term, COUNT(*) AS n FROM usage_events
		WHERE kind = 'search' GROUP BY term ORDER BY n DESC, term LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("querying top terms: %w", err)
	}
	defer termRows.Close()
	for termRows.Next() {
		var tc TermCount
		if err := termRows.Scan(&tc.Term, &tc.Searches); err != nil {
			return nil, fmt.Errorf("scanning term tally: %w", err)
		}
		sum.TopTerms = append(sum.TopTerms, tc)
	}
	return sum, termRows.Err()
}
