package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/feeder/internal/models"
)

// SQLiteSource reads feedings written by another system. The database is
// opened read-only; this package never creates or alters it.
//
// Expected table:
//
//	CREATE TABLE feedings (id TEXT PRIMARY KEY, date TEXT NOT NULL, time TEXT NOT NULL)
type SQLiteSource struct {
	path string
}

func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

func (s *SQLiteSource) dsn() string {
	return "file:" + (&url.URL{Path: s.path}).EscapedPath() + "?mode=ro"
}

// Records returns every feeding in insertion order
func (s *SQLiteSource) Records(ctx context.Context) ([]models.HistoryRecord, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("history database %s not found", s.path)
	}

	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, date, time
		FROM feedings
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var r models.HistoryRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Time); err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedings: %w", err)
	}

	return records, nil
}
