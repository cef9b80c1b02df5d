// Package summarystore persists computed spectral-averages summaries in
// SQLite, keyed by product and calculation standard. Stored summaries feed
// the emissivity/TIR resolution precedence on later runs of the same
// product.
package summarystore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/LBNL-ETA/opticalc/internal/optical"
)

const schema = `
CREATE TABLE IF NOT EXISTS summaries (
	id          TEXT PRIMARY KEY,
	product_key TEXT NOT NULL,
	standard    TEXT NOT NULL,
	summary     TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	UNIQUE (product_key, standard)
);

CREATE INDEX IF NOT EXISTS idx_summaries_product ON summaries (product_key);
`

// ErrNotFound reports that no summary is stored for the requested key.
var ErrNotFound = errors.New("summary not found")

type Store struct {
	db *sqlx.DB
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the summary under (productKey, summary.Standard). An existing
// row keeps its id and created_at; only the document and updated_at change.
func (s *Store) Save(productKey string, summary *optical.IntegratedSummary) error {
	if productKey == "" {
		return fmt.Errorf("save summary: empty product key")
	}
	if summary == nil {
		return fmt.Errorf("save summary: nil summary")
	}
	if summary.Standard == "" {
		return fmt.Errorf("save summary: summary has no standard name")
	}
	doc, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.Exec(`INSERT INTO summaries (id, product_key, standard, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (product_key, standard) DO UPDATE SET
			summary = excluded.summary,
			updated_at = excluded.updated_at`,
		uuid.New().String(), productKey, summary.Standard, string(doc), now, now)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}
	return nil
}

// Get returns the stored summary for one (productKey, standard) pair, or
// ErrNotFound.
func (s *Store) Get(productKey, standard string) (*optical.IntegratedSummary, error) {
	var doc string
	err := s.db.QueryRow(`SELECT summary FROM summaries WHERE product_key = ? AND standard = ?`,
		productKey, standard).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	return decode(doc)
}

// ListByProduct returns every stored summary for a product, newest first.
// The slice shape matches the product record field the resolver scans, so
// callers can attach it directly before regenerating.
func (s *Store) ListByProduct(productKey string) ([]optical.IntegratedSummary, error) {
	rows, err := s.db.Query(`SELECT summary FROM summaries WHERE product_key = ? ORDER BY updated_at DESC, standard`,
		productKey)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []optical.IntegratedSummary
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		summary, err := decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *summary)
	}
	return out, rows.Err()
}

func decode(doc string) (*optical.IntegratedSummary, error) {
	var summary optical.IntegratedSummary
	if err := json.Unmarshal([]byte(doc), &summary); err != nil {
		return nil, fmt.Errorf("decode stored summary: %w", err)
	}
	return &summary, nil
}
