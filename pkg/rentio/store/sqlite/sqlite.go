package sqlite

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/rentio/rentio/pkg/rentio/store"
)

// sqliteStore implements store.Store on a SQLite database. The
// default path is ":memory:"; nothing requires a file on disk.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite-backed catalog store. Pass ":memory:" for a
// purely in-process store.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// The catalog is written once at startup and then only read, so
	// a single connection avoids :memory: databases diverging per
	// connection.
	db.SetMaxOpenConns(1)

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL,
	product TEXT NOT NULL,
	brand TEXT NOT NULL,
	category TEXT NOT NULL,
	price TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS entries_product ON entries(product);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AppendEntry stores one catalog entry.
func (s *sqliteStore) AppendEntry(ctx context.Context, e store.Entry) error {
	const stmt = `
INSERT INTO entries (id, product, brand, category, price)
VALUES (?, ?, ?, ?, ?);`

	_, err := s.db.ExecContext(ctx, stmt, e.ID, e.Product, e.Brand, e.Category, e.Price)
	return err
}

// ListEntries returns all entries ordered by insertion.
func (s *sqliteStore) ListEntries(ctx context.Context) ([]store.Entry, error) {
	const query = `
SELECT id, product, brand, category, price
FROM entries
ORDER BY seq;`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		var e store.Entry
		if err := rows.Scan(&e.ID, &e.Product, &e.Brand, &e.Category, &e.Price); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetEntry returns the last entry stored under a product name.
func (s *sqliteStore) GetEntry(ctx context.Context, product string) (store.Entry, bool, error) {
	const query = `
SELECT id, product, brand, category, price
FROM entries
WHERE product = ?
ORDER BY seq DESC
LIMIT 1;`

	var e store.Entry
	err := s.db.QueryRowContext(ctx, query, product).Scan(&e.ID, &e.Product, &e.Brand, &e.Category, &e.Price)
	if err == sql.ErrNoRows {
		return store.Entry{}, false, nil
	}
	if err != nil {
		return store.Entry{}, false, err
	}
	return e, true, nil
}

// Count returns the number of stored entries.
func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries;`).Scan(&n)
	return n, err
}
