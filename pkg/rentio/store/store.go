package store

import "context"

// Store holds raw catalog entries between ingestion and index
// construction. Implementations must return entries in insertion
// order: the index's tie-break rules depend on load order.
type Store interface {
	Close() error

	// AppendEntry stores one catalog entry.
	AppendEntry(ctx context.Context, e Entry) error

	// ListEntries returns all stored entries in insertion order.
	ListEntries(ctx context.Context) ([]Entry, error)

	// GetEntry returns an entry by product name. The last appended
	// entry wins when a product name repeats.
	GetEntry(ctx context.Context, product string) (Entry, bool, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}

// Entry is one stored catalog row.
type Entry struct {
	ID       string
	Product  string
	Brand    string
	Category string
	Price    string
}
