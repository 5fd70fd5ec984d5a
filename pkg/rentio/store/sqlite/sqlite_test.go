package sqlite

import (
	"context"
	"testing"

	"github.com/rentio/rentio/pkg/rentio/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndListOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	entries := []store.Entry{
		{ID: "1", Product: "sofa bed", Brand: "ikea", Category: "furniture", Price: "$50"},
		{ID: "2", Product: "book shelf", Brand: "ikea", Category: "furniture", Price: "$25"},
		{ID: "3", Product: "coffee machine", Brand: "philips", Category: "appliances", Price: "$30"},
	}
	for _, e := range entries {
		if err := s.AppendEntry(ctx, e); err != nil {
			t.Fatalf("AppendEntry: %v", err)
		}
	}

	got, err := s.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("ListEntries returned %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestGetEntryLastWins(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	s.AppendEntry(ctx, store.Entry{ID: "1", Product: "sofa bed", Brand: "ikea", Category: "furniture", Price: "$50"})
	s.AppendEntry(ctx, store.Entry{ID: "2", Product: "sofa bed", Brand: "habitat", Category: "furniture", Price: "$60"})

	e, ok, err := s.GetEntry(ctx, "sofa bed")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if !ok {
		t.Fatal("entry should exist")
	}
	if e.Price != "$60" || e.Brand != "habitat" {
		t.Errorf("GetEntry = %+v, want last appended row", e)
	}
}

func TestGetEntryMissing(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.GetEntry(ctx, "nothing")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if ok {
		t.Error("missing entry should report not found")
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.AppendEntry(ctx, store.Entry{ID: "1", Product: "sofa bed"}); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
