package memstore

import (
	"context"
	"testing"

	"github.com/rentio/rentio/pkg/rentio/store"
)

func TestAppendAndListOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	entries := []store.Entry{
		{ID: "1", Product: "sofa bed", Brand: "ikea", Category: "furniture", Price: "$50"},
		{ID: "2", Product: "book shelf", Brand: "ikea", Category: "furniture", Price: "$25"},
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
	if len(got) != 2 {
		t.Fatalf("ListEntries returned %d entries", len(got))
	}
	for i := range entries {
		if got[i].Product != entries[i].Product {
			t.Errorf("entry %d = %q, want %q (insertion order)", i, got[i].Product, entries[i].Product)
		}
	}
}

func TestGetEntryLastWins(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	s.AppendEntry(ctx, store.Entry{ID: "1", Product: "sofa bed", Price: "$50"})
	s.AppendEntry(ctx, store.Entry{ID: "2", Product: "sofa bed", Price: "$60"})

	e, ok, err := s.GetEntry(ctx, "sofa bed")
	if err != nil || !ok {
		t.Fatalf("GetEntry: %v, %v", ok, err)
	}
	if e.Price != "$60" {
		t.Errorf("Price = %q, want last appended $60", e.Price)
	}
}

func TestGetEntryMissing(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

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
	s := New()
	defer s.Close()

	s.AppendEntry(ctx, store.Entry{ID: "1", Product: "sofa bed"})
	s.AppendEntry(ctx, store.Entry{ID: "2", Product: "book shelf"})

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
