package store

import (
	"testing"

	"amongus-stats-service/internal/testutil"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()
	dataset, loaded := s.Dataset()
	if loaded {
		t.Fatalf("expected no dataset before first set")
	}
	if !dataset.Empty() {
		t.Fatalf("expected empty dataset, got %+v", dataset)
	}
}

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()
	s.SetDataset(testutil.SampleDataset())

	dataset, loaded := s.Dataset()
	if !loaded {
		t.Fatalf("expected dataset to be loaded")
	}
	if len(dataset.Games) != 2 || len(dataset.Players) != 2 {
		t.Fatalf("unexpected dataset: %+v", dataset)
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	s := NewMemoryStore()
	s.SetDataset(testutil.SampleDataset())

	replacement := testutil.SampleDataset()
	replacement.Games = replacement.Games[:1]
	s.SetDataset(replacement)

	dataset, _ := s.Dataset()
	if len(dataset.Games) != 1 {
		t.Fatalf("expected replacement snapshot, got %d games", len(dataset.Games))
	}
}
