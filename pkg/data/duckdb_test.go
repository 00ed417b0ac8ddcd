package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "hub-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewRepository(filepath.Join(tmpDir, "cache.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestReplaceAndListDemos(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	demos := []Demo{
		{Name: "Pair programming night", Category: CategoryLive, LiveDemoURL: "https://example.org/live", SourceCodeURL: "https://example.org/src"},
		{Name: "Todo app", Category: CategoryExample, LiveDemoURL: "https://example.org/todo", SourceCodeURL: "https://example.org/todo-src"},
	}

	if err := repo.ReplaceDemos(demos); err != nil {
		t.Fatalf("Failed to replace demos: %v", err)
	}

	got, err := repo.ListDemos()
	if err != nil {
		t.Fatalf("Failed to list demos: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 demos, got %d", len(got))
	}
	if got[0] != demos[0] || got[1] != demos[1] {
		t.Errorf("Demos did not round-trip: %v", got)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := []Demo{
		{Name: "One", Category: CategoryLive},
		{Name: "Two", Category: CategoryExample},
		{Name: "Three", Category: CategoryExample},
	}
	if err := repo.ReplaceDemos(first); err != nil {
		t.Fatalf("Failed to replace demos: %v", err)
	}

	// A second replace must not merge with the first.
	second := []Demo{{Name: "Four", Category: CategoryLive}}
	if err := repo.ReplaceDemos(second); err != nil {
		t.Fatalf("Failed to replace demos: %v", err)
	}

	got, err := repo.ListDemos()
	if err != nil {
		t.Fatalf("Failed to list demos: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Four" {
		t.Errorf("Expected only the second list, got %v", got)
	}
}

func TestListOrderPreserved(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	presentations := []Presentation{
		{Name: "Z talk", Category: "talk", Author: "Ana"},
		{Name: "A talk", Category: "talk", Author: "Bo", URL: "https://example.org/a"},
		{Name: "M talk", Category: "lightning", Author: "Cy"},
	}
	if err := repo.ReplacePresentations(presentations); err != nil {
		t.Fatalf("Failed to replace presentations: %v", err)
	}

	got, err := repo.ListPresentations()
	if err != nil {
		t.Fatalf("Failed to list presentations: %v", err)
	}
	for i := range presentations {
		if got[i] != presentations[i] {
			t.Errorf("Position %d: got %v, want %v", i, got[i], presentations[i])
		}
	}
}

func TestListEmptyCache(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	resources, err := repo.ListResources()
	if err != nil {
		t.Fatalf("Failed to list resources: %v", err)
	}
	if len(resources) != 0 {
		t.Errorf("Expected empty cache, got %v", resources)
	}
}
