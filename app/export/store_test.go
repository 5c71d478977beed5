package export

import (
	"context"
	"path/filepath"
	"testing"
)

var fashionColumns = []string{"product_id", "product_name", "price", "rating", "description", "image_url", "product_url", "platform"}

func TestOpenRunsMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out", "catalog.db")

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}

	for _, table := range []Table{TableFashion, TableFurniture} {
		n, err := store.Count(ctx, table)
		if err != nil {
			t.Fatalf("Expected table %s to exist: %v", table, err)
		}
		if n != 0 {
			t.Errorf("Expected empty %s, got %d rows", table, n)
		}
	}

	store.Close()

	// Reopening must not fail on an up-to-date schema.
	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	reopened.Close()
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	rows := [][]any{
		{"1", "Top", 499.0, nil, nil, nil, nil, "Zara"},
		{"2", nil, nil, 4.2, "Cotton", "img", "url", "myntra"},
	}

	n, err := store.Replace(ctx, TableFashion, fashionColumns, rows)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Expected 2 inserted, got %d", n)
	}

	// A second run replaces rather than appends.
	if _, err := store.Replace(ctx, TableFashion, fashionColumns, rows[:1]); err != nil {
		t.Fatal(err)
	}
	count, err := store.Count(ctx, TableFashion)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row after replace, got %d", count)
	}
}

func TestReplaceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.Replace(ctx, Table("users"), fashionColumns, nil); err == nil {
		t.Error("Expected error for unknown table")
	}
	if _, err := store.Replace(ctx, TableFashion, fashionColumns, [][]any{{"1"}}); err == nil {
		t.Error("Expected error for short row")
	}

	count, err := store.Count(ctx, TableFashion)
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected failed replace to roll back, got %d rows", count)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), " "); err == nil {
		t.Error("Expected error for empty path")
	}
}
