package repository

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/config"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/store"
)

func newRepo(t *testing.T) (*store.Store, *SQLiteRepository) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "category_test.db")

	s, err := store.Open(config.SQLite{Path: dbPath, BusyTimeout: 5000}, zap.NewNop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s, NewSQLiteRepository(s)
}

func TestFindAllReturnsCategoriesSortedByName(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo(t)

	// Inserted out of alphabetical order on purpose.
	for _, name := range []string{"Toys", "Books", "Garden"} {
		if err := repo.Create(ctx, &model.Category{Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	categories, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	for i, want := range []string{"Books", "Garden", "Toys"} {
		if categories[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, categories[i].Name)
		}
		if categories[i].ID == 0 {
			t.Fatalf("category %q has no id", want)
		}
	}
}

func TestFindByNameMissesReturnNil(t *testing.T) {
	ctx := context.Background()
	_, repo := newRepo(t)

	c, err := repo.FindByName(ctx, "Nonexistent")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil for unknown name, got %+v", c)
	}
}
