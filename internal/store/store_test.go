package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/OpenAiTx/MiniExam/internal/store"
)

func TestSQLite_RoundTrip(t *testing.T) {
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.Get(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := db.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := db.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("unexpected value %q", got)
	}

	// Overwrite.
	if err := db.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, _ = db.Get(ctx, "k")
	if string(got) != `{"a":2}` {
		t.Errorf("expected overwritten value, got %q", got)
	}

	if err := db.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := db.Get(ctx, "k"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRepository_MissingKeyReadsZeroValue(t *testing.T) {
	repo := store.NewRepository[[]string](store.NewMemory(), "list")

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil slice for missing key, got %v", got)
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	repo := store.NewRepository[record](store.NewMemory(), "rec")
	ctx := context.Background()

	if err := repo.Put(ctx, record{Name: "exam", Count: 3}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "exam" || got.Count != 3 {
		t.Errorf("unexpected record: %+v", got)
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err = repo.Get(ctx)
	if err != nil || got.Name != "" {
		t.Errorf("expected zero value after delete, got %+v (%v)", got, err)
	}
}

func TestQuestionsKey(t *testing.T) {
	if got := store.QuestionsKey("network"); got != "custom-questions-network" {
		t.Errorf("unexpected key %q", got)
	}
}
