package catalogue

import (
	"context"
	"errors"
	"testing"
)

func TestStoreLoadsOnConstruction(t *testing.T) {
	repo := NewInMemoryRepository(&Catalogue{
		Haram: []Entry{{Names: []string{"gelatin"}, Reason: "May be derived from pork"}},
	})

	store, err := NewStore(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.Catalogue().Haram); got != 1 {
		t.Fatalf("expected 1 haram entry, got %d", got)
	}
}

func TestStoreRejectsEntryWithoutNames(t *testing.T) {
	repo := NewInMemoryRepository(&Catalogue{
		Mushbooh: []Entry{{Reason: "source unknown"}},
	})

	_, err := NewStore(context.Background(), repo)
	if err == nil {
		t.Fatal("expected schema error")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if schemaErr.Field != "names" {
		t.Fatalf("expected names field, got %s", schemaErr.Field)
	}
}

func TestStoreRejectsEntryWithoutReason(t *testing.T) {
	repo := NewInMemoryRepository(&Catalogue{
		Haram: []Entry{{Names: []string{"lard"}}},
	})

	if _, err := NewStore(context.Background(), repo); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	repo := NewInMemoryRepository(&Catalogue{})
	store, err := NewStore(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	old := store.Catalogue()

	repo.Set(&Catalogue{
		Haram: []Entry{{Names: []string{"lard"}, Reason: "Pork fat"}},
	})
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if len(old.Haram) != 0 {
		t.Fatal("old snapshot was mutated by reload")
	}
	if got := len(store.Catalogue().Haram); got != 1 {
		t.Fatalf("expected 1 haram entry after reload, got %d", got)
	}
}

func TestStoreReloadKeepsSnapshotOnBadData(t *testing.T) {
	repo := NewInMemoryRepository(&Catalogue{
		Haram: []Entry{{Names: []string{"lard"}, Reason: "Pork fat"}},
	})
	store, err := NewStore(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.Set(&Catalogue{Haram: []Entry{{}}})
	if err := store.Reload(context.Background()); err == nil {
		t.Fatal("expected reload to fail on invalid data")
	}

	if got := len(store.Catalogue().Haram); got != 1 {
		t.Fatalf("previous snapshot lost, got %d entries", got)
	}
}
