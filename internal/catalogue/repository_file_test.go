package catalogue

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRepositoryMissingFileIsEmptyCatalogue(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope.json"))

	cat, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Size() != 0 {
		t.Fatalf("expected empty catalogue, got %d entries", cat.Size())
	}
}

func TestFileRepositoryParsesDocument(t *testing.T) {
	doc := `{
		"haram_ingredients": [
			{"names": ["gelatin", "gelatine"], "reason": "May be derived from pork"}
		],
		"mushbooh_ingredients": [
			{"names": ["e471"], "reason": "Emulsifier of uncertain origin"}
		]
	}`

	path := filepath.Join(t.TempDir(), "ingredients.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := NewFileRepository(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Haram) != 1 || len(cat.Mushbooh) != 1 {
		t.Fatalf("unexpected shape: %d haram, %d mushbooh", len(cat.Haram), len(cat.Mushbooh))
	}
	if cat.Haram[0].Names[0] != "gelatin" {
		t.Fatalf("expected canonical name gelatin, got %s", cat.Haram[0].Names[0])
	}
}

func TestFileRepositoryRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileRepository(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}
