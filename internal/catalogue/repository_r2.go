package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
)

// ObjectFetcher is the slice of the storage client this repository needs.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// R2Repository loads the ingredients document from object storage, for
// deployments where the dictionary is curated outside the server image.
type R2Repository struct {
	storage ObjectFetcher
	key     string
}

func NewR2Repository(storage ObjectFetcher, key string) *R2Repository {
	return &R2Repository{storage: storage, key: key}
}

func (r *R2Repository) Load(ctx context.Context) (*Catalogue, error) {
	data, err := r.storage.Fetch(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("fetch catalogue object %s: %w", r.key, err)
	}

	var cat Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalogue object %s: %w", r.key, err)
	}
	return &cat, nil
}
