package catalogue

import "context"

type InMemoryRepository struct {
	cat *Catalogue
}

func NewInMemoryRepository(cat *Catalogue) *InMemoryRepository {
	if cat == nil {
		cat = &Catalogue{}
	}
	return &InMemoryRepository{cat: cat}
}

func (r *InMemoryRepository) Load(ctx context.Context) (*Catalogue, error) {
	return r.cat, nil
}

// Set replaces the backing catalogue so tests can exercise reloads.
func (r *InMemoryRepository) Set(cat *Catalogue) {
	r.cat = cat
}
