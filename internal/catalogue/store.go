package catalogue

import (
	"context"
	"log"
	"sync"
)

// Store holds the loaded dictionary for the lifetime of the process.
// Requests read a consistent snapshot; an admin-triggered Reload swaps
// the whole snapshot, it never mutates one in place.
type Store struct {
	repo Repository

	mu  sync.RWMutex
	cat *Catalogue
}

// NewStore performs the initial load and schema validation. Called once
// at boot; a schema problem here is fatal for startup rather than a
// per-request surprise.
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	s := &Store{repo: repo}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Catalogue() *Catalogue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

func (s *Store) Reload(ctx context.Context) error {
	cat, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.cat = cat
	s.mu.Unlock()

	log.Printf("catalogue loaded: %d haram, %d mushbooh entries", len(cat.Haram), len(cat.Mushbooh))
	return nil
}
