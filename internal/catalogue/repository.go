package catalogue

import "context"

// Repository loads the ingredient dictionary from wherever a deployment
// keeps it: a local JSON file, Postgres, or an object in R2.
type Repository interface {
	Load(ctx context.Context) (*Catalogue, error)
}
