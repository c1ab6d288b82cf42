package catalogue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (*Catalogue, error) {
	haram, err := r.loadCategory(ctx, "haram")
	if err != nil {
		return nil, err
	}
	mushbooh, err := r.loadCategory(ctx, "mushbooh")
	if err != nil {
		return nil, err
	}
	return &Catalogue{Haram: haram, Mushbooh: mushbooh}, nil
}

func (r *PostgresRepository) loadCategory(ctx context.Context, category string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT names, reason
		FROM ingredients
		WHERE category = $1
		ORDER BY id
	`, category)
	if err != nil {
		return nil, fmt.Errorf("query %s ingredients: %w", category, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Names, &e.Reason); err != nil {
			return nil, fmt.Errorf("scan %s ingredient: %w", category, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
