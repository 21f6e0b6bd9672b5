package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

type ItemRepo struct {
	db db.DB
}

func NewItemRepo(db db.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*repository.Item, error) {
	var item repository.Item
	err := r.db.Get(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) List(ctx context.Context) ([]*repository.Item, error) {
	var items []*repository.Item
	err := r.db.Select(ctx, &items, "SELECT * FROM items ORDER BY id")
	return items, err
}

// Seed inserts catalog items, skipping ids that already exist. Used by the
// admin CLI only; the core treats the catalog as read-only.
func (r *ItemRepo) Seed(ctx context.Context, items []*repository.Item) error {
	for _, item := range items {
		_, err := r.db.Exec(ctx, `
        INSERT INTO items (id, name, price_cents, category)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `, item.ID, item.Name, item.PriceCents, item.Category)
		if err != nil {
			return err
		}
	}
	return nil
}
