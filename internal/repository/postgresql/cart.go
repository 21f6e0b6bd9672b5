package postgresql

import (
	"context"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

type CartRepo struct {
	db db.DB
}

func NewCartRepo(db db.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) GetByUser(ctx context.Context, userID string) ([]*repository.CartItem, error) {
	var items []*repository.CartItem
	err := r.db.Select(ctx, &items,
		"SELECT * FROM cart_items WHERE user_id = $1 ORDER BY item_id", userID)
	return items, err
}

func (r *CartRepo) GetByUserTx(ctx context.Context, tx db.Tx, userID string) ([]*repository.CartItem, error) {
	var items []*repository.CartItem
	err := tx.Select(ctx, &items,
		"SELECT * FROM cart_items WHERE user_id = $1 ORDER BY item_id FOR UPDATE", userID)
	return items, err
}

// AddOne is a single atomic upsert, so concurrent adds for the same user
// serialize in the database and every call bumps the quantity by exactly one.
func (r *CartRepo) AddOne(ctx context.Context, userID, itemID string) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO cart_items (user_id, item_id, quantity)
        VALUES ($1, $2, 1)
        ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = cart_items.quantity + 1
    `, userID, itemID)
	return err
}

func (r *CartRepo) SetQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO cart_items (user_id, item_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = $3
    `, userID, itemID, quantity)
	return err
}

func (r *CartRepo) Remove(ctx context.Context, userID, itemID string) error {
	_, err := r.db.Exec(ctx,
		"DELETE FROM cart_items WHERE user_id = $1 AND item_id = $2", userID, itemID)
	return err
}

func (r *CartRepo) ClearTx(ctx context.Context, tx db.Tx, userID string) error {
	_, err := tx.Exec(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	return err
}

func (r *CartRepo) ClearAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM cart_items")
	return err
}
