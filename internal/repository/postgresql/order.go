package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
	"github.com/tigercart/tigercart/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	// The serial id keeps order identity monotonic across the whole store.
	return tx.Get(ctx, &order.ID, `
        INSERT INTO orders (
            user_id, status, delivery_location, total_items, claimed_by, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, order.UserID, order.Status, order.DeliveryLocation, order.TotalItems, order.ClaimedBy, order.CreatedAt, order.UpdatedAt)
}

func (r *OrderRepo) AddItemsTx(ctx context.Context, tx db.Tx, items []*repository.OrderItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
        INSERT INTO order_items (order_id, item_id, name, price_cents, quantity)
        VALUES ($1, $2, $3, $4, $5)
    `, item.OrderID, item.ItemID, item.Name, item.PriceCents, item.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetItems(ctx context.Context, orderID int64) ([]*repository.OrderItem, error) {
	var items []*repository.OrderItem
	err := r.db.Select(ctx, &items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY item_id", orderID)
	return items, err
}

func (r *OrderRepo) GetByStatus(ctx context.Context, status string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders,
		"SELECT * FROM orders WHERE status = $1 ORDER BY created_at ASC", status)
	return orders, err
}

func (r *OrderRepo) GetByUserID(ctx context.Context, userID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return orders, err
}

func (r *OrderRepo) GetByClaimant(ctx context.Context, deliverer string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders,
		"SELECT * FROM orders WHERE claimed_by = $1 ORDER BY created_at DESC", deliverer)
	return orders, err
}

// ClaimTx is the claim compare-and-swap. The status guard in the WHERE
// clause means the row moves out of placed at most once; the returned flag
// reports whether this caller's update took it.
func (r *OrderRepo) ClaimTx(ctx context.Context, tx db.Tx, orderID int64, deliverer string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET status = $1, claimed_by = $2, updated_at = $3
        WHERE id = $4 AND status = $5
    `, string(storage.StatusClaimed), deliverer, at, orderID, string(storage.StatusPlaced))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, orderID int64, status string, claimedBy *string, at time.Time) error {
	_, err := tx.Exec(ctx, `
        UPDATE orders
        SET status = $1, claimed_by = $2, updated_at = $3
        WHERE id = $4
    `, status, claimedBy, at, orderID)
	return err
}

func (r *OrderRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM orders")
	return err
}
