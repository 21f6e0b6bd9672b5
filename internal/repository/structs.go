package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

// Item is a row of the read-only catalog.
type Item struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	Category   string `db:"category"`
}

type User struct {
	Username      string    `db:"username"`
	Password      string    `db:"password"`
	DisplayName   string    `db:"display_name"`
	PaymentHandle *string   `db:"payment_handle"`
	CreatedAt     time.Time `db:"created_at"`
}

// CartItem is one entry of a user's live cart. Quantity is always >= 1;
// a zero-quantity entry is deleted instead.
type CartItem struct {
	UserID   string `db:"user_id"`
	ItemID   string `db:"item_id"`
	Quantity int    `db:"quantity"`
}

type Order struct {
	ID               int64     `db:"id"`
	UserID           string    `db:"user_id"`
	Status           string    `db:"status"`
	DeliveryLocation string    `db:"delivery_location"`
	TotalItems       int       `db:"total_items"`
	ClaimedBy        *string   `db:"claimed_by"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// OrderItem is one line of an order snapshot. Name and price are frozen at
// placement time; later catalog changes never reach these rows.
type OrderItem struct {
	OrderID    int64  `db:"order_id"`
	ItemID     string `db:"item_id"`
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	Quantity   int    `db:"quantity"`
}

type TimelineStep struct {
	OrderID  int64  `db:"order_id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	Checked  bool   `db:"checked"`
}
