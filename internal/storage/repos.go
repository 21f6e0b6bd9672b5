//go:generate mockgen -source ./repos.go -destination=./mocks/repos.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

// ItemRepository is the catalog accessor. The core never writes items.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*repository.Item, error)
	List(ctx context.Context) ([]*repository.Item, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*repository.User, error)
	CreateUser(ctx context.Context, username, password, displayName string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type CartRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*repository.CartItem, error)
	// GetByUserTx locks the user's cart rows for the rest of the transaction.
	GetByUserTx(ctx context.Context, tx db.Tx, userID string) ([]*repository.CartItem, error)
	AddOne(ctx context.Context, userID, itemID string) error
	SetQuantity(ctx context.Context, userID, itemID string, quantity int) error
	Remove(ctx context.Context, userID, itemID string) error
	ClearTx(ctx context.Context, tx db.Tx, userID string) error
	ClearAll(ctx context.Context) error
}

type OrderRepository interface {
	// CreateTx inserts the order and fills in its generated id.
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	AddItemsTx(ctx context.Context, tx db.Tx, items []*repository.OrderItem) error
	GetByID(ctx context.Context, id int64) (*repository.Order, error)
	// GetByIDTx locks the order row for the rest of the transaction.
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Order, error)
	GetItems(ctx context.Context, orderID int64) ([]*repository.OrderItem, error)
	GetByStatus(ctx context.Context, status string) ([]*repository.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]*repository.Order, error)
	GetByClaimant(ctx context.Context, deliverer string) ([]*repository.Order, error)
	// ClaimTx is the compare-and-swap at the heart of claim resolution: it
	// moves the order from placed to claimed only if it is still placed, and
	// reports whether this caller won the row.
	ClaimTx(ctx context.Context, tx db.Tx, orderID int64, deliverer string, at time.Time) (bool, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, orderID int64, status string, claimedBy *string, at time.Time) error
	DeleteAll(ctx context.Context) error
}

type TimelineRepository interface {
	InitTx(ctx context.Context, tx db.Tx, orderID int64, steps []string) error
	DeleteTx(ctx context.Context, tx db.Tx, orderID int64) error
	GetByOrderID(ctx context.Context, orderID int64) ([]*repository.TimelineStep, error)
	GetByOrderIDTx(ctx context.Context, tx db.Tx, orderID int64) ([]*repository.TimelineStep, error)
	SetCheckedTx(ctx context.Context, tx db.Tx, orderID int64, position int, checked bool) error
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
