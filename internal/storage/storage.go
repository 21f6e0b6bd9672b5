package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

// OrderEventsTopic receives one message per order lifecycle transition,
// recorded through the outbox in the same transaction as the transition.
const OrderEventsTopic = "order_events"

// PostgresStorage implements the marketplace core over Postgres. Every
// mutating operation is a single transaction; the order row is the locking
// unit for lifecycle changes and the user's cart rows for cart changes.
type PostgresStorage struct {
	db       db.DB
	items    ItemRepository
	users    UserRepository
	carts    CartRepository
	orders   OrderRepository
	timeline TimelineRepository
	outbox   OutboxTaskRepository
	logger   *zap.Logger
}

func NewPostgresStorage(
	database db.DB,
	items ItemRepository,
	users UserRepository,
	carts CartRepository,
	orders OrderRepository,
	timeline TimelineRepository,
	outbox OutboxTaskRepository,
	logger *zap.Logger,
) *PostgresStorage {
	return &PostgresStorage{
		db:       database,
		items:    items,
		users:    users,
		carts:    carts,
		orders:   orders,
		timeline: timeline,
		outbox:   outbox,
		logger:   logger,
	}
}

func (s *PostgresStorage) ListItems(ctx context.Context) ([]*repository.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}

func (s *PostgresStorage) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &Profile{
		Username:      user.Username,
		DisplayName:   user.DisplayName,
		PaymentHandle: user.PaymentHandle,
	}, nil
}

// enqueueOrderEventTx records a lifecycle event in the outbox inside the
// caller's transaction so the event commits with the state change or not at all.
func (s *PostgresStorage) enqueueOrderEventTx(ctx context.Context, tx db.Tx, payload repository.OrderEventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	task := &repository.OutboxTask{
		Payload: raw,
		Topic:   OrderEventsTopic,
	}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue order event: %w", err)
	}
	return nil
}

// assembleOrder builds the caller-facing view of an order record: snapshot
// lines, totals, earnings and (for claimed or fulfilled orders) the timeline.
func (s *PostgresStorage) assembleOrder(ctx context.Context, rec *repository.Order) (*Order, error) {
	items, err := s.orders.GetItems(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{
			ItemID:     it.ItemID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	subtotal := SnapshotSubtotalCents(items)
	fee := feeCents(subtotal)

	order := &Order{
		ID:               rec.ID,
		UserID:           rec.UserID,
		Status:           Status(rec.Status),
		DeliveryLocation: rec.DeliveryLocation,
		TotalItems:       rec.TotalItems,
		ClaimedBy:        rec.ClaimedBy,
		CreatedAt:        rec.CreatedAt,
		Items:            lines,
		SubtotalCents:    subtotal,
		DeliveryFeeCents: fee,
		TotalCents:       subtotal + fee,
		EarningsCents:    fee,
	}

	if order.Status == StatusClaimed || order.Status == StatusFulfilled {
		steps, err := s.timeline.GetByOrderID(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get timeline: %w", err)
		}
		order.Timeline = toTimelineView(steps)
	}

	return order, nil
}

func (s *PostgresStorage) assembleOrders(ctx context.Context, recs []*repository.Order) ([]*Order, error) {
	orders := make([]*Order, 0, len(recs))
	for _, rec := range recs {
		order, err := s.assembleOrder(ctx, rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func toTimelineView(steps []*repository.TimelineStep) []TimelineStep {
	view := make([]TimelineStep, 0, len(steps))
	for _, st := range steps {
		view = append(view, TimelineStep{Name: st.Name, Checked: st.Checked})
	}
	return view
}
