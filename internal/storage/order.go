package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/repository"
)

// PlaceOrder freezes the user's cart into a new placed order. Snapshotting,
// order insertion, cart clearing and the outbox event commit as one
// transaction, so a crash can never eat the cart without producing an order
// or leave a stale cart behind a recorded order.
func (s *PostgresStorage) PlaceOrder(ctx context.Context, userID, deliveryLocation string) (*Order, error) {
	if strings.TrimSpace(deliveryLocation) == "" {
		return nil, ErrMissingLocation
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	entries, err := s.carts.GetByUserTx(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	rec := &repository.Order{
		UserID:           userID,
		Status:           string(StatusPlaced),
		DeliveryLocation: deliveryLocation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	snapshot := make([]*repository.OrderItem, 0, len(entries))
	for _, entry := range entries {
		line := &repository.OrderItem{
			ItemID:   entry.ItemID,
			Quantity: entry.Quantity,
		}
		// Bind the current catalog name and price into the snapshot. An item
		// that vanished from the catalog is frozen at zero rather than
		// failing the placement.
		item, err := s.items.GetByID(ctx, entry.ItemID)
		switch {
		case err == nil:
			line.Name = item.Name
			line.PriceCents = item.PriceCents
		case errors.Is(err, repository.ErrObjectNotFound):
		default:
			return nil, fmt.Errorf("failed to look up catalog item: %w", err)
		}
		rec.TotalItems += entry.Quantity
		snapshot = append(snapshot, line)
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ItemID < snapshot[j].ItemID })

	if err := s.orders.CreateTx(ctx, tx, rec); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	for _, line := range snapshot {
		line.OrderID = rec.ID
	}
	if err := s.orders.AddItemsTx(ctx, tx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to insert order snapshot: %w", err)
	}
	if err := s.carts.ClearTx(ctx, tx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.enqueueOrderEventTx(ctx, tx, repository.OrderEventPayload{
		OrderID:   rec.ID,
		UserID:    userID,
		NewStatus: string(StatusPlaced),
		At:        now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order placement: %w", err)
	}

	s.logger.Info("order placed",
		zap.Int64("order_id", rec.ID),
		zap.String("user_id", userID),
		zap.Int("total_items", rec.TotalItems))

	return s.assembleOrder(ctx, rec)
}

func (s *PostgresStorage) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	rec, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return s.assembleOrder(ctx, rec)
}

func (s *PostgresStorage) ListOrdersByStatus(ctx context.Context, status Status) ([]*Order, error) {
	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: status %q", ErrNotFound, status)
	}
	recs, err := s.orders.GetByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return s.assembleOrders(ctx, recs)
}

func (s *PostgresStorage) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	recs, err := s.orders.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return s.assembleOrders(ctx, recs)
}

func (s *PostgresStorage) ListDeliveries(ctx context.Context, deliverer string) ([]*Order, error) {
	recs, err := s.orders.GetByClaimant(ctx, deliverer)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return s.assembleOrders(ctx, recs)
}

// TransitionOrder applies one edge of the lifecycle state machine on behalf
// of an actor. Claiming goes through ClaimOrder so the timeline gets
// initialized under the same commit.
func (s *PostgresStorage) TransitionOrder(ctx context.Context, orderID int64, to Status, actor string) error {
	if to == StatusClaimed {
		_, err := s.ClaimOrder(ctx, orderID, actor)
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	rec, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return fmt.Errorf("failed to lock order: %w", err)
	}

	if err := checkTransition(rec, to, actor); err != nil {
		return err
	}

	if to == StatusFulfilled {
		steps, err := s.timeline.GetByOrderIDTx(ctx, tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to read timeline: %w", err)
		}
		for _, st := range steps {
			if !st.Checked {
				return fmt.Errorf("%w: timeline step %q is not complete", ErrIllegalTransition, st.Name)
			}
		}
	}

	now := time.Now().UTC()
	claimedBy := rec.ClaimedBy
	if to != StatusFulfilled {
		// Leaving claimed for anything but fulfilled releases the order.
		claimedBy = nil
		if Status(rec.Status) == StatusClaimed {
			if err := s.timeline.DeleteTx(ctx, tx, orderID); err != nil {
				return fmt.Errorf("failed to discard timeline: %w", err)
			}
		}
	}

	if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(to), claimedBy, now); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	event := repository.OrderEventPayload{
		OrderID:   orderID,
		UserID:    rec.UserID,
		OldStatus: rec.Status,
		NewStatus: string(to),
		At:        now,
	}
	if claimedBy != nil {
		event.ClaimedBy = *claimedBy
	}
	if err := s.enqueueOrderEventTx(ctx, tx, event); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transition: %w", err)
	}

	s.logger.Info("order transitioned",
		zap.Int64("order_id", orderID),
		zap.String("from", rec.Status),
		zap.String("to", string(to)),
		zap.String("actor", actor))
	return nil
}

// CancelOrder cancels a still-placed order on behalf of its owner.
func (s *PostgresStorage) CancelOrder(ctx context.Context, orderID int64, actor string) error {
	return s.TransitionOrder(ctx, orderID, StatusCancelled, actor)
}

// ResetOrders deletes every order outright. Admin tooling only; normal
// lifecycle never destroys an order.
func (s *PostgresStorage) ResetOrders(ctx context.Context) error {
	return s.orders.DeleteAll(ctx)
}

// ResetCarts empties every user's cart. Admin tooling only.
func (s *PostgresStorage) ResetCarts(ctx context.Context) error {
	return s.carts.ClearAll(ctx)
}
