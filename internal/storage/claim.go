package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/repository"
)

// ClaimOrder gives the deliverer exclusive rights to fulfill the order. The
// underlying update only moves placed -> claimed, so of any number of
// concurrent claimants exactly one wins the row; every loser observes the
// committed post-state and gets ErrAlreadyClaimed. The fresh timeline is
// created under the same commit.
func (s *PostgresStorage) ClaimOrder(ctx context.Context, orderID int64, deliverer string) (*Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	won, err := s.orders.ClaimTx(ctx, tx, orderID, deliverer, now)
	if err != nil {
		return nil, fmt.Errorf("failed to claim order: %w", err)
	}
	if !won {
		// Lost the race or the order was never claimable; look at the
		// committed state to tell the two apart.
		if _, err := s.orders.GetByID(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return nil, fmt.Errorf("failed to get order: %w", err)
		}
		return nil, fmt.Errorf("%w: order %d", ErrAlreadyClaimed, orderID)
	}

	if err := s.timeline.InitTx(ctx, tx, orderID, TimelineStepNames); err != nil {
		return nil, fmt.Errorf("failed to initialize timeline: %w", err)
	}

	rec, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to reread claimed order: %w", err)
	}

	if err := s.enqueueOrderEventTx(ctx, tx, repository.OrderEventPayload{
		OrderID:   orderID,
		UserID:    rec.UserID,
		OldStatus: string(StatusPlaced),
		NewStatus: string(StatusClaimed),
		ClaimedBy: deliverer,
		At:        now,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	s.logger.Info("order claimed",
		zap.Int64("order_id", orderID),
		zap.String("deliverer", deliverer))

	return s.assembleOrder(ctx, rec)
}

// DeclineOrder is the deliverer-side back-out. A claimant declining their
// own claimed order reverts it to placed, clears the claim and discards the
// timeline so the order can be re-claimed. A decline against an order the
// actor never claimed (still placed, or claimed by someone else) touches no
// shared state and succeeds as a no-op.
func (s *PostgresStorage) DeclineOrder(ctx context.Context, orderID int64, deliverer string) error {
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

	switch Status(rec.Status) {
	case StatusPlaced:
		return nil
	case StatusClaimed:
		if rec.ClaimedBy == nil || *rec.ClaimedBy != deliverer {
			return nil
		}
	default:
		return fmt.Errorf("%w: cannot decline a %s order", ErrIllegalTransition, rec.Status)
	}

	now := time.Now().UTC()
	if err := s.timeline.DeleteTx(ctx, tx, orderID); err != nil {
		return fmt.Errorf("failed to discard timeline: %w", err)
	}
	if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(StatusPlaced), nil, now); err != nil {
		return fmt.Errorf("failed to revert order: %w", err)
	}
	if err := s.enqueueOrderEventTx(ctx, tx, repository.OrderEventPayload{
		OrderID:   orderID,
		UserID:    rec.UserID,
		OldStatus: string(StatusClaimed),
		NewStatus: string(StatusPlaced),
		ClaimedBy: deliverer,
		At:        now,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit decline: %w", err)
	}

	s.logger.Info("order declined, reverted to placed",
		zap.Int64("order_id", orderID),
		zap.String("deliverer", deliverer))
	return nil
}
