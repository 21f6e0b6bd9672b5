package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/repository"
)

// SetTimelineStep checks or unchecks one step of a claimed order's checklist.
// A step may only be checked once its predecessor is complete, and only
// unchecked while no later step is complete. Checking the final step
// completes the delivery and moves the order to fulfilled under the same
// commit. Returns the updated timeline and the order's resulting status.
func (s *PostgresStorage) SetTimelineStep(ctx context.Context, orderID int64, stepName string, checked bool, actor string) ([]TimelineStep, Status, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	rec, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, "", fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, "", fmt.Errorf("failed to lock order: %w", err)
	}

	if Status(rec.Status) != StatusClaimed {
		return nil, "", fmt.Errorf("%w: timeline of a %s order is immutable", ErrIllegalTransition, rec.Status)
	}
	if rec.ClaimedBy == nil || *rec.ClaimedBy != actor {
		return nil, "", fmt.Errorf("%w: only the claimant may update the timeline", ErrForbidden)
	}

	steps, err := s.timeline.GetByOrderIDTx(ctx, tx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read timeline: %w", err)
	}

	pos := -1
	for i, st := range steps {
		if st.Name == stepName {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownStep, stepName)
	}

	if checked {
		if pos > 0 && !steps[pos-1].Checked {
			return nil, "", fmt.Errorf("%w: complete %q first", ErrOutOfOrder, steps[pos-1].Name)
		}
	} else {
		for _, later := range steps[pos+1:] {
			if later.Checked {
				return nil, "", fmt.Errorf("%w: %q is already complete", ErrInvalidUncheck, later.Name)
			}
		}
	}

	if err := s.timeline.SetCheckedTx(ctx, tx, orderID, steps[pos].Position, checked); err != nil {
		return nil, "", fmt.Errorf("failed to update timeline step: %w", err)
	}
	steps[pos].Checked = checked

	status := Status(rec.Status)
	if checked && allChecked(steps) {
		now := time.Now().UTC()
		status = StatusFulfilled
		if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(StatusFulfilled), rec.ClaimedBy, now); err != nil {
			return nil, "", fmt.Errorf("failed to fulfill order: %w", err)
		}
		if err := s.enqueueOrderEventTx(ctx, tx, repository.OrderEventPayload{
			OrderID:   orderID,
			UserID:    rec.UserID,
			OldStatus: string(StatusClaimed),
			NewStatus: string(StatusFulfilled),
			ClaimedBy: *rec.ClaimedBy,
			At:        now,
		}); err != nil {
			return nil, "", err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to commit timeline update: %w", err)
	}

	if status == StatusFulfilled {
		s.logger.Info("order fulfilled", zap.Int64("order_id", orderID), zap.String("deliverer", actor))
	}

	return toTimelineView(steps), status, nil
}

func (s *PostgresStorage) GetTimeline(ctx context.Context, orderID int64) ([]TimelineStep, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	steps, err := s.timeline.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}
	return toTimelineView(steps), nil
}

func allChecked(steps []*repository.TimelineStep) bool {
	for _, st := range steps {
		if !st.Checked {
			return false
		}
	}
	return true
}
