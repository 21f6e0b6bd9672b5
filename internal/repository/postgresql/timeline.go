package postgresql

import (
	"context"

	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/repository"
)

type TimelineRepo struct {
	db db.DB
}

func NewTimelineRepo(db db.DB) *TimelineRepo {
	return &TimelineRepo{db: db}
}

func (r *TimelineRepo) InitTx(ctx context.Context, tx db.Tx, orderID int64, steps []string) error {
	for i, name := range steps {
		_, err := tx.Exec(ctx, `
        INSERT INTO timeline_steps (order_id, position, name, checked)
        VALUES ($1, $2, $3, FALSE)
    `, orderID, i, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *TimelineRepo) DeleteTx(ctx context.Context, tx db.Tx, orderID int64) error {
	_, err := tx.Exec(ctx, "DELETE FROM timeline_steps WHERE order_id = $1", orderID)
	return err
}

func (r *TimelineRepo) GetByOrderID(ctx context.Context, orderID int64) ([]*repository.TimelineStep, error) {
	var steps []*repository.TimelineStep
	err := r.db.Select(ctx, &steps,
		"SELECT * FROM timeline_steps WHERE order_id = $1 ORDER BY position", orderID)
	return steps, err
}

func (r *TimelineRepo) GetByOrderIDTx(ctx context.Context, tx db.Tx, orderID int64) ([]*repository.TimelineStep, error) {
	var steps []*repository.TimelineStep
	err := tx.Select(ctx, &steps,
		"SELECT * FROM timeline_steps WHERE order_id = $1 ORDER BY position FOR UPDATE", orderID)
	return steps, err
}

func (r *TimelineRepo) SetCheckedTx(ctx context.Context, tx db.Tx, orderID int64, position int, checked bool) error {
	_, err := tx.Exec(ctx, `
        UPDATE timeline_steps
        SET checked = $1
        WHERE order_id = $2 AND position = $3
    `, checked, orderID, position)
	return err
}
