package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// claimFixtureOrder places an order for connor and claims it as jacob.
func claimFixtureOrder(t *testing.T, stg *PostgresStorage) int64 {
	t.Helper()
	placed := placeFixtureOrder(t, stg, "connor")
	_, err := stg.ClaimOrder(context.Background(), placed.ID, "jacob")
	require.NoError(t, err)
	return placed.ID
}

func TestSetTimelineStep_InOrder(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)

	steps, status, err := stg.SetTimelineStep(ctx, orderID, "Payment Received", true, "jacob")
	require.NoError(t, err)
	assert.Equal(t, StatusClaimed, status)
	assert.True(t, steps[0].Checked)
	assert.False(t, steps[1].Checked)

	steps, status, err = stg.SetTimelineStep(ctx, orderID, "Shopping", true, "jacob")
	require.NoError(t, err)
	assert.Equal(t, StatusClaimed, status)
	assert.True(t, steps[1].Checked)
}

func TestSetTimelineStep_OutOfOrder(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)

	// "Shopping" needs "Payment Received" first
	_, _, err := stg.SetTimelineStep(ctx, orderID, "Shopping", true, "jacob")
	assert.ErrorIs(t, err, ErrOutOfOrder)

	// and the final step is nowhere near checkable
	_, _, err = stg.SetTimelineStep(ctx, orderID, "Delivered", true, "jacob")
	assert.ErrorIs(t, err, ErrOutOfOrder)
}

func TestSetTimelineStep_Uncheck(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)

	_, _, err := stg.SetTimelineStep(ctx, orderID, "Payment Received", true, "jacob")
	require.NoError(t, err)
	_, _, err = stg.SetTimelineStep(ctx, orderID, "Shopping", true, "jacob")
	require.NoError(t, err)

	// cannot uncheck a step while a later one is complete
	_, _, err = stg.SetTimelineStep(ctx, orderID, "Payment Received", false, "jacob")
	assert.ErrorIs(t, err, ErrInvalidUncheck)

	// the frontier step itself unchecks fine
	steps, status, err := stg.SetTimelineStep(ctx, orderID, "Shopping", false, "jacob")
	require.NoError(t, err)
	assert.Equal(t, StatusClaimed, status)
	assert.False(t, steps[1].Checked)
	assert.True(t, steps[0].Checked)
}

func TestSetTimelineStep_FinalStepFulfills(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)

	var status Status
	var err error
	for _, name := range TimelineStepNames {
		_, status, err = stg.SetTimelineStep(ctx, orderID, name, true, "jacob")
		require.NoError(t, err)
	}
	assert.Equal(t, StatusFulfilled, status)

	got, err := stg.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatusFulfilled, got.Status)
	// fulfillment keeps the deliverer on the order for the earnings view
	require.NotNil(t, got.ClaimedBy)
	assert.Equal(t, "jacob", *got.ClaimedBy)

	// a fulfilled checklist is frozen
	_, _, err = stg.SetTimelineStep(ctx, orderID, "Delivered", false, "jacob")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSetTimelineStep_OnlyClaimant(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)

	_, _, err := stg.SetTimelineStep(ctx, orderID, "Payment Received", true, "connor")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetTimelineStep_UnknownStep(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	orderID := claimFixtureOrder(t, stg)

	_, _, err := stg.SetTimelineStep(context.Background(), orderID, "Teleporting", true, "jacob")
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestSetTimelineStep_PlacedOrderHasNoChecklist(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	placed := placeFixtureOrder(t, stg, "connor")

	_, _, err := stg.SetTimelineStep(context.Background(), placed.ID, "Payment Received", true, "jacob")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestGetTimeline(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	orderID := claimFixtureOrder(t, stg)
	_, _, err := stg.SetTimelineStep(ctx, orderID, "Payment Received", true, "jacob")
	require.NoError(t, err)

	steps, err := stg.GetTimeline(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, steps, len(TimelineStepNames))
	assert.True(t, steps[0].Checked)
	assert.False(t, steps[1].Checked)
}

func TestGetTimeline_NotFound(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	_, err := stg.GetTimeline(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
