package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigercart/tigercart/internal/repository"
)

// placeFixtureOrder puts 2x chips + 1x candy bar (subtotal 417) in the cart
// and places the order.
func placeFixtureOrder(t *testing.T, stg *PostgresStorage, userID string) *Order {
	t.Helper()
	ctx := context.Background()
	for _, itemID := range []string{"4", "4", "5"} {
		_, err := stg.AddToCart(ctx, userID, itemID)
		require.NoError(t, err)
	}
	order, err := stg.PlaceOrder(ctx, userID, "Firestone Library")
	require.NoError(t, err)
	return order
}

func TestPlaceOrder(t *testing.T) {
	t.Parallel()
	stg, store := newTestStorage()
	ctx := context.Background()

	order := placeFixtureOrder(t, stg, "connor")

	assert.Equal(t, StatusPlaced, order.Status)
	assert.Equal(t, "connor", order.UserID)
	assert.Equal(t, "Firestone Library", order.DeliveryLocation)
	assert.Equal(t, 3, order.TotalItems)
	assert.EqualValues(t, 417, order.SubtotalCents)
	assert.EqualValues(t, 42, order.DeliveryFeeCents)
	assert.EqualValues(t, 459, order.TotalCents)
	assert.EqualValues(t, 42, order.EarningsCents)
	assert.Nil(t, order.ClaimedBy)
	assert.Empty(t, order.Timeline)

	// the cart is gone under the same commit
	cart, err := stg.GetCart(ctx, "connor")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// and the lifecycle event sits in the outbox
	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.outbox, 1)
	assert.Equal(t, OrderEventsTopic, store.outbox[0].Topic)
	var event repository.OrderEventPayload
	require.NoError(t, json.Unmarshal(store.outbox[0].Payload, &event))
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, string(StatusPlaced), event.NewStatus)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	_, err := stg.PlaceOrder(context.Background(), "connor", "Firestone Library")

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_MissingLocation(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	_, err := stg.AddToCart(ctx, "connor", "1")
	require.NoError(t, err)

	for _, location := range []string{"", "   "} {
		_, err := stg.PlaceOrder(ctx, "connor", location)
		assert.ErrorIs(t, err, ErrMissingLocation)
	}

	// the cart survived the failed placements
	cart, err := stg.GetCart(ctx, "connor")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestPlaceOrder_SnapshotIgnoresLaterPriceChange(t *testing.T) {
	t.Parallel()
	stg, store := newTestStorage()

	order := placeFixtureOrder(t, stg, "connor")

	store.mu.Lock()
	chips := store.items["4"]
	chips.PriceCents = 9999
	chips.Name = "Artisanal Chips"
	store.items["4"] = chips
	store.mu.Unlock()

	got, err := stg.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 417, got.SubtotalCents)
	assert.EqualValues(t, 42, got.EarningsCents)
	assert.Equal(t, "Lay's Potato Chips", got.Items[0].Name)
	assert.EqualValues(t, 159, got.Items[0].PriceCents)
}

func TestPlaceOrder_SnapshotSurvivesCatalogRemoval(t *testing.T) {
	t.Parallel()
	stg, store := newTestStorage()

	order := placeFixtureOrder(t, stg, "connor")

	store.mu.Lock()
	delete(store.items, "4")
	delete(store.items, "5")
	store.mu.Unlock()

	got, err := stg.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 417, got.SubtotalCents)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Snickers Bar", got.Items[1].Name)
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	_, err := stg.GetOrder(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersByStatus(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	first := placeFixtureOrder(t, stg, "connor")
	second := placeFixtureOrder(t, stg, "jacob")

	placed, err := stg.ListOrdersByStatus(ctx, StatusPlaced)
	require.NoError(t, err)
	require.Len(t, placed, 2)
	assert.Equal(t, first.ID, placed[0].ID)
	assert.Equal(t, second.ID, placed[1].ID)

	claimed, err := stg.ListOrdersByStatus(ctx, StatusClaimed)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestListOrdersByStatus_UnknownStatus(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	_, err := stg.ListOrdersByStatus(context.Background(), Status("shipped"))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUserOrdersAndDeliveries(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	order := placeFixtureOrder(t, stg, "connor")
	_, err := stg.ClaimOrder(ctx, order.ID, "jacob")
	require.NoError(t, err)

	mine, err := stg.ListUserOrders(ctx, "connor")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)

	deliveries, err := stg.ListDeliveries(ctx, "jacob")
	require.NoError(t, err)
	require.Len(t, deliveries, 1)
	assert.Equal(t, StatusClaimed, deliveries[0].Status)

	none, err := stg.ListDeliveries(ctx, "connor")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	order := placeFixtureOrder(t, stg, "connor")

	require.NoError(t, stg.CancelOrder(ctx, order.ID, "connor"))

	got, err := stg.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	// terminal: nothing moves a cancelled order
	err = stg.CancelOrder(ctx, order.ID, "connor")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCancelOrder_OnlyOwner(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()

	order := placeFixtureOrder(t, stg, "connor")

	err := stg.CancelOrder(context.Background(), order.ID, "jacob")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelOrder_ClaimedOrderCannotBeCancelled(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	order := placeFixtureOrder(t, stg, "connor")
	_, err := stg.ClaimOrder(ctx, order.ID, "jacob")
	require.NoError(t, err)

	err = stg.CancelOrder(ctx, order.ID, "connor")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionOrder_FulfilledRequiresCompleteChecklist(t *testing.T) {
	t.Parallel()
	stg, _ := newTestStorage()
	ctx := context.Background()

	order := placeFixtureOrder(t, stg, "connor")
	_, err := stg.ClaimOrder(ctx, order.ID, "jacob")
	require.NoError(t, err)

	err = stg.TransitionOrder(ctx, order.ID, StatusFulfilled, "jacob")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}
