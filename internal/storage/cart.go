package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tigercart/tigercart/internal/repository"
)

// GetCart returns the user's live cart with subtotal, delivery fee and total.
// An item that has left the catalog since it was added contributes zero to
// the subtotal instead of failing the whole view.
func (s *PostgresStorage) GetCart(ctx context.Context, userID string) (*Cart, error) {
	entries, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return s.buildCart(ctx, entries)
}

// AddToCart increments the item's quantity by one, inserting at one if absent.
func (s *PostgresStorage) AddToCart(ctx context.Context, userID, itemID string) (*Cart, error) {
	if err := s.requireItem(ctx, itemID); err != nil {
		return nil, err
	}
	if err := s.carts.AddOne(ctx, userID, itemID); err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return s.GetCart(ctx, userID)
}

// RemoveFromCart deletes the entry entirely, whatever its quantity. Removing
// an absent item is a no-op success.
func (s *PostgresStorage) RemoveFromCart(ctx context.Context, userID, itemID string) (*Cart, error) {
	if err := s.carts.Remove(ctx, userID, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove item from cart: %w", err)
	}
	return s.GetCart(ctx, userID)
}

// UpdateCartQuantity sets the entry to the given quantity; zero or negative
// collapses to removal.
func (s *PostgresStorage) UpdateCartQuantity(ctx context.Context, userID, itemID string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, itemID)
	}
	if err := s.requireItem(ctx, itemID); err != nil {
		return nil, err
	}
	if err := s.carts.SetQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart quantity: %w", err)
	}
	return s.GetCart(ctx, userID)
}

func (s *PostgresStorage) requireItem(ctx context.Context, itemID string) error {
	_, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		return fmt.Errorf("failed to look up catalog item: %w", err)
	}
	return nil
}

func (s *PostgresStorage) buildCart(ctx context.Context, entries []*repository.CartItem) (*Cart, error) {
	cart := &Cart{Items: make([]CartLine, 0, len(entries))}

	for _, entry := range entries {
		line := CartLine{ItemID: entry.ItemID, Quantity: entry.Quantity}
		item, err := s.items.GetByID(ctx, entry.ItemID)
		switch {
		case err == nil:
			line.Name = item.Name
			line.PriceCents = item.PriceCents
		case errors.Is(err, repository.ErrObjectNotFound):
			// catalog and cart diverged; price contributes zero
		default:
			return nil, fmt.Errorf("failed to look up catalog item: %w", err)
		}
		cart.SubtotalCents += line.PriceCents * int64(line.Quantity)
		cart.Items = append(cart.Items, line)
	}

	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].ItemID < cart.Items[j].ItemID })

	cart.DeliveryFeeCents = feeCents(cart.SubtotalCents)
	cart.TotalCents = cart.SubtotalCents + cart.DeliveryFeeCents
	return cart, nil
}
