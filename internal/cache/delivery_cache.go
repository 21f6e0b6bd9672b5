package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/tigercart/tigercart/internal/metrics"
	"github.com/tigercart/tigercart/internal/storage"
)

type PlacedOrderLister interface {
	ListOrdersByStatus(ctx context.Context, status storage.Status) ([]*storage.Order, error)
}

// DeliveryCache holds the claimable (placed) orders backing the delivery
// feed, so browsing deliverers do not hit the database on every poll. The
// database stays authoritative: the cache is rebuilt at boot and adjusted
// after each committed lifecycle change.
type DeliveryCache struct {
	mu     sync.RWMutex
	orders map[int64]*storage.Order
	lister PlacedOrderLister
	logger *zap.Logger
}

func NewDeliveryCache(lister PlacedOrderLister, logger *zap.Logger) *DeliveryCache {
	return &DeliveryCache{
		orders: make(map[int64]*storage.Order),
		lister: lister,
		logger: logger,
	}
}

func (c *DeliveryCache) LoadInitialData(ctx context.Context) error {
	orders, err := c.lister.ListOrdersByStatus(ctx, storage.StatusPlaced)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = make(map[int64]*storage.Order, len(orders))
	for _, order := range orders {
		orderCopy := *order
		c.orders[order.ID] = &orderCopy
	}
	metrics.PlacedOrdersCacheItems.Set(float64(len(c.orders)))
	c.logger.Info("delivery cache warmed", zap.Int("orders", len(c.orders)))
	return nil
}

// Set records the order's latest committed state: placed orders enter the
// feed, every other status leaves it.
func (c *DeliveryCache) Set(order *storage.Order) {
	if order.Status != storage.StatusPlaced {
		c.Delete(order.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	orderCopy := *order
	c.orders[order.ID] = &orderCopy
	metrics.PlacedOrdersCacheItems.Set(float64(len(c.orders)))
}

func (c *DeliveryCache) Delete(orderID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.orders[orderID]; found {
		delete(c.orders, orderID)
		metrics.PlacedOrdersCacheItems.Set(float64(len(c.orders)))
	}
}

// List returns the feed ordered by ascending order id (oldest first).
func (c *DeliveryCache) List() []*storage.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	orders := make([]*storage.Order, 0, len(c.orders))
	for _, order := range c.orders {
		orderCopy := *order
		orders = append(orders, &orderCopy)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}
