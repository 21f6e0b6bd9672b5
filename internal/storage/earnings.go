package storage

import "github.com/tigercart/tigercart/internal/repository"

// SnapshotSubtotalCents sums a frozen order snapshot. It never consults the
// live catalog, so later price changes cannot reach a placed order.
func SnapshotSubtotalCents(items []*repository.OrderItem) int64 {
	var subtotal int64
	for _, it := range items {
		subtotal += it.PriceCents * int64(it.Quantity)
	}
	return subtotal
}

// EarningsCents is the deliverer's cut: 10% of the snapshot subtotal.
func EarningsCents(items []*repository.OrderItem) int64 {
	return feeCents(SnapshotSubtotalCents(items))
}
