package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tigercart_orders_placed_total",
		Help: "Total number of orders successfully placed.",
	})

	OrdersClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tigercart_orders_claimed_total",
		Help: "Total number of orders successfully claimed by a deliverer.",
	})

	ClaimConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tigercart_claim_conflicts_total",
		Help: "Total number of claim attempts that lost the race for an order.",
	})

	OrdersFulfilledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tigercart_orders_fulfilled_total",
		Help: "Total number of orders delivered through the full timeline.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tigercart_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	PlacedOrdersCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tigercart_placed_orders_cache_items",
		Help: "Current number of claimable orders held in the delivery feed cache.",
	})
)
