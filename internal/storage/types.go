package storage

import "time"

// TimelineStepNames is the fixed fulfillment checklist, in completion order.
var TimelineStepNames = []string{
	"Payment Received",
	"Shopping",
	"Checked Out",
	"On Delivery",
	"Delivered",
}

type CartLine struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type Cart struct {
	Items            []CartLine `json:"items"`
	SubtotalCents    int64      `json:"subtotal_cents"`
	DeliveryFeeCents int64      `json:"delivery_fee_cents"`
	TotalCents       int64      `json:"total_cents"`
}

// OrderLine is a snapshot entry: name and price were bound at placement time.
type OrderLine struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type TimelineStep struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

type Order struct {
	ID               int64          `json:"id"`
	UserID           string         `json:"user_id"`
	Status           Status         `json:"status"`
	DeliveryLocation string         `json:"delivery_location"`
	TotalItems       int            `json:"total_items"`
	ClaimedBy        *string        `json:"claimed_by,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	Items            []OrderLine    `json:"items"`
	SubtotalCents    int64          `json:"subtotal_cents"`
	DeliveryFeeCents int64          `json:"delivery_fee_cents"`
	TotalCents       int64          `json:"total_cents"`
	EarningsCents    int64          `json:"earnings_cents"`
	Timeline         []TimelineStep `json:"timeline,omitempty"`
}

// OrderSummary is one entry of the delivery feed.
type OrderSummary struct {
	ID            int64  `json:"id"`
	ItemCount     int    `json:"item_count"`
	Location      string `json:"location"`
	EarningsCents int64  `json:"earnings_cents"`
}

type Profile struct {
	Username      string  `json:"username"`
	DisplayName   string  `json:"display_name"`
	PaymentHandle *string `json:"payment_handle,omitempty"`
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:            o.ID,
		ItemCount:     o.TotalItems,
		Location:      o.DeliveryLocation,
		EarningsCents: o.EarningsCents,
	}
}
