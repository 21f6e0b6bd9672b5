package storage

import (
	"fmt"

	"github.com/tigercart/tigercart/internal/repository"
)

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusClaimed   Status = "claimed"
	StatusFulfilled Status = "fulfilled"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// validTransitions defines the order lifecycle. A claimant backing out
// reverts the order to placed so it can be claimed again; fulfilled,
// declined and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusPlaced:    {StatusClaimed, StatusDeclined, StatusCancelled},
	StatusClaimed:   {StatusFulfilled, StatusDeclined, StatusPlaced},
	StatusFulfilled: {},
	StatusDeclined:  {},
	StatusCancelled: {},
}

func IsValidStatus(s Status) bool {
	_, ok := validTransitions[s]
	return ok
}

func canTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// checkTransition validates both the edge and the actor's authority over it.
// Edges out of claimed belong to the claimant; cancellation belongs to the
// order's owner; declining an unclaimed order is allowed for the owner too.
func checkTransition(order *repository.Order, to Status, actor string) error {
	from := Status(order.Status)
	if !canTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	switch from {
	case StatusClaimed:
		if order.ClaimedBy == nil || *order.ClaimedBy != actor {
			return fmt.Errorf("%w: only the claimant may end a claimed delivery", ErrForbidden)
		}
	case StatusPlaced:
		if order.UserID != actor {
			return fmt.Errorf("%w: only the order owner may %s it", ErrForbidden, to)
		}
	}
	return nil
}
