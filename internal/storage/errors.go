package storage

import "errors"

// Every expected, recoverable outcome of a core operation surfaces as one of
// these sentinels. Callers match with errors.Is; the HTTP layer maps each to
// a distinct status code. Anything else that comes out of the storage layer
// is a storage failure and aborts the request.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingLocation   = errors.New("delivery location is required")
	ErrItemNotFound      = errors.New("item not in catalog")
	ErrUnknownStep       = errors.New("unknown timeline step")
	ErrOutOfOrder        = errors.New("step out of order")
	ErrInvalidUncheck    = errors.New("cannot uncheck step")
)
