package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSlotTaken        = errors.New("slot is already taken")
	ErrStatusTransition = errors.New("status transition is not allowed")
)

var (
	ErrNotPersisted     = errors.New("booking was not persisted")
	ErrStoreUnavailable = errors.New("booking store is unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
