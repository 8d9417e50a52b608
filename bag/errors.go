package bag

import "errors"

var (
	// ErrCapacityExceeded is returned by Add when an array bag is full.
	ErrCapacityExceeded = errors.New("bag capacity exceeded")

	// ErrCorruptedState is the panic value (wrapped) raised when an ArrayBag
	// was not built with NewArrayBag.
	ErrCorruptedState = errors.New("bag is corrupt")
)
