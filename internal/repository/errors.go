package repository

import "errors"

var (
	// ErrNotFound is returned by updates whose filter matched no document.
	// Lookups that legitimately return empty results do not use it.
	ErrNotFound = errors.New("document not found")

	// ErrSeatsExhausted is returned by Settle when the course has no
	// available seats left; the settlement is aborted as a whole.
	ErrSeatsExhausted = errors.New("no seats available")
)
