package collections

import (
	"errors"
	"fmt"
)

// ErrEmptySlice is returned when attempting to access elements of an empty slice.
var ErrEmptySlice = errors.New("empty slice")

// ErrIndexOutOfBounds is returned when an index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// First returns the first element of a slice.
// Returns ErrEmptySlice if the slice is empty.
func First[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[0], nil
}

// Last returns the last element of a slice.
// Returns ErrEmptySlice if the slice is empty.
func Last[T any](slice []T) (T, error) {
	var zero T

	if len(slice) == 0 {
		return zero, ErrEmptySlice
	}

	return slice[len(slice)-1], nil
}

// At returns the element at the specified index.
// Returns ErrIndexOutOfBounds if the index is out of range.
func At[T any](slice []T, index int) (T, error) {
	var zero T

	if index < 0 || index >= len(slice) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, len(slice))
	}

	return slice[index], nil
}

// AtOrDefault returns the element at index, or defaultValue if out of bounds.
func AtOrDefault[T any](slice []T, index int, defaultValue T) T {
	if index < 0 || index >= len(slice) {
		return defaultValue
	}

	return slice[index]
}

// Pop removes the last element of the slice and transfers ownership of it to
// the caller. The vacated slot is zeroed so the slice no longer retains the
// element. Returns ErrEmptySlice if the slice is empty or values is nil.
func Pop[T any](values *[]T) (T, error) {
	var zero T

	if values == nil || len(*values) == 0 {
		return zero, ErrEmptySlice
	}

	last := len(*values) - 1
	popped := (*values)[last]
	(*values)[last] = zero
	*values = (*values)[:last]

	return popped, nil
}
