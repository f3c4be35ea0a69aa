package set

import (
	"errors"
	"fmt"
	"io"

	"github.com/LerianStudio/lib-collections/collections/internal/nilcheck"
)

// Set is an unordered collection of unique elements backed by a map.
// The zero value (nil) is a valid empty set for read operations; use New or
// make before adding elements.
type Set[T comparable] map[T]struct{}

// New creates a Set holding the given items.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

// Add inserts item into the set. It reports whether the item was inserted,
// returning false when it was already present.
func (s Set[T]) Add(item T) bool {
	if _, ok := s[item]; ok {
		return false
	}

	s[item] = struct{}{}

	return true
}

// Remove deletes item from the set. It reports whether the item was present.
func (s Set[T]) Remove(item T) bool {
	if _, ok := s[item]; !ok {
		return false
	}

	delete(s, item)

	return true
}

// Contains reports whether item is a member of the set, using the underlying
// map's hash lookup.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]

	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clear removes all elements, leaving the set empty and reusable.
func (s Set[T]) Clear() {
	clear(s)
}

// Values returns the elements as a slice in unspecified order.
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for item := range s {
		values = append(values, item)
	}

	return values
}

// Clone returns an independent copy of the set.
func (s Set[T]) Clone() Set[T] {
	cloned := make(Set[T], len(s))
	for item := range s {
		cloned[item] = struct{}{}
	}

	return cloned
}

// Union returns a new set with the elements of both s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	union := make(Set[T], len(s)+len(other))
	for item := range s {
		union[item] = struct{}{}
	}

	for item := range other {
		union[item] = struct{}{}
	}

	return union
}

// Intersect returns a new set with the elements present in both s and other.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(other) < len(s) {
		small, large = other, s
	}

	intersection := make(Set[T])

	for item := range small {
		if _, ok := large[item]; ok {
			intersection[item] = struct{}{}
		}
	}

	return intersection
}

// Difference returns a new set with the elements of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	difference := make(Set[T])

	for item := range s {
		if _, ok := other[item]; !ok {
			difference[item] = struct{}{}
		}
	}

	return difference
}

// Equal reports whether s and other hold exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}

	for item := range s {
		if _, ok := other[item]; !ok {
			return false
		}
	}

	return true
}

// CloseAll closes every member of the set and clears it.
//
// This is the unique-element variant of collections.CloseAll: members are
// visited in map iteration order, nil members are skipped, a failed Close
// does not stop the traversal, and the set is emptied regardless. Collected
// failures are returned as a single joined error. A nil or empty set is a
// no-op.
func CloseAll[T interface {
	comparable
	io.Closer
}](s Set[T]) error {
	var errs []error

	for item := range s {
		if nilcheck.Interface(item) {
			continue
		}

		if err := item.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close member: %w", err))
		}
	}

	clear(s)

	return errors.Join(errs...)
}
