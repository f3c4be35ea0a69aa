package collections

import "slices"

// Contains checks if an item is in a slice. This function uses type parameters
// to work with any slice type. Cost is linear, the native lookup of a sequence.
func Contains[T comparable](slice []T, item T) bool {
	return slices.Contains(slice, item)
}

// ContainsKey reports whether the map holds an entry for key, using the map's
// native hash lookup. A nil map contains nothing.
func ContainsKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]

	return ok
}
