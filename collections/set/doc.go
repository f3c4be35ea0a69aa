// Package set provides a generic unordered set of unique elements.
//
// Set is a thin map[T]struct{} wrapper, so membership tests are hash lookups
// and iteration order is unspecified. CloseAll extends the bulk-teardown
// contract of the parent package to sets whose members own resources.
package set
