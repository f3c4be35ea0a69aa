package collections

import (
	"errors"
	"fmt"
	"io"

	"github.com/LerianStudio/lib-collections/collections/internal/nilcheck"
)

// CloseAll closes every element of the slice and resets it to length zero.
//
// Elements are visited in positional order. Nil elements, including interface
// values wrapping a typed nil pointer, are skipped. A failed Close does not
// stop the traversal: every remaining element is still closed, the slice is
// still emptied, and the collected failures are returned as a single joined
// error. Each non-nil element is closed exactly once per call; closing an
// already-empty slice is a no-op.
//
// The slice must exclusively own its elements. Keeping another reference to a
// closed element, or touching the slice from another goroutine during the
// call, is a caller bug this function cannot detect.
//
// A panic raised by an element's Close is not recovered; the slice is then
// left partially mutated.
//
// Example:
//
//	files := []*os.File{f1, f2, f3}
//	if err := collections.CloseAll(&files); err != nil {
//	    return fmt.Errorf("close files: %w", err)
//	}
func CloseAll[T io.Closer](values *[]T) error {
	if values == nil {
		return nil
	}

	var errs []error

	for i, value := range *values {
		if nilcheck.Interface(value) {
			continue
		}

		if err := value.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close element %d: %w", i, err))
		}
	}

	// Zero the backing array so released elements are not retained, then
	// keep the shell reusable at length zero.
	clear(*values)
	*values = (*values)[:0]

	return errors.Join(errs...)
}

// CloseAllValues closes every value of the map and removes all entries.
//
// Values are visited in map iteration order. Keys are discarded with their
// entries and are never touched themselves. Nil values are skipped. The
// failure policy matches CloseAll: best-effort traversal, entries removed
// regardless, failures joined into one error. A nil or empty map is a no-op.
//
// Example:
//
//	sessions := map[uuid.UUID]*Session{...}
//	if err := collections.CloseAllValues(sessions); err != nil {
//	    return fmt.Errorf("close sessions: %w", err)
//	}
func CloseAllValues[K comparable, V io.Closer](m map[K]V) error {
	var errs []error

	for key, value := range m {
		if nilcheck.Interface(value) {
			continue
		}

		if err := value.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close value for key %v: %w", key, err))
		}
	}

	clear(m)

	return errors.Join(errs...)
}

// LookupAndRemove removes the entry for key and transfers ownership of its
// value to the caller. The second result reports whether the key was present;
// when false, the returned value is the zero value and nothing was removed.
func LookupAndRemove[K comparable, V any](m map[K]V, key K) (V, bool) {
	value, ok := m[key]
	if ok {
		delete(m, key)
	}

	return value, ok
}

// InsertIfNotPresent inserts value under key only when the key is absent.
// It reports whether the insert happened; on false the caller still owns
// value and the existing entry is untouched.
func InsertIfNotPresent[K comparable, V any](m map[K]V, key K, value V) bool {
	if _, ok := m[key]; ok {
		return false
	}

	m[key] = value

	return true
}

// Replace stores value under key and hands any displaced value back to the
// caller, who becomes responsible for releasing it. The second result reports
// whether an entry was displaced.
func Replace[K comparable, V any](m map[K]V, key K, value V) (V, bool) {
	displaced, ok := m[key]
	m[key] = value

	return displaced, ok
}

// CloseAndReplace stores value under key and closes the displaced value, if
// any. A nil displaced value is discarded without a Close call.
func CloseAndReplace[K comparable, V io.Closer](m map[K]V, key K, value V) error {
	displaced, ok := Replace(m, key, value)
	if !ok || nilcheck.Interface(displaced) {
		return nil
	}

	if err := displaced.Close(); err != nil {
		return fmt.Errorf("close replaced value for key %v: %w", key, err)
	}

	return nil
}

// CloseAndRemove removes the entry for key and closes its value. A missing
// key or a nil value is a no-op.
func CloseAndRemove[K comparable, V io.Closer](m map[K]V, key K) error {
	value, ok := LookupAndRemove(m, key)
	if !ok || nilcheck.Interface(value) {
		return nil
	}

	if err := value.Close(); err != nil {
		return fmt.Errorf("close removed value for key %v: %w", key, err)
	}

	return nil
}
