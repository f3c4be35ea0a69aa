package pointers

// To returns a pointer to v.
//
// Example:
//
//	req.Limit = pointers.To(50)
func To[T any](v T) *T {
	return &v
}

// ValueOrZero dereferences p, returning the zero value when p is nil.
func ValueOrZero[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}

// ValueOrDefault dereferences p, returning def when p is nil.
func ValueOrDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
