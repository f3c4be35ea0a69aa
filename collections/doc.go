// Package collections provides generic helpers for membership tests and bulk
// teardown of containers that own their elements.
//
// A container "owns" an element when it holds the only live reference to a
// resource that must be released exactly once. The CloseAll family visits
// every owned element, releases it through io.Closer, and resets the
// container to an empty, reusable state:
//
//	conns := []*Conn{a, b, c}
//	if err := collections.CloseAll(&conns); err != nil {
//	    logger.Log(ctx, log.LevelWarn, "teardown incomplete", log.Err(err))
//	}
//	// len(conns) == 0
//
// Exclusive ownership is a precondition, not something these helpers can
// verify: a caller that keeps another reference to a closed element, or that
// mutates the container concurrently from another goroutine, is on its own.
//
// Plain data that holds no resource needs none of this under the garbage
// collector; use the clear builtin instead.
//
// This package is intentionally dependency-light; specialized pieces live in
// subpackages such as set, closer, log, and zap.
package collections
