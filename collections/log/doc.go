// Package log defines the logging interface and typed logging fields used by
// lib-collections.
//
// The library itself only ever logs through this interface; the zap package
// provides the production implementation.
package log
