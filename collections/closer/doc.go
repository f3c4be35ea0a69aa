// Package closer provides an ordered teardown stack for resources acquired
// during application startup.
//
// Typical usage:
//
//	reg := closer.NewRegistry(logger)
//	_ = reg.Register("database", db)
//	_ = reg.Register("cache", cache)
//	defer reg.Close(ctx) // closes cache, then database
package closer
