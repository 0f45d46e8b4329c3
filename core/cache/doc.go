// Package cache provides the read cache for timesheet views and the
// invalidation signal emitted after a timesheet edit commits.
//
// A Cache stores JSON values in a Store: MemoryStore (in-process, TTL map) or
// RedisStore (shared between instances). GetOrLoad is read-through and uses
// singleflight so that concurrent misses on one key trigger a single load.
//
// # Usage
//
//	c, err := cache.NewFromConfig(cfg.Cache)
//	var view TimesheetView
//	err = c.GetOrLoad(ctx, "admin/timesheets/42", &view, loadFn)
//
//	// After a committed edit
//	_ = c.Invalidate(ctx, "timesheets", "admin/timesheets/42")
package cache
