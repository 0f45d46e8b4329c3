// Package events is a small in-process event bus for post-commit side
// effects such as cache invalidation and audit archiving.
//
// Handlers are registered by name and run synchronously in registration
// order. Panics are recovered and reported as errors; one failing handler
// never prevents the remaining handlers from running.
package events
