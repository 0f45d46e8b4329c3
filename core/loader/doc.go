// Package loader registers HTTP features and loads the enabled ones.
//
// A feature owns its routes and reports whether its dependencies are
// available:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The start command registers the timesheet and integrity features on a
// Manager and calls LoadAll once the middleware chain is in place. Disabled
// features are skipped; the first failing Load aborts startup.
package loader
