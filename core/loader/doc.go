// Package loader registers HTTP features and mounts the enabled ones on the app.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// Register adds a feature. LoadAll mounts every enabled feature in registration order
// and stops at the first error. The 'places' and 'integrity' features both report
// themselves disabled when no database is available, and LoadAll skips them.
package loader
