// Package loader registers the HTTP features of the monitor and mounts the enabled ones.
//
// A feature bundles its service, handler and routes behind the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll mounts features in registration order, skips disabled ones
// (monitor and requirements are disabled without a database) and rejects two
// features with the same name.
package loader
