// Package loader provides the plugin-like feature loading system.
//
// Each feature (assets, users, conference, integrity) implements the Feature interface
// and is registered with a Manager at startup.
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
// The Manager holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
package loader
