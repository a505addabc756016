// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its routes when loaded.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order; LoadAll loads the enabled ones and
// stops at the first failure.
package loader
