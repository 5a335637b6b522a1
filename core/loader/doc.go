// Package loader provides the feature loading system.
//
// Each feature (truth, golden, reconciliation, suspense, integrity) implements the
// Feature interface and is registered with a Manager, which loads the enabled ones
// onto the Fiber router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
