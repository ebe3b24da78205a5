package fxrouter

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotBound indicates a navigation was attempted before any window
	// was bound to the router.
	ErrNotBound = errors.New("fxrouter: no window bound")

	// ErrNoCurrentRoute indicates Data was called before the first
	// successful navigation.
	ErrNoCurrentRoute = errors.New("fxrouter: no current route")
)

// RouteNotFoundError indicates a navigation targeted a label that was
// never registered. The router's state is left untouched when this
// error is returned.
type RouteNotFoundError struct {
	Label string // Label the navigation asked for
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("fxrouter: route %q not registered", e.Label)
}

// IsRouteNotFound checks if an error indicates an unregistered route label.
func IsRouteNotFound(err error) bool {
	var rnf *RouteNotFoundError
	return errors.As(err, &rnf)
}

// LoadError indicates the scene resource behind a route could not be
// loaded. It wraps the loader's error unchanged; the router performs no
// retry or local recovery.
type LoadError struct {
	Path string // Scene locator that failed to load
	Err  error  // Underlying loader error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fxrouter: load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("fxrouter: load %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError checks if an error came from a failed scene load.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
