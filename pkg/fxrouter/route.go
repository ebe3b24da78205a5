package fxrouter

// Default window configuration applied when neither the bind call nor
// the route registration supplies a value.
const (
	DefaultTitle        = ""
	DefaultWidth  int32 = 800
	DefaultHeight int32 = 600
)

// Route is a registered scene descriptor. Title, Width and Height are
// resolved once, at registration time, from whatever defaults the
// router held at that moment; a later bind call never changes an
// already-registered route. Data is the only mutable field and is
// replaced on every navigation that targets the route.
type Route struct {
	Label     string // Label the route was registered under
	ScenePath string // Locator of the scene resource to load
	Title     string // Window title applied when the route is shown
	Width     int32  // Window width applied when the route is shown
	Height    int32  // Window height applied when the route is shown
	Data      any    // Payload from the last navigation, nil when none was passed
}

// Defaults is the window configuration fixed by the first bind call.
// Zero-value fields fall back to DefaultTitle, DefaultWidth and
// DefaultHeight.
type Defaults struct {
	Title  string
	Width  int32
	Height int32
}

// RouteOptions overrides the router defaults for a single registration.
// Zero-value fields inherit the defaults current at registration time.
type RouteOptions struct {
	Title  string
	Width  int32
	Height int32
}
