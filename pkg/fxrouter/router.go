package fxrouter

import (
	"log/slog"
	"time"

	"go.uber.org/atomic"

	"github.com/balaji043/fxrouter/pkg/fxrouter/internal"
)

// View is an opaque displayable view tree produced by a Loader. The
// router never looks inside it; it only hands it to the bound window
// and to the transition effect.
type View = any

// Window is the single top-level window the router drives.
// Implementations are expected to be cheap to call repeatedly: Show is
// invoked on every navigation, even when the window is already visible.
type Window interface {
	// SetTitle sets the window's display title.
	SetTitle(title string)
	// SetContent replaces the displayed view and resizes the window.
	SetContent(view View, width, height int32)
	// Show makes the window visible. Must be idempotent.
	Show()
}

// Loader produces a displayable view tree from a scene locator.
// Loading happens synchronously inside the navigation call; a failed
// load is propagated to the navigation's caller unchanged.
type Loader interface {
	Load(scenePath string) (View, error)
}

// Router maps string labels to scene descriptors and switches the
// bound window between them on request.
//
// All router state is confined to the caller's UI goroutine; the
// router adds no locking of its own. Only the bind-once guard is
// atomic, so the first-bind-wins rule holds even if binding races.
type Router struct {
	loader Loader
	log    *slog.Logger

	window   Window
	bound    atomic.Bool
	defaults Defaults

	routes  map[string]*Route
	current *Route

	effects   map[string]Effect
	animation string
	duration  time.Duration // 0 means the effect's own default

	localizer titleLocalizer
}

// New creates a Router that loads scene resources through the given
// loader. The window is attached later with Bind.
func New(loader Loader) *Router {
	return &Router{
		loader: loader,
		log:    internal.GetLogger(),
		routes: make(map[string]*Route),
		effects: map[string]Effect{
			"fade": fadeEffect,
		},
	}
}

// SetLogger replaces the router's logger. The default logger is the
// framework-wide structured logger from this module's internal package.
func (r *Router) SetLogger(log *slog.Logger) *Router {
	if log != nil {
		r.log = log
	}
	return r
}

// Bind attaches the window the router will drive, with hard-coded
// defaults (empty title, 800x600). Only the first bind call has any
// effect; later calls are silently ignored.
func (r *Router) Bind(win Window) *Router {
	return r.BindWithDefaults(win, Defaults{})
}

// BindWithDefaults attaches the window and fixes the default window
// configuration applied to routes registered afterwards. First bind
// wins: once a bind has succeeded the window and the defaults are
// frozen and later calls are silently ignored.
func (r *Router) BindWithDefaults(win Window, defaults Defaults) *Router {
	if !r.bound.CompareAndSwap(false, true) {
		return r
	}
	if defaults.Width <= 0 {
		defaults.Width = DefaultWidth
	}
	if defaults.Height <= 0 {
		defaults.Height = DefaultHeight
	}
	r.window = win
	r.defaults = defaults
	return r
}

// When registers scenePath under label, inheriting title and size from
// the defaults current at this moment. Registering a label twice
// replaces the previous descriptor entirely. The scene path is not
// checked here; a bad path surfaces as a LoadError at navigation time.
func (r *Router) When(label, scenePath string) *Router {
	return r.WhenWithOptions(label, scenePath, RouteOptions{})
}

// WhenWithOptions registers scenePath under label with per-route
// overrides for title and size. Zero-value fields inherit the defaults
// current at registration time.
func (r *Router) WhenWithOptions(label, scenePath string, opts RouteOptions) *Router {
	title := opts.Title
	if title == "" {
		title = r.defaults.Title
	}
	width := opts.Width
	if width <= 0 {
		width = r.defaults.Width
	}
	if width <= 0 {
		width = DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = r.defaults.Height
	}
	if height <= 0 {
		height = DefaultHeight
	}

	r.routes[label] = &Route{
		Label:     label,
		ScenePath: scenePath,
		Title:     r.localizeTitle(title),
		Width:     width,
		Height:    height,
	}
	return r
}

// GoTo switches the bound window to the route registered under label.
// Any payload left on the route by an earlier navigation is cleared.
//
// It returns a *RouteNotFoundError for an unknown label, ErrNotBound
// when no window was bound, and a *LoadError when the scene resource
// cannot be loaded. On any of these the router's current route is left
// unchanged.
func (r *Router) GoTo(label string) error {
	return r.navigate(label, nil)
}

// GoToWithData switches to the route registered under label and
// attaches data to it, readable by the new scene through Data.
func (r *Router) GoToWithData(label string, data any) error {
	return r.navigate(label, data)
}

// StartFrom is an alias for GoTo, intended for the first navigation
// after binding.
func (r *Router) StartFrom(label string) error {
	return r.GoTo(label)
}

// StartFromWithData is an alias for GoToWithData, intended for the
// first navigation after binding.
func (r *Router) StartFromWithData(label string, data any) error {
	return r.GoToWithData(label, data)
}

func (r *Router) navigate(label string, data any) error {
	route, ok := r.routes[label]
	if !ok {
		return &RouteNotFoundError{Label: label}
	}
	if r.window == nil {
		return ErrNotBound
	}

	r.log.Info("loading scene", "label", label, "path", route.ScenePath)

	view, err := r.loader.Load(route.ScenePath)
	if err != nil {
		return &LoadError{Path: route.ScenePath, Err: err}
	}

	// State changes only after the load succeeded, so a failed
	// navigation leaves the previous route fully in effect.
	route.Data = data
	r.current = route

	r.window.SetTitle(route.Title)
	r.window.SetContent(view, route.Width, route.Height)
	r.window.Show()

	r.playTransition(view)
	return nil
}

// Data returns the payload attached to the current route by the last
// navigation, or nil when that navigation carried none. It returns
// ErrNoCurrentRoute before the first successful navigation.
func (r *Router) Data() (any, error) {
	if r.current == nil {
		return nil, ErrNoCurrentRoute
	}
	return r.current.Data, nil
}

// Current returns the label of the route currently shown. The boolean
// is false before the first successful navigation.
func (r *Router) Current() (string, bool) {
	if r.current == nil {
		return "", false
	}
	return r.current.Label, true
}
