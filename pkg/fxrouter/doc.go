// Package fxrouter provides single-window scene routing for desktop
// GUI applications: string labels map to scene descriptors (a scene
// resource path, a window title, dimensions), and navigation by label
// loads the scene, retitles and resizes the bound window, and
// optionally plays a transition, carrying an arbitrary payload to the
// new scene.
//
// The router talks to the GUI toolkit only through the Window and
// Loader interfaces, so any backend able to show a loaded view tree
// can be driven; the sdlview subpackage provides an SDL2 backend.
//
// # Basic Usage
//
//	win, _ := sdlview.NewWindow("", sdlview.WindowOptions{Resizable: true})
//	defer win.Close()
//
//	r := fxrouter.New(sdlview.NewSceneLoader(win))
//	r.BindWithDefaults(win, fxrouter.Defaults{Title: "My App"})
//
//	r.When("home", "views/home.svg")
//	r.WhenWithOptions("profile", "views/profile.svg", fxrouter.RouteOptions{
//	    Title: "Profile", Width: 400, Height: 400,
//	})
//
//	r.SetAnimationTypeWithDuration("fade", 500*time.Millisecond)
//
//	if err := r.StartFrom("home"); err != nil {
//	    // scene resource missing or malformed
//	}
//	if err := r.GoToWithData("profile", userID); err != nil {
//	    // ...
//	}
//
// The newly shown scene reads its payload back with Data:
//
//	data, err := r.Data()
//
// # Resolution Rules
//
// A route's effective title and size are fixed when the route is
// registered, from the per-route options first and the defaults of the
// most recent prior bind second. Binding after registering a route
// does not retroactively change that route. The bound window itself is
// fixed by the first bind call; later bind calls are ignored.
//
// # Concurrency
//
// The router is designed for a single UI goroutine and adds no
// locking. Confine all calls to one goroutine, or wrap them in your
// own synchronization.
package fxrouter
