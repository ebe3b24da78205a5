// Package sdlview is the SDL2 backend for fxrouter. It provides a
// window wrapper implementing fxrouter.Window and a scene loader that
// turns raster images and SVG files into displayable scenes, with the
// built-in fade transition advancing one step per rendered frame.
//
// SDL rendering is not thread safe: create the window, run the router,
// and drive Render from the same OS thread (lock the main goroutine
// with runtime.LockOSThread).
package sdlview
