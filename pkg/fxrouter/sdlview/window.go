package sdlview

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/balaji043/fxrouter/pkg/fxrouter"
	"github.com/balaji043/fxrouter/pkg/fxrouter/internal"
)

// Window wraps an SDL window and renderer and implements
// fxrouter.Window. The router resizes and retitles it on every
// navigation; the application drives frames through Render.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	content         *Scene
	clearColor      sdl.Color
	hasVSync        bool
	lastPresentTime uint64
}

// NewWindow initializes the SDL video and image subsystems and creates
// a window sized to the router's hard defaults; the router resizes it
// per route on navigation. In development mode (ENVIRONMENT=DEV) the
// window is decorated and its size can be overridden with the
// WINDOW_WIDTH and WINDOW_HEIGHT environment variables.
func NewWindow(title string, opts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlview: init SDL: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlview: init SDL_image: %w", err)
	}

	width, height := fxrouter.DefaultWidth, fxrouter.DefaultHeight
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if internal.IsDevMode() {
		opts.Borderless = false

		x, y = 50, 50
		width = sizeFromEnv(internal.WindowWidthEnvVar, 1024)
		height = sizeFromEnv(internal.WindowHeightEnvVar, 768)
	}

	internal.GetInternalLogger().Debug("initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sdlview: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlview: create renderer: %w", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:     window,
		Renderer:   renderer,
		Title:      title,
		clearColor: sdl.Color{R: 0, G: 0, B: 0, A: 255},
		hasVSync:   vsync,
	}, nil
}

func sizeFromEnv(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("invalid window size override; using default",
			"var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// SetTitle implements fxrouter.Window.
func (w *Window) SetTitle(title string) {
	w.Title = title
	w.Window.SetTitle(title)
}

// SetContent implements fxrouter.Window. The view must be a *Scene
// produced by a SceneLoader; any other view clears the window.
func (w *Window) SetContent(view fxrouter.View, width, height int32) {
	scene, _ := view.(*Scene)
	w.content = scene
	w.Window.SetSize(width, height)
	w.Render()
}

// Show implements fxrouter.Window.
func (w *Window) Show() {
	w.Window.Show()
}

// Hide hides the window.
func (w *Window) Hide() {
	w.Window.Hide()
}

// SetClearColor sets the background color drawn behind scenes.
func (w *Window) SetClearColor(c sdl.Color) {
	w.clearColor = c
}

// GetWidth returns the current window width.
func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

// GetHeight returns the current window height.
func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Render draws the current scene and presents the frame. Drive it from
// the application's main loop; a running fade transition advances one
// step per call.
func (w *Window) Render() {
	w.Renderer.SetDrawColor(w.clearColor.R, w.clearColor.G, w.clearColor.B, w.clearColor.A)
	w.Renderer.Clear()
	if w.content != nil {
		w.content.draw(w.Renderer)
	}
	w.present()
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window and shuts down the SDL
// subsystems this package initialized. Call before program exit.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()

	img.Quit()
	sdl.Quit()
	internal.CloseLogger()
}
