package sdlview

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/balaji043/fxrouter/pkg/fxrouter"
)

// SceneLoader implements fxrouter.Loader on top of SDL textures.
// Raster images (PNG, JPG, BMP, ...) load through SDL_image and .svg
// resources are rasterized with oksvg. Loaded textures are kept in a
// small LRU cache keyed by resolved path, so revisiting a route does
// not hit the filesystem again.
type SceneLoader struct {
	renderer *sdl.Renderer
	baseDir  string
	cache    *textureCache
}

// NewSceneLoader creates a loader that resolves scene paths as given.
func NewSceneLoader(win *Window) *SceneLoader {
	return NewSceneLoaderWithBaseDir(win, "")
}

// NewSceneLoaderWithBaseDir creates a loader that resolves scene paths
// relative to dir.
func NewSceneLoaderWithBaseDir(win *Window, dir string) *SceneLoader {
	return &SceneLoader{
		renderer: win.Renderer,
		baseDir:  dir,
		cache:    newTextureCache(),
	}
}

// Load implements fxrouter.Loader. Every call returns a fresh *Scene
// with its own transition state, even on a cache hit.
func (l *SceneLoader) Load(scenePath string) (fxrouter.View, error) {
	path := scenePath
	if l.baseDir != "" {
		path = filepath.Join(l.baseDir, scenePath)
	}

	if texture := l.cache.get(path); texture != nil {
		return newScene(texture)
	}

	var (
		texture *sdl.Texture
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		texture, err = l.loadSVG(path)
	} else {
		texture, err = img.LoadTexture(l.renderer, path)
	}
	if err != nil {
		return nil, fmt.Errorf("sdlview: %s: %w", path, err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	l.cache.set(path, texture)
	return newScene(texture)
}

// Destroy releases every cached texture. Call when the loader is no
// longer needed, before closing the window.
func (l *SceneLoader) Destroy() {
	l.cache.destroy()
}

func newScene(texture *sdl.Texture) (*Scene, error) {
	_, _, width, height, err := texture.Query()
	if err != nil {
		return nil, fmt.Errorf("sdlview: query texture: %w", err)
	}
	return &Scene{texture: texture, width: width, height: height}, nil
}

func (l *SceneLoader) loadSVG(path string) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	width := int(icon.ViewBox.W)
	height := int(icon.ViewBox.H)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg has no usable viewBox")
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(dasher, 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(width), int32(height), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return l.renderer.CreateTextureFromSurface(surface)
}
