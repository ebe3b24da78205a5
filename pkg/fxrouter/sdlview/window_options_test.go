package sdlview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/balaji043/fxrouter/pkg/fxrouter/sdlview"
)

func TestToSDLFlagsDefaults(t *testing.T) {
	flags := sdlview.WindowOptions{}.ToSDLFlags()

	assert.Equal(t, uint32(sdl.WINDOW_SHOWN), flags)
}

func TestToSDLFlagsHiddenOmitsShown(t *testing.T) {
	flags := sdlview.WindowOptions{Hidden: true}.ToSDLFlags()

	assert.Zero(t, flags&sdl.WINDOW_SHOWN)
}

func TestToSDLFlagsCombines(t *testing.T) {
	flags := sdlview.WindowOptions{
		Borderless:  true,
		Resizable:   true,
		AlwaysOnTop: true,
	}.ToSDLFlags()

	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.NotZero(t, flags&sdl.WINDOW_ALWAYS_ON_TOP)
	assert.Zero(t, flags&sdl.WINDOW_FULLSCREEN)
}

func TestToSDLFlagsFullscreen(t *testing.T) {
	flags := sdlview.WindowOptions{Fullscreen: true, Hidden: true}.ToSDLFlags()

	assert.Equal(t, uint32(sdl.WINDOW_FULLSCREEN), flags)
}
