package sdlview

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Scene is a loaded scene resource backed by an SDL texture. It
// implements fxrouter.Fader, so the router's built-in "fade" effect
// ramps its opacity from transparent to opaque as the window renders
// frames.
type Scene struct {
	texture *sdl.Texture
	width   int32
	height  int32

	fadeStart uint64        // SDL ticks when the fade began
	fadeFor   time.Duration // 0 when no fade is running
}

// Size returns the scene's intrinsic pixel size.
func (s *Scene) Size() (width, height int32) {
	return s.width, s.height
}

// FadeIn implements fxrouter.Fader. Playback is fire-and-forget: the
// ramp advances as the window renders frames. Calling it again
// restarts the ramp.
func (s *Scene) FadeIn(duration time.Duration) {
	if duration <= 0 {
		return
	}
	s.fadeStart = sdl.GetTicks64()
	s.fadeFor = duration
}

func (s *Scene) draw(renderer *sdl.Renderer) {
	alpha := uint8(255)
	if s.fadeFor > 0 {
		elapsed := time.Duration(sdl.GetTicks64()-s.fadeStart) * time.Millisecond
		if elapsed >= s.fadeFor {
			s.fadeFor = 0
		} else {
			alpha = uint8(int64(255) * int64(elapsed) / int64(s.fadeFor))
		}
	}
	s.texture.SetAlphaMod(alpha)
	renderer.Copy(s.texture, nil, nil)
}
