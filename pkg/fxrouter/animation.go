package fxrouter

import (
	"strings"
	"time"
)

// DefaultFadeDuration is used by the built-in fade effect when no
// duration was configured through SetAnimationTypeWithDuration.
const DefaultFadeDuration = 800 * time.Millisecond

// Effect plays a transition on a freshly shown view. Effects are
// fire-and-forget: playback happens on the UI thread's own scheduling
// after the navigation call returns, and the router never waits for
// completion.
type Effect func(view View, duration time.Duration)

// Fader is implemented by views that support an opacity transition
// from fully transparent to fully opaque. The built-in "fade" effect
// is a no-op on views that do not implement it.
type Fader interface {
	FadeIn(duration time.Duration)
}

// SetAnimationType selects the transition effect played after every
// subsequent navigation. Matching is case-insensitive; an unknown name
// means no transition. The previously configured duration is kept.
func (r *Router) SetAnimationType(name string) *Router {
	r.animation = name
	return r
}

// SetAnimationTypeWithDuration selects the transition effect and its
// duration for every subsequent navigation.
func (r *Router) SetAnimationTypeWithDuration(name string, duration time.Duration) *Router {
	r.animation = name
	r.duration = duration
	return r
}

// RegisterEffect adds a named transition effect. Registering a name
// that already exists replaces the previous effect, so the built-in
// "fade" can be swapped out as well.
func (r *Router) RegisterEffect(name string, effect Effect) *Router {
	r.effects[strings.ToLower(name)] = effect
	return r
}

func (r *Router) playTransition(view View) {
	effect, ok := r.effects[strings.ToLower(r.animation)]
	if !ok {
		return
	}
	duration := r.duration
	if duration <= 0 {
		duration = DefaultFadeDuration
	}
	effect(view, duration)
}

func fadeEffect(view View, duration time.Duration) {
	if fader, ok := view.(Fader); ok {
		fader.FadeIn(duration)
	}
}
