package fxrouter_test

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/balaji043/fxrouter/pkg/fxrouter"
)

// consoleWindow prints every scene switch, standing in for a real
// toolkit window.
type consoleWindow struct {
	title string
}

func (w *consoleWindow) SetTitle(title string) { w.title = title }

func (w *consoleWindow) SetContent(view fxrouter.View, width, height int32) {
	fmt.Printf("%s: showing %v at %dx%d\n", w.title, view, width, height)
}

func (w *consoleWindow) Show() {}

// pathLoader uses the scene path itself as the view.
type pathLoader struct{}

func (pathLoader) Load(scenePath string) (fxrouter.View, error) {
	return scenePath, nil
}

// Example demonstrates route registration, navigation and the data
// handoff between scenes.
func Example() {
	r := fxrouter.New(pathLoader{}).SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.BindWithDefaults(&consoleWindow{}, fxrouter.Defaults{Title: "Demo"})

	r.When("home", "views/home.svg")
	r.WhenWithOptions("profile", "views/profile.svg", fxrouter.RouteOptions{
		Title:  "Profile",
		Width:  400,
		Height: 400,
	})

	_ = r.StartFrom("home")
	_ = r.GoToWithData("profile", 42)

	data, _ := r.Data()
	fmt.Println("profile data:", data)

	// Output:
	// Demo: showing views/home.svg at 800x600
	// Profile: showing views/profile.svg at 400x400
	// profile data: 42
}

// fadingView prints transition playback.
type fadingView struct {
	name string
}

func (v *fadingView) FadeIn(duration time.Duration) {
	fmt.Printf("fading in %s over %v\n", v.name, duration)
}

type fadingLoader struct{}

func (fadingLoader) Load(scenePath string) (fxrouter.View, error) {
	return &fadingView{name: scenePath}, nil
}

// silentWindow ignores everything, leaving the output to the views.
type silentWindow struct{}

func (silentWindow) SetTitle(string)                        {}
func (silentWindow) SetContent(fxrouter.View, int32, int32) {}
func (silentWindow) Show()                                  {}

// Example_transitions demonstrates the built-in fade effect and a
// custom registered one.
func Example_transitions() {
	r := fxrouter.New(fadingLoader{}).SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.Bind(silentWindow{})

	r.When("home", "home.view")
	r.When("settings", "settings.view")

	r.SetAnimationTypeWithDuration("fade", 500*time.Millisecond)
	_ = r.GoTo("home")

	r.RegisterEffect("pop", func(view fxrouter.View, duration time.Duration) {
		fmt.Printf("popping %s in\n", view.(*fadingView).name)
	})
	r.SetAnimationType("pop")
	_ = r.GoTo("settings")

	// Output:
	// fading in home.view over 500ms
	// popping settings.view in
}
