package fxrouter_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/balaji043/fxrouter/pkg/fxrouter"
)

func newTestLocalizer(t *testing.T) *i18n.Localizer {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English,
		&i18n.Message{ID: "home.title", Other: "Home"},
		&i18n.Message{ID: "app.title", Other: "My App"},
	))
	require.NoError(t, bundle.AddMessages(language.Italian,
		&i18n.Message{ID: "home.title", Other: "Pagina iniziale"},
	))
	return i18n.NewLocalizer(bundle, language.Italian.String())
}

func TestTitlesLocalizedAtRegistration(t *testing.T) {
	r, win, _ := newTestRouter()
	r.Bind(win).SetLocalizer(newTestLocalizer(t))

	r.WhenWithOptions("home", "home.view", fxrouter.RouteOptions{Title: "home.title"})
	require.NoError(t, r.GoTo("home"))

	assert.Equal(t, "Pagina iniziale", win.title)
}

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	r, win, _ := newTestRouter()
	r.Bind(win).SetLocalizer(newTestLocalizer(t))

	r.WhenWithOptions("about", "about.view", fxrouter.RouteOptions{Title: "app.title"})
	require.NoError(t, r.GoTo("about"))

	assert.Equal(t, "My App", win.title)
}

func TestUnknownMessageIDKeepsRawTitle(t *testing.T) {
	r, win, _ := newTestRouter()
	r.Bind(win).SetLocalizer(newTestLocalizer(t))

	r.WhenWithOptions("home", "home.view", fxrouter.RouteOptions{Title: "Plain Title"})
	require.NoError(t, r.GoTo("home"))

	assert.Equal(t, "Plain Title", win.title)
}

func TestRoutesRegisteredBeforeLocalizerKeepRawTitles(t *testing.T) {
	r, win, _ := newTestRouter()
	r.Bind(win)

	r.WhenWithOptions("home", "home.view", fxrouter.RouteOptions{Title: "home.title"})
	r.SetLocalizer(newTestLocalizer(t))

	require.NoError(t, r.GoTo("home"))
	assert.Equal(t, "home.title", win.title, "localization happens at registration time only")
}

func TestLocalizedDefaultTitle(t *testing.T) {
	r, win, _ := newTestRouter()
	r.SetLocalizer(newTestLocalizer(t))
	r.BindWithDefaults(win, fxrouter.Defaults{Title: "app.title"})

	r.When("home", "home.view")
	require.NoError(t, r.GoTo("home"))

	assert.Equal(t, "My App", win.title)
}
