package fxrouter

import "github.com/nicksnyder/go-i18n/v2/i18n"

type titleLocalizer interface {
	Localize(lc *i18n.LocalizeConfig) (string, error)
}

// SetLocalizer makes the router treat route titles as i18n message IDs,
// resolved through loc when the route is registered. Titles with no
// matching message keep their raw value. Like the size and title
// defaults, localization happens at registration time: routes
// registered before the localizer was set keep their raw titles.
func (r *Router) SetLocalizer(loc *i18n.Localizer) *Router {
	if loc == nil {
		r.localizer = nil
		return r
	}
	r.localizer = loc
	return r
}

func (r *Router) localizeTitle(title string) string {
	if r.localizer == nil || title == "" {
		return title
	}
	// go-i18n reports a MessageNotFoundErr even when it fell back to the
	// default language's translation; keep the translation in that case.
	localized, err := r.localizer.Localize(&i18n.LocalizeConfig{MessageID: title})
	if localized == "" && err != nil {
		return title
	}
	return localized
}
