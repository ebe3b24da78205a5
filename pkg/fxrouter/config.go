package fxrouter

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// routesManifest mirrors the TOML layout accepted by LoadRoutesFile:
//
//	[routes.home]
//	scene = "views/home.svg"
//	title = "Home"
//	width = 800
//	height = 600
type routesManifest struct {
	Routes map[string]routeEntry `toml:"routes"`
}

type routeEntry struct {
	Scene  string `toml:"scene"`
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
}

// LoadRoutesFile registers every route declared in a TOML manifest.
// Each entry needs a scene path; title, width and height are optional
// and inherit the router defaults like a plain When call. Entries are
// registered in unspecified order, and a label already registered is
// overwritten.
func (r *Router) LoadRoutesFile(path string) error {
	var manifest routesManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		return fmt.Errorf("fxrouter: routes manifest %s: %w", path, err)
	}
	return r.registerManifest(path, manifest)
}

// LoadRoutes registers every route declared in TOML manifest data,
// for manifests embedded in the binary or assembled in memory.
func (r *Router) LoadRoutes(data []byte) error {
	var manifest routesManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("fxrouter: routes manifest: %w", err)
	}
	return r.registerManifest("manifest", manifest)
}

func (r *Router) registerManifest(source string, manifest routesManifest) error {
	for label, entry := range manifest.Routes {
		if entry.Scene == "" {
			return fmt.Errorf("fxrouter: routes manifest %s: route %q has no scene", source, label)
		}
		r.WhenWithOptions(label, entry.Scene, RouteOptions{
			Title:  entry.Title,
			Width:  entry.Width,
			Height: entry.Height,
		})
	}
	return nil
}
