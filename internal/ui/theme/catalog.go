package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog maps normalized theme names to built-in themes.
var Catalog = map[string]Theme{}

func init() {
	for _, t := range []Theme{CatppuccinMocha, CatppuccinLatte, Nord, Dracula, GruvboxDark, TokyoNight} {
		Catalog[normalizeKey(t.Name)] = t
	}
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Get returns a built-in theme by name.
func Get(name string) (Theme, bool) {
	t, ok := Catalog[normalizeKey(name)]
	return t, ok
}

// Names returns built-in theme names in display order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, t := range Catalog {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// CustomDir is where user themes live.
func CustomDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "edgepanel", "themes")
}

// Resolve looks a theme up in the catalog, then in CustomDir, and falls
// back to the default.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}
	if dir := CustomDir(); dir != "" {
		if t, ok := LoadCustomThemes(dir)[normalizeKey(name)]; ok {
			return t
		}
	}
	return Default()
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
