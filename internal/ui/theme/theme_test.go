package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/edgepanel/internal/core/activity"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  catppuccin mocha ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Catppuccin Mocha" {
		t.Fatalf("theme name = %q, want Catppuccin Mocha", got.Name)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 built-in themes, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestResolveBuiltInTheme(t *testing.T) {
	if got := Resolve("dracula"); got.Name != "Dracula" {
		t.Fatalf("Resolve(dracula) returned %q, want Dracula", got.Name)
	}
}

func TestResolveCustomThemeFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "edgepanel", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	body := "name: Ocean Breeze\nbase: \"#001122\"\ntext: \"#ffffff\"\n"
	if err := os.WriteFile(filepath.Join(themesDir, "ocean-breeze.yaml"), []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got := Resolve("ocean breeze")
	if got.Name != "Ocean Breeze" || got.Base != "#001122" {
		t.Fatalf("Resolve(custom) = %q base %q", got.Name, got.Base)
	}
	if got.Green != Default().Green {
		t.Fatalf("unset colors should inherit from the default, got %q", got.Green)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got := Resolve("not-a-real-theme"); got.Name != CatppuccinMocha.Name {
		t.Fatalf("Resolve(unknown) name = %q, want %q", got.Name, CatppuccinMocha.Name)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my-theme.yaml")
	if err := os.WriteFile(path, []byte("base: \"#010203\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Name != "my-theme" {
		t.Fatalf("Name = %q, want my-theme", got.Name)
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"forest.yaml": "name: Forest\nbase: \"#102030\"\n",
		"broken.yaml": "name: [\n",
		"readme.txt":  "ignore me",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("LoadCustomThemes() loaded %d themes, want 1", len(themes))
	}
	if got, ok := themes["forest"]; !ok || got.Name != "Forest" {
		t.Fatalf("expected Forest theme, got %#v (ok=%v)", got, ok)
	}
}

func TestStatusColor(t *testing.T) {
	th := Default()
	tests := []struct {
		code int
		want string
	}{
		{204, string(th.Green)},
		{302, string(th.Blue)},
		{404, string(th.Yellow)},
		{500, string(th.Red)},
		{0, string(th.Red)},
		{101, string(th.Text)},
	}
	for _, tt := range tests {
		if got := th.StatusColor(tt.code); string(got) != tt.want {
			t.Errorf("StatusColor(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestKindColors(t *testing.T) {
	th := Default()

	if th.StatusKindColor(activity.StatusLoading) != th.Yellow {
		t.Error("loading should be yellow")
	}
	if th.StatusKindColor(activity.StatusReady) != th.Subtext {
		t.Error("ready should be subtext")
	}
	if th.EntryColor(activity.KindError) != th.Red {
		t.Error("error entries should be red")
	}
	if th.EntryColor(activity.KindInfo) != th.Blue {
		t.Error("info entries should be blue")
	}
	if th.MethodColor("POST") != th.Yellow {
		t.Error("POST should be yellow")
	}
}
