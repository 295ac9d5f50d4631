package creature

import (
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/prefabs"
)

type Pattern string

const (
	Solid    Pattern = "solid"
	Gradient Pattern = "gradient"
	Spotted  Pattern = "spotted"
	Striped  Pattern = "striped"
	Patched  Pattern = "patched"
	Tuxedo   Pattern = "tuxedo"
)

// Theme is a colour palette that can be paired with any creature form.
type Theme struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Primary    prefabs.Color  `yaml:"primary"`
	Secondary  prefabs.Color  `yaml:"secondary"`
	Underbelly prefabs.Color  `yaml:"underbelly"`
	Accent     *prefabs.Color `yaml:"accent,omitempty"`

	Eyes  prefabs.Color `yaml:"eyes"`
	Nose  prefabs.Color `yaml:"nose"`
	Claws prefabs.Color `yaml:"claws"`

	Pattern   Pattern  `yaml:"pattern"`
	Roughness float64  `yaml:"roughness"`
	Metalness float64  `yaml:"metalness"`
	Tags      []string `yaml:"tags"`
}

func (t Theme) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

type themeTable struct {
	Natural map[string]Theme `yaml:"natural"`
	Fantasy map[string]Theme `yaml:"fantasy"`
}

var themes = prefabs.MustLoadSpec[themeTable]("themes.yaml")

func sortedThemes(m map[string]Theme) []Theme {
	out := make([]Theme, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, cloneTheme(m[id]))
	}
	return out
}

func cloneTheme(t Theme) Theme {
	t.Tags = slices.Clone(t.Tags)
	if t.Accent != nil {
		accent := *t.Accent
		t.Accent = &accent
	}
	return t
}

// LookupTheme finds a natural or fantasy theme by id.
func LookupTheme(id string) (Theme, bool) {
	if t, ok := themes.Natural[id]; ok {
		return cloneTheme(t), true
	}
	if t, ok := themes.Fantasy[id]; ok {
		return cloneTheme(t), true
	}
	return Theme{}, false
}

func NaturalThemes() []Theme {
	return sortedThemes(themes.Natural)
}

func FantasyThemes() []Theme {
	return sortedThemes(themes.Fantasy)
}

// AllThemes returns natural themes followed by fantasy themes, each group
// ordered by id.
func AllThemes() []Theme {
	return append(NaturalThemes(), FantasyThemes()...)
}

func ThemesByTag(tag string) []Theme {
	var out []Theme
	for _, t := range AllThemes() {
		if t.HasTag(tag) {
			out = append(out, t)
		}
	}
	return out
}
