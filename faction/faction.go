// Package faction provides material palettes for reskinning assets per
// faction.
package faction

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/prefabs"
)

type Faction string

const (
	URA        Faction = "ura"
	ScaleGuard Faction = "scale_guard"
	Native     Faction = "native"
	Neutral    Faction = "neutral"
)

// Palette colors one faction. Wear in [0, 1] roughens wood and metal.
type Palette struct {
	Primary   prefabs.Color `yaml:"primary"`
	Secondary prefabs.Color `yaml:"secondary"`
	Wood      prefabs.Color `yaml:"wood"`
	Metal     prefabs.Color `yaml:"metal"`
	Fabric    prefabs.Color `yaml:"fabric"`
	Wear      float64       `yaml:"wear"`
}

type Part string

const (
	Wood      Part = "wood"
	Metal     Part = "metal"
	Fabric    Part = "fabric"
	Skin      Part = "skin"
	Primary   Part = "primary"
	Secondary Part = "secondary"
)

var Parts = []Part{Wood, Metal, Fabric, Skin, Primary, Secondary}

type Material struct {
	Color       prefabs.Color `yaml:"color"`
	Roughness   float64       `yaml:"roughness"`
	Metalness   float64       `yaml:"metalness"`
	Opacity     float64       `yaml:"opacity"`
	Transparent bool          `yaml:"transparent"`
}

// Options seed roughness, metalness and opacity. Parts with their own
// surface model (wood, metal, fabric, skin) overwrite the seeds.
type Options struct {
	Roughness *float64 `yaml:"roughness,omitempty"`
	Metalness *float64 `yaml:"metalness,omitempty"`
	Opacity   *float64 `yaml:"opacity,omitempty"`
}

type Table struct {
	Palettes map[Faction]Palette `yaml:"palettes"`
}

const tableFile = "faction.yaml"

var palettes = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return palettes
}

func LookupPalette(f Faction) (Palette, bool) {
	p, ok := palettes.Palettes[f]
	return p, ok
}

func Factions() []Faction {
	return slices.Sorted(maps.Keys(palettes.Palettes))
}

func MaterialFor(f Faction, part Part, opts *Options) Material {
	return palettes.MaterialFor(f, part, opts)
}

// MaterialFor derives a surface for one part of a faction asset. An unknown
// faction uses a zero palette.
func (t *Table) MaterialFor(f Faction, part Part, opts *Options) Material {
	pal := t.Palettes[f]
	m := Material{Roughness: 0.7, Metalness: 0.1, Opacity: 1}
	if opts != nil {
		if opts.Roughness != nil {
			m.Roughness = *opts.Roughness
		}
		if opts.Metalness != nil {
			m.Metalness = *opts.Metalness
		}
		if opts.Opacity != nil {
			m.Opacity = *opts.Opacity
		}
	}

	switch part {
	case Wood:
		m.Color = pal.Wood
		m.Roughness = 0.8 + pal.Wear*0.2
	case Metal:
		m.Color = pal.Metal
		m.Roughness = 0.4 + pal.Wear*0.4
		m.Metalness = 0.8 - pal.Wear*0.3
	case Fabric:
		m.Color = pal.Fabric
		m.Roughness = 0.9
		m.Metalness = 0
	case Skin:
		m.Color = pal.Primary
		m.Roughness = 0.6
		m.Metalness = 0
	case Primary:
		m.Color = pal.Primary
	case Secondary:
		m.Color = pal.Secondary
	}

	m.Transparent = m.Opacity < 1
	return m
}

// Materials returns every part's material with default options.
func Materials(f Faction) map[Part]Material {
	out := make(map[Part]Material, len(Parts))
	for _, part := range Parts {
		out[part] = MaterialFor(f, part, nil)
	}
	return out
}
