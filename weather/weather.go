// Package weather provides named weather presets and blends between them.
package weather

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Type string

const (
	TypeClear Type = "clear"
	TypeRain  Type = "rain"
	TypeSnow  Type = "snow"
	TypeFog   Type = "fog"
	TypeStorm Type = "storm"
)

type PresetName string

const (
	Clear        PresetName = "clear"
	Overcast     PresetName = "overcast"
	Foggy        PresetName = "foggy"
	LightRain    PresetName = "light_rain"
	HeavyRain    PresetName = "heavy_rain"
	Thunderstorm PresetName = "thunderstorm"
	LightSnow    PresetName = "light_snow"
	Blizzard     PresetName = "blizzard"
)

// Config is the state handed to a weather system.
type Config struct {
	Type              Type       `yaml:"type"`
	Intensity         float64    `yaml:"intensity"`
	WindDirection     mgl64.Vec3 `yaml:"wind_direction,flow"`
	WindIntensity     float64    `yaml:"wind_intensity"`
	Temperature       float64    `yaml:"temperature"`
	Visibility        float64    `yaml:"visibility"`
	CloudCoverage     float64    `yaml:"cloud_coverage"`
	PrecipitationRate float64    `yaml:"precipitation_rate"`
}

type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Config      `yaml:",inline"`
}

type Table struct {
	Presets map[PresetName]Preset `yaml:"presets"`
}

const tableFile = "weather.yaml"

var presets = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return presets
}

func (t *Table) Lookup(name PresetName) (Preset, bool) {
	p, ok := t.Presets[name]
	return p, ok
}

func LookupPreset(name PresetName) (Preset, bool) {
	return presets.Lookup(name)
}

func PresetNames() []PresetName {
	return slices.Sorted(maps.Keys(presets.Presets))
}

func (p Preset) ToConfig() Config {
	return p.Config
}

// Blend interpolates a toward b. t is clamped to [0, 1] and the weather type
// switches to b's at t = 0.5.
func Blend(a, b Preset, t float64) Config {
	t = common.Clamp(t, 0, 1)
	lerp := func(x, y float64) float64 { return common.Lerp(x, y, t) }

	out := Config{
		Type:              b.Type,
		Intensity:         lerp(a.Intensity, b.Intensity),
		WindDirection:     a.WindDirection.Add(b.WindDirection.Sub(a.WindDirection).Mul(t)),
		WindIntensity:     lerp(a.WindIntensity, b.WindIntensity),
		Temperature:       lerp(a.Temperature, b.Temperature),
		Visibility:        lerp(a.Visibility, b.Visibility),
		CloudCoverage:     lerp(a.CloudCoverage, b.CloudCoverage),
		PrecipitationRate: lerp(a.PrecipitationRate, b.PrecipitationRate),
	}
	if t < 0.5 {
		out.Type = a.Type
	}
	return out
}
