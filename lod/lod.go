// Package lod holds level-of-detail presets and the configs derived from
// them.
package lod

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type PresetName string

const (
	Performance PresetName = "performance"
	Quality     PresetName = "quality"
	Mobile      PresetName = "mobile"
	Desktop     PresetName = "desktop"
	Ultra       PresetName = "ultra"
)

type FadeMode string

const (
	FadeInstant   FadeMode = "instant"
	FadeCrossfade FadeMode = "crossfade"
	FadeDither    FadeMode = "dither"
)

type Distances struct {
	High     float64 `yaml:"high"`
	Medium   float64 `yaml:"medium"`
	Low      float64 `yaml:"low"`
	Impostor float64 `yaml:"impostor"`
	Cull     float64 `yaml:"cull"`
}

type SimplificationRatios struct {
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

type Preset struct {
	Name                        PresetName           `yaml:"name"`
	Description                 string               `yaml:"description"`
	Distances                   Distances            `yaml:"distances"`
	Hysteresis                  float64              `yaml:"hysteresis"`
	TransitionDuration          float64              `yaml:"transition_duration"`
	FadeMode                    FadeMode             `yaml:"fade_mode"`
	SimplificationRatios        SimplificationRatios `yaml:"simplification_ratios"`
	VegetationDensityMultiplier float64              `yaml:"vegetation_density_multiplier"`
	ShadowLODLevel              int                  `yaml:"shadow_lod_level"`
	ImpostorViews               int                  `yaml:"impostor_views"`
	ImpostorResolution          int                  `yaml:"impostor_resolution"`
}

type Level struct {
	Distance float64 `yaml:"distance"`
	Visible  bool    `yaml:"visible"`
}

type Config struct {
	Levels             []Level  `yaml:"levels"`
	Hysteresis         float64  `yaml:"hysteresis"`
	TransitionDuration float64  `yaml:"transition_duration"`
	FadeMode           FadeMode `yaml:"fade_mode"`
}

type VegetationConfig struct {
	HighDetailDistance   float64 `yaml:"high_detail_distance"`
	MediumDetailDistance float64 `yaml:"medium_detail_distance"`
	LowDetailDistance    float64 `yaml:"low_detail_distance"`
	ImpostorDistance     float64 `yaml:"impostor_distance"`
	CullDistance         float64 `yaml:"cull_distance"`
	TransitionWidth      float64 `yaml:"transition_width"`
}

type Table struct {
	Presets map[PresetName]Preset `yaml:"presets"`
}

const tableFile = "lod.yaml"

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

// ConfigFromPreset returns five levels: high, medium, low, impostor and a
// final invisible cull level.
func ConfigFromPreset(p Preset) Config {
	return Config{
		Levels: []Level{
			{Distance: p.Distances.High, Visible: true},
			{Distance: p.Distances.Medium, Visible: true},
			{Distance: p.Distances.Low, Visible: true},
			{Distance: p.Distances.Impostor, Visible: true},
			{Distance: p.Distances.Cull, Visible: false},
		},
		Hysteresis:         p.Hysteresis,
		TransitionDuration: p.TransitionDuration,
		FadeMode:           p.FadeMode,
	}
}

func VegetationConfigFromPreset(p Preset) VegetationConfig {
	return VegetationConfig{
		HighDetailDistance:   p.Distances.High,
		MediumDetailDistance: p.Distances.Medium,
		LowDetailDistance:    p.Distances.Low,
		ImpostorDistance:     p.Distances.Impostor,
		CullDistance:         p.Distances.Cull,
		TransitionWidth:      p.Distances.High * 0.2,
	}
}

// InterpolatePresets blends every numeric field of a and b. Name and fade
// mode switch from a to b at t = 0.5; integer fields are rounded.
func InterpolatePresets(a, b Preset, t float64) Preset {
	lerp := func(x, y float64) float64 { return common.Lerp(x, y, t) }
	lerpInt := func(x, y int) int { return int(common.Round(lerp(float64(x), float64(y)), 0)) }

	out := Preset{
		Name:        b.Name,
		Description: fmt.Sprintf("Interpolated between %s and %s", a.Name, b.Name),
		Distances: Distances{
			High:     lerp(a.Distances.High, b.Distances.High),
			Medium:   lerp(a.Distances.Medium, b.Distances.Medium),
			Low:      lerp(a.Distances.Low, b.Distances.Low),
			Impostor: lerp(a.Distances.Impostor, b.Distances.Impostor),
			Cull:     lerp(a.Distances.Cull, b.Distances.Cull),
		},
		Hysteresis:         lerp(a.Hysteresis, b.Hysteresis),
		TransitionDuration: lerp(a.TransitionDuration, b.TransitionDuration),
		FadeMode:           b.FadeMode,
		SimplificationRatios: SimplificationRatios{
			Medium: lerp(a.SimplificationRatios.Medium, b.SimplificationRatios.Medium),
			Low:    lerp(a.SimplificationRatios.Low, b.SimplificationRatios.Low),
		},
		VegetationDensityMultiplier: lerp(a.VegetationDensityMultiplier, b.VegetationDensityMultiplier),
		ShadowLODLevel:              lerpInt(a.ShadowLODLevel, b.ShadowLODLevel),
		ImpostorViews:               lerpInt(a.ImpostorViews, b.ImpostorViews),
		ImpostorResolution:          lerpInt(a.ImpostorResolution, b.ImpostorResolution),
	}
	if t < 0.5 {
		out.Name = a.Name
		out.FadeMode = a.FadeMode
	}
	return out
}
