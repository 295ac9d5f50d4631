// Package audio provides environment, footstep, combat and spatial audio
// presets.
package audio

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
	"github.com/milk9111/gamepresets/weather"
)

type Name string

const (
	Forest     Name = "forest"
	Cave       Name = "cave"
	City       Name = "city"
	Underwater Name = "underwater"
	Indoor     Name = "indoor"
	Combat     Name = "combat"
)

type Surface string

const (
	Grass Surface = "grass"
	Dirt  Surface = "dirt"
	Stone Surface = "stone"
	Wood  Surface = "wood"
	Metal Surface = "metal"
	Water Surface = "water"
	Sand  Surface = "sand"
	Snow  Surface = "snow"
)

type DistanceModel string

const (
	Linear      DistanceModel = "linear"
	Inverse     DistanceModel = "inverse"
	Exponential DistanceModel = "exponential"
)

type Reverb struct {
	Decay    float64 `yaml:"decay"`
	PreDelay float64 `yaml:"pre_delay,omitempty"`
	Wet      float64 `yaml:"wet"`
	Dry      float64 `yaml:"dry"`
}

// Environment is the room model. Zero filter frequencies mean no filter.
type Environment struct {
	Preset            string  `yaml:"preset"`
	Reverb            Reverb  `yaml:"reverb"`
	LowpassFrequency  float64 `yaml:"lowpass_frequency,omitempty"`
	HighpassFrequency float64 `yaml:"highpass_frequency,omitempty"`
}

type AmbienceLayer struct {
	ID          string  `yaml:"id"`
	Volume      float64 `yaml:"volume"`
	Loop        bool    `yaml:"loop"`
	Description string  `yaml:"description"`
}

type Spatial struct {
	DistanceModel DistanceModel `yaml:"distance_model"`
	RefDistance   float64       `yaml:"ref_distance"`
	MaxDistance   float64       `yaml:"max_distance"`
	RolloffFactor float64       `yaml:"rolloff_factor"`
}

type Preset struct {
	Name        Name            `yaml:"name"`
	Description string          `yaml:"description"`
	Environment Environment     `yaml:"environment"`
	Ambience    []AmbienceLayer `yaml:"ambience"`
	Spatial     Spatial         `yaml:"spatial"`
}

func (p Preset) Clone() Preset {
	p.Ambience = slices.Clone(p.Ambience)
	return p
}

type Footstep struct {
	Surface        Surface `yaml:"surface"`
	Volume         float64 `yaml:"volume"`
	PitchVariation float64 `yaml:"pitch_variation"`
	Interval       float64 `yaml:"interval"`
}

type CombatType string

const (
	Impact     CombatType = "impact"
	Weapon     CombatType = "weapon"
	Projectile CombatType = "projectile"
	Explosion  CombatType = "explosion"
)

type CombatSound struct {
	Type        CombatType `yaml:"type"`
	Volume      float64    `yaml:"volume"`
	RefDistance float64    `yaml:"ref_distance"`
	MaxDistance float64    `yaml:"max_distance"`
	PoolSize    int        `yaml:"pool_size"`
}

type Fade struct {
	Volume   float64 `yaml:"volume"`
	FadeTime float64 `yaml:"fade_time"`
}

type Thunder struct {
	Volume      float64 `yaml:"volume"`
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
}

type WeatherSounds struct {
	RainLight Fade    `yaml:"rain_light"`
	RainHeavy Fade    `yaml:"rain_heavy"`
	Thunder   Thunder `yaml:"thunder"`
	Wind      Fade    `yaml:"wind"`
	Hail      Fade    `yaml:"hail"`
}

type Table struct {
	Environments map[Name]Preset        `yaml:"environments"`
	Footsteps    map[Surface]Footstep   `yaml:"footsteps"`
	Combat       map[string]CombatSound `yaml:"combat"`
	Spatial      map[string]Spatial     `yaml:"spatial"`
	Weather      WeatherSounds          `yaml:"weather"`
}

const tableFile = "audio.yaml"

var presets = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return presets
}

func LookupPreset(name Name) (Preset, bool) {
	p, ok := presets.Environments[name]
	return p.Clone(), ok
}

func PresetNames() []Name {
	return slices.Sorted(maps.Keys(presets.Environments))
}

func LookupFootstep(surface Surface) (Footstep, bool) {
	f, ok := presets.Footsteps[surface]
	return f, ok
}

func LookupCombatSound(name string) (CombatSound, bool) {
	c, ok := presets.Combat[name]
	return c, ok
}

func LookupSpatial(name string) (Spatial, bool) {
	s, ok := presets.Spatial[name]
	return s, ok
}

func WeatherAudio() WeatherSounds {
	return presets.Weather
}

type EnvironmentPatch struct {
	Preset            *string  `yaml:"preset,omitempty"`
	Reverb            *Reverb  `yaml:"reverb,omitempty"`
	LowpassFrequency  *float64 `yaml:"lowpass_frequency,omitempty"`
	HighpassFrequency *float64 `yaml:"highpass_frequency,omitempty"`
}

func (p *EnvironmentPatch) ApplyTo(dst *Environment) {
	if p == nil {
		return
	}
	common.Override(&dst.Preset, p.Preset)
	common.Override(&dst.Reverb, p.Reverb)
	common.Override(&dst.LowpassFrequency, p.LowpassFrequency)
	common.Override(&dst.HighpassFrequency, p.HighpassFrequency)
}

type SpatialPatch struct {
	DistanceModel *DistanceModel `yaml:"distance_model,omitempty"`
	RefDistance   *float64       `yaml:"ref_distance,omitempty"`
	MaxDistance   *float64       `yaml:"max_distance,omitempty"`
	RolloffFactor *float64       `yaml:"rolloff_factor,omitempty"`
}

func (p *SpatialPatch) ApplyTo(dst *Spatial) {
	if p == nil {
		return
	}
	common.Override(&dst.DistanceModel, p.DistanceModel)
	common.Override(&dst.RefDistance, p.RefDistance)
	common.Override(&dst.MaxDistance, p.MaxDistance)
	common.Override(&dst.RolloffFactor, p.RolloffFactor)
}

// Patch overrides a preset. Environment and Spatial merge field by field;
// a non-nil Ambience replaces the whole layer list.
type Patch struct {
	Name        *Name             `yaml:"name,omitempty"`
	Description *string           `yaml:"description,omitempty"`
	Environment *EnvironmentPatch `yaml:"environment,omitempty"`
	Ambience    []AmbienceLayer   `yaml:"ambience,omitempty"`
	Spatial     *SpatialPatch     `yaml:"spatial,omitempty"`
}

func (p *Patch) ApplyTo(dst *Preset) {
	if p == nil {
		return
	}
	common.Override(&dst.Name, p.Name)
	common.Override(&dst.Description, p.Description)
	p.Environment.ApplyTo(&dst.Environment)
	if p.Ambience != nil {
		dst.Ambience = slices.Clone(p.Ambience)
	}
	p.Spatial.ApplyTo(&dst.Spatial)
}

// CustomPreset layers overrides onto the named environment preset. An
// unknown base starts from a zero preset.
func CustomPreset(base Name, overrides *Patch) Preset {
	p, _ := LookupPreset(base)
	overrides.ApplyTo(&p)
	return p
}

// Intensity is the mix level for weather loops.
type Intensity struct {
	Rain    float64
	Wind    float64
	Thunder bool
}

func WeatherIntensity(t weather.Type, intensity float64) Intensity {
	switch t {
	case weather.TypeRain:
		return Intensity{Rain: intensity * 0.7, Wind: intensity * 0.3}
	case weather.TypeStorm:
		return Intensity{Rain: intensity * 0.9, Wind: intensity * 0.6, Thunder: intensity > 0.5}
	case weather.TypeSnow:
		return Intensity{Wind: intensity * 0.4}
	case weather.TypeFog:
		return Intensity{Wind: intensity * 0.15}
	default:
		return Intensity{}
	}
}
