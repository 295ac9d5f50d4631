// Package obstacle provides the obstacle template, its forms and the hazard
// levels that can be layered on top of a form.
package obstacle

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Form string

const (
	Rock        Form = "rock"
	Boulder     Form = "boulder"
	Log         Form = "log"
	Stump       Form = "stump"
	Crate       Form = "crate"
	Barrel      Form = "barrel"
	Fence       Form = "fence"
	Wall        Form = "wall"
	Pillar      Form = "pillar"
	Pit         Form = "pit"
	Spike       Form = "spike"
	Icicle      Form = "icicle"
	Crystal     Form = "crystal"
	Bush        Form = "bush"
	Tree        Form = "tree"
	FirePit     Form = "fire_pit"
	WaterPool   Form = "water_pool"
	MudPuddle   Form = "mud_puddle"
	IcePatch    Form = "ice_patch"
	Whirlpool   Form = "whirlpool"
	EnergyField Form = "energy_field"
)

// Hazard is the damage tier applied after the form. The empty Hazard
// applies nothing.
type Hazard string

const (
	Harmless Hazard = "harmless"
	Minor    Hazard = "minor"
	Moderate Hazard = "moderate"
	Severe   Hazard = "severe"
	Deadly   Hazard = "deadly"
)

type Shape string

const (
	ShapeBox       Shape = "box"
	ShapeCylinder  Shape = "cylinder"
	ShapeSphere    Shape = "sphere"
	ShapeCone      Shape = "cone"
	ShapeIrregular Shape = "irregular"
	ShapeFlat      Shape = "flat"
)

type Material string

const (
	MaterialWood    Material = "wood"
	MaterialStone   Material = "stone"
	MaterialMetal   Material = "metal"
	MaterialIce     Material = "ice"
	MaterialCrystal Material = "crystal"
	MaterialOrganic Material = "organic"
	MaterialWater   Material = "water"
	MaterialFire    Material = "fire"
	MaterialEnergy  Material = "energy"
)

type MovementPattern string

const (
	MovementPatternNone       MovementPattern = "none"
	MovementPatternHorizontal MovementPattern = "horizontal"
	MovementPatternVertical   MovementPattern = "vertical"
	MovementPatternCircular   MovementPattern = "circular"
	MovementPatternRandom     MovementPattern = "random"
)

type RotationAxis string

const (
	RotationAxisX RotationAxis = "x"
	RotationAxisY RotationAxis = "y"
	RotationAxisZ RotationAxis = "z"
)

type Particles string

const (
	ParticlesNone    Particles = "none"
	ParticlesDust    Particles = "dust"
	ParticlesSparks  Particles = "sparks"
	ParticlesBubbles Particles = "bubbles"
	ParticlesFire    Particles = "fire"
	ParticlesIce     Particles = "ice"
	ParticlesEnergy  Particles = "energy"
)

type HitSound string

const (
	HitSoundNone    HitSound = "none"
	HitSoundThud    HitSound = "thud"
	HitSoundClang   HitSound = "clang"
	HitSoundSplash  HitSound = "splash"
	HitSoundCrack   HitSound = "crack"
	HitSoundShatter HitSound = "shatter"
)

type Obstacle struct {
	Width            float64         `yaml:"width"`
	Height           float64         `yaml:"height"`
	Depth            float64         `yaml:"depth"`
	Shape            Shape           `yaml:"shape"`
	Rounding         float64         `yaml:"rounding"`
	Taper            float64         `yaml:"taper"`
	Material         Material        `yaml:"material"`
	Roughness        float64         `yaml:"roughness"`
	Bumpiness        float64         `yaml:"bumpiness"`
	MossCoverage     float64         `yaml:"moss_coverage"`
	CrackLevel       float64         `yaml:"crack_level"`
	Wetness          float64         `yaml:"wetness"`
	Solid            bool            `yaml:"solid"`
	Destructible     bool            `yaml:"destructible"`
	Health           float64         `yaml:"health"`
	Damaging         bool            `yaml:"damaging"`
	DamageAmount     float64         `yaml:"damage_amount"`
	Slowing          bool            `yaml:"slowing"`
	SlowFactor       float64         `yaml:"slow_factor"`
	Bouncy           bool            `yaml:"bouncy"`
	BounceStrength   float64         `yaml:"bounce_strength"`
	Moving           bool            `yaml:"moving"`
	MovementPattern  MovementPattern `yaml:"movement_pattern"`
	MovementDistance float64         `yaml:"movement_distance"`
	MovementSpeed    float64         `yaml:"movement_speed"`
	Rotating         bool            `yaml:"rotating"`
	RotationSpeed    float64         `yaml:"rotation_speed"`
	RotationAxis     RotationAxis    `yaml:"rotation_axis"`
	Particles        Particles       `yaml:"particles"`
	HitSound         HitSound        `yaml:"hit_sound"`
	Glow             float64         `yaml:"glow"`
	ShadowIntensity  float64         `yaml:"shadow_intensity"`
}

type Patch struct {
	Width            *float64         `yaml:"width,omitempty"`
	Height           *float64         `yaml:"height,omitempty"`
	Depth            *float64         `yaml:"depth,omitempty"`
	Shape            *Shape           `yaml:"shape,omitempty"`
	Rounding         *float64         `yaml:"rounding,omitempty"`
	Taper            *float64         `yaml:"taper,omitempty"`
	Material         *Material        `yaml:"material,omitempty"`
	Roughness        *float64         `yaml:"roughness,omitempty"`
	Bumpiness        *float64         `yaml:"bumpiness,omitempty"`
	MossCoverage     *float64         `yaml:"moss_coverage,omitempty"`
	CrackLevel       *float64         `yaml:"crack_level,omitempty"`
	Wetness          *float64         `yaml:"wetness,omitempty"`
	Solid            *bool            `yaml:"solid,omitempty"`
	Destructible     *bool            `yaml:"destructible,omitempty"`
	Health           *float64         `yaml:"health,omitempty"`
	Damaging         *bool            `yaml:"damaging,omitempty"`
	DamageAmount     *float64         `yaml:"damage_amount,omitempty"`
	Slowing          *bool            `yaml:"slowing,omitempty"`
	SlowFactor       *float64         `yaml:"slow_factor,omitempty"`
	Bouncy           *bool            `yaml:"bouncy,omitempty"`
	BounceStrength   *float64         `yaml:"bounce_strength,omitempty"`
	Moving           *bool            `yaml:"moving,omitempty"`
	MovementPattern  *MovementPattern `yaml:"movement_pattern,omitempty"`
	MovementDistance *float64         `yaml:"movement_distance,omitempty"`
	MovementSpeed    *float64         `yaml:"movement_speed,omitempty"`
	Rotating         *bool            `yaml:"rotating,omitempty"`
	RotationSpeed    *float64         `yaml:"rotation_speed,omitempty"`
	RotationAxis     *RotationAxis    `yaml:"rotation_axis,omitempty"`
	Particles        *Particles       `yaml:"particles,omitempty"`
	HitSound         *HitSound        `yaml:"hit_sound,omitempty"`
	Glow             *float64         `yaml:"glow,omitempty"`
	ShadowIntensity  *float64         `yaml:"shadow_intensity,omitempty"`
}

func (p *Patch) ApplyTo(dst *Obstacle) {
	if p == nil {
		return
	}
	common.Override(&dst.Width, p.Width)
	common.Override(&dst.Height, p.Height)
	common.Override(&dst.Depth, p.Depth)
	common.Override(&dst.Shape, p.Shape)
	common.Override(&dst.Rounding, p.Rounding)
	common.Override(&dst.Taper, p.Taper)
	common.Override(&dst.Material, p.Material)
	common.Override(&dst.Roughness, p.Roughness)
	common.Override(&dst.Bumpiness, p.Bumpiness)
	common.Override(&dst.MossCoverage, p.MossCoverage)
	common.Override(&dst.CrackLevel, p.CrackLevel)
	common.Override(&dst.Wetness, p.Wetness)
	common.Override(&dst.Solid, p.Solid)
	common.Override(&dst.Destructible, p.Destructible)
	common.Override(&dst.Health, p.Health)
	common.Override(&dst.Damaging, p.Damaging)
	common.Override(&dst.DamageAmount, p.DamageAmount)
	common.Override(&dst.Slowing, p.Slowing)
	common.Override(&dst.SlowFactor, p.SlowFactor)
	common.Override(&dst.Bouncy, p.Bouncy)
	common.Override(&dst.BounceStrength, p.BounceStrength)
	common.Override(&dst.Moving, p.Moving)
	common.Override(&dst.MovementPattern, p.MovementPattern)
	common.Override(&dst.MovementDistance, p.MovementDistance)
	common.Override(&dst.MovementSpeed, p.MovementSpeed)
	common.Override(&dst.Rotating, p.Rotating)
	common.Override(&dst.RotationSpeed, p.RotationSpeed)
	common.Override(&dst.RotationAxis, p.RotationAxis)
	common.Override(&dst.Particles, p.Particles)
	common.Override(&dst.HitSound, p.HitSound)
	common.Override(&dst.Glow, p.Glow)
	common.Override(&dst.ShadowIntensity, p.ShadowIntensity)
}

func Defaults() Obstacle {
	return Obstacle{
		Width:            1,
		Height:           1,
		Depth:            1,
		Shape:            ShapeBox,
		Rounding:         0,
		Taper:            0,
		Material:         MaterialStone,
		Roughness:        0.7,
		Bumpiness:        0,
		MossCoverage:     0,
		CrackLevel:       0,
		Wetness:          0,
		Solid:            true,
		Destructible:     false,
		Health:           100,
		Damaging:         false,
		DamageAmount:     10,
		Slowing:          false,
		SlowFactor:       0.5,
		Bouncy:           false,
		BounceStrength:   1,
		Moving:           false,
		MovementPattern:  MovementPatternNone,
		MovementDistance: 2,
		MovementSpeed:    1,
		Rotating:         false,
		RotationSpeed:    1,
		RotationAxis:     RotationAxisY,
		Particles:        ParticlesNone,
		HitSound:         HitSoundThud,
		Glow:             0,
		ShadowIntensity:  1,
	}
}

type Table struct {
	Forms   map[Form]Patch   `yaml:"forms"`
	Hazards map[Hazard]Patch `yaml:"hazards"`
}

const tableFile = "obstacle.yaml"

var obstacles = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return obstacles
}

// Create composes defaults, the form, the hazard level and custom, in that
// order. A pit keeps its negative height; it marks a hole, not an error.
func Create(form Form, hazard Hazard, custom *Patch) Obstacle {
	return obstacles.Create(form, hazard, custom)
}

func (t *Table) Create(form Form, hazard Hazard, custom *Patch) Obstacle {
	o := Defaults()
	if fp, ok := t.Forms[form]; ok {
		fp.ApplyTo(&o)
	}
	if hazard != "" {
		if hp, ok := t.Hazards[hazard]; ok {
			hp.ApplyTo(&o)
		}
	}
	custom.ApplyTo(&o)
	return o
}

func (t *Table) HasForm(form Form) bool {
	_, ok := t.Forms[form]
	return ok
}

func (t *Table) FormNames() []Form {
	return slices.Sorted(maps.Keys(t.Forms))
}

func Forms() []Form {
	return obstacles.FormNames()
}
