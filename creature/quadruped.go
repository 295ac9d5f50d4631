package creature

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Form string

const (
	Otter    Form = "otter"
	Beaver   Form = "beaver"
	Dog      Form = "dog"
	Wolf     Form = "wolf"
	Fox      Form = "fox"
	Cat      Form = "cat"
	Lion     Form = "lion"
	Tiger    Form = "tiger"
	Bear     Form = "bear"
	Horse    Form = "horse"
	Cow      Form = "cow"
	Pig      Form = "pig"
	Deer     Form = "deer"
	Moose    Form = "moose"
	Rabbit   Form = "rabbit"
	Mouse    Form = "mouse"
	Squirrel Form = "squirrel"
)

type Age string

const (
	Baby  Age = "baby"
	Young Age = "young"
	Adult Age = "adult"
	Old   Age = "old"
)

type Build string

const (
	Thin    Build = "thin"
	Lean    Build = "lean"
	Average Build = "average"
	Stocky  Build = "stocky"
	Heavy   Build = "heavy"
)

// Quadruped holds every knob of the four-legged creature template. Most
// values are relative scales where 1 is a medium animal.
type Quadruped struct {
	Size       float64 `yaml:"size"`
	BodyLength float64 `yaml:"body_length"`
	BodyWidth  float64 `yaml:"body_width"`
	BodyBulk   float64 `yaml:"body_bulk"`

	HeadSize     float64 `yaml:"head_size"`
	SnoutLength  float64 `yaml:"snout_length"`
	SnoutWidth   float64 `yaml:"snout_width"`
	ForeheadSize float64 `yaml:"forehead_size"`

	EarSize      float64 `yaml:"ear_size"`
	EarRoundness float64 `yaml:"ear_roundness"` // 0 pointed, 1 round
	EarDroop     float64 `yaml:"ear_droop"`     // 0 erect, 1 floppy
	EarPosition  float64 `yaml:"ear_position"`

	EyeSize     float64 `yaml:"eye_size"`
	EyePosition float64 `yaml:"eye_position"` // 0 front facing, 1 side
	PupilShape  float64 `yaml:"pupil_shape"`  // 0 round, 1 vertical slit

	NoseSize      float64 `yaml:"nose_size"`
	WhiskerLength float64 `yaml:"whisker_length"`
	TeethVisible  float64 `yaml:"teeth_visible"`

	LegLength    float64 `yaml:"leg_length"`
	LegThickness float64 `yaml:"leg_thickness"`
	LegRatio     float64 `yaml:"leg_ratio"` // >1 means longer back legs
	PawSize      float64 `yaml:"paw_size"`
	Webbing      float64 `yaml:"webbing"`
	ClawLength   float64 `yaml:"claw_length"`

	HasTail       bool    `yaml:"has_tail"`
	TailLength    float64 `yaml:"tail_length"`
	TailThickness float64 `yaml:"tail_thickness"`
	TailFluff     float64 `yaml:"tail_fluff"`

	FurLength  float64 `yaml:"fur_length"`
	FurDensity float64 `yaml:"fur_density"`
	Mane       float64 `yaml:"mane"`

	HornSize  float64 `yaml:"horn_size"`
	HornCount int     `yaml:"horn_count"`
	TuskSize  float64 `yaml:"tusk_size"`

	Age   Age     `yaml:"age"`
	Build Build   `yaml:"build"`
	Wear  float64 `yaml:"wear"`
}

// QuadrupedPatch is a partial Quadruped. Nil fields are left alone.
type QuadrupedPatch struct {
	Size       *float64 `yaml:"size,omitempty"`
	BodyLength *float64 `yaml:"body_length,omitempty"`
	BodyWidth  *float64 `yaml:"body_width,omitempty"`
	BodyBulk   *float64 `yaml:"body_bulk,omitempty"`

	HeadSize     *float64 `yaml:"head_size,omitempty"`
	SnoutLength  *float64 `yaml:"snout_length,omitempty"`
	SnoutWidth   *float64 `yaml:"snout_width,omitempty"`
	ForeheadSize *float64 `yaml:"forehead_size,omitempty"`

	EarSize      *float64 `yaml:"ear_size,omitempty"`
	EarRoundness *float64 `yaml:"ear_roundness,omitempty"`
	EarDroop     *float64 `yaml:"ear_droop,omitempty"`
	EarPosition  *float64 `yaml:"ear_position,omitempty"`

	EyeSize     *float64 `yaml:"eye_size,omitempty"`
	EyePosition *float64 `yaml:"eye_position,omitempty"`
	PupilShape  *float64 `yaml:"pupil_shape,omitempty"`

	NoseSize      *float64 `yaml:"nose_size,omitempty"`
	WhiskerLength *float64 `yaml:"whisker_length,omitempty"`
	TeethVisible  *float64 `yaml:"teeth_visible,omitempty"`

	LegLength    *float64 `yaml:"leg_length,omitempty"`
	LegThickness *float64 `yaml:"leg_thickness,omitempty"`
	LegRatio     *float64 `yaml:"leg_ratio,omitempty"`
	PawSize      *float64 `yaml:"paw_size,omitempty"`
	Webbing      *float64 `yaml:"webbing,omitempty"`
	ClawLength   *float64 `yaml:"claw_length,omitempty"`

	HasTail       *bool    `yaml:"has_tail,omitempty"`
	TailLength    *float64 `yaml:"tail_length,omitempty"`
	TailThickness *float64 `yaml:"tail_thickness,omitempty"`
	TailFluff     *float64 `yaml:"tail_fluff,omitempty"`

	FurLength  *float64 `yaml:"fur_length,omitempty"`
	FurDensity *float64 `yaml:"fur_density,omitempty"`
	Mane       *float64 `yaml:"mane,omitempty"`

	HornSize  *float64 `yaml:"horn_size,omitempty"`
	HornCount *int     `yaml:"horn_count,omitempty"`
	TuskSize  *float64 `yaml:"tusk_size,omitempty"`

	Age   *Age     `yaml:"age,omitempty"`
	Build *Build   `yaml:"build,omitempty"`
	Wear  *float64 `yaml:"wear,omitempty"`
}

func (p *QuadrupedPatch) ApplyTo(dst *Quadruped) {
	if p == nil {
		return
	}
	p.eachFloat(dst, common.Override[float64])
	common.Override(&dst.HasTail, p.HasTail)
	common.Override(&dst.HornCount, p.HornCount)
	common.Override(&dst.Age, p.Age)
	common.Override(&dst.Build, p.Build)
}

// scaleInto applies p as an age or build adjustment. Numeric fields follow
// common.Scale; the age and build keys themselves are ignored.
func (p *QuadrupedPatch) scaleInto(dst *Quadruped) {
	if p == nil {
		return
	}
	p.eachFloat(dst, common.Scale)
	common.Override(&dst.HasTail, p.HasTail)
	common.Override(&dst.HornCount, p.HornCount)
}

func (p *QuadrupedPatch) eachFloat(dst *Quadruped, apply func(dst, v *float64)) {
	apply(&dst.Size, p.Size)
	apply(&dst.BodyLength, p.BodyLength)
	apply(&dst.BodyWidth, p.BodyWidth)
	apply(&dst.BodyBulk, p.BodyBulk)
	apply(&dst.HeadSize, p.HeadSize)
	apply(&dst.SnoutLength, p.SnoutLength)
	apply(&dst.SnoutWidth, p.SnoutWidth)
	apply(&dst.ForeheadSize, p.ForeheadSize)
	apply(&dst.EarSize, p.EarSize)
	apply(&dst.EarRoundness, p.EarRoundness)
	apply(&dst.EarDroop, p.EarDroop)
	apply(&dst.EarPosition, p.EarPosition)
	apply(&dst.EyeSize, p.EyeSize)
	apply(&dst.EyePosition, p.EyePosition)
	apply(&dst.PupilShape, p.PupilShape)
	apply(&dst.NoseSize, p.NoseSize)
	apply(&dst.WhiskerLength, p.WhiskerLength)
	apply(&dst.TeethVisible, p.TeethVisible)
	apply(&dst.LegLength, p.LegLength)
	apply(&dst.LegThickness, p.LegThickness)
	apply(&dst.LegRatio, p.LegRatio)
	apply(&dst.PawSize, p.PawSize)
	apply(&dst.Webbing, p.Webbing)
	apply(&dst.ClawLength, p.ClawLength)
	apply(&dst.TailLength, p.TailLength)
	apply(&dst.TailThickness, p.TailThickness)
	apply(&dst.TailFluff, p.TailFluff)
	apply(&dst.FurLength, p.FurLength)
	apply(&dst.FurDensity, p.FurDensity)
	apply(&dst.Mane, p.Mane)
	apply(&dst.HornSize, p.HornSize)
	apply(&dst.TuskSize, p.TuskSize)
	apply(&dst.Wear, p.Wear)
}

func QuadrupedDefaults() Quadruped {
	return Quadruped{
		Size:       1,
		BodyLength: 1,
		BodyWidth:  1,
		BodyBulk:   1,

		HeadSize:     1,
		SnoutLength:  1,
		SnoutWidth:   1,
		ForeheadSize: 1,

		EarSize:      1,
		EarRoundness: 0.5,
		EarDroop:     0,
		EarPosition:  0.7,

		EyeSize:     1,
		EyePosition: 0.3,
		PupilShape:  0,

		NoseSize:      1,
		WhiskerLength: 0,
		TeethVisible:  0,

		LegLength:    1,
		LegThickness: 1,
		LegRatio:     1,
		PawSize:      1,
		Webbing:      0,
		ClawLength:   0.5,

		HasTail:       true,
		TailLength:    1,
		TailThickness: 1,
		TailFluff:     0.5,

		FurLength:  1,
		FurDensity: 1,
		Mane:       0,

		HornSize:  0,
		HornCount: 0,
		TuskSize:  0,

		Age:   Adult,
		Build: Average,
		Wear:  0,
	}
}

// QuadrupedTable holds the form templates and the age and build
// adjustments. The embedded table is loaded once and never mutated.
type QuadrupedTable struct {
	Forms  map[Form]QuadrupedPatch  `yaml:"forms"`
	Ages   map[Age]QuadrupedPatch   `yaml:"ages"`
	Builds map[Build]QuadrupedPatch `yaml:"builds"`
}

const quadrupedFile = "quadruped.yaml"

var quadrupeds = prefabs.MustLoadSpec[*QuadrupedTable](quadrupedFile)

func LoadQuadrupedTable(fsys fs.FS) (*QuadrupedTable, error) {
	return prefabs.LoadSpec[*QuadrupedTable](fsys, quadrupedFile)
}

func DefaultQuadrupedTable() *QuadrupedTable {
	return quadrupeds
}

// CreateQuadruped composes a creature from the named form. Age and build
// are taken from custom when set and scale the form values before custom
// itself is applied. An unknown form contributes nothing.
func CreateQuadruped(form Form, custom *QuadrupedPatch) Quadruped {
	return quadrupeds.Create(form, custom)
}

func (t *QuadrupedTable) Create(form Form, custom *QuadrupedPatch) Quadruped {
	params := QuadrupedDefaults()
	if fp, ok := t.Forms[form]; ok {
		fp.ApplyTo(&params)
	}

	age := params.Age
	if custom != nil && custom.Age != nil {
		age = *custom.Age
	}
	if adj, ok := t.Ages[age]; ok {
		adj.scaleInto(&params)
	}
	params.Age = age

	build := params.Build
	if custom != nil && custom.Build != nil {
		build = *custom.Build
	}
	if adj, ok := t.Builds[build]; ok {
		adj.scaleInto(&params)
	}
	params.Build = build

	custom.ApplyTo(&params)
	return params
}

func (t *QuadrupedTable) HasForm(form Form) bool {
	_, ok := t.Forms[form]
	return ok
}

func (t *QuadrupedTable) FormNames() []Form {
	return slices.Sorted(maps.Keys(t.Forms))
}

func QuadrupedForms() []Form {
	return quadrupeds.FormNames()
}

// CreateCustomQuadruped builds a creature from defaults without any form or
// age and build scaling.
func CreateCustomQuadruped(p *QuadrupedPatch) Quadruped {
	return common.Compose[Quadruped](QuadrupedDefaults(), p)
}
