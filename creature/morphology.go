package creature

import (
	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

// Morphology is the detailed anatomy record used by the creature mesh
// builders. Every sub-record is a plain value, so assignment copies it.
type Morphology struct {
	Eyes     Eyes     `yaml:"eyes"`
	Ears     Ears     `yaml:"ears"`
	Snout    Snout    `yaml:"snout"`
	Whiskers Whiskers `yaml:"whiskers"`
	Paws     Paws     `yaml:"paws"`
	Tail     Tail     `yaml:"tail"`
	Coat     Coat     `yaml:"coat"`
}

type Eyes struct {
	Size          float64       `yaml:"size"`
	Position      float64       `yaml:"position"`
	Height        float64       `yaml:"height"`
	Spacing       float64       `yaml:"spacing"`
	PupilShape    float64       `yaml:"pupil_shape"`
	PupilSize     float64       `yaml:"pupil_size"`
	IrisColor     prefabs.Color `yaml:"iris_color"`
	ScleraVisible float64       `yaml:"sclera_visible"`
	EyelidDroop   float64       `yaml:"eyelid_droop"`
	BrowRidge     float64       `yaml:"brow_ridge"`
}

type Ears struct {
	Size         float64 `yaml:"size"`
	Length       float64 `yaml:"length"`
	Width        float64 `yaml:"width"`
	Position     float64 `yaml:"position"`
	Angle        float64 `yaml:"angle"`
	TipRoundness float64 `yaml:"tip_roundness"`
	Fold         float64 `yaml:"fold"`
	Flop         float64 `yaml:"flop"`
	InnerVisible float64 `yaml:"inner_visible"`
	Tufts        float64 `yaml:"tufts"`
}

type Snout struct {
	Length       float64       `yaml:"length"`
	BaseWidth    float64       `yaml:"base_width"`
	TipWidth     float64       `yaml:"tip_width"`
	Height       float64       `yaml:"height"`
	BridgeCurve  float64       `yaml:"bridge_curve"`
	NoseSize     float64       `yaml:"nose_size"`
	NoseShape    float64       `yaml:"nose_shape"`
	NoseColor    prefabs.Color `yaml:"nose_color"`
	NostrilSize  float64       `yaml:"nostril_size"`
	LipThickness float64       `yaml:"lip_thickness"`
	JowlSize     float64       `yaml:"jowl_size"`
}

type Whiskers struct {
	Present   bool          `yaml:"present"`
	Length    float64       `yaml:"length"`
	Thickness float64       `yaml:"thickness"`
	Count     int           `yaml:"count"`
	Spread    float64       `yaml:"spread"`
	Droop     float64       `yaml:"droop"`
	Color     prefabs.Color `yaml:"color"`
}

type Paws struct {
	Size       float64       `yaml:"size"`
	Width      float64       `yaml:"width"`
	ToeCount   int           `yaml:"toe_count"`
	ToeSpread  float64       `yaml:"toe_spread"`
	Webbing    float64       `yaml:"webbing"`
	PadSize    float64       `yaml:"pad_size"`
	PadColor   prefabs.Color `yaml:"pad_color"`
	ClawLength float64       `yaml:"claw_length"`
	ClawCurve  float64       `yaml:"claw_curve"`
	ClawColor  prefabs.Color `yaml:"claw_color"`
	ToeFur     float64       `yaml:"toe_fur"`
}

type Tail struct {
	Present       bool    `yaml:"present"`
	Length        float64 `yaml:"length"`
	BaseThickness float64 `yaml:"base_thickness"`
	TipThickness  float64 `yaml:"tip_thickness"`
	Curve         float64 `yaml:"curve"`
	Fluff         float64 `yaml:"fluff"`
	FurLength     float64 `yaml:"fur_length"`
	HasTuft       bool    `yaml:"has_tuft"`
	Rings         float64 `yaml:"rings"`
}

type Coat struct {
	Length           float64 `yaml:"length"`
	Density          float64 `yaml:"density"`
	Softness         float64 `yaml:"softness"`
	GuardHairLength  float64 `yaml:"guard_hair_length"`
	UndercoatDensity float64 `yaml:"undercoat_density"`
	Mane             float64 `yaml:"mane"`
	ManeLength       float64 `yaml:"mane_length"`
	Ruff             float64 `yaml:"ruff"`
	BellyFur         float64 `yaml:"belly_fur"`
	EarTufts         float64 `yaml:"ear_tufts"`
	CheekFluff       float64 `yaml:"cheek_fluff"`
	Wetness          float64 `yaml:"wetness"`
}

func MorphologyDefaults() Morphology {
	return Morphology{
		Eyes: Eyes{
			Size: 1, Position: 0.3, Height: 0.5, Spacing: 1,
			PupilShape: 0, PupilSize: 0.5, IrisColor: prefabs.Hex("#4A3728"),
			ScleraVisible: 0.1, EyelidDroop: 0, BrowRidge: 0.3,
		},
		Ears: Ears{
			Size: 1, Length: 1, Width: 1, Position: 0.7, Angle: 30,
			TipRoundness: 0.5, Fold: 0, Flop: 0, InnerVisible: 0.5, Tufts: 0,
		},
		Snout: Snout{
			Length: 1, BaseWidth: 1, TipWidth: 0.7, Height: 0.8, BridgeCurve: 0,
			NoseSize: 1, NoseShape: 0.5, NoseColor: prefabs.Hex("#1A1A1A"),
			NostrilSize: 0.5, LipThickness: 0.3, JowlSize: 0.5,
		},
		Whiskers: Whiskers{
			Present: true, Length: 1, Thickness: 0.5, Count: 4, Spread: 45,
			Droop: 0.1, Color: prefabs.Hex("#FFFFFF"),
		},
		Paws: Paws{
			Size: 1, Width: 1, ToeCount: 4, ToeSpread: 0.3, Webbing: 0,
			PadSize: 0.8, PadColor: prefabs.Hex("#2C2C2C"), ClawLength: 0.5,
			ClawCurve: 0.3, ClawColor: prefabs.Hex("#1A1A1A"), ToeFur: 0.3,
		},
		Tail: Tail{
			Present: true, Length: 1, BaseThickness: 1, TipThickness: 0.5,
			Curve: 0, Fluff: 0.5, FurLength: 1, HasTuft: false, Rings: 0,
		},
		Coat: Coat{
			Length: 1, Density: 1, Softness: 0.7, GuardHairLength: 1.2,
			UndercoatDensity: 0.8, Mane: 0, ManeLength: 1, Ruff: 0,
			BellyFur: 0.9, EarTufts: 0, CheekFluff: 0.3, Wetness: 0,
		},
	}
}

// MorphologyPatch overrides individual fields inside each sub-record.
type MorphologyPatch struct {
	Eyes     *EyesPatch     `yaml:"eyes,omitempty"`
	Ears     *EarsPatch     `yaml:"ears,omitempty"`
	Snout    *SnoutPatch    `yaml:"snout,omitempty"`
	Whiskers *WhiskersPatch `yaml:"whiskers,omitempty"`
	Paws     *PawsPatch     `yaml:"paws,omitempty"`
	Tail     *TailPatch     `yaml:"tail,omitempty"`
	Coat     *CoatPatch     `yaml:"coat,omitempty"`
}

func (p *MorphologyPatch) ApplyTo(dst *Morphology) {
	if p == nil {
		return
	}
	p.Eyes.ApplyTo(&dst.Eyes)
	p.Ears.ApplyTo(&dst.Ears)
	p.Snout.ApplyTo(&dst.Snout)
	p.Whiskers.ApplyTo(&dst.Whiskers)
	p.Paws.ApplyTo(&dst.Paws)
	p.Tail.ApplyTo(&dst.Tail)
	p.Coat.ApplyTo(&dst.Coat)
}

type EyesPatch struct {
	Size          *float64       `yaml:"size,omitempty"`
	Position      *float64       `yaml:"position,omitempty"`
	Height        *float64       `yaml:"height,omitempty"`
	Spacing       *float64       `yaml:"spacing,omitempty"`
	PupilShape    *float64       `yaml:"pupil_shape,omitempty"`
	PupilSize     *float64       `yaml:"pupil_size,omitempty"`
	IrisColor     *prefabs.Color `yaml:"iris_color,omitempty"`
	ScleraVisible *float64       `yaml:"sclera_visible,omitempty"`
	EyelidDroop   *float64       `yaml:"eyelid_droop,omitempty"`
	BrowRidge     *float64       `yaml:"brow_ridge,omitempty"`
}

func (p *EyesPatch) ApplyTo(dst *Eyes) {
	if p == nil {
		return
	}
	common.Override(&dst.Size, p.Size)
	common.Override(&dst.Position, p.Position)
	common.Override(&dst.Height, p.Height)
	common.Override(&dst.Spacing, p.Spacing)
	common.Override(&dst.PupilShape, p.PupilShape)
	common.Override(&dst.PupilSize, p.PupilSize)
	common.Override(&dst.IrisColor, p.IrisColor)
	common.Override(&dst.ScleraVisible, p.ScleraVisible)
	common.Override(&dst.EyelidDroop, p.EyelidDroop)
	common.Override(&dst.BrowRidge, p.BrowRidge)
}

type EarsPatch struct {
	Size         *float64 `yaml:"size,omitempty"`
	Length       *float64 `yaml:"length,omitempty"`
	Width        *float64 `yaml:"width,omitempty"`
	Position     *float64 `yaml:"position,omitempty"`
	Angle        *float64 `yaml:"angle,omitempty"`
	TipRoundness *float64 `yaml:"tip_roundness,omitempty"`
	Fold         *float64 `yaml:"fold,omitempty"`
	Flop         *float64 `yaml:"flop,omitempty"`
	InnerVisible *float64 `yaml:"inner_visible,omitempty"`
	Tufts        *float64 `yaml:"tufts,omitempty"`
}

func (p *EarsPatch) ApplyTo(dst *Ears) {
	if p == nil {
		return
	}
	common.Override(&dst.Size, p.Size)
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.Width, p.Width)
	common.Override(&dst.Position, p.Position)
	common.Override(&dst.Angle, p.Angle)
	common.Override(&dst.TipRoundness, p.TipRoundness)
	common.Override(&dst.Fold, p.Fold)
	common.Override(&dst.Flop, p.Flop)
	common.Override(&dst.InnerVisible, p.InnerVisible)
	common.Override(&dst.Tufts, p.Tufts)
}

type SnoutPatch struct {
	Length       *float64       `yaml:"length,omitempty"`
	BaseWidth    *float64       `yaml:"base_width,omitempty"`
	TipWidth     *float64       `yaml:"tip_width,omitempty"`
	Height       *float64       `yaml:"height,omitempty"`
	BridgeCurve  *float64       `yaml:"bridge_curve,omitempty"`
	NoseSize     *float64       `yaml:"nose_size,omitempty"`
	NoseShape    *float64       `yaml:"nose_shape,omitempty"`
	NoseColor    *prefabs.Color `yaml:"nose_color,omitempty"`
	NostrilSize  *float64       `yaml:"nostril_size,omitempty"`
	LipThickness *float64       `yaml:"lip_thickness,omitempty"`
	JowlSize     *float64       `yaml:"jowl_size,omitempty"`
}

func (p *SnoutPatch) ApplyTo(dst *Snout) {
	if p == nil {
		return
	}
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.BaseWidth, p.BaseWidth)
	common.Override(&dst.TipWidth, p.TipWidth)
	common.Override(&dst.Height, p.Height)
	common.Override(&dst.BridgeCurve, p.BridgeCurve)
	common.Override(&dst.NoseSize, p.NoseSize)
	common.Override(&dst.NoseShape, p.NoseShape)
	common.Override(&dst.NoseColor, p.NoseColor)
	common.Override(&dst.NostrilSize, p.NostrilSize)
	common.Override(&dst.LipThickness, p.LipThickness)
	common.Override(&dst.JowlSize, p.JowlSize)
}

type WhiskersPatch struct {
	Present   *bool          `yaml:"present,omitempty"`
	Length    *float64       `yaml:"length,omitempty"`
	Thickness *float64       `yaml:"thickness,omitempty"`
	Count     *int           `yaml:"count,omitempty"`
	Spread    *float64       `yaml:"spread,omitempty"`
	Droop     *float64       `yaml:"droop,omitempty"`
	Color     *prefabs.Color `yaml:"color,omitempty"`
}

func (p *WhiskersPatch) ApplyTo(dst *Whiskers) {
	if p == nil {
		return
	}
	common.Override(&dst.Present, p.Present)
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.Thickness, p.Thickness)
	common.Override(&dst.Count, p.Count)
	common.Override(&dst.Spread, p.Spread)
	common.Override(&dst.Droop, p.Droop)
	common.Override(&dst.Color, p.Color)
}

type PawsPatch struct {
	Size       *float64       `yaml:"size,omitempty"`
	Width      *float64       `yaml:"width,omitempty"`
	ToeCount   *int           `yaml:"toe_count,omitempty"`
	ToeSpread  *float64       `yaml:"toe_spread,omitempty"`
	Webbing    *float64       `yaml:"webbing,omitempty"`
	PadSize    *float64       `yaml:"pad_size,omitempty"`
	PadColor   *prefabs.Color `yaml:"pad_color,omitempty"`
	ClawLength *float64       `yaml:"claw_length,omitempty"`
	ClawCurve  *float64       `yaml:"claw_curve,omitempty"`
	ClawColor  *prefabs.Color `yaml:"claw_color,omitempty"`
	ToeFur     *float64       `yaml:"toe_fur,omitempty"`
}

func (p *PawsPatch) ApplyTo(dst *Paws) {
	if p == nil {
		return
	}
	common.Override(&dst.Size, p.Size)
	common.Override(&dst.Width, p.Width)
	common.Override(&dst.ToeCount, p.ToeCount)
	common.Override(&dst.ToeSpread, p.ToeSpread)
	common.Override(&dst.Webbing, p.Webbing)
	common.Override(&dst.PadSize, p.PadSize)
	common.Override(&dst.PadColor, p.PadColor)
	common.Override(&dst.ClawLength, p.ClawLength)
	common.Override(&dst.ClawCurve, p.ClawCurve)
	common.Override(&dst.ClawColor, p.ClawColor)
	common.Override(&dst.ToeFur, p.ToeFur)
}

type TailPatch struct {
	Present       *bool    `yaml:"present,omitempty"`
	Length        *float64 `yaml:"length,omitempty"`
	BaseThickness *float64 `yaml:"base_thickness,omitempty"`
	TipThickness  *float64 `yaml:"tip_thickness,omitempty"`
	Curve         *float64 `yaml:"curve,omitempty"`
	Fluff         *float64 `yaml:"fluff,omitempty"`
	FurLength     *float64 `yaml:"fur_length,omitempty"`
	HasTuft       *bool    `yaml:"has_tuft,omitempty"`
	Rings         *float64 `yaml:"rings,omitempty"`
}

func (p *TailPatch) ApplyTo(dst *Tail) {
	if p == nil {
		return
	}
	common.Override(&dst.Present, p.Present)
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.BaseThickness, p.BaseThickness)
	common.Override(&dst.TipThickness, p.TipThickness)
	common.Override(&dst.Curve, p.Curve)
	common.Override(&dst.Fluff, p.Fluff)
	common.Override(&dst.FurLength, p.FurLength)
	common.Override(&dst.HasTuft, p.HasTuft)
	common.Override(&dst.Rings, p.Rings)
}

type CoatPatch struct {
	Length           *float64 `yaml:"length,omitempty"`
	Density          *float64 `yaml:"density,omitempty"`
	Softness         *float64 `yaml:"softness,omitempty"`
	GuardHairLength  *float64 `yaml:"guard_hair_length,omitempty"`
	UndercoatDensity *float64 `yaml:"undercoat_density,omitempty"`
	Mane             *float64 `yaml:"mane,omitempty"`
	ManeLength       *float64 `yaml:"mane_length,omitempty"`
	Ruff             *float64 `yaml:"ruff,omitempty"`
	BellyFur         *float64 `yaml:"belly_fur,omitempty"`
	EarTufts         *float64 `yaml:"ear_tufts,omitempty"`
	CheekFluff       *float64 `yaml:"cheek_fluff,omitempty"`
	Wetness          *float64 `yaml:"wetness,omitempty"`
}

func (p *CoatPatch) ApplyTo(dst *Coat) {
	if p == nil {
		return
	}
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.Density, p.Density)
	common.Override(&dst.Softness, p.Softness)
	common.Override(&dst.GuardHairLength, p.GuardHairLength)
	common.Override(&dst.UndercoatDensity, p.UndercoatDensity)
	common.Override(&dst.Mane, p.Mane)
	common.Override(&dst.ManeLength, p.ManeLength)
	common.Override(&dst.Ruff, p.Ruff)
	common.Override(&dst.BellyFur, p.BellyFur)
	common.Override(&dst.EarTufts, p.EarTufts)
	common.Override(&dst.CheekFluff, p.CheekFluff)
	common.Override(&dst.Wetness, p.Wetness)
}

type morphologyTable struct {
	Species map[Form]MorphologyPatch `yaml:"species"`
}

var morphologies = prefabs.MustLoadSpec[morphologyTable]("morphology.yaml")

// CreateMorphology starts from the defaults, merges the species overrides
// (if any exist for species) and then overrides.
func CreateMorphology(species Form, overrides *MorphologyPatch) Morphology {
	m := MorphologyDefaults()
	if sp, ok := morphologies.Species[species]; ok {
		sp.ApplyTo(&m)
	}
	overrides.ApplyTo(&m)
	return m
}

func HasSpeciesMorphology(species Form) bool {
	_, ok := morphologies.Species[species]
	return ok
}

// MorphologyFromQuadruped maps the coarse quadruped knobs onto a detailed
// morphology. Fields without a quadruped counterpart keep their defaults.
func MorphologyFromQuadruped(p Quadruped) Morphology {
	m := MorphologyDefaults()

	m.Eyes.Size = p.EyeSize
	m.Eyes.Position = p.EyePosition
	m.Eyes.PupilShape = p.PupilShape

	m.Ears.Size = p.EarSize
	m.Ears.TipRoundness = p.EarRoundness
	m.Ears.Flop = p.EarDroop
	m.Ears.Position = p.EarPosition

	m.Snout.Length = p.SnoutLength
	m.Snout.BaseWidth = p.SnoutWidth

	m.Whiskers.Length = p.WhiskerLength
	m.Whiskers.Present = p.WhiskerLength > 0

	m.Paws.Size = p.PawSize
	m.Paws.Webbing = p.Webbing
	m.Paws.ClawLength = p.ClawLength

	m.Tail.Present = p.HasTail
	m.Tail.Length = p.TailLength
	m.Tail.BaseThickness = p.TailThickness
	m.Tail.Fluff = p.TailFluff

	m.Coat.Length = p.FurLength
	m.Coat.Density = p.FurDensity
	m.Coat.Mane = p.Mane
	return m
}
