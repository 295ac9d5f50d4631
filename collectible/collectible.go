// Package collectible provides pickup templates (coins, gems, potions and
// so on) and the rarity tiers layered over them.
package collectible

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Form string

const (
	Coin    Form = "coin"
	Gem     Form = "gem"
	Crystal Form = "crystal"
	Orb     Form = "orb"
	Star    Form = "star"
	Heart   Form = "heart"
	Key     Form = "key"
	Ring    Form = "ring"
	Potion  Form = "potion"
	Scroll  Form = "scroll"
	Rune    Form = "rune"
	Shard   Form = "shard"
	Feather Form = "feather"
	Shell   Form = "shell"
	Pearl   Form = "pearl"
	Acorn   Form = "acorn"
	Fish    Form = "fish"
)

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

type Shape string

const (
	ShapeCircle  Shape = "circle"
	ShapeSphere  Shape = "sphere"
	ShapeStar    Shape = "star"
	ShapeHeart   Shape = "heart"
	ShapeDiamond Shape = "diamond"
	ShapeHexagon Shape = "hexagon"
	ShapeCustom  Shape = "custom"
)

type EmblemType string

const (
	EmblemTypeNone      EmblemType = "none"
	EmblemTypeStar      EmblemType = "star"
	EmblemTypeSkull     EmblemType = "skull"
	EmblemTypeCrown     EmblemType = "crown"
	EmblemTypeLightning EmblemType = "lightning"
	EmblemTypeHeart     EmblemType = "heart"
	EmblemTypeCustom    EmblemType = "custom"
)

type MaterialType string

const (
	MaterialTypeMetal   MaterialType = "metal"
	MaterialTypeGem     MaterialType = "gem"
	MaterialTypeGlass   MaterialType = "glass"
	MaterialTypePlastic MaterialType = "plastic"
	MaterialTypeOrganic MaterialType = "organic"
	MaterialTypeEnergy  MaterialType = "energy"
)

type Collectible struct {
	Shape           Shape        `yaml:"shape"`
	Size            float64      `yaml:"size"`
	Thickness       float64      `yaml:"thickness"`
	Points          int          `yaml:"points"`
	Rounding        float64      `yaml:"rounding"`
	Faceted         bool         `yaml:"faceted"`
	FacetCount      int          `yaml:"facet_count"`
	BevelSize       float64      `yaml:"bevel_size"`
	HollowCenter    bool         `yaml:"hollow_center"`
	HollowRatio     float64      `yaml:"hollow_ratio"`
	HasEmblem       bool         `yaml:"has_emblem"`
	EmblemType      EmblemType   `yaml:"emblem_type"`
	HasBorder       bool         `yaml:"has_border"`
	BorderThickness float64      `yaml:"border_thickness"`
	NotchCount      int          `yaml:"notch_count"`
	MaterialType    MaterialType `yaml:"material_type"`
	Roughness       float64      `yaml:"roughness"`
	Metalness       float64      `yaml:"metalness"`
	Transparency    float64      `yaml:"transparency"`
	Glow            float64      `yaml:"glow"`
	RotationSpeed   float64      `yaml:"rotation_speed"`
	BobAmount       float64      `yaml:"bob_amount"`
	BobSpeed        float64      `yaml:"bob_speed"`
	PulseAmount     float64      `yaml:"pulse_amount"`
	Sparkles        bool         `yaml:"sparkles"`
	HasTrail        bool         `yaml:"has_trail"`
}

type Patch struct {
	Shape           *Shape        `yaml:"shape,omitempty"`
	Size            *float64      `yaml:"size,omitempty"`
	Thickness       *float64      `yaml:"thickness,omitempty"`
	Points          *int          `yaml:"points,omitempty"`
	Rounding        *float64      `yaml:"rounding,omitempty"`
	Faceted         *bool         `yaml:"faceted,omitempty"`
	FacetCount      *int          `yaml:"facet_count,omitempty"`
	BevelSize       *float64      `yaml:"bevel_size,omitempty"`
	HollowCenter    *bool         `yaml:"hollow_center,omitempty"`
	HollowRatio     *float64      `yaml:"hollow_ratio,omitempty"`
	HasEmblem       *bool         `yaml:"has_emblem,omitempty"`
	EmblemType      *EmblemType   `yaml:"emblem_type,omitempty"`
	HasBorder       *bool         `yaml:"has_border,omitempty"`
	BorderThickness *float64      `yaml:"border_thickness,omitempty"`
	NotchCount      *int          `yaml:"notch_count,omitempty"`
	MaterialType    *MaterialType `yaml:"material_type,omitempty"`
	Roughness       *float64      `yaml:"roughness,omitempty"`
	Metalness       *float64      `yaml:"metalness,omitempty"`
	Transparency    *float64      `yaml:"transparency,omitempty"`
	Glow            *float64      `yaml:"glow,omitempty"`
	RotationSpeed   *float64      `yaml:"rotation_speed,omitempty"`
	BobAmount       *float64      `yaml:"bob_amount,omitempty"`
	BobSpeed        *float64      `yaml:"bob_speed,omitempty"`
	PulseAmount     *float64      `yaml:"pulse_amount,omitempty"`
	Sparkles        *bool         `yaml:"sparkles,omitempty"`
	HasTrail        *bool         `yaml:"has_trail,omitempty"`
}

func (p *Patch) ApplyTo(dst *Collectible) {
	if p == nil {
		return
	}
	common.Override(&dst.Shape, p.Shape)
	common.Override(&dst.Size, p.Size)
	common.Override(&dst.Thickness, p.Thickness)
	common.Override(&dst.Points, p.Points)
	common.Override(&dst.Rounding, p.Rounding)
	common.Override(&dst.Faceted, p.Faceted)
	common.Override(&dst.FacetCount, p.FacetCount)
	common.Override(&dst.BevelSize, p.BevelSize)
	common.Override(&dst.HollowCenter, p.HollowCenter)
	common.Override(&dst.HollowRatio, p.HollowRatio)
	common.Override(&dst.HasEmblem, p.HasEmblem)
	common.Override(&dst.EmblemType, p.EmblemType)
	common.Override(&dst.HasBorder, p.HasBorder)
	common.Override(&dst.BorderThickness, p.BorderThickness)
	common.Override(&dst.NotchCount, p.NotchCount)
	common.Override(&dst.MaterialType, p.MaterialType)
	common.Override(&dst.Roughness, p.Roughness)
	common.Override(&dst.Metalness, p.Metalness)
	common.Override(&dst.Transparency, p.Transparency)
	common.Override(&dst.Glow, p.Glow)
	common.Override(&dst.RotationSpeed, p.RotationSpeed)
	common.Override(&dst.BobAmount, p.BobAmount)
	common.Override(&dst.BobSpeed, p.BobSpeed)
	common.Override(&dst.PulseAmount, p.PulseAmount)
	common.Override(&dst.Sparkles, p.Sparkles)
	common.Override(&dst.HasTrail, p.HasTrail)
}

func Defaults() Collectible {
	return Collectible{
		Shape:           ShapeCircle,
		Size:            1,
		Thickness:       0.2,
		Points:          5,
		Rounding:        0.1,
		Faceted:         false,
		FacetCount:      8,
		BevelSize:       0.05,
		HollowCenter:    false,
		HollowRatio:     0.3,
		HasEmblem:       false,
		EmblemType:      EmblemTypeNone,
		HasBorder:       false,
		BorderThickness: 0.05,
		NotchCount:      0,
		MaterialType:    MaterialTypeMetal,
		Roughness:       0.3,
		Metalness:       0.8,
		Transparency:    0,
		Glow:            0,
		RotationSpeed:   1,
		BobAmount:       0.1,
		BobSpeed:        1,
		PulseAmount:     0,
		Sparkles:        false,
		HasTrail:        false,
	}
}

type Table struct {
	Forms    map[Form]Patch   `yaml:"forms"`
	Rarities map[Rarity]Patch `yaml:"rarities"`
}

const tableFile = "collectible.yaml"

var collectibles = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return collectibles
}

// Create composes defaults, the form, the rarity tier (when not empty) and
// custom.
func Create(form Form, rarity Rarity, custom *Patch) Collectible {
	return collectibles.Create(form, rarity, custom)
}

func (t *Table) Create(form Form, rarity Rarity, custom *Patch) Collectible {
	c := Defaults()
	if fp, ok := t.Forms[form]; ok {
		fp.ApplyTo(&c)
	}
	if rarity != "" {
		if rp, ok := t.Rarities[rarity]; ok {
			rp.ApplyTo(&c)
		}
	}
	custom.ApplyTo(&c)
	return c
}

func (t *Table) HasForm(form Form) bool {
	_, ok := t.Forms[form]
	return ok
}

func (t *Table) FormNames() []Form {
	return slices.Sorted(maps.Keys(t.Forms))
}

func Forms() []Form {
	return collectibles.FormNames()
}
