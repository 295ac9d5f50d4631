// Package structure holds the parametric building template and its form
// presets.
package structure

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Form string

const (
	Hut        Form = "hut"
	Cabin      Form = "cabin"
	Cottage    Form = "cottage"
	Farmhouse  Form = "farmhouse"
	Barn       Form = "barn"
	Tower      Form = "tower"
	Watchtower Form = "watchtower"
	Temple     Form = "temple"
	Shrine     Form = "shrine"
	Bunker     Form = "bunker"
	Warehouse  Form = "warehouse"
	Shack      Form = "shack"
	Treehouse  Form = "treehouse"
	DockHouse  Form = "dock_house"
	Windmill   Form = "windmill"
	Lighthouse Form = "lighthouse"
)

type FoundationType string

const (
	FoundationTypeNone   FoundationType = "none"
	FoundationTypeSlab   FoundationType = "slab"
	FoundationTypeStilts FoundationType = "stilts"
	FoundationTypeStone  FoundationType = "stone"
	FoundationTypeRaised FoundationType = "raised"
)

type BaseShape string

const (
	BaseShapeSquare    BaseShape = "square"
	BaseShapeRectangle BaseShape = "rectangle"
	BaseShapeRound     BaseShape = "round"
	BaseShapeHexagon   BaseShape = "hexagon"
	BaseShapeOctagon   BaseShape = "octagon"
)

type CornerStyle string

const (
	CornerStyleSharp     CornerStyle = "sharp"
	CornerStyleRounded   CornerStyle = "rounded"
	CornerStyleChamfered CornerStyle = "chamfered"
)

type RoofType string

const (
	RoofTypeFlat    RoofType = "flat"
	RoofTypePeaked  RoofType = "peaked"
	RoofTypeGabled  RoofType = "gabled"
	RoofTypeHipped  RoofType = "hipped"
	RoofTypeDome    RoofType = "dome"
	RoofTypeConical RoofType = "conical"
	RoofTypePagoda  RoofType = "pagoda"
	RoofTypeNone    RoofType = "none"
)

type DoorStyle string

const (
	DoorStyleSimple  DoorStyle = "simple"
	DoorStyleArched  DoorStyle = "arched"
	DoorStyleDouble  DoorStyle = "double"
	DoorStyleSliding DoorStyle = "sliding"
	DoorStyleNone    DoorStyle = "none"
)

type WindowStyle string

const (
	WindowStyleSquare WindowStyle = "square"
	WindowStyleRound  WindowStyle = "round"
	WindowStyleArched WindowStyle = "arched"
	WindowStyleSlit   WindowStyle = "slit"
	WindowStyleNone   WindowStyle = "none"
)

type ColumnStyle string

const (
	ColumnStyleRound  ColumnStyle = "round"
	ColumnStyleSquare ColumnStyle = "square"
	ColumnStyleOrnate ColumnStyle = "ornate"
	ColumnStyleNone   ColumnStyle = "none"
)

type WallMaterial string

const (
	WallMaterialWood   WallMaterial = "wood"
	WallMaterialStone  WallMaterial = "stone"
	WallMaterialBrick  WallMaterial = "brick"
	WallMaterialMud    WallMaterial = "mud"
	WallMaterialMetal  WallMaterial = "metal"
	WallMaterialThatch WallMaterial = "thatch"
)

type RoofMaterial string

const (
	RoofMaterialThatch  RoofMaterial = "thatch"
	RoofMaterialShingle RoofMaterial = "shingle"
	RoofMaterialTile    RoofMaterial = "tile"
	RoofMaterialMetal   RoofMaterial = "metal"
	RoofMaterialSlate   RoofMaterial = "slate"
	RoofMaterialWood    RoofMaterial = "wood"
)

type TrimMaterial string

const (
	TrimMaterialWood  TrimMaterial = "wood"
	TrimMaterialStone TrimMaterial = "stone"
	TrimMaterialMetal TrimMaterial = "metal"
	TrimMaterialNone  TrimMaterial = "none"
)

// Building is the full set of knobs for a single structure. Sizes are in
// world units; wear, overgrown and damage run from 0 to 1.
type Building struct {
	FoundationType   FoundationType `yaml:"foundation_type"`
	FoundationHeight float64        `yaml:"foundation_height"`
	StiltCount       int            `yaml:"stilt_count"`
	Width            float64        `yaml:"width"`
	Depth            float64        `yaml:"depth"`
	WallHeight       float64        `yaml:"wall_height"`
	Floors           int            `yaml:"floors"`
	WallThickness    float64        `yaml:"wall_thickness"`
	BaseShape        BaseShape      `yaml:"base_shape"`
	WallSlant        float64        `yaml:"wall_slant"`
	CornerStyle      CornerStyle    `yaml:"corner_style"`
	RoofType         RoofType       `yaml:"roof_type"`
	RoofHeight       float64        `yaml:"roof_height"`
	RoofOverhang     float64        `yaml:"roof_overhang"`
	RoofThickness    float64        `yaml:"roof_thickness"`
	DoorCount        int            `yaml:"door_count"`
	DoorWidth        float64        `yaml:"door_width"`
	DoorHeight       float64        `yaml:"door_height"`
	DoorStyle        DoorStyle      `yaml:"door_style"`
	WindowsPerWall   int            `yaml:"windows_per_wall"`
	WindowWidth      float64        `yaml:"window_width"`
	WindowHeight     float64        `yaml:"window_height"`
	WindowStyle      WindowStyle    `yaml:"window_style"`
	HasShutters      bool           `yaml:"has_shutters"`
	HasPorch         bool           `yaml:"has_porch"`
	PorchDepth       float64        `yaml:"porch_depth"`
	HasChimney       bool           `yaml:"has_chimney"`
	ChimneyHeight    float64        `yaml:"chimney_height"`
	HasBalcony       bool           `yaml:"has_balcony"`
	ColumnCount      int            `yaml:"column_count"`
	ColumnStyle      ColumnStyle    `yaml:"column_style"`
	HasRailing       bool           `yaml:"has_railing"`
	WallMaterial     WallMaterial   `yaml:"wall_material"`
	RoofMaterial     RoofMaterial   `yaml:"roof_material"`
	TrimMaterial     TrimMaterial   `yaml:"trim_material"`
	Wear             float64        `yaml:"wear"`
	Overgrown        float64        `yaml:"overgrown"`
	Damage           float64        `yaml:"damage"`
}

type BuildingPatch struct {
	FoundationType   *FoundationType `yaml:"foundation_type,omitempty"`
	FoundationHeight *float64        `yaml:"foundation_height,omitempty"`
	StiltCount       *int            `yaml:"stilt_count,omitempty"`
	Width            *float64        `yaml:"width,omitempty"`
	Depth            *float64        `yaml:"depth,omitempty"`
	WallHeight       *float64        `yaml:"wall_height,omitempty"`
	Floors           *int            `yaml:"floors,omitempty"`
	WallThickness    *float64        `yaml:"wall_thickness,omitempty"`
	BaseShape        *BaseShape      `yaml:"base_shape,omitempty"`
	WallSlant        *float64        `yaml:"wall_slant,omitempty"`
	CornerStyle      *CornerStyle    `yaml:"corner_style,omitempty"`
	RoofType         *RoofType       `yaml:"roof_type,omitempty"`
	RoofHeight       *float64        `yaml:"roof_height,omitempty"`
	RoofOverhang     *float64        `yaml:"roof_overhang,omitempty"`
	RoofThickness    *float64        `yaml:"roof_thickness,omitempty"`
	DoorCount        *int            `yaml:"door_count,omitempty"`
	DoorWidth        *float64        `yaml:"door_width,omitempty"`
	DoorHeight       *float64        `yaml:"door_height,omitempty"`
	DoorStyle        *DoorStyle      `yaml:"door_style,omitempty"`
	WindowsPerWall   *int            `yaml:"windows_per_wall,omitempty"`
	WindowWidth      *float64        `yaml:"window_width,omitempty"`
	WindowHeight     *float64        `yaml:"window_height,omitempty"`
	WindowStyle      *WindowStyle    `yaml:"window_style,omitempty"`
	HasShutters      *bool           `yaml:"has_shutters,omitempty"`
	HasPorch         *bool           `yaml:"has_porch,omitempty"`
	PorchDepth       *float64        `yaml:"porch_depth,omitempty"`
	HasChimney       *bool           `yaml:"has_chimney,omitempty"`
	ChimneyHeight    *float64        `yaml:"chimney_height,omitempty"`
	HasBalcony       *bool           `yaml:"has_balcony,omitempty"`
	ColumnCount      *int            `yaml:"column_count,omitempty"`
	ColumnStyle      *ColumnStyle    `yaml:"column_style,omitempty"`
	HasRailing       *bool           `yaml:"has_railing,omitempty"`
	WallMaterial     *WallMaterial   `yaml:"wall_material,omitempty"`
	RoofMaterial     *RoofMaterial   `yaml:"roof_material,omitempty"`
	TrimMaterial     *TrimMaterial   `yaml:"trim_material,omitempty"`
	Wear             *float64        `yaml:"wear,omitempty"`
	Overgrown        *float64        `yaml:"overgrown,omitempty"`
	Damage           *float64        `yaml:"damage,omitempty"`
}

func (p *BuildingPatch) ApplyTo(dst *Building) {
	if p == nil {
		return
	}
	common.Override(&dst.FoundationType, p.FoundationType)
	common.Override(&dst.FoundationHeight, p.FoundationHeight)
	common.Override(&dst.StiltCount, p.StiltCount)
	common.Override(&dst.Width, p.Width)
	common.Override(&dst.Depth, p.Depth)
	common.Override(&dst.WallHeight, p.WallHeight)
	common.Override(&dst.Floors, p.Floors)
	common.Override(&dst.WallThickness, p.WallThickness)
	common.Override(&dst.BaseShape, p.BaseShape)
	common.Override(&dst.WallSlant, p.WallSlant)
	common.Override(&dst.CornerStyle, p.CornerStyle)
	common.Override(&dst.RoofType, p.RoofType)
	common.Override(&dst.RoofHeight, p.RoofHeight)
	common.Override(&dst.RoofOverhang, p.RoofOverhang)
	common.Override(&dst.RoofThickness, p.RoofThickness)
	common.Override(&dst.DoorCount, p.DoorCount)
	common.Override(&dst.DoorWidth, p.DoorWidth)
	common.Override(&dst.DoorHeight, p.DoorHeight)
	common.Override(&dst.DoorStyle, p.DoorStyle)
	common.Override(&dst.WindowsPerWall, p.WindowsPerWall)
	common.Override(&dst.WindowWidth, p.WindowWidth)
	common.Override(&dst.WindowHeight, p.WindowHeight)
	common.Override(&dst.WindowStyle, p.WindowStyle)
	common.Override(&dst.HasShutters, p.HasShutters)
	common.Override(&dst.HasPorch, p.HasPorch)
	common.Override(&dst.PorchDepth, p.PorchDepth)
	common.Override(&dst.HasChimney, p.HasChimney)
	common.Override(&dst.ChimneyHeight, p.ChimneyHeight)
	common.Override(&dst.HasBalcony, p.HasBalcony)
	common.Override(&dst.ColumnCount, p.ColumnCount)
	common.Override(&dst.ColumnStyle, p.ColumnStyle)
	common.Override(&dst.HasRailing, p.HasRailing)
	common.Override(&dst.WallMaterial, p.WallMaterial)
	common.Override(&dst.RoofMaterial, p.RoofMaterial)
	common.Override(&dst.TrimMaterial, p.TrimMaterial)
	common.Override(&dst.Wear, p.Wear)
	common.Override(&dst.Overgrown, p.Overgrown)
	common.Override(&dst.Damage, p.Damage)
}

func Defaults() Building {
	return Building{
		FoundationType:   FoundationTypeSlab,
		FoundationHeight: 0.3,
		StiltCount:       4,
		Width:            4,
		Depth:            4,
		WallHeight:       2.5,
		Floors:           1,
		WallThickness:    0.2,
		BaseShape:        BaseShapeSquare,
		WallSlant:        0,
		CornerStyle:      CornerStyleSharp,
		RoofType:         RoofTypePeaked,
		RoofHeight:       1.5,
		RoofOverhang:     0.3,
		RoofThickness:    0.15,
		DoorCount:        1,
		DoorWidth:        0.9,
		DoorHeight:       2.0,
		DoorStyle:        DoorStyleSimple,
		WindowsPerWall:   1,
		WindowWidth:      0.6,
		WindowHeight:     0.8,
		WindowStyle:      WindowStyleSquare,
		HasShutters:      false,
		HasPorch:         false,
		PorchDepth:       1.0,
		HasChimney:       false,
		ChimneyHeight:    1.0,
		HasBalcony:       false,
		ColumnCount:      0,
		ColumnStyle:      ColumnStyleNone,
		HasRailing:       false,
		WallMaterial:     WallMaterialWood,
		RoofMaterial:     RoofMaterialThatch,
		TrimMaterial:     TrimMaterialWood,
		Wear:             0,
		Overgrown:        0,
		Damage:           0,
	}
}

type Table struct {
	Forms map[Form]BuildingPatch `yaml:"forms"`
}

const tableFile = "building.yaml"

var buildings = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return buildings
}

// CreateBuilding layers the form template and then custom over the
// defaults. Every layer replaces the keys it sets.
func CreateBuilding(form Form, custom *BuildingPatch) Building {
	return buildings.Create(form, custom)
}

func (t *Table) Create(form Form, custom *BuildingPatch) Building {
	b := Defaults()
	if fp, ok := t.Forms[form]; ok {
		fp.ApplyTo(&b)
	}
	custom.ApplyTo(&b)
	return b
}

func (t *Table) HasForm(form Form) bool {
	_, ok := t.Forms[form]
	return ok
}

func (t *Table) FormNames() []Form {
	return slices.Sorted(maps.Keys(t.Forms))
}

func Forms() []Form {
	return buildings.FormNames()
}
