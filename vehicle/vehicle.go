// Package vehicle provides one template for boats, carts, wagons and sleds.
package vehicle

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/prefabs"
)

type Form string

const (
	Canoe    Form = "canoe"
	Rowboat  Form = "rowboat"
	Sailboat Form = "sailboat"
	Raft     Form = "raft"
	Cart     Form = "cart"
	Wagon    Form = "wagon"
	Chariot  Form = "chariot"
	Sled     Form = "sled"
)

type Type string

const (
	TypeBoat  Type = "boat"
	TypeCart  Type = "cart"
	TypeWagon Type = "wagon"
	TypeSled  Type = "sled"
	TypeRaft  Type = "raft"
)

type Propulsion string

const (
	PropulsionPaddle Propulsion = "paddle"
	PropulsionSail   Propulsion = "sail"
	PropulsionWheel  Propulsion = "wheel"
	PropulsionRunner Propulsion = "runner"
	PropulsionNone   Propulsion = "none"
)

type Material string

const (
	MaterialWood   Material = "wood"
	MaterialMetal  Material = "metal"
	MaterialBone   Material = "bone"
	MaterialFabric Material = "fabric"
)

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionDilapidated Condition = "dilapidated"
	ConditionRuined      Condition = "ruined"
)

type Vehicle struct {
	Type              Type       `yaml:"type"`
	Size              float64    `yaml:"size"`
	Length            float64    `yaml:"length"`
	Width             float64    `yaml:"width"`
	Height            float64    `yaml:"height"`
	PassengerCapacity int        `yaml:"passenger_capacity"`
	CargoCapacity     float64    `yaml:"cargo_capacity"`
	Propulsion        Propulsion `yaml:"propulsion"`
	WheelCount        int        `yaml:"wheel_count"`
	WheelSize         float64    `yaml:"wheel_size"`
	SailCount         int        `yaml:"sail_count"`
	SailSize          float64    `yaml:"sail_size"`
	HasOars           bool       `yaml:"has_oars"`
	OarCount          int        `yaml:"oar_count"`
	HasRunners        bool       `yaml:"has_runners"`
	Material          Material   `yaml:"material"`
	HasCanopy         bool       `yaml:"has_canopy"`
	CanopySize        float64    `yaml:"canopy_size"`
	HasRudder         bool       `yaml:"has_rudder"`
	Ornamentation     float64    `yaml:"ornamentation"`
	Wear              float64    `yaml:"wear"`
	Condition         Condition  `yaml:"condition"`
}

type Patch struct {
	Type              *Type       `yaml:"type,omitempty"`
	Size              *float64    `yaml:"size,omitempty"`
	Length            *float64    `yaml:"length,omitempty"`
	Width             *float64    `yaml:"width,omitempty"`
	Height            *float64    `yaml:"height,omitempty"`
	PassengerCapacity *int        `yaml:"passenger_capacity,omitempty"`
	CargoCapacity     *float64    `yaml:"cargo_capacity,omitempty"`
	Propulsion        *Propulsion `yaml:"propulsion,omitempty"`
	WheelCount        *int        `yaml:"wheel_count,omitempty"`
	WheelSize         *float64    `yaml:"wheel_size,omitempty"`
	SailCount         *int        `yaml:"sail_count,omitempty"`
	SailSize          *float64    `yaml:"sail_size,omitempty"`
	HasOars           *bool       `yaml:"has_oars,omitempty"`
	OarCount          *int        `yaml:"oar_count,omitempty"`
	HasRunners        *bool       `yaml:"has_runners,omitempty"`
	Material          *Material   `yaml:"material,omitempty"`
	HasCanopy         *bool       `yaml:"has_canopy,omitempty"`
	CanopySize        *float64    `yaml:"canopy_size,omitempty"`
	HasRudder         *bool       `yaml:"has_rudder,omitempty"`
	Ornamentation     *float64    `yaml:"ornamentation,omitempty"`
	Wear              *float64    `yaml:"wear,omitempty"`
	Condition         *Condition  `yaml:"condition,omitempty"`
}

func (p *Patch) ApplyTo(dst *Vehicle) {
	if p == nil {
		return
	}
	common.Override(&dst.Type, p.Type)
	common.Override(&dst.Size, p.Size)
	common.Override(&dst.Length, p.Length)
	common.Override(&dst.Width, p.Width)
	common.Override(&dst.Height, p.Height)
	common.Override(&dst.PassengerCapacity, p.PassengerCapacity)
	common.Override(&dst.CargoCapacity, p.CargoCapacity)
	common.Override(&dst.Propulsion, p.Propulsion)
	common.Override(&dst.WheelCount, p.WheelCount)
	common.Override(&dst.WheelSize, p.WheelSize)
	common.Override(&dst.SailCount, p.SailCount)
	common.Override(&dst.SailSize, p.SailSize)
	common.Override(&dst.HasOars, p.HasOars)
	common.Override(&dst.OarCount, p.OarCount)
	common.Override(&dst.HasRunners, p.HasRunners)
	common.Override(&dst.Material, p.Material)
	common.Override(&dst.HasCanopy, p.HasCanopy)
	common.Override(&dst.CanopySize, p.CanopySize)
	common.Override(&dst.HasRudder, p.HasRudder)
	common.Override(&dst.Ornamentation, p.Ornamentation)
	common.Override(&dst.Wear, p.Wear)
	common.Override(&dst.Condition, p.Condition)
}

func Defaults() Vehicle {
	return Vehicle{
		Type:              TypeCart,
		Size:              1,
		Length:            1,
		Width:             1,
		Height:            1,
		PassengerCapacity: 1,
		CargoCapacity:     1,
		Propulsion:        PropulsionWheel,
		WheelCount:        2,
		WheelSize:         1,
		SailCount:         0,
		SailSize:          0,
		HasOars:           false,
		OarCount:          0,
		HasRunners:        false,
		Material:          MaterialWood,
		HasCanopy:         false,
		CanopySize:        1,
		HasRudder:         false,
		Ornamentation:     0,
		Wear:              0,
		Condition:         ConditionNew,
	}
}

type Table struct {
	Forms map[Form]Patch `yaml:"forms"`
}

const tableFile = "vehicle.yaml"

var vehicles = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return vehicles
}

func Create(form Form, custom *Patch) Vehicle {
	return vehicles.Create(form, custom)
}

// Create composes defaults, the form and custom. When custom leaves Wear
// unset, a dilapidated or ruined condition raises wear to at least 0.6 or 0.9.
func (t *Table) Create(form Form, custom *Patch) Vehicle {
	v := Defaults()
	if fp, ok := t.Forms[form]; ok {
		fp.ApplyTo(&v)
	}
	custom.ApplyTo(&v)

	if custom == nil || custom.Wear == nil {
		switch v.Condition {
		case ConditionDilapidated:
			v.Wear = max(v.Wear, 0.6)
		case ConditionRuined:
			v.Wear = max(v.Wear, 0.9)
		}
	}
	return v
}

func (t *Table) HasForm(form Form) bool {
	_, ok := t.Forms[form]
	return ok
}

func (t *Table) FormNames() []Form {
	return slices.Sorted(maps.Keys(t.Forms))
}

func Forms() []Form {
	return vehicles.FormNames()
}

// Prompt describes v for an image generator. materialName replaces the
// material enum when not empty.
func Prompt(v Vehicle, materialName string) string {
	var parts []string

	if v.Condition != ConditionNew {
		parts = append(parts, string(v.Condition))
	}

	if v.Type == TypeBoat {
		parts = append(parts, "vessel")
	} else {
		parts = append(parts, string(v.Type))
	}

	if materialName == "" {
		materialName = string(v.Material)
	}
	parts = append(parts, "made of "+materialName)

	if v.Propulsion == PropulsionSail && v.SailCount > 0 {
		parts = append(parts, fmt.Sprintf("with %d sails", v.SailCount))
	}
	if v.HasCanopy {
		parts = append(parts, "with a canopy cover")
	}
	if v.WheelCount > 0 && (v.Type == TypeCart || v.Type == TypeWagon) {
		parts = append(parts, fmt.Sprintf("with %d large wheels", v.WheelCount))
	}
	if v.Wear > 0.5 {
		parts = append(parts, "weathered and worn")
	}

	return strings.Join(parts, ", ")
}
