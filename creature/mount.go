package creature

import (
	"strings"

	"github.com/milk9111/gamepresets/common"
)

type SaddleType string

const (
	SaddleNone  SaddleType = "none"
	SaddleBasic SaddleType = "basic"
	SaddleWar   SaddleType = "war"
	SaddlePack  SaddleType = "pack"
	SaddleFancy SaddleType = "fancy"
)

// Mount is a rideable quadruped. The creature knobs are inlined so a mount
// serialises as one flat record.
type Mount struct {
	Quadruped `yaml:",inline"`

	Saddled            bool       `yaml:"saddled"`
	SaddleType         SaddleType `yaml:"saddle_type"`
	Barding            float64    `yaml:"barding"`
	HasReins           bool       `yaml:"has_reins"`
	HasPanniers        bool       `yaml:"has_panniers"`
	CarryingCapacity   float64    `yaml:"carrying_capacity"`
	MountOrnamentation float64    `yaml:"mount_ornamentation"`
}

// MountPatch splits a flat customisation record into its creature keys
// (the inlined QuadrupedPatch) and the mount-only keys.
type MountPatch struct {
	QuadrupedPatch `yaml:",inline"`

	Saddled            *bool       `yaml:"saddled,omitempty"`
	SaddleType         *SaddleType `yaml:"saddle_type,omitempty"`
	Barding            *float64    `yaml:"barding,omitempty"`
	HasReins           *bool       `yaml:"has_reins,omitempty"`
	HasPanniers        *bool       `yaml:"has_panniers,omitempty"`
	CarryingCapacity   *float64    `yaml:"carrying_capacity,omitempty"`
	MountOrnamentation *float64    `yaml:"mount_ornamentation,omitempty"`
}

func (p *MountPatch) ApplyTo(dst *Mount) {
	if p == nil {
		return
	}
	common.Override(&dst.Saddled, p.Saddled)
	common.Override(&dst.SaddleType, p.SaddleType)
	common.Override(&dst.Barding, p.Barding)
	common.Override(&dst.HasReins, p.HasReins)
	common.Override(&dst.HasPanniers, p.HasPanniers)
	common.Override(&dst.CarryingCapacity, p.CarryingCapacity)
	common.Override(&dst.MountOrnamentation, p.MountOrnamentation)
}

func creatureKeys(p *MountPatch) *QuadrupedPatch {
	if p == nil {
		return nil
	}
	return &p.QuadrupedPatch
}

func MountDefaults() Mount {
	return Mount{
		Saddled:            false,
		SaddleType:         SaddleNone,
		Barding:            0,
		HasReins:           false,
		HasPanniers:        false,
		CarryingCapacity:   1,
		MountOrnamentation: 0,
	}
}

// CreateMount builds the creature from form and the creature keys of custom,
// then layers the mount defaults and mount keys on top. Choosing a saddle
// without setting Saddled also fits a saddle and reins.
func CreateMount(form Form, custom *MountPatch) Mount {
	return quadrupeds.CreateMount(form, custom)
}

func (t *QuadrupedTable) CreateMount(form Form, custom *MountPatch) Mount {
	mount := MountDefaults()
	mount.Quadruped = t.Create(form, creatureKeys(custom))
	custom.ApplyTo(&mount)

	if mount.SaddleType != SaddleNone && (custom == nil || custom.Saddled == nil) {
		mount.Saddled = true
		mount.HasReins = true
	}
	return mount
}

func MountPrompt(m Mount, species string) string {
	var parts []string
	if m.Age != Adult {
		parts = append(parts, string(m.Age))
	}
	if species == "" {
		species = "creature"
	}
	parts = append(parts, species)

	if m.Saddled {
		parts = append(parts, "equipped with a "+string(m.SaddleType)+" saddle")
		if m.HasReins {
			parts = append(parts, "and bridle")
		}
		if m.HasPanniers {
			parts = append(parts, "with pack bags")
		}
	}

	if m.Barding > 0 {
		switch {
		case m.Barding > 0.7:
			parts = append(parts, "in heavy plate barding")
		case m.Barding > 0.3:
			parts = append(parts, "in leather barding")
		default:
			parts = append(parts, "with light armor")
		}
	}

	if m.MountOrnamentation > 0.5 {
		parts = append(parts, "decorated with ceremonial silks and tassels")
	}

	return strings.Join(parts, ", ")
}
