// Package npc holds behavior defaults for non-player characters and a few
// example characters.
package npc

import (
	"io/fs"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/prefabs"
)

type Type string

const (
	Friendly   Type = "friendly"
	Hostile    Type = "hostile"
	Neutral    Type = "neutral"
	Merchant   Type = "merchant"
	QuestGiver Type = "quest_giver"
)

type Faction string

const (
	RiverClan      Faction = "river_clan"
	MarshRaiders   Faction = "marsh_raiders"
	ElderCouncil   Faction = "elder_council"
	TradersGuild   Faction = "traders_guild"
	NeutralFaction Faction = "neutral"
)

// Behavior tunes perception and idle movement. A zero WanderInterval means
// the character stays put.
type Behavior struct {
	SightRange     float64       `yaml:"sight_range"`
	InteractRange  float64       `yaml:"interact_range"`
	AggroRange     float64       `yaml:"aggro_range"`
	WanderInterval time.Duration `yaml:"wander_interval"`
}

type NPC struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	Faction         Faction    `yaml:"faction"`
	Type            Type       `yaml:"type"`
	Position        mgl64.Vec3 `yaml:"position,flow"`
	Health          float64    `yaml:"health,omitempty"`
	MaxHealth       float64    `yaml:"max_health,omitempty"`
	Dialogue        []string   `yaml:"dialogue,omitempty"`
	Quests          []string   `yaml:"quests,omitempty"`
	WanderRange     float64    `yaml:"wander_range,omitempty"`
	SpeedMultiplier float64    `yaml:"speed_multiplier,omitempty"`
}

func (n NPC) Clone() NPC {
	n.Dialogue = slices.Clone(n.Dialogue)
	n.Quests = slices.Clone(n.Quests)
	return n
}

type Table struct {
	Behaviors map[Type]Behavior      `yaml:"behaviors"`
	Colors    map[Type]prefabs.Color `yaml:"colors"`
	Examples  []NPC                  `yaml:"examples"`
}

const tableFile = "npc.yaml"

var npcs = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return npcs
}

// BehaviorFor returns a copy of the defaults for t. Unknown types get the
// zero Behavior.
func BehaviorFor(t Type) Behavior {
	return npcs.Behaviors[t]
}

func ColorFor(t Type) (prefabs.Color, bool) {
	c, ok := npcs.Colors[t]
	return c, ok
}

func Examples() []NPC {
	out := make([]NPC, len(npcs.Examples))
	for i, n := range npcs.Examples {
		out[i] = n.Clone()
	}
	return out
}
