package state

import (
	"maps"
	"slices"

	"github.com/milk9111/gamepresets/common"
)

type PlayerStats struct {
	Level        int `yaml:"level"`
	Experience   int `yaml:"experience"`
	Health       int `yaml:"health"`
	MaxHealth    int `yaml:"max_health"`
	Mana         int `yaml:"mana"`
	MaxMana      int `yaml:"max_mana"`
	Strength     int `yaml:"strength"`
	Dexterity    int `yaml:"dexterity"`
	Intelligence int `yaml:"intelligence"`
	Wisdom       int `yaml:"wisdom"`
	Constitution int `yaml:"constitution"`
	Charisma     int `yaml:"charisma"`
}

type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemConsumable ItemType = "consumable"
	ItemKey        ItemType = "key"
	ItemQuest      ItemType = "quest"
	ItemMisc       ItemType = "misc"
)

// stackable reports whether repeated pickups merge into one slot.
func (t ItemType) stackable() bool {
	return t != ItemWeapon && t != ItemArmor
}

type InventoryItem struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Quantity int            `yaml:"quantity"`
	Type     ItemType       `yaml:"type"`
	Equipped bool           `yaml:"equipped,omitempty"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

func (i InventoryItem) Clone() InventoryItem {
	i.Metadata = maps.Clone(i.Metadata)
	return i
}

type QuestStatus string

const (
	QuestAvailable QuestStatus = "available"
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
)

type QuestRewards struct {
	Experience int      `yaml:"experience,omitempty"`
	Gold       int      `yaml:"gold,omitempty"`
	Items      []string `yaml:"items,omitempty"`
}

type Quest struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Status      QuestStatus   `yaml:"status"`
	Progress    int           `yaml:"progress"`
	MaxProgress int           `yaml:"max_progress"`
	Rewards     *QuestRewards `yaml:"rewards,omitempty"`
}

func (q Quest) Clone() Quest {
	if q.Rewards != nil {
		r := *q.Rewards
		r.Items = slices.Clone(r.Items)
		q.Rewards = &r
	}
	return q
}

type RPG struct {
	Player           PlayerStats     `yaml:"player"`
	Inventory        []InventoryItem `yaml:"inventory"`
	Gold             int             `yaml:"gold"`
	Quests           []Quest         `yaml:"quests"`
	CurrentLocation  string          `yaml:"current_location"`
	VisitedLocations []string        `yaml:"visited_locations"`
	GameFlags        map[string]bool `yaml:"game_flags"`
	PlayTime         float64         `yaml:"play_time"`
}

// Clone returns a copy that shares no slices or maps with s.
func (s RPG) Clone() RPG {
	out := s
	out.Inventory = make([]InventoryItem, len(s.Inventory))
	for i, item := range s.Inventory {
		out.Inventory[i] = item.Clone()
	}
	out.Quests = make([]Quest, len(s.Quests))
	for i, q := range s.Quests {
		out.Quests[i] = q.Clone()
	}
	out.VisitedLocations = slices.Clone(s.VisitedLocations)
	out.GameFlags = maps.Clone(s.GameFlags)
	if out.GameFlags == nil {
		out.GameFlags = map[string]bool{}
	}
	return out
}

// RPGPatch replaces whole top-level fields. A nil slice or map is unset.
type RPGPatch struct {
	Player           *PlayerStats    `yaml:"player,omitempty"`
	Inventory        []InventoryItem `yaml:"inventory,omitempty"`
	Gold             *int            `yaml:"gold,omitempty"`
	Quests           []Quest         `yaml:"quests,omitempty"`
	CurrentLocation  *string         `yaml:"current_location,omitempty"`
	VisitedLocations []string        `yaml:"visited_locations,omitempty"`
	GameFlags        map[string]bool `yaml:"game_flags,omitempty"`
	PlayTime         *float64        `yaml:"play_time,omitempty"`
}

func (p *RPGPatch) ApplyTo(dst *RPG) {
	if p == nil {
		return
	}
	common.Override(&dst.Player, p.Player)
	overrideSlice(&dst.Inventory, p.Inventory)
	common.Override(&dst.Gold, p.Gold)
	overrideSlice(&dst.Quests, p.Quests)
	common.Override(&dst.CurrentLocation, p.CurrentLocation)
	overrideSlice(&dst.VisitedLocations, p.VisitedLocations)
	if p.GameFlags != nil {
		dst.GameFlags = maps.Clone(p.GameFlags)
	}
	common.Override(&dst.PlayTime, p.PlayTime)
}

func DefaultRPG() RPG {
	return RPG{
		Player: PlayerStats{
			Level:        1,
			Experience:   0,
			Health:       100,
			MaxHealth:    100,
			Mana:         50,
			MaxMana:      50,
			Strength:     10,
			Dexterity:    10,
			Intelligence: 10,
			Wisdom:       10,
			Constitution: 10,
			Charisma:     10,
		},
		Inventory:        []InventoryItem{},
		Quests:           []Quest{},
		CurrentLocation:  "starting_village",
		VisitedLocations: []string{"starting_village"},
		GameFlags:        map[string]bool{},
	}
}

func NewRPGState(overrides *RPGPatch) RPG {
	s := DefaultRPG()
	overrides.ApplyTo(&s)
	return s.Clone()
}

func NewRPGPreset(overrides *RPGPatch) Preset[RPG] {
	return Preset[RPG]{Info: presets.Presets[RPGPreset], InitialState: NewRPGState(overrides)}
}

// AddExperience grants amount experience, levelling up as many times as it
// covers. Each level costs level*100; a level-up adds 10 max health and 5 max
// mana and refills both.
func AddExperience(s RPG, amount int) RPG {
	out := s.Clone()
	p := &out.Player

	p.Experience += amount
	for need := p.Level * 100; need > 0 && p.Experience >= need; need = p.Level * 100 {
		p.Experience -= need
		p.Level++
		p.MaxHealth += 10
		p.Health = p.MaxHealth
		p.MaxMana += 5
		p.Mana = p.MaxMana
	}

	return out
}

// AddInventoryItem stacks item onto an existing slot with the same ID unless
// it is a weapon or armor, which always take a new slot.
func AddInventoryItem(s RPG, item InventoryItem) RPG {
	out := s.Clone()

	idx := slices.IndexFunc(out.Inventory, func(i InventoryItem) bool {
		return i.ID == item.ID && i.Type.stackable()
	})
	if idx >= 0 {
		out.Inventory[idx].Quantity += item.Quantity
		return out
	}

	out.Inventory = append(out.Inventory, item.Clone())
	return out
}

// CompleteQuest marks the quest completed and pays its experience and gold
// rewards. An unknown id returns s unchanged.
func CompleteQuest(s RPG, questID string) RPG {
	idx := slices.IndexFunc(s.Quests, func(q Quest) bool { return q.ID == questID })
	if idx < 0 {
		return s
	}

	out := s.Clone()
	quest := &out.Quests[idx]
	quest.Status = QuestCompleted

	if r := quest.Rewards; r != nil {
		if r.Experience != 0 {
			out = AddExperience(out, r.Experience)
		}
		if r.Gold != 0 {
			out.Gold += r.Gold
		}
	}

	return out
}
