package state

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/common"
	"github.com/milk9111/gamepresets/weather"
)

type GameMode string

const (
	Survival  GameMode = "survival"
	Creative  GameMode = "creative"
	Adventure GameMode = "adventure"
)

type Difficulty string

const (
	Peaceful Difficulty = "peaceful"
	Easy     Difficulty = "easy"
	Normal   Difficulty = "normal"
	Hard     Difficulty = "hard"
)

type Block struct {
	ID       string         `yaml:"id"`
	Type     string         `yaml:"type"`
	Position mgl64.Vec3     `yaml:"position,flow"`
	Rotation *mgl64.Vec3    `yaml:"rotation,omitempty,flow"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

type Entity struct {
	ID       string         `yaml:"id"`
	Type     string         `yaml:"type"`
	Position mgl64.Vec3     `yaml:"position,flow"`
	Rotation *mgl64.Vec3    `yaml:"rotation,omitempty,flow"`
	Velocity *mgl64.Vec3    `yaml:"velocity,omitempty,flow"`
	Health   *float64       `yaml:"health,omitempty"`
	Behavior string         `yaml:"behavior,omitempty"`
	Metadata map[string]any `yaml:"metadata,omitempty"`
}

type Sandbox struct {
	WorldName       string          `yaml:"world_name"`
	WorldSeed       int64           `yaml:"world_seed"`
	Blocks          []Block         `yaml:"blocks"`
	Entities        []Entity        `yaml:"entities"`
	PlayerPosition  mgl64.Vec3      `yaml:"player_position,flow"`
	PlayerRotation  mgl64.Vec3      `yaml:"player_rotation,flow"`
	PlayerInventory []InventoryItem `yaml:"player_inventory"`
	TimeOfDay       float64         `yaml:"time_of_day"`
	Weather         weather.Type    `yaml:"weather"`
	GameMode        GameMode        `yaml:"game_mode"`
	Difficulty      Difficulty      `yaml:"difficulty"`
	ModifiedChunks  []string        `yaml:"modified_chunks"`
}

func (b Block) Clone() Block {
	if b.Rotation != nil {
		b.Rotation = common.Ptr(*b.Rotation)
	}
	b.Metadata = maps.Clone(b.Metadata)
	return b
}

func (e Entity) Clone() Entity {
	if e.Rotation != nil {
		e.Rotation = common.Ptr(*e.Rotation)
	}
	if e.Velocity != nil {
		e.Velocity = common.Ptr(*e.Velocity)
	}
	if e.Health != nil {
		e.Health = common.Ptr(*e.Health)
	}
	e.Metadata = maps.Clone(e.Metadata)
	return e
}

func (s Sandbox) Clone() Sandbox {
	out := s
	out.Blocks = make([]Block, len(s.Blocks))
	for i, b := range s.Blocks {
		out.Blocks[i] = b.Clone()
	}
	out.Entities = make([]Entity, len(s.Entities))
	for i, e := range s.Entities {
		out.Entities[i] = e.Clone()
	}
	out.PlayerInventory = make([]InventoryItem, len(s.PlayerInventory))
	for i, item := range s.PlayerInventory {
		out.PlayerInventory[i] = item.Clone()
	}
	out.ModifiedChunks = slices.Clone(s.ModifiedChunks)
	return out
}

type SandboxPatch struct {
	WorldName       *string         `yaml:"world_name,omitempty"`
	WorldSeed       *int64          `yaml:"world_seed,omitempty"`
	Blocks          []Block         `yaml:"blocks,omitempty"`
	Entities        []Entity        `yaml:"entities,omitempty"`
	PlayerPosition  *mgl64.Vec3     `yaml:"player_position,omitempty,flow"`
	PlayerRotation  *mgl64.Vec3     `yaml:"player_rotation,omitempty,flow"`
	PlayerInventory []InventoryItem `yaml:"player_inventory,omitempty"`
	TimeOfDay       *float64        `yaml:"time_of_day,omitempty"`
	Weather         *weather.Type   `yaml:"weather,omitempty"`
	GameMode        *GameMode       `yaml:"game_mode,omitempty"`
	Difficulty      *Difficulty     `yaml:"difficulty,omitempty"`
	ModifiedChunks  []string        `yaml:"modified_chunks,omitempty"`
}

func (p *SandboxPatch) ApplyTo(dst *Sandbox) {
	if p == nil {
		return
	}
	common.Override(&dst.WorldName, p.WorldName)
	common.Override(&dst.WorldSeed, p.WorldSeed)
	overrideSlice(&dst.Blocks, p.Blocks)
	overrideSlice(&dst.Entities, p.Entities)
	common.Override(&dst.PlayerPosition, p.PlayerPosition)
	common.Override(&dst.PlayerRotation, p.PlayerRotation)
	overrideSlice(&dst.PlayerInventory, p.PlayerInventory)
	common.Override(&dst.TimeOfDay, p.TimeOfDay)
	common.Override(&dst.Weather, p.Weather)
	common.Override(&dst.GameMode, p.GameMode)
	common.Override(&dst.Difficulty, p.Difficulty)
	overrideSlice(&dst.ModifiedChunks, p.ModifiedChunks)
}

// DefaultSandbox has a zero seed; NewSandboxState fills it in.
func DefaultSandbox() Sandbox {
	return Sandbox{
		WorldName:       "New World",
		Blocks:          []Block{},
		Entities:        []Entity{},
		PlayerPosition:  mgl64.Vec3{0, 64, 0},
		PlayerInventory: []InventoryItem{},
		Weather:         weather.TypeClear,
		GameMode:        Survival,
		Difficulty:      Normal,
		ModifiedChunks:  []string{},
	}
}

// NewSandboxState seeds the world from clock in milliseconds unless the
// overrides carry a seed. A nil clock leaves the seed at zero.
func NewSandboxState(clock Clock, overrides *SandboxPatch) Sandbox {
	s := DefaultSandbox()
	if clock != nil {
		s.WorldSeed = clock.Now().UnixMilli()
	}
	overrides.ApplyTo(&s)
	return s.Clone()
}

func NewSandboxPreset(clock Clock, overrides *SandboxPatch) Preset[Sandbox] {
	return Preset[Sandbox]{Info: presets.Presets[SandboxPreset], InitialState: NewSandboxState(clock, overrides)}
}

// PlaceBlock puts b at its position, replacing any block already there.
func PlaceBlock(s Sandbox, b Block) Sandbox {
	out := s.Clone()
	idx := slices.IndexFunc(out.Blocks, func(x Block) bool { return x.Position == b.Position })
	if idx >= 0 {
		out.Blocks[idx] = b.Clone()
		return out
	}
	out.Blocks = append(out.Blocks, b.Clone())
	return out
}

func RemoveBlock(s Sandbox, pos mgl64.Vec3) Sandbox {
	out := s.Clone()
	out.Blocks = slices.DeleteFunc(out.Blocks, func(x Block) bool { return x.Position == pos })
	return out
}
