package state

import (
	"slices"

	"github.com/milk9111/gamepresets/common"
)

const coinsPerLife = 100

type Platformer struct {
	Lives          int      `yaml:"lives"`
	MaxLives       int      `yaml:"max_lives"`
	Coins          int      `yaml:"coins"`
	Score          int      `yaml:"score"`
	HighScore      int      `yaml:"high_score"`
	CurrentWorld   int      `yaml:"current_world"`
	CurrentLevel   int      `yaml:"current_level"`
	CheckpointX    float64  `yaml:"checkpoint_x"`
	CheckpointY    float64  `yaml:"checkpoint_y"`
	PowerUps       []string `yaml:"power_ups"`
	Keys           int      `yaml:"keys"`
	UnlockedWorlds []int    `yaml:"unlocked_worlds"`
	Collectibles   []string `yaml:"collectibles"`
	TimeAttackBest *float64 `yaml:"time_attack_best,omitempty"`
}

func (s Platformer) Clone() Platformer {
	out := s
	out.PowerUps = slices.Clone(s.PowerUps)
	out.UnlockedWorlds = slices.Clone(s.UnlockedWorlds)
	out.Collectibles = slices.Clone(s.Collectibles)
	if s.TimeAttackBest != nil {
		out.TimeAttackBest = common.Ptr(*s.TimeAttackBest)
	}
	return out
}

type PlatformerPatch struct {
	Lives          *int     `yaml:"lives,omitempty"`
	MaxLives       *int     `yaml:"max_lives,omitempty"`
	Coins          *int     `yaml:"coins,omitempty"`
	Score          *int     `yaml:"score,omitempty"`
	HighScore      *int     `yaml:"high_score,omitempty"`
	CurrentWorld   *int     `yaml:"current_world,omitempty"`
	CurrentLevel   *int     `yaml:"current_level,omitempty"`
	CheckpointX    *float64 `yaml:"checkpoint_x,omitempty"`
	CheckpointY    *float64 `yaml:"checkpoint_y,omitempty"`
	PowerUps       []string `yaml:"power_ups,omitempty"`
	Keys           *int     `yaml:"keys,omitempty"`
	UnlockedWorlds []int    `yaml:"unlocked_worlds,omitempty"`
	Collectibles   []string `yaml:"collectibles,omitempty"`
	TimeAttackBest *float64 `yaml:"time_attack_best,omitempty"`
}

func (p *PlatformerPatch) ApplyTo(dst *Platformer) {
	if p == nil {
		return
	}
	common.Override(&dst.Lives, p.Lives)
	common.Override(&dst.MaxLives, p.MaxLives)
	common.Override(&dst.Coins, p.Coins)
	common.Override(&dst.Score, p.Score)
	common.Override(&dst.HighScore, p.HighScore)
	common.Override(&dst.CurrentWorld, p.CurrentWorld)
	common.Override(&dst.CurrentLevel, p.CurrentLevel)
	common.Override(&dst.CheckpointX, p.CheckpointX)
	common.Override(&dst.CheckpointY, p.CheckpointY)
	overrideSlice(&dst.PowerUps, p.PowerUps)
	common.Override(&dst.Keys, p.Keys)
	overrideSlice(&dst.UnlockedWorlds, p.UnlockedWorlds)
	overrideSlice(&dst.Collectibles, p.Collectibles)
	if p.TimeAttackBest != nil {
		dst.TimeAttackBest = p.TimeAttackBest
	}
}

func DefaultPlatformer() Platformer {
	return Platformer{
		Lives:          3,
		MaxLives:       5,
		CurrentWorld:   1,
		CurrentLevel:   1,
		PowerUps:       []string{},
		UnlockedWorlds: []int{1},
		Collectibles:   []string{},
	}
}

func NewPlatformerState(overrides *PlatformerPatch) Platformer {
	s := DefaultPlatformer()
	overrides.ApplyTo(&s)
	return s.Clone()
}

func NewPlatformerPreset(overrides *PlatformerPatch) Preset[Platformer] {
	return Preset[Platformer]{Info: presets.Presets[PlatformerPreset], InitialState: NewPlatformerState(overrides)}
}

// CollectCoin adds value coins and ten points per coin. Every hundredth coin
// grants a life up to MaxLives and the counter wraps.
func CollectCoin(s Platformer, value int) Platformer {
	out := s.Clone()
	coins := s.Coins + value
	extra := coins/coinsPerLife - s.Coins/coinsPerLife

	out.Coins = coins % coinsPerLife
	out.Lives = min(s.MaxLives, s.Lives+extra)
	out.Score = s.Score + value*10
	return out
}

func LoseLife(s Platformer) Platformer {
	out := s.Clone()
	out.Lives = max(0, s.Lives-1)
	return out
}
