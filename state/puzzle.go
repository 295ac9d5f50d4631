package state

import (
	"slices"

	"github.com/milk9111/gamepresets/common"
)

type Puzzle struct {
	CurrentLevel   int      `yaml:"current_level"`
	TotalLevels    int      `yaml:"total_levels"`
	Score          int      `yaml:"score"`
	Moves          int      `yaml:"moves"`
	MovesLimit     *int     `yaml:"moves_limit,omitempty"`
	TimeElapsed    float64  `yaml:"time_elapsed"`
	TimeLimit      *float64 `yaml:"time_limit,omitempty"`
	Stars          int      `yaml:"stars"`
	Hints          int      `yaml:"hints"`
	IsPaused       bool     `yaml:"is_paused"`
	LevelData      any      `yaml:"level_data,omitempty"`
	UnlockedLevels []int    `yaml:"unlocked_levels"`
	Achievements   []string `yaml:"achievements"`
}

// Clone copies the slices and limits. LevelData is opaque and shared.
func (s Puzzle) Clone() Puzzle {
	out := s
	if s.MovesLimit != nil {
		out.MovesLimit = common.Ptr(*s.MovesLimit)
	}
	if s.TimeLimit != nil {
		out.TimeLimit = common.Ptr(*s.TimeLimit)
	}
	out.UnlockedLevels = slices.Clone(s.UnlockedLevels)
	out.Achievements = slices.Clone(s.Achievements)
	return out
}

type PuzzlePatch struct {
	CurrentLevel   *int     `yaml:"current_level,omitempty"`
	TotalLevels    *int     `yaml:"total_levels,omitempty"`
	Score          *int     `yaml:"score,omitempty"`
	Moves          *int     `yaml:"moves,omitempty"`
	MovesLimit     *int     `yaml:"moves_limit,omitempty"`
	TimeElapsed    *float64 `yaml:"time_elapsed,omitempty"`
	TimeLimit      *float64 `yaml:"time_limit,omitempty"`
	Stars          *int     `yaml:"stars,omitempty"`
	Hints          *int     `yaml:"hints,omitempty"`
	IsPaused       *bool    `yaml:"is_paused,omitempty"`
	LevelData      any      `yaml:"level_data,omitempty"`
	UnlockedLevels []int    `yaml:"unlocked_levels,omitempty"`
	Achievements   []string `yaml:"achievements,omitempty"`
}

func (p *PuzzlePatch) ApplyTo(dst *Puzzle) {
	if p == nil {
		return
	}
	common.Override(&dst.CurrentLevel, p.CurrentLevel)
	common.Override(&dst.TotalLevels, p.TotalLevels)
	common.Override(&dst.Score, p.Score)
	common.Override(&dst.Moves, p.Moves)
	if p.MovesLimit != nil {
		dst.MovesLimit = p.MovesLimit
	}
	common.Override(&dst.TimeElapsed, p.TimeElapsed)
	if p.TimeLimit != nil {
		dst.TimeLimit = p.TimeLimit
	}
	common.Override(&dst.Stars, p.Stars)
	common.Override(&dst.Hints, p.Hints)
	common.Override(&dst.IsPaused, p.IsPaused)
	if p.LevelData != nil {
		dst.LevelData = p.LevelData
	}
	overrideSlice(&dst.UnlockedLevels, p.UnlockedLevels)
	overrideSlice(&dst.Achievements, p.Achievements)
}

func DefaultPuzzle() Puzzle {
	return Puzzle{
		CurrentLevel:   1,
		TotalLevels:    50,
		Hints:          3,
		UnlockedLevels: []int{1},
		Achievements:   []string{},
	}
}

func NewPuzzleState(overrides *PuzzlePatch) Puzzle {
	s := DefaultPuzzle()
	overrides.ApplyTo(&s)
	return s.Clone()
}

func NewPuzzlePreset(overrides *PuzzlePatch) Preset[Puzzle] {
	return Preset[Puzzle]{Info: presets.Presets[PuzzlePreset], InitialState: NewPuzzleState(overrides)}
}

// UnlockLevel adds level to the sorted unlocked list. Already unlocked
// levels return s unchanged.
func UnlockLevel(s Puzzle, level int) Puzzle {
	if slices.Contains(s.UnlockedLevels, level) {
		return s
	}
	out := s.Clone()
	out.UnlockedLevels = append(out.UnlockedLevels, level)
	slices.Sort(out.UnlockedLevels)
	return out
}
