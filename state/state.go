// Package state provides initial game-state templates and pure helpers that
// return updated copies of them. Helpers never mutate their input.
package state

import (
	"io/fs"
	"time"

	"github.com/milk9111/gamepresets/prefabs"
)

type PresetName string

const (
	RPGPreset        PresetName = "rpg"
	PuzzlePreset     PresetName = "puzzle"
	PlatformerPreset PresetName = "platformer"
	SandboxPreset    PresetName = "sandbox"
	CounterPreset    PresetName = "counter"
)

type AutoSaveName string

const (
	AutoSaveFrequent   AutoSaveName = "frequent"
	AutoSaveModerate   AutoSaveName = "moderate"
	AutoSaveInfrequent AutoSaveName = "infrequent"
	AutoSaveDisabled   AutoSaveName = "disabled"
)

type AutoSaveConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Interval     time.Duration `yaml:"interval"`
	MaxSlots     int           `yaml:"max_slots"`
	SaveOnChange bool          `yaml:"save_on_change"`
	Debounce     time.Duration `yaml:"debounce"`
	StorageKey   string        `yaml:"storage_key,omitempty"`
}

// Info describes a preset without its initial state.
type Info struct {
	Name        PresetName     `yaml:"name"`
	Description string         `yaml:"description"`
	MaxUndoSize int            `yaml:"max_undo_size"`
	AutoSave    AutoSaveConfig `yaml:"autosave"`
}

// Preset pairs an initial state with its persistence settings.
type Preset[T any] struct {
	Info
	InitialState T
}

type Table struct {
	Presets  map[PresetName]Info             `yaml:"presets"`
	AutoSave map[AutoSaveName]AutoSaveConfig `yaml:"autosave"`
}

const tableFile = "state.yaml"

var presets = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return presets
}

// Presets lists every preset in a fixed order.
func Presets() []Info {
	order := []PresetName{RPGPreset, PuzzlePreset, PlatformerPreset, SandboxPreset, CounterPreset}
	out := make([]Info, 0, len(order))
	for _, name := range order {
		if info, ok := presets.Presets[name]; ok {
			out = append(out, info)
		}
	}
	return out
}

func LookupPreset(name PresetName) (Info, bool) {
	info, ok := presets.Presets[name]
	return info, ok
}

func AutoSave(name AutoSaveName) (AutoSaveConfig, bool) {
	cfg, ok := presets.AutoSave[name]
	return cfg, ok
}

// Clock supplies the current time for seeds and timestamps.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock. States built with it are not
// reproducible.
var SystemClock Clock = ClockFunc(time.Now)

func overrideSlice[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = append([]T(nil), v...)
	}
}
