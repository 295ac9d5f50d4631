// Package camera provides viewpoint presets and helpers that lay out camera
// paths for cinematic rigs.
package camera

import (
	"io/fs"
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/prefabs"
)

type Kind string

const (
	ThirdPerson  Kind = "third-person"
	TopDown      Kind = "top-down"
	SideScroller Kind = "side-scroller"
	Cinematic    Kind = "cinematic"
)

// Follow trails a target at Offset. Used by third-person and side-scroller
// presets.
type Follow struct {
	Kind               Kind       `yaml:"kind"`
	Offset             mgl64.Vec3 `yaml:"offset,flow"`
	SmoothTime         float64    `yaml:"smooth_time"`
	LookAheadDistance  float64    `yaml:"look_ahead_distance"`
	LookAheadSmoothing float64    `yaml:"look_ahead_smoothing"`
	RotationSmoothing  float64    `yaml:"rotation_smoothing"`
	FOV                float64    `yaml:"fov"`
	MakeDefault        bool       `yaml:"make_default"`
}

// Orbit circles a target. Angles are radians.
type Orbit struct {
	Kind          Kind    `yaml:"kind"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
	MinPolarAngle float64 `yaml:"min_polar_angle"`
	MaxPolarAngle float64 `yaml:"max_polar_angle"`
	AutoRotate    bool    `yaml:"auto_rotate"`
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float64 `yaml:"damping_factor"`
	EnableZoom    bool    `yaml:"enable_zoom"`
	EnablePan     bool    `yaml:"enable_pan"`
	FOV           float64 `yaml:"fov"`
	MakeDefault   bool    `yaml:"make_default"`
}

type FOVKeyframe struct {
	Time float64 `yaml:"time"`
	FOV  float64 `yaml:"fov"`
}

// Rig plays a camera along a spline path. The path itself comes from one of
// the path helpers.
type Rig struct {
	Kind         Kind          `yaml:"kind"`
	Duration     float64       `yaml:"duration"`
	Tension      float64       `yaml:"tension"`
	Closed       bool          `yaml:"closed"`
	AutoPlay     bool          `yaml:"auto_play"`
	Loop         bool          `yaml:"loop"`
	FOV          float64       `yaml:"fov"`
	FOVKeyframes []FOVKeyframe `yaml:"fov_keyframes,omitempty"`
	MakeDefault  bool          `yaml:"make_default"`
}

type Table struct {
	Follow    map[string]Follow `yaml:"follow"`
	Orbit     map[string]Orbit  `yaml:"orbit"`
	Cinematic map[string]Rig    `yaml:"cinematic"`
}

const tableFile = "camera.yaml"

var presets = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return presets
}

func LookupFollow(name string) (Follow, bool) {
	p, ok := presets.Follow[name]
	return p, ok
}

func LookupOrbit(name string) (Orbit, bool) {
	p, ok := presets.Orbit[name]
	return p, ok
}

// LookupRig returns a copy; the keyframes are not shared with the table.
func LookupRig(name string) (Rig, bool) {
	p, ok := presets.Cinematic[name]
	p.FOVKeyframes = slices.Clone(p.FOVKeyframes)
	return p, ok
}

// Lookup finds name in any of the preset groups and returns a Follow, Orbit
// or Rig value.
func (t *Table) Lookup(name string) (any, bool) {
	if p, ok := t.Follow[name]; ok {
		return p, true
	}
	if p, ok := t.Orbit[name]; ok {
		return p, true
	}
	if p, ok := t.Cinematic[name]; ok {
		p.FOVKeyframes = slices.Clone(p.FOVKeyframes)
		return p, true
	}
	return nil, false
}

func (t *Table) Names() []string {
	names := slices.Collect(maps.Keys(t.Follow))
	names = slices.AppendSeq(names, maps.Keys(t.Orbit))
	names = slices.AppendSeq(names, maps.Keys(t.Cinematic))
	slices.Sort(names)
	return names
}

func Names() []string {
	return presets.Names()
}
