// Package ai wires steering vehicles into ready-made agents: guards that
// patrol and chase, predators, prey, followers and flocks.
package ai

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

var (
	ErrNoWaypoints  = errors.New("ai: guard needs at least one patrol waypoint")
	ErrInvalidCount = errors.New("ai: count must be positive")
)

// Context carries the world positions an Update reacts to. Nil fields are
// treated as absent.
type Context struct {
	PlayerPosition *mgl64.Vec3
	PreyPosition   *mgl64.Vec3
	ThreatPosition *mgl64.Vec3
	LeaderPosition *mgl64.Vec3
	LeaderRotation *mgl64.Quat
}

type UpdateFunc func(delta float64, ctx Context) error

// Preset is a configured vehicle plus the behaviors attached to it.
// Machine and Update are nil for presets that need no per-frame logic.
type Preset struct {
	Vehicle   *steering.Vehicle
	Behaviors []steering.Behavior
	Machine   *steering.Machine
	Update    UpdateFunc
}

func newVehicle(l Limits) *steering.Vehicle {
	v := steering.NewVehicle()
	v.Position = l.Position
	v.MaxSpeed = val(l.MaxSpeed)
	v.MaxForce = val(l.MaxForce)
	v.Mass = val(l.Mass)
	return v
}

func attach(v *steering.Vehicle, behaviors ...steering.Behavior) []steering.Behavior {
	for _, b := range behaviors {
		v.Add(b)
	}
	return behaviors
}

// react moves m into reactive when target is closer than threshold and
// aims at it, otherwise back to idle. A nil target leaves the state as is.
func react(m *steering.Machine, target *mgl64.Vec3, threshold float64, idle, reactive steering.StateID, aim func(mgl64.Vec3)) error {
	if target == nil {
		return nil
	}
	if m.Owner().DistanceTo(*target) < threshold {
		if !m.In(reactive) {
			if err := m.ChangeTo(reactive); err != nil {
				return err
			}
		}
		aim(*target)
		return nil
	}

	if !m.In(idle) {
		return m.ChangeTo(idle)
	}
	return nil
}
