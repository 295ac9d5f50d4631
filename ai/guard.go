package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

const (
	StatePatrol steering.StateID = "patrol"
	StateChase  steering.StateID = "chase"
	StatePursue steering.StateID = "pursue"
	StateWander steering.StateID = "wander"
	StateFlee   steering.StateID = "flee"
)

// NewGuard patrols a looping path and chases the player inside
// DetectionRadius.
func NewGuard(cfg GuardConfig) (*Preset, error) {
	return DefaultTable().NewGuard(cfg)
}

func (t *Table) NewGuard(cfg GuardConfig) (*Preset, error) {
	if len(cfg.PatrolWaypoints) == 0 {
		return nil, ErrNoWaypoints
	}
	cfg = cfg.withDefaults(t.Guard)

	v := newVehicle(cfg.Limits)
	follow := steering.NewFollowPath(steering.NewPath(true, cfg.PatrolWaypoints...))
	seek := steering.NewSeek()
	behaviors := attach(v, follow, seek)

	m, err := steering.NewMachine(v, steering.StateTable{
		StatePatrol: {MaxSpeed: val(cfg.PatrolSpeed), Active: []steering.Behavior{follow}},
		StateChase:  {MaxSpeed: val(cfg.ChaseSpeed), Active: []steering.Behavior{seek}},
	}, StatePatrol)
	if err != nil {
		return nil, err
	}

	return &Preset{
		Vehicle:   v,
		Behaviors: behaviors,
		Machine:   m,
		Update: func(_ float64, ctx Context) error {
			return react(m, ctx.PlayerPosition, val(cfg.DetectionRadius), StatePatrol, StateChase,
				func(p mgl64.Vec3) { seek.Target = p })
		},
	}, nil
}
