package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

const predatorPatrolFactor = 0.5

// NewPredator roams at half speed, following PatrolWaypoints when given and
// wandering otherwise, and pursues prey inside DetectionRadius.
func NewPredator(cfg PredatorConfig) (*Preset, error) {
	return DefaultTable().NewPredator(cfg)
}

func (t *Table) NewPredator(cfg PredatorConfig) (*Preset, error) {
	cfg = cfg.withDefaults(t.Predator)
	v := newVehicle(cfg.Limits)

	wander := steering.NewWander()
	wander.Radius = 3
	wander.Distance = 8
	wander.Jitter = 2

	seek := steering.NewSeek()
	seek.Weight = 2

	behaviors := attach(v, wander, seek)
	roam := steering.Behavior(wander)
	if len(cfg.PatrolWaypoints) > 0 {
		// The path replaces wandering. Wander stays attached but off, and
		// no state turns it back on.
		wander.Active = false
		follow := steering.NewFollowPath(steering.NewPath(true, cfg.PatrolWaypoints...))
		behaviors = append(behaviors, attach(v, follow)...)
		roam = follow
	}

	m, err := steering.NewMachine(v, steering.StateTable{
		StatePatrol: {MaxSpeed: val(cfg.MaxSpeed) * predatorPatrolFactor, Active: []steering.Behavior{roam}},
		StatePursue: {MaxSpeed: val(cfg.PursuitSpeed), Active: []steering.Behavior{seek}},
	}, StatePatrol)
	if err != nil {
		return nil, err
	}

	return &Preset{
		Vehicle:   v,
		Behaviors: behaviors,
		Machine:   m,
		Update: func(_ float64, ctx Context) error {
			return react(m, ctx.PreyPosition, val(cfg.DetectionRadius), StatePatrol, StatePursue,
				func(p mgl64.Vec3) { seek.Target = p })
		},
	}, nil
}
