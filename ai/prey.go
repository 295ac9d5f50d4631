package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

// NewPrey wanders until a threat comes within FleeDistance, then flees
// at FleeSpeed.
func NewPrey(cfg PreyConfig) (*Preset, error) {
	return DefaultTable().NewPrey(cfg)
}

func (t *Table) NewPrey(cfg PreyConfig) (*Preset, error) {
	cfg = cfg.withDefaults(t.Prey)
	v := newVehicle(cfg.Limits)

	wander := steering.NewWander()
	wander.Radius = val(cfg.WanderRadius)
	wander.Jitter = 3

	flee := steering.NewFlee()
	flee.PanicDistance = val(cfg.FleeDistance)
	flee.Weight = 2

	behaviors := attach(v, wander, flee)
	m, err := steering.NewMachine(v, steering.StateTable{
		StateWander: {MaxSpeed: val(cfg.MaxSpeed), Active: []steering.Behavior{wander}},
		StateFlee:   {MaxSpeed: val(cfg.FleeSpeed), Active: []steering.Behavior{flee}},
	}, StateWander)
	if err != nil {
		return nil, err
	}

	return &Preset{
		Vehicle:   v,
		Behaviors: behaviors,
		Machine:   m,
		Update: func(_ float64, ctx Context) error {
			return react(m, ctx.ThreatPosition, val(cfg.FleeDistance), StateWander, StateFlee,
				func(p mgl64.Vec3) { flee.Target = p })
		},
	}, nil
}
