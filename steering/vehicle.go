// Package steering models autonomous agents as plain data: a vehicle with
// speed and force limits, the steering behaviors attached to it, and a small
// state machine that toggles those behaviors. Integrating forces is left to
// the simulation that consumes these values.
package steering

import "github.com/go-gl/mathgl/mgl64"

type Vehicle struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Velocity mgl64.Vec3

	MaxSpeed float64
	MaxForce float64
	Mass     float64

	// UpdateNeighborhood asks the simulation to collect neighbors within
	// NeighborhoodRadius each frame.
	UpdateNeighborhood bool
	NeighborhoodRadius float64

	Steering []Behavior
}

func NewVehicle() *Vehicle {
	return &Vehicle{
		Rotation:           mgl64.QuatIdent(),
		MaxSpeed:           1,
		MaxForce:           100,
		Mass:               1,
		NeighborhoodRadius: 1,
	}
}

func (v *Vehicle) Add(b Behavior) {
	v.Steering = append(v.Steering, b)
}

func (v *Vehicle) DistanceTo(p mgl64.Vec3) float64 {
	return v.Position.Sub(p).Len()
}

func (v *Vehicle) ActiveBehaviors() []Behavior {
	var out []Behavior
	for _, b := range v.Steering {
		if b.Config().Active {
			out = append(out, b)
		}
	}
	return out
}
