package ai

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

// NewFollower arrives at a point offset from the leader. The offset is in
// the leader's frame when a rotation is supplied.
func NewFollower(cfg FollowerConfig) *Preset {
	return DefaultTable().NewFollower(cfg)
}

func (t *Table) NewFollower(cfg FollowerConfig) *Preset {
	cfg = cfg.withDefaults(t.Follower)
	v := newVehicle(cfg.Limits)

	arrive := steering.NewArrive()
	distance := val(cfg.FollowDistance)
	arrive.Deceleration = max(1, distance/2)
	arrive.Tolerance = distance * 0.1

	var offset mgl64.Vec3
	if cfg.Offset != nil {
		offset = *cfg.Offset
	}
	return &Preset{
		Vehicle:   v,
		Behaviors: attach(v, arrive),
		Update: func(_ float64, ctx Context) error {
			if ctx.LeaderPosition == nil {
				return nil
			}
			off := offset
			if ctx.LeaderRotation != nil {
				off = ctx.LeaderRotation.Rotate(off)
			}
			arrive.Target = ctx.LeaderPosition.Add(off)
			return nil
		},
	}
}
