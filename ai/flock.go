package ai

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/steering"
)

func NewFlockMember(cfg FlockMemberConfig) *Preset {
	return DefaultTable().NewFlockMember(cfg)
}

func (t *Table) NewFlockMember(cfg FlockMemberConfig) *Preset {
	cfg = cfg.withDefaults(t.FlockMember)
	v := newVehicle(cfg.Limits)
	v.UpdateNeighborhood = true
	v.NeighborhoodRadius = val(cfg.NeighborRadius)

	separation := steering.NewSeparation()
	separation.Weight = val(cfg.SeparationWeight)
	alignment := steering.NewAlignment()
	alignment.Weight = val(cfg.AlignmentWeight)
	cohesion := steering.NewCohesion()
	cohesion.Weight = val(cfg.CohesionWeight)

	wander := steering.NewWander()
	wander.Weight = 0.5
	wander.Radius = 1
	wander.Distance = 3
	wander.Jitter = 1

	return &Preset{
		Vehicle:   v,
		Behaviors: attach(v, separation, alignment, cohesion, wander),
	}
}

func NewFlock(cfg FlockConfig, rng *rand.Rand) ([]*Preset, error) {
	return DefaultTable().NewFlock(cfg, rng)
}

// NewFlock spawns cfg.Count members uniformly inside the spawn box. The
// member position in cfg is ignored.
func (t *Table) NewFlock(cfg FlockConfig, rng *rand.Rand) ([]*Preset, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("ai: flock of %d: %w", cfg.Count, ErrInvalidCount)
	}
	area := t.Flock.Spawn
	if cfg.Spawn != nil {
		area = *cfg.Spawn
	}

	members := make([]*Preset, 0, cfg.Count)
	for range cfg.Count {
		member := cfg.Member
		member.Position = uniform(rng, area)
		members = append(members, t.NewFlockMember(member))
	}
	return members, nil
}

func uniform(rng *rand.Rand, area SpawnArea) mgl64.Vec3 {
	var p mgl64.Vec3
	for i := range p {
		p[i] = area.Min[i] + rng.Float64()*(area.Max[i]-area.Min[i])
	}
	return p
}
