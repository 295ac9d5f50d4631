package ai

import (
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/gamepresets/prefabs"
)

// Limits are the vehicle scalars shared by every preset. Nil fields take
// the preset's default; an explicit zero is kept.
type Limits struct {
	Position mgl64.Vec3 `yaml:"position,omitempty,flow"`
	MaxSpeed *float64   `yaml:"max_speed,omitempty"`
	MaxForce *float64   `yaml:"max_force,omitempty"`
	Mass     *float64   `yaml:"mass,omitempty"`
}

type GuardConfig struct {
	Limits          `yaml:",inline"`
	PatrolWaypoints []mgl64.Vec3 `yaml:"patrol_waypoints,omitempty"`
	DetectionRadius *float64     `yaml:"detection_radius,omitempty"`
	ChaseSpeed      *float64     `yaml:"chase_speed,omitempty"`
	PatrolSpeed     *float64     `yaml:"patrol_speed,omitempty"`
}

// PredatorConfig wanders when PatrolWaypoints is empty.
type PredatorConfig struct {
	Limits          `yaml:",inline"`
	PatrolWaypoints []mgl64.Vec3 `yaml:"patrol_waypoints,omitempty"`
	PursuitSpeed    *float64     `yaml:"pursuit_speed,omitempty"`
	DetectionRadius *float64     `yaml:"detection_radius,omitempty"`
}

type PreyConfig struct {
	Limits       `yaml:",inline"`
	WanderRadius *float64 `yaml:"wander_radius,omitempty"`
	FleeDistance *float64 `yaml:"flee_distance,omitempty"`
	FleeSpeed    *float64 `yaml:"flee_speed,omitempty"`
}

type FlockMemberConfig struct {
	Limits           `yaml:",inline"`
	SeparationWeight *float64 `yaml:"separation_weight,omitempty"`
	AlignmentWeight  *float64 `yaml:"alignment_weight,omitempty"`
	CohesionWeight   *float64 `yaml:"cohesion_weight,omitempty"`
	NeighborRadius   *float64 `yaml:"neighbor_radius,omitempty"`
}

type FollowerConfig struct {
	Limits         `yaml:",inline"`
	Offset         *mgl64.Vec3 `yaml:"offset,omitempty,flow"`
	FollowDistance *float64    `yaml:"follow_distance,omitempty"`
}

type SpawnArea struct {
	Min mgl64.Vec3 `yaml:"min,flow"`
	Max mgl64.Vec3 `yaml:"max,flow"`
}

type FlockConfig struct {
	Member FlockMemberConfig `yaml:"member,omitempty"`
	Count  int               `yaml:"count"`
	Spawn  *SpawnArea        `yaml:"spawn,omitempty"`
}

type Table struct {
	Guard       GuardConfig       `yaml:"guard"`
	Predator    PredatorConfig    `yaml:"predator"`
	Prey        PreyConfig        `yaml:"prey"`
	FlockMember FlockMemberConfig `yaml:"flock_member"`
	Follower    FollowerConfig    `yaml:"follower"`
	Flock       struct {
		Spawn SpawnArea `yaml:"spawn"`
	} `yaml:"flock"`
}

const tableFile = "ai.yaml"

var defaults = prefabs.MustLoadSpec[*Table](tableFile)

func LoadTable(fsys fs.FS) (*Table, error) {
	return prefabs.LoadSpec[*Table](fsys, tableFile)
}

func DefaultTable() *Table {
	return defaults
}

// pick returns v when set, otherwise def. Both may be nil when a custom
// table leaves a field out; val reads those as zero.
func pick[T any](v, def *T) *T {
	if v != nil {
		return v
	}
	return def
}

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func (l Limits) withDefaults(def Limits) Limits {
	l.MaxSpeed = pick(l.MaxSpeed, def.MaxSpeed)
	l.MaxForce = pick(l.MaxForce, def.MaxForce)
	l.Mass = pick(l.Mass, def.Mass)
	return l
}

func (c GuardConfig) withDefaults(def GuardConfig) GuardConfig {
	c.Limits = c.Limits.withDefaults(def.Limits)
	c.DetectionRadius = pick(c.DetectionRadius, def.DetectionRadius)
	c.ChaseSpeed = pick(c.ChaseSpeed, def.ChaseSpeed)
	c.PatrolSpeed = pick(c.PatrolSpeed, def.PatrolSpeed)
	return c
}

func (c PredatorConfig) withDefaults(def PredatorConfig) PredatorConfig {
	c.Limits = c.Limits.withDefaults(def.Limits)
	c.PursuitSpeed = pick(c.PursuitSpeed, def.PursuitSpeed)
	c.DetectionRadius = pick(c.DetectionRadius, def.DetectionRadius)
	return c
}

func (c PreyConfig) withDefaults(def PreyConfig) PreyConfig {
	c.Limits = c.Limits.withDefaults(def.Limits)
	c.WanderRadius = pick(c.WanderRadius, def.WanderRadius)
	c.FleeDistance = pick(c.FleeDistance, def.FleeDistance)
	c.FleeSpeed = pick(c.FleeSpeed, def.FleeSpeed)
	return c
}

func (c FlockMemberConfig) withDefaults(def FlockMemberConfig) FlockMemberConfig {
	c.Limits = c.Limits.withDefaults(def.Limits)
	c.SeparationWeight = pick(c.SeparationWeight, def.SeparationWeight)
	c.AlignmentWeight = pick(c.AlignmentWeight, def.AlignmentWeight)
	c.CohesionWeight = pick(c.CohesionWeight, def.CohesionWeight)
	c.NeighborRadius = pick(c.NeighborRadius, def.NeighborRadius)
	return c
}

func (c FollowerConfig) withDefaults(def FollowerConfig) FollowerConfig {
	c.Limits = c.Limits.withDefaults(def.Limits)
	c.Offset = pick(c.Offset, def.Offset)
	c.FollowDistance = pick(c.FollowDistance, def.FollowDistance)
	return c
}
