package steering

import "github.com/go-gl/mathgl/mgl64"

type Kind string

const (
	KindSeek       Kind = "seek"
	KindFlee       Kind = "flee"
	KindArrive     Kind = "arrive"
	KindWander     Kind = "wander"
	KindFollowPath Kind = "follow_path"
	KindSeparation Kind = "separation"
	KindAlignment  Kind = "alignment"
	KindCohesion   Kind = "cohesion"
)

// Settings are shared by every behavior. Inactive behaviors contribute no
// force; Weight scales the force of active ones.
type Settings struct {
	Active bool
	Weight float64
}

func (s *Settings) Config() *Settings { return s }

type Behavior interface {
	Kind() Kind
	Config() *Settings
}

func defaultSettings() Settings {
	return Settings{Active: true, Weight: 1}
}

type Seek struct {
	Settings
	Target mgl64.Vec3
}

func NewSeek() *Seek { return &Seek{Settings: defaultSettings()} }

func (*Seek) Kind() Kind { return KindSeek }

// Flee steers away from Target while it is within PanicDistance.
type Flee struct {
	Settings
	Target        mgl64.Vec3
	PanicDistance float64
}

func NewFlee() *Flee { return &Flee{Settings: defaultSettings(), PanicDistance: 10} }

func (*Flee) Kind() Kind { return KindFlee }

// Arrive slows down on approach. Tolerance is the distance at which the
// target counts as reached.
type Arrive struct {
	Settings
	Target       mgl64.Vec3
	Deceleration float64
	Tolerance    float64
}

func NewArrive() *Arrive { return &Arrive{Settings: defaultSettings(), Deceleration: 3} }

func (*Arrive) Kind() Kind { return KindArrive }

// Wander projects a circle of Radius at Distance ahead of the vehicle and
// jitters a target along it.
type Wander struct {
	Settings
	Radius   float64
	Distance float64
	Jitter   float64
}

func NewWander() *Wander {
	return &Wander{Settings: defaultSettings(), Radius: 1, Distance: 5, Jitter: 5}
}

func (*Wander) Kind() Kind { return KindWander }

type FollowPath struct {
	Settings
	Path                 *Path
	NextWaypointDistance float64
}

func NewFollowPath(path *Path) *FollowPath {
	return &FollowPath{Settings: defaultSettings(), Path: path, NextWaypointDistance: 1}
}

func (*FollowPath) Kind() Kind { return KindFollowPath }

// Flocking behaviors read the vehicle's neighborhood, so they only act when
// UpdateNeighborhood is set on the owner.

type Separation struct{ Settings }

func NewSeparation() *Separation { return &Separation{Settings: defaultSettings()} }

func (*Separation) Kind() Kind { return KindSeparation }

type Alignment struct{ Settings }

func NewAlignment() *Alignment { return &Alignment{Settings: defaultSettings()} }

func (*Alignment) Kind() Kind { return KindAlignment }

type Cohesion struct{ Settings }

func NewCohesion() *Cohesion { return &Cohesion{Settings: defaultSettings()} }

func (*Cohesion) Kind() Kind { return KindCohesion }
