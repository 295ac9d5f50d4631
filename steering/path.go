package steering

import "github.com/go-gl/mathgl/mgl64"

// Path is an ordered list of waypoints with a cursor. A looping path wraps
// back to the first waypoint instead of finishing.
type Path struct {
	Loop      bool
	Waypoints []mgl64.Vec3
	index     int
}

func NewPath(loop bool, waypoints ...mgl64.Vec3) *Path {
	return &Path{Loop: loop, Waypoints: append([]mgl64.Vec3(nil), waypoints...)}
}

func (p *Path) Add(waypoint mgl64.Vec3) {
	p.Waypoints = append(p.Waypoints, waypoint)
}

// Current returns the waypoint under the cursor. It returns false for an
// empty path.
func (p *Path) Current() (mgl64.Vec3, bool) {
	if len(p.Waypoints) == 0 {
		return mgl64.Vec3{}, false
	}
	return p.Waypoints[p.index], true
}

func (p *Path) Finished() bool {
	if p.Loop {
		return false
	}
	return p.index >= len(p.Waypoints)-1
}

func (p *Path) Advance() {
	if len(p.Waypoints) == 0 {
		return
	}
	p.index++
	if p.index >= len(p.Waypoints) {
		if p.Loop {
			p.index = 0
		} else {
			p.index = len(p.Waypoints) - 1
		}
	}
}

func (p *Path) Clear() {
	p.Waypoints = nil
	p.index = 0
}
