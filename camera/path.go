package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidSegments = errors.New("camera: segments must be positive")

// CircularPath returns segments points on a horizontal circle around center,
// raised by height. The loop is not closed; pair it with a closed rig.
func CircularPath(center mgl64.Vec3, radius, height float64, segments int) ([]mgl64.Vec3, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("camera: circular path %d: %w", segments, ErrInvalidSegments)
	}

	points := make([]mgl64.Vec3, 0, segments)
	for i := range segments {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		points = append(points, mgl64.Vec3{
			center.X() + math.Cos(angle)*radius,
			center.Y() + height,
			center.Z() + math.Sin(angle)*radius,
		})
	}
	return points, nil
}

// DollyPath returns segments+1 points from start to end. The midpoint is
// lifted by heightCurve along a half sine.
func DollyPath(start, end mgl64.Vec3, heightCurve float64, segments int) ([]mgl64.Vec3, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("camera: dolly path %d: %w", segments, ErrInvalidSegments)
	}

	points := make([]mgl64.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		p := start.Add(end.Sub(start).Mul(t))
		p[1] += math.Sin(t*math.Pi) * heightCurve
		points = append(points, p)
	}
	return points, nil
}

// CranePath rises endHeight above base while swinging out swingDistance
// along x.
func CranePath(base mgl64.Vec3, endHeight, swingDistance float64, segments int) ([]mgl64.Vec3, error) {
	if segments <= 0 {
		return nil, fmt.Errorf("camera: crane path %d: %w", segments, ErrInvalidSegments)
	}

	points := make([]mgl64.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, mgl64.Vec3{
			base.X() + math.Sin(t*math.Pi*0.5)*swingDistance,
			base.Y() + t*endHeight,
			base.Z(),
		})
	}
	return points, nil
}
