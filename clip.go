package manifold

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// machineEpsilon is the difference between 1.0 and the next larger
// float64.
const machineEpsilon = 0x1p-52

// clip intersects the subject polygon held by the current buffer with
// the clipping polygon, one clipping edge at a time. Each pass walks the
// subject's edges against the half-plane left of the directed clipping
// edge and writes the surviving points into the other alternating
// buffer, which becomes the subject of the next pass. A pass producing
// no points ends the loop, the intersection cannot grow back.
func (s *ContactPatchSolver) clip() {
	clipper := s.clipper()
	clipperSize := clipper.Size()

	for i := 0; i < clipperSize; i++ {
		a := clipper.Point(i)
		b := clipper.Point((i + 1) % clipperSize)

		s.idCurrent = 1 - s.idCurrent
		current := s.current()
		previous := s.previous()
		current.Clear()

		previousSize := previous.Size()
		for j := 0; j < previousSize; j++ {
			vCurrent := previous.Point(j)
			vNext := previous.Point((j + 1) % previousSize)

			if insideClippingRegion(vCurrent, a, b) {
				current.AddPoint(vCurrent)
				if !insideClippingRegion(vNext, a, b) {
					current.AddPoint(segmentLineIntersection(a, b, vCurrent, vNext))
				}
			} else if insideClippingRegion(vNext, a, b) {
				current.AddPoint(segmentLineIntersection(a, b, vCurrent, vNext))
			}
		}

		if current.Size() == 0 {
			break
		}
	}
}

// insideClippingRegion reports whether p lies on or left of the directed
// line a -> b.
func insideClippingRegion(p, a, b mgl64.Vec2) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)

	return ab.X()*ap.Y()-ab.Y()*ap.X() >= 0
}

// segmentLineIntersection computes where the segment c -> d crosses the
// infinite line through a -> b. A segment parallel to the line within
// machine precision returns d instead of dividing by near-zero. The
// interpolation parameter is clamped so numerical overshoot cannot place
// the point outside the segment.
func segmentLineIntersection(a, b, c, d mgl64.Vec2) mgl64.Vec2 {
	ab := b.Sub(a)
	n := mgl64.Vec2{-ab.Y(), ab.X()}

	denom := n.Dot(c.Sub(d))
	if math.Abs(denom) < machineEpsilon {
		return d
	}

	alpha := n.Dot(a.Sub(d)) / denom
	alpha = math.Max(0, math.Min(1, alpha))

	return c.Mul(alpha).Add(d.Mul(1 - alpha))
}
