package manifold

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// reduce copies the clipped intersection into the patch. An intersection
// within maxPatchSize points is copied as-is, keeping its winding. A
// larger one keeps, for each of maxPatchSize directions evenly spaced
// around the circle, the point farthest along that direction; the kept
// points are emitted in direction order, and a point selected by several
// directions is kept once, so the reduced patch can end up smaller than
// maxPatchSize.
func (s *ContactPatchSolver) reduce(patch *ContactPatch) {
	result := s.current()
	resultSize := result.Size()

	if resultSize <= s.maxPatchSize {
		for i := 0; i < resultSize; i++ {
			patch.AddPoint(result.Point(i))
		}
		return
	}

	s.addedToPatch = s.addedToPatch[:0]
	for i := 0; i < resultSize; i++ {
		s.addedToPatch = append(s.addedToPatch, false)
	}

	angleIncrement := 2 * math.Pi / float64(s.maxPatchSize)
	for i := 0; i < s.maxPatchSize; i++ {
		theta := float64(i) * angleIncrement
		dir := mgl64.Vec2{math.Cos(theta), math.Sin(theta)}

		selected := 0
		supportValue := result.Point(0).Dot(dir)
		for j := 1; j < resultSize; j++ {
			if value := result.Point(j).Dot(dir); value > supportValue {
				supportValue = value
				selected = j
			}
		}

		if !s.addedToPatch[selected] {
			s.addedToPatch[selected] = true
			patch.AddPoint(result.Point(selected))
		}
	}
}
