package support

import (
	"math"

	"github.com/akmonengine/manifold/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// BuildConvexHull reorders the points of the set into their convex hull,
// counter-clockwise starting from the lowest point, and drops interior
// points. Points closer than tol to an earlier point are merged first.
//
// The hull is built in place by gift wrapping: from the current hull
// point, the next one is the remaining candidate with every other point
// to its left, ties on collinear candidates going to the farthest.
// Sets of two points or fewer are only deduplicated.
func BuildConvexHull(set *SupportSet, tol float64) {
	points := dedupPoints(set.points, tol)
	set.points = points

	numPoints := len(points)
	if numPoints <= 2 {
		return
	}

	lowest := 0
	for i := 1; i < numPoints; i++ {
		if points[i].Y() < points[lowest].Y() ||
			(points[i].Y() == points[lowest].Y() && points[i].X() < points[lowest].X()) {
			lowest = i
		}
	}
	points[0], points[lowest] = points[lowest], points[0]

	hullSize := 1
	for {
		last := points[hullSize-1]
		// next == -1 closes the hull back onto the starting point
		next := -1
		best := points[0]
		for i := hullSize; i < numPoints; i++ {
			side := cross2(best.Sub(last), points[i].Sub(last))
			if side < 0 || (side == 0 && points[i].Sub(last).LenSqr() > best.Sub(last).LenSqr()) {
				next = i
				best = points[i]
			}
		}
		if next == -1 {
			break
		}

		points[hullSize], points[next] = points[next], points[hullSize]
		hullSize++
	}

	set.points = points[:hullSize]
}

// dedupPoints compacts the slice in place, keeping the first of any group
// of points within tol of each other and preserving order.
func dedupPoints(points []mgl64.Vec2, tol float64) []mgl64.Vec2 {
	kept := points[:0]
	for _, p := range points {
		duplicate := false
		for _, q := range kept {
			if p.Sub(q).Len() <= tol {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, p)
		}
	}

	return kept
}

func cross2(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// PolytopeSupportSet fills set with the support set of a convex polytope
// given by its vertices, expressed in the frame set.Tf is relative to.
//
// Every vertex whose projection onto the sampling direction lies within
// tol of the maximum belongs to the support region. The selected vertices
// are projected onto the reference plane and reduced to their convex
// hull, so the result is a counter-clockwise face, edge or single point.
func PolytopeSupportSet(vertices []mgl64.Vec3, set *SupportSet, tol float64) {
	set.Clear()

	dir := set.Normal()
	supportValue := math.Inf(-1)
	for _, v := range vertices {
		supportValue = math.Max(supportValue, v.Dot(dir))
	}

	for _, v := range vertices {
		if v.Dot(dir) > supportValue-tol {
			set.AddPoint(set.Project(v))
		}
	}

	BuildConvexHull(set, tol)
}

// DiscSupportSet fills set with a polygonal approximation of a disc of
// the given center, normal and radius, expressed in the frame set.Tf is
// relative to.
//
// The rim is sampled counter-clockwise around the disc normal at
// numSamples evenly spaced angles, then projected onto the reference
// plane and reduced to its convex hull. Shapes with circular support
// regions (cylinder caps, cone bases) sample their flat side with it.
func DiscSupportSet(center, normal mgl64.Vec3, radius float64, set *SupportSet, numSamples int, tol float64) {
	set.Clear()

	tangent1, tangent2 := geom.TangentBasis(normal)
	for i := 0; i < numSamples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(numSamples)
		p := center.Add(tangent1.Mul(radius * math.Cos(theta))).Add(tangent2.Mul(radius * math.Sin(theta)))
		set.AddPoint(set.Project(p))
	}

	BuildConvexHull(set, tol)
}
