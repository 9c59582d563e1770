// Package support implements support sets: the convex polygonal regions of
// a shape's boundary lying farthest along a sampling direction.
//
// A support set generalizes the support point used by GJK-style collision
// detection. Where the support point is a single farthest vertex along a
// direction, the support set is the whole face, edge or point achieving
// the maximal projection, captured as a counter-clockwise polygon in the
// 2D coordinates of a reference plane. Intersecting the support sets of
// two touching shapes recovers their full contact region.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 5.1
package support

import (
	"github.com/akmonengine/manifold/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Direction tags which way along the reference frame's Z axis a support
// set was sampled.
type Direction int

const (
	// DirectionDefault samples along the frame's +Z axis.
	DirectionDefault Direction = iota
	// DirectionInverted samples along the frame's -Z axis.
	DirectionInverted
)

// SupportSet is the support region of a shape along a sampling direction,
// stored as a convex polygon in a 2D reference plane.
//
// Tf places the plane in the parent frame: the origin and X/Y axes span
// the plane, the Z axis carries the sampling direction (flipped when
// Direction is DirectionInverted). Points are kept in counter-clockwise
// winding order when the set is non-degenerate. The backing buffer is
// reused between samplings; Clear drops the points but keeps the
// capacity.
type SupportSet struct {
	Tf        geom.Transform
	Direction Direction
	// Penetration depth carried along when the set describes a contact
	// patch, positive when the shapes overlap
	Penetration float64

	points []mgl64.Vec2
}

// Size returns the number of points in the set.
func (s *SupportSet) Size() int {
	return len(s.points)
}

// Point returns the i-th 2D point of the set.
func (s *SupportSet) Point(i int) mgl64.Vec2 {
	return s.points[i]
}

// Points returns the backing point slice, valid until the next mutation.
func (s *SupportSet) Points() []mgl64.Vec2 {
	return s.points
}

// AddPoint appends a point given in plane coordinates.
func (s *SupportSet) AddPoint(p mgl64.Vec2) {
	s.points = append(s.points, p)
}

// Clear removes all points, keeping the allocated capacity.
func (s *SupportSet) Clear() {
	s.points = s.points[:0]
}

// Reserve grows the backing buffer to hold at least n points, without
// changing the current contents.
func (s *SupportSet) Reserve(n int) {
	if cap(s.points) < n {
		points := make([]mgl64.Vec2, len(s.points), n)
		copy(points, s.points)
		s.points = points
	}
}

// Normal returns the sampling direction in the parent frame: the plane's
// +Z axis for DirectionDefault, -Z for DirectionInverted.
func (s *SupportSet) Normal() mgl64.Vec3 {
	axis := s.Tf.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	if s.Direction == DirectionInverted {
		return axis.Mul(-1)
	}

	return axis
}

// Project maps a point of the parent frame onto the plane, returning its
// 2D plane coordinates.
func (s *SupportSet) Project(p mgl64.Vec3) mgl64.Vec2 {
	local := s.Tf.ApplyInverse(p)

	return mgl64.Vec2{local.X(), local.Y()}
}

// Point3D re-embeds the i-th 2D point into the parent frame.
func (s *SupportSet) Point3D(i int) mgl64.Vec3 {
	p := s.points[i]

	return s.Tf.Apply(mgl64.Vec3{p.X(), p.Y(), 0})
}

// PointOnShape1 returns the i-th point moved onto the first shape's
// surface. The plane sits midway through the overlap region, so the
// surface lies half the penetration depth along the normal.
func (s *SupportSet) PointOnShape1(i int) mgl64.Vec3 {
	return s.Point3D(i).Add(s.Normal().Mul(s.Penetration / 2))
}

// PointOnShape2 returns the i-th point moved onto the second shape's
// surface, half the penetration depth against the normal.
func (s *SupportSet) PointOnShape2(i int) mgl64.Vec3 {
	return s.Point3D(i).Sub(s.Normal().Mul(s.Penetration / 2))
}

// Shape is the capability a convex shape must expose for support set
// sampling.
type Shape interface {
	// StrictlyConvex reports whether the shape's boundary contains no
	// flat regions, in which case its support set along any direction is
	// a single point.
	StrictlyConvex() bool
	// SupportSet fills set with the counter-clockwise convex polygon
	// bounding the shape's support region along set.Normal(), expressed
	// in the 2D coordinates of set.Tf. The shape reads its own geometry
	// in the frame set.Tf is relative to. numSamples bounds the number
	// of boundary samples taken on curved regions; tol merges
	// near-duplicate points.
	SupportSet(set *SupportSet, numSamples int, tol float64)
}

// Func samples the support set of a bound shape. Binding a shape's
// SupportSet method once per solve turns every later sampling call into a
// plain function call instead of repeated interface dispatch.
type Func func(set *SupportSet, numSamples int, tol float64)
