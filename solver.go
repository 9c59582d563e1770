// Package manifold computes contact patches between convex shapes.
//
// Narrow-phase collision detection reduces the interface between two
// touching shapes to a single contact point, normal and penetration
// depth. That representation loses the extent of face-on-face or
// edge-on-face contacts, which physical response needs to resist torque.
// Given one such contact, the solver recovers the full region:
//
//  1. build an orthonormal contact frame with the Z axis along the
//     contact normal
//  2. sample the support set of each shape along the normal, both
//     expressed in the contact frame plane
//  3. clip the first support set against the second with the
//     Sutherland-Hodgman algorithm
//  4. reduce the intersection polygon to a bounded number of points
//
// The patch lies on the contact plane, halfway through the overlap
// region; PointOnShape1 and PointOnShape2 move its points onto either
// surface.
//
// References:
//   - Sutherland, Hodgman: "Reentrant Polygon Clipping" (1974)
//   - Ericson: "Real-Time Collision Detection" (2005), ch. 8.3
package manifold

import (
	"github.com/akmonengine/manifold/geom"
	"github.com/akmonengine/manifold/support"
)

// defaultPreallocatedSupports is the minimum point capacity of each
// scratch buffer.
const defaultPreallocatedSupports = 16

// ContactPatchSolver computes contact patches from single contact
// points.
//
// The solver owns three scratch support sets reused across calls, so a
// configured instance computes patches without allocating. The shared
// buffers make one instance unsafe for concurrent use; parallel
// pipelines run one solver per worker, each configured from the same
// request.
type ContactPatchSolver struct {
	maxPatchSize           int
	numSamplesCurvedShapes int
	patchTolerance         float64

	supportFuncShape1 support.Func
	supportFuncShape2 support.Func

	// buffers 0 and 1 alternate as the clipping subject, buffer 2 holds
	// the clipping polygon
	buffers   [3]support.SupportSet
	idCurrent int

	addedToPatch []bool
}

// NewContactPatchSolver creates a solver configured from the request.
func NewContactPatchSolver(request ContactPatchRequest) (*ContactPatchSolver, error) {
	solver := &ContactPatchSolver{}
	if err := solver.Configure(request); err != nil {
		return nil, err
	}

	return solver, nil
}

// Configure applies the request parameters and grows the scratch buffers
// to the capacity the sampling may need, twice the curved shapes sample
// count at least.
func (s *ContactPatchSolver) Configure(request ContactPatchRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	s.maxPatchSize = request.MaxPatchSize
	s.numSamplesCurvedShapes = request.NumSamplesCurvedShapes
	s.patchTolerance = request.PatchTolerance

	capacity := defaultPreallocatedSupports
	if 2*request.NumSamplesCurvedShapes > capacity {
		capacity = 2 * request.NumSamplesCurvedShapes
	}
	for i := range s.buffers {
		s.buffers[i].Reserve(capacity)
	}
	s.buffers[0].Direction = support.DirectionDefault
	s.buffers[2].Direction = support.DirectionInverted

	return nil
}

// ComputePatch computes the contact patch between two shapes from a
// single contact and writes it into patch.
//
// Algorithm:
//  1. the contact frame becomes the patch's transform
//  2. when either shape is strictly convex its support set is a single
//     point, so the patch is the contact position alone
//  3. otherwise both support sets are sampled, shape 1 along the contact
//     normal and shape 2 against it, and clipped against each other
//  4. an intersection of more than maxPatchSize points is reduced
//
// A degenerate sampling or an empty intersection falls back to the
// single contact position, never to an error.
func (s *ContactPatchSolver) ComputePatch(shape1 support.Shape, tf1 geom.Transform, shape2 support.Shape, tf2 geom.Transform, contact geom.Contact, patch *ContactPatch) {
	tfc := geom.ContactFrame(contact)

	patch.Tf = tfc
	patch.Direction = support.DirectionDefault
	patch.Penetration = contact.Penetration
	patch.Clear()

	if shape1.StrictlyConvex() || shape2.StrictlyConvex() {
		patch.AddPoint(patch.Project(contact.Position))
		return
	}

	s.reset(shape1, tf1, shape2, tf2, tfc)

	s.supportFuncShape1(s.current(), s.numSamplesCurvedShapes, s.patchTolerance)
	s.supportFuncShape2(s.clipper(), s.numSamplesCurvedShapes, s.patchTolerance)

	if s.current().Size() <= 1 || s.clipper().Size() <= 1 {
		patch.AddPoint(patch.Project(contact.Position))
		return
	}

	s.clip()

	if s.current().Size() <= 1 {
		patch.AddPoint(patch.Project(contact.Position))
		return
	}

	s.reduce(patch)
}

// reset prepares the scratch buffers for a new contact: each sampling
// buffer receives the contact frame expressed in its shape's local
// frame, and each shape's sampling routine is bound once for the whole
// call.
func (s *ContactPatchSolver) reset(shape1 support.Shape, tf1 geom.Transform, shape2 support.Shape, tf2 geom.Transform, tfc geom.Transform) {
	s.idCurrent = 0

	for i := range s.buffers {
		s.buffers[i].Clear()
	}

	s.current().Tf = tfc.RelativeTo(tf1)
	s.current().Direction = support.DirectionDefault
	s.supportFuncShape1 = shape1.SupportSet

	s.clipper().Tf = tfc.RelativeTo(tf2)
	s.clipper().Direction = support.DirectionInverted
	s.supportFuncShape2 = shape2.SupportSet
}

// current returns the buffer holding the subject polygon.
func (s *ContactPatchSolver) current() *support.SupportSet {
	return &s.buffers[s.idCurrent]
}

// previous returns the other alternating buffer.
func (s *ContactPatchSolver) previous() *support.SupportSet {
	return &s.buffers[1-s.idCurrent]
}

// clipper returns the buffer holding the clipping polygon.
func (s *ContactPatchSolver) clipper() *support.SupportSet {
	return &s.buffers[2]
}
