package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/manifold"
	"github.com/akmonengine/manifold/geom"
	"github.com/akmonengine/manifold/support"
	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned box given by its half extents.
type Box struct {
	corners []mgl64.Vec3
}

func NewBox(halfExtents mgl64.Vec3) *Box {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()
	corners := make([]mgl64.Vec3, 0, 8)
	for _, z := range []float64{-hz, hz} {
		for _, y := range []float64{-hy, hy} {
			for _, x := range []float64{-hx, hx} {
				corners = append(corners, mgl64.Vec3{x, y, z})
			}
		}
	}

	return &Box{corners: corners}
}

func (b *Box) StrictlyConvex() bool {
	return false
}

func (b *Box) SupportSet(set *support.SupportSet, numSamples int, tol float64) {
	support.PolytopeSupportSet(b.corners, set, tol)
}

// Cylinder stands on its local Z axis.
type Cylinder struct {
	Radius     float64
	HalfHeight float64
}

func (c *Cylinder) StrictlyConvex() bool {
	return false
}

func (c *Cylinder) SupportSet(set *support.SupportSet, numSamples int, tol float64) {
	dir := set.Normal()
	if math.Abs(dir.Z()) > 0.99 {
		center := mgl64.Vec3{0, 0, math.Copysign(c.HalfHeight, dir.Z())}
		support.DiscSupportSet(center, mgl64.Vec3{0, 0, 1}, c.Radius, set, numSamples, tol)
		return
	}

	set.Clear()
	lateral := mgl64.Vec3{dir.X(), dir.Y(), 0}.Normalize().Mul(c.Radius)
	set.AddPoint(set.Project(lateral.Add(mgl64.Vec3{0, 0, c.HalfHeight})))
	set.AddPoint(set.Project(lateral.Sub(mgl64.Vec3{0, 0, c.HalfHeight})))
	support.BuildConvexHull(set, tol)
}

func printPatch(label string, patch *manifold.ContactPatch) {
	fmt.Printf("🎯 %s\n", label)
	fmt.Printf("   points: %d, penetration: %.3f, normal: %v\n", patch.Size(), patch.Penetration, patch.Normal())
	for i := 0; i < patch.Size(); i++ {
		fmt.Printf("   point %d: plane=%v world=%v\n", i, patch.Point(i), patch.Point3D(i))
		fmt.Printf("      on shape 1: %v\n", patch.PointOnShape1(i))
		fmt.Printf("      on shape 2: %v\n", patch.PointOnShape2(i))
	}
	fmt.Println()
}

func main() {
	solver, err := manifold.NewContactPatchSolver(manifold.DefaultContactPatchRequest())
	if err != nil {
		fmt.Printf("solver configuration: %v\n", err)
		return
	}

	// A unit box resting on another, overlapping by 0.1.
	box := NewBox(mgl64.Vec3{0.5, 0.5, 0.5})
	tfBottom := geom.NewTransform()
	tfTop := geom.TransformAt(mgl64.Vec3{0, 0, 0.9}, mgl64.QuatIdent())
	faceContact := geom.Contact{
		Position:    mgl64.Vec3{0, 0, 0.45},
		Normal:      mgl64.Vec3{0, 0, 1},
		Penetration: 0.1,
	}

	patch := manifold.ContactPatch{}
	solver.ComputePatch(box, tfBottom, box, tfTop, faceContact, &patch)
	printPatch("box stacked on box", &patch)

	// The same box twisted by 45 degrees: the patch is the clipped
	// octagon, reduced to the configured maximum size.
	tfTwisted := geom.TransformAt(mgl64.Vec3{0, 0, 0.9}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}))
	solver.ComputePatch(box, tfBottom, box, tfTwisted, faceContact, &patch)
	printPatch("box twisted on box", &patch)

	// A box tilted 45 degrees around X touches the table on one edge.
	table := NewBox(mgl64.Vec3{2, 2, 2})
	tfTilted := geom.TransformAt(
		mgl64.Vec3{0, 0, math.Sqrt2/2 - 0.05},
		mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{1, 0, 0}),
	)
	tfTable := geom.TransformAt(mgl64.Vec3{0, 0, -2}, mgl64.QuatIdent())
	edgeContact := geom.Contact{
		Position:    mgl64.Vec3{0, 0, -0.025},
		Normal:      mgl64.Vec3{0, 0, -1},
		Penetration: 0.05,
	}

	solver.ComputePatch(box, tfTilted, table, tfTable, edgeContact, &patch)
	printPatch("box edge on table", &patch)

	// A whole batch at once, one solver per worker.
	cylinder := &Cylinder{Radius: 0.5, HalfHeight: 0.5}
	pairs := []manifold.PatchPair{
		{Shape1: box, Tf1: tfBottom, Shape2: box, Tf2: tfTop, Contact: faceContact},
		{Shape1: box, Tf1: tfTilted, Shape2: table, Tf2: tfTable, Contact: edgeContact},
		{
			Shape1: box,
			Tf1:    tfBottom,
			Shape2: cylinder,
			Tf2:    geom.TransformAt(mgl64.Vec3{0, 0, 0.95}, mgl64.QuatIdent()),
			Contact: geom.Contact{
				Position:    mgl64.Vec3{0, 0, 0.475},
				Normal:      mgl64.Vec3{0, 0, 1},
				Penetration: 0.05,
			},
		},
	}

	patches, err := manifold.ComputePatches(pairs, manifold.DefaultContactPatchRequest(), 2)
	if err != nil {
		fmt.Printf("batch computation: %v\n", err)
		return
	}

	fmt.Printf("⚙️  batch of %d pairs:\n", len(pairs))
	for i := range patches {
		fmt.Printf("   pair %d: %d contact points\n", i, patches[i].Size())
	}
}
