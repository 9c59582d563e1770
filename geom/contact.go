package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact is a single contact point between two convex shapes, as produced
// by a narrow-phase collision test
type Contact struct {
	// Position of the contact in world space
	Position mgl64.Vec3
	// Normal of the contact, unit length, pointing from the first shape
	// toward the second
	Normal mgl64.Vec3
	// Penetration depth along the normal, positive when the shapes overlap
	Penetration float64
}

// TangentBasis generates two unit tangents orthogonal to normal. The
// reference axis is X, falling back to Y when the normal is nearly
// parallel to X, so the basis is deterministic for a given normal.
func TangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	tangent1 := mgl64.Vec3{1, 0, 0}
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}

// ContactFrame builds the local frame of a contact: the origin sits at the
// contact position and the Z axis aligns with the contact normal. The X
// and Y axes span the contact plane via TangentBasis.
func ContactFrame(contact Contact) Transform {
	tangent1, tangent2 := TangentBasis(contact.Normal)
	rotation := mgl64.Mat4ToQuat(mgl64.Mat3FromCols(tangent1, tangent2, contact.Normal).Mat4())

	return TransformAt(contact.Position, rotation)
}
