package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and orientation in 3D space.
// InverseRotation caches the rotation's inverse; both constructors keep it
// in sync, and code building a Transform by hand must do the same.
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position:        mgl64.Vec3{0, 0, 0},
		Rotation:        mgl64.QuatIdent(),
		InverseRotation: mgl64.QuatIdent(),
	}
}

// TransformAt creates a transform at the given position and orientation
func TransformAt(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	return Transform{
		Position:        position,
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}

// Apply transforms a point from local space into the parent space
func (t Transform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// ApplyInverse transforms a point from the parent space into local space
func (t Transform) ApplyInverse(p mgl64.Vec3) mgl64.Vec3 {
	return t.InverseRotation.Rotate(p.Sub(t.Position))
}

// RelativeTo expresses t in the local frame of base. The result r
// satisfies base.Apply(r.Apply(p)) == t.Apply(p) for any point p.
func (t Transform) RelativeTo(base Transform) Transform {
	rotation := base.InverseRotation.Mul(t.Rotation)

	return Transform{
		Position:        base.InverseRotation.Rotate(t.Position.Sub(base.Position)),
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}
