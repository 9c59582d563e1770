package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Helper functions
func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNewTransform(t *testing.T) {
	transform := NewTransform()

	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 2, 3},
		{-5, 0.5, 10},
	}

	for _, p := range points {
		if got := transform.Apply(p); !vec3Equal(got, p, 1e-12) {
			t.Errorf("Apply(%v) = %v, want %v", p, got, p)
		}
		if got := transform.ApplyInverse(p); !vec3Equal(got, p, 1e-12) {
			t.Errorf("ApplyInverse(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestTransformApplyRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		transform Transform
		point     mgl64.Vec3
	}{
		{
			name:      "translation only",
			transform: TransformAt(mgl64.Vec3{1, 2, 3}, mgl64.QuatIdent()),
			point:     mgl64.Vec3{4, 5, 6},
		},
		{
			name:      "rotation 90 degrees around Z",
			transform: TransformAt(mgl64.Vec3{0, 0, 0}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})),
			point:     mgl64.Vec3{1, 0, 0},
		},
		{
			name:      "rotation and translation",
			transform: TransformAt(mgl64.Vec3{-2, 7, 0.5}, mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 1, 1}.Normalize())),
			point:     mgl64.Vec3{0.3, -4, 2},
		},
		{
			name:      "rotation 45 degrees around X",
			transform: TransformAt(mgl64.Vec3{10, 0, -3}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{1, 0, 0})),
			point:     mgl64.Vec3{0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := tt.transform.Apply(tt.point)
			back := tt.transform.ApplyInverse(world)

			if !vec3Equal(back, tt.point, 1e-9) {
				t.Errorf("ApplyInverse(Apply(%v)) = %v, want %v", tt.point, back, tt.point)
			}
		})
	}
}

func TestTransformApplyRotates(t *testing.T) {
	// 90 degrees around Z maps +X onto +Y
	transform := TransformAt(mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}))

	got := transform.Apply(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{1, 2, 1}

	if !vec3Equal(got, want, 1e-9) {
		t.Errorf("Apply((1,0,0)) = %v, want %v", got, want)
	}
}

func TestTransformRelativeTo(t *testing.T) {
	tests := []struct {
		name string
		base Transform
		tf   Transform
	}{
		{
			name: "identity base",
			base: NewTransform(),
			tf:   TransformAt(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(math.Pi/5, mgl64.Vec3{0, 1, 0})),
		},
		{
			name: "translated base",
			base: TransformAt(mgl64.Vec3{5, -1, 2}, mgl64.QuatIdent()),
			tf:   TransformAt(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})),
		},
		{
			name: "rotated base",
			base: TransformAt(mgl64.Vec3{0, 0, 0}, mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{1, 0, 0})),
			tf:   TransformAt(mgl64.Vec3{-4, 0.5, 9}, mgl64.QuatRotate(math.Pi/7, mgl64.Vec3{1, 1, 0}.Normalize())),
		},
		{
			name: "both transformed",
			base: TransformAt(mgl64.Vec3{3, 3, -3}, mgl64.QuatRotate(2*math.Pi/3, mgl64.Vec3{0, 1, 1}.Normalize())),
			tf:   TransformAt(mgl64.Vec3{1, -2, 0}, mgl64.QuatRotate(math.Pi/6, mgl64.Vec3{0, 0, 1})),
		},
		{
			name: "relative to itself",
			base: TransformAt(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})),
			tf:   TransformAt(mgl64.Vec3{1, 2, 3}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})),
		},
	}

	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0.5, -2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relative := tt.tf.RelativeTo(tt.base)

			// Composing base with the relative transform must recover tf
			for _, p := range points {
				got := tt.base.Apply(relative.Apply(p))
				want := tt.tf.Apply(p)

				if !vec3Equal(got, want, 1e-9) {
					t.Errorf("base.Apply(relative.Apply(%v)) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestTransformRelativeToItselfIsIdentity(t *testing.T) {
	transform := TransformAt(mgl64.Vec3{2, -1, 4}, mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0}))

	relative := transform.RelativeTo(transform)

	if !vec3Equal(relative.Position, mgl64.Vec3{0, 0, 0}, 1e-12) {
		t.Errorf("relative.Position = %v, want (0,0,0)", relative.Position)
	}

	p := mgl64.Vec3{1, 2, 3}
	if got := relative.Apply(p); !vec3Equal(got, p, 1e-9) {
		t.Errorf("relative.Apply(%v) = %v, want %v", p, got, p)
	}
}
