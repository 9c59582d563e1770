package manifold

import "fmt"

const (
	// DefaultMaxPatchSize bounds patches to hexagons, enough for stable
	// stacking without flooding contact solvers with points.
	DefaultMaxPatchSize = 6
	// DefaultNumSamplesCurvedShapes samples curved support regions with
	// hexagonal approximations.
	DefaultNumSamplesCurvedShapes = 6
	// DefaultPatchTolerance merges sampled points closer than a
	// millimeter at unit scale.
	DefaultPatchTolerance = 1e-3
)

// ContactPatchRequest carries the parameters of a ContactPatchSolver.
// A single request can configure any number of solvers.
type ContactPatchRequest struct {
	// MaxPatchSize is the maximum number of points in a computed patch,
	// greater than 3.
	MaxPatchSize int
	// NumSamplesCurvedShapes is the number of boundary samples taken on
	// curved support regions, greater than 3.
	NumSamplesCurvedShapes int
	// PatchTolerance is the distance under which two sampled points
	// merge, strictly positive.
	PatchTolerance float64
}

// DefaultContactPatchRequest returns a request with the default
// parameters.
func DefaultContactPatchRequest() ContactPatchRequest {
	return ContactPatchRequest{
		MaxPatchSize:           DefaultMaxPatchSize,
		NumSamplesCurvedShapes: DefaultNumSamplesCurvedShapes,
		PatchTolerance:         DefaultPatchTolerance,
	}
}

// Validate checks the request parameters against their contracts.
func (r ContactPatchRequest) Validate() error {
	if r.MaxPatchSize <= 3 {
		return fmt.Errorf("invalid max patch size: %d (expected > 3)", r.MaxPatchSize)
	}
	if r.NumSamplesCurvedShapes <= 3 {
		return fmt.Errorf("invalid curved shapes samples count: %d (expected > 3)", r.NumSamplesCurvedShapes)
	}
	if r.PatchTolerance <= 0 {
		return fmt.Errorf("invalid patch tolerance: %v (expected > 0)", r.PatchTolerance)
	}

	return nil
}
