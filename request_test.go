package manifold

import "testing"

func TestContactPatchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request ContactPatchRequest
		wantErr bool
	}{
		{"default", DefaultContactPatchRequest(), false},
		{"large", ContactPatchRequest{MaxPatchSize: 12, NumSamplesCurvedShapes: 32, PatchTolerance: 1e-6}, false},
		{"patch size at lower bound", ContactPatchRequest{MaxPatchSize: 3, NumSamplesCurvedShapes: 6, PatchTolerance: 1e-3}, true},
		{"samples count at lower bound", ContactPatchRequest{MaxPatchSize: 6, NumSamplesCurvedShapes: 3, PatchTolerance: 1e-3}, true},
		{"zero tolerance", ContactPatchRequest{MaxPatchSize: 6, NumSamplesCurvedShapes: 6, PatchTolerance: 0}, true},
		{"negative tolerance", ContactPatchRequest{MaxPatchSize: 6, NumSamplesCurvedShapes: 6, PatchTolerance: -1e-3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewContactPatchSolverRejectsInvalidRequest(t *testing.T) {
	if _, err := NewContactPatchSolver(ContactPatchRequest{}); err == nil {
		t.Error("NewContactPatchSolver() accepted a zero request")
	}
}

func TestConfigureReservesBufferCapacity(t *testing.T) {
	request := DefaultContactPatchRequest()
	request.NumSamplesCurvedShapes = 24

	solver, err := NewContactPatchSolver(request)
	if err != nil {
		t.Fatalf("NewContactPatchSolver() error = %v", err)
	}

	for i := range solver.buffers {
		if got := cap(solver.buffers[i].Points()); got < 48 {
			t.Errorf("buffer %d capacity = %d, want >= 48", i, got)
		}
	}
}
