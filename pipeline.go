package manifold

import (
	"sync"

	"github.com/akmonengine/manifold/geom"
	"github.com/akmonengine/manifold/support"
)

// PatchPair is one narrow-phase result to compute a contact patch for.
type PatchPair struct {
	Shape1  support.Shape
	Tf1     geom.Transform
	Shape2  support.Shape
	Tf2     geom.Transform
	Contact geom.Contact
}

// ComputePatches computes the contact patch of every pair, spreading the
// work over workersCount goroutines. Each worker owns one solver
// configured from the request, so no scratch buffer is shared between
// goroutines, and the patch at index i always comes from pairs[i]
// whatever the worker count.
func ComputePatches(pairs []PatchPair, request ContactPatchRequest, workersCount int) ([]ContactPatch, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	if workersCount < 1 {
		workersCount = 1
	}

	patches := make([]ContactPatch, len(pairs))

	var wg sync.WaitGroup
	pairsCount := len(pairs)
	chunkSize := (pairsCount + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			// the request was validated above
			solver, _ := NewContactPatchSolver(request)
			for i := start; i < end; i++ {
				pair := &pairs[i]
				solver.ComputePatch(pair.Shape1, pair.Tf1, pair.Shape2, pair.Tf2, pair.Contact, &patches[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, pairsCount))
	}
	wg.Wait()

	return patches, nil
}
