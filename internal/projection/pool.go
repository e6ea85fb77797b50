package projection

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// rangeJob is a contiguous slice of vertex indices for one worker.
type rangeJob struct {
	start int
	end   int
}

// ProjectAllParallel projects vertices across a worker pool. Results are
// written index-for-index into a shared output slice, so the returned points
// are identical to the sequential ProjectAll for the same inputs. workers <= 0
// uses GOMAXPROCS. Cancellation via ctx aborts remaining ranges; the partial
// result is discarded.
func ProjectAllParallel(ctx context.Context, vertices []mgl64.Vec3, model, viewProj mgl64.Mat4, viewportW, viewportH, workers int) ([]Point, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(vertices) {
		workers = len(vertices)
	}
	if workers <= 1 {
		return ProjectAll(vertices, model, viewProj, viewportW, viewportH)
	}

	points := make([]Point, len(vertices))
	jobs := make(chan rangeJob, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range jobs {
				for i := job.start; i < job.end; i++ {
					select {
					case <-ctx.Done():
						errs[id] = ctx.Err()
						return
					default:
					}
					p, err := Project(vertices[i], model, viewProj, viewportW, viewportH)
					if err != nil {
						errs[id] = fmt.Errorf("vertex %d: %w", i, err)
						return
					}
					points[i] = p
				}
			}
		}(w)
	}

	chunk := (len(vertices) + workers - 1) / workers
	for start := 0; start < len(vertices); start += chunk {
		end := start + chunk
		if end > len(vertices) {
			end = len(vertices)
		}
		jobs <- rangeJob{start: start, end: end}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
