package quadraster

import (
	"sync/atomic"

	"github.com/gogpu/quadraster/internal/parallel"
)

// FrameStats describes the work done for one presented frame.
type FrameStats struct {
	// Frame is the number of frames presented so far, starting at 1.
	Frame uint64

	// Shapes is the number of shapes submitted for the frame.
	Shapes int

	// Deliveries is the number of shape deliveries to leaf cells. A shape
	// overlapping k cells counts k times.
	Deliveries int

	// LeavesTouched is the number of distinct leaf cells that received work.
	LeavesTouched int

	// Faults is the number of deliveries whose rasterization panicked.
	Faults int

	// Backlog is the number of deliveries still queued when Present began
	// waiting for the frame.
	Backlog int
}

// frameTally accumulates FrameStats while a frame is being built.
// All fields are updated concurrently by submitters and workers.
type frameTally struct {
	shapes     atomic.Int64
	deliveries atomic.Int64
	faults     atomic.Int64
	touched    *parallel.DirtySet
}

// reset clears the tally for a partition with the given number of leaves.
func (t *frameTally) reset(leaves int) {
	t.shapes.Store(0)
	t.deliveries.Store(0)
	t.faults.Store(0)
	if t.touched == nil || t.touched.Size() != leaves {
		t.touched = parallel.NewDirtySet(leaves)
	} else {
		t.touched.Clear()
	}
}

// snapshot returns the tally as FrameStats.
func (t *frameTally) snapshot(frame uint64, backlog int) FrameStats {
	return FrameStats{
		Frame:         frame,
		Shapes:        int(t.shapes.Load()),
		Deliveries:    int(t.deliveries.Load()),
		LeavesTouched: t.touched.Count(),
		Faults:        int(t.faults.Load()),
		Backlog:       backlog,
	}
}
