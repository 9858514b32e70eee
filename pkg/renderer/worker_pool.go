package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a band of scanlines for the worker pool
type RowTask struct {
	TaskID   int          // For deterministic result accounting
	StartRow int          // First scanline, inclusive
	EndRow   int          // Last scanline, exclusive
	Frame    *Framebuffer // Shared framebuffer; bands never overlap
}

// RowResult contains the statistics from rendering one band
type RowResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel scanline rendering. Every pixel is an
// independent pure computation, so workers only share the read-only
// scene and disjoint slices of the framebuffer.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders row bands pulled from the shared task queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of
// workers, defaulting to the CPU count.
func NewWorkerPool(rt *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for the worst case of one task per scanline
	maxTasks := rt.config.Height

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   rt,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row band to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Bands are disjoint, so writing into the shared framebuffer
		// is race-free without locking.
		stats := w.raytracer.renderRows(task.Frame, task.StartRow, task.EndRow)
		w.resultQueue <- RowResult{TaskID: task.TaskID, Stats: stats}
	}
}

// rowBandSize is the number of scanlines per task. Small enough to keep
// all workers busy near the end of a frame, large enough that channel
// traffic stays negligible.
const rowBandSize = 16

// RenderParallel fans the frame out across the worker pool and merges
// the per-band statistics. The resulting framebuffer is byte-identical
// to a sequential Render of the same scene and config.
func (rt *Raytracer) RenderParallel() (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt, rt.config.NumWorkers)
	pool.Start()

	numTasks := 0
	for startRow := 0; startRow < rt.config.Height; startRow += rowBandSize {
		endRow := min(startRow+rowBandSize, rt.config.Height)
		pool.SubmitTask(RowTask{
			TaskID:   numTasks,
			StartRow: startRow,
			EndRow:   endRow,
			Frame:    fb,
		})
		numTasks++
	}

	var stats RenderStats
	for i := 0; i < numTasks; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	pool.Stop()

	return fb, stats
}
