package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Position of the tile in the submitted slice
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Tile   *Tile
	Stats  RenderStats
}

// TileRenderFunc renders one tile and reports its statistics
type TileRenderFunc func(tile *Tile) RenderStats

// WorkerPool renders tiles in parallel. Idle workers pull the next queued
// tile, so cheap and expensive tiles balance out across workers.
type WorkerPool struct {
	numWorkers int
	render     TileRenderFunc
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	render      TileRenderFunc
	taskQueue   <-chan TileTask
	resultQueue chan<- TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, render TileRenderFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		render:     render,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders all tiles and blocks until they are done or ctx is cancelled.
// onResult is called from the calling goroutine, one tile at a time.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, onResult func(TileResult)) error {
	taskQueue := make(chan TileTask, len(tiles))
	resultQueue := make(chan TileResult, len(tiles)) // Buffer for all results so workers never block

	for i, tile := range tiles {
		taskQueue <- TileTask{Tile: tile, TaskID: i}
	}
	close(taskQueue) // No more tasks

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < wp.numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			render:      wp.render,
			taskQueue:   taskQueue,
			resultQueue: resultQueue,
		}
		g.Go(func() error {
			return worker.run(gctx)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(resultQueue)
	}()

	for result := range resultQueue {
		if onResult != nil {
			onResult(result)
		}
	}

	return <-done
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context) error {
	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Tile:   task.Tile,
			Stats:  w.render(task.Tile),
		}
	}
	return nil
}
