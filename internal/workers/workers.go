package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine at the same moment and blocks
// until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
	)

	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			worker.Run(ctx)
		}()
	}

	close(start)
	wg.Wait()
}
