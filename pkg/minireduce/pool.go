package minireduce

import (
	"context"
	"errors"
	"sync"
)

// runPool runs fn for every task index in [0, numTasks) on at most numWorkers
// goroutines pulling from a shared queue, and returns once all of them are done.
// fn must only write state owned by its task index. Tasks dequeued after ctx is
// done are skipped and report ctx.Err().
func runPool(ctx context.Context, numTasks, numWorkers int, fn func(ctx context.Context, task int) error) error {
	if numTasks == 0 {
		return nil
	}
	numWorkers = max(1, min(numWorkers, numTasks))

	tasks := make(chan int)
	errs := make([]error, numTasks)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				if err := ctx.Err(); err != nil {
					errs[task] = err
					continue
				}
				errs[task] = fn(ctx, task)
			}
		}()
	}

	for i := range numTasks {
		tasks <- i
	}
	close(tasks)

	wg.Wait()

	return errors.Join(errs...)
}
