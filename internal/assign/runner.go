package assign

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/maxchv/crewplan/internal/errors"
	"github.com/maxchv/crewplan/internal/logging"
	"github.com/maxchv/crewplan/internal/roster"
)

// Runner solves a batch of tasks against a shared roster. Tasks are
// independent of each other (the roster is read-only during the search and
// every task writes only its own team list), so the runner may solve them
// concurrently. Each task's result is identical to a serial run.
type Runner struct {
	workers int
	logger  *logging.Logger
}

// NewRunner creates a Runner limited to the given number of concurrent
// tasks. A value of 0 means one worker per CPU.
func NewRunner(workers int, logger *logging.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Runner{workers: workers, logger: logger.WithComponent("solver")}
}

// Run solves every task in the slice, populating each task's Teams in place.
// Cancelling the context stops scheduling further tasks; tasks already
// running finish (the search has no suspension points). A panic in one
// task's search is recovered and reported as a [errors.SolveError]; the
// remaining tasks still run. Returns the context error if cancelled, the
// joined solve errors otherwise.
func (r *Runner) Run(ctx context.Context, tasks []*Task, people []*roster.Person) error {
	sem := newSemaphore(r.workers)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var solveErrs []error

	for _, task := range tasks {
		if err := sem.Acquire(ctx); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(task *Task) {
			defer wg.Done()
			defer sem.Release()
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.WithTask(task.Name).Error("task search panicked", "panic", fmt.Sprint(rec))
					mu.Lock()
					solveErrs = append(solveErrs,
						errors.NewSolveError(fmt.Sprintf("search panicked: %v", rec), nil).WithTask(task.Name))
					mu.Unlock()
				}
			}()

			start := time.Now()
			task.MakeTeams(people)
			r.logger.WithTask(task.Name).Debug("task solved",
				"teams", len(task.Teams),
				"required_skills", len(task.Skills),
				"duration", time.Since(start).String())
		}(task)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}
	return errors.Join(solveErrs...)
}
