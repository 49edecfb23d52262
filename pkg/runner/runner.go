package runner

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/goswon/pkg/fsutil"
)

// ProcessFunc transforms one file's content. It must be safe for concurrent use.
type ProcessFunc func(ctx context.Context, path string, content []byte) ([]byte, error)

// Runner applies a ProcessFunc to every discovered file.
type Runner struct {
	Process ProcessFunc

	// Write stores changed output back to disk.
	Write bool

	// Backup keeps a sidecar copy of each file before it is first written.
	Backup bool
}

// New creates a Runner for process.
func New(process ProcessFunc) *Runner {
	return &Runner{Process: process}
}

// Run discovers files under opts.Paths and processes them with a worker pool.
// Outcomes are returned in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		outcome := r.processFile(ctx, path)
		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) processFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Original = content

	output, err := r.Process(ctx, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Output = output
	outcome.Changed = !bytes.Equal(output, content)

	if !r.Write || !outcome.Changed {
		return outcome
	}
	if r.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = err
			return outcome
		}
	}
	if err := fsutil.WriteBack(ctx, info, output); err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = true
	return outcome
}
