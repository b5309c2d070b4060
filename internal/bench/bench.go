package bench

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/aggregate"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/corpus"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/runner"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/stats"
)

// Harness runs every configured encoding against every puzzle of a corpus.
type Harness struct {
	run      *runner.Runner
	encs     []runner.EncodingSpec
	workers  int
	failFast bool
}

// New returns a Harness executing trials through run. workers must be at
// least 1. With failFast, the first encoder failure aborts the whole run;
// otherwise failed trials are recorded and the run continues.
func New(run *runner.Runner, encs []runner.EncodingSpec, workers int, failFast bool) *Harness {
	return &Harness{run: run, encs: encs, workers: workers, failFast: failFast}
}

// trial is one cell of the run matrix.
type trial struct {
	puzzle corpus.Puzzle
	enc    runner.EncodingSpec
}

// outcome is a completed trial: either an extracted result or the error
// that failed it.
type outcome struct {
	res aggregate.TrialResult
	err error
}

// Run executes the full trial matrix and returns the finalized
// per-encoding reports. On cancellation or a fail-fast encoder error the
// run stops, in-flight external processes are killed via ctx and no
// reports are produced.
func (h *Harness) Run(ctx context.Context, puzzles []corpus.Puzzle) ([]*aggregate.AggregateReport, error) {
	trials := make([]trial, 0, len(puzzles)*len(h.encs))
	for _, p := range puzzles {
		for _, enc := range h.encs {
			trials = append(trials, trial{puzzle: p, enc: enc})
		}
	}
	slog.Info("bench: starting run",
		"puzzles", len(puzzles), "encodings", len(h.encs),
		"trials", len(trials), "workers", h.workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Outcomes land at their trial's matrix index so accumulation order
	// below is independent of worker completion order.
	outcomes := make([]outcome, len(trials))

	var (
		fatalMu sync.Mutex
		fatal   error
	)
	abort := func(err error) {
		fatalMu.Lock()
		if fatal == nil {
			fatal = err
		}
		fatalMu.Unlock()
		cancel()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < h.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				h.runOne(ctx, trials[i], &outcomes[i], abort)
			}
		}()
	}

feed:
	for i := range trials {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if fatal != nil {
		return nil, fatal
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agg := aggregate.New()
	for i, o := range outcomes {
		if o.err != nil {
			slog.Warn("bench: trial failed",
				"puzzle", trials[i].puzzle.Name, "encoding", trials[i].enc.Name, "err", o.err)
			agg.AddFailure(trials[i].enc.Name)
			continue
		}
		agg.Add(o.res)
	}
	reports := agg.Reports()
	slog.Info("bench: run complete", "encodings", len(reports))
	return reports, nil
}

func (h *Harness) runOne(ctx context.Context, tr trial, out *outcome, abort func(error)) {
	res, err := h.run.RunTrial(ctx, tr.puzzle, tr.enc)
	if err != nil {
		out.err = err
		if h.failFast || ctx.Err() != nil {
			abort(err)
		}
		return
	}
	sat, metrics := stats.Extract(res.Diagnostics)
	out.res = aggregate.TrialResult{
		Puzzle:      res.Puzzle,
		Encoding:    res.Encoding,
		Satisfiable: sat,
		Metrics:     metrics,
	}
}
