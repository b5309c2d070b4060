// Package bench orchestrates a benchmark run: it builds the
// (puzzle x encoding) trial matrix, executes trials on a worker pool and
// folds the outcomes into per-encoding aggregates.
//
// Trials are independent, so any worker count is safe: each trial has its
// own scratch directory and results are accumulated in trial-matrix order
// regardless of completion order, keeping the worst-case tie-break
// deterministic. workers=1 reproduces strictly sequential execution.
package bench
