// Package aggregate folds per-trial solver metrics into per-encoding
// summaries.
//
// For every metric name seen in at least one trial of an encoding,
// the report carries the arithmetic mean over the trials that reported
// it (absent metrics are excluded, not zero) and the maximum value with
// the puzzle that first produced it. Ties on the maximum resolve to the
// earliest trial in accumulation order, so callers must Add trials in
// their processing order.
package aggregate
