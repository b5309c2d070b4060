package aggregate

import (
	"sort"
	"sync"
)

// TrialResult is the outcome of one (puzzle, encoding) pipeline run.
// Metrics maps solver statistic labels to their reported values; a trial
// that did not report a given metric simply omits the key.
type TrialResult struct {
	Puzzle      string
	Encoding    string
	Satisfiable bool
	Metrics     map[string]float64
}

// MetricSummary is the aggregate of one metric across an encoding's trials.
type MetricSummary struct {
	Name        string
	Average     float64
	Worst       float64
	WorstPuzzle string
}

// AggregateReport is the finalized summary for one encoding.
// Metrics are sorted by name for stable rendering.
type AggregateReport struct {
	Encoding       string
	Trials         int
	Failed         int
	AllSatisfiable bool
	Metrics        []MetricSummary
}

// metricAcc is the running state for one metric under one encoding.
type metricAcc struct {
	sum         float64
	count       int
	worst       float64
	worstPuzzle string
}

// encodingState accumulates trials for one encoding.
type encodingState struct {
	trials  int
	failed  int
	allSat  bool
	metrics map[string]*metricAcc
}

// Aggregator accumulates TrialResults keyed by encoding name.
//
// Safe for concurrent use, but the deterministic max tie-break only holds
// if callers serialize Add in trial-processing order.
type Aggregator struct {
	mu    sync.Mutex
	byEnc map[string]*encodingState
	order []string // encodings in first-seen order
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{byEnc: make(map[string]*encodingState)}
}

func (a *Aggregator) stateFor(encoding string) *encodingState {
	st, ok := a.byEnc[encoding]
	if !ok {
		st = &encodingState{allSat: true, metrics: make(map[string]*metricAcc)}
		a.byEnc[encoding] = st
		a.order = append(a.order, encoding)
	}
	return st
}

// Add folds one completed trial into its encoding's running state.
func (a *Aggregator) Add(tr TrialResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	st := a.stateFor(tr.Encoding)
	st.trials++
	st.allSat = st.allSat && tr.Satisfiable

	for name, v := range tr.Metrics {
		acc, ok := st.metrics[name]
		if !ok {
			acc = &metricAcc{}
			st.metrics[name] = acc
		}
		acc.sum += v
		acc.count++
		// Strictly greater, so ties keep the earliest trial's puzzle.
		if acc.count == 1 || v > acc.worst {
			acc.worst = v
			acc.worstPuzzle = tr.Puzzle
		}
	}
}

// AddFailure records a trial whose pipeline failed before producing
// solver output. It counts toward Failed only and contributes nothing
// to metrics or the satisfiability flag.
func (a *Aggregator) AddFailure(encoding string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stateFor(encoding).failed++
}

// Reports finalizes and returns one AggregateReport per encoding, in the
// order encodings were first seen. The Aggregator retains its state, so
// Reports may be called again after further Adds.
func (a *Aggregator) Reports() []*AggregateReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*AggregateReport, 0, len(a.order))
	for _, enc := range a.order {
		st := a.byEnc[enc]
		rep := &AggregateReport{
			Encoding:       enc,
			Trials:         st.trials,
			Failed:         st.failed,
			AllSatisfiable: st.allSat,
			Metrics:        make([]MetricSummary, 0, len(st.metrics)),
		}
		for name, acc := range st.metrics {
			rep.Metrics = append(rep.Metrics, MetricSummary{
				Name:        name,
				Average:     acc.sum / float64(acc.count),
				Worst:       acc.worst,
				WorstPuzzle: acc.worstPuzzle,
			})
		}
		sort.Slice(rep.Metrics, func(i, j int) bool {
			return rep.Metrics[i].Name < rep.Metrics[j].Name
		})
		out = append(out, rep)
	}
	return out
}
