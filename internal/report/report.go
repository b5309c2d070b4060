package report

import (
	"fmt"
	"io"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/aggregate"
)

// Write renders one text section per report to w. Metric order inside a
// section is already alphabetical (the aggregator sorts on finalize), so
// the output is byte-stable for identical inputs.
func Write(w io.Writer, reps []*aggregate.AggregateReport) error {
	for i, rep := range reps {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("report: write: %w", err)
			}
		}
		if err := writeSection(w, rep); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}
	return nil
}

func writeSection(w io.Writer, rep *aggregate.AggregateReport) error {
	sat := "yes"
	if !rep.AllSatisfiable {
		sat = "no"
	}
	header := fmt.Sprintf("==== encoding %s ====\ntrials:          %d", rep.Encoding, rep.Trials)
	if rep.Failed > 0 {
		header += fmt.Sprintf(" (%d failed)", rep.Failed)
	}
	header += fmt.Sprintf("\nall satisfiable: %s\n", sat)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	for _, m := range rep.Metrics {
		_, err := fmt.Fprintf(w, "  %s:\n    average: %.2f\n    worst:   %.2f  (%s)\n",
			m.Name, m.Average, m.Worst, m.WorstPuzzle)
		if err != nil {
			return err
		}
	}
	return nil
}
