package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/aggregate"
)

// Exported metric family names.
const (
	promTrials  = "sudokubench_trials_total"
	promFailed  = "sudokubench_trials_failed_total"
	promAllSat  = "sudokubench_all_satisfiable"
	promAverage = "sudokubench_metric_average"
	promWorst   = "sudokubench_metric_worst"
)

// WriteProm renders reps as Prometheus text exposition to w.
func WriteProm(w io.Writer, reps []*aggregate.AggregateReport) error {
	for _, mf := range buildFamilies(reps) {
		// expfmt rejects a family with no samples; skip rather than fail
		// (e.g. no metric summaries when every trial failed).
		if len(mf.Metric) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("report: prom encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WritePromFile writes the exposition to path via a temp file and rename,
// so a concurrently scraping textfile collector never reads a torn file.
func WritePromFile(path string, reps []*aggregate.AggregateReport) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sudokubench-*.prom")
	if err != nil {
		return fmt.Errorf("report: prom temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteProm(tmp, reps); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("report: prom close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: prom rename: %w", err)
	}
	return nil
}

func buildFamilies(reps []*aggregate.AggregateReport) []*dto.MetricFamily {
	trials := gaugeFamily(promTrials, "Completed trials per encoding.")
	failed := gaugeFamily(promFailed, "Trials whose encode stage failed.")
	allSat := gaugeFamily(promAllSat, "1 when every trial of the encoding was satisfiable.")
	average := gaugeFamily(promAverage, "Mean solver statistic over trials reporting it.")
	worst := gaugeFamily(promWorst, "Maximum solver statistic over the encoding's trials.")

	for _, rep := range reps {
		encLabel := labels("encoding", rep.Encoding)
		trials.Metric = append(trials.Metric, gauge(encLabel, float64(rep.Trials)))
		failed.Metric = append(failed.Metric, gauge(encLabel, float64(rep.Failed)))
		satVal := 0.0
		if rep.AllSatisfiable {
			satVal = 1.0
		}
		allSat.Metric = append(allSat.Metric, gauge(encLabel, satVal))

		for _, m := range rep.Metrics {
			avgLabels := labels("encoding", rep.Encoding, "metric", m.Name)
			average.Metric = append(average.Metric, gauge(avgLabels, m.Average))
			worstLabels := labels("encoding", rep.Encoding, "metric", m.Name, "puzzle", m.WorstPuzzle)
			worst.Metric = append(worst.Metric, gauge(worstLabels, m.Worst))
		}
	}
	return []*dto.MetricFamily{trials, failed, allSat, average, worst}
}

func gaugeFamily(name, help string) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
	}
}

func gauge(lbls []*dto.LabelPair, v float64) *dto.Metric {
	return &dto.Metric{Label: lbls, Gauge: &dto.Gauge{Value: proto.Float64(v)}}
}

// labels builds LabelPairs from name/value pairs.
func labels(pairs ...string) []*dto.LabelPair {
	out := make([]*dto.LabelPair, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, &dto.LabelPair{
			Name:  proto.String(pairs[i]),
			Value: proto.String(pairs[i+1]),
		})
	}
	return out
}
