package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/aggregate"
)

func sampleReports() []*aggregate.AggregateReport {
	return []*aggregate.AggregateReport{
		{
			Encoding:       "basic",
			Trials:         3,
			AllSatisfiable: true,
			Metrics: []aggregate.MetricSummary{
				{Name: "conflicts", Average: 3.0, Worst: 5.0, WorstPuzzle: "Grid 02"},
				{Name: "restarts", Average: 1.5, Worst: 2.0, WorstPuzzle: "Grid 01"},
			},
		},
		{
			Encoding:       "extended",
			Trials:         3,
			Failed:         1,
			AllSatisfiable: false,
		},
	}
}

func TestWrite_Sections(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sampleReports()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"==== encoding basic ====",
		"trials:          3\n",
		"all satisfiable: yes",
		"average: 3.00",
		"worst:   5.00  (Grid 02)",
		"==== encoding extended ====",
		"(1 failed)",
		"all satisfiable: no",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}

	// Metrics render in the aggregator's alphabetical order.
	if strings.Index(out, "conflicts") > strings.Index(out, "restarts") {
		t.Error("metric sections out of order")
	}
}

func TestWrite_Stable(t *testing.T) {
	var a, b strings.Builder
	if err := Write(&a, sampleReports()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Write(&b, sampleReports()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.String() != b.String() {
		t.Error("identical inputs rendered differently")
	}
}

func TestWriteProm_Families(t *testing.T) {
	var b strings.Builder
	if err := WriteProm(&b, sampleReports()); err != nil {
		t.Fatalf("WriteProm: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		`sudokubench_trials_total{encoding="basic"} 3`,
		`sudokubench_trials_failed_total{encoding="extended"} 1`,
		`sudokubench_all_satisfiable{encoding="extended"} 0`,
		`sudokubench_metric_average{encoding="basic",metric="conflicts"} 3`,
		`sudokubench_metric_worst{encoding="basic",metric="conflicts",puzzle="Grid 02"} 5`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition missing %q\n%s", want, out)
		}
	}
}

func TestWritePromFile_AtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sudokubench.prom")
	if err := WritePromFile(path, sampleReports()); err != nil {
		t.Fatalf("WritePromFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "sudokubench_trials_total") {
		t.Error("prom file missing expected family")
	}

	// No leftover temp files next to the target.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files in output dir, want only the prom file", len(entries))
	}
}
