package aggregate

import "testing"

// trial builds a satisfiable TrialResult with a single metric value.
func trial(puzzle, enc, metric string, v float64) TrialResult {
	return TrialResult{
		Puzzle:      puzzle,
		Encoding:    enc,
		Satisfiable: true,
		Metrics:     map[string]float64{metric: v},
	}
}

func TestAdd_MeanAndWorst(t *testing.T) {
	a := New()
	a.Add(trial("A", "basic", "conflicts", 3.0))
	a.Add(trial("B", "basic", "conflicts", 5.0))
	a.Add(trial("C", "basic", "conflicts", 1.0))

	reps := a.Reports()
	if len(reps) != 1 {
		t.Fatalf("got %d reports, want 1", len(reps))
	}
	rep := reps[0]
	if rep.Trials != 3 {
		t.Errorf("Trials = %d, want 3", rep.Trials)
	}
	m := rep.Metrics[0]
	if m.Average != 3.0 {
		t.Errorf("Average = %v, want 3.0", m.Average)
	}
	if m.Worst != 5.0 || m.WorstPuzzle != "B" {
		t.Errorf("Worst = %v at %q, want 5.0 at B", m.Worst, m.WorstPuzzle)
	}
}

func TestAdd_TieKeepsEarliest(t *testing.T) {
	a := New()
	a.Add(trial("first", "basic", "decisions", 7))
	a.Add(trial("second", "basic", "decisions", 7))

	m := a.Reports()[0].Metrics[0]
	if m.WorstPuzzle != "first" {
		t.Errorf("WorstPuzzle = %q, want the earliest trial on a tie", m.WorstPuzzle)
	}
}

func TestAdd_MissingMetricExcluded(t *testing.T) {
	a := New()
	a.Add(trial("A", "basic", "restarts", 4))
	a.Add(TrialResult{Puzzle: "B", Encoding: "basic", Satisfiable: true,
		Metrics: map[string]float64{}})

	m := a.Reports()[0].Metrics[0]
	// Only A reported restarts: mean over one trial, not two.
	if m.Average != 4 {
		t.Errorf("Average = %v, want 4 (trial B excluded)", m.Average)
	}
}

func TestAdd_AllSatisfiable(t *testing.T) {
	a := New()
	a.Add(trial("A", "basic", "x", 1))
	tr := trial("B", "basic", "x", 2)
	tr.Satisfiable = false
	a.Add(tr)

	if a.Reports()[0].AllSatisfiable {
		t.Error("AllSatisfiable = true, want false after one UNSAT trial")
	}
}

func TestReports_MetricsSorted(t *testing.T) {
	a := New()
	a.Add(TrialResult{Puzzle: "A", Encoding: "basic", Satisfiable: true,
		Metrics: map[string]float64{"restarts": 1, "conflicts": 2, "decisions": 3}})

	ms := a.Reports()[0].Metrics
	want := []string{"conflicts", "decisions", "restarts"}
	for i, name := range want {
		if ms[i].Name != name {
			t.Fatalf("Metrics[%d] = %q, want %q (alphabetical)", i, ms[i].Name, name)
		}
	}
}

func TestReports_EncodingOrder(t *testing.T) {
	a := New()
	a.Add(trial("A", "extended", "x", 1))
	a.Add(trial("A", "basic", "x", 1))

	reps := a.Reports()
	if reps[0].Encoding != "extended" || reps[1].Encoding != "basic" {
		t.Errorf("encodings = %q, %q; want first-seen order", reps[0].Encoding, reps[1].Encoding)
	}
}

func TestAddFailure(t *testing.T) {
	a := New()
	a.Add(trial("A", "basic", "x", 1))
	a.AddFailure("basic")

	rep := a.Reports()[0]
	if rep.Trials != 1 || rep.Failed != 1 {
		t.Errorf("Trials/Failed = %d/%d, want 1/1", rep.Trials, rep.Failed)
	}
	if !rep.AllSatisfiable {
		t.Error("AllSatisfiable flipped by a failed trial; failures carry no verdict")
	}
}
