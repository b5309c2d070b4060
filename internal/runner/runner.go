package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/corpus"
)

// EncodingSpec identifies one encoding strategy under test: a name for
// reporting and the argv of the encoder command implementing it.
type EncodingSpec struct {
	Name    string   `yaml:"name"`
	Command []string `yaml:"command"`
}

// EncodeError reports an encoder that exited non-zero, produced no
// formula, or could not be run.
type EncodeError struct {
	Puzzle   string
	Encoding string
	Exit     int
	Detail   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %q with %q: exit %d: %s",
		e.Puzzle, e.Encoding, e.Exit, e.Detail)
}

// Outcome is one completed trial: the solver's combined diagnostic text
// plus its exit status, before any metric extraction.
type Outcome struct {
	Puzzle      string
	Encoding    string
	SolverExit  int
	Diagnostics string
}

// Runner executes trials against a fixed solver command.
type Runner struct {
	solver []string
	proc   ProcRunner
}

// New returns a Runner that invokes solver (argv) on each trial's formula.
// Pass NewExecRunner() for proc in production.
func New(solver []string, proc ProcRunner) *Runner {
	return &Runner{solver: solver, proc: proc}
}

// RunTrial encodes p with enc and solves the resulting formula, returning
// the solver's raw diagnostics. All scratch files live in a per-trial
// temporary directory and are removed before RunTrial returns, on success
// and on every failure path.
func (r *Runner) RunTrial(ctx context.Context, p corpus.Puzzle, enc EncodingSpec) (*Outcome, error) {
	formula, err := r.encode(ctx, p, enc)
	if err != nil {
		return nil, err
	}

	scratch, err := os.MkdirTemp("", "sudokubench-*")
	if err != nil {
		return nil, fmt.Errorf("trial %q/%q: scratch dir: %w", p.Name, enc.Name, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			slog.Warn("runner: scratch cleanup failed", "dir", scratch, "err", rmErr)
		}
	}()

	formulaPath := filepath.Join(scratch, "formula.cnf")
	resultPath := filepath.Join(scratch, "result.out")
	if err := os.WriteFile(formulaPath, formula, 0o600); err != nil {
		return nil, fmt.Errorf("trial %q/%q: write formula: %w", p.Name, enc.Name, err)
	}

	// The solver's exit status distinguishes SAT from UNSAT; it is part of
	// the outcome, not an error.
	argv := append(append([]string{}, r.solver...), formulaPath, resultPath)
	stdout, stderr, exit, err := r.proc.Run(ctx, argv, nil)
	if err != nil {
		return nil, fmt.Errorf("trial %q/%q: run solver: %w", p.Name, enc.Name, err)
	}

	return &Outcome{
		Puzzle:      p.Name,
		Encoding:    enc.Name,
		SolverExit:  exit,
		Diagnostics: string(stdout) + string(stderr),
	}, nil
}

// encode feeds the serialized grid to the encoder and returns the formula
// text it emits.
func (r *Runner) encode(ctx context.Context, p corpus.Puzzle, enc EncodingSpec) ([]byte, error) {
	stdout, stderr, exit, err := r.proc.Run(ctx, enc.Command, strings.NewReader(GridInput(p)))
	if err != nil {
		return nil, &EncodeError{Puzzle: p.Name, Encoding: enc.Name, Detail: err.Error()}
	}
	if exit != 0 {
		return nil, &EncodeError{Puzzle: p.Name, Encoding: enc.Name, Exit: exit,
			Detail: strings.TrimSpace(string(stderr))}
	}
	if len(stdout) == 0 {
		return nil, &EncodeError{Puzzle: p.Name, Encoding: enc.Name,
			Detail: "encoder produced no output"}
	}
	return stdout, nil
}

// GridInput serializes a puzzle to the encoder's input format: nine
// newline-terminated rows of nine digits, blanks as '0'.
func GridInput(p corpus.Puzzle) string {
	var b strings.Builder
	b.Grow(corpus.Size * (corpus.Size + 1))
	for _, row := range p.Grid {
		for _, d := range row {
			b.WriteByte('0' + d)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
