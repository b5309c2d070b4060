// Package runner drives the two-stage external pipeline for one trial:
// puzzle -> encoder -> CNF formula -> solver -> diagnostic output.
//
// Commands are argv vectors executed through the ProcRunner interface, so
// tests substitute a fake instead of spawning binaries. Each trial writes
// its formula and result files into its own temporary directory, removed
// on every exit path; nothing a trial creates outlives it.
//
// An encoder that exits non-zero or emits an empty formula fails the
// trial with *EncodeError. A solver's exit status is an outcome signal
// (SAT solvers conventionally exit 10/20), never a failure.
package runner
