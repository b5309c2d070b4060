// Package stats extracts structured metrics from a SAT solver's free-form
// diagnostic output.
//
// The grammar assumed of the solver is deliberately loose and versioned
// here as a contract: a metric line is "label : rest" where the first
// contiguous run of digits and/or a decimal point in rest is the value.
// Lines that do not match are ignored, never an error. Satisfiability is
// detected by scanning for the literal substring "UNSATISFIABLE"; output
// from a crashed run that lacks the token is indistinguishable from a
// satisfiable result — a documented limitation, not corrected here.
package stats
