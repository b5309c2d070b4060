// Package report renders finalized aggregates in two forms: a
// human-readable text summary (one section per encoding, metrics in
// alphabetical order, fixed precision) and a Prometheus text exposition
// suitable for a node_exporter textfile collector, so benchmark results
// can land on existing dashboards.
package report
