// Package config loads and watches the benchmark run configuration
// (sudokubench.yaml).
//
// Top-level types:
//   - Config — corpus path, solver argv, encodings [], workers, fail_fast,
//     report settings
//   - ReportConfig — optional prom_file path for the Prometheus textfile
//     export
//
// Load(path) reads the YAML file, applies defaults (1 worker), then
// validates required fields.
//
// Watch(ctx, paths, onChange) uses fsnotify to detect changes to the
// config or corpus files and invokes onChange, which watch mode uses to
// re-run the benchmark. It handles the rename→create pattern used by
// atomic-save editors by re-adding watches after each event.
package config
