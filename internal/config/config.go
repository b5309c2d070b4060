package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/runner"
)

// DefaultWorkers is the trial concurrency when workers is absent.
// 1 reproduces strictly sequential trial execution.
const DefaultWorkers = 1

// Config is the full benchmark run configuration.
// Fields map 1:1 to sudokubench.example.yaml.
type Config struct {
	// Corpus is the path of the puzzle corpus file.
	Corpus string `yaml:"corpus"`

	// Solver is the argv of the SAT solver command. Each trial appends two
	// arguments: the formula path and the result path.
	Solver []string `yaml:"solver"`

	// Encodings lists the encoder commands under comparison.
	Encodings []runner.EncodingSpec `yaml:"encodings"`

	// Workers is the number of trials run concurrently.
	Workers int `yaml:"workers"`

	// FailFast aborts the whole run on the first encoder failure instead
	// of recording a failed trial and continuing.
	FailFast bool `yaml:"fail_fast"`

	// Report holds output settings.
	Report ReportConfig `yaml:"report"`
}

// ReportConfig configures report outputs beyond the text summary.
type ReportConfig struct {
	// PromFile, when set, is where the Prometheus textfile exposition of
	// the aggregate results is written after each run.
	PromFile string `yaml:"prom_file"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := &Config{Workers: DefaultWorkers}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// validate checks required fields and structural constraints.
func validate(cfg *Config) error {
	if cfg.Corpus == "" {
		return fmt.Errorf("corpus is required")
	}
	if len(cfg.Solver) == 0 {
		return fmt.Errorf("solver command is required")
	}
	if len(cfg.Encodings) == 0 {
		return fmt.Errorf("at least one encoding is required")
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	seen := make(map[string]bool, len(cfg.Encodings))
	for i, enc := range cfg.Encodings {
		if enc.Name == "" {
			return fmt.Errorf("encodings[%d]: name is required", i)
		}
		if len(enc.Command) == 0 {
			return fmt.Errorf("encodings[%d] %q: command is required", i, enc.Name)
		}
		if seen[enc.Name] {
			return fmt.Errorf("encodings[%d]: duplicate name %q", i, enc.Name)
		}
		seen[enc.Name] = true
	}
	return nil
}
