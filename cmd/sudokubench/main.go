package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/bench"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/config"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/corpus"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/report"
	"github.com/Liiiiyuxuan/SUDOKU-SAT/internal/runner"
)

func main() {
	configPath := flag.String("config", "sudokubench.yaml", "path to config file")
	watch := flag.Bool("watch", false, "re-run the benchmark when the config or corpus changes")
	flag.Parse()

	// Logs go to stderr; stdout is reserved for the report text.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("sudokubench starting", "config", *configPath, "watch", *watch)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runOnce(ctx, *configPath); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	if !*watch {
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config for watch mode", "err", err)
		os.Exit(1)
	}

	// Coalesce bursts of fsnotify events into at most one pending re-run.
	changed := make(chan string, 1)
	go func() {
		err := config.Watch(ctx, []string{*configPath, cfg.Corpus}, func(path string) {
			select {
			case changed <- path:
			default:
			}
		})
		if err != nil {
			slog.Error("watcher stopped", "err", err)
			cancel()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sudokubench shutting down")
			return
		case path := <-changed:
			slog.Info("re-running benchmark", "trigger", path)
			if err := runOnce(ctx, *configPath); err != nil {
				// Watch mode keeps going so a broken edit can be fixed.
				slog.Error("run failed", "err", err)
			}
		}
	}
}

// runOnce loads the config and corpus, executes the full trial matrix and
// writes the reports.
func runOnce(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	puzzles, err := corpus.ReadFile(cfg.Corpus)
	if err != nil {
		return err
	}
	slog.Info("corpus loaded", "path", cfg.Corpus, "puzzles", len(puzzles))

	h := bench.New(
		runner.New(cfg.Solver, runner.NewExecRunner()),
		cfg.Encodings, cfg.Workers, cfg.FailFast,
	)
	reps, err := h.Run(ctx, puzzles)
	if err != nil {
		return err
	}

	if err := report.Write(os.Stdout, reps); err != nil {
		return err
	}
	if cfg.Report.PromFile != "" {
		if err := report.WritePromFile(cfg.Report.PromFile, reps); err != nil {
			return err
		}
		slog.Info("prometheus exposition written", "path", cfg.Report.PromFile)
	}
	return nil
}
