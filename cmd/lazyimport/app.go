// # cmd/lazyimport/app.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"lazyimport/internal/core/config"
	"lazyimport/internal/core/scan"
	"lazyimport/internal/core/watcher"
	"lazyimport/internal/data/history"
	"lazyimport/internal/engine/lint"
	"lazyimport/internal/engine/parser"
	"lazyimport/internal/engine/rule"
	"lazyimport/internal/shared/util"
	"lazyimport/internal/ui/report"
)

// Options carries the CLI flags that affect output.
type Options struct {
	SARIFPath string
	Summary   bool
}

// App wires discovery, the linter façade, reporting and the optional
// history store.
type App struct {
	cfg     *config.Config
	opts    Options
	parser  *parser.Parser
	linter  *lint.Linter
	scanner *scan.Scanner
	store   *history.Store
	enabled bool
}

func NewApp(cfg *config.Config, opts Options) (*App, error) {
	if opts.SARIFPath == "" {
		opts.SARIFPath = cfg.Output.SARIF
	}

	loader, err := parser.NewGrammarLoader()
	if err != nil {
		return nil, err
	}
	for lang, settings := range cfg.Languages {
		if err := loader.AddExtensions(lang, settings.Extensions); err != nil {
			slog.Warn("ignoring language settings", "language", lang, "error", err)
		}
	}

	p := parser.NewParser(loader)

	ruleCfg := cfg.LazyImportRule()
	heavy := rule.Default().Extend(ruleCfg.AdditionalHeavyDeps...)
	linter := lint.New(p, heavy, lint.Severity(ruleCfg.Severity))

	scanner, err := scan.NewScanner(p.IsSupportedPath, cfg.Exclude.Dirs, cfg.Exclude.Files)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:     cfg,
		opts:    opts,
		parser:  p,
		linter:  linter,
		scanner: scanner,
		enabled: ruleCfg.Enabled == nil || *ruleCfg.Enabled,
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			slog.Warn("history store unavailable", "path", cfg.History.Path, "error", err)
		} else {
			app.store = store
		}
	}

	return app, nil
}

func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// RunOnce performs a single scan-lint-report cycle and returns the process
// exit code.
func (a *App) RunOnce(ctx context.Context) int {
	diagnostics := a.lintAll(ctx)

	report.RenderText(os.Stdout, diagnostics)
	if a.opts.Summary {
		report.RenderSummary(os.Stdout, diagnostics)
	}
	if a.opts.SARIFPath != "" {
		a.writeSARIF(diagnostics)
	}

	if len(diagnostics) > 0 {
		return exitDiagnostics
	}
	return exitClean
}

// RunWatch performs an initial cycle and then re-lints on debounced file
// changes until interrupted.
func (a *App) RunWatch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.Metrics.Enabled {
		server := NewObservabilityServer(a.cfg.Metrics.Address)
		if err := server.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = server.Stop(context.Background()) }()
	}

	diagnostics := a.lintAll(ctx)
	report.RenderText(os.Stdout, diagnostics)

	// One full rescan per second at most, with room for a short burst.
	limiter := util.NewLimiter(1, 2)

	w, err := watcher.NewWatcher(
		a.cfg.Watch.Debounce,
		a.cfg.Exclude.Dirs,
		a.cfg.Exclude.Files,
		a.parser.IsSupportedPath,
		func(changed []string) {
			if err := limiter.Wait(ctx, 1); err != nil {
				return
			}
			slog.Info("changes detected", "files", len(changed))
			diagnostics := a.lintAll(ctx)
			report.RenderText(os.Stdout, diagnostics)
		},
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(a.cfg.ScanPaths); err != nil {
		return err
	}

	slog.Info("watching", "paths", a.cfg.ScanPaths)
	<-ctx.Done()
	return nil
}

// lintAll resets the façade, discovers files and lints them, recording a
// history snapshot when the store is available.
func (a *App) lintAll(ctx context.Context) []lint.Diagnostic {
	if !a.enabled {
		slog.Debug("rule disabled, skipping analysis", "rule", lint.RuleID)
		return nil
	}

	start := time.Now()
	a.linter.Reset()

	files := a.scanner.Discover(a.cfg.ScanPaths)
	slog.Debug("discovered files", "count", len(files))

	diagnostics := a.linter.LintPaths(ctx, files, runtime.NumCPU())

	if a.store != nil {
		snapshot := history.RunSnapshot{
			FileCount:       len(files),
			ParseFailures:   a.linter.ParseFailures(),
			DiagnosticCount: len(diagnostics),
			Duration:        time.Since(start),
		}
		if _, err := a.store.SaveRun(snapshot); err != nil {
			slog.Warn("failed to record run snapshot", "error", err)
		}
	}

	return diagnostics
}

func (a *App) writeSARIF(diagnostics []lint.Diagnostic) {
	root, err := os.Getwd()
	if err != nil {
		root = ""
	}
	data, err := report.GenerateSARIF(root, diagnostics)
	if err != nil {
		slog.Warn("failed to generate SARIF report", "error", err)
		return
	}
	if err := util.WriteFileWithDirs(a.opts.SARIFPath, data, 0o644); err != nil {
		slog.Warn("failed to write SARIF report", "path", a.opts.SARIFPath, "error", err)
		return
	}
	slog.Info("SARIF report written", "path", a.opts.SARIFPath)
}
