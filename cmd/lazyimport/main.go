// # cmd/lazyimport/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lazyimport/internal/core/config"
)

var (
	configPath = flag.String("config", "./lazyimport.toml", "Path to config file")
	watch      = flag.Bool("watch", false, "Keep running and re-lint on file changes")
	sarifPath  = flag.String("sarif", "", "Write a SARIF report to this path")
	summary    = flag.Bool("summary", false, "Print a per-dependency summary table")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

// Exit codes: 0 clean, 1 diagnostics found, 2 usage error.
const (
	exitClean       = 0
	exitDiagnostics = 1
	exitUsage       = 2
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("lazyimport v%s\n", VERSION)
		os.Exit(exitClean)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		// A missing default config file is fine; an explicit or broken one
		// is not.
		if os.IsNotExist(err) && *configPath == "./lazyimport.toml" {
			cfg = config.DefaultConfig()
		} else {
			slog.Error("failed to load config", "error", err)
			os.Exit(exitUsage)
		}
	}

	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}

	if len(cfg.ScanPaths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: lazyimport [flags] <path>...")
		fmt.Fprintln(os.Stderr, "no scan targets given (pass paths as arguments or set scan_paths in the config)")
		os.Exit(exitUsage)
	}

	app, err := NewApp(cfg, Options{
		SARIFPath: *sarifPath,
		Summary:   *summary,
	})
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(exitUsage)
	}
	defer app.Close()

	ctx := context.Background()

	if *watch {
		if err := app.RunWatch(ctx); err != nil {
			slog.Error("watch mode failed", "error", err)
			os.Exit(exitUsage)
		}
		return
	}

	os.Exit(app.RunOnce(ctx))
}
