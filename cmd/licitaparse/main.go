package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/licitatools/licitaparse/internal/config"
	"github.com/licitatools/licitaparse/internal/pipeline"
	"github.com/licitatools/licitaparse/internal/sink"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging installs the default slog logger according to the run
// configuration: text to stderr, JSON when requested, debug level when
// verbose.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// run executes one extraction pass and writes the configured outputs.
func run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	service := pipeline.NewService(cfg.MaxFileSize)
	results, stats, err := service.ProcessDirectory(ctx, cfg.InputDir)
	if err != nil {
		return fmt.Errorf("processing %s: %w", cfg.InputDir, err)
	}

	if err := sink.WriteJSON(cfg.OutputPath, results); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	if cfg.XLSXPath != "" {
		if err := sink.WriteXLSX(cfg.XLSXPath, results); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.XLSXPath, err)
		}
	}

	slog.Info("run finished",
		"documents", stats.Documents,
		"documents_with_items", stats.DocumentsWithItems,
		"documents_failed", stats.DocumentsFailed,
		"attachments", stats.Attachments,
		"items", stats.Items,
		"output", cfg.OutputPath,
		"duration", time.Since(start))
	return nil
}

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		if errors.Is(err, config.ErrVersionRequested) {
			printVersion()
			return
		}
		fmt.Fprintf(os.Stderr, "licitaparse: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	slog.Info("licitaparse starting", "version", cfg.Version, "input", cfg.InputDir)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("licitaparse\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
