package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/raaihank/nomoji/internal/batch"
	"github.com/raaihank/nomoji/internal/config"
	"github.com/raaihank/nomoji/internal/emoji"
	"github.com/raaihank/nomoji/internal/logger"
	"github.com/raaihank/nomoji/internal/server"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	// Parse command line flags
	var (
		configPath  = pflag.String("config", "", "Path to configuration file")
		backup      = pflag.BoolP("backup", "b", false, "Create backup files before overwriting")
		inplace     = pflag.BoolP("inplace", "i", false, "Edit files in place")
		dryRun      = pflag.Bool("dry-run", false, "Count emojis without removing (dry run)")
		serve       = pflag.Bool("serve", false, "Run the HTTP strip service instead of filtering files")
		showVersion = pflag.Bool("version", false, "Show version information")
	)
	pflag.String("log-level", "error", "Log level (debug, info, warn, error)")
	pflag.String("log-format", "console", "Log format (json, console)")
	pflag.StringSlice("blocks", []string{"all"}, "Emoji blocks to remove")
	pflag.String("backup-suffix", ".bak", "Suffix for backup files")
	pflag.Int("port", 8080, "HTTP port for serve mode")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Remove emoji characters from text files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: nomoji [flags] [file ...]\n")
		fmt.Fprintf(os.Stderr, "       (no files or a single \"-\" reads stdin)\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("nomoji %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration, with flags taking precedence
	if err := config.BindFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	loggerConfig := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if cfg.Logging.File.Enabled {
		loggerConfig.File = &logger.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		}
	}

	log, err := logger.New(loggerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *serve {
		runServer(cfg, log)
		return
	}

	stripper, err := emoji.New(cfg.Strip, log.WithComponent("emoji"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure emoji blocks: %v\n", err)
		os.Exit(1)
	}

	opts := batch.Options{
		Backup:  *backup,
		InPlace: *inplace,
		DryRun:  *dryRun,
	}
	processor := batch.NewProcessor(cfg, opts, stripper, log.WithComponent("batch"))

	// No files, or a single "-", means filter stdin onto stdout
	files := pflag.Args()
	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		count, err := processor.ProcessStdin(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		batch.PrintStdinReport(os.Stderr, count)
		return
	}

	results := processor.Run(files)
	batch.PrintReport(os.Stderr, results)

	// Exit with error code if any file failed
	if batch.Failed(results) > 0 {
		os.Exit(1)
	}
}

// runServer runs the long-lived HTTP strip service until signalled.
func runServer(cfg *config.Config, log *logger.Logger) {
	log.Info("Starting nomoji",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("build_date", date),
		zap.Int("port", cfg.Server.Port),
	)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to create strip server", zap.Error(err))
	}

	// Hot-reload the enabled block set when the config file changes
	if err := config.Watch(func(newCfg *config.Config) {
		if err := srv.Reload(newCfg); err != nil {
			log.Error("Failed to apply new configuration", zap.Error(err))
		}
	}); err != nil {
		log.Error("Failed to watch configuration", zap.Error(err))
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		serverErrors <- srv.Start()
	}()

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		log.Error("Server error", zap.Error(err))
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Give outstanding requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			log.Error("Failed to shutdown server gracefully", zap.Error(err))
			os.Exit(1)
		}

		log.Info("Server shutdown complete")
	}
}
