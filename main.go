package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/olehluchkiv/menagerie/internal/demo"
	"github.com/olehluchkiv/menagerie/internal/logging"
	"github.com/olehluchkiv/menagerie/internal/roster"
)

func main() {
	fs := flag.NewFlagSet("menagerie", flag.ExitOnError)
	rosterPath := fs.String("roster", "", "YAML roster file (default: built-in menagerie)")
	output := fs.String("output", "", "write transcript to file instead of stdout")
	logFile := fs.String("log-file", "", "log file path (default: stderr)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: menagerie [flags]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	// Step 1: Assemble the menagerie
	r := roster.Default()
	if *rosterPath != "" {
		r, err = roster.Load(*rosterPath)
		if err != nil {
			logger.Error("failed to load roster", "path", *rosterPath, "error", err)
			fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
			os.Exit(1)
		}
	}

	animals, err := r.Build()
	if err != nil {
		logger.Error("failed to build menagerie", "error", err)
		fmt.Fprintf(os.Stderr, "Error building menagerie: %v\n", err)
		os.Exit(1)
	}
	logger.Info("menagerie assembled", "animals", len(animals))

	// Step 2: Pick the transcript destination
	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("failed to create output file", "path", *output, "error", err)
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	// Step 3: Run the demonstration
	demo.NewRunner(logger).Run(w, animals)
	if *output != "" {
		fmt.Printf("Wrote transcript to %s\n", *output)
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
