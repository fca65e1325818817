package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/JackWReid/evdoc/internal/app"
)

var Version = "dev"

func main() {
	var debug, showVersion bool
	var logFile string
	flag.BoolVar(&debug, "d", false, "Write debugging output to the log file.")
	flag.BoolVar(&debug, "debug", false, "Write debugging output to the log file.")
	flag.StringVar(&logFile, "log-file", "debug.log", "Path of the debug log.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "evdoc is a console-based document editor.")
		fmt.Fprintln(flag.CommandLine.Output(), "\nUsage: evdoc [flags]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("evdoc version %s (using %s)\n", Version, runtime.Version())
		return
	}

	if err := run(debug, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "evdoc: %v\n", err)
		os.Exit(1)
	}
}

func run(debug bool, logFile string) error {
	var logger *slog.Logger
	if debug {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := app.Start(app.Options{Logger: logger})
	if err != nil {
		return err
	}
	runErr := session.Run(ctx)
	if err := session.Shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
