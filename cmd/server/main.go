package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/disksched/internal/config"
	"github.com/me/disksched/internal/logging"
	"github.com/me/disksched/internal/server"
	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/pkg/model"
)

func main() {
	cfg := config.DefaultServerConfig()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	flag.IntVar(&cfg.TotalTracks, "total-tracks", cfg.TotalTracks, "Number of tracks on the simulated disk")
	flag.IntVar(&cfg.InitialHead, "head", cfg.InitialHead, "Initial head position")
	flag.DurationVar(&cfg.StepInterval, "step-interval", cfg.StepInterval, "Delay between animation steps")
	flag.StringVar(&cfg.DefaultAlgorithm, "algorithm", cfg.DefaultAlgorithm, "Initially selected algorithm (fcfs, sstf, scan, cscan)")
	flag.StringVar(&cfg.DefaultDirection, "direction", cfg.DefaultDirection, "Initial SCAN direction (left, right)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	configFile := flag.String("config", "", "Path to YAML server config file")

	flag.Parse()

	// Values from --config sit between the defaults and explicit flags.
	if *configFile != "" {
		explicit := map[string]string{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := config.LoadFile(*configFile, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for name, val := range explicit {
			flag.Set(name, val)
		}
	}

	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	alg, _ := model.ParseAlgorithm(cfg.DefaultAlgorithm)
	dir, _ := model.ParseDirection(cfg.DefaultDirection)
	ws := shell.New(shell.Options{
		TotalTracks:  cfg.TotalTracks,
		InitialHead:  model.Track(cfg.InitialHead),
		Algorithm:    alg,
		Direction:    dir,
		StepInterval: cfg.StepInterval,
	}, logger)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, ws, logger, server.WithRunContext(ctx))

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
		// Cancelled on shutdown so open SSE streams return.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "workspace_id", ws.ID(), "total_tracks", cfg.TotalTracks)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Stop the simulation before the HTTP server so SSE streams see the final state.
	if ws.Stop() {
		logger.Info("simulation stopped for shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
