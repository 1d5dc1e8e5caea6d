// Command planfetch captures the raw itinerary document through a real
// browser session, either once or on a cron schedule. The converter
// (cmd/tripcal) consumes the file it writes.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"tripcal/internal/config"
	"tripcal/internal/fetch"
	appLog "tripcal/internal/log"
)

type flagConfig struct {
	configPath string
	once       bool
}

func main() {
	appLog.Info("planfetch starting")

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	appLog.Info("effective config",
		"plans_url", conf.PlansURL,
		"output_path", conf.OutputPath,
		"refresh", conf.RefreshCron,
		"headless", conf.Headless,
		"once", flags.once,
	)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	opts := fetch.Options{
		PlansURL:   conf.PlansURL,
		APIMatch:   conf.APIMatch,
		OutputPath: conf.OutputPath,
		Headless:   conf.Headless,
		Timeout:    time.Duration(conf.TimeoutSeconds) * time.Second,
	}

	capture := func() {
		if err := fetch.CaptureItinerary(ctx, opts); err != nil {
			appLog.Error("capture failed", err)
		}
	}

	if flags.once || conf.RefreshCron == "" {
		if err := fetch.CaptureItinerary(ctx, opts); err != nil {
			appLog.Error("capture failed", err)
			os.Exit(1)
		}
		appLog.Info("planfetch exiting")
		return
	}

	// Scheduled mode: capture now, then on the configured cron schedule.
	capture()

	sched := cron.New()
	if _, err := sched.AddFunc(conf.RefreshCron, capture); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.RefreshCron)
		os.Exit(1)
	}
	sched.Start()

	<-ctx.Done()
	stopCtx := sched.Stop()
	<-stopCtx.Done()
	appLog.Info("planfetch exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "planfetch.yaml", "Path to config file")
	flag.BoolVar(&cfg.once, "once", false, "Capture once and exit, ignoring any refresh schedule")

	flag.Parse()

	return cfg
}
