package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"PriceCompare/internal/chart"
	"PriceCompare/internal/collector"
	"PriceCompare/internal/config"
	"PriceCompare/internal/recorder"
	"PriceCompare/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	flag.StringVar(&cfgPath, "config", cfgPath, "path to the YAML config file")
	watch := flag.Bool("watch", false, "keep running and re-render on the refresh schedule")
	probe := flag.Float64("probe", -1, "print the tooltip for this canvas x instead of writing files")
	noPNG := flag.Bool("no-png", false, "skip the PNG snapshot")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	col := collector.NewCollector(cfg)

	if *probe >= 0 {
		s := scheduler.NewScheduler(ctx, cfg, col, recorder.NewNoopRecorder(), false)
		g, err := s.BuildGraph()
		if err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		for _, line := range chart.TooltipLines(g.Cursor(*probe)) {
			fmt.Println(line)
		}
		return
	}

	pngPath := cfg.Output.PNGPath
	if *noPNG {
		pngPath = ""
	}
	rec := recorder.NewFileRecorder(cfg.Output.HTMLPath, pngPath)
	defer rec.Close()

	sched := scheduler.NewScheduler(ctx, cfg, col, rec, pngPath != "")
	if err := sched.RunNow(); err != nil {
		if !*watch {
			log.Fatalf("[FATAL] render: %v", err)
		}
		log.Printf("[ERROR] initial render: %v", err)
	}
	if !*watch {
		return
	}

	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Printf("[INFO] watching, refresh schedule %q. Press Ctrl+C to stop.", cfg.Schedule.RefreshCron)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}
