package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/CristiGvl/picoZramMon/api"
	"github.com/CristiGvl/picoZramMon/internal/indicator"
	"github.com/CristiGvl/picoZramMon/internal/memory"
	"github.com/CristiGvl/picoZramMon/internal/platform"
	"github.com/CristiGvl/picoZramMon/internal/usage"
	"github.com/CristiGvl/picoZramMon/internal/zram"
)

func main() {
	// Parse command line flags
	httpAddr := flag.String("http", "", "Serve the JSON API on this address, e.g. 127.0.0.1:8080 (disabled when empty)")
	headless := flag.Bool("headless", false, "Print a summary line every second instead of showing the terminal indicator")
	logFile := flag.String("logfile", "", "Write logs to this file while the terminal indicator is shown")
	flag.Parse()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	aggregator := usage.NewAggregator(zram.NewReader(), memory.NewReader())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	// the terminal indicator owns the screen, so logs go to -logfile or nowhere
	if !*headless {
		if *logFile != "" {
			f, err := tea.LogToFile(*logFile, "picoZramMon")
			if err != nil {
				log.Fatalf("Failed to open log file: %v", err)
			}
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}
	}

	if *httpAddr != "" {
		server := api.NewServer(aggregator, log.Writer())
		g.Go(func() error {
			log.Printf("Starting picoZramMon API on %s", *httpAddr)
			return server.Start(*httpAddr)
		})
		g.Go(func() error {
			<-gctx.Done()
			if err := server.Shutdown(); err != nil {
				log.Printf("Error during shutdown: %v", err)
			}
			return nil
		})
	}

	if *headless {
		g.Go(func() error {
			return runHeadless(gctx, aggregator)
		})
	} else {
		g.Go(func() error {
			// leaving the indicator stops the whole process
			defer cancel()
			return indicator.Run(gctx, aggregator)
		})
	}

	if err := g.Wait(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// runHeadless logs one summary line per refresh cycle until ctx is done
func runHeadless(ctx context.Context, aggregator *usage.Aggregator) error {
	ticker := time.NewTicker(indicator.RefreshInterval)
	defer ticker.Stop()

	for {
		snap, err := aggregator.Snapshot(ctx)
		if err != nil {
			log.Printf("Error reading zram stats: %v", err)
		} else {
			log.Print(usage.Summary(snap))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
