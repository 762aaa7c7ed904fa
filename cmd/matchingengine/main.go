package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vaasu2002/go-matching-engine/internal/assignment"
	"github.com/vaasu2002/go-matching-engine/internal/config"
	"github.com/vaasu2002/go-matching-engine/internal/matching/engine"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
	"github.com/vaasu2002/go-matching-engine/internal/metrics"
	"github.com/vaasu2002/go-matching-engine/internal/scheduler"
)

const (
	appName    = "go-matching-engine"
	appVersion = "v1.0.0"

	statsMirrorInterval = 5 * time.Second
)

func main() {
	var (
		configPath  = flag.String("config", "config.xml", "Path to configuration file")
		metricsPort = flag.Int("metrics-port", 9090, "Port to serve /metrics on")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", appName, appVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	order.SetDefaultValidator(order.StandardChain())

	registry := engine.NewRegistry()
	core := scheduler.NewSchedulerCore(logger)
	workerIDs, err := core.CreateWorkers(cfg.Scheduler.WorkerPrefix, cfg.Scheduler.WorkerCount)
	if err != nil {
		logger.Fatal("failed to create book workers", zap.Error(err))
	}
	bookScheduler := scheduler.NewOrderBookScheduler(core, registry, workerIDs)

	ingressScheduler, err := scheduler.NewIngressScheduler(cfg.Ingress.PoolSize, bookScheduler, logger)
	if err != nil {
		logger.Fatal("failed to create ingress pool", zap.Error(err))
	}
	defer ingressScheduler.Release()

	assignmentMgr := assignment.NewManager(5*time.Minute, time.Minute)
	if cfg.Metrics.CSVPath != "" {
		go runMetricsFeed(cfg.Metrics.CSVPath, assignmentMgr, logger)
	}

	go runIngressFeed(os.Stdin, ingressScheduler, logger)
	go runStatsMirror(registry)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *metricsPort),
		Handler: promhttp.Handler(),
	}
	go func() {
		logger.Info("serving metrics", zap.Int("port", *metricsPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped unexpectedly", zap.Error(err))
		}
	}()

	logger.Info("matching engine started",
		zap.String("version", appVersion),
		zap.Int("book_workers", cfg.Scheduler.WorkerCount),
		zap.Int("ingress_pool_size", cfg.Ingress.PoolSize),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	core.Shutdown()
	logger.Info("matching engine stopped")
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}

// runIngressFeed treats stdin as a stream of order descriptor lines, one
// per line, handing each to the ingress pool for parsing and dispatch.
func runIngressFeed(r *os.File, ingress *scheduler.IngressScheduler, logger *zap.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := ingress.ProcessIncomingOrder(line); err != nil {
			logger.Error("failed to submit order descriptor", zap.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("ingress feed ended with error", zap.Error(err))
	}
}

// runStatsMirror periodically copies every registered symbol's OrderBook.Stats
// into the Prometheus gauges, so the scrape endpoint reflects book activity
// instead of only the CSV-fed load samples.
func runStatsMirror(registry *engine.Registry) {
	ticker := time.NewTicker(statsMirrorInterval)
	defer ticker.Stop()
	for range ticker.C {
		registry.ForEach(func(symbol order.Symbol, ob *engine.OrderBook) {
			metrics.RecordBookStats(string(symbol), ob.Stats())
		})
	}
}

func runMetricsFeed(path string, mgr *assignment.Manager, logger *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("cannot open metrics feed", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	producer := metrics.NewLiveMetricsProducer(mgr, logger)
	if err := producer.Run(f); err != nil {
		logger.Error("metrics feed ended with error", zap.Error(err))
	}
}
