// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"stream-advisor/internal/common/aws"
	"stream-advisor/internal/common/camunda"
	"stream-advisor/internal/common/config"
	"stream-advisor/internal/common/database"
	"stream-advisor/internal/common/logger"
	"stream-advisor/internal/common/observability"
	"stream-advisor/internal/engine/streamscorer"
	activities "stream-advisor/pkg/registry"

	aa "stream-advisor/internal/workers/guidance/analyze-answer"
	ar "stream-advisor/internal/workers/guidance/archive-recommendation"
	fq "stream-advisor/internal/workers/guidance/fetch-questions"
	nr "stream-advisor/internal/workers/guidance/notify-recommendation"
	rs "stream-advisor/internal/workers/guidance/recommend-stream"
)

var connectRetry = camunda.RetryConfig{Attempts: 10, BaseDelay: 2 * time.Second, MaxDelay: 30 * time.Second}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...", zap.String("version", cfg.App.Version))

	if err := streamscorer.ValidateProfiles(); err != nil {
		zapLog.Fatal("stream profile tables are inconsistent", zap.Error(err))
	}

	obs, err := observability.New(cfg.App.Name)
	if err != nil {
		zapLog.Warn("otel metrics disabled", zap.Error(err))
	}
	defer obs.Shutdown(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = camunda.Retry(ctx, connectRetry, log, "Zeebe client initialization", func(ctx context.Context) error {
		var err error
		zeebe, err = camunda.NewClient(ctx, cfg.Camunda)
		return err
	})
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	defer zeebe.Close()

	// --- PostgreSQL ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres config invalid", zap.Error(err))
	}
	defer pg.Close()
	if err := camunda.Retry(ctx, connectRetry, log, "PostgreSQL connection", pg.Ping); err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}

	// --- Redis ---
	redis, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis config invalid", zap.Error(err))
	}
	defer redis.Close()
	if err := camunda.Retry(ctx, connectRetry, log, "Redis connection", redis.Ping); err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}

	// --- Elasticsearch ---
	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil {
		zapLog.Fatal("elasticsearch config invalid", zap.Error(err))
	}
	if err := camunda.Retry(ctx, connectRetry, log, "Elasticsearch connection", es.Ping); err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}

	// --- AWS ---
	awsCfg := cfg.Integrations.AWS
	var sesSvc nr.SESService
	if awsCfg.SES.Enabled {
		c, err := aws.NewSESClient(ctx, awsCfg.Region)
		if err != nil {
			zapLog.Fatal("ses client failed", zap.Error(err))
		}
		sesSvc = c
	}
	var snsSvc nr.SNSService
	if awsCfg.SNS.Enabled {
		c, err := aws.NewSNSClient(ctx, awsCfg.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		snsSvc = c
	}

	// --- Workers ---
	registry := camunda.NewRegistry(zeebe.GetClient(), log)
	timeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	rsCfg := &rs.Config{
		Timeout:     timeout(rs.TaskType),
		CacheTTL:    cfg.Recommendation.CacheDuration(),
		CachePrefix: cfg.Recommendation.CachePrefix,
	}
	aaCfg := &aa.Config{Timeout: timeout(aa.TaskType)}
	fqCfg := &fq.Config{Timeout: timeout(fq.TaskType)}
	arCfg := &ar.Config{Timeout: timeout(ar.TaskType), Index: cfg.Recommendation.ArchiveIndex}
	nrCfg := &nr.Config{
		EmailEnabled: awsCfg.SES.Enabled,
		SMSEnabled:   awsCfg.SNS.Enabled,
		FromEmail:    awsCfg.SES.FromEmail,
		Subject:      cfg.Recommendation.EmailSubject,
		SenderID:     awsCfg.SNS.SenderID,
		Timeout:      timeout(nr.TaskType),
	}

	for taskType, wc := range map[string]interface{ Validate() error }{
		rs.TaskType: rsCfg,
		aa.TaskType: aaCfg,
		fq.TaskType: fqCfg,
		ar.TaskType: arCfg,
		nr.TaskType: nrCfg,
	} {
		if err := wc.Validate(); err != nil {
			zapLog.Fatal("invalid worker config", zap.String("taskType", taskType), zap.Error(err))
		}
	}

	registry.Start(rs.TaskType, config.GetWorkerConfig(cfg, rs.TaskType), rs.NewHandler(rsCfg, pg.DB, redis, obs, log).Handle)
	registry.Start(aa.TaskType, config.GetWorkerConfig(cfg, aa.TaskType), aa.NewHandler(aaCfg, log).Handle)
	registry.Start(fq.TaskType, config.GetWorkerConfig(cfg, fq.TaskType), fq.NewHandler(fqCfg, log).Handle)
	registry.Start(ar.TaskType, config.GetWorkerConfig(cfg, ar.TaskType), ar.NewHandler(arCfg, es, log).Handle)
	registry.Start(nr.TaskType, config.GetWorkerConfig(cfg, nr.TaskType), nr.NewHandler(nrCfg, pg.DB, sesSvc, snsSvc, log).Handle)

	zapLog.Info("workers registered", zap.Strings("taskTypes", registry.Running()))
	checkActivityRegistry(zapLog, registry.Running())

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]interface{}{"status": "healthy"})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]func(context.Context) error{
			"zeebe":         zeebe.HealthCheck,
			"postgres":      pg.Ping,
			"redis":         redis.Ping,
			"elasticsearch": es.Ping,
		}
		status, body := readiness(r.Context(), checks)
		writeStatus(w, status, body)
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	registry.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// checkActivityRegistry warns about running task types the activity
// registry does not document. It never stops startup.
func checkActivityRegistry(zapLog *zap.Logger, running []string) {
	path := os.Getenv("ACTIVITY_REGISTRY")
	if path == "" {
		path = "configs/activity-registry.json"
	}
	reg, err := activities.LoadRegistry(path)
	if err != nil {
		zapLog.Warn("activity registry unavailable", zap.Error(err))
		return
	}
	if err := reg.Validate(); err != nil {
		zapLog.Warn("activity registry invalid", zap.Error(err))
	}
	if missing := reg.Missing(running...); len(missing) > 0 {
		zapLog.Warn("task types missing from activity registry", zap.Strings("taskTypes", missing))
	}
}

// readiness runs every dependency check with a short deadline.
func readiness(ctx context.Context, checks map[string]func(context.Context) error) (int, map[string]interface{}) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(checks))
	for name, check := range checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not_ready"
	}
	return status, map[string]interface{}{
		"status": state,
		"checks": results,
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
}

func writeStatus(w http.ResponseWriter, status int, body map[string]interface{}) {
	if _, ok := body["time"]; !ok {
		body["time"] = time.Now().UTC().Format(time.RFC3339)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
