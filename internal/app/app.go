package app

import (
	"context"
	"errors"
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riskibarqy/matchstudy/internal/config"
	"github.com/riskibarqy/matchstudy/internal/domain/analysis"
	"github.com/riskibarqy/matchstudy/internal/infrastructure/cache"
	"github.com/riskibarqy/matchstudy/internal/infrastructure/document"
	"github.com/riskibarqy/matchstudy/internal/observability"
	basecache "github.com/riskibarqy/matchstudy/internal/platform/cache"
	"github.com/riskibarqy/matchstudy/internal/platform/logging"
	"github.com/riskibarqy/matchstudy/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const metricsNamespace = "matchstudy"

// Runtime is the wired analyzer together with the resources it owns.
type Runtime struct {
	Config   config.Config
	Logger   *logging.Logger
	Registry *prometheus.Registry
	Metrics  *observability.Metrics
	Analyzer cache.Analyzer
	// Cache is nil when report caching is disabled.
	Cache *cache.AnalysisCache

	shutdownTracing func(context.Context) error
}

func New(cfg config.Config) (*Runtime, error) {
	logger := logging.New(cfg.LogLevel, logging.FileOptions{Path: cfg.LogFile}).
		With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)

	shutdownTracing, err := observability.InitTracing(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init tracing")
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(metricsNamespace, registry)

	svc, err := usecase.NewAnalysisService(usecase.AnalysisConfig{
		Workers:     cfg.Workers,
		Timeout:     cfg.Timeout,
		FormWindow:  cfg.FormWindow,
		Trend:       cfg.Trend,
		RatingBands: cfg.RatingBands,
	}, logger, metrics)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, crerr.Wrap(err, "build analysis service")
	}

	rt := &Runtime{
		Config:          cfg,
		Logger:          logger,
		Registry:        registry,
		Metrics:         metrics,
		Analyzer:        svc,
		shutdownTracing: shutdownTracing,
	}
	if cfg.CacheEnabled {
		rt.Cache = cache.NewAnalysisCache(svc, basecache.NewStore[analysis.Report](cfg.CacheTTL), metrics)
		rt.Analyzer = rt.Cache
	}

	logger.Debug("analyzer ready",
		"workers", cfg.Workers,
		"timeout", cfg.Timeout,
		"cache_enabled", cfg.CacheEnabled,
	)
	return rt, nil
}

// AnalyzePage reads a match page from r and analyzes it as fixtureID.
func (r *Runtime) AnalyzePage(ctx context.Context, fixtureID string, page io.Reader) (analysis.Report, error) {
	if page == nil {
		return analysis.Report{}, crerr.New("match page reader is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(page); err != nil {
		return analysis.Report{}, crerr.Wrap(err, "read match page")
	}
	// The parsed document copies what it needs, so the buffer can go back to
	// the pool.
	doc, err := document.ParseBytes(buf.B)
	if err != nil {
		return analysis.Report{}, err
	}
	return r.Analyzer.Analyze(ctx, fixtureID, doc)
}

// Close flushes logs and stops tracing.
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil {
			errs = append(errs, crerr.Wrap(err, "shutdown tracing"))
		}
	}
	// Syncing stderr fails on some terminals; that is not worth reporting.
	_ = r.Logger.Sync()
	return errors.Join(errs...)
}
