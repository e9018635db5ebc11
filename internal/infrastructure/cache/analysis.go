package cache

import (
	"context"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/analysis"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
	"github.com/riskibarqy/matchstudy/internal/observability"
	basecache "github.com/riskibarqy/matchstudy/internal/platform/cache"
)

// Analyzer produces a report for a parsed match page.
type Analyzer interface {
	Analyze(ctx context.Context, fixtureID string, doc page.Document) (analysis.Report, error)
}

// AnalysisCache memoizes reports by fixture id and page fingerprint. A page
// that changes gets a new key, so stale reports are never served for it.
type AnalysisCache struct {
	next    Analyzer
	cache   *basecache.Store[analysis.Report]
	metrics *observability.Metrics
}

func NewAnalysisCache(next Analyzer, cache *basecache.Store[analysis.Report], metrics *observability.Metrics) *AnalysisCache {
	return &AnalysisCache{next: next, cache: cache, metrics: metrics}
}

func (c *AnalysisCache) Analyze(ctx context.Context, fixtureID string, doc page.Document) (analysis.Report, error) {
	if doc == nil {
		return c.next.Analyze(ctx, fixtureID, doc)
	}
	fingerprint := doc.Fingerprint()
	if fingerprint == "" {
		return c.next.Analyze(ctx, fixtureID, doc)
	}

	key := keyPrefix(fixtureID) + fingerprint
	if report, ok := c.cache.Get(ctx, key); ok {
		c.metrics.CacheLookup(true)
		return report, nil
	}
	c.metrics.CacheLookup(false)

	return c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (analysis.Report, error) {
		return c.next.Analyze(ctx, fixtureID, doc)
	})
}

// Invalidate drops every cached report of fixtureID.
func (c *AnalysisCache) Invalidate(ctx context.Context, fixtureID string) {
	c.cache.DeletePrefix(ctx, keyPrefix(fixtureID))
}

func keyPrefix(fixtureID string) string {
	return "analysis:" + strings.TrimSpace(fixtureID) + ":"
}
