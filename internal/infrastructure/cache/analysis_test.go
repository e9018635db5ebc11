package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/matchstudy/internal/domain/analysis"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
	pagemock "github.com/riskibarqy/matchstudy/internal/mocks/domain/page"
	"github.com/riskibarqy/matchstudy/internal/observability"
	basecache "github.com/riskibarqy/matchstudy/internal/platform/cache"
)

type countingAnalyzer struct {
	calls atomic.Int32
	err   error
}

func (a *countingAnalyzer) Analyze(_ context.Context, fixtureID string, _ page.Document) (analysis.Report, error) {
	a.calls.Add(1)
	if a.err != nil {
		return analysis.Report{}, a.err
	}
	return analysis.Report{FixtureID: fixtureID}, nil
}

func pageWithFingerprint(t *testing.T, fingerprint string) *pagemock.Document {
	t.Helper()
	doc := pagemock.NewDocument(t)
	doc.On("Fingerprint").Return(fingerprint)
	return doc
}

func TestAnalysisCache_ReusesReportForSamePage(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}
	metrics := observability.NewMetrics("test", prometheus.NewRegistry())
	c := NewAnalysisCache(next, basecache.NewStore[analysis.Report](time.Minute), metrics)
	doc := pageWithFingerprint(t, "abc123")

	for i := 0; i < 3; i++ {
		report, err := c.Analyze(context.Background(), "42", doc)
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if report.FixtureID != "42" {
			t.Fatalf("unexpected fixture id %q", report.FixtureID)
		}
	}

	if got := next.calls.Load(); got != 1 {
		t.Fatalf("analyzer called %d times, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("hit")); got != 2 {
		t.Fatalf("cache hits = %v, want 2", got)
	}
}

func TestAnalysisCache_NewFingerprintMisses(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}
	c := NewAnalysisCache(next, basecache.NewStore[analysis.Report](time.Minute), nil)

	if _, err := c.Analyze(context.Background(), "42", pageWithFingerprint(t, "v1")); err != nil {
		t.Fatalf("analyze v1: %v", err)
	}
	if _, err := c.Analyze(context.Background(), "42", pageWithFingerprint(t, "v2")); err != nil {
		t.Fatalf("analyze v2: %v", err)
	}
	if got := next.calls.Load(); got != 2 {
		t.Fatalf("analyzer called %d times, want 2", got)
	}
}

func TestAnalysisCache_InvalidateAndErrors(t *testing.T) {
	t.Parallel()

	next := &countingAnalyzer{}
	store := basecache.NewStore[analysis.Report](time.Minute)
	c := NewAnalysisCache(next, store, nil)
	ctx := context.Background()

	if _, err := c.Analyze(ctx, "42", pageWithFingerprint(t, "v1")); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := c.Analyze(ctx, "7", pageWithFingerprint(t, "v1")); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	c.Invalidate(ctx, "42")
	if store.Len() != 1 {
		t.Fatalf("expected one cached report after invalidation, got %d", store.Len())
	}

	next.err = errors.New("analysis failed")
	if _, err := c.Analyze(ctx, "99", pageWithFingerprint(t, "v1")); !errors.Is(err, next.err) {
		t.Fatalf("expected analyzer error, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("failed analyses must not be cached")
	}
}
