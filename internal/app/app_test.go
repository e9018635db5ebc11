package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/riskibarqy/matchstudy/internal/config"
	"github.com/riskibarqy/matchstudy/internal/domain/form"
	"github.com/riskibarqy/matchstudy/internal/platform/logging"
	"github.com/riskibarqy/matchstudy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:       config.EnvDev,
		ServiceName:  "matchstudy",
		LogLevel:     logging.LevelError,
		Workers:      4,
		Timeout:      5 * time.Second,
		FormWindow:   8,
		Trend:        form.DefaultThresholds(),
		RatingBands:  form.DefaultBands(),
		CacheEnabled: true,
		CacheTTL:     time.Minute,
	}
}

func TestRuntime_AnalyzePageUsesCache(t *testing.T) {
	raw, err := os.ReadFile("../infrastructure/document/testdata/match_page.html")
	require.NoError(t, err)

	rt, err := New(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(context.Background()) })
	require.NotNil(t, rt.Cache)

	first, err := rt.AnalyzePage(context.Background(), "2571234", bytes.NewReader(raw))
	require.NoError(t, err)
	second, err := rt.AnalyzePage(context.Background(), "2571234", bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, float64(1), testutil.ToFloat64(rt.Metrics.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rt.Metrics.AnalysesTotal.WithLabelValues("ok")))
}

func TestRuntime_CacheDisabledAndErrors(t *testing.T) {
	cfg := testConfig()
	cfg.CacheEnabled = false

	rt, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Close(context.Background()) })
	assert.Nil(t, rt.Cache)

	_, err = rt.AnalyzePage(context.Background(), "1", bytes.NewReader(nil))
	require.Error(t, err)

	_, err = rt.AnalyzePage(context.Background(), "1", bytes.NewReader([]byte("<html><body></body></html>")))
	if !errors.Is(err, usecase.ErrMissingPrimaryInfo) {
		t.Fatalf("expected ErrMissingPrimaryInfo, got %v", err)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 0
	_, err := New(cfg)
	if !errors.Is(err, usecase.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("config error must not be reported as invalid input: %v", err)
	}
}
