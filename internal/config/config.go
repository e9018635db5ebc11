package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchstudy/internal/domain/form"
	"github.com/riskibarqy/matchstudy/internal/platform/logging"
	"gopkg.in/yaml.v3"
)

// Config stores runtime configuration for the analyzer.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFile        string
	Workers        int
	Timeout        time.Duration
	FormWindow     int
	Trend          form.Thresholds
	RatingBands    form.Bands
	CacheEnabled   bool
	CacheTTL       time.Duration
	ProfileFile    string
	TracingEnabled bool
}

// Profile is the optional YAML overlay for editorial parameters.
type Profile struct {
	FormWindow int              `yaml:"form_window"`
	Trend      *form.Thresholds `yaml:"trend"`
	Rating     *form.Bands      `yaml:"rating"`
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	workers, err := getEnvAsInt("ANALYSIS_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYSIS_WORKERS: %w", err)
	}
	if workers <= 0 {
		return Config{}, fmt.Errorf("ANALYSIS_WORKERS must be > 0")
	}

	timeout, err := time.ParseDuration(getEnv("ANALYSIS_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYSIS_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("ANALYSIS_TIMEOUT must be > 0")
	}

	formWindow, err := getEnvAsInt("ANALYSIS_FORM_WINDOW", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYSIS_FORM_WINDOW: %w", err)
	}
	if formWindow <= 0 {
		return Config{}, fmt.Errorf("ANALYSIS_FORM_WINDOW must be > 0")
	}

	slight, err := getEnvAsFloat("TREND_SLIGHT_THRESHOLD", 0.25)
	if err != nil {
		return Config{}, fmt.Errorf("parse TREND_SLIGHT_THRESHOLD: %w", err)
	}
	sharp, err := getEnvAsFloat("TREND_SHARP_THRESHOLD", 0.5)
	if err != nil {
		return Config{}, fmt.Errorf("parse TREND_SHARP_THRESHOLD: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheEnabled && cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0 when CACHE_ENABLED=true")
	}

	tracingEnabled, err := strconv.ParseBool(getEnv("APP_TRACING_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_TRACING_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "matchstudy"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFile:        strings.TrimSpace(getEnv("APP_LOG_FILE", "")),
		Workers:        workers,
		Timeout:        timeout,
		FormWindow:     formWindow,
		Trend:          form.Thresholds{Slight: slight, Sharp: sharp},
		RatingBands:    form.DefaultBands(),
		CacheEnabled:   cacheEnabled,
		CacheTTL:       cacheTTL,
		ProfileFile:    strings.TrimSpace(getEnv("ANALYSIS_PROFILE_FILE", "")),
		TracingEnabled: tracingEnabled,
	}

	if cfg.ProfileFile != "" {
		profile, err := LoadProfile(cfg.ProfileFile)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.WithProfile(profile)
	}

	if err := cfg.Trend.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid trend thresholds: %w", err)
	}
	if err := validateBands(cfg.RatingBands); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, crerr.Wrapf(err, "read profile %s", path)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, crerr.Wrapf(err, "parse profile %s", path)
	}
	if profile.FormWindow < 0 {
		return Profile{}, crerr.Newf("profile %s: form_window must be >= 0", path)
	}
	return profile, nil
}

// WithProfile returns cfg with the fields set in profile applied on top.
func (c Config) WithProfile(profile Profile) Config {
	if profile.FormWindow > 0 {
		c.FormWindow = profile.FormWindow
	}
	if profile.Trend != nil {
		c.Trend = *profile.Trend
	}
	if profile.Rating != nil {
		c.RatingBands = *profile.Rating
	}
	return c
}

func validateBands(b form.Bands) error {
	if b.Average < 0 || b.Good < b.Average || b.Excellent < b.Good || b.Excellent > 100 {
		return fmt.Errorf("rating bands must satisfy 0 <= average <= good <= excellent <= 100")
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
