package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/external/nhlstats"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"github.com/riskibarqy/nhl/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the library.
type Config struct {
	AppEnv                    string
	LogLevel                  logging.Level
	NHLBaseURL                string
	NHLMainCDNURL             string
	NHLLogoCDNURL             string
	HTTPTraceEnabled          bool
	TeamCacheEnabled          bool
	TeamCacheTTL              time.Duration
	TeamCacheMaxEntries       int
	TeamCircuitEnabled        bool
	TeamCircuitFailureCount   int
	TeamCircuitOpenTimeout    time.Duration
	TeamCircuitHalfOpenMaxReq int
}

func Default() Config {
	breaker := resilience.DefaultCircuitBreakerConfig()
	return Config{
		AppEnv:                    EnvDev,
		LogLevel:                  logging.LevelInfo,
		NHLBaseURL:                nhlstats.DefaultBaseURL,
		NHLMainCDNURL:             nhlstats.DefaultMainCDN,
		NHLLogoCDNURL:             nhlstats.DefaultLogoCDN,
		TeamCacheEnabled:          true,
		TeamCacheTTL:              6 * time.Hour,
		TeamCacheMaxEntries:       128,
		TeamCircuitEnabled:        breaker.Enabled,
		TeamCircuitFailureCount:   breaker.FailureThreshold,
		TeamCircuitOpenTimeout:    breaker.OpenTimeout,
		TeamCircuitHalfOpenMaxReq: breaker.HalfOpenMaxReq,
	}
}

// Load reads the environment on top of Default and validates the result.
func Load() (Config, error) {
	cfg := Default()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", cfg.AppEnv))
	if err != nil {
		return Config{}, err
	}
	cfg.AppEnv = appEnv
	cfg.LogLevel = logging.ParseLevel(getEnv("APP_LOG_LEVEL", cfg.LogLevel.String()))

	cfg.NHLBaseURL = strings.TrimSpace(getEnv("NHL_BASE_URL", cfg.NHLBaseURL))
	cfg.NHLMainCDNURL = strings.TrimSpace(getEnv("NHL_MAIN_CDN_URL", cfg.NHLMainCDNURL))
	cfg.NHLLogoCDNURL = strings.TrimSpace(getEnv("NHL_LOGO_CDN_URL", cfg.NHLLogoCDNURL))

	if cfg.HTTPTraceEnabled, err = getEnvAsBool("NHL_HTTP_TRACE_ENABLED", cfg.HTTPTraceEnabled); err != nil {
		return Config{}, err
	}

	if cfg.TeamCacheEnabled, err = getEnvAsBool("TEAM_CACHE_ENABLED", cfg.TeamCacheEnabled); err != nil {
		return Config{}, err
	}
	if cfg.TeamCacheTTL, err = getEnvAsDuration("TEAM_CACHE_TTL", cfg.TeamCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.TeamCacheMaxEntries, err = getEnvAsInt("TEAM_CACHE_MAX_ENTRIES", cfg.TeamCacheMaxEntries); err != nil {
		return Config{}, errors.Wrap(err, "parse TEAM_CACHE_MAX_ENTRIES")
	}

	if cfg.TeamCircuitEnabled, err = getEnvAsBool("TEAM_CIRCUIT_ENABLED", cfg.TeamCircuitEnabled); err != nil {
		return Config{}, err
	}
	if cfg.TeamCircuitFailureCount, err = getEnvAsInt("TEAM_CIRCUIT_FAILURE_COUNT", cfg.TeamCircuitFailureCount); err != nil {
		return Config{}, errors.Wrap(err, "parse TEAM_CIRCUIT_FAILURE_COUNT")
	}
	if cfg.TeamCircuitOpenTimeout, err = getEnvAsDuration("TEAM_CIRCUIT_OPEN_TIMEOUT", cfg.TeamCircuitOpenTimeout); err != nil {
		return Config{}, err
	}
	if cfg.TeamCircuitHalfOpenMaxReq, err = getEnvAsInt("TEAM_CIRCUIT_HALF_OPEN_MAX_REQ", cfg.TeamCircuitHalfOpenMaxReq); err != nil {
		return Config{}, errors.Wrap(err, "parse TEAM_CIRCUIT_HALF_OPEN_MAX_REQ")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := parseAppEnv(c.AppEnv); err != nil {
		return err
	}
	if err := validateHTTPBaseURL("NHL_BASE_URL", c.NHLBaseURL); err != nil {
		return err
	}
	if err := validateHTTPBaseURL("NHL_MAIN_CDN_URL", c.NHLMainCDNURL); err != nil {
		return err
	}
	if err := validateHTTPBaseURL("NHL_LOGO_CDN_URL", c.NHLLogoCDNURL); err != nil {
		return err
	}

	if c.TeamCacheEnabled {
		if c.TeamCacheTTL <= 0 {
			return errors.New("TEAM_CACHE_TTL must be > 0 when TEAM_CACHE_ENABLED=true")
		}
		if c.TeamCacheMaxEntries < 0 {
			return errors.New("TEAM_CACHE_MAX_ENTRIES must be >= 0")
		}
	}

	if err := c.TeamCircuitBreaker().Validate(); err != nil {
		return errors.Wrap(err, "invalid TEAM_CIRCUIT_* settings")
	}

	return nil
}

func (c Config) TeamCircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.TeamCircuitEnabled,
		FailureThreshold: c.TeamCircuitFailureCount,
		OpenTimeout:      c.TeamCircuitOpenTimeout,
		HalfOpenMaxReq:   c.TeamCircuitHalfOpenMaxReq,
	}
}

func validateHTTPBaseURL(key, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.Newf("%s is required", key)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.Newf("%s must use http or https, got %q", key, raw)
	}
	if parsed.Host == "" {
		return errors.Newf("%s must include a host, got %q", key, raw)
	}
	return nil
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

func getEnvAsBool(key string, fallback bool) (bool, error) {
	out, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, errors.Wrapf(err, "parse %s", key)
	}
	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return out, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", errors.Newf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
