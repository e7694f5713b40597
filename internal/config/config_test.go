package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/nhl/external/nhlstats"
	"github.com/riskibarqy/nhl/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_LOG_LEVEL", "NHL_BASE_URL", "NHL_MAIN_CDN_URL", "NHL_LOGO_CDN_URL",
		"NHL_HTTP_TRACE_ENABLED", "TEAM_CACHE_ENABLED", "TEAM_CACHE_TTL", "TEAM_CACHE_MAX_ENTRIES",
		"TEAM_CIRCUIT_ENABLED", "TEAM_CIRCUIT_FAILURE_COUNT", "TEAM_CIRCUIT_OPEN_TIMEOUT", "TEAM_CIRCUIT_HALF_OPEN_MAX_REQ",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.NHLBaseURL != nhlstats.DefaultBaseURL {
		t.Fatalf("unexpected NHLBaseURL: %q", cfg.NHLBaseURL)
	}
	if cfg.HTTPTraceEnabled {
		t.Fatalf("expected HTTP tracing off by default")
	}
	if !cfg.TeamCacheEnabled || cfg.TeamCacheTTL != 6*time.Hour {
		t.Fatalf("unexpected team cache defaults: enabled=%v ttl=%s", cfg.TeamCacheEnabled, cfg.TeamCacheTTL)
	}
	if !cfg.TeamCircuitEnabled || cfg.TeamCircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: enabled=%v failures=%d", cfg.TeamCircuitEnabled, cfg.TeamCircuitFailureCount)
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", " PROD ")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("NHL_BASE_URL", "http://localhost:8081/api/v1")
	t.Setenv("NHL_MAIN_CDN_URL", "https://images.example.test/")
	t.Setenv("NHL_LOGO_CDN_URL", "https://logos.example.test/")
	t.Setenv("NHL_HTTP_TRACE_ENABLED", "true")
	t.Setenv("TEAM_CACHE_ENABLED", "false")
	t.Setenv("TEAM_CACHE_TTL", "0s")
	t.Setenv("TEAM_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("TEAM_CIRCUIT_OPEN_TIMEOUT", "45s")
	t.Setenv("TEAM_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.NHLBaseURL != "http://localhost:8081/api/v1" {
		t.Fatalf("unexpected NHLBaseURL: %q", cfg.NHLBaseURL)
	}
	if !cfg.HTTPTraceEnabled {
		t.Fatalf("expected HTTP tracing enabled")
	}
	if cfg.TeamCacheEnabled {
		t.Fatalf("expected team cache disabled")
	}

	breaker := cfg.TeamCircuitBreaker()
	if !breaker.Enabled || breaker.FailureThreshold != 3 || breaker.OpenTimeout != 45*time.Second || breaker.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected breaker config: %+v", breaker)
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	cases := map[string]string{
		"NHL_HTTP_TRACE_ENABLED":     "maybe",
		"TEAM_CACHE_TTL":             "six hours",
		"TEAM_CACHE_MAX_ENTRIES":     "many",
		"TEAM_CIRCUIT_FAILURE_COUNT": "1.5",
		"TEAM_CIRCUIT_OPEN_TIMEOUT":  "soon",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected parse error for %s=%q", key, value)
			}
		})
	}
}

func TestValidate_URLs(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":      "",
		"no scheme":  "statsapi.web.nhl.com/api/v1",
		"ftp scheme": "ftp://statsapi.web.nhl.com/api/v1",
		"no host":    "https:///api/v1",
		"bad escape": "https://statsapi.web.nhl.com/%zz",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			cfg.NHLBaseURL = raw
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %q", raw)
			}
		})
	}
}

func TestValidate_ResilienceBounds(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.TeamCacheTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero TTL with cache enabled")
	}

	cfg.TeamCacheEnabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled cache must not validate TTL: %v", err)
	}

	cfg.TeamCircuitFailureCount = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero failure count with circuit enabled")
	}

	cfg.TeamCircuitEnabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled circuit must not validate bounds: %v", err)
	}
}
