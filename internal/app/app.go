package app

import (
	"net/http"

	"github.com/riskibarqy/nhl/external/nhlstats"
	"github.com/riskibarqy/nhl/internal/config"
	"github.com/riskibarqy/nhl/internal/infrastructure/teamdirectory"
	"github.com/riskibarqy/nhl/internal/platform/cache"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"github.com/riskibarqy/nhl/internal/usecase"
)

type Components struct {
	Client *nhlstats.Client
	Games  *usecase.GameQueryService
	Teams  *teamdirectory.Cached
}

// Build validates cfg and wires the client, the team directory and the query service.
// httpClient may be nil.
func Build(cfg config.Config, logger *logging.Logger, httpClient *http.Client) (Components, error) {
	if err := cfg.Validate(); err != nil {
		return Components{}, err
	}
	if logger == nil {
		logger = logging.Default()
	}

	client := nhlstats.NewClient(nhlstats.ClientConfig{
		HTTPClient: httpClient,
		BaseURL:    cfg.NHLBaseURL,
		MainCDN:    cfg.NHLMainCDNURL,
		LogoCDN:    cfg.NHLLogoCDNURL,
		Logger:     logger,
		TraceHTTP:  cfg.HTTPTraceEnabled,
	})

	var store *cache.Store
	if cfg.TeamCacheEnabled {
		store = cache.NewStore(cfg.TeamCacheTTL, cfg.TeamCacheMaxEntries)
	}

	return Components{
		Client: client,
		Games:  usecase.NewGameQueryService(client, logger),
		Teams:  teamdirectory.NewCached(client, store, cfg.TeamCircuitBreaker(), logger),
	}, nil
}
