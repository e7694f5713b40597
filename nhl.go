// Package nhl reads schedules, games and teams from the public NHL stats API.
package nhl

import (
	"net/http"
	"time"

	"github.com/riskibarqy/nhl/internal/app"
	"github.com/riskibarqy/nhl/internal/config"
	"github.com/riskibarqy/nhl/internal/domain/game"
	"github.com/riskibarqy/nhl/internal/domain/team"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"github.com/riskibarqy/nhl/internal/usecase"
)

type (
	Config       = config.Config
	Game         = game.Game
	GameType     = game.Type
	LeagueRecord = game.LeagueRecord
	Team         = team.Team
	TeamRef      = team.Ref
	Directory    = team.Directory
	Logger       = logging.Logger
)

const (
	TypePreseason = game.TypePreseason
	TypeRegular   = game.TypeRegular
	TypePlayoff   = game.TypePlayoff
	TypeAllStar   = game.TypeAllStar
)

var (
	ErrInvalidInput          = usecase.ErrInvalidInput
	ErrNotFound              = usecase.ErrNotFound
	ErrDependencyUnavailable = usecase.ErrDependencyUnavailable
	ErrInvalidGame           = game.ErrInvalidGame
	ErrInvalidTeamRef        = team.ErrInvalidRef
)

// TeamID refers to a team by its numeric id.
func TeamID(id int64) TeamRef { return team.ID(id) }

// TeamHandle refers to a team through an already resolved record.
func TeamHandle(t Team) TeamRef { return team.Handle(t) }

// DefaultConfig returns the configuration used when no environment overrides are set.
func DefaultConfig() Config { return config.Default() }

type options struct {
	httpClient *http.Client
	logger     *logging.Logger
	now        func() time.Time
}

type Option func(*options)

// WithHTTPClient sets the client used for every upstream request. Its timeout, if any, is the only one applied.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithLogger(l *Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now for GamesYesterday, GamesToday and GamesTomorrow.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Service answers game queries and exposes a cached team directory.
type Service struct {
	*usecase.GameQueryService
	teams  Directory
	images func(string) string
	logos  func(int64) string
}

func New(cfg Config, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	components, err := app.Build(cfg, o.logger, o.httpClient)
	if err != nil {
		return nil, err
	}

	games := components.Games
	if o.now != nil {
		games = games.WithClock(o.now)
	}
	return &Service{
		GameQueryService: games,
		teams:            components.Teams,
		images:           components.Client.ImageURL,
		logos:            components.Client.LogoURL,
	}, nil
}

// NewFromEnv loads the configuration from the environment. Without WithLogger it logs JSON to stdout at APP_LOG_LEVEL.
func NewFromEnv(opts ...Option) (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	defaults := []Option{WithLogger(logging.NewJSON(cfg.LogLevel))}
	return New(cfg, append(defaults, opts...)...)
}

// Teams resolves team ids, for example through Game.HomeTeam.
func (s *Service) Teams() Directory {
	return s.teams
}

// ImageURL joins path onto the configured image CDN.
func (s *Service) ImageURL(path string) string {
	return s.images(path)
}

// LogoURL is the dark-background SVG logo of a team id.
func (s *Service) LogoURL(teamID int64) string {
	return s.logos(teamID)
}
