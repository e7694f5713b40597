package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/domain/game"
	"github.com/riskibarqy/nhl/internal/domain/team"
	"github.com/riskibarqy/nhl/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const dateLayout = "2006-01-02"

// Playoff games are looked up inside this window of the calendar year the playoffs end in.
const (
	playoffWindowStart = "04-01"
	playoffWindowEnd   = "09-30"
)

// GameQueryService answers date, range and playoff questions against the schedule endpoint.
// Every call is a single stateless request; nothing is cached or retried.
type GameQueryService struct {
	schedule game.ScheduleSource
	logger   *logging.Logger
	now      func() time.Time
}

func NewGameQueryService(schedule game.ScheduleSource, logger *logging.Logger) *GameQueryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameQueryService{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock returns a copy of the service that reads the current instant from now.
// The location of the returned time decides which calendar day is "today".
func (s *GameQueryService) WithClock(now func() time.Time) *GameQueryService {
	clone := *s
	if now != nil {
		clone.now = now
	}
	return &clone
}

// GamesOnDate returns the games of the first date bucket for date (YYYY-MM-DD).
func (s *GameQueryService) GamesOnDate(ctx context.Context, date string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameQueryService.GamesOnDate")
	defer span.End()
	span.SetAttributes(attribute.String("nhl.date", date))

	schedule, err := s.schedule.FetchSchedule(ctx, game.ScheduleQuery{Date: date})
	if err != nil {
		return nil, s.fail(ctx, span, err, "fetch schedule date=%s", date)
	}
	if len(schedule.Dates) == 0 {
		s.logger.DebugContext(ctx, "no games scheduled", "date", date)
		return []game.Game{}, nil
	}

	games := append(make([]game.Game, 0, len(schedule.Dates[0].Games)), schedule.Dates[0].Games...)
	s.logger.DebugContext(ctx, "games on date fetched", "date", date, "count", len(games))
	return games, nil
}

// GamesInTimePeriod returns every game between startDate and endDate inclusive, in upstream order.
// The range is passed through as given.
func (s *GameQueryService) GamesInTimePeriod(ctx context.Context, startDate, endDate string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameQueryService.GamesInTimePeriod")
	defer span.End()
	span.SetAttributes(attribute.String("nhl.start_date", startDate), attribute.String("nhl.end_date", endDate))

	schedule, err := s.schedule.FetchSchedule(ctx, game.ScheduleQuery{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return nil, s.fail(ctx, span, err, "fetch schedule start_date=%s end_date=%s", startDate, endDate)
	}

	games := flattenSchedule(schedule)
	s.logger.DebugContext(ctx, "games in period fetched", "start_date", startDate, "end_date", endDate, "count", len(games))
	return games, nil
}

// PlayoffSchedule returns the playoff games of ref in the given year.
func (s *GameQueryService) PlayoffSchedule(ctx context.Context, year int, ref team.Ref) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameQueryService.PlayoffSchedule")
	defer span.End()

	teamID, err := normalizeTeamRef(ref)
	if err != nil {
		return nil, s.fail(ctx, span, err, "playoff schedule year=%d", year)
	}
	span.SetAttributes(attribute.Int("nhl.year", year), attribute.Int64("nhl.team_id", teamID))

	return s.playoffSchedule(ctx, span, year, teamID)
}

// PlayoffSeries returns the playoff games between the two teams in the given year,
// whichever side hosted each game. Argument order does not matter.
func (s *GameQueryService) PlayoffSeries(ctx context.Context, year int, teams [2]team.Ref) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameQueryService.PlayoffSeries")
	defer span.End()

	pair := [2]int64{}
	for i, ref := range teams {
		id, err := normalizeTeamRef(ref)
		if err != nil {
			return nil, s.fail(ctx, span, err, "playoff series year=%d", year)
		}
		pair[i] = id
	}
	slices.Sort(pair[:])
	span.SetAttributes(attribute.Int("nhl.year", year), attribute.Int64Slice("nhl.team_ids", pair[:]))

	games, err := s.playoffSchedule(ctx, span, year, pair[0])
	if err != nil {
		return nil, err
	}

	series := make([]game.Game, 0, len(games))
	for _, g := range games {
		if g.Participants() == pair {
			series = append(series, g)
		}
	}
	s.logger.DebugContext(ctx, "playoff series filtered", "year", year, "teams", pair, "count", len(series))
	return series, nil
}

// GamesYesterday, GamesToday and GamesTomorrow use the clock's own location; host local time by default.
func (s *GameQueryService) GamesYesterday(ctx context.Context) ([]game.Game, error) {
	return s.GamesOnDate(ctx, s.relativeDate(-24*time.Hour))
}

func (s *GameQueryService) GamesToday(ctx context.Context) ([]game.Game, error) {
	return s.GamesOnDate(ctx, s.relativeDate(0))
}

func (s *GameQueryService) GamesTomorrow(ctx context.Context) ([]game.Game, error) {
	return s.GamesOnDate(ctx, s.relativeDate(24*time.Hour))
}

func (s *GameQueryService) playoffSchedule(ctx context.Context, span trace.Span, year int, teamID int64) ([]game.Game, error) {
	query := game.ScheduleQuery{
		StartDate: fmt.Sprintf("%d-%s", year, playoffWindowStart),
		EndDate:   fmt.Sprintf("%d-%s", year, playoffWindowEnd),
		TeamID:    teamID,
		GameType:  game.TypePlayoff,
	}
	schedule, err := s.schedule.FetchSchedule(ctx, query)
	if err != nil {
		return nil, s.fail(ctx, span, err, "fetch playoff schedule year=%d team_id=%d", year, teamID)
	}

	games := flattenSchedule(schedule)
	s.logger.DebugContext(ctx, "playoff schedule fetched", "year", year, "team_id", teamID, "count", len(games))
	return games, nil
}

func (s *GameQueryService) relativeDate(offset time.Duration) string {
	return s.now().Add(offset).Format(dateLayout)
}

func (s *GameQueryService) fail(ctx context.Context, span trace.Span, err error, format string, args ...any) error {
	wrapped := errors.Wrapf(err, format, args...)
	span.RecordError(wrapped)
	span.SetStatus(codes.Error, "game query failed")
	s.logger.DebugContext(ctx, "game query failed", "error", wrapped)
	return wrapped
}

func normalizeTeamRef(ref team.Ref) (int64, error) {
	id, err := ref.TeamID()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return id, nil
}

func flattenSchedule(schedule game.Schedule) []game.Game {
	total := 0
	for _, bucket := range schedule.Dates {
		total += len(bucket.Games)
	}
	games := make([]game.Game, 0, total)
	for _, bucket := range schedule.Dates {
		games = append(games, bucket.Games...)
	}
	return games
}
