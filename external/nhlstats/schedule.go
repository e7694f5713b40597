package nhlstats

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/domain/game"
)

const schedulePath = "/schedule"

type scheduleEnvelope struct {
	// Dates is a pointer so a missing key can be told apart from an empty list.
	Dates *[]scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string        `json:"date"`
	Games []game.Source `json:"games"`
}

// FetchSchedule issues one schedule request and maps every game through game.New.
func (c *Client) FetchSchedule(ctx context.Context, query game.ScheduleQuery) (game.Schedule, error) {
	values := scheduleValues(query)

	var envelope scheduleEnvelope
	if _, err := c.doJSON(ctx, schedulePath, values, &envelope); err != nil {
		return game.Schedule{}, err
	}
	if envelope.Dates == nil {
		return game.Schedule{}, errors.Wrapf(ErrMalformedResponse, "schedule %s: payload has no dates", values.Encode())
	}

	schedule := game.Schedule{Dates: make([]game.DateBucket, 0, len(*envelope.Dates))}
	for _, bucket := range *envelope.Dates {
		games := make([]game.Game, 0, len(bucket.Games))
		for _, src := range bucket.Games {
			item, err := game.New(src)
			if err != nil {
				return game.Schedule{}, errors.Wrapf(err, "map schedule date=%s", bucket.Date)
			}
			games = append(games, item)
		}
		schedule.Dates = append(schedule.Dates, game.DateBucket{Date: bucket.Date, Games: games})
	}

	return schedule, nil
}

func scheduleValues(query game.ScheduleQuery) url.Values {
	values := url.Values{}
	if query.Date != "" {
		values.Set("date", query.Date)
	}
	if query.StartDate != "" {
		values.Set("startDate", query.StartDate)
	}
	if query.EndDate != "" {
		values.Set("endDate", query.EndDate)
	}
	if query.TeamID > 0 {
		values.Set("teamId", strconv.FormatInt(query.TeamID, 10))
	}
	if query.GameType != "" {
		values.Set("gameType", string(query.GameType))
	}
	return values
}
