package game

import "context"

// ScheduleQuery selects games from the schedule endpoint. Zero fields are left out of the request.
type ScheduleQuery struct {
	Date      string
	StartDate string
	EndDate   string
	TeamID    int64
	GameType  Type
}

// DateBucket groups the games upstream lists under one calendar date.
type DateBucket struct {
	Date  string
	Games []Game
}

type Schedule struct {
	Dates []DateBucket
}

// ScheduleSource exposes schedule reads from the upstream API.
type ScheduleSource interface {
	FetchSchedule(ctx context.Context, query ScheduleQuery) (Schedule, error)
}
