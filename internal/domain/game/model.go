package game

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/domain/team"
)

// Type is the upstream game type code.
type Type string

const (
	TypePreseason Type = "PR"
	TypeRegular   Type = "R"
	TypePlayoff   Type = "P"
	TypeAllStar   Type = "A"
)

// LeagueRecord is a team's tally going into a game. OT is nil when upstream omits it.
type LeagueRecord struct {
	Wins   int
	Losses int
	OT     *int
	Type   string
}

// Side is one participant of a game.
type Side struct {
	TeamID int64
	Record LeagueRecord
}

// Game is one scheduled or played contest. It is only built through New or Parse
// and has no setters.
type Game struct {
	id        int64
	gameType  Type
	season    string
	gameDate  string
	startsAt  time.Time
	home      Side
	away      Side
	venueName string
	state     string
}

func (g Game) ID() int64         { return g.id }
func (g Game) Type() Type        { return g.gameType }
func (g Game) Season() string    { return g.season }
func (g Game) VenueName() string { return g.venueName }

// State is the upstream detailed state, e.g. "Scheduled" or "Final".
func (g Game) State() string { return g.state }

// RawGameDate is the gameDate string exactly as received.
func (g Game) RawGameDate() string { return g.gameDate }

// Time is the full start timestamp.
func (g Game) Time() time.Time { return g.startsAt }

// Date is the calendar date of the start timestamp, in the timestamp's own offset.
func (g Game) Date() time.Time {
	y, m, d := g.startsAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.startsAt.Location())
}

// GameDate is an alias of Date.
func (g Game) GameDate() time.Time { return g.Date() }

func (g Game) Home() Side { return copySide(g.home) }
func (g Game) Away() Side { return copySide(g.away) }

func (g Game) HomeTeamID() int64 { return g.home.TeamID }
func (g Game) AwayTeamID() int64 { return g.away.TeamID }

func (g Game) HomeTeamRecord() LeagueRecord { return copySide(g.home).Record }
func (g Game) AwayTeamRecord() LeagueRecord { return copySide(g.away).Record }

// Participants returns both team ids in ascending order, independent of home/away.
func (g Game) Participants() [2]int64 {
	if g.home.TeamID <= g.away.TeamID {
		return [2]int64{g.home.TeamID, g.away.TeamID}
	}
	return [2]int64{g.away.TeamID, g.home.TeamID}
}

// HomeTeam resolves the home team through dir on every call.
func (g Game) HomeTeam(ctx context.Context, dir team.Directory) (team.Team, error) {
	return findTeam(ctx, dir, g.home.TeamID, "home")
}

// AwayTeam resolves the away team through dir on every call.
func (g Game) AwayTeam(ctx context.Context, dir team.Directory) (team.Team, error) {
	return findTeam(ctx, dir, g.away.TeamID, "away")
}

func findTeam(ctx context.Context, dir team.Directory, id int64, side string) (team.Team, error) {
	if dir == nil {
		return team.Team{}, errors.New("team directory is required")
	}
	item, err := dir.Find(ctx, id)
	if err != nil {
		return team.Team{}, errors.Wrapf(err, "find %s team id=%d", side, id)
	}
	return item, nil
}

func copySide(s Side) Side {
	if s.Record.OT != nil {
		ot := *s.Record.OT
		s.Record.OT = &ot
	}
	return s
}
