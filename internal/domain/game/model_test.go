package game

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/nhl/internal/domain/team"
	teammock "github.com/riskibarqy/nhl/internal/mocks/domain/team"
	"github.com/riskibarqy/nhl/internal/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParse_MapsFixtureFields(t *testing.T) {
	t.Parallel()

	raw := testutil.MustJSON(t, testutil.ScheduleGame(2023020500, "2024-01-16T00:00:00Z", 10, 20))

	g, err := Parse(raw)
	require.NoError(t, err)

	require.Equal(t, int64(2023020500), g.ID())
	require.Equal(t, TypeRegular, g.Type())
	require.Equal(t, "20232024", g.Season())
	require.Equal(t, "Prudential Center", g.VenueName())
	require.Equal(t, "Scheduled", g.State())
	require.Equal(t, "2024-01-16T00:00:00Z", g.RawGameDate())
	require.Equal(t, int64(10), g.HomeTeamID())
	require.Equal(t, int64(20), g.AwayTeamID())

	homeOT, awayOT := 4, 6
	require.Equal(t, LeagueRecord{Wins: 25, Losses: 12, OT: &homeOT, Type: "league"}, g.HomeTeamRecord())
	require.Equal(t, LeagueRecord{Wins: 20, Losses: 15, OT: &awayOT, Type: "league"}, g.AwayTeamRecord())
	require.Equal(t, Side{TeamID: 10, Record: g.HomeTeamRecord()}, g.Home())
}

func TestGame_DateAndTime(t *testing.T) {
	t.Parallel()

	raw := testutil.MustJSON(t, testutil.ScheduleGame(2023020500, "2024-01-16T00:30:00Z", 10, 20))
	g, err := Parse(raw)
	require.NoError(t, err)

	require.True(t, g.Time().Equal(time.Date(2024, 1, 16, 0, 30, 0, 0, time.UTC)))
	require.True(t, g.Date().Equal(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, g.Date(), g.GameDate())
}

func TestGame_AccessorsDoNotLeakState(t *testing.T) {
	t.Parallel()

	raw := testutil.MustJSON(t, testutil.ScheduleGame(2023020500, "2024-01-16T00:00:00Z", 10, 20))
	g, err := Parse(raw)
	require.NoError(t, err)

	record := g.HomeTeamRecord()
	*record.OT = 99
	require.Equal(t, 4, *g.HomeTeamRecord().OT)
}

func TestGame_Participants(t *testing.T) {
	t.Parallel()

	a, err := Parse(testutil.MustJSON(t, testutil.ScheduleGame(1, "2024-04-22T23:00:00Z", 30, 5)))
	require.NoError(t, err)
	b, err := Parse(testutil.MustJSON(t, testutil.ScheduleGame(2, "2024-04-24T23:00:00Z", 5, 30)))
	require.NoError(t, err)

	require.Equal(t, [2]int64{5, 30}, a.Participants())
	require.Equal(t, a.Participants(), b.Participants())
}

func TestNew_RejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	cases := map[string]func(map[string]any){
		"missing gamePk":        func(m map[string]any) { delete(m, "gamePk") },
		"missing gameType":      func(m map[string]any) { delete(m, "gameType") },
		"missing season":        func(m map[string]any) { delete(m, "season") },
		"missing gameDate":      func(m map[string]any) { delete(m, "gameDate") },
		"unparseable gameDate":  func(m map[string]any) { m["gameDate"] = "16/01/2024" },
		"missing detailedState": func(m map[string]any) { delete(m["status"].(map[string]any), "detailedState") },
		"missing home team": func(m map[string]any) {
			delete(m["teams"].(map[string]any)["home"].(map[string]any), "team")
		},
		"missing away side": func(m map[string]any) { delete(m["teams"].(map[string]any), "away") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fixture := testutil.ScheduleGame(2023020500, "2024-01-16T00:00:00Z", 10, 20)
			mutate(fixture)

			_, err := Parse(testutil.MustJSON(t, fixture))
			if !errors.Is(err, ErrInvalidGame) {
				t.Fatalf("expected ErrInvalidGame, got %v", err)
			}
		})
	}
}

func TestNew_VenueIsOptional(t *testing.T) {
	t.Parallel()

	fixture := testutil.ScheduleGame(2023020500, "2024-01-16T00:00:00Z", 10, 20)
	delete(fixture, "venue")
	delete(fixture["teams"].(map[string]any)["home"].(map[string]any)["leagueRecord"].(map[string]any), "ot")

	g, err := Parse(testutil.MustJSON(t, fixture))
	require.NoError(t, err)
	require.Empty(t, g.VenueName())
	require.Nil(t, g.HomeTeamRecord().OT)
}

func TestParse_RejectsNonJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("<html>maintenance</html>"))
	if !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("expected ErrInvalidGame, got %v", err)
	}
}

func TestGame_ResolvesTeamsThroughDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	g, err := Parse(testutil.MustJSON(t, testutil.ScheduleGame(2023020500, "2024-01-16T00:00:00Z", 10, 20)))
	require.NoError(t, err)

	dir := teammock.NewDirectory(t)
	dir.On("Find", mock.Anything, int64(10)).Return(team.Team{ID: 10, Name: "Toronto Maple Leafs"}, nil).Once()
	dir.On("Find", mock.Anything, int64(20)).Return(team.Team{}, errors.New("upstream down")).Once()

	home, err := g.HomeTeam(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, "Toronto Maple Leafs", home.Name)

	_, err = g.AwayTeam(ctx, dir)
	require.ErrorContains(t, err, "find away team id=20")

	_, err = g.HomeTeam(ctx, nil)
	require.Error(t, err)
}
