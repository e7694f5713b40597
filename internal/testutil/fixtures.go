package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

// ScheduleGame builds one upstream schedule game object with a regular-season shape.
func ScheduleGame(gamePk int64, gameDate string, homeID, awayID int64) map[string]any {
	return map[string]any{
		"gamePk":   gamePk,
		"link":     "/api/v1/game/" + strconv.FormatInt(gamePk, 10) + "/feed/live",
		"gameType": "R",
		"season":   "20232024",
		"gameDate": gameDate,
		"status": map[string]any{
			"abstractGameState": "Preview",
			"codedGameState":    "1",
			"detailedState":     "Scheduled",
			"statusCode":        "1",
		},
		"teams": map[string]any{
			"away": map[string]any{
				"leagueRecord": map[string]any{"wins": 20, "losses": 15, "ot": 6, "type": "league"},
				"score":        0,
				"team":         map[string]any{"id": awayID, "name": "Away Team", "link": "/api/v1/teams/" + strconv.FormatInt(awayID, 10)},
			},
			"home": map[string]any{
				"leagueRecord": map[string]any{"wins": 25, "losses": 12, "ot": 4, "type": "league"},
				"score":        0,
				"team":         map[string]any{"id": homeID, "name": "Home Team", "link": "/api/v1/teams/" + strconv.FormatInt(homeID, 10)},
			},
		},
		"venue": map[string]any{"id": 5064, "name": "Prudential Center"},
	}
}

// PlayoffGame is ScheduleGame with gameType P and playoff records.
func PlayoffGame(gamePk int64, gameDate string, homeID, awayID int64) map[string]any {
	item := ScheduleGame(gamePk, gameDate, homeID, awayID)
	item["gameType"] = "P"
	item["status"].(map[string]any)["detailedState"] = "Final"
	teams := item["teams"].(map[string]any)
	for _, side := range []string{"home", "away"} {
		teams[side].(map[string]any)["leagueRecord"] = map[string]any{"wins": 2, "losses": 1, "type": "league"}
	}
	return item
}

func DateBucket(date string, games ...map[string]any) map[string]any {
	items := make([]any, 0, len(games))
	for _, g := range games {
		items = append(items, g)
	}
	return map[string]any{
		"date":       date,
		"totalGames": len(games),
		"games":      items,
	}
}

func ScheduleEnvelope(buckets ...map[string]any) map[string]any {
	dates := make([]any, 0, len(buckets))
	totalGames := 0
	for _, b := range buckets {
		dates = append(dates, b)
		totalGames += b["totalGames"].(int)
	}
	return map[string]any{
		"copyright":  "NHL and the NHL Shield are registered trademarks of the National Hockey League.",
		"totalItems": totalGames,
		"totalGames": totalGames,
		"dates":      dates,
	}
}

func TeamObject(id int64, name, abbreviation string) map[string]any {
	return map[string]any{
		"id":              id,
		"name":            name,
		"abbreviation":    abbreviation,
		"teamName":        name,
		"locationName":    "Location",
		"firstYearOfPlay": "1982",
		"division":        map[string]any{"id": 18, "name": "Metropolitan"},
		"conference":      map[string]any{"id": 6, "name": "Eastern"},
		"venue":           map[string]any{"name": "Prudential Center"},
		"officialSiteUrl": "http://www.newjerseydevils.com/",
		"active":          true,
	}
}

func MustJSON(t testing.TB, v any) []byte {
	t.Helper()
	raw, err := jsoniter.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

// FixtureServer serves canned upstream responses and records every request it sees.
type FixtureServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewFixtureServer starts a server that answers each request with respond(r). The server is closed on test cleanup.
func NewFixtureServer(t testing.TB, respond func(r *http.Request) (int, any)) *FixtureServer {
	t.Helper()

	fs := &FixtureServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.mu.Lock()
		fs.requests = append(fs.requests, r.Clone(r.Context()))
		fs.mu.Unlock()

		status, body := respond(r)
		if raw, ok := body.([]byte); ok {
			w.WriteHeader(status)
			_, _ = w.Write(raw)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = jsoniter.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *FixtureServer) Requests() []*http.Request {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]*http.Request(nil), fs.requests...)
}
