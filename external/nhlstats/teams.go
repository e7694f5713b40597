package nhlstats

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nhl/internal/domain/team"
	"github.com/riskibarqy/nhl/internal/usecase"
)

const teamsPath = "/teams/"

var validate = validator.New()

type teamsEnvelope struct {
	Teams *[]teamItem `json:"teams"`
}

type teamItem struct {
	ID              int64    `json:"id" validate:"required,gt=0"`
	Name            string   `json:"name" validate:"required"`
	Abbreviation    string   `json:"abbreviation"`
	TeamName        string   `json:"teamName"`
	LocationName    string   `json:"locationName"`
	FirstYearOfPlay string   `json:"firstYearOfPlay"`
	Division        namedRef `json:"division"`
	Conference      namedRef `json:"conference"`
	Venue           namedRef `json:"venue"`
	OfficialSiteURL string   `json:"officialSiteUrl"`
	Active          bool     `json:"active"`
}

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Find makes Client usable as a team.Directory without any caching.
func (c *Client) Find(ctx context.Context, id int64) (team.Team, error) {
	return c.FetchTeam(ctx, id)
}

// FetchTeam reads one team. Unknown ids fail with usecase.ErrNotFound.
func (c *Client) FetchTeam(ctx context.Context, id int64) (team.Team, error) {
	if id <= 0 {
		return team.Team{}, errors.Wrapf(usecase.ErrInvalidInput, "team id must be greater than zero, got %d", id)
	}

	var envelope teamsEnvelope
	if _, err := c.doJSON(ctx, teamsPath+strconv.FormatInt(id, 10), nil, &envelope); err != nil {
		if code, ok := StatusCode(err); ok && code == http.StatusNotFound {
			return team.Team{}, fmt.Errorf("%w: team id=%d: %w", usecase.ErrNotFound, id, err)
		}
		return team.Team{}, errors.Wrapf(err, "fetch team id=%d", id)
	}
	if envelope.Teams == nil {
		return team.Team{}, errors.Wrapf(ErrMalformedResponse, "team id=%d: payload has no teams", id)
	}
	if len(*envelope.Teams) == 0 {
		return team.Team{}, errors.Wrapf(usecase.ErrNotFound, "team id=%d", id)
	}

	item := (*envelope.Teams)[0]
	if err := validate.Struct(item); err != nil {
		return team.Team{}, fmt.Errorf("%w: team id=%d: %w", ErrMalformedResponse, id, err)
	}
	return c.mapTeam(item), nil
}

// LogoURL is the dark-background SVG logo for a team id.
func (c *Client) LogoURL(id int64) string {
	return c.logoCDN + "team-" + strconv.FormatInt(id, 10) + "-dark.svg"
}

func (c *Client) mapTeam(item teamItem) team.Team {
	return team.Team{
		ID:              item.ID,
		Name:            item.Name,
		Abbreviation:    item.Abbreviation,
		TeamName:        item.TeamName,
		LocationName:    item.LocationName,
		FirstYearOfPlay: item.FirstYearOfPlay,
		Division:        team.Division{ID: item.Division.ID, Name: item.Division.Name},
		Conference:      team.Conference{ID: item.Conference.ID, Name: item.Conference.Name},
		VenueName:       item.Venue.Name,
		OfficialSiteURL: item.OfficialSiteURL,
		Active:          item.Active,
		LogoURL:         c.LogoURL(item.ID),
	}
}
