package game

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidGame = errors.New("invalid game")

var validate = validator.New()

// Source is the subset of an upstream schedule game object that Game is built from.
type Source struct {
	GamePk   int64        `json:"gamePk" validate:"required,gt=0"`
	GameType string       `json:"gameType" validate:"required"`
	Season   string       `json:"season" validate:"required"`
	GameDate string       `json:"gameDate" validate:"required"`
	Teams    TeamsSource  `json:"teams"`
	Venue    VenueSource  `json:"venue"`
	Status   StatusSource `json:"status"`
}

type TeamsSource struct {
	Home SideSource `json:"home"`
	Away SideSource `json:"away"`
}

type SideSource struct {
	LeagueRecord LeagueRecordSource `json:"leagueRecord"`
	Team         TeamIDSource       `json:"team"`
}

type TeamIDSource struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

type LeagueRecordSource struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	OT     *int   `json:"ot"`
	Type   string `json:"type"`
}

type VenueSource struct {
	Name string `json:"name"`
}

type StatusSource struct {
	DetailedState string `json:"detailedState" validate:"required"`
}

// New validates src and maps it onto a Game. Any missing required field fails construction.
func New(src Source) (Game, error) {
	if err := validate.Struct(src); err != nil {
		return Game{}, fmt.Errorf("%w: gamePk=%d: %w", ErrInvalidGame, src.GamePk, err)
	}

	startsAt, err := time.Parse(time.RFC3339, src.GameDate)
	if err != nil {
		return Game{}, fmt.Errorf("%w: gamePk=%d: parse gameDate: %w", ErrInvalidGame, src.GamePk, err)
	}

	return Game{
		id:        src.GamePk,
		gameType:  Type(src.GameType),
		season:    src.Season,
		gameDate:  src.GameDate,
		startsAt:  startsAt,
		home:      mapSide(src.Teams.Home),
		away:      mapSide(src.Teams.Away),
		venueName: src.Venue.Name,
		state:     src.Status.DetailedState,
	}, nil
}

// Parse decodes one upstream game object and builds a Game from it.
func Parse(raw []byte) (Game, error) {
	var src Source
	if err := sonic.Unmarshal(raw, &src); err != nil {
		return Game{}, fmt.Errorf("%w: decode game object: %w", ErrInvalidGame, err)
	}
	return New(src)
}

func mapSide(src SideSource) Side {
	return copySide(Side{
		TeamID: src.Team.ID,
		Record: LeagueRecord{
			Wins:   src.LeagueRecord.Wins,
			Losses: src.LeagueRecord.Losses,
			OT:     src.LeagueRecord.OT,
			Type:   src.LeagueRecord.Type,
		},
	})
}
