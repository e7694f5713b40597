package team

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

var ErrInvalidRef = errors.New("invalid team reference")

type Division struct {
	ID   int64
	Name string
}

type Conference struct {
	ID   int64
	Name string
}

// Team is an NHL franchise as reported by the teams endpoint.
type Team struct {
	ID              int64
	Name            string
	Abbreviation    string
	TeamName        string
	LocationName    string
	FirstYearOfPlay string
	Division        Division
	Conference      Conference
	VenueName       string
	OfficialSiteURL string
	Active          bool
	LogoURL         string
}

// Ref points at a team either by identifier or by an already resolved Team.
type Ref struct {
	id     int64
	handle *Team
}

func ID(id int64) Ref {
	return Ref{id: id}
}

func Handle(t Team) Ref {
	return Ref{handle: &t}
}

// TeamID normalizes the reference to a positive identifier.
func (r Ref) TeamID() (int64, error) {
	id := r.id
	if r.handle != nil {
		id = r.handle.ID
	}
	if id <= 0 {
		return 0, errors.Wrapf(ErrInvalidRef, "team id must be greater than zero, got %d", id)
	}
	return id, nil
}

// Team returns the resolved record when the reference was built with Handle.
func (r Ref) Team() (Team, bool) {
	if r.handle == nil {
		return Team{}, false
	}
	return *r.handle, true
}

func (r Ref) String() string {
	if r.handle != nil {
		return "team:" + strconv.FormatInt(r.handle.ID, 10)
	}
	return "team:" + strconv.FormatInt(r.id, 10)
}
