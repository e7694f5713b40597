package team

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestRef_TeamID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		ref     Ref
		want    int64
		wantErr bool
	}{
		{name: "identifier", ref: ID(10), want: 10},
		{name: "handle", ref: Handle(Team{ID: 5, Name: "Washington Capitals"}), want: 5},
		{name: "zero value", ref: Ref{}, wantErr: true},
		{name: "negative identifier", ref: ID(-3), wantErr: true},
		{name: "handle without id", ref: Handle(Team{Name: "TBD"}), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.ref.TeamID()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidRef) {
					t.Fatalf("expected ErrInvalidRef, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected id: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestRef_HandleIsACopy(t *testing.T) {
	t.Parallel()

	original := Team{ID: 10, Name: "Toronto Maple Leafs"}
	ref := Handle(original)
	original.Name = "changed"

	got, ok := ref.Team()
	if !ok {
		t.Fatalf("expected handle to carry a team")
	}
	if got.Name != "Toronto Maple Leafs" {
		t.Fatalf("handle shares state with caller: %q", got.Name)
	}
	if _, ok := ID(10).Team(); ok {
		t.Fatalf("identifier ref must not carry a team")
	}
	if ref.String() != "team:10" {
		t.Fatalf("unexpected string: %s", ref.String())
	}
}
