//nolint:funlen // ok for tests
package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
	"github.com/mpapenbr/f1-analysis-go/pkg/timespan"
	"github.com/mpapenbr/f1-analysis-go/testsupport/basedata"
)

func TestDriverSessions(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.DriverSessions("MAX", 0)
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	// newest first
	if got[0].EventName != "Second GP" || got[1].EventName != "First GP" {
		t.Errorf("order wrong: %s, %s", got[0].EventName, got[1].EventName)
	}
	if got[0].Team != "Alpha Racing" || got[0].Position != 2 || got[0].Points != 18 {
		t.Errorf("row = %+v", got[0])
	}
	if rows := a.DriverSessions("MAX", 2022); len(rows) != 0 {
		t.Errorf("year filter: %+v", rows)
	}
}

func TestCompareDrivers(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.CompareDrivers([]string{"STE", "MAX", "UNL"}, "first", "race")
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	order := []string{got[0].Driver, got[1].Driver, got[2].Driver}
	// by finish position, the unclassified result last
	if diff := cmp.Diff([]string{"MAX", "STE", "UNL"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCircuitResults(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.CircuitResults("test")
	if len(got) != 5 {
		t.Fatalf("rows = %d, want 5", len(got))
	}
	// newest first
	dates := []string{got[0].Date, got[2].Date, got[4].Date}
	if diff := cmp.Diff([]string{"2023-05-21", "2023-05-07", "2023-05-07"}, dates); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if got[0].Driver != "MAX" || got[0].EventName != "Second GP" || got[0].Points != 18 {
		t.Errorf("row = %+v", got[0])
	}
	if rows := a.CircuitResults("nordschleife"); len(rows) != 0 {
		t.Errorf("unknown circuit: %+v", rows)
	}
}

func TestSessionLaps(t *testing.T) {
	a := New(basedata.SampleStore())
	got, skipped := a.SessionLaps("MAX", "first", "race")
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	want := []LapDetail{
		{
			LapNumber: 1,
			LapTime:   timespan.Of(60),
			Sector1:   timespan.Of(10),
			Sector2:   timespan.Of(20),
			Sector3:   timespan.Of(30),
			Compound:  "SOFT", TyreLife: 1, Position: 2,
		},
		{
			LapNumber: 2,
			LapTime:   timespan.Of(64),
			Sector1:   timespan.Of(12),
			Sector2:   timespan.Of(22),
			Sector3:   timespan.None(),
			Compound:  "SOFT", TyreLife: 2, Position: 1, PersonalBest: true,
		},
	}
	if diff := cmp.Diff(want, got,
		cmp.Comparer(func(x, y timespan.Span) bool {
			if x.Valid() != y.Valid() {
				return false
			}
			return !x.Valid() || x.Seconds() == y.Seconds()
		})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionLapsCountsMalformed(t *testing.T) {
	st, err := store.NewBuilder().
		AddDriver(&model.Driver{ID: 1, Abbrev: "ONE"}).
		AddSession(&model.Session{ID: 1, EventName: "GP", SessionName: "Race"}).
		AddLap(&model.Lap{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			LapTime:     "garbage",
			Sector1Time: "also garbage",
		}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got, skipped := New(st).SessionLaps("ONE", "", "")
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2 (one per malformed field)", skipped)
	}
	if len(got) != 1 || got[0].LapTime.Valid() {
		t.Errorf("rows = %+v", got)
	}
}
