//nolint:funlen // ok for tests
package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
	"github.com/mpapenbr/f1-analysis-go/testsupport/basedata"
)

func TestAvgLaptimeByEvent(t *testing.T) {
	a := New(basedata.SampleStore())
	got, skipped := a.AvgLaptimeByEvent("MAX")
	want := []EventLaptime{
		{EventName: "First GP", AvgLaptime: aggregate.Value{Val: 62, Valid: true}, Laps: 2},
		{EventName: "Second GP", AvgLaptime: aggregate.Value{Val: 70, Valid: true}, Laps: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestAvgLaptimeByEventSkipsMalformed(t *testing.T) {
	st, err := store.NewBuilder().
		AddDriver(&model.Driver{ID: 1, Abbrev: "ONE"}).
		AddSession(&model.Session{ID: 1, EventName: "GP", SessionName: "Race"}).
		AddLap(&model.Lap{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			LapTime: "0 days 00:01:00.000000",
		}).
		AddLap(&model.Lap{
			ID: 2, SessionID: 1, DriverID: 1, LapNumber: 2,
			LapTime: "not a duration",
		}).
		AddLap(&model.Lap{ID: 3, SessionID: 1, DriverID: 1, LapNumber: 3}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got, skipped := New(st).AvgLaptimeByEvent("ONE")
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 (empty is not malformed)", skipped)
	}
	// the mean covers only the parseable lap, the count covers all three
	want := []EventLaptime{
		{EventName: "GP", AvgLaptime: aggregate.Value{Val: 60, Valid: true}, Laps: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAvgLaptimeByCompound(t *testing.T) {
	a := New(basedata.SampleStore())

	got, _ := a.AvgLaptimeByCompound("SOFT", 0)
	want := []DriverLaptime{
		{
			Driver: "MAX", Name: "Max Racer",
			AvgLaptime: aggregate.Value{Val: 62, Valid: true}, Laps: 2,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// tyre age restriction drops the first lap
	got, _ = a.AvgLaptimeByCompound("SOFT", 2)
	want = []DriverLaptime{
		{
			Driver: "MAX", Name: "Max Racer",
			AvgLaptime: aggregate.Value{Val: 64, Valid: true}, Laps: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("restricted mismatch (-want +got):\n%s", diff)
	}

	if got, _ := a.AvgLaptimeByCompound("WET", 0); len(got) != 0 {
		t.Errorf("unknown compound: %+v", got)
	}
}

func TestAvgSectorTimes(t *testing.T) {
	a := New(basedata.SampleStore())
	got, skipped := a.AvgSectorTimes()
	// a missing sector sample excludes the lap from that sector's mean only
	want := []DriverSectors{
		{
			Driver: "MAX", Name: "Max Racer",
			AvgSector1: aggregate.Value{Val: 11, Valid: true},
			AvgSector2: aggregate.Value{Val: 21, Valid: true},
			AvgSector3: aggregate.Value{Val: 30, Valid: true},
		},
		{
			Driver: "STE", Name: "John Steady",
			AvgSector1: aggregate.Value{Val: 11, Valid: true},
			AvgSector2: aggregate.Value{Val: 21, Valid: true},
			AvgSector3: aggregate.Value{Val: 30.5, Valid: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
}

func TestAvgSectorTimesDriverWithoutSectorData(t *testing.T) {
	st, err := store.NewBuilder().
		AddDriver(&model.Driver{ID: 1, Abbrev: "ONE", Name: "One"}).
		AddSession(&model.Session{ID: 1, EventName: "GP", SessionName: "Race"}).
		AddLap(&model.Lap{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			Sector1Time: "0 days 00:00:10.000000",
		}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got, _ := New(st).AvgSectorTimes()
	if len(got) != 1 {
		t.Fatalf("rows = %d, want 1", len(got))
	}
	if !got[0].AvgSector1.Valid || got[0].AvgSector2.Valid || got[0].AvgSector3.Valid {
		t.Errorf("sector validity wrong: %+v", got[0])
	}
}

func TestAvgLaptimeByRainfall(t *testing.T) {
	a := New(basedata.SampleStore())
	got, _ := a.AvgLaptimeByRainfall("")
	want := []RainfallLaptime{
		{Driver: "MAX", Rainfall: false, AvgLaptime: aggregate.Value{Val: 62, Valid: true}},
		{Driver: "MAX", Rainfall: true, AvgLaptime: aggregate.Value{Val: 70, Valid: true}},
		{Driver: "STE", Rainfall: false, AvgLaptime: aggregate.Value{Val: 62.5, Valid: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	only, _ := a.AvgLaptimeByRainfall("STE")
	if diff := cmp.Diff(want[2:], only); diff != "" {
		t.Errorf("single driver mismatch (-want +got):\n%s", diff)
	}
}
