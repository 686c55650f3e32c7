package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/testsupport/basedata"
)

func TestLapProfile(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.LapProfile("MAX")
	want := []LapProfile{
		{
			LapNumber:    1,
			AvgSpeed:     aggregate.Value{Val: 165, Valid: true},
			AvgThrottle:  aggregate.Value{Val: 62.5, Valid: true},
			BrakeSamples: 2,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if rows := a.LapProfile("UNL"); len(rows) != 0 {
		t.Errorf("driver without telemetry: %+v", rows)
	}
}

func TestLapTelemetry(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.LapTelemetry("MAX", "first", "race", 1)
	if len(got) != 4 {
		t.Fatalf("samples = %d, want 4", len(got))
	}
	// ordered by distance
	for i := 1; i < len(got); i++ {
		if got[i-1].Distance > got[i].Distance {
			t.Errorf("not ordered by distance: %v before %v",
				got[i-1].Distance, got[i].Distance)
		}
	}
	if rows := a.LapTelemetry("MAX", "first", "race", 99); len(rows) != 0 {
		t.Errorf("unknown lap: %+v", rows)
	}
}

func TestCornerSpeeds(t *testing.T) {
	a := New(basedata.SampleStore())
	got := a.CornerSpeeds([]string{"MAX"}, "first", "race")
	// corner 1 at distance 100 covers the samples at 95 and 110, corner 2
	// at 500 covers the one at 505
	want := []CornerSpeed{
		{Corner: 1, Driver: "MAX", AvgSpeed: aggregate.Value{Val: 130, Valid: true}},
		{Corner: 2, Driver: "MAX", AvgSpeed: aggregate.Value{Val: 90, Valid: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
