//nolint:funlen // ok for tests
package ingest

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

func variantASnapshot() *Snapshot {
	return &Snapshot{
		Circuits: []*RawCircuit{{
			ID: 1, Name: "Ring", Rotation: 45.0,
			Corners: []RawMarker{{Number: 1, Distance: 100.0}},
		}},
		Drivers: []*RawDriver{
			{ID: 1, Name: "Driver One", Abbrev: "ONE", Number: 11},
		},
		Teams: []*RawTeam{{ID: 1, Name: "Alpha"}},
		Sessions: []*RawSession{{
			ID: 1, EventName: "First GP", SessionName: "Race",
			Date: "2023-05-07T15:00:00", CircuitID: 1,
		}},
		Results: []*RawResult{{
			ID: 1, DriverID: 1, TeamID: 1, SessionID: 1,
			Position: 1, ClassifiedPosition: "1", GridPosition: 3,
			Points: 25.0, Laps: 50,
		}},
		Laps: []*RawLap{{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			LapTime: "0 days 00:01:00.000000", Compound: "SOFT", TyreLife: 1,
		}},
		Weather:   []*RawWeather{{ID: 1, SessionID: 1, Rainfall: true}},
		Telemetry: []*RawTelemetry{{ID: 1, LapID: 1, Speed: 200.0, Distance: 100.0}},
	}
}

func TestNormalizeVariantEquivalence(t *testing.T) {
	variantA := variantASnapshot()

	variantB := variantASnapshot()
	variantB.Sessions[0].ResultID = 1
	variantB.Results[0].SessionID = nil

	storeA, err := variantA.Normalize()
	if err != nil {
		t.Fatalf("variant A: %v", err)
	}
	storeB, err := variantB.Normalize()
	if err != nil {
		t.Fatalf("variant B: %v", err)
	}

	rowsA := storeA.ResultsFor("")
	rowsB := storeB.ResultsFor("")
	if diff := cmp.Diff(rowsA, rowsB); diff != "" {
		t.Errorf("variants must normalize identically (-A +B):\n%s", diff)
	}
	if rowsA[0].Result.SessionID != 1 {
		t.Errorf("result session = %d, want 1", rowsA[0].Result.SessionID)
	}
}

func TestNormalizeUnlinkedResult(t *testing.T) {
	snap := variantASnapshot()
	snap.Results[0].SessionID = nil

	_, err := snap.Normalize()
	var refErr *store.UnresolvedReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("Normalize() error = %v, want UnresolvedReferenceError", err)
	}
	if refErr.Entity != "result" || refErr.ID != 1 {
		t.Errorf("error detail = %+v", refErr)
	}
}

func TestNormalizeLooseTypes(t *testing.T) {
	// numbers as strings, booleans as 0/1: this happens when a snapshot was
	// produced by a tool without a schema
	snap := variantASnapshot()
	snap.Results[0].Points = "25"
	snap.Results[0].GridPosition = "3"
	snap.Laps[0].TyreLife = 1.0
	snap.Laps[0].PersonalBest = 1
	snap.Weather[0].Rainfall = "true"

	st, err := snap.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	res := st.ResultsFor("")[0].Result
	if res.Points != 25 || res.GridPosition != 3 {
		t.Errorf("result = %+v", res)
	}
	lap := st.LapsFor(store.LapFilter{})[0].Lap
	if lap.TyreLife != 1 || !lap.PersonalBest {
		t.Errorf("lap = %+v", lap)
	}
	if rows := st.WeatherJoinedLaps(""); !rows[0].Weather.Rainfall {
		t.Errorf("rainfall not converted")
	}
}

func TestNormalizeBadDate(t *testing.T) {
	snap := variantASnapshot()
	snap.Sessions[0].Date = "07.05.2023"
	if _, err := snap.Normalize(); err == nil {
		t.Errorf("Normalize() must reject unparseable dates")
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	snap := variantASnapshot()
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := WriteFile(path, snap); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	stWant, err := snap.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	stGot, err := loaded.Normalize()
	if err != nil {
		t.Fatalf("Normalize loaded: %v", err)
	}
	if diff := cmp.Diff(
		stWant.LapsFor(store.LapFilter{}),
		stGot.LapsFor(store.LapFilter{})); diff != "" {
		t.Errorf("laps differ after round trip:\n%s", diff)
	}
	if diff := cmp.Diff(stWant.ResultsFor(""), stGot.ResultsFor("")); diff != "" {
		t.Errorf("results differ after round trip:\n%s", diff)
	}
}

func TestLoadBytesRejectsGarbage(t *testing.T) {
	if _, err := LoadBytes([]byte("{not json")); err == nil {
		t.Errorf("LoadBytes must reject invalid json")
	}
}
