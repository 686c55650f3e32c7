//nolint:funlen,dupl // ok for tests
package store

import (
	"errors"
	"testing"
	"time"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewBuilder().
		AddCircuit(&model.Circuit{ID: 1, Name: "Ring"}).
		AddTeam(&model.Team{ID: 1, Name: "Alpha"}).
		AddTeam(&model.Team{ID: 2, Name: "Beta"}).
		AddDriver(&model.Driver{ID: 1, Name: "Driver One", Abbrev: "ONE"}).
		AddDriver(&model.Driver{ID: 2, Name: "Driver Two", Abbrev: "TWO"}).
		AddSession(&model.Session{
			ID: 1, EventName: "First GP", SessionName: "Race",
			Date: time.Date(2023, 5, 7, 15, 0, 0, 0, time.UTC), CircuitID: 1,
		}).
		AddSession(&model.Session{
			ID: 2, EventName: "First GP", SessionName: "Qualifying",
			Date: time.Date(2023, 5, 6, 14, 0, 0, 0, time.UTC), CircuitID: 1,
		}).
		AddResult(&model.Result{
			ID: 1, DriverID: 1, TeamID: 1, SessionID: 1,
			Position: 1, ClassifiedPosition: "1", GridPosition: 3, Points: 25,
		}).
		AddResult(&model.Result{
			ID: 2, DriverID: 2, TeamID: 2, SessionID: 1,
			Position: 2, ClassifiedPosition: "2", GridPosition: 1, Points: 18,
		}).
		AddLap(&model.Lap{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			LapTime: "0 days 00:01:00.000000", Compound: "SOFT", TyreLife: 1,
		}).
		AddLap(&model.Lap{
			ID: 2, SessionID: 1, DriverID: 1, LapNumber: 2,
			LapTime: "0 days 00:01:02.000000", Compound: "SOFT", TyreLife: 2,
		}).
		AddLap(&model.Lap{
			ID: 3, SessionID: 1, DriverID: 2, LapNumber: 1,
			LapTime: "0 days 00:01:01.000000", Compound: "MEDIUM", TyreLife: 8,
		}).
		AddLap(&model.Lap{
			ID: 4, SessionID: 2, DriverID: 1, LapNumber: 1,
			LapTime: "0 days 00:00:58.000000", Compound: "SOFT", TyreLife: 1,
		}).
		AddWeather(&model.Weather{ID: 1, SessionID: 1, Rainfall: false}).
		AddWeather(&model.Weather{ID: 2, SessionID: 1, Rainfall: true}).
		AddTelemetry(&model.Telemetry{ID: 1, LapID: 1, Distance: 100, Speed: 200}).
		AddTelemetry(&model.Telemetry{ID: 2, LapID: 3, Distance: 150, Speed: 210}).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return st
}

func TestLapsFor(t *testing.T) {
	st := testStore(t)
	tests := []struct {
		name   string
		filter LapFilter
		want   int
	}{
		{name: "all", filter: LapFilter{}, want: 4},
		{name: "race only", filter: LapFilter{SessionName: "Race"}, want: 3},
		{name: "driver", filter: LapFilter{DriverAbbr: "ONE"}, want: 3},
		{name: "race and driver", filter: LapFilter{SessionName: "Race", DriverAbbr: "ONE"}, want: 2},
		{name: "compound", filter: LapFilter{Compound: "MEDIUM"}, want: 1},
		{name: "tyre life", filter: LapFilter{MinTyreLife: 2}, want: 2},
		{name: "session name is exact", filter: LapFilter{SessionName: "race"}, want: 0},
		{name: "unknown driver", filter: LapFilter{DriverAbbr: "XXX"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.LapsFor(tt.filter)
			if len(got) != tt.want {
				t.Errorf("LapsFor(%+v) = %d rows, want %d", tt.filter, len(got), tt.want)
			}
			for _, r := range got {
				if r.Driver == nil || r.Session == nil {
					t.Errorf("row not fully joined: %+v", r)
				}
			}
		})
	}
}

func TestResultsFor(t *testing.T) {
	st := testStore(t)
	rows := st.ResultsFor("Race")
	if len(rows) != 2 {
		t.Fatalf("ResultsFor(Race) = %d rows, want 2", len(rows))
	}
	if rows[0].Team.Name != "Alpha" || rows[1].Team.Name != "Beta" {
		t.Errorf("team join wrong: %s, %s", rows[0].Team.Name, rows[1].Team.Name)
	}
	if got := st.ResultsFor(""); len(got) != 2 {
		t.Errorf("ResultsFor(all) = %d rows, want 2", len(got))
	}
}

func TestTelemetryFor(t *testing.T) {
	st := testStore(t)
	rows := st.TelemetryFor("TWO")
	if len(rows) != 1 {
		t.Fatalf("TelemetryFor(TWO) = %d rows, want 1", len(rows))
	}
	if rows[0].Lap.ID != 3 || rows[0].Session.ID != 1 {
		t.Errorf("telemetry join wrong: lap %d session %d", rows[0].Lap.ID, rows[0].Session.ID)
	}
	if got := st.TelemetryFor(""); len(got) != 2 {
		t.Errorf("TelemetryFor(all) = %d rows, want 2", len(got))
	}
}

func TestWeatherJoinedLaps(t *testing.T) {
	st := testStore(t)
	// 3 race laps x 2 weather samples of session 1
	rows := st.WeatherJoinedLaps("Race")
	if len(rows) != 6 {
		t.Fatalf("WeatherJoinedLaps(Race) = %d rows, want 6 (cartesian)", len(rows))
	}
	// the qualifying session has no weather sample: its lap contributes
	// nothing
	all := st.WeatherJoinedLaps("")
	if len(all) != 6 {
		t.Errorf("WeatherJoinedLaps(all) = %d rows, want 6", len(all))
	}
}

func TestLookups(t *testing.T) {
	st := testStore(t)
	if d, ok := st.DriverByAbbr("ONE"); !ok || d.ID != 1 {
		t.Errorf("DriverByAbbr(ONE) = %+v, %v", d, ok)
	}
	if _, ok := st.DriverByAbbr("one"); ok {
		t.Errorf("DriverByAbbr must be case-sensitive")
	}
	if !st.HasSessionName("Race") || st.HasSessionName("Sprint") {
		t.Errorf("HasSessionName wrong")
	}
	if c, ok := st.Circuit(1); !ok || c.Name != "Ring" {
		t.Errorf("Circuit(1) = %+v, %v", c, ok)
	}
	sessions := st.Sessions()
	if len(sessions) != 2 || sessions[0].ID != 1 {
		t.Errorf("Sessions() = %+v", sessions)
	}
	teams := st.Teams()
	if len(teams) != 2 || teams[0].Name != "Alpha" {
		t.Errorf("Teams() = %+v", teams)
	}
	if hits := st.MatchCircuits("RIN"); len(hits) != 1 || hits[0].ID != 1 {
		t.Errorf("MatchCircuits(RIN) = %+v", hits)
	}
	if hits := st.MatchCircuits("monza"); len(hits) != 0 {
		t.Errorf("MatchCircuits(monza) = %+v", hits)
	}
}

func TestMatchSessions(t *testing.T) {
	st := testStore(t)
	tests := []struct {
		name     string
		event    string
		session  string
		wantHits int
	}{
		{name: "both fragments", event: "first", session: "race", wantHits: 1},
		{name: "event only", event: "First", session: "", wantHits: 2},
		{name: "empty matches all", event: "", session: "", wantHits: 2},
		{name: "case-insensitive", event: "FIRST GP", session: "QUALI", wantHits: 1},
		{name: "no hit", event: "monza", session: "", wantHits: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.MatchSessions(tt.event, tt.session)
			if len(got) != tt.wantHits {
				t.Errorf("MatchSessions(%q,%q) = %d hits, want %d",
					tt.event, tt.session, len(got), tt.wantHits)
			}
		})
	}
}

func TestBuilderRejectsUnresolvedReferences(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{name: "session without circuit", build: func(b *Builder) {
			b.AddSession(&model.Session{ID: 1, SessionName: "Race", CircuitID: 99})
		}},
		{name: "result without driver", build: func(b *Builder) {
			b.AddSession(&model.Session{ID: 1, SessionName: "Race"}).
				AddTeam(&model.Team{ID: 1}).
				AddResult(&model.Result{ID: 1, DriverID: 99, TeamID: 1, SessionID: 1})
		}},
		{name: "lap without session", build: func(b *Builder) {
			b.AddDriver(&model.Driver{ID: 1, Abbrev: "ONE"}).
				AddLap(&model.Lap{ID: 1, SessionID: 99, DriverID: 1})
		}},
		{name: "weather without session", build: func(b *Builder) {
			b.AddWeather(&model.Weather{ID: 1, SessionID: 99})
		}},
		{name: "telemetry without lap", build: func(b *Builder) {
			b.AddTelemetry(&model.Telemetry{ID: 1, LapID: 99})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.build(b)
			_, err := b.Build()
			var refErr *UnresolvedReferenceError
			if !errors.As(err, &refErr) {
				t.Errorf("Build() error = %v, want UnresolvedReferenceError", err)
			}
		})
	}
}
