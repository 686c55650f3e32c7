package basedata

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

// Two events of the 2023 season with a race session each plus one
// qualifying session, three drivers in two teams.

func TestDate(arg string) time.Time {
	t, _ := time.Parse(time.RFC3339, arg)
	return t
}

func SampleCircuit() *model.Circuit {
	return &model.Circuit{
		ID:       1,
		Name:     "Testring",
		Rotation: 45,
		Corners: []model.Marker{
			{Number: 1, Letter: "A", Distance: 100, X: 10, Y: 20},
			{Number: 2, Distance: 500, X: 50, Y: 80},
		},
	}
}

func SampleTeams() []*model.Team {
	return []*model.Team{
		{ID: 1, Name: "Alpha Racing", Color: "#ff0000"},
		{ID: 2, Name: "Beta GP", Color: "#0000ff"},
	}
}

func SampleDrivers() []*model.Driver {
	return []*model.Driver{
		{ID: 1, Name: "Max Racer", Abbrev: "MAX", Number: 1, Country: "NED"},
		{ID: 2, Name: "John Steady", Abbrev: "STE", Number: 7, Country: "GBR"},
		{ID: 3, Name: "Tim Unlucky", Abbrev: "UNL", Number: 99, Country: "GER"},
	}
}

func SampleSessions() []*model.Session {
	return []*model.Session{
		{
			ID: 1, EventName: "First GP", SessionName: "Race",
			Date: TestDate("2023-05-07T15:00:00Z"), CircuitID: 1,
		},
		{
			ID: 2, EventName: "Second GP", SessionName: "Race",
			Date: TestDate("2023-05-21T15:00:00Z"), CircuitID: 1,
		},
		{
			ID: 3, EventName: "First GP", SessionName: "Qualifying",
			Date: TestDate("2023-05-06T14:00:00Z"), CircuitID: 1,
		},
	}
}

func SampleResults() []*model.Result {
	return []*model.Result{
		{
			ID: 1, DriverID: 1, TeamID: 1, SessionID: 1,
			Position: 1, ClassifiedPosition: "1", GridPosition: 5,
			Status: "Finished", Points: 25, Laps: 50,
		},
		{
			ID: 2, DriverID: 2, TeamID: 2, SessionID: 1,
			Position: 2, ClassifiedPosition: "2", GridPosition: 2,
			Status: "Finished", Points: 18, Laps: 50,
		},
		{
			ID: 3, DriverID: 3, TeamID: 2, SessionID: 1,
			ClassifiedPosition: "DNF", GridPosition: 3,
			Status: "Accident", Points: 0, Laps: 12,
		},
		{
			ID: 4, DriverID: 1, TeamID: 1, SessionID: 2,
			Position: 2, ClassifiedPosition: "2", GridPosition: 1,
			Status: "Finished", Points: 18, Laps: 60,
		},
		{
			ID: 5, DriverID: 2, TeamID: 2, SessionID: 2,
			Position: 1, ClassifiedPosition: "1", GridPosition: 4,
			Status: "Finished", Points: 25, Laps: 60,
		},
	}
}

func SampleLaps() []*model.Lap {
	return []*model.Lap{
		{
			ID: 1, SessionID: 1, DriverID: 1, LapNumber: 1,
			LapTime:     "0 days 00:01:00.000000",
			Sector1Time: "0 days 00:00:10.000000",
			Sector2Time: "0 days 00:00:20.000000",
			Sector3Time: "0 days 00:00:30.000000",
			Compound:    "SOFT", TyreLife: 1, FreshTyre: true, Position: 2,
		},
		{
			ID: 2, SessionID: 1, DriverID: 1, LapNumber: 2,
			LapTime:     "0 days 00:01:04.000000",
			Sector1Time: "0 days 00:00:12.000000",
			Sector2Time: "0 days 00:00:22.000000",
			Compound:    "SOFT", TyreLife: 2, Position: 1, PersonalBest: true,
		},
		{
			ID: 3, SessionID: 1, DriverID: 2, LapNumber: 1,
			LapTime:     "0 days 00:01:02.500000",
			Sector1Time: "0 days 00:00:11.000000",
			Sector2Time: "0 days 00:00:21.000000",
			Sector3Time: "0 days 00:00:30.500000",
			Compound:    "MEDIUM", TyreLife: 5, Position: 1,
		},
		{
			ID: 4, SessionID: 2, DriverID: 1, LapNumber: 1,
			LapTime:  "0 days 00:01:10.000000",
			Compound: "HARD", TyreLife: 3, Position: 1,
		},
	}
}

func SampleWeather() []*model.Weather {
	return []*model.Weather{
		{
			ID: 1, SessionID: 1, AirTemp: 22, TrackTemp: 35,
			Humidity: 40, Rainfall: false,
		},
		{
			ID: 2, SessionID: 2, AirTemp: 15, TrackTemp: 18,
			Humidity: 90, Rainfall: true,
		},
	}
}

func SampleTelemetry() []*model.Telemetry {
	return []*model.Telemetry{
		{ID: 1, LapID: 1, Distance: 95, Speed: 120, Throttle: 50, Brake: true, Gear: 3, RPM: 9000},
		{ID: 2, LapID: 1, Distance: 110, Speed: 140, Throttle: 80, Gear: 4, RPM: 10500},
		{ID: 3, LapID: 1, Distance: 300, Speed: 310, Throttle: 100, Gear: 8, RPM: 12000},
		{ID: 4, LapID: 1, Distance: 505, Speed: 90, Throttle: 20, Brake: true, Gear: 2, RPM: 8000},
	}
}

// SampleStore builds the complete fixture store.
func SampleStore() *store.Store {
	b := store.NewBuilder().AddCircuit(SampleCircuit())
	for _, t := range SampleTeams() {
		b.AddTeam(t)
	}
	for _, d := range SampleDrivers() {
		b.AddDriver(d)
	}
	for _, s := range SampleSessions() {
		b.AddSession(s)
	}
	for _, r := range SampleResults() {
		b.AddResult(r)
	}
	for _, l := range SampleLaps() {
		b.AddLap(l)
	}
	for _, w := range SampleWeather() {
		b.AddWeather(w)
	}
	for _, t := range SampleTelemetry() {
		b.AddTelemetry(t)
	}
	st, err := b.Build()
	if err != nil {
		log.Fatalf("sampleStore: %v\n", err)
	}
	return st
}

//nolint:funlen // test seeding
func CreateSampleData(db *pgxpool.Pool) {
	ctx := context.Background()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		c := SampleCircuit()
		if _, err := tx.Exec(ctx,
			`insert into circuits (id, name, rotation) values ($1,$2,$3)`,
			c.ID, c.Name, c.Rotation); err != nil {
			return err
		}
		for _, m := range c.Corners {
			if _, err := tx.Exec(ctx, `
			insert into corners (circuit_id, x, y, number, letter, angle, distance)
			values ($1,$2,$3,$4,$5,$6,$7)`,
				c.ID, m.X, m.Y, m.Number, m.Letter, m.Angle, m.Distance); err != nil {
				return err
			}
		}
		for _, t := range SampleTeams() {
			if _, err := tx.Exec(ctx,
				`insert into teams (id, name, color) values ($1,$2,$3)`,
				t.ID, t.Name, t.Color); err != nil {
				return err
			}
		}
		for _, d := range SampleDrivers() {
			if _, err := tx.Exec(ctx, `
			insert into drivers (id, name, driver_number, abbrevation, country)
			values ($1,$2,$3,$4,$5)`,
				d.ID, d.Name, d.Number, d.Abbrev, d.Country); err != nil {
				return err
			}
		}
		for _, s := range SampleSessions() {
			if _, err := tx.Exec(ctx, `
			insert into sessions (id, event_name, session_name, date, circuit_id)
			values ($1,$2,$3,$4,$5)`,
				s.ID, s.EventName, s.SessionName,
				s.Date.Format("2006-01-02 15:04:05"), s.CircuitID); err != nil {
				return err
			}
		}
		for _, r := range SampleResults() {
			if _, err := tx.Exec(ctx, `
			insert into results (id, driver_id, team_id, session_id, position,
				classified_position, grid_position, status, points, laps)
			values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
				r.ID, r.DriverID, r.TeamID, r.SessionID, r.Position,
				r.ClassifiedPosition, r.GridPosition, r.Status,
				r.Points, r.Laps); err != nil {
				return err
			}
		}
		for _, l := range SampleLaps() {
			if _, err := tx.Exec(ctx, `
			insert into laps (id, session_id, driver_id, lap_number, lap_time,
				sector1_time, sector2_time, sector3_time, personal_best,
				compound, tyre_life, fresh_tyre, position)
			values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
				l.ID, l.SessionID, l.DriverID, l.LapNumber, nullable(l.LapTime),
				nullable(l.Sector1Time), nullable(l.Sector2Time),
				nullable(l.Sector3Time), l.PersonalBest,
				l.Compound, l.TyreLife, l.FreshTyre, l.Position); err != nil {
				return err
			}
		}
		for _, w := range SampleWeather() {
			if _, err := tx.Exec(ctx, `
			insert into weather (id, session_id, air_temp, humidity, pressure,
				rainfall, track_temp, wind_direction, wind_speed)
			values ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				w.ID, w.SessionID, w.AirTemp, w.Humidity, w.Pressure,
				w.Rainfall, w.TrackTemp, w.WindDirection, w.WindSpeed); err != nil {
				return err
			}
		}
		for _, t := range SampleTelemetry() {
			if _, err := tx.Exec(ctx, `
			insert into telemetry (id, lap_id, rpm, speed, ngear, throttle,
				brake, drs, distance)
			values ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				t.ID, t.LapID, t.RPM, t.Speed, t.Gear, t.Throttle,
				t.Brake, t.DRS, t.Distance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("createSampleData: %v\n", err)
	}
}

// nullable maps the empty string to NULL so the coalesce based readers see
// the same shape as production data.
func nullable(arg string) any {
	if arg == "" {
		return nil
	}
	return arg
}
