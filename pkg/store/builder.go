package store

import (
	"fmt"
	"slices"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
)

// UnresolvedReferenceError signals a row whose foreign key does not resolve.
// This indicates a corrupt snapshot and is fatal at build time.
type UnresolvedReferenceError struct {
	Entity string
	ID     int
	Ref    string
	RefID  int
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s %d references unknown %s %d",
		e.Entity, e.ID, e.Ref, e.RefID)
}

// Builder collects ingested rows and produces an immutable Store.
// Rows may be added in any order, referential integrity is checked in
// Build.
type Builder struct {
	circuits  []*model.Circuit
	drivers   []*model.Driver
	teams     []*model.Team
	sessions  []*model.Session
	results   []*model.Result
	laps      []*model.Lap
	weather   []*model.Weather
	telemetry []*model.Telemetry
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddCircuit(c *model.Circuit) *Builder {
	b.circuits = append(b.circuits, c)
	return b
}

func (b *Builder) AddDriver(d *model.Driver) *Builder {
	b.drivers = append(b.drivers, d)
	return b
}

func (b *Builder) AddTeam(t *model.Team) *Builder {
	b.teams = append(b.teams, t)
	return b
}

func (b *Builder) AddSession(s *model.Session) *Builder {
	b.sessions = append(b.sessions, s)
	return b
}

func (b *Builder) AddResult(r *model.Result) *Builder {
	b.results = append(b.results, r)
	return b
}

func (b *Builder) AddLap(l *model.Lap) *Builder {
	b.laps = append(b.laps, l)
	return b
}

func (b *Builder) AddWeather(w *model.Weather) *Builder {
	b.weather = append(b.weather, w)
	return b
}

func (b *Builder) AddTelemetry(t *model.Telemetry) *Builder {
	b.telemetry = append(b.telemetry, t)
	return b
}

//nolint:cyclop // linear validation steps
func (b *Builder) Build() (*Store, error) {
	s := &Store{
		circuits:         make(map[int]*model.Circuit),
		drivers:          make(map[int]*model.Driver),
		teams:            make(map[int]*model.Team),
		sessions:         make(map[int]*model.Session),
		driversByAbbr:    make(map[string]*model.Driver),
		lapsBySession:    make(map[int][]*model.Lap),
		weatherBySession: make(map[int][]*model.Weather),
		lapByID:          make(map[int]*model.Lap),
	}
	for _, c := range b.circuits {
		s.circuits[c.ID] = c
	}
	for _, d := range b.drivers {
		s.drivers[d.ID] = d
		s.driversByAbbr[d.Abbrev] = d
	}
	for _, t := range b.teams {
		s.teams[t.ID] = t
	}
	for _, ses := range b.sessions {
		if ses.CircuitID != 0 {
			if _, ok := s.circuits[ses.CircuitID]; !ok {
				return nil, &UnresolvedReferenceError{
					Entity: "session", ID: ses.ID, Ref: "circuit", RefID: ses.CircuitID,
				}
			}
		}
		s.sessions[ses.ID] = ses
	}
	for _, r := range b.results {
		if err := b.checkResult(s, r); err != nil {
			return nil, err
		}
		s.results = append(s.results, r)
	}
	for _, l := range b.laps {
		if _, ok := s.sessions[l.SessionID]; !ok {
			return nil, &UnresolvedReferenceError{
				Entity: "lap", ID: l.ID, Ref: "session", RefID: l.SessionID,
			}
		}
		if _, ok := s.drivers[l.DriverID]; !ok {
			return nil, &UnresolvedReferenceError{
				Entity: "lap", ID: l.ID, Ref: "driver", RefID: l.DriverID,
			}
		}
		s.laps = append(s.laps, l)
		s.lapsBySession[l.SessionID] = append(s.lapsBySession[l.SessionID], l)
		s.lapByID[l.ID] = l
	}
	for _, w := range b.weather {
		if _, ok := s.sessions[w.SessionID]; !ok {
			return nil, &UnresolvedReferenceError{
				Entity: "weather", ID: w.ID, Ref: "session", RefID: w.SessionID,
			}
		}
		s.weather = append(s.weather, w)
		s.weatherBySession[w.SessionID] = append(s.weatherBySession[w.SessionID], w)
	}
	for _, t := range b.telemetry {
		if _, ok := s.lapByID[t.LapID]; !ok {
			return nil, &UnresolvedReferenceError{
				Entity: "telemetry", ID: t.ID, Ref: "lap", RefID: t.LapID,
			}
		}
		s.telemetry = append(s.telemetry, t)
	}

	// stable iteration order for the row producing accessors
	slices.SortStableFunc(s.laps, func(a, b *model.Lap) int { return a.ID - b.ID })
	slices.SortStableFunc(s.results,
		func(a, b *model.Result) int { return a.ID - b.ID })
	slices.SortStableFunc(s.telemetry,
		func(a, b *model.Telemetry) int { return a.ID - b.ID })
	return s, nil
}

func (b *Builder) checkResult(s *Store, r *model.Result) error {
	if _, ok := s.drivers[r.DriverID]; !ok {
		return &UnresolvedReferenceError{
			Entity: "result", ID: r.ID, Ref: "driver", RefID: r.DriverID,
		}
	}
	if _, ok := s.teams[r.TeamID]; !ok {
		return &UnresolvedReferenceError{
			Entity: "result", ID: r.ID, Ref: "team", RefID: r.TeamID,
		}
	}
	if _, ok := s.sessions[r.SessionID]; !ok {
		return &UnresolvedReferenceError{
			Entity: "result", ID: r.ID, Ref: "session", RefID: r.SessionID,
		}
	}
	return nil
}
