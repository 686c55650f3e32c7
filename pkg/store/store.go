// Package store holds an immutable in-memory snapshot of ingested session
// data, indexed for join style lookups. A Store is built once via Builder
// and is safe for concurrent reads afterwards.
package store

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
)

type Store struct {
	circuits map[int]*model.Circuit
	drivers  map[int]*model.Driver
	teams    map[int]*model.Team
	sessions map[int]*model.Session

	driversByAbbr map[string]*model.Driver

	results   []*model.Result
	laps      []*model.Lap
	weather   []*model.Weather
	telemetry []*model.Telemetry

	lapsBySession    map[int][]*model.Lap
	weatherBySession map[int][]*model.Weather
	lapByID          map[int]*model.Lap
}

// LapRow is a lap joined with its driver and session.
type LapRow struct {
	Lap     *model.Lap
	Driver  *model.Driver
	Session *model.Session
}

// ResultRow is a result joined with driver, team and session.
type ResultRow struct {
	Result  *model.Result
	Driver  *model.Driver
	Team    *model.Team
	Session *model.Session
}

// TelemetryRow is a telemetry sample joined through its lap.
type TelemetryRow struct {
	Sample  *model.Telemetry
	Lap     *model.Lap
	Driver  *model.Driver
	Session *model.Session
}

// LapWeatherRow pairs a lap with one weather sample of the same session.
type LapWeatherRow struct {
	Lap     *model.Lap
	Driver  *model.Driver
	Session *model.Session
	Weather *model.Weather
}

// LapFilter narrows LapsFor. Zero values mean "no restriction".
type LapFilter struct {
	SessionName string // exact match
	DriverAbbr  string // case-sensitive exact match
	Compound    string
	MinTyreLife int
}

// LapsFor returns all laps matching f, joined with driver and session.
func (s *Store) LapsFor(f LapFilter) []LapRow {
	ret := make([]LapRow, 0)
	for _, lap := range s.laps {
		session := s.sessions[lap.SessionID]
		driver := s.drivers[lap.DriverID]
		if f.SessionName != "" && session.SessionName != f.SessionName {
			continue
		}
		if f.DriverAbbr != "" && driver.Abbrev != f.DriverAbbr {
			continue
		}
		if f.Compound != "" && lap.Compound != f.Compound {
			continue
		}
		if f.MinTyreLife > 0 && lap.TyreLife < f.MinTyreLife {
			continue
		}
		ret = append(ret, LapRow{Lap: lap, Driver: driver, Session: session})
	}
	return ret
}

// ResultsFor returns all results of sessions with the given name, joined
// with driver, team and session. An empty name matches all sessions.
func (s *Store) ResultsFor(sessionName string) []ResultRow {
	ret := make([]ResultRow, 0)
	for _, res := range s.results {
		session := s.sessions[res.SessionID]
		if sessionName != "" && session.SessionName != sessionName {
			continue
		}
		ret = append(ret, ResultRow{
			Result:  res,
			Driver:  s.drivers[res.DriverID],
			Team:    s.teams[res.TeamID],
			Session: session,
		})
	}
	return ret
}

// TelemetryFor returns all telemetry samples of one driver, joined through
// the owning lap. An empty abbreviation matches all drivers.
func (s *Store) TelemetryFor(driverAbbr string) []TelemetryRow {
	ret := make([]TelemetryRow, 0)
	for _, sample := range s.telemetry {
		lap := s.lapByID[sample.LapID]
		driver := s.drivers[lap.DriverID]
		if driverAbbr != "" && driver.Abbrev != driverAbbr {
			continue
		}
		ret = append(ret, TelemetryRow{
			Sample:  sample,
			Lap:     lap,
			Driver:  driver,
			Session: s.sessions[lap.SessionID],
		})
	}
	return ret
}

// WeatherJoinedLaps pairs every matching lap with every weather sample of
// the same session. The join is a cartesian product within the session and
// not aligned by time.
func (s *Store) WeatherJoinedLaps(sessionName string) []LapWeatherRow {
	ret := make([]LapWeatherRow, 0)
	for _, lap := range s.laps {
		session := s.sessions[lap.SessionID]
		if sessionName != "" && session.SessionName != sessionName {
			continue
		}
		driver := s.drivers[lap.DriverID]
		for _, w := range s.weatherBySession[lap.SessionID] {
			ret = append(ret, LapWeatherRow{
				Lap:     lap,
				Driver:  driver,
				Session: session,
				Weather: w,
			})
		}
	}
	return ret
}

// DriverByAbbr resolves a driver by abbreviation (case-sensitive).
func (s *Store) DriverByAbbr(abbr string) (*model.Driver, bool) {
	d, ok := s.driversByAbbr[abbr]
	return d, ok
}

// Sessions returns all sessions ordered by id.
func (s *Store) Sessions() []*model.Session {
	ids := lo.Keys(s.sessions)
	slices.Sort(ids)
	return lo.Map(ids, func(id int, _ int) *model.Session {
		return s.sessions[id]
	})
}

// Circuit resolves a circuit by id.
func (s *Store) Circuit(id int) (*model.Circuit, bool) {
	c, ok := s.circuits[id]
	return c, ok
}

// MatchCircuits returns circuits whose name contains the fragment
// (case-insensitive).
func (s *Store) MatchCircuits(fragment string) []*model.Circuit {
	ids := lo.Keys(s.circuits)
	slices.Sort(ids)
	ret := make([]*model.Circuit, 0)
	for _, id := range ids {
		if containsFold(s.circuits[id].Name, fragment) {
			ret = append(ret, s.circuits[id])
		}
	}
	return ret
}

// Teams returns all teams ordered by id.
func (s *Store) Teams() []*model.Team {
	ids := lo.Keys(s.teams)
	slices.Sort(ids)
	return lo.Map(ids, func(id int, _ int) *model.Team {
		return s.teams[id]
	})
}

// LapsOfSession returns the laps of one session.
func (s *Store) LapsOfSession(sessionID int) []*model.Lap {
	return s.lapsBySession[sessionID]
}

// HasSessionName reports whether any session carries the given name.
func (s *Store) HasSessionName(name string) bool {
	return lo.SomeBy(lo.Values(s.sessions), func(ses *model.Session) bool {
		return ses.SessionName == name
	})
}

// MatchSessions returns sessions whose event name and session name contain
// the given fragments (case-insensitive, LIKE '%x%' semantics).
func (s *Store) MatchSessions(eventFragment, sessionFragment string) []*model.Session {
	return lo.Filter(s.Sessions(), func(ses *model.Session, _ int) bool {
		return containsFold(ses.EventName, eventFragment) &&
			containsFold(ses.SessionName, sessionFragment)
	})
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
