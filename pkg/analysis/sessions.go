package analysis

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
	"github.com/mpapenbr/f1-analysis-go/pkg/timespan"
)

type SessionResult struct {
	EventName   string
	SessionName string
	Date        string
	Driver      string
	Team        string
	Position    int
	GridPos     int
	Points      float64
	Laps        int
	Status      string
}

// DriverSessions slices all session results of one driver, newest first.
// Year 0 covers all seasons.
func (a *Analyzer) DriverSessions(driverAbbr string, year int) []SessionResult {
	rows := lo.Filter(a.store.ResultsFor(""), func(r store.ResultRow, _ int) bool {
		if r.Driver.Abbrev != driverAbbr {
			return false
		}
		return year == 0 || r.Session.Date.Year() == year
	})
	slices.SortStableFunc(rows, func(x, y store.ResultRow) int {
		return y.Session.Date.Compare(x.Session.Date)
	})
	return lo.Map(rows, func(r store.ResultRow, _ int) SessionResult {
		return toSessionResult(r)
	})
}

// CompareDrivers dices the results of the named drivers in one session,
// ordered by finish position (unclassified last). Event and session name
// match by fragment.
func (a *Analyzer) CompareDrivers(
	driverAbbrs []string, event, sessionName string,
) []SessionResult {
	sessions := a.store.MatchSessions(event, sessionName)
	sessionIDs := lo.SliceToMap(sessions,
		func(s *model.Session) (int, struct{}) { return s.ID, struct{}{} })

	rows := lo.Filter(a.store.ResultsFor(""), func(r store.ResultRow, _ int) bool {
		if _, ok := sessionIDs[r.Session.ID]; !ok {
			return false
		}
		return slices.Contains(driverAbbrs, r.Driver.Abbrev)
	})
	slices.SortStableFunc(rows, func(x, y store.ResultRow) int {
		return comparePosition(x.Result.Position, y.Result.Position)
	})
	return lo.Map(rows, func(r store.ResultRow, _ int) SessionResult {
		return toSessionResult(r)
	})
}

// CircuitResults slices all session results held at a circuit, newest
// first. The circuit name matches by fragment.
func (a *Analyzer) CircuitResults(circuitName string) []SessionResult {
	return lo.Map(a.circuitResults(circuitName),
		func(r store.ResultRow, _ int) SessionResult {
			return toSessionResult(r)
		})
}

func (a *Analyzer) circuitResults(circuitName string) []store.ResultRow {
	circuitIDs := lo.SliceToMap(a.store.MatchCircuits(circuitName),
		func(c *model.Circuit) (int, struct{}) { return c.ID, struct{}{} })
	rows := lo.Filter(a.store.ResultsFor(""), func(r store.ResultRow, _ int) bool {
		_, ok := circuitIDs[r.Session.CircuitID]
		return ok
	})
	slices.SortStableFunc(rows, func(x, y store.ResultRow) int {
		return y.Session.Date.Compare(x.Session.Date)
	})
	return rows
}

type LapDetail struct {
	LapNumber    int
	LapTime      timespan.Span
	Sector1      timespan.Span
	Sector2      timespan.Span
	Sector3      timespan.Span
	Compound     string
	TyreLife     int
	PersonalBest bool
	Position     int
}

// SessionLaps drills down to the individual laps of one driver in one
// session, ordered by lap number. Malformed durations yield no value for
// the affected field and are counted.
func (a *Analyzer) SessionLaps(
	driverAbbr, event, sessionName string,
) ([]LapDetail, int) {
	sessions := a.store.MatchSessions(event, sessionName)
	sessionIDs := lo.SliceToMap(sessions,
		func(s *model.Session) (int, struct{}) { return s.ID, struct{}{} })

	skipped := 0
	span := func(raw string) timespan.Span {
		sp, err := timespan.Parse(raw)
		if err != nil {
			skipped++
			return timespan.None()
		}
		return sp
	}

	ret := make([]LapDetail, 0)
	for _, r := range a.store.LapsFor(store.LapFilter{DriverAbbr: driverAbbr}) {
		if _, ok := sessionIDs[r.Lap.SessionID]; !ok {
			continue
		}
		ret = append(ret, LapDetail{
			LapNumber:    r.Lap.LapNumber,
			LapTime:      span(r.Lap.LapTime),
			Sector1:      span(r.Lap.Sector1Time),
			Sector2:      span(r.Lap.Sector2Time),
			Sector3:      span(r.Lap.Sector3Time),
			Compound:     r.Lap.Compound,
			TyreLife:     r.Lap.TyreLife,
			PersonalBest: r.Lap.PersonalBest,
			Position:     r.Lap.Position,
		})
	}
	slices.SortStableFunc(ret, func(x, y LapDetail) int {
		return x.LapNumber - y.LapNumber
	})
	a.warnSkipped("SessionLaps", skipped)
	return ret, skipped
}

func toSessionResult(r store.ResultRow) SessionResult {
	return SessionResult{
		EventName:   r.Session.EventName,
		SessionName: r.Session.SessionName,
		Date:        r.Session.Date.Format("2006-01-02"),
		Driver:      r.Driver.Abbrev,
		Team:        r.Team.Name,
		Position:    r.Result.Position,
		GridPos:     r.Result.GridPosition,
		Points:      r.Result.Points,
		Laps:        r.Result.Laps,
		Status:      r.Result.Status,
	}
}

// 0 (absent) sorts last
func comparePosition(x, y int) int {
	switch {
	case x == y:
		return 0
	case x == 0:
		return 1
	case y == 0:
		return -1
	default:
		return x - y
	}
}
