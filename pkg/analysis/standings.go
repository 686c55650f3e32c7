package analysis

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

type Standing struct {
	Driver      string
	Name        string
	Team        string
	Races       int
	Points      decimal.Decimal
	Wins        int
	Podiums     int
	AvgPosition aggregate.Value
}

// SeasonStandings rolls race results up to championship standings for one
// season (year 0 covers all seasons). Ordered by points, then wins,
// descending.
func (a *Analyzer) SeasonStandings(year int) []Standing {
	rows := a.raceResults(year)
	names := make(map[string]string)
	teams := make(map[string]string)
	points := make(map[string]decimal.Decimal)
	for _, r := range rows {
		abbr := r.Driver.Abbrev
		names[abbr] = r.Driver.Name
		teams[abbr] = r.Team.Name
		points[abbr] = points[abbr].Add(decimal.NewFromFloat(r.Result.Points))
	}
	res := aggregate.Aggregate(rows,
		func(r store.ResultRow) string { return r.Driver.Abbrev },
		[]aggregate.Aggregation[store.ResultRow]{
			aggregate.Count(func(store.ResultRow) bool { return true }),
			aggregate.Count(func(r store.ResultRow) bool { return r.Result.Position == 1 }),
			aggregate.Count(func(r store.ResultRow) bool {
				return r.Result.Position >= 1 && r.Result.Position <= 3
			}),
			aggregate.Mean(finishPosition),
		},
	)

	ret := make([]Standing, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, Standing{
			Driver:      g.Key,
			Name:        names[g.Key],
			Team:        teams[g.Key],
			Races:       int(g.Values[0].Val),
			Points:      points[g.Key],
			Wins:        int(g.Values[1].Val),
			Podiums:     int(g.Values[2].Val),
			AvgPosition: g.Values[3],
		})
	}
	sortByPointsAndWins(ret,
		func(s Standing) decimal.Decimal { return s.Points },
		func(s Standing) int { return s.Wins })
	return ret
}

type TeamStanding struct {
	Team        string
	Races       int
	Points      decimal.Decimal
	Wins        int
	AvgPosition aggregate.Value
}

// TeamStandings rolls race results up to team standings for one season
// (year 0 covers all seasons). Ordered by points, then wins, descending.
func (a *Analyzer) TeamStandings(year int) []TeamStanding {
	rows := a.raceResults(year)
	points := make(map[string]decimal.Decimal)
	races := make(map[string]map[int]struct{})
	for _, r := range rows {
		team := r.Team.Name
		points[team] = points[team].Add(decimal.NewFromFloat(r.Result.Points))
		if races[team] == nil {
			races[team] = make(map[int]struct{})
		}
		races[team][r.Session.ID] = struct{}{}
	}
	res := aggregate.Aggregate(rows,
		func(r store.ResultRow) string { return r.Team.Name },
		[]aggregate.Aggregation[store.ResultRow]{
			aggregate.Count(func(r store.ResultRow) bool { return r.Result.Position == 1 }),
			aggregate.Mean(finishPosition),
		},
	)

	ret := make([]TeamStanding, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, TeamStanding{
			Team:        g.Key,
			Races:       len(races[g.Key]),
			Points:      points[g.Key],
			Wins:        int(g.Values[0].Val),
			AvgPosition: g.Values[1],
		})
	}
	sortByPointsAndWins(ret,
		func(s TeamStanding) decimal.Decimal { return s.Points },
		func(s TeamStanding) int { return s.Wins })
	return ret
}

type TeamRank struct {
	Team     string
	BestRank int
}

// BestTeamRanks determines for every team the best rank it achieved in any
// single session, ranking teams per session by their summed points.
// Ordered by best rank, then team name.
func (a *Analyzer) BestTeamRanks() []TeamRank {
	best := make(map[string]int)
	for _, team := range a.store.Teams() {
		best[team.Name] = 0
	}
	allRows := a.store.ResultsFor("")
	for _, session := range a.store.Sessions() {
		points := make(map[string]decimal.Decimal)
		for _, r := range allRows {
			if r.Session.ID != session.ID {
				continue
			}
			points[r.Team.Name] = points[r.Team.Name].
				Add(decimal.NewFromFloat(r.Result.Points))
		}
		if len(points) == 0 {
			continue
		}
		type teamPoints struct {
			team   string
			points decimal.Decimal
		}
		ranked := make([]teamPoints, 0, len(points))
		for team, p := range points {
			ranked = append(ranked, teamPoints{team: team, points: p})
		}
		slices.SortStableFunc(ranked, func(x, y teamPoints) int {
			if c := y.points.Cmp(x.points); c != 0 {
				return c
			}
			return strings.Compare(x.team, y.team)
		})
		// ties share the rank (RANK() semantics)
		rank := 0
		for i := range ranked {
			if i == 0 || ranked[i].points.Cmp(ranked[i-1].points) != 0 {
				rank = i + 1
			}
			if best[ranked[i].team] == 0 || rank < best[ranked[i].team] {
				best[ranked[i].team] = rank
			}
		}
	}

	ret := make([]TeamRank, 0, len(best))
	for team, rank := range best {
		if rank == 0 {
			continue // team never scored in any session
		}
		ret = append(ret, TeamRank{Team: team, BestRank: rank})
	}
	slices.SortStableFunc(ret, func(x, y TeamRank) int {
		if x.BestRank != y.BestRank {
			return x.BestRank - y.BestRank
		}
		return strings.Compare(x.Team, y.Team)
	})
	return ret
}

type CircuitStats struct {
	Circuit   string
	Visits    int
	AvgFinish aggregate.Value
	Wins      int
	Points    decimal.Decimal
}

// CircuitPerformance rolls one driver's race results up per circuit.
// Sessions without circuit linkage are left out. Ordered by total points
// descending.
func (a *Analyzer) CircuitPerformance(driverAbbr string) []CircuitStats {
	rows := make([]store.ResultRow, 0)
	circuitNames := make(map[int]string)
	points := make(map[string]decimal.Decimal)
	for _, r := range a.store.ResultsFor(RaceSession) {
		if r.Driver.Abbrev != driverAbbr || r.Session.CircuitID == 0 {
			continue
		}
		circuit, ok := a.store.Circuit(r.Session.CircuitID)
		if !ok {
			continue
		}
		circuitNames[r.Session.CircuitID] = circuit.Name
		points[circuit.Name] = points[circuit.Name].
			Add(decimal.NewFromFloat(r.Result.Points))
		rows = append(rows, r)
	}
	res := aggregate.Aggregate(rows,
		func(r store.ResultRow) string { return circuitNames[r.Session.CircuitID] },
		[]aggregate.Aggregation[store.ResultRow]{
			aggregate.Count(func(store.ResultRow) bool { return true }),
			aggregate.Mean(finishPosition),
			aggregate.Count(func(r store.ResultRow) bool { return r.Result.Position == 1 }),
		},
	)

	ret := make([]CircuitStats, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, CircuitStats{
			Circuit:   g.Key,
			Visits:    int(g.Values[0].Val),
			AvgFinish: g.Values[1],
			Wins:      int(g.Values[2].Val),
			Points:    points[g.Key],
		})
	}
	slices.SortStableFunc(ret, func(x, y CircuitStats) int {
		return y.Points.Cmp(x.Points)
	})
	return ret
}

type DriverYearPoints struct {
	Driver string
	Year   int
	Points decimal.Decimal
}

type driverYearKey struct {
	driver string
	year   int
}

// PointsByDriverAndYear pivots race points per driver and season.
// Ordered by driver abbreviation, then year.
func (a *Analyzer) PointsByDriverAndYear() []DriverYearPoints {
	points := make(map[driverYearKey]decimal.Decimal)
	for _, r := range a.store.ResultsFor(RaceSession) {
		key := driverYearKey{driver: r.Driver.Abbrev, year: r.Session.Date.Year()}
		points[key] = points[key].Add(decimal.NewFromFloat(r.Result.Points))
	}
	ret := make([]DriverYearPoints, 0, len(points))
	for key, p := range points {
		ret = append(ret, DriverYearPoints{Driver: key.driver, Year: key.year, Points: p})
	}
	slices.SortStableFunc(ret, func(x, y DriverYearPoints) int {
		if c := strings.Compare(x.Driver, y.Driver); c != 0 {
			return c
		}
		return x.Year - y.Year
	})
	return ret
}

type DriverSessionPosition struct {
	Driver      string
	SessionName string
	Position    int
}

// DriverSessionPositions pivots finish positions per driver and session
// name for the sessions held at a circuit. With several visits the most
// recent one wins the cell. Year 0 covers all seasons.
func (a *Analyzer) DriverSessionPositions(
	circuitName string, year int,
) []DriverSessionPosition {
	type cellKey struct{ driver, session string }
	seen := make(map[cellKey]struct{})
	ret := make([]DriverSessionPosition, 0)
	for _, r := range a.circuitResults(circuitName) {
		if year != 0 && r.Session.Date.Year() != year {
			continue
		}
		key := cellKey{driver: r.Driver.Abbrev, session: r.Session.SessionName}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ret = append(ret, DriverSessionPosition{
			Driver:      r.Driver.Abbrev,
			SessionName: r.Session.SessionName,
			Position:    r.Result.Position,
		})
	}
	slices.SortStableFunc(ret, func(x, y DriverSessionPosition) int {
		if c := strings.Compare(x.Driver, y.Driver); c != 0 {
			return c
		}
		return strings.Compare(x.SessionName, y.SessionName)
	})
	return ret
}

func (a *Analyzer) raceResults(year int) []store.ResultRow {
	rows := a.store.ResultsFor(RaceSession)
	if year == 0 {
		return rows
	}
	filtered := make([]store.ResultRow, 0, len(rows))
	for _, r := range rows {
		if r.Session.Date.Year() == year {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// finishPosition contributes the numeric classified position; DNF and
// friends don't contribute.
func finishPosition(r store.ResultRow) (float64, bool, error) {
	pos, err := strconv.Atoi(r.Result.ClassifiedPosition)
	if err != nil {
		return 0, false, nil
	}
	return float64(pos), true, nil
}

func sortByPointsAndWins[T any](
	rows []T, points func(T) decimal.Decimal, wins func(T) int,
) {
	slices.SortStableFunc(rows, func(x, y T) int {
		if c := points(y).Cmp(points(x)); c != 0 {
			return c
		}
		return wins(y) - wins(x)
	})
}
