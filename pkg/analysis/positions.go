package analysis

import (
	"strconv"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

type DriverGain struct {
	Driver  string
	Name    string
	AvgGain aggregate.Value // positive = positions gained
	Races   int             // contributing results
}

// AvgPositionsGained computes per driver the mean of
// (grid position - classified position) over race results, most gained
// first. Results whose classified position is non-numeric (DNF, DSQ, ...)
// or which carry no grid position are excluded from the mean, they are not
// coerced to a sentinel value.
func (a *Analyzer) AvgPositionsGained() []DriverGain {
	rows := a.store.ResultsFor(RaceSession)
	names := make(map[string]string)
	for _, r := range rows {
		names[r.Driver.Abbrev] = r.Driver.Name
	}
	gain := func(r store.ResultRow) (float64, bool, error) {
		finish, err := strconv.Atoi(r.Result.ClassifiedPosition)
		if err != nil || r.Result.GridPosition == 0 {
			return 0, false, nil
		}
		return float64(r.Result.GridPosition - finish), true, nil
	}
	res := aggregate.Aggregate(rows,
		func(r store.ResultRow) string { return r.Driver.Abbrev },
		[]aggregate.Aggregation[store.ResultRow]{
			aggregate.Mean(gain),
			aggregate.Count(func(r store.ResultRow) bool {
				_, ok, _ := gain(r)
				return ok
			}),
		},
		aggregate.SortDesc[store.ResultRow](0),
	)

	ret := make([]DriverGain, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, DriverGain{
			Driver:  g.Key,
			Name:    names[g.Key],
			AvgGain: g.Values[0],
			Races:   int(g.Values[1].Val),
		})
	}
	return ret
}
