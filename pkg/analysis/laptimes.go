package analysis

import (
	"slices"
	"strings"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

type EventLaptime struct {
	EventName  string
	AvgLaptime aggregate.Value // seconds
	Laps       int
}

// AvgLaptimeByEvent computes a driver's mean race lap time per event,
// ordered ascending by the mean. Laps without a lap time don't contribute,
// malformed lap times are skipped and counted.
func (a *Analyzer) AvgLaptimeByEvent(driverAbbr string) ([]EventLaptime, int) {
	rows := a.store.LapsFor(store.LapFilter{
		SessionName: RaceSession,
		DriverAbbr:  driverAbbr,
	})
	res := aggregate.Aggregate(rows,
		func(r store.LapRow) string { return r.Session.EventName },
		[]aggregate.Aggregation[store.LapRow]{
			aggregate.Mean(func(r store.LapRow) (float64, bool, error) {
				return spanSeconds(r.Lap.LapTime)
			}),
			aggregate.Count(func(store.LapRow) bool { return true }),
		},
		aggregate.SortAsc[store.LapRow](0),
	)
	a.warnSkipped("AvgLaptimeByEvent", res.Skipped)

	ret := make([]EventLaptime, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, EventLaptime{
			EventName:  g.Key,
			AvgLaptime: g.Values[0],
			Laps:       int(g.Values[1].Val),
		})
	}
	return ret, res.Skipped
}

type DriverLaptime struct {
	Driver     string // abbreviation
	Name       string
	AvgLaptime aggregate.Value // seconds
	Laps       int
}

// AvgLaptimeByCompound computes the mean race lap time per driver on the
// given tyre compound, optionally restricted to laps with at least
// minTyreLife laps of tyre age (0 means no restriction). Ordered ascending.
func (a *Analyzer) AvgLaptimeByCompound(
	compound string, minTyreLife int,
) ([]DriverLaptime, int) {
	rows := a.store.LapsFor(store.LapFilter{
		SessionName: RaceSession,
		Compound:    compound,
		MinTyreLife: minTyreLife,
	})
	names := make(map[string]string)
	for _, r := range rows {
		names[r.Driver.Abbrev] = r.Driver.Name
	}
	res := aggregate.Aggregate(rows,
		func(r store.LapRow) string { return r.Driver.Abbrev },
		[]aggregate.Aggregation[store.LapRow]{
			aggregate.Mean(func(r store.LapRow) (float64, bool, error) {
				return spanSeconds(r.Lap.LapTime)
			}),
			aggregate.Count(func(store.LapRow) bool { return true }),
		},
		aggregate.SortAsc[store.LapRow](0),
	)
	a.warnSkipped("AvgLaptimeByCompound", res.Skipped)

	ret := make([]DriverLaptime, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, DriverLaptime{
			Driver:     g.Key,
			Name:       names[g.Key],
			AvgLaptime: g.Values[0],
			Laps:       int(g.Values[1].Val),
		})
	}
	return ret, res.Skipped
}

type DriverSectors struct {
	Driver     string
	Name       string
	AvgSector1 aggregate.Value
	AvgSector2 aggregate.Value
	AvgSector3 aggregate.Value
}

// AvgSectorTimes computes per driver the mean of each sector time over all
// race laps. A missing sample excludes the lap from that sector's mean
// only; a driver with no samples at all in one sector still reports the
// other two. Ordered by driver abbreviation.
func (a *Analyzer) AvgSectorTimes() ([]DriverSectors, int) {
	rows := a.store.LapsFor(store.LapFilter{SessionName: RaceSession})
	names := make(map[string]string)
	for _, r := range rows {
		names[r.Driver.Abbrev] = r.Driver.Name
	}
	sector := func(pick func(r store.LapRow) string) aggregate.Aggregation[store.LapRow] {
		return aggregate.Mean(func(r store.LapRow) (float64, bool, error) {
			return spanSeconds(pick(r))
		})
	}
	res := aggregate.Aggregate(rows,
		func(r store.LapRow) string { return r.Driver.Abbrev },
		[]aggregate.Aggregation[store.LapRow]{
			sector(func(r store.LapRow) string { return r.Lap.Sector1Time }),
			sector(func(r store.LapRow) string { return r.Lap.Sector2Time }),
			sector(func(r store.LapRow) string { return r.Lap.Sector3Time }),
		},
	)
	a.warnSkipped("AvgSectorTimes", res.Skipped)

	ret := make([]DriverSectors, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, DriverSectors{
			Driver:     g.Key,
			Name:       names[g.Key],
			AvgSector1: g.Values[0],
			AvgSector2: g.Values[1],
			AvgSector3: g.Values[2],
		})
	}
	slices.SortStableFunc(ret, func(x, y DriverSectors) int {
		return strings.Compare(x.Driver, y.Driver)
	})
	return ret, res.Skipped
}

type RainfallLaptime struct {
	Driver     string
	Rainfall   bool
	AvgLaptime aggregate.Value
}

type driverRainKey struct {
	driver   string
	rainfall bool
}

// AvgLaptimeByRainfall computes mean race lap times grouped by driver and
// the rainfall flag of the session's weather samples. The weather join is a
// cartesian product within the session (not time aligned), mirroring the
// source analysis. An empty driverAbbr covers all drivers. Ordered by
// driver abbreviation, then dry before wet.
func (a *Analyzer) AvgLaptimeByRainfall(driverAbbr string) ([]RainfallLaptime, int) {
	rows := a.store.WeatherJoinedLaps(RaceSession)
	opts := []aggregate.Option[store.LapWeatherRow]{}
	if driverAbbr != "" {
		opts = append(opts, aggregate.WithFilter(func(r store.LapWeatherRow) bool {
			return r.Driver.Abbrev == driverAbbr
		}))
	}
	res := aggregate.Aggregate(rows,
		func(r store.LapWeatherRow) driverRainKey {
			return driverRainKey{driver: r.Driver.Abbrev, rainfall: r.Weather.Rainfall}
		},
		[]aggregate.Aggregation[store.LapWeatherRow]{
			aggregate.Mean(func(r store.LapWeatherRow) (float64, bool, error) {
				return spanSeconds(r.Lap.LapTime)
			}),
		},
		opts...,
	)
	a.warnSkipped("AvgLaptimeByRainfall", res.Skipped)

	ret := make([]RainfallLaptime, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, RainfallLaptime{
			Driver:     g.Key.driver,
			Rainfall:   g.Key.rainfall,
			AvgLaptime: g.Values[0],
		})
	}
	slices.SortStableFunc(ret, func(x, y RainfallLaptime) int {
		if c := strings.Compare(x.Driver, y.Driver); c != 0 {
			return c
		}
		switch {
		case x.Rainfall == y.Rainfall:
			return 0
		case !x.Rainfall:
			return -1
		default:
			return 1
		}
	})
	return ret, res.Skipped
}
