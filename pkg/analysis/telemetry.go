package analysis

import (
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-analysis-go/pkg/aggregate"
	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

type LapProfile struct {
	LapNumber    int
	AvgSpeed     aggregate.Value
	AvgThrottle  aggregate.Value
	BrakeSamples int
}

// LapProfile aggregates one driver's telemetry per lap: mean speed, mean
// throttle and the number of samples with the brake applied. Ordered by
// lap number.
func (a *Analyzer) LapProfile(driverAbbr string) []LapProfile {
	rows := a.store.TelemetryFor(driverAbbr)
	res := aggregate.Aggregate(rows,
		func(r store.TelemetryRow) int { return r.Lap.LapNumber },
		[]aggregate.Aggregation[store.TelemetryRow]{
			aggregate.Mean(func(r store.TelemetryRow) (float64, bool, error) {
				return r.Sample.Speed, true, nil
			}),
			aggregate.Mean(func(r store.TelemetryRow) (float64, bool, error) {
				return r.Sample.Throttle, true, nil
			}),
			aggregate.Count(func(r store.TelemetryRow) bool { return r.Sample.Brake }),
		},
	)

	ret := make([]LapProfile, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, LapProfile{
			LapNumber:    g.Key,
			AvgSpeed:     g.Values[0],
			AvgThrottle:  g.Values[1],
			BrakeSamples: int(g.Values[2].Val),
		})
	}
	slices.SortStableFunc(ret, func(x, y LapProfile) int {
		return x.LapNumber - y.LapNumber
	})
	return ret
}

// LapTelemetry drills down to the telemetry samples of one specific lap,
// ordered by distance. Event and session name match by fragment.
func (a *Analyzer) LapTelemetry(
	driverAbbr, event, sessionName string, lapNo int,
) []*model.Telemetry {
	sessions := a.store.MatchSessions(event, sessionName)
	sessionIDs := lo.SliceToMap(sessions,
		func(s *model.Session) (int, struct{}) { return s.ID, struct{}{} })

	rows := a.store.TelemetryFor(driverAbbr)
	samples := make([]*model.Telemetry, 0)
	for _, r := range rows {
		if _, ok := sessionIDs[r.Lap.SessionID]; !ok {
			continue
		}
		if r.Lap.LapNumber != lapNo {
			continue
		}
		samples = append(samples, r.Sample)
	}
	slices.SortStableFunc(samples, func(x, y *model.Telemetry) int {
		switch {
		case x.Distance < y.Distance:
			return -1
		case x.Distance > y.Distance:
			return 1
		default:
			return 0
		}
	})
	return samples
}

// CornerWindow is the distance window around a corner marker within which
// telemetry samples count as belonging to that corner.
const CornerWindow = 20.0 // meters

type CornerSpeed struct {
	Corner   int
	Driver   string
	AvgSpeed aggregate.Value
}

type cornerDriverKey struct {
	corner int
	driver string
}

// CornerSpeeds compares mean telemetry speeds per corner between drivers.
// Corners are looked up from the circuit metadata of the matched sessions;
// a sample contributes to every corner whose distance window contains it.
// Ordered by corner number, then driver abbreviation.
func (a *Analyzer) CornerSpeeds(
	driverAbbrs []string, event, sessionName string,
) []CornerSpeed {
	sessions := a.store.MatchSessions(event, sessionName)
	cornersBySession := make(map[int][]model.Marker)
	for _, s := range sessions {
		if c, ok := a.store.Circuit(s.CircuitID); ok {
			cornersBySession[s.ID] = c.Corners
		}
	}
	type cornerSample struct {
		key   cornerDriverKey
		speed float64
	}
	samples := make([]cornerSample, 0)
	for _, abbr := range driverAbbrs {
		for _, r := range a.store.TelemetryFor(abbr) {
			corners, ok := cornersBySession[r.Lap.SessionID]
			if !ok {
				continue
			}
			for i := range corners {
				if math.Abs(r.Sample.Distance-corners[i].Distance) <= CornerWindow {
					samples = append(samples, cornerSample{
						key:   cornerDriverKey{corner: corners[i].Number, driver: abbr},
						speed: r.Sample.Speed,
					})
				}
			}
		}
	}

	res := aggregate.Aggregate(samples,
		func(s cornerSample) cornerDriverKey { return s.key },
		[]aggregate.Aggregation[cornerSample]{
			aggregate.Mean(func(s cornerSample) (float64, bool, error) {
				return s.speed, true, nil
			}),
		},
	)
	ret := make([]CornerSpeed, 0, len(res.Groups))
	for _, g := range res.Groups {
		ret = append(ret, CornerSpeed{
			Corner:   g.Key.corner,
			Driver:   g.Key.driver,
			AvgSpeed: g.Values[0],
		})
	}
	slices.SortStableFunc(ret, func(x, y CornerSpeed) int {
		if x.Corner != y.Corner {
			return x.Corner - y.Corner
		}
		return strings.Compare(x.Driver, y.Driver)
	})
	return ret
}
