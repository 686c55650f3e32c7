// Package ingest normalizes raw snapshot rows into the canonical record
// shapes of the store. Two schema variants are accepted: results referencing
// their session directly, or sessions carrying a result back-reference. The
// engine never sees the variant, normalization happens here.
package ingest

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/mpapenbr/f1-analysis-go/pkg/model"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
)

// Raw rows keep loosely typed fields (numbers may arrive as float64 or
// string, booleans as 0/1). Pointer fields mark columns a schema variant
// may omit.

type RawCircuit struct {
	ID             int         `json:"id"`
	Name           string      `json:"name"`
	Rotation       any         `json:"rotation"`
	Corners        []RawMarker `json:"corners"`
	MarshalLights  []RawMarker `json:"marshalLights"`
	MarshalSectors []RawMarker `json:"marshalSectors"`
}

type RawMarker struct {
	X        any    `json:"x"`
	Y        any    `json:"y"`
	Number   any    `json:"number"`
	Letter   string `json:"letter"`
	Angle    any    `json:"angle"`
	Distance any    `json:"distance"`
}

type RawDriver struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	BroadcastName string `json:"broadcastName"`
	Number        any    `json:"driverNumber"`
	Abbrev        string `json:"abbrevation"`
	Country       string `json:"country"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

type RawTeam struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type RawSession struct {
	ID          int    `json:"id"`
	EventName   string `json:"eventName"`
	SessionName string `json:"sessionName"`
	Date        string `json:"date"`
	CircuitID   any    `json:"circuitId"`
	// variant B: back-reference to the single aggregate result
	ResultID any `json:"resultId"`
}

type RawResult struct {
	ID       int `json:"id"`
	DriverID int `json:"driverId"`
	TeamID   int `json:"teamId"`
	// variant A: direct session linkage; nil in variant B
	SessionID          any    `json:"sessionId"`
	Position           any    `json:"position"`
	ClassifiedPosition any    `json:"classifiedPosition"`
	GridPosition       any    `json:"gridPosition"`
	Q1                 string `json:"q1"`
	Q2                 string `json:"q2"`
	Q3                 string `json:"q3"`
	Time               string `json:"time"`
	Status             string `json:"status"`
	Points             any    `json:"points"`
	Laps               any    `json:"laps"`
}

type RawLap struct {
	ID        int    `json:"id"`
	SessionID int    `json:"sessionId"`
	DriverID  int    `json:"driverId"`
	LapNumber any    `json:"lapNumber"`
	Timestamp string `json:"timestamp"`
	LapTime   string `json:"lapTime"`
	Stint     any    `json:"stint"`

	Sector1Time        string `json:"sector1Time"`
	Sector2Time        string `json:"sector2Time"`
	Sector3Time        string `json:"sector3Time"`
	Sector1SessionTime string `json:"sector1SessionTime"`
	Sector2SessionTime string `json:"sector2SessionTime"`
	Sector3SessionTime string `json:"sector3SessionTime"`

	Speed1  any `json:"speed1"`
	Speed2  any `json:"speed2"`
	SpeedFL any `json:"speedFL"`
	SpeedST any `json:"speedST"`

	PersonalBest any    `json:"personalBest"`
	Compound     string `json:"compound"`
	TyreLife     any    `json:"tyreLife"`
	FreshTyre    any    `json:"freshTyre"`

	LapStartTime string `json:"lapStartTime"`
	LapStartDate string `json:"lapStartDate"`
	TrackStatus  string `json:"trackStatus"`
	Position     any    `json:"position"`
	PitInTime    string `json:"pitInTime"`
	PitOutTime   string `json:"pitOutTime"`
}

type RawWeather struct {
	ID            int    `json:"id"`
	SessionID     int    `json:"sessionId"`
	Timestamp     string `json:"timestamp"`
	AirTemp       any    `json:"airTemp"`
	Humidity      any    `json:"humidity"`
	Pressure      any    `json:"pressure"`
	Rainfall      any    `json:"rainfall"`
	TrackTemp     any    `json:"trackTemp"`
	WindDirection any    `json:"windDirection"`
	WindSpeed     any    `json:"windSpeed"`
}

type RawTelemetry struct {
	ID    int `json:"id"`
	LapID int `json:"lapId"`

	Time     string `json:"time"`
	Date     string `json:"date"`
	RPM      any    `json:"rpm"`
	Speed    any    `json:"speed"`
	Gear     any    `json:"ngear"`
	Throttle any    `json:"throttle"`
	Brake    any    `json:"brake"`
	DRS      any    `json:"drs"`
	Distance any    `json:"distance"`

	// extended columns, absent in the reduced variant
	DriverAhead       any    `json:"driverAhead"`
	DistToDriverAhead any    `json:"distToDriverAhead"`
	RelDistance       any    `json:"relDistance"`
	Status            string `json:"status"`
	X                 any    `json:"x"`
	Y                 any    `json:"y"`
	Z                 any    `json:"z"`
}

// Snapshot is the raw form of one ingested data set.
type Snapshot struct {
	Circuits  []*RawCircuit   `json:"circuits"`
	Drivers   []*RawDriver    `json:"drivers"`
	Teams     []*RawTeam      `json:"teams"`
	Sessions  []*RawSession   `json:"sessions"`
	Results   []*RawResult    `json:"results"`
	Laps      []*RawLap       `json:"laps"`
	Weather   []*RawWeather   `json:"weather"`
	Telemetry []*RawTelemetry `json:"telemetry"`
}

// Normalize resolves schema variants and builds the immutable store.
// Unresolvable references fail the build, they are never silently dropped.
//
//nolint:funlen // linear conversion
func (snap *Snapshot) Normalize() (*store.Store, error) {
	b := store.NewBuilder()

	for _, c := range snap.Circuits {
		b.AddCircuit(&model.Circuit{
			ID:             c.ID,
			Name:           c.Name,
			Rotation:       cast.ToFloat64(c.Rotation),
			Corners:        convertMarkers(c.Corners),
			MarshalLights:  convertMarkers(c.MarshalLights),
			MarshalSectors: convertMarkers(c.MarshalSectors),
		})
	}
	for _, d := range snap.Drivers {
		b.AddDriver(&model.Driver{
			ID:            d.ID,
			Name:          d.Name,
			BroadcastName: d.BroadcastName,
			Number:        cast.ToInt(d.Number),
			Abbrev:        d.Abbrev,
			Country:       d.Country,
			FirstName:     d.FirstName,
			LastName:      d.LastName,
		})
	}
	for _, t := range snap.Teams {
		b.AddTeam(&model.Team{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	for _, s := range snap.Sessions {
		date, err := parseDate(s.Date)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", s.ID, err)
		}
		b.AddSession(&model.Session{
			ID:          s.ID,
			EventName:   s.EventName,
			SessionName: s.SessionName,
			Date:        date,
			CircuitID:   cast.ToInt(s.CircuitID),
		})
	}

	sessionByResult, err := resolveResultLinks(snap)
	if err != nil {
		return nil, err
	}
	for _, r := range snap.Results {
		b.AddResult(&model.Result{
			ID:                 r.ID,
			DriverID:           r.DriverID,
			TeamID:             r.TeamID,
			SessionID:          sessionByResult[r.ID],
			Position:           cast.ToInt(r.Position),
			ClassifiedPosition: cast.ToString(r.ClassifiedPosition),
			GridPosition:       cast.ToInt(r.GridPosition),
			Q1:                 r.Q1,
			Q2:                 r.Q2,
			Q3:                 r.Q3,
			Time:               r.Time,
			Status:             r.Status,
			Points:             cast.ToFloat64(r.Points),
			Laps:               cast.ToInt(r.Laps),
		})
	}

	for _, l := range snap.Laps {
		b.AddLap(convertLap(l))
	}
	for _, w := range snap.Weather {
		b.AddWeather(&model.Weather{
			ID:            w.ID,
			SessionID:     w.SessionID,
			Timestamp:     w.Timestamp,
			AirTemp:       cast.ToFloat64(w.AirTemp),
			Humidity:      cast.ToFloat64(w.Humidity),
			Pressure:      cast.ToFloat64(w.Pressure),
			Rainfall:      cast.ToBool(w.Rainfall),
			TrackTemp:     cast.ToFloat64(w.TrackTemp),
			WindDirection: cast.ToInt(w.WindDirection),
			WindSpeed:     cast.ToFloat64(w.WindSpeed),
		})
	}
	for _, t := range snap.Telemetry {
		b.AddTelemetry(convertTelemetry(t))
	}
	return b.Build()
}

// resolveResultLinks maps result id -> session id, accepting both linkage
// variants without favoring one.
func resolveResultLinks(snap *Snapshot) (map[int]int, error) {
	ret := make(map[int]int)
	for _, s := range snap.Sessions {
		if s.ResultID != nil {
			ret[cast.ToInt(s.ResultID)] = s.ID
		}
	}
	for _, r := range snap.Results {
		if r.SessionID != nil {
			ret[r.ID] = cast.ToInt(r.SessionID)
			continue
		}
		if _, ok := ret[r.ID]; !ok {
			return nil, &store.UnresolvedReferenceError{
				Entity: "result", ID: r.ID, Ref: "session", RefID: 0,
			}
		}
	}
	return ret, nil
}

func convertMarkers(in []RawMarker) []model.Marker {
	ret := make([]model.Marker, 0, len(in))
	for i := range in {
		m := in[i]
		ret = append(ret, model.Marker{
			X:        cast.ToFloat64(m.X),
			Y:        cast.ToFloat64(m.Y),
			Number:   cast.ToInt(m.Number),
			Letter:   m.Letter,
			Angle:    cast.ToFloat64(m.Angle),
			Distance: cast.ToFloat64(m.Distance),
		})
	}
	return ret
}

func convertLap(l *RawLap) *model.Lap {
	return &model.Lap{
		ID:        l.ID,
		SessionID: l.SessionID,
		DriverID:  l.DriverID,
		LapNumber: cast.ToInt(l.LapNumber),
		Timestamp: l.Timestamp,
		LapTime:   l.LapTime,
		Stint:     cast.ToInt(l.Stint),

		Sector1Time:        l.Sector1Time,
		Sector2Time:        l.Sector2Time,
		Sector3Time:        l.Sector3Time,
		Sector1SessionTime: l.Sector1SessionTime,
		Sector2SessionTime: l.Sector2SessionTime,
		Sector3SessionTime: l.Sector3SessionTime,

		Speed1:  cast.ToFloat64(l.Speed1),
		Speed2:  cast.ToFloat64(l.Speed2),
		SpeedFL: cast.ToFloat64(l.SpeedFL),
		SpeedST: cast.ToFloat64(l.SpeedST),

		PersonalBest: cast.ToBool(l.PersonalBest),
		Compound:     l.Compound,
		TyreLife:     cast.ToInt(l.TyreLife),
		FreshTyre:    cast.ToBool(l.FreshTyre),

		LapStartTime: l.LapStartTime,
		LapStartDate: l.LapStartDate,
		TrackStatus:  l.TrackStatus,
		Position:     cast.ToInt(l.Position),
		PitInTime:    l.PitInTime,
		PitOutTime:   l.PitOutTime,
	}
}

func convertTelemetry(t *RawTelemetry) *model.Telemetry {
	return &model.Telemetry{
		ID:    t.ID,
		LapID: t.LapID,

		Time:     t.Time,
		Date:     t.Date,
		RPM:      cast.ToFloat64(t.RPM),
		Speed:    cast.ToFloat64(t.Speed),
		Gear:     cast.ToInt(t.Gear),
		Throttle: cast.ToFloat64(t.Throttle),
		Brake:    cast.ToBool(t.Brake),
		DRS:      cast.ToInt(t.DRS),
		Distance: cast.ToFloat64(t.Distance),

		DriverAhead:       cast.ToInt(t.DriverAhead),
		DistToDriverAhead: cast.ToFloat64(t.DistToDriverAhead),
		RelDistance:       cast.ToFloat64(t.RelDistance),
		Status:            t.Status,
		X:                 cast.ToFloat64(t.X),
		Y:                 cast.ToFloat64(t.Y),
		Z:                 cast.ToFloat64(t.Z),
	}
}
