package model

// Lap is one recorded lap of a driver within a session. Lap numbers are
// 1-based and monotonically increasing per driver, gaps are legal (a missing
// lap has no record). Duration fields keep their raw textual form
// ("0 days 00:01:23.456000") and are parsed on demand.
type Lap struct {
	ID        int    `json:"id"`
	SessionID int    `json:"sessionId"`
	DriverID  int    `json:"driverId"`
	LapNumber int    `json:"lapNumber"`
	Timestamp string `json:"timestamp"`
	LapTime   string `json:"lapTime"`
	Stint     int    `json:"stint"`

	Sector1Time        string `json:"sector1Time"`
	Sector2Time        string `json:"sector2Time"`
	Sector3Time        string `json:"sector3Time"`
	Sector1SessionTime string `json:"sector1SessionTime"`
	Sector2SessionTime string `json:"sector2SessionTime"`
	Sector3SessionTime string `json:"sector3SessionTime"`

	// speed trap readings (km/h)
	Speed1  float64 `json:"speed1"`
	Speed2  float64 `json:"speed2"`
	SpeedFL float64 `json:"speedFL"`
	SpeedST float64 `json:"speedST"`

	PersonalBest bool   `json:"personalBest"`
	Compound     string `json:"compound"`
	TyreLife     int    `json:"tyreLife"`
	FreshTyre    bool   `json:"freshTyre"`

	LapStartTime string `json:"lapStartTime"`
	LapStartDate string `json:"lapStartDate"`
	TrackStatus  string `json:"trackStatus"`
	// running position at the end of the lap, 0 if unknown
	Position   int    `json:"position"`
	PitInTime  string `json:"pitInTime"`
	PitOutTime string `json:"pitOutTime"`
}
