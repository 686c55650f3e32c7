package model

import "time"

// Session is one timed track activity (practice, qualifying, sprint, race)
// within an event.
type Session struct {
	ID          int       `json:"id"`
	EventName   string    `json:"eventName"`
	SessionName string    `json:"sessionName"`
	Date        time.Time `json:"date"`
	// 0 if the schema variant carries no circuit linkage
	CircuitID int `json:"circuitId"`
}

// Result is the classification of one driver in one session.
// Duration bearing fields (Q1-Q3, Time) keep their raw textual form and are
// parsed on demand. Position values are 1-based; 0 means absent.
type Result struct {
	ID        int `json:"id"`
	DriverID  int `json:"driverId"`
	TeamID    int `json:"teamId"`
	SessionID int `json:"sessionId"`
	Position  int `json:"position"`
	// may be non-numeric (DNF, DSQ, R, ...)
	ClassifiedPosition string  `json:"classifiedPosition"`
	GridPosition       int     `json:"gridPosition"`
	Q1                 string  `json:"q1"`
	Q2                 string  `json:"q2"`
	Q3                 string  `json:"q3"`
	Time               string  `json:"time"`
	Status             string  `json:"status"`
	Points             float64 `json:"points"`
	Laps               int     `json:"laps"`
}

// Weather is one sample of track conditions. The sampling cadence is
// independent of laps; the only link to laps is the shared session.
type Weather struct {
	ID            int     `json:"id"`
	SessionID     int     `json:"sessionId"`
	Timestamp     string  `json:"timestamp"`
	AirTemp       float64 `json:"airTemp"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	Rainfall      bool    `json:"rainfall"`
	TrackTemp     float64 `json:"trackTemp"`
	WindDirection int     `json:"windDirection"`
	WindSpeed     float64 `json:"windSpeed"`
}
