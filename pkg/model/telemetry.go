package model

// Telemetry is one high frequency sample within a lap. The extended columns
// (driver ahead, positional data, status) are not present in every schema
// variant and default to their zero values.
type Telemetry struct {
	ID    int `json:"id"`
	LapID int `json:"lapId"`

	Time     string  `json:"time"`
	Date     string  `json:"date"`
	RPM      float64 `json:"rpm"`
	Speed    float64 `json:"speed"`
	Gear     int     `json:"ngear"`
	Throttle float64 `json:"throttle"`
	Brake    bool    `json:"brake"`
	DRS      int     `json:"drs"`
	Distance float64 `json:"distance"`

	// extended columns
	DriverAhead       int     `json:"driverAhead"`
	DistToDriverAhead float64 `json:"distToDriverAhead"`
	RelDistance       float64 `json:"relDistance"`
	Status            string  `json:"status"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	Z                 float64 `json:"z"`
}
