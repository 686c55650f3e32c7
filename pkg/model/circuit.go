package model

// Circuit describes a track location. Geometry markers (corners, marshal
// lights, marshal sectors) are owned by the circuit and only used for
// metadata lookups.
type Circuit struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Rotation       float64  `json:"rotation"`
	Corners        []Marker `json:"corners"`
	MarshalLights  []Marker `json:"marshalLights"`
	MarshalSectors []Marker `json:"marshalSectors"`
}

type Marker struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Number   int     `json:"number"`
	Letter   string  `json:"letter"`
	Angle    float64 `json:"angle"`
	Distance float64 `json:"distance"`
}
