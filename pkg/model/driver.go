package model

type Driver struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	BroadcastName string `json:"broadcastName"`
	Number        int    `json:"driverNumber"`
	// 2-3 letter abbreviation, unique within a season
	Abbrev    string `json:"abbrevation"`
	Country   string `json:"country"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	// presentation only
	Color string `json:"color"`
}
