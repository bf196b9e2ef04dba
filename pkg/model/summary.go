package model

// FastestLap describes the single fastest record of a filtered set,
// preformatted for the side panel.
type FastestLap struct {
	Name    string `json:"name"`
	Time    string `json:"time"`
	Vehicle string `json:"vehicle"` // "year brand model chassis"
	Engine  string `json:"engine"`  // "2.0L NA - RWD"
	Event   string `json:"event"`   // "race event • date"
	Rank    int    `json:"rank"`
}

// SummaryStats are the aggregates shown next to the chart.
type SummaryStats struct {
	VehicleCount int         `json:"vehicleCount"`
	BrandCount   int         `json:"brandCount"`
	Fastest      *FastestLap `json:"fastest,omitempty"`
}
