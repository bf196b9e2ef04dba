package model

// BrandLayout holds the horizontal arrangement derived from a filtered
// record set. Recomputed in full on every filter change.
type BrandLayout struct {
	// brand names, fastest first; index == x slot
	BrandOrder []string `json:"brandOrder"`
	// brand -> x slot
	Slots map[string]int `json:"slots"`
	// brand -> widest "model chassis" label in characters
	LabelWidths map[string]int `json:"labelWidths"`
	// widest label across all brands in characters
	MaxLabelWidth int `json:"maxLabelWidth"`
	// suggested chart width in pixels, clamped
	ChartWidth int `json:"chartWidth"`
}

// Point is one drawable marker plus its text label.
type Point struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Color        string  `json:"color"`
	FillColor    string  `json:"fillColor"`
	OutlineWidth int     `json:"outlineWidth"`
	MarkerSize   int     `json:"markerSize"`
	LabelText    string  `json:"labelText"`
	LabelX       float64 `json:"labelX"`
	HoverText    string  `json:"hoverText"`
	Group        string  `json:"group"`
	ShowLegend   bool    `json:"showLegend"`
}

// Tick is one axis tick. An empty label still draws the tick mark.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// LegendEntry describes one (engine type, drivetrain) category group.
type LegendEntry struct {
	Group      string `json:"group"`
	EngineType string `json:"engineType"`
	Drivetrain string `json:"drivetrain"`
	Color      string `json:"color"`
	Hollow     bool   `json:"hollow"`
}

// ChartGeometry is the render ready structure handed to the UI shell.
// Built fresh per update and consumed immediately.
type ChartGeometry struct {
	Points         []Point       `json:"points"`
	Legend         []LegendEntry `json:"legend"`
	YTicks         []Tick        `json:"yTicks"`
	XTicks         []Tick        `json:"xTicks"`
	XRange         [2]float64    `json:"xRange"`
	SeparatorSlots []int         `json:"separatorSlots"`
	XAxisTitle     string        `json:"xAxisTitle"`
	YAxisTitle     string        `json:"yAxisTitle"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
}
