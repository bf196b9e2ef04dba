package model

// All is the sentinel used by the multi select filters. A selection
// containing All (or nothing at all) passes every record.
const All = "ALL"

// FilterSelection captures the filter state of one user interaction.
// It is built fresh per request and has no lifecycle beyond it.
type FilterSelection struct {
	Brands      []string `json:"brands"`
	Drivetrains []string `json:"drivetrains"`
	EngineType  string   `json:"engineType"`
	SearchText  string   `json:"searchText"`
}

// FilterOptions lists the selectable values offered to the UI shell,
// derived from the plottable records.
type FilterOptions struct {
	Brands      []string `json:"brands"`
	Drivetrains []string `json:"drivetrains"`
	EngineTypes []string `json:"engineTypes"`
}
