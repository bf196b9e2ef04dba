package model

// engine induction types as they appear in the dataset
const (
	EngineNA = "NA"
	EngineFI = "FI"
)

// drivetrain values as they appear in the dataset
const (
	DrivetrainRWD = "RWD"
	DrivetrainAWD = "AWD"
	DrivetrainFWD = "FWD"
)

// VehicleRecord is one vehicle's lap time entry. Records are created once
// at load time and never mutated.
//
// TimeSeconds is nil exactly when TimeRaw could not be parsed; such records
// stay in the raw store but are excluded from filtering and plotting.
// EngineLiters is nil when the dataset cell is not numeric; the record is
// still plottable, the hover text simply omits the displacement.
type VehicleRecord struct {
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	ChassisCode  string   `json:"chassisCode"`
	Year         string   `json:"year"`
	TimeRaw      string   `json:"timeRaw"`
	TimeSeconds  *float64 `json:"timeSec"`
	TimeDisplay  string   `json:"timeDuration"`
	Rank         int      `json:"rank"`
	EngineType   string   `json:"engineType"`
	Drivetrain   string   `json:"drivetrain"`
	EngineLiters *float64 `json:"engineLiters,omitempty"`
	RaceEvent    string   `json:"raceEvent"`
	Date         string   `json:"date"`
}

// Plottable reports whether the record may appear in any filtered or
// rendered output: it needs a brand and a parsed lap time.
func (r *VehicleRecord) Plottable() bool {
	return r.Brand != "" && r.TimeSeconds != nil
}
