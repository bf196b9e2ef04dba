// Package basedata provides shared sample records for tests.
package basedata

import "github.com/elite100/visualizer-go/pkg/model"

func ptr(v float64) *float64 { return &v }

// SampleCSV mirrors the dataset shape, including the whitespace the loader
// must trim and one row with an unparsable time.
func SampleCSV() string {
	return `Name, Brand, Model, ChassisCode, Year, Time, Rank, EngineL, EngineType, Drivetrain, RaceEvent, Date
Civic Type R FL5, Honda , Type R, FL5, 2023, 01:39.289, 1, 2.0, FI, FWD, Attack Tsukuba, 2024-02-10
GR Yaris, Toyota, GR Yaris, GXPA16, 2021, 01:41.5, 2, 1.6, FI, AWD, Attack Tsukuba, 2024-02-10
Roadster, Mazda, Roadster, ND5RC, 2019, 1:45.10, 3, 1.5, NA, RWD, Hot Lap Day, 2023-11-03
Mystery, Ghost, Unknown, XX0, 2020, n/a laps, 4, ?, NA, RWD, Hot Lap Day, 2023-11-03
`
}

// Record builds one plottable record with sensible defaults.
func Record(name, brand, mdl, chassis string, sec float64, opts ...func(*model.VehicleRecord)) model.VehicleRecord {
	rec := model.VehicleRecord{
		Name:        name,
		Brand:       brand,
		Model:       mdl,
		ChassisCode: chassis,
		Year:        "2023",
		TimeSeconds: ptr(sec),
		EngineType:  model.EngineNA,
		Drivetrain:  model.DrivetrainRWD,
		Rank:        0,
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

func WithEngine(engineType string, liters float64) func(*model.VehicleRecord) {
	return func(r *model.VehicleRecord) {
		r.EngineType = engineType
		r.EngineLiters = ptr(liters)
	}
}

func WithDrivetrain(drivetrain string) func(*model.VehicleRecord) {
	return func(r *model.VehicleRecord) {
		r.Drivetrain = drivetrain
	}
}

func WithRank(rank int) func(*model.VehicleRecord) {
	return func(r *model.VehicleRecord) {
		r.Rank = rank
	}
}

// SampleRecords is a small mixed set: two Honda FWD, one Toyota AWD,
// one Mazda RWD. Store order matters for tie break tests.
func SampleRecords() []model.VehicleRecord {
	return []model.VehicleRecord{
		Record("Civic Type R FL5", "Honda", "Type R", "FL5", 99.289,
			WithEngine(model.EngineFI, 2.0), WithDrivetrain(model.DrivetrainFWD), WithRank(1)),
		Record("Civic FD2", "Honda", "Civic", "FD2", 103.4,
			WithEngine(model.EngineNA, 2.0), WithDrivetrain(model.DrivetrainFWD), WithRank(7)),
		Record("GR Yaris", "Toyota", "GR Yaris", "GXPA16", 101.5,
			WithEngine(model.EngineFI, 1.6), WithDrivetrain(model.DrivetrainAWD), WithRank(3)),
		Record("Roadster", "Mazda", "Roadster", "ND5RC", 105.1,
			WithEngine(model.EngineNA, 1.5), WithRank(12)),
	}
}
