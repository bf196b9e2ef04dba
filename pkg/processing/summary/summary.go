// Package summary computes the aggregate panel stats for a filtered set.
package summary

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/elite100/visualizer-go/pkg/laptime"
	"github.com/elite100/visualizer-go/pkg/model"
)

// Summarize counts records and distinct brands and picks the fastest
// record (first one on a tie, by store order). Empty input yields zero
// counts and no fastest entry.
func Summarize(records []model.VehicleRecord) model.SummaryStats {
	stats := model.SummaryStats{
		VehicleCount: len(records),
		BrandCount: len(lo.Uniq(lo.Map(records,
			func(r model.VehicleRecord, _ int) string { return r.Brand }))),
	}
	if len(records) == 0 {
		return stats
	}

	fastest := records[0]
	for _, r := range records[1:] {
		if *r.TimeSeconds < *fastest.TimeSeconds {
			fastest = r
		}
	}

	engine := fastest.EngineType
	if fastest.EngineLiters != nil {
		engine = fmt.Sprintf("%sL %s",
			strconv.FormatFloat(*fastest.EngineLiters, 'f', -1, 64),
			fastest.EngineType)
	}
	stats.Fastest = &model.FastestLap{
		Name: fastest.Name,
		Time: laptime.Format(*fastest.TimeSeconds, 3),
		Vehicle: fmt.Sprintf("%s %s %s %s",
			fastest.Year, fastest.Brand, fastest.Model, fastest.ChassisCode),
		Engine: fmt.Sprintf("%s - %s", engine, fastest.Drivetrain),
		Event:  fmt.Sprintf("%s • %s", fastest.RaceEvent, fastest.Date),
		Rank:   fastest.Rank,
	}
	return stats
}
