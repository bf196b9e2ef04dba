// Package chart assembles the render ready scatter geometry from filtered
// records and their brand layout.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/elite100/visualizer-go/pkg/laptime"
	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/pkg/processing/layout"
)

const (
	labelOffset  = 0.10
	tickInterval = 0.5
	markerSize   = 6
	outlineWidth = 2
	chartHeight  = 800

	transparentFill = "rgba(0,0,0,0)"

	xAxisTitle = "Brand (sorted by fastest time →)"
	yAxisTitle = "Lap Time - lowest is fastest"
)

// fixed drivetrain palette
var drivetrainColors = map[string]string{
	model.DrivetrainRWD: "rgb(255,0,0)",
	model.DrivetrainAWD: "rgb(0,100,255)",
	model.DrivetrainFWD: "rgb(0,255,0)",
}

// legend and trace order; empty groups are omitted entirely
var categoryOrder = []struct {
	engineType string
	drivetrain string
}{
	{model.EngineNA, model.DrivetrainRWD},
	{model.EngineFI, model.DrivetrainRWD},
	{model.EngineNA, model.DrivetrainAWD},
	{model.EngineFI, model.DrivetrainAWD},
	{model.EngineNA, model.DrivetrainFWD},
	{model.EngineFI, model.DrivetrainFWD},
}

// Build maps the filtered records onto point geometry, legend entries and
// axis ticks. Empty input yields empty geometry but keeps the axis titles
// and chart frame intact.
func Build(records []model.VehicleRecord, lay model.BrandLayout) model.ChartGeometry {
	geo := model.ChartGeometry{
		Points:         []model.Point{},
		Legend:         []model.LegendEntry{},
		YTicks:         []model.Tick{},
		XTicks:         []model.Tick{},
		SeparatorSlots: separatorSlots(len(lay.BrandOrder)),
		XAxisTitle:     xAxisTitle,
		YAxisTitle:     yAxisTitle,
		Width:          lay.ChartWidth,
		Height:         chartHeight,
	}
	if len(records) == 0 {
		return geo
	}

	sorted := make([]model.VehicleRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := lay.Slots[sorted[i].Brand], lay.Slots[sorted[j].Brand]
		if si != sj {
			return si < sj
		}
		return *sorted[i].TimeSeconds < *sorted[j].TimeSeconds
	})

	minTime, maxTime := timeBounds(sorted)

	for _, cat := range categoryOrder {
		group := fmt.Sprintf("%s %s", cat.drivetrain, cat.engineType)
		first := true
		for _, rec := range sorted {
			if rec.EngineType != cat.engineType || rec.Drivetrain != cat.drivetrain {
				continue
			}
			if first {
				geo.Legend = append(geo.Legend, model.LegendEntry{
					Group:      group,
					EngineType: cat.engineType,
					Drivetrain: cat.drivetrain,
					Color:      drivetrainColors[cat.drivetrain],
					Hollow:     cat.engineType == model.EngineFI,
				})
			}
			geo.Points = append(geo.Points, buildPoint(rec, lay, group, first))
			first = false
		}
	}

	geo.YTicks = yTicks(minTime, maxTime)
	for slot, brand := range lay.BrandOrder {
		geo.XTicks = append(geo.XTicks, model.Tick{Value: float64(slot), Label: brand})
	}
	geo.XRange = [2]float64{
		-0.5,
		float64(len(lay.BrandOrder)-1) +
			float64(lay.MaxLabelWidth)*layout.CharWidth + 0.5,
	}
	return geo
}

func buildPoint(rec model.VehicleRecord, lay model.BrandLayout, group string, first bool) model.Point {
	color := drivetrainColors[rec.Drivetrain]
	x := float64(lay.Slots[rec.Brand])
	pt := model.Point{
		X:          x,
		Y:          *rec.TimeSeconds,
		Color:      color,
		FillColor:  color,
		MarkerSize: markerSize,
		LabelText:  fmt.Sprintf("%s %s", rec.Model, rec.ChassisCode),
		LabelX:     x + labelOffset,
		HoverText:  hoverText(rec),
		Group:      group,
		ShowLegend: first,
	}
	// forced induction renders hollow: transparent fill, colored outline
	if rec.EngineType == model.EngineFI {
		pt.FillColor = transparentFill
		pt.OutlineWidth = outlineWidth
	}
	return pt
}

func hoverText(rec model.VehicleRecord) string {
	engine := rec.EngineType
	if rec.EngineLiters != nil {
		engine = fmt.Sprintf("%sL (%s)",
			strconv.FormatFloat(*rec.EngineLiters, 'f', -1, 64), rec.EngineType)
	}
	return fmt.Sprintf(
		"<b>%s</b><br>Model: %s<br>Brand: %s<br>Time: %s<br>"+
			"Engine: %s<br>Drivetrain: %s<br>Rank: %d",
		rec.Name, rec.Model, rec.Brand, laptime.Format(*rec.TimeSeconds, 3),
		engine, rec.Drivetrain, rec.Rank)
}

// yTicks spans a half second grid from the ceiling of the minimum to just
// past the maximum, with the exact minimum always included. Labels appear
// on the minimum and on whole second boundaries only.
func yTicks(minTime, maxTime float64) []model.Tick {
	values := []float64{minTime}
	start := math.Ceil(minTime/tickInterval) * tickInterval
	for i := 0; ; i++ {
		t := start + float64(i)*tickInterval
		if t >= maxTime+tickInterval {
			break
		}
		if math.Abs(t-minTime) < 1e-9 {
			continue
		}
		values = append(values, t)
	}

	ticks := make([]model.Tick, 0, len(values))
	for _, t := range values {
		label := ""
		if t == minTime || math.Mod(t, 1.0) < 0.01 {
			label = laptime.Format(t, 3)
		}
		ticks = append(ticks, model.Tick{Value: t, Label: label})
	}
	return ticks
}

func separatorSlots(numBrands int) []int {
	slots := make([]int, numBrands)
	for i := range slots {
		slots[i] = i
	}
	return slots
}

func timeBounds(records []model.VehicleRecord) (minTime, maxTime float64) {
	minTime, maxTime = *records[0].TimeSeconds, *records[0].TimeSeconds
	for _, r := range records[1:] {
		t := *r.TimeSeconds
		minTime = math.Min(minTime, t)
		maxTime = math.Max(maxTime, t)
	}
	return minTime, maxTime
}
