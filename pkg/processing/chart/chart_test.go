package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/pkg/processing/layout"
	"github.com/elite100/visualizer-go/testsupport/basedata"
)

func build(records []model.VehicleRecord) model.ChartGeometry {
	return Build(records, layout.Derive(records))
}

func TestBuildLegendGroups(t *testing.T) {
	records := []model.VehicleRecord{
		basedata.Record("a", "A", "M1", "C1", 60,
			basedata.WithEngine(model.EngineNA, 2.0),
			basedata.WithDrivetrain(model.DrivetrainFWD)),
		basedata.Record("b", "B", "M2", "C2", 61,
			basedata.WithEngine(model.EngineFI, 2.0),
			basedata.WithDrivetrain(model.DrivetrainAWD)),
		basedata.Record("c", "A", "M3", "C3", 62,
			basedata.WithEngine(model.EngineNA, 1.6),
			basedata.WithDrivetrain(model.DrivetrainFWD)),
	}
	geo := build(records)

	// only the two populated groups, in fixed category order
	want := []model.LegendEntry{
		{
			Group: "AWD FI", EngineType: model.EngineFI,
			Drivetrain: model.DrivetrainAWD, Color: "rgb(0,100,255)", Hollow: true,
		},
		{
			Group: "FWD NA", EngineType: model.EngineNA,
			Drivetrain: model.DrivetrainFWD, Color: "rgb(0,255,0)", Hollow: false,
		},
	}
	if diff := cmp.Diff(want, geo.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}

	// only the first record of a group carries the legend flag
	var flagged []string
	for _, p := range geo.Points {
		if p.ShowLegend {
			flagged = append(flagged, p.Group)
		}
	}
	assert.Equal(t, []string{"AWD FI", "FWD NA"}, flagged)
}

func TestBuildPointGeometry(t *testing.T) {
	records := basedata.SampleRecords()
	geo := build(records)
	assert.Len(t, geo.Points, 4)

	byName := map[string]model.Point{}
	for _, p := range geo.Points {
		byName[p.LabelText] = p
	}

	// Honda is the fastest brand -> slot 0
	typeR := byName["Type R FL5"]
	assert.Equal(t, 0.0, typeR.X)
	assert.Equal(t, 99.289, typeR.Y)
	assert.Equal(t, 0.10, typeR.LabelX)
	// FI renders hollow with colored outline
	assert.Equal(t, "rgb(0,255,0)", typeR.Color)
	assert.Equal(t, "rgba(0,0,0,0)", typeR.FillColor)
	assert.Equal(t, 2, typeR.OutlineWidth)

	// NA renders filled in the drivetrain color
	roadster := byName["Roadster ND5RC"]
	assert.Equal(t, 2.0, roadster.X)
	assert.Equal(t, "rgb(255,0,0)", roadster.Color)
	assert.Equal(t, "rgb(255,0,0)", roadster.FillColor)
	assert.Equal(t, 0, roadster.OutlineWidth)

	assert.Contains(t, typeR.HoverText, "<b>Civic Type R FL5</b>")
	assert.Contains(t, typeR.HoverText, "Time: 01:39.289")
	assert.Contains(t, typeR.HoverText, "Engine: 2L (FI)")
	assert.Contains(t, typeR.HoverText, "Rank: 1")
}

func TestBuildHoverTextWithoutLiters(t *testing.T) {
	rec := basedata.Record("a", "A", "M", "C", 60)
	rec.EngineLiters = nil
	geo := build([]model.VehicleRecord{rec})
	assert.Contains(t, geo.Points[0].HoverText, "Engine: NA<br>")
}

func TestBuildYTicks(t *testing.T) {
	records := []model.VehicleRecord{
		basedata.Record("a", "A", "M", "C", 99.289),
		basedata.Record("b", "B", "M", "C", 101.2),
	}
	geo := build(records)

	// exact minimum leads and is labeled
	assert.Equal(t, 99.289, geo.YTicks[0].Value)
	assert.Equal(t, "01:39.289", geo.YTicks[0].Label)

	labels := map[float64]string{}
	for _, tick := range geo.YTicks {
		labels[tick.Value] = tick.Label
	}
	// half second grid from ceil(min) to past max
	assert.Contains(t, labels, 99.5)
	assert.Contains(t, labels, 101.5)
	// whole seconds labeled, half seconds blank
	assert.Equal(t, "01:40.000", labels[100.0])
	assert.Equal(t, "", labels[100.5])
	assert.Equal(t, "01:41.000", labels[101.0])
}

func TestBuildXAxis(t *testing.T) {
	records := basedata.SampleRecords()
	lay := layout.Derive(records)
	geo := Build(records, lay)

	assert.Equal(t, []model.Tick{
		{Value: 0, Label: "Honda"},
		{Value: 1, Label: "Toyota"},
		{Value: 2, Label: "Mazda"},
	}, geo.XTicks)
	assert.Equal(t, []int{0, 1, 2}, geo.SeparatorSlots)
	assert.Equal(t, -0.5, geo.XRange[0])
	assert.InDelta(t, 2+float64(lay.MaxLabelWidth)*0.08+0.5, geo.XRange[1], 1e-9)
	assert.Equal(t, lay.ChartWidth, geo.Width)
	assert.Equal(t, 800, geo.Height)
}

func TestBuildEmpty(t *testing.T) {
	geo := build(nil)
	assert.Empty(t, geo.Points)
	assert.Empty(t, geo.Legend)
	assert.Empty(t, geo.YTicks)
	assert.Empty(t, geo.XTicks)
	assert.Empty(t, geo.SeparatorSlots)
	assert.Equal(t, 900, geo.Width)
	assert.Equal(t, yAxisTitle, geo.YAxisTitle)
}

func TestBuildSortsBySlotThenTime(t *testing.T) {
	records := []model.VehicleRecord{
		basedata.Record("slow-a", "A", "MA", "C1", 65),
		basedata.Record("fast-b", "B", "MB", "C2", 60),
		basedata.Record("fast-a", "A", "MA", "C3", 61),
	}
	geo := build(records)
	var order []string
	for _, p := range geo.Points {
		order = append(order, p.LabelText)
	}
	// brand B (slot 0) first, then brand A by ascending time
	assert.Equal(t, []string{"MB C2", "MA C3", "MA C1"}, order)
}
