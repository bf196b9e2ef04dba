package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/testsupport/basedata"
)

func TestSummarize(t *testing.T) {
	records := basedata.SampleRecords()
	records[0].RaceEvent = "Attack Tsukuba"
	records[0].Date = "2024-02-10"
	stats := Summarize(records)

	assert.Equal(t, 4, stats.VehicleCount)
	assert.Equal(t, 3, stats.BrandCount)
	if assert.NotNil(t, stats.Fastest) {
		assert.Equal(t, "Civic Type R FL5", stats.Fastest.Name)
		assert.Equal(t, "01:39.289", stats.Fastest.Time)
		assert.Equal(t, "2023 Honda Type R FL5", stats.Fastest.Vehicle)
		assert.Equal(t, "2L FI - FWD", stats.Fastest.Engine)
		assert.Equal(t, "Attack Tsukuba • 2024-02-10", stats.Fastest.Event)
		assert.Equal(t, 1, stats.Fastest.Rank)
	}
}

func TestSummarizeTieKeepsFirst(t *testing.T) {
	records := []model.VehicleRecord{
		basedata.Record("first", "A", "M", "C", 60),
		basedata.Record("second", "B", "M", "C", 60),
	}
	stats := Summarize(records)
	assert.Equal(t, "first", stats.Fastest.Name)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	assert.Equal(t, 0, stats.VehicleCount)
	assert.Equal(t, 0, stats.BrandCount)
	assert.Nil(t, stats.Fastest)
}

func TestSummarizeWithoutLiters(t *testing.T) {
	rec := basedata.Record("a", "A", "M", "C", 60)
	rec.EngineLiters = nil
	stats := Summarize([]model.VehicleRecord{rec})
	assert.Equal(t, "NA - RWD", stats.Fastest.Engine)
}
