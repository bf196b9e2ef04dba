package store

import (
	"math"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/elite100/visualizer-go/testsupport/basedata"
)

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(basedata.SampleCSV()))
	assert.NilError(t, err)
	assert.Equal(t, 4, len(s.Records()))
	// the unparsable "n/a laps" row stays raw but is never plottable
	assert.Equal(t, 3, len(s.Plottable()))

	first := s.Records()[0]
	assert.Equal(t, "Honda", first.Brand) // trailing space trimmed
	assert.Equal(t, "Type R", first.Model)
	assert.Assert(t, first.TimeSeconds != nil)
	assert.Assert(t, math.Abs(*first.TimeSeconds-99.289) < 1e-9)
	assert.Equal(t, "01:39.289", first.TimeDisplay)
	assert.Equal(t, 1, first.Rank)
	assert.Assert(t, first.EngineLiters != nil)
	assert.Equal(t, 2.0, *first.EngineLiters)

	ghost := s.Records()[3]
	assert.Assert(t, ghost.TimeSeconds == nil)
	assert.Equal(t, "", ghost.TimeDisplay)
	assert.Assert(t, ghost.EngineLiters == nil) // "?" is not numeric
	assert.Assert(t, !ghost.Plottable())
}

func TestLoadMissingColumn(t *testing.T) {
	csv := "Name,Brand,Model\nfoo,bar,baz\n"
	_, err := Load(strings.NewReader(csv))
	assert.ErrorContains(t, err, "missing column")
}

func TestOptions(t *testing.T) {
	s, err := Load(strings.NewReader(basedata.SampleCSV()))
	assert.NilError(t, err)
	opts := s.Options()
	// distinct, sorted, plottable rows only (no "Ghost")
	assert.DeepEqual(t, []string{"Honda", "Mazda", "Toyota"}, opts.Brands)
	assert.DeepEqual(t, []string{"AWD", "FWD", "RWD"}, opts.Drivetrains)
	assert.DeepEqual(t, []string{"FI", "NA"}, opts.EngineTypes)
}

func TestPlottablePreservesOrder(t *testing.T) {
	s, err := Load(strings.NewReader(basedata.SampleCSV()))
	assert.NilError(t, err)
	brands := make([]string, 0, len(s.Plottable()))
	for _, r := range s.Plottable() {
		brands = append(brands, r.Brand)
	}
	assert.DeepEqual(t, []string{"Honda", "Toyota", "Mazda"}, brands)
}
