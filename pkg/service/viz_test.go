package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/pkg/store"
	"github.com/elite100/visualizer-go/testsupport/basedata"
)

func newService(t *testing.T) *VizService {
	t.Helper()
	s, err := store.Load(strings.NewReader(basedata.SampleCSV()))
	assert.NoError(t, err)
	return New(WithStore(s))
}

func TestUpdateAll(t *testing.T) {
	svc := newService(t)
	res := svc.Update(model.FilterSelection{})

	assert.Equal(t, 3, res.Summary.VehicleCount)
	assert.Equal(t, 3, res.Summary.BrandCount)
	assert.Equal(t, "Civic Type R FL5", res.Summary.Fastest.Name)
	assert.Equal(t, []string{"Honda", "Toyota", "Mazda"}, res.Layout.BrandOrder)
	assert.Len(t, res.Chart.Points, 3)
	assert.Equal(t, res.Layout.ChartWidth, res.Chart.Width)
}

func TestUpdateFiltered(t *testing.T) {
	svc := newService(t)
	res := svc.Update(model.FilterSelection{
		Brands: []string{model.All, "Mazda"}, // normalized to just Mazda
	})

	assert.Equal(t, 1, res.Summary.VehicleCount)
	assert.Equal(t, []string{"Mazda"}, res.Layout.BrandOrder)
	assert.Len(t, res.Chart.Points, 1)
	assert.Equal(t, "Roadster ND5RC", res.Chart.Points[0].LabelText)
}

func TestUpdateEmptyResult(t *testing.T) {
	svc := newService(t)
	res := svc.Update(model.FilterSelection{SearchText: "does-not-exist"})

	assert.Equal(t, 0, res.Summary.VehicleCount)
	assert.Nil(t, res.Summary.Fastest)
	assert.Empty(t, res.Chart.Points)
	assert.Equal(t, 900, res.Chart.Width)
}

func TestUpdateIsDeterministic(t *testing.T) {
	svc := newService(t)
	sel := model.FilterSelection{EngineType: model.EngineFI}
	assert.Equal(t, svc.Update(sel), svc.Update(sel))
}

func TestOptions(t *testing.T) {
	svc := newService(t)
	opts := svc.Options()
	assert.Equal(t, []string{"Honda", "Mazda", "Toyota"}, opts.Brands)
}
