// Package service wires the computation pipeline together: one Update call
// runs filter -> layout -> chart plus the summary over the immutable store.
package service

import (
	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/pkg/processing/chart"
	"github.com/elite100/visualizer-go/pkg/processing/filterengine"
	"github.com/elite100/visualizer-go/pkg/processing/layout"
	"github.com/elite100/visualizer-go/pkg/processing/summary"
	"github.com/elite100/visualizer-go/pkg/store"
)

type VizService struct {
	store *store.Store
}

type Option func(*VizService)

func WithStore(s *store.Store) Option {
	return func(v *VizService) {
		v.store = s
	}
}

func New(opts ...Option) *VizService {
	v := &VizService{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is the render ready pair handed to the UI shell.
type Result struct {
	Chart   model.ChartGeometry `json:"chart"`
	Layout  model.BrandLayout   `json:"layout"`
	Summary model.SummaryStats  `json:"summary"`
}

// Update recomputes everything for one filter selection. Pure given
// (store, selection); concurrent calls are safe, the latest result wins.
func (v *VizService) Update(sel model.FilterSelection) Result {
	sel = filterengine.NormalizeSelection(sel)
	filtered := filterengine.Apply(v.store.Plottable(), sel)
	lay := layout.Derive(filtered)
	return Result{
		Chart:   chart.Build(filtered, lay),
		Layout:  lay,
		Summary: summary.Summarize(filtered),
	}
}

// Options exposes the selectable filter values for the UI shell.
func (v *VizService) Options() model.FilterOptions {
	return v.store.Options()
}
