// Package layout derives the horizontal chart arrangement from a filtered
// record set: brand order, slots, label widths and the chart width.
package layout

import (
	"fmt"
	"math"
	"sort"

	"github.com/elite100/visualizer-go/pkg/model"
)

const (
	// estimated width of one label character in slot units
	CharWidth = 0.08

	minChartWidth = 900
	maxChartWidth = 1600
	slotWidthPx   = 100
	baseWidthPx   = 500
)

// Derive orders brands fastest first (ties keep record order) and computes
// per brand label widths plus the clamped chart width. Safe on empty input.
func Derive(records []model.VehicleRecord) model.BrandLayout {
	lay := model.BrandLayout{
		BrandOrder:  []string{},
		Slots:       map[string]int{},
		LabelWidths: map[string]int{},
		ChartWidth:  minChartWidth,
	}
	if len(records) == 0 {
		return lay
	}

	fastest := map[string]float64{}
	for _, r := range records {
		t := *r.TimeSeconds
		if best, ok := fastest[r.Brand]; !ok || t < best {
			fastest[r.Brand] = t
		}
		if _, ok := lay.Slots[r.Brand]; !ok {
			// first-appearance order, the tie break for equal times
			lay.Slots[r.Brand] = len(lay.BrandOrder)
			lay.BrandOrder = append(lay.BrandOrder, r.Brand)
		}
		width := len(fmt.Sprintf("%s %s", r.Model, r.ChassisCode))
		if width > lay.LabelWidths[r.Brand] {
			lay.LabelWidths[r.Brand] = width
		}
	}

	sort.SliceStable(lay.BrandOrder, func(i, j int) bool {
		return fastest[lay.BrandOrder[i]] < fastest[lay.BrandOrder[j]]
	})
	for slot, brand := range lay.BrandOrder {
		lay.Slots[brand] = slot
	}

	for _, width := range lay.LabelWidths {
		if width > lay.MaxLabelWidth {
			lay.MaxLabelWidth = width
		}
	}

	contentWidth := float64(len(lay.BrandOrder)*slotWidthPx+baseWidthPx) +
		float64(lay.MaxLabelWidth)*CharWidth*200
	lay.ChartWidth = int(math.Round(math.Min(maxChartWidth,
		math.Max(minChartWidth, contentWidth))))
	return lay
}
