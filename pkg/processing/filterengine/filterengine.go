// Package filterengine reduces the record set to the rows matching a
// FilterSelection. Everything here is pure: same input, same output.
package filterengine

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/elite100/visualizer-go/pkg/model"
)

// Apply filters records by brand, drivetrain, engine type and search text.
// The four criteria combine with AND; record order is preserved.
func Apply(records []model.VehicleRecord, sel model.FilterSelection) []model.VehicleRecord {
	terms := searchTerms(sel.SearchText)
	return lo.Filter(records, func(r model.VehicleRecord, _ int) bool {
		return matchesSet(sel.Brands, r.Brand) &&
			matchesSet(sel.Drivetrains, r.Drivetrain) &&
			matchesEngine(sel.EngineType, r.EngineType) &&
			matchesAnyTerm(terms, r.Model, r.ChassisCode)
	})
}

// an empty or ALL-containing selection passes everything
func matchesSet(selected []string, value string) bool {
	if len(selected) == 0 || slices.Contains(selected, model.All) {
		return true
	}
	return slices.Contains(selected, value)
}

func matchesEngine(selected, value string) bool {
	return selected == "" || selected == model.All || selected == value
}

func searchTerms(searchText string) []string {
	if strings.TrimSpace(searchText) == "" {
		return nil
	}
	return lo.Map(strings.Split(searchText, ","), func(term string, _ int) string {
		return strings.ToLower(strings.TrimSpace(term))
	})
}

// matchesAnyTerm implements the text rule: a multi word term must equal the
// full model name, a single word term must appear as a whole word in the
// model name or equal the chassis code. Terms combine with OR.
func matchesAnyTerm(terms []string, mdl, chassis string) bool {
	if terms == nil {
		return true
	}
	modelLower := strings.ToLower(mdl)
	chassisLower := strings.ToLower(chassis)
	modelWords := strings.Fields(modelLower)

	for _, term := range terms {
		if len(strings.Fields(term)) > 1 {
			if term == modelLower {
				return true
			}
		} else {
			if slices.Contains(modelWords, term) || term == chassisLower {
				return true
			}
		}
	}
	return false
}
