package filterengine

import (
	"slices"

	"github.com/samber/lo"

	"github.com/elite100/visualizer-go/pkg/model"
)

// Normalize enforces the multi select invariant: ALL never coexists with
// concrete values. Selecting a concrete value drops ALL, deselecting
// everything reverts to ALL.
func Normalize(raw []string) []string {
	if len(raw) == 0 {
		return []string{model.All}
	}
	if slices.Contains(raw, model.All) && len(raw) > 1 {
		return lo.Filter(raw, func(v string, _ int) bool { return v != model.All })
	}
	return raw
}

// NormalizeSelection applies Normalize to both multi select fields and
// defaults the engine type to ALL.
func NormalizeSelection(sel model.FilterSelection) model.FilterSelection {
	sel.Brands = Normalize(sel.Brands)
	sel.Drivetrains = Normalize(sel.Drivetrains)
	if sel.EngineType == "" {
		sel.EngineType = model.All
	}
	return sel
}
