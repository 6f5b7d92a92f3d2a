// Generator condition evaluation. Conditions are either threshold
// comparisons ("iron < 10", "unrest > 40") over named world scalars, or bare
// boolean tokens ("high_crime" trait presence, "winter" from the tick phase).
package planner

import (
	"strconv"
	"strings"

	"github.com/talgya/crownfall/internal/world"
)

// winterPhase: every fourth tick is winter.
const winterPhase = 3

func conditionsHold(conditions []string, w *world.WorldState) bool {
	for _, c := range conditions {
		if !evalCondition(c, w) {
			return false
		}
	}
	return true
}

func evalCondition(cond string, w *world.WorldState) bool {
	cond = strings.TrimSpace(cond)

	if name, val, ok := splitComparison(cond, "<"); ok {
		return scalarValue(name, w) < val
	}
	if name, val, ok := splitComparison(cond, ">"); ok {
		return scalarValue(name, w) > val
	}

	switch cond {
	case "winter":
		return w.Tick%4 == winterPhase
	default:
		// Bare tokens are trait flags ("high_crime", "iron_scarcity", ...).
		return w.HasTrait(cond)
	}
}

func splitComparison(cond, op string) (name string, val float64, ok bool) {
	left, right, found := strings.Cut(cond, op)
	if !found {
		return "", 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return "", 0, false
	}
	return strings.TrimSpace(left), v, true
}

// scalarValue resolves a comparison name against the world. Unknown names
// read as 0, so a typoed condition fails closed for ">" and open for "<".
func scalarValue(name string, w *world.WorldState) float64 {
	switch name {
	case "gold", "grain", "iron", "wood", "stone":
		return float64(w.Resources.Get(name))
	case "unrest":
		return w.People.Unrest * 100
	case "loyalty":
		return w.People.Loyalty * 100
	case "security":
		return w.AvgSecurity()
	case "units":
		return float64(w.Forces.Units)
	case "law", "faith", "lineage", "might":
		return w.Legitimacy.Meter(name)
	}
	return 0
}
