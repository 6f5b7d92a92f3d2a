// Multi-factor action scoring. The factor weights sum to 1.0 of the final
// additive score: progress 35%, cost 20%, risk 20%, time 10%, opportunity 5%,
// legitimacy 8%, faith 7%. Scores floor at 0; only positive scores survive.
package planner

import (
	"strings"

	"github.com/talgya/crownfall/internal/goals"
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

const (
	weightProgress    = 0.35
	weightCost        = 0.20
	weightRisk        = 0.20
	weightTime        = 0.10
	weightOpportunity = 0.05
	weightLegitimacy  = 0.08
	weightFaith       = 0.07
)

// unaffordablePenalty dwarfs every positive factor, guaranteeing exclusion.
const unaffordablePenalty = 1e6

func score(a *knowledge.ActionProposal, g *goals.Graph, w *world.WorldState) float64 {
	s := weightProgress*progressScore(a, g) -
		weightCost*costPenalty(a, w) -
		weightRisk*riskPenalty(a) +
		weightTime*timeBonus(a.Time) +
		weightOpportunity*opportunityBonus(a) +
		weightLegitimacy*legitimacyBonus(a, w) +
		weightFaith*faithBonus(a, w)
	if s < 0 {
		return 0
	}
	return s
}

// progressScore: +5 per unmet node the action satisfies, +2 per downstream
// node that meeting it would unlock.
func progressScore(a *knowledge.ActionProposal, g *goals.Graph) float64 {
	p := 0.0
	for _, id := range a.Satisfies {
		n := g.Node(id)
		if n == nil || n.Status != goals.StatusUnmet {
			continue
		}
		p += 5
		p += 2 * float64(g.Unlocks(id))
	}
	return p
}

// costPenalty is proportional to the fraction of each available resource the
// action consumes. Any single cost exceeding availability forces the
// effectively-infinite penalty.
func costPenalty(a *knowledge.ActionProposal, w *world.WorldState) float64 {
	p := 0.0
	for name, cost := range a.Costs {
		if cost <= 0 {
			continue
		}
		avail := w.Resources.Get(name)
		if cost > avail {
			return unaffordablePenalty
		}
		p += float64(cost) / float64(avail) * 10
	}
	return p
}

func riskPenalty(a *knowledge.ActionProposal) float64 {
	p := 0.0
	for _, prob := range a.Risks {
		p += prob * 5
	}
	return p
}

// timeBonus keys off the literal digit characters in the human-readable time
// string. Coarse, and the bucket order is deliberate: "12 turns" hits the
// "1" branch first.
func timeBonus(t string) float64 {
	switch {
	case strings.Contains(t, "1"):
		return 10
	case strings.Contains(t, "2"):
		return 7
	case strings.Contains(t, "3"):
		return 5
	case strings.Contains(t, "4"):
		return 3
	default:
		return 1
	}
}

// opportunityBonus: flat +2 for anything that pays out.
func opportunityBonus(a *knowledge.ActionProposal) float64 {
	if len(a.Rewards) > 0 {
		return 2
	}
	return 0
}

// legitimacyTarget is the meter level the bonus steers toward.
const legitimacyTarget = 50.0

// legitimacyBonus boosts actions that raise whichever meter is currently
// lowest, scaled by the gap to target.
func legitimacyBonus(a *knowledge.ActionProposal, w *world.WorldState) float64 {
	lowest, val := w.Legitimacy.Lowest()
	gap := legitimacyTarget - val
	if gap <= 0 {
		return 0
	}
	for _, e := range a.Effects {
		if e.Kind == knowledge.EffectLegitimacy && e.Target == lowest && e.Delta > 0 {
			return gap / legitimacyTarget * 10
		}
	}
	return 0
}

// faithBonus boosts actions matching a faith crisis, regional heresy, or a
// high-piety opportunity.
func faithBonus(a *knowledge.ActionProposal, w *world.WorldState) float64 {
	raisesFaith := false
	for _, e := range a.Effects {
		if e.Kind == knowledge.EffectLegitimacy && e.Target == "faith" && e.Delta > 0 {
			raisesFaith = true
		}
		if e.Kind == knowledge.EffectRegion && (e.Target == "piety" && e.Delta > 0 || e.Target == "heresy" && e.Delta < 0) {
			raisesFaith = true
		}
	}
	if !raisesFaith {
		return 0
	}

	if w.Legitimacy.Faith < 30 {
		return 8
	}
	for _, r := range w.ControlledRegions() {
		if r.Heresy > 50 {
			return 6
		}
	}
	avgPiety := 0.0
	controlled := w.ControlledRegions()
	if len(controlled) > 0 {
		for _, r := range controlled {
			avgPiety += r.Piety
		}
		avgPiety /= float64(len(controlled))
	}
	if avgPiety > 70 {
		return 4
	}
	return 0
}
