// Dynamic planning: the ambition-aware variant. Same candidates and the same
// 0–5 / positive-score contract as Propose, but the score additionally weighs
// node domains against the live profile, regional affinities, and the faction
// picture.
package planner

import (
	"github.com/talgya/crownfall/internal/ambition"
	"github.com/talgya/crownfall/internal/goals"
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

// ProposeDynamic ranks candidates with the profile in the loop.
func ProposeDynamic(g *goals.Graph, w *world.WorldState, kb *knowledge.Base, profile ambition.Profile) []knowledge.ActionProposal {
	candidates := gatherCandidates(g, w, kb)
	for i := range candidates {
		base := score(&candidates[i], g, w)
		if base <= 0 {
			candidates[i].Score = 0
			continue
		}
		candidates[i].Score = base + dynamicBonus(&candidates[i], g, w, profile)
	}
	return rank(candidates)
}

// dynamicBonus is always non-negative, so the static contract (unaffordable
// and pointless actions excluded) carries over unchanged.
func dynamicBonus(a *knowledge.ActionProposal, g *goals.Graph, w *world.WorldState, profile ambition.Profile) float64 {
	bonus := 0.0

	// Domain alignment: actions serving the player's heavy domains pull ahead.
	for _, id := range a.Satisfies {
		n := g.Node(id)
		if n == nil {
			continue
		}
		for _, d := range n.Domains {
			bonus += profile.Domains[d] * 4
		}
	}

	// Regional affinity: acting where the land leans toward the action's
	// domains lands better.
	if len(a.Regions) > 0 {
		sum, count := 0.0, 0
		for _, id := range a.Regions {
			r := w.Region(id)
			if r == nil {
				continue
			}
			for _, nodeID := range a.Satisfies {
				if n := g.Node(nodeID); n != nil {
					for _, d := range n.Domains {
						sum += r.Affinity[d]
						count++
					}
				}
			}
		}
		if count > 0 {
			bonus += sum / float64(count) * 2
		}
	}

	// Faction pressure: hostile neighbors make might-building more urgent.
	hostile := 0
	for _, f := range w.Factions {
		if f.Stance == world.StanceHostile {
			hostile++
		}
	}
	if hostile > 0 {
		for _, e := range a.Effects {
			if e.Kind == knowledge.EffectLegitimacy && e.Target == "might" && e.Delta > 0 {
				bonus += 1.5 * float64(hostile)
				break
			}
		}
	}

	return bonus
}
