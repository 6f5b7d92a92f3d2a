// Dynamic goal generation: rolls the template catalog against the ambition
// profile to produce each player's requirement graph, and spawns follow-up
// nodes when a domain weight crosses a threshold mid-game.
package goals

import (
	"github.com/talgya/crownfall/internal/ambition"
	"github.com/talgya/crownfall/internal/rng"
)

// GenerateDynamic walks the catalog tier-ascending, domains by descending
// profile weight, and rolls each eligible template once. The node target is
// itself rolled in [minNodes, maxNodes]; if the walk falls short of minNodes
// a floor pass force-adds tier-1 templates from the two strongest domains.
func GenerateDynamic(profile ambition.Profile, stream *rng.Stream, maxNodes, minNodes int) *Graph {
	g := &Graph{}
	target := stream.IntRange(minNodes, maxNodes)
	domains := profile.Dominant()

	for tier := 1; tier <= maxTier && len(g.Nodes) < target; tier++ {
		for _, domain := range domains {
			weight := profile.Domains[domain]
			for _, t := range templatesFor(domain, tier) {
				if len(g.Nodes) >= target {
					break
				}
				if !eligible(g, t, weight) {
					continue
				}
				p := spawnProbability(t, weight, profile)
				if stream.Chance(p) {
					g.Nodes = append(g.Nodes, nodeFrom(t, 0))
				}
			}
		}
	}

	// Floor pass: the graph must never start thinner than minNodes.
	if len(g.Nodes) < minNodes {
		for _, domain := range domains[:2] {
			for _, t := range templatesFor(domain, 1) {
				if len(g.Nodes) >= minNodes {
					break
				}
				if g.Node(t.ID) == nil && !excluded(g, t) {
					g.Nodes = append(g.Nodes, nodeFrom(t, 0))
				}
			}
		}
	}

	return g
}

// GenerateThreshold spawns follow-up nodes for domains whose weight just
// crossed upward. Higher crossings unlock higher tiers: a 0.5 crossing can
// spawn tier-3 capstones, a 0.3 crossing only tier 2. At most one node per
// crossed domain.
func GenerateThreshold(profile ambition.Profile, stream *rng.Stream, g *Graph, crossed map[string]float64, tick uint64) []*Node {
	var spawned []*Node
	for _, domain := range profile.Dominant() {
		level, ok := crossed[domain]
		if !ok {
			continue
		}
		// Prefer the highest unlocked tier.
		for tier := maxTier; tier >= 2; tier-- {
			done := false
			for _, t := range templatesFor(domain, tier) {
				if t.Threshold == 0 || t.Threshold > level {
					continue
				}
				if !eligible(g, t, profile.Domains[domain]) {
					continue
				}
				if stream.Chance(spawnProbability(t, profile.Domains[domain], profile)) {
					n := nodeFrom(t, tick)
					n.Threshold = level
					g.Nodes = append(g.Nodes, n)
					spawned = append(spawned, n)
					done = true
					break
				}
			}
			if done {
				break
			}
		}
	}
	return spawned
}

// eligible applies the selection gates: not already present, domain weight at
// or above the template's floor, dependencies present-or-met, no exclusion
// already in the graph.
func eligible(g *Graph, t template, domainWeight float64) bool {
	if g.Node(t.ID) != nil {
		return false
	}
	if domainWeight < t.MinWeight {
		return false
	}
	for _, dep := range t.Needs {
		if g.Node(dep) == nil {
			return false
		}
	}
	return !excluded(g, t)
}

func excluded(g *Graph, t template) bool {
	for _, ex := range t.Excludes {
		if g.Node(ex) != nil {
			return true
		}
	}
	return false
}

// spawnProbability is base weight + min(2·domainWeight, 1) + modifier bonus,
// clamped to 1.
func spawnProbability(t template, domainWeight float64, profile ambition.Profile) float64 {
	boost := 2 * domainWeight
	if boost > 1 {
		boost = 1
	}
	p := t.Weight + boost + modifierBonus(t.Domain, profile)
	if p > 1 {
		p = 1
	}
	return p
}

// modifierBonus gives small additive bumps when a modifier resonates with
// the template's domain.
func modifierBonus(domain string, profile ambition.Profile) float64 {
	bonus := 0.0
	switch domain {
	case "virtue", "faith":
		bonus += profile.Modifiers["peaceful"] * 0.05
	case "power":
		bonus += profile.Modifiers["ruthless"] * 0.05
		bonus += profile.Modifiers["charismatic"] * 0.03
	case "wealth":
		bonus += profile.Modifiers["opulent"] * 0.05
	case "freedom":
		bonus += profile.Modifiers["charismatic"] * 0.04
	}
	return bonus
}

func nodeFrom(t template, tick uint64) *Node {
	return &Node{
		ID:          t.ID,
		Label:       t.Label,
		Status:      StatusUnmet,
		Needs:       append([]string(nil), t.Needs...),
		Paths:       append([]string(nil), t.Paths...),
		Domains:     []string{t.Domain},
		SpawnedTick: tick,
	}
}
