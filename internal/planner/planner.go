// Package planner ranks candidate actions against the requirement graph, the
// world, and the knowledge base. Candidates come from two sources: unmet
// graph nodes with satisfiable paths, and generator rules whose conditions
// hold. Scoring is multi-factor and additive; anything that cannot score
// above zero (notably anything unaffordable) is excluded.
package planner

import (
	"fmt"
	"sort"

	"github.com/talgya/crownfall/internal/goals"
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

// maxProposals caps every planning cycle's output.
const maxProposals = 5

// Propose returns 0–5 actions sorted by descending score, every score > 0.
// An empty knowledge base yields an empty list, never an error.
func Propose(g *goals.Graph, w *world.WorldState, kb *knowledge.Base) []knowledge.ActionProposal {
	candidates := gatherCandidates(g, w, kb)
	for i := range candidates {
		candidates[i].Score = score(&candidates[i], g, w)
	}
	return rank(candidates)
}

func gatherCandidates(g *goals.Graph, w *world.WorldState, kb *knowledge.Base) []knowledge.ActionProposal {
	var out []knowledge.ActionProposal

	// Requirement-driven: one candidate per satisfiable path of each
	// actionable node.
	for _, node := range g.Actionable() {
		rule, ok := kb.Requirement(node.ID)
		if !ok {
			continue
		}
		for _, name := range rule.PathNames() {
			if len(node.Paths) > 0 && !containsString(node.Paths, name) {
				continue
			}
			path := rule.Paths[name]
			if !requiresSatisfied(path.Requires, w) {
				continue
			}
			out = append(out, proposalFromPath(node, rule, name, path))
		}
	}

	// Opportunity-driven: generator rules whose every condition holds.
	for _, gen := range kb.Generators {
		if conditionsHold(gen.Conditions, w) {
			act := gen.Action
			act.Satisfies = append([]string(nil), act.Satisfies...)
			out = append(out, act)
		}
	}
	return out
}

func proposalFromPath(node *goals.Node, rule knowledge.RequirementRule, name string, path knowledge.PathRule) knowledge.ActionProposal {
	return knowledge.ActionProposal{
		ID:          fmt.Sprintf("%s:%s", node.ID, name),
		Label:       path.Label,
		Description: fmt.Sprintf("%s — %s", rule.Label, path.Label),
		Satisfies:   []string{node.ID},
		Costs:       path.Costs,
		Rewards:     path.Rewards,
		Risks:       path.Risks,
		Time:        path.Time,
		Requires:    path.Requires,
		Effects:     path.Effects,
	}
}

// rank filters to positive scores, sorts descending (stable, so input order
// breaks ties), and caps the result.
func rank(candidates []knowledge.ActionProposal) []knowledge.ActionProposal {
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Score > 0 {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	if len(kept) > maxProposals {
		kept = kept[:maxProposals]
	}
	out := make([]knowledge.ActionProposal, len(kept))
	copy(out, kept)
	return out
}

// requiresSatisfied evaluates path prerequisite tags. Known tags check the
// army, people, and legitimacy; anything else is a plain trait lookup.
func requiresSatisfied(tags []string, w *world.WorldState) bool {
	for _, tag := range tags {
		switch tag {
		case "army_small":
			if w.Forces.Units < 10 {
				return false
			}
		case "army_large":
			if w.Forces.Units < 50 {
				return false
			}
		case "people_loyal":
			if w.People.Loyalty < 0.6 {
				return false
			}
		case "people_restless":
			if w.People.Unrest < 0.3 {
				return false
			}
		case "legitimacy_law":
			if w.Legitimacy.Law < 40 {
				return false
			}
		case "reputation":
			total := w.Legitimacy.Law + w.Legitimacy.Faith + w.Legitimacy.Lineage + w.Legitimacy.Might
			if total < 120 {
				return false
			}
		default:
			if !w.HasTrait(tag) {
				return false
			}
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
