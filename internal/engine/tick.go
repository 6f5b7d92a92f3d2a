// Package engine advances the world one tick at a time and distills the
// resulting changes into narrative event cards. Tick is a pure transform: it
// clones the incoming world, applies the chosen actions and the standing
// drift/decay rules, and returns the next state.
package engine

import (
	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

// Drift and threshold constants. Lawfulness and unrest both settle toward 50;
// weak rule of law (below lawThreshold) decays lawfulness further.
const (
	driftTarget  = 50.0
	driftStep    = 1.0
	lawThreshold = 40.0

	crimeFloor      = 30.0
	bureaucracyRoof = 70.0
	bureaucracyCost = 5 // gold per over-bureaucratized region per tick
	securityDecay   = 2.0
	loyaltyDecay    = 0.02
)

// Trait names toggled by the simulator.
const (
	TraitHighCrime       = "high_crime"
	TraitHighBureaucracy = "high_bureaucracy"
	TraitIronScarcity    = "iron_scarcity"
)

// Tick advances the world by one time unit, resolving the given actions
// first. Each region's update reads only its own prior values plus the
// prior global aggregates, so region order never changes the outcome, and
// every field moves at most once per tick.
func Tick(w *world.WorldState, actions []knowledge.ActionProposal) *world.WorldState {
	next := w.Clone()
	next.Tick++

	for i := range actions {
		applyAction(next, &actions[i])
	}

	// Prior-tick global aggregate; every region reads the same value.
	weakLaw := w.Legitimacy.Law < lawThreshold

	anyCrime := false
	anyBureaucracy := false
	for _, r := range next.Regions {
		delta := driftDelta(r.Lawfulness)
		if weakLaw {
			delta -= driftStep
		}
		r.Lawfulness = world.Clamp100(r.Lawfulness + delta)
		r.Unrest = world.Clamp100(r.Unrest + driftDelta(r.Unrest))

		if r.Lawfulness < crimeFloor {
			r.Security = world.Clamp100(r.Security - securityDecay)
			r.People.Loyalty = world.Clamp01(r.People.Loyalty - loyaltyDecay)
			if r.Controlled {
				anyCrime = true
			}
		}
		if r.Controlled && r.Lawfulness > bureaucracyRoof {
			anyBureaucracy = true
			next.Resources.Gold -= bureaucracyCost
		}
	}

	next.SetTrait(TraitHighCrime, anyCrime)
	next.SetTrait(TraitHighBureaucracy, anyBureaucracy)

	// Scarcity flag for the opportunity generators.
	next.SetTrait(TraitIronScarcity, next.Resources.Iron < 5)

	return next
}

// driftDelta moves a value one step toward the drift target, stopping exactly
// on it.
func driftDelta(v float64) float64 {
	switch {
	case v > driftTarget+driftStep:
		return -driftStep
	case v < driftTarget-driftStep:
		return driftStep
	default:
		return driftTarget - v
	}
}

// applyAction charges costs, pays rewards, and applies the action's typed
// legitimacy and region effects. Ambition and modifier effects belong to the
// profile, not the world; AmbitionEffects surfaces them for the session layer.
func applyAction(w *world.WorldState, a *knowledge.ActionProposal) {
	for name, cost := range a.Costs {
		w.Resources.Add(name, -cost)
	}
	for name, amount := range a.Rewards {
		w.Resources.Add(name, amount)
	}

	for _, e := range a.Effects {
		switch e.Kind {
		case knowledge.EffectLegitimacy:
			w.Legitimacy.AddMeter(e.Target, e.Delta)
		case knowledge.EffectRegion:
			applyRegionEffect(w, a, e)
		}
	}
}

// applyRegionEffect targets the action's named regions, or every controlled
// region when the action names none.
func applyRegionEffect(w *world.WorldState, a *knowledge.ActionProposal, e knowledge.Effect) {
	var targets []*world.Region
	if len(a.Regions) > 0 {
		for _, id := range a.Regions {
			if r := w.Region(id); r != nil {
				targets = append(targets, r)
			}
		}
	} else {
		targets = w.ControlledRegions()
	}
	for _, r := range targets {
		switch e.Target {
		case "lawfulness":
			r.Lawfulness = world.Clamp100(r.Lawfulness + e.Delta)
		case "unrest":
			r.Unrest = world.Clamp100(r.Unrest + e.Delta)
		case "security":
			r.Security = world.Clamp100(r.Security + e.Delta)
		case "piety":
			r.Piety = world.Clamp100(r.Piety + e.Delta)
		case "heresy":
			r.Heresy = world.Clamp100(r.Heresy + e.Delta)
		case "loyalty":
			r.People.Loyalty = world.Clamp01(r.People.Loyalty + e.Delta)
		}
	}
}

// AmbitionEffects extracts the ambition and modifier deltas the given actions
// carry, keyed for the profile mutation the session layer performs.
func AmbitionEffects(actions []knowledge.ActionProposal) (domains, modifiers map[string]float64) {
	domains = map[string]float64{}
	modifiers = map[string]float64{}
	for _, a := range actions {
		for _, e := range a.Effects {
			switch e.Kind {
			case knowledge.EffectAmbition:
				domains[e.Target] += e.Delta
			case knowledge.EffectModifier:
				modifiers[e.Target] += e.Delta
			}
		}
	}
	return domains, modifiers
}
