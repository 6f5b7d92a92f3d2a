package engine

import (
	"testing"

	"github.com/talgya/crownfall/internal/knowledge"
	"github.com/talgya/crownfall/internal/world"
)

func stableWorld() *world.WorldState {
	return &world.WorldState{
		Regions: []*world.Region{
			{ID: "region-1", Name: "Ironmere", Controlled: true,
				Lawfulness: 50, Unrest: 50, Security: 50,
				People: world.People{Population: 500, Loyalty: 0.5}},
		},
		Resources:  world.Resources{Gold: 100, Grain: 50, Iron: 20},
		Legitimacy: world.Legitimacy{Law: 50, Faith: 40, Lineage: 40, Might: 40},
		Traits:     map[string]bool{},
	}
}

func TestTickStableInputUnchanged(t *testing.T) {
	w := stableWorld()
	next := Tick(w, nil)

	r := next.Regions[0]
	if r.Lawfulness != 50 || r.Unrest != 50 {
		t.Errorf("drift moved stable values: lawfulness=%v unrest=%v", r.Lawfulness, r.Unrest)
	}
	if next.Tick != w.Tick+1 {
		t.Errorf("tick = %d, want %d", next.Tick, w.Tick+1)
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 80
	_ = Tick(w, nil)
	if w.Regions[0].Lawfulness != 80 || w.Tick != 0 {
		t.Error("Tick mutated its input world")
	}
}

func TestLawfulnessDriftsTowardFifty(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 80
	w.Legitimacy.Law = 50 // above the decay threshold: drift only

	next := Tick(w, nil)
	if got := next.Regions[0].Lawfulness; got != 79 {
		t.Errorf("lawfulness = %v after one tick, want 79", got)
	}
	next2 := Tick(next, nil)
	if got := next2.Regions[0].Lawfulness; got != 78 {
		t.Errorf("lawfulness = %v after two ticks, want 78", got)
	}
}

func TestLawfulnessDriftsUpFromBelow(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 40

	next := Tick(w, nil)
	if got := next.Regions[0].Lawfulness; got != 41 {
		t.Errorf("lawfulness = %v, want 41", got)
	}
}

func TestWeakLawExtraDecay(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 80
	w.Legitimacy.Law = 30 // below threshold: drift plus decay

	next := Tick(w, nil)
	if got := next.Regions[0].Lawfulness; got != 78 {
		t.Errorf("lawfulness = %v, want 78 (drift −1, decay −1)", got)
	}
}

func TestHighCrimeTraitToggles(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 20

	next := Tick(w, nil)
	if !next.HasTrait(TraitHighCrime) {
		t.Error("controlled region at lawfulness 20 should raise high_crime")
	}
	if next.Regions[0].Security >= 50 {
		t.Error("low lawfulness should depress security")
	}
	if next.Regions[0].People.Loyalty >= 0.5 {
		t.Error("low lawfulness should depress local loyalty")
	}

	// Recovering above the floor clears the trait.
	next.Regions[0].Lawfulness = 45
	after := Tick(next, nil)
	if after.HasTrait(TraitHighCrime) {
		t.Error("high_crime should clear once no controlled region is below the floor")
	}
}

func TestHighCrimeIgnoresUncontrolledRegions(t *testing.T) {
	w := stableWorld()
	w.Regions = append(w.Regions, &world.Region{
		ID: "region-2", Name: "Thornvale", Controlled: false, Lawfulness: 10, Unrest: 50,
	})

	next := Tick(w, nil)
	if next.HasTrait(TraitHighCrime) {
		t.Error("uncontrolled lawlessness should not raise the player's high_crime trait")
	}
}

func TestBureaucracyUpkeep(t *testing.T) {
	w := stableWorld()
	w.Regions[0].Lawfulness = 90

	next := Tick(w, nil)
	if !next.HasTrait(TraitHighBureaucracy) {
		t.Error("lawfulness above 70 should raise high_bureaucracy")
	}
	if next.Resources.Gold != 95 {
		t.Errorf("gold = %d, want 95 after upkeep", next.Resources.Gold)
	}
}

func TestTickAppliesAction(t *testing.T) {
	w := stableWorld()
	act := knowledge.ActionProposal{
		ID:      "test",
		Costs:   map[string]int{"gold": 30},
		Rewards: map[string]int{"iron": 10},
		Effects: []knowledge.Effect{
			{Kind: knowledge.EffectLegitimacy, Target: "law", Delta: 5},
			{Kind: knowledge.EffectRegion, Target: "unrest", Delta: -5},
		},
	}

	next := Tick(w, []knowledge.ActionProposal{act})
	if next.Resources.Gold != 70 {
		t.Errorf("gold = %d, want 70", next.Resources.Gold)
	}
	if next.Resources.Iron != 30 {
		t.Errorf("iron = %d, want 30", next.Resources.Iron)
	}
	if next.Legitimacy.Law != 55 {
		t.Errorf("law = %v, want 55", next.Legitimacy.Law)
	}
	// Region effect −5 lands first, then drift pulls the result one step
	// back toward 50: 50−5+1 = 46.
	if got := next.Regions[0].Unrest; got != 46 {
		t.Errorf("unrest = %v, want 46", got)
	}
}

func TestAmbitionEffectsExtracted(t *testing.T) {
	acts := []knowledge.ActionProposal{{
		Effects: []knowledge.Effect{
			{Kind: knowledge.EffectAmbition, Target: "faith", Delta: 0.05},
			{Kind: knowledge.EffectModifier, Target: "ruthless", Delta: -0.1},
			{Kind: knowledge.EffectLegitimacy, Target: "law", Delta: 5},
		},
	}}
	domains, modifiers := AmbitionEffects(acts)
	if domains["faith"] != 0.05 {
		t.Errorf("domains = %v", domains)
	}
	if modifiers["ruthless"] != -0.1 {
		t.Errorf("modifiers = %v", modifiers)
	}
	if len(domains) != 1 || len(modifiers) != 1 {
		t.Error("legitimacy effect leaked into the ambition deltas")
	}
}
