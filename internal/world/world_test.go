package world

import "testing"

func sampleWorld() *WorldState {
	return &WorldState{
		Seed: 42,
		Tick: 3,
		Regions: []*Region{
			{
				ID: "region-1", Name: "Ironmere", Controlled: true,
				Lawfulness: 60, Unrest: 25,
				Affinity: map[string]float64{"power": 0.4},
			},
		},
		Factions: []*Faction{
			{
				ID: "faction-1", Name: "The Gilded Compact", Stance: StanceNeutral,
				Regions:  []string{"region-2"},
				Affinity: map[string]float64{"wealth": 0.9},
			},
		},
		Resources:  Resources{Gold: 100, Grain: 50},
		Legitimacy: Legitimacy{Law: 30, Faith: 25, Lineage: 40, Might: 35},
		Traits:     map[string]bool{"high_crime": true},
	}
}

func TestCloneIsDeep(t *testing.T) {
	w := sampleWorld()
	c := w.Clone()

	c.Regions[0].Lawfulness = 10
	c.Regions[0].Affinity["power"] = 0.9
	c.Factions[0].Regions[0] = "region-9"
	c.Factions[0].Affinity["wealth"] = 0.1
	c.Traits["new_trait"] = true
	c.Resources.Gold = 0

	if w.Regions[0].Lawfulness != 60 {
		t.Error("clone shares region struct with original")
	}
	if w.Regions[0].Affinity["power"] != 0.4 {
		t.Error("clone shares region affinity map")
	}
	if w.Factions[0].Regions[0] != "region-2" {
		t.Error("clone shares faction region slice")
	}
	if w.Factions[0].Affinity["wealth"] != 0.9 {
		t.Error("clone shares faction affinity map")
	}
	if w.HasTrait("new_trait") {
		t.Error("clone shares trait map")
	}
	if w.Resources.Gold != 100 {
		t.Error("clone shares resources")
	}
}

func TestLowestLegitimacy(t *testing.T) {
	w := sampleWorld()
	name, val := w.Legitimacy.Lowest()
	if name != "faith" || val != 25 {
		t.Errorf("Lowest() = %s/%v, want faith/25", name, val)
	}

	// Tie goes to the earlier meter in canonical order.
	w.Legitimacy = Legitimacy{Law: 10, Faith: 10, Lineage: 20, Might: 20}
	name, _ = w.Legitimacy.Lowest()
	if name != "law" {
		t.Errorf("tie broke to %s, want law", name)
	}
}

func TestResourceAccessors(t *testing.T) {
	r := Resources{Gold: 5}
	if r.Get("gold") != 5 || r.Get("unknown") != 0 {
		t.Error("Get misbehaved")
	}
	r.Add("gold", -10)
	if r.Gold != -5 {
		t.Errorf("Add allowed negative arithmetic, got %d", r.Gold)
	}
	r.Add("unknown", 100)
	if r != (Resources{Gold: -5}) {
		t.Error("Add on unknown resource changed state")
	}
}

func TestAddMeterClamps(t *testing.T) {
	l := Legitimacy{Law: 95}
	l.AddMeter("law", 20)
	if l.Law != 100 {
		t.Errorf("law = %v, want clamp at 100", l.Law)
	}
	l.AddMeter("law", -250)
	if l.Law != 0 {
		t.Errorf("law = %v, want clamp at 0", l.Law)
	}
}
