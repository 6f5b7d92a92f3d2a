package engine

import (
	"strings"
	"testing"

	"github.com/talgya/crownfall/internal/world"
)

func TestAlchemizeQuietTick(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.Resources.Gold += 5 // below the gold threshold

	if cards := Alchemize(prev, next); len(cards) != 0 {
		t.Errorf("quiet tick produced %d cards: %v", len(cards), cards)
	}
}

func TestAlchemizeRegionShift(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.Regions[0].Lawfulness -= 15

	cards := Alchemize(prev, next)
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	c := cards[0]
	if c.Category != "region" {
		t.Errorf("category = %s, want region", c.Category)
	}
	if c.ID != "evt-1-region_region-1_lawfulness" {
		t.Errorf("card id = %s, not deterministic", c.ID)
	}
	if len(c.Choices) == 0 {
		t.Error("region card has no choices")
	}
}

func TestAlchemizeIgnoresUncontrolledRegions(t *testing.T) {
	prev := stableWorld()
	prev.Regions = append(prev.Regions, &world.Region{
		ID: "region-2", Name: "Thornvale", Controlled: false, Lawfulness: 50,
	})
	next := prev.Clone()
	next.Tick++
	next.Region("region-2").Lawfulness = 20

	if cards := Alchemize(prev, next); len(cards) != 0 {
		t.Errorf("uncontrolled shift produced cards: %v", cards)
	}
}

func TestAlchemizeCrimeWave(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.SetTrait(TraitHighCrime, true)

	cards := Alchemize(prev, next)
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	c := cards[0]
	if c.Category != "crime" {
		t.Errorf("category = %s, want crime", c.Category)
	}
	if len(c.Choices) < 2 {
		t.Fatalf("crime card has %d choices, want 2", len(c.Choices))
	}
	// The crackdown choice must carry applicable typed effects.
	for _, ch := range c.Choices {
		if ch.ID == "crackdown" && len(ch.Effects) == 0 {
			t.Error("crackdown choice carries no effects")
		}
	}

	// Same trait on both sides is old news, not an event.
	prev.SetTrait(TraitHighCrime, true)
	if cards := Alchemize(prev, next); len(cards) != 0 {
		t.Errorf("persisting trait produced cards: %v", cards)
	}
}

func TestAlchemizeResourceSwings(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.Resources.Gold += 40
	next.Resources.Grain -= 30

	cards := Alchemize(prev, next)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}
	var windfall, shortfall bool
	for _, c := range cards {
		if strings.HasPrefix(c.ID, "evt-1-windfall_gold") {
			windfall = true
		}
		if strings.HasPrefix(c.ID, "evt-1-shortfall_grain") {
			shortfall = true
		}
	}
	if !windfall || !shortfall {
		t.Errorf("missing windfall/shortfall cards: %v", cards)
	}
}

func TestAlchemizeCapsAtThree(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.SetTrait(TraitHighCrime, true)
	next.Legitimacy.Law += 20
	next.Legitimacy.Faith -= 15
	next.Regions[0].Unrest += 20
	next.Resources.Gold += 100

	cards := Alchemize(prev, next)
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want the cap of 3", len(cards))
	}
	// Traits outrank legitimacy outrank everything else.
	if cards[0].Category != "crime" {
		t.Errorf("first card category = %s, want crime", cards[0].Category)
	}
	if cards[1].Category != "legitimacy" {
		t.Errorf("second card category = %s, want legitimacy", cards[1].Category)
	}
}

func TestAlchemizeDeterministic(t *testing.T) {
	prev := stableWorld()
	next := prev.Clone()
	next.Tick++
	next.Legitimacy.Might += 10

	a := Alchemize(prev, next)
	b := Alchemize(prev, next)
	if len(a) != len(b) {
		t.Fatal("card count differs across identical diffs")
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Title != b[i].Title {
			t.Errorf("card %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
