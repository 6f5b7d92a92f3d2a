package ambition

import (
	"math"
	"testing"
)

func domainSum(p Profile) float64 {
	sum := 0.0
	for _, d := range DomainNames {
		sum += p.Domains[d]
	}
	return sum
}

func TestParseNormalizesDomains(t *testing.T) {
	texts := []string{
		"I want to be a just king who protects his people",
		"gold gold gold and more gold",
		"build great wonders and temples to the gods",
		"xyzzy nothing matches here",
		"",
	}
	for _, text := range texts {
		p := Parse(text)
		if math.Abs(domainSum(p)-1.0) > 1e-3 {
			t.Errorf("Parse(%q): domain sum %v, want 1.0", text, domainSum(p))
		}
	}
}

func TestParseDefaultFallback(t *testing.T) {
	p := Parse("xyzzy plugh")
	if p.Domains["power"] != 0.25 || p.Domains["virtue"] != 0.25 {
		t.Errorf("fallback domains wrong: %v", p.Domains)
	}
	if p.Scale != (Scale{Local: 0.2, Regional: 0.6, World: 0.2}) {
		t.Errorf("fallback scale wrong: %+v", p.Scale)
	}
	for _, m := range ModifierNames {
		if p.Modifiers[m] != 0 {
			t.Errorf("modifier %s = %v, want 0 with no matches", m, p.Modifiers[m])
		}
	}
}

func TestParseJustKing(t *testing.T) {
	p := Parse("I want to be a just king who protects his people")
	if p.Domains["power"]+p.Domains["virtue"] <= p.Domains["wealth"]+p.Domains["freedom"] {
		t.Errorf("expected power+virtue to dominate: %v", p.Domains)
	}
	if !p.HasArchetype("king") {
		t.Errorf("expected king archetype, got %v", p.Archetypes)
	}
	if !p.HasVirtue("justice") {
		t.Errorf("expected justice virtue, got %v", p.Virtues)
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "a ruthless merchant empire spanning the world"
	a := Parse(text)
	b := Parse(text)
	for _, d := range DomainNames {
		if a.Domains[d] != b.Domains[d] {
			t.Fatalf("Parse not deterministic for domain %s", d)
		}
	}
}

func TestParseModifierMaxNormalization(t *testing.T) {
	p := Parse("a peaceful calm and gentle reign, with some hidden secrets")
	max := 0.0
	for _, m := range ModifierNames {
		if p.Modifiers[m] > max {
			max = p.Modifiers[m]
		}
		if p.Modifiers[m] < 0 || p.Modifiers[m] > 1 {
			t.Errorf("modifier %s out of [0,1]: %v", m, p.Modifiers[m])
		}
	}
	if max != 1.0 {
		t.Errorf("strongest modifier should normalize to 1.0, got %v", max)
	}
}

func TestMutateRenormalizes(t *testing.T) {
	p := Parse("a just king")
	next := Mutate(p, "act-1", map[string]float64{"faith": 0.2, "power": -0.5}, nil, 3, "test")

	if math.Abs(domainSum(next)-1.0) > 1e-3 {
		t.Errorf("domains not renormalized: sum %v", domainSum(next))
	}
	if next.Generation != p.Generation+1 {
		t.Errorf("generation = %d, want %d", next.Generation, p.Generation+1)
	}
	if len(next.Mutations) != len(p.Mutations)+1 {
		t.Fatalf("mutation log: %d records, want %d", len(next.Mutations), len(p.Mutations)+1)
	}
	rec := next.Mutations[len(next.Mutations)-1]
	if rec.Tick != 3 || rec.ActionID != "act-1" || rec.Reason != "test" {
		t.Errorf("mutation record wrong: %+v", rec)
	}
}

func TestMutateClampsModifiers(t *testing.T) {
	p := Parse("peaceful reign")
	next := Mutate(p, "a", nil, map[string]float64{"peaceful": 5, "ruthless": -3}, 1, "clamp")
	if next.Modifiers["peaceful"] != 1 {
		t.Errorf("peaceful = %v, want clamp to 1", next.Modifiers["peaceful"])
	}
	if next.Modifiers["ruthless"] != 0 {
		t.Errorf("ruthless = %v, want clamp to 0", next.Modifiers["ruthless"])
	}
}

func TestMutateDoesNotTouchReceiver(t *testing.T) {
	p := Parse("a just king")
	before := domainSum(p)
	powerBefore := p.Domains["power"]
	_ = Mutate(p, "a", map[string]float64{"power": 0.5}, nil, 1, "aside")
	if p.Domains["power"] != powerBefore || domainSum(p) != before {
		t.Error("Mutate modified the input profile")
	}
	if len(p.Mutations) != 0 {
		t.Error("Mutate appended to the input profile's log")
	}
}

func TestDominantStableOrder(t *testing.T) {
	p := Parse("xyzzy") // fallback: power .25, virtue .25 tie
	d := p.Dominant()
	if d[0] != "power" || d[1] != "virtue" {
		t.Errorf("tie should keep canonical order, got %v", d)
	}
}
