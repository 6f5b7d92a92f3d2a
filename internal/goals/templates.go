// The goal template catalog: three tiers per domain, authored in code the
// same way the faction roster is. Tier 1 is foundation work, tier 2 builds on
// it, tier 3 is the ambition's capstone.
package goals

// template is one spawnable goal. MinWeight gates spawning on the profile's
// domain weight; Weight is the base spawn probability before bonuses.
type template struct {
	ID        string
	Label     string
	Domain    string
	Tier      int
	Weight    float64
	MinWeight float64
	Needs     []string
	Excludes  []string
	Paths     []string
	Threshold float64
}

var catalog = []template{
	// ── power ──────────────────────────────────────────────────────────
	{ID: "land", Label: "Secure land to rule", Domain: "power", Tier: 1,
		Weight: 0.5, MinWeight: 0.05, Paths: []string{"conquest", "purchase", "marriage"}},
	{ID: "army", Label: "Raise a fighting force", Domain: "power", Tier: 1,
		Weight: 0.4, MinWeight: 0.1, Paths: []string{"levy", "mercenaries"}},
	{ID: "governance", Label: "Establish lawful rule", Domain: "power", Tier: 2,
		Weight: 0.45, MinWeight: 0.1, Needs: []string{"land"}, Paths: []string{"courts", "garrisons"}, Threshold: 0.3},
	{ID: "vassals", Label: "Bring the lords to heel", Domain: "power", Tier: 3,
		Weight: 0.3, MinWeight: 0.25, Needs: []string{"governance", "army"}, Threshold: 0.5},

	// ── wealth ─────────────────────────────────────────────────────────
	{ID: "trade_routes", Label: "Open trade routes", Domain: "wealth", Tier: 1,
		Weight: 0.45, MinWeight: 0.08},
	{ID: "treasury", Label: "Fill the treasury", Domain: "wealth", Tier: 2,
		Weight: 0.4, MinWeight: 0.12, Needs: []string{"trade_routes"}, Threshold: 0.3},
	{ID: "monopoly", Label: "Corner a trade good", Domain: "wealth", Tier: 3,
		Weight: 0.3, MinWeight: 0.25, Needs: []string{"treasury"}, Threshold: 0.5},

	// ── faith ──────────────────────────────────────────────────────────
	{ID: "shrine", Label: "Raise a shrine", Domain: "faith", Tier: 1,
		Weight: 0.45, MinWeight: 0.08},
	{ID: "clergy", Label: "Win over the clergy", Domain: "faith", Tier: 2,
		Weight: 0.4, MinWeight: 0.12, Needs: []string{"shrine"}, Threshold: 0.3},
	{ID: "great_temple", Label: "Build the great temple", Domain: "faith", Tier: 3,
		Weight: 0.3, MinWeight: 0.25, Needs: []string{"clergy"}, Excludes: []string{"heresy_purge"}, Threshold: 0.5},
	{ID: "heresy_purge", Label: "Stamp out heresy", Domain: "faith", Tier: 3,
		Weight: 0.25, MinWeight: 0.3, Needs: []string{"clergy"}, Excludes: []string{"great_temple"}, Threshold: 0.6},

	// ── virtue ─────────────────────────────────────────────────────────
	{ID: "people", Label: "Win the people's trust", Domain: "virtue", Tier: 1,
		Weight: 0.5, MinWeight: 0.05, Paths: []string{"festival", "grain_dole"}},
	{ID: "just_courts", Label: "Deliver honest justice", Domain: "virtue", Tier: 2,
		Weight: 0.4, MinWeight: 0.12, Needs: []string{"people"}, Threshold: 0.3},
	{ID: "golden_age", Label: "Usher in a golden age", Domain: "virtue", Tier: 3,
		Weight: 0.25, MinWeight: 0.3, Needs: []string{"just_courts"}, Threshold: 0.5},

	// ── freedom ────────────────────────────────────────────────────────
	{ID: "smuggler_ties", Label: "Court the free traders", Domain: "freedom", Tier: 1,
		Weight: 0.4, MinWeight: 0.08},
	{ID: "charter", Label: "Win a free charter", Domain: "freedom", Tier: 2,
		Weight: 0.35, MinWeight: 0.15, Needs: []string{"smuggler_ties"}, Threshold: 0.3},
	{ID: "breakaway", Label: "Break from the old order", Domain: "freedom", Tier: 3,
		Weight: 0.25, MinWeight: 0.3, Needs: []string{"charter"}, Threshold: 0.5},

	// ── creation ───────────────────────────────────────────────────────
	{ID: "workshops", Label: "Found the workshops", Domain: "creation", Tier: 1,
		Weight: 0.4, MinWeight: 0.08},
	{ID: "guilds", Label: "Charter the guilds", Domain: "creation", Tier: 2,
		Weight: 0.35, MinWeight: 0.15, Needs: []string{"workshops"}, Threshold: 0.3},
	{ID: "wonder", Label: "Raise a wonder", Domain: "creation", Tier: 3,
		Weight: 0.25, MinWeight: 0.3, Needs: []string{"guilds"}, Threshold: 0.5},
}

const maxTier = 3

// templatesFor returns the catalog entries for one domain and tier, in
// authored order.
func templatesFor(domain string, tier int) []template {
	var out []template
	for _, t := range catalog {
		if t.Domain == domain && t.Tier == tier {
			out = append(out, t)
		}
	}
	return out
}
